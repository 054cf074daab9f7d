package naming

import (
	"fmt"
	"sync"
	"testing"
)

func TestClaims_FirstClaimantWins(t *testing.T) {
	c := newClaims(false)

	if prev, ok := c.Claim("Test", "test"); !ok || prev != "" {
		t.Fatalf("first claim: got (%q, %v), want (\"\", true)", prev, ok)
	}
	prev, ok := c.Claim("TEST", "test")
	if ok {
		t.Fatal("second claim on same target should fail")
	}
	if prev != "Test" {
		t.Errorf("owner = %q, want %q", prev, "Test")
	}
	if owner, _ := c.Owner("test"); owner != "Test" {
		t.Errorf("claim was overwritten by loser: owner = %q", owner)
	}
}

func TestClaims_SameOwnerReclaims(t *testing.T) {
	c := newClaims(false)
	c.Claim("a", "x")
	if _, ok := c.Claim("a", "x"); !ok {
		t.Error("re-claim by same owner should succeed")
	}
	if c.Len() != 1 {
		t.Errorf("Len = %d, want 1", c.Len())
	}
}

func TestClaims_CaseFolding(t *testing.T) {
	sensitive := newClaims(false)
	sensitive.Claim("one", "Foo")
	if _, ok := sensitive.Claim("two", "foo"); !ok {
		t.Error("case-sensitive claims should treat Foo and foo as distinct")
	}

	folded := newClaims(true)
	folded.Claim("one", "Foo")
	if prev, ok := folded.Claim("two", "foo"); ok || prev != "one" {
		t.Errorf("case-folded claim: got (%q, %v), want (\"one\", false)", prev, ok)
	}
}

func TestClaims_Concurrent(t *testing.T) {
	c := NewClaims()
	var wg sync.WaitGroup
	var mu sync.Mutex
	winners := 0
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			if _, ok := c.Claim(fmt.Sprintf("owner%d", i), "shared"); ok {
				mu.Lock()
				winners++
				mu.Unlock()
			}
		}(i)
	}
	wg.Wait()
	if winners != 1 {
		t.Errorf("winners = %d, want 1", winners)
	}
}

func TestCache_MatchesNormalize(t *testing.T) {
	c, err := NewCache(4)
	if err != nil {
		t.Fatalf("NewCache: %v", err)
	}
	for _, opts := range allOptions() {
		for _, name := range Examples {
			if got, want := c.Normalize(name, opts), Normalize(name, opts); got != want {
				t.Errorf("Cache.Normalize(%q, %+v) = %q, want %q", name, opts, got, want)
			}
		}
	}
	if c.Len() > 4 {
		t.Errorf("Len = %d exceeds size 4", c.Len())
	}
}

func TestCache_KeyIncludesOptions(t *testing.T) {
	c, err := NewCache(0)
	if err != nil {
		t.Fatalf("NewCache: %v", err)
	}
	def := DefaultOptions()
	dots := def
	dots.PreserveDots = true

	if got := c.Normalize("Nueva Carpeta 1.5", def); got != "nueva_carpeta_1_5" {
		t.Errorf("defaults: got %q", got)
	}
	if got := c.Normalize("Nueva Carpeta 1.5", dots); got != "nueva_carpeta_1.5" {
		t.Errorf("dots: got %q", got)
	}
	if c.Len() != 2 {
		t.Errorf("Len = %d, want 2", c.Len())
	}
	c.Purge()
	if c.Len() != 0 {
		t.Errorf("Len after Purge = %d, want 0", c.Len())
	}
}
