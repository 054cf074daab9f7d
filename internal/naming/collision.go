package naming

import (
	"runtime"
	"strings"
	"sync"
)

// Claims tracks which target names have been taken by items of a single
// batch, so two folders normalizing to the same name are caught before the
// second rename hits the filesystem. The first claimant of a name owns it.
// All methods are goroutine-safe.
type Claims struct {
	mu     sync.Mutex
	fold   bool
	owners map[string]string // folded target name → original name that owns it
}

// NewClaims creates an empty claim set. Keys are case-folded on platforms
// whose default filesystems are case-insensitive (Windows, macOS).
func NewClaims() *Claims {
	return newClaims(CaseInsensitivePlatform())
}

func newClaims(fold bool) *Claims {
	return &Claims{
		fold:   fold,
		owners: make(map[string]string),
	}
}

// CaseInsensitivePlatform reports whether the current GOOS normally uses a
// case-insensitive filesystem.
func CaseInsensitivePlatform() bool {
	return runtime.GOOS == "windows" || runtime.GOOS == "darwin"
}

// Claim registers target for owner. If target is unclaimed (or already owned
// by owner) it returns ("", true). Otherwise it returns the current owner and
// false, leaving the claim unchanged.
func (c *Claims) Claim(owner, target string) (string, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	key := c.key(target)
	prev, exists := c.owners[key]
	if !exists || prev == owner {
		c.owners[key] = owner
		return "", true
	}
	return prev, false
}

// Owner returns the original name holding target, if any.
func (c *Claims) Owner(target string) (string, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	owner, ok := c.owners[c.key(target)]
	return owner, ok
}

// Len returns the number of claimed names.
func (c *Claims) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.owners)
}

func (c *Claims) key(name string) string {
	if c.fold {
		return strings.ToLower(name)
	}
	return name
}
