package display

import (
	"bytes"
	"strings"
	"testing"
)

func TestCounter(t *testing.T) {
	tests := []struct {
		name     string
		i, total int
		want     string
	}{
		{"single digit total", 1, 5, "[ 1/5]"},
		{"two digit total", 3, 12, "[ 3/12]"},
		{"full width", 12, 12, "[12/12]"},
		{"three digit total", 7, 150, "[  7/150]"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Counter(tt.i, tt.total); got != tt.want {
				t.Errorf("Counter(%d, %d) = %q, want %q", tt.i, tt.total, got, tt.want)
			}
		})
	}
}

func TestPreviewLine(t *testing.T) {
	tests := []struct {
		name   string
		status Status
		detail string
		want   string
	}{
		{"unchanged", StatusUnchanged, "", "[ 1/3] ✅ 'Fotos' (unchanged)"},
		{"pending", StatusPending, "", "[ 1/3] 🔄 'Fotos' → 'fotos'"},
		{"conflict", StatusConflict, "", "[ 1/3] ⚠️  'Fotos' → 'fotos' (CONFLICT: already exists)"},
		{"batch conflict", StatusBatchConflict, "FOTOS", "[ 1/3] ⚠️  'Fotos' → 'fotos' (CONFLICT: also produced by 'FOTOS')"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := PreviewLine(1, 3, tt.status, "Fotos", "fotos", tt.detail); got != tt.want {
				t.Errorf("got  %q\nwant %q", got, tt.want)
			}
		})
	}
}

func TestOutcomeLine(t *testing.T) {
	tests := []struct {
		name   string
		status Status
		detail string
		want   string
	}{
		{"unchanged", StatusUnchanged, "", "[ 2/2] ✅ Unchanged: 'a b'"},
		{"renamed", StatusRenamed, "", "[ 2/2] 🔄 RENAMED: 'a b' → 'a_b'"},
		{"conflict", StatusConflict, "", "[ 2/2] ⚠️  CONFLICT: 'a b' → 'a_b' (already exists)"},
		{"batch conflict", StatusBatchConflict, "a-b", "[ 2/2] ⚠️  CONFLICT: 'a b' → 'a_b' (claimed by 'a-b')"},
		{"failed", StatusFailed, "permission", "[ 2/2] ❌ ERROR: 'a b' → 'a_b': permission"},
		{"failed no detail", StatusFailed, "", "[ 2/2] ❌ ERROR: 'a b' → 'a_b'"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := OutcomeLine(2, 2, tt.status, "a b", "a_b", tt.detail); got != tt.want {
				t.Errorf("got  %q\nwant %q", got, tt.want)
			}
		})
	}
}

func TestPreviewSummary(t *testing.T) {
	tests := []struct {
		name                      string
		pending, conflicts, total int
		want                      string
	}{
		{"empty", 0, 0, 0, "No folders found."},
		{"nothing to do", 0, 0, 4, "All folders already have valid names."},
		{"some pending", 2, 0, 4, "2 of 4 folders will be renamed."},
		{"with conflicts", 1, 2, 4, "1 of 4 folders will be renamed. Warning: 2 conflicts detected."},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := PreviewSummary(tt.pending, tt.conflicts, tt.total); got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestSummaryLines(t *testing.T) {
	lines := SummaryLines(3, 1, 2, 6)
	if len(lines) != 4 {
		t.Fatalf("got %d lines", len(lines))
	}
	if !strings.HasSuffix(lines[0], " 3") || !strings.HasSuffix(lines[3], " 6") {
		t.Errorf("lines = %q", lines)
	}
}

func TestPlural(t *testing.T) {
	if Plural(1, "folder") != "folder" || Plural(0, "folder") != "folders" || Plural(2, "folder") != "folders" {
		t.Error("Plural mismatch")
	}
}

func TestPrintBanner(t *testing.T) {
	var buf bytes.Buffer
	PrintBanner(&buf, "9.9.9")
	if !strings.Contains(buf.String(), "v9.9.9") {
		t.Errorf("banner missing version:\n%s", buf.String())
	}
}
