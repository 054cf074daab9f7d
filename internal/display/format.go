package display

import (
	"fmt"
	"strings"
)

// Status is the display state of one numbered line, for previews and for
// commit outcomes alike.
type Status int

const (
	StatusUnchanged Status = iota
	StatusPending
	StatusConflict
	StatusBatchConflict
	StatusRenamed
	StatusFailed
)

// Glyph returns the status marker printed after the progress counter.
func (s Status) Glyph() string {
	switch s {
	case StatusUnchanged:
		return "✅"
	case StatusPending, StatusRenamed:
		return "🔄"
	case StatusConflict, StatusBatchConflict:
		return "⚠️ "
	default:
		return "❌"
	}
}

// Counter formats the "[ i/N]" progress prefix; i is right-aligned to the
// width of N (minimum 2).
func Counter(i, total int) string {
	width := len(fmt.Sprint(total))
	if width < 2 {
		width = 2
	}
	return fmt.Sprintf("[%*d/%d]", width, i, total)
}

// Arrow formats "'from' → 'to'".
func Arrow(from, to string) string {
	return fmt.Sprintf("'%s' → '%s'", from, to)
}

// PreviewLine formats one preview entry. detail names the earlier claimant
// for StatusBatchConflict and is ignored otherwise.
func PreviewLine(i, total int, s Status, from, to, detail string) string {
	var text string
	switch s {
	case StatusUnchanged:
		text = fmt.Sprintf("'%s' (unchanged)", from)
	case StatusPending:
		text = Arrow(from, to)
	case StatusConflict:
		text = Arrow(from, to) + " (CONFLICT: already exists)"
	case StatusBatchConflict:
		text = Arrow(from, to) + fmt.Sprintf(" (CONFLICT: also produced by '%s')", detail)
	default:
		text = Arrow(from, to)
	}
	return Counter(i, total) + " " + s.Glyph() + " " + text
}

// OutcomeLine formats one commit outcome. detail is the failure reason or
// the earlier claimant.
func OutcomeLine(i, total int, s Status, from, to, detail string) string {
	var text string
	switch s {
	case StatusUnchanged:
		text = fmt.Sprintf("Unchanged: '%s'", from)
	case StatusRenamed, StatusPending:
		text = "RENAMED: " + Arrow(from, to)
	case StatusConflict:
		text = "CONFLICT: " + Arrow(from, to) + " (already exists)"
	case StatusBatchConflict:
		text = "CONFLICT: " + Arrow(from, to) + fmt.Sprintf(" (claimed by '%s')", detail)
	case StatusFailed:
		text = "ERROR: " + Arrow(from, to)
		if detail != "" {
			text += ": " + detail
		}
	}
	return Counter(i, total) + " " + s.Glyph() + " " + text
}

// SummaryLines returns the post-commit summary block.
func SummaryLines(renamed, unchanged, errors, total int) []string {
	return []string{
		fmt.Sprintf("Folders renamed:    %d", renamed),
		fmt.Sprintf("Unchanged:          %d", unchanged),
		fmt.Sprintf("Errors/conflicts:   %d", errors),
		fmt.Sprintf("Total processed:    %d", total),
	}
}

// PreviewSummary returns the one-line preview verdict.
func PreviewSummary(pending, conflicts, total int) string {
	var b strings.Builder
	switch {
	case total == 0:
		return "No folders found."
	case pending == 0 && conflicts == 0:
		b.WriteString("All folders already have valid names.")
	default:
		fmt.Fprintf(&b, "%d of %d folders will be renamed.", pending, total)
	}
	if conflicts > 0 {
		fmt.Fprintf(&b, " Warning: %d conflicts detected.", conflicts)
	}
	return b.String()
}

// Plural returns word with an "s" appended unless n is 1.
func Plural(n int, word string) string {
	if n == 1 {
		return word
	}
	return word + "s"
}
