package pipeline

import (
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/backmassage/foldernorm/internal/display"
	"github.com/backmassage/foldernorm/internal/term"
)

// DisplayStatus maps the item's state to its display status.
func (p PreviewItem) DisplayStatus() display.Status {
	switch p.State() {
	case StatePendingRename:
		return display.StatusPending
	case StatePendingConflict:
		if p.Conflict == ConflictBatch {
			return display.StatusBatchConflict
		}
		return display.StatusConflict
	default:
		return display.StatusUnchanged
	}
}

// Line formats the item as numbered preview line i of total.
func (p PreviewItem) Line(i, total int) string {
	return display.PreviewLine(i, total, p.DisplayStatus(), p.OriginalName, p.NewName, p.ConflictWith)
}

// DisplayStatus maps the outcome to its display status.
func (r Result) DisplayStatus() display.Status {
	switch r.Outcome {
	case Renamed:
		return display.StatusRenamed
	case Conflict:
		return display.StatusConflict
	case IntraBatchConflict:
		return display.StatusBatchConflict
	case Failed:
		return display.StatusFailed
	default:
		return display.StatusUnchanged
	}
}

// Line formats the result as numbered outcome line i of total.
func (r Result) Line(i, total int) string {
	detail := r.Reason
	if r.Outcome == IntraBatchConflict {
		detail = r.Item.ConflictWith
	}
	return display.OutcomeLine(i, total, r.DisplayStatus(), r.Item.OriginalName, r.Item.NewName, detail)
}

const maxNameWidth = 48

// PrintPreviewTable writes a column-aligned table of items to w: number,
// original name, proposed name, and status. Conflicts are highlighted.
func PrintPreviewTable(w io.Writer, items []PreviewItem) {
	numW := len(fmt.Sprint(len(items)))
	origW := utf8.RuneCountInString("Folder")
	newW := utf8.RuneCountInString("New name")

	for _, it := range items {
		origW = max(origW, utf8.RuneCountInString(it.OriginalName))
		newW = max(newW, utf8.RuneCountInString(it.NewName))
	}
	origW = min(origW, maxNameWidth)
	newW = min(newW, maxNameWidth)

	header := fmt.Sprintf("  %*s  %s  %s  %s", numW, "#", pad("Folder", origW), pad("New name", newW), "Status")
	separator := "  " + strings.Repeat("─", utf8.RuneCountInString(header)-2)

	fmt.Fprintln(w, header)
	fmt.Fprintln(w, separator)

	for i, it := range items {
		newName := it.NewName
		if !it.WillChange {
			newName = "="
		}
		fmt.Fprintf(w, "  %*d  %s  %s  %s\n",
			numW, i+1,
			pad(truncate(it.OriginalName, origW), origW),
			pad(truncate(newName, newW), newW),
			statusCell(it),
		)
	}
	fmt.Fprintln(w)
}

func statusCell(it PreviewItem) string {
	switch it.DisplayStatus() {
	case display.StatusPending:
		return term.Paint(term.Blue, "rename")
	case display.StatusConflict:
		return term.Paint(term.Orange, "conflict (exists)")
	case display.StatusBatchConflict:
		return term.Paint(term.Orange, "conflict (batch: "+it.ConflictWith+")")
	default:
		return term.Paint(term.Dim, "unchanged")
	}
}

// pad right-pads s with spaces to width runes. Padding is computed on the
// plain text so multi-byte names stay aligned.
func pad(s string, width int) string {
	n := utf8.RuneCountInString(s)
	if n >= width {
		return s
	}
	return s + strings.Repeat(" ", width-n)
}

func truncate(s string, width int) string {
	if utf8.RuneCountInString(s) <= width {
		return s
	}
	r := []rune(s)
	return string(r[:width-1]) + "…"
}
