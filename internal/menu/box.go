package menu

import (
	"fmt"
	"io"
	"strings"
	"unicode/utf8"
)

// box draws a double-line frame with a centered title and left-aligned
// body lines. Lines longer than the frame are printed unpadded.
func box(w io.Writer, title string, lines ...string) {
	bar := strings.Repeat("═", boxWidth)
	fmt.Fprintln(w, "╔"+bar+"╗")
	fmt.Fprintln(w, "║"+center(title, boxWidth)+"║")
	if len(lines) == 0 {
		fmt.Fprintln(w, "╚"+bar+"╝")
		return
	}
	fmt.Fprintln(w, "╠"+bar+"╣")
	for _, l := range lines {
		fmt.Fprintln(w, "║  "+padRight(l, boxWidth-2)+"║")
	}
	fmt.Fprintln(w, "╚"+bar+"╝")
}

func center(s string, width int) string {
	n := utf8.RuneCountInString(s)
	if n >= width {
		return s
	}
	left := (width - n) / 2
	return strings.Repeat(" ", left) + s + strings.Repeat(" ", width-n-left)
}

func padRight(s string, width int) string {
	n := utf8.RuneCountInString(s)
	if n >= width {
		return s
	}
	return s + strings.Repeat(" ", width-n)
}
