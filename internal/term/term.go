// Package term holds the ANSI escape sequences used for console output and
// decides once, at startup, whether they are emitted at all.
//
// The sequences are plain string variables so callers can concatenate them
// directly; with colors off every one of them is "", and Paint returns its
// input unchanged.
package term

import (
	"os"
	"strings"

	"github.com/backmassage/foldernorm/internal/config"
)

// Escape sequences, empty while colors are off.
var (
	Red     = ""
	Green   = ""
	Yellow  = ""
	Orange  = ""
	Blue    = ""
	Cyan    = ""
	Magenta = ""
	Dim     = ""
	NC      = "" // reset
)

// palette maps each color variable to its sequence.
var palette = []struct {
	v   *string
	seq string
}{
	{&Red, "\033[1;91m"},
	{&Green, "\033[1;92m"},
	{&Yellow, "\033[1;93m"},
	{&Orange, "\033[1;38;5;208m"},
	{&Blue, "\033[1;94m"},
	{&Cyan, "\033[1;96m"},
	{&Magenta, "\033[1;95m"},
	{&Dim, "\033[2m"},
	{&NC, "\033[0m"},
}

// Configure switches every color variable on or off according to mode.
// logging.NewLogger calls it before the first line is written.
func Configure(mode config.ColorMode) {
	on := wantColor(mode)
	for _, p := range palette {
		if on {
			*p.v = p.seq
		} else {
			*p.v = ""
		}
	}
}

// Enabled reports whether colors are on.
func Enabled() bool { return NC != "" }

// Paint returns s wrapped in color and a reset, or s alone when color is "".
func Paint(color, s string) string {
	if color == "" {
		return s
	}
	return color + s + NC
}

// wantColor resolves auto mode: stdout must be a terminal, NO_COLOR unset
// (https://no-color.org), and TERM not "dumb".
func wantColor(mode config.ColorMode) bool {
	switch mode {
	case config.ColorAlways:
		return true
	case config.ColorNever:
		return false
	}
	if os.Getenv("NO_COLOR") != "" || strings.EqualFold(os.Getenv("TERM"), "dumb") {
		return false
	}
	return IsTerminal(os.Stdout)
}

// IsTerminal reports whether f is a character device.
func IsTerminal(f *os.File) bool {
	if f == nil {
		return false
	}
	info, err := f.Stat()
	return err == nil && info.Mode()&os.ModeCharDevice != 0
}
