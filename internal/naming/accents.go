package naming

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// stripAccents decomposes s (NFD), drops nonspacing combining marks (Mn) and
// recomposes what is left (NFC), so "ñáéíóú" becomes "naeiou". If the
// transform reports an error the input is returned unchanged and the rest of
// the pipeline carries on.
//
// Invalid UTF-8 is replaced with U+FFFD first. The chain passes a bad byte
// through untouched and then skips the mark that follows it, which would
// leave an accent for a second pass to strip.
//
// A transform.Chain keeps internal buffers, so a fresh chain is built per
// call; Normalize must stay safe for concurrent use.
func stripAccents(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	s = strings.ToValidUTF8(s, string(utf8.RuneError))
	out, _, err := transform.String(t, s)
	if err != nil {
		return s
	}
	return out
}
