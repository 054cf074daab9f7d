package naming

import (
	"strings"
	"unicode"
)

// FallbackName is returned whenever normalization would produce an empty name.
const FallbackName = "unnamed_folder"

// Separator replaces whitespace runs and disallowed characters.
const Separator = '_'

// Options selects which normalization steps run. The zero value disables
// every step; use [DefaultOptions] for the standard behavior.
type Options struct {
	Lowercase       bool // Fold letters to lowercase.
	RemoveAccents   bool // Strip combining marks after canonical decomposition.
	ReplaceSpaces   bool // Collapse whitespace runs into a single '_'.
	RemoveSpecial   bool // Replace characters outside the allowed set with '_'.
	PreserveNumbers bool // Allow ASCII digits.
	PreserveDots    bool // Allow '.'.
}

// DefaultOptions returns every switch on except PreserveDots.
func DefaultOptions() Options {
	return Options{
		Lowercase:       true,
		RemoveAccents:   true,
		ReplaceSpaces:   true,
		RemoveSpecial:   true,
		PreserveNumbers: true,
		PreserveDots:    false,
	}
}

// Normalize maps name to its sanitized form under opts. Steps run in a fixed
// order and each feeds the next:
//
//	lowercase → strip accents → whitespace runs to '_' → disallowed to '_'
//	→ collapse '_' runs → trim '_' → fallback if empty
//
// When ReplaceSpaces is off, whitespace joins the allowed set so that
// RemoveSpecial keeps literal spaces instead of turning them into '_'.
func Normalize(name string, opts Options) string {
	if name == "" {
		return FallbackName
	}

	if opts.Lowercase {
		name = strings.ToLower(name)
	}
	if opts.RemoveAccents {
		name = stripAccents(name)
	}

	allowed := allowedSet{digits: opts.PreserveNumbers, dots: opts.PreserveDots}
	if opts.ReplaceSpaces {
		name = collapseWhitespace(name)
		allowed.underscore = true
	} else {
		allowed.spaces = true
	}

	if opts.RemoveSpecial {
		name = strings.Map(func(r rune) rune {
			if allowed.contains(r) {
				return r
			}
			return Separator
		}, name)
	}

	name = collapseSeparators(name)
	name = strings.Trim(name, string(Separator))
	if name == "" {
		return FallbackName
	}
	return name
}

// allowedSet is the character class kept by the RemoveSpecial step. ASCII
// letters are always allowed.
type allowedSet struct {
	digits     bool
	dots       bool
	underscore bool
	spaces     bool
}

func (a allowedSet) contains(r rune) bool {
	switch {
	case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z':
		return true
	case r >= '0' && r <= '9':
		return a.digits
	case r == '.':
		return a.dots
	case r == Separator:
		return a.underscore
	}
	return a.spaces && unicode.IsSpace(r)
}

// collapseWhitespace replaces every maximal whitespace run with one '_'.
func collapseWhitespace(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	inSpace := false
	for _, r := range s {
		if unicode.IsSpace(r) {
			if !inSpace {
				b.WriteRune(Separator)
			}
			inSpace = true
			continue
		}
		inSpace = false
		b.WriteRune(r)
	}
	return b.String()
}

// collapseSeparators replaces every maximal run of '_' with one '_'.
func collapseSeparators(s string) string {
	if !strings.Contains(s, "__") {
		return s
	}
	var b strings.Builder
	b.Grow(len(s))
	prev := rune(0)
	for _, r := range s {
		if r == Separator && prev == Separator {
			continue
		}
		b.WriteRune(r)
		prev = r
	}
	return b.String()
}
