// Package naming turns arbitrary folder names into restricted-charset names
// and tracks which target names a batch has already claimed.
//
// Contents:
//   - Options / DefaultOptions: the six independent normalization switches.
//   - Normalize(name, opts): the fixed-order pipeline (lowercase, strip
//     accents, collapse whitespace, replace disallowed characters, collapse
//     and trim underscores). Pure and total; never returns "".
//   - Claims: in-batch target-name ownership, case-folded on platforms whose
//     default filesystems are case-insensitive.
//   - Cache: LRU-memoized Normalize for front ends that refresh previews often.
//   - Examples: the built-in sample names shown by the example screens.
package naming
