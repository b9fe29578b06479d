// Package format implements selection-aware Markdown formatting over plain
// text.
//
// The engine takes a text, a half-open selection [Start, End) and the name of
// a rule, and returns the rewritten text together with the selection the
// caller should restore on its input widget. It holds no state between calls
// and is safe for concurrent use.
//
// Two rule kinds exist. Wrap rules (bold, italic, strikethrough, code)
// surround the selection with a prefix and a suffix. Line rules (quote,
// bullet, numbered) prepend a marker to every line the selection touches and
// never stack a marker on a line that already has it.
//
// Offsets are counted in a Unit chosen by the caller: UTF-8 bytes, runes,
// UTF-16 code units or grapheme clusters. Offsets that would split a grapheme
// cluster are rejected.
package format
