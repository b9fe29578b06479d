// Package buffer is the editable document behind the composer: text split
// into grapheme clusters, a cursor, a selection, and undo history.
//
// Positions are 0-based (Row, Col) where Col counts grapheme clusters.
// Ranges are half-open: [Start, End).
//
// Formatting goes through package format: ApplyFormat converts the cursor and
// selection into offsets, runs the engine, and writes the result back as one
// undoable change.
package buffer
