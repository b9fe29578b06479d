package editor

import "github.com/linguista/linguista/buffer"

var endOfLine = buffer.Move{Unit: buffer.MoveLine, Dir: buffer.DirEnd}

func selectCols(row, start, end int) buffer.Range {
	return buffer.Range{Start: buffer.Pos{Row: row, Col: start}, End: buffer.Pos{Row: row, Col: end}}
}
