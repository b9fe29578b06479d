package buffer

import "fmt"

// Pos is a document position. Col counts grapheme clusters on the row.
type Pos struct {
	Row int
	Col int
}

func (p Pos) String() string { return fmt.Sprintf("%d:%d", p.Row, p.Col) }

// Range is a half-open span [Start, End) with Start <= End in document order
// once normalized.
type Range struct {
	Start Pos
	End   Pos
}

func (r Range) IsEmpty() bool { return r.Start == r.End }

// ComparePos orders positions by row, then column.
func ComparePos(a, b Pos) int {
	switch {
	case a.Row != b.Row:
		if a.Row < b.Row {
			return -1
		}
		return 1
	case a.Col < b.Col:
		return -1
	case a.Col > b.Col:
		return 1
	default:
		return 0
	}
}

// NormalizeRange swaps Start and End when they are out of order.
func NormalizeRange(r Range) Range {
	if ComparePos(r.Start, r.End) > 0 {
		r.Start, r.End = r.End, r.Start
	}
	return r
}

// ClampPos clamps p into a document of rowCount rows where lineLen(row) is the
// cluster count of a row. rowCount below 1 is treated as 1.
func ClampPos(p Pos, rowCount int, lineLen func(row int) int) Pos {
	if rowCount < 1 {
		rowCount = 1
	}
	row := clamp(p.Row, 0, rowCount-1)
	maxCol := 0
	if lineLen != nil {
		maxCol = max(lineLen(row), 0)
	}
	return Pos{Row: row, Col: clamp(p.Col, 0, maxCol)}
}

func clamp(v, lo, hi int) int {
	if hi < lo {
		return lo
	}
	return min(max(v, lo), hi)
}
