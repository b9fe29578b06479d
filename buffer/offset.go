package buffer

import "github.com/linguista/linguista/format"

// OffsetFromPos converts p into an offset counted in u. It reports false when
// p lies outside the document.
func (b *Buffer) OffsetFromPos(p Pos, u format.Unit) (int, bool) {
	if b.clampPos(p) != p {
		return 0, false
	}
	off := 0
	for row := 0; row < p.Row; row++ {
		off += lineUnits(b.lines[row], u) + 1
	}
	return off + lineUnits(b.lines[p.Row][:p.Col], u), true
}

// PosFromOffset converts an offset in u into a position. Offsets past the end
// or inside a grapheme cluster report false.
func (b *Buffer) PosFromOffset(off int, u format.Unit) (Pos, bool) {
	if off < 0 {
		return Pos{}, false
	}
	cur := 0
	for row, line := range b.lines {
		if off == cur {
			return Pos{Row: row}, true
		}
		for col, c := range line {
			cur += clusterUnits(c, u)
			if off == cur {
				return Pos{Row: row, Col: col + 1}, true
			}
			if off < cur {
				return Pos{}, false
			}
		}
		cur++ // line break
	}
	return Pos{}, false
}

func clusterUnits(c string, u format.Unit) int {
	if u == format.UnitGrapheme {
		return 1
	}
	return u.Len(c)
}

func lineUnits(line []string, u format.Unit) int {
	if u == format.UnitGrapheme {
		return len(line)
	}
	n := 0
	for _, c := range line {
		n += u.Len(c)
	}
	return n
}
