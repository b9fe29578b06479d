package editor

// wrappedSegment is the part of a logical line drawn on one visual row.
// Columns are cluster indices, cells are visual offsets within the line.
type wrappedSegment struct {
	StartCol, EndCol   int
	StartCell, EndCell int
}

func (s wrappedSegment) Cells() int { return s.EndCell - s.StartCell }

// wrapSegments splits vl into rows at most width cells wide. A cluster wider
// than width gets a row of its own.
func wrapSegments(vl visualLine, mode WrapMode, width int) []wrappedSegment {
	n := vl.Len()
	if width <= 0 || mode == WrapNone || vl.width <= width {
		return []wrappedSegment{{StartCol: 0, EndCol: n, StartCell: 0, EndCell: vl.width}}
	}

	var segs []wrappedSegment
	for start := 0; start < n; {
		used := 0
		overflow := start
		for overflow < n {
			w := vl.cells[overflow].Width
			if used > 0 && used+w > width {
				break
			}
			used += w
			overflow++
		}

		end := overflow
		if mode == WrapWord && overflow < n {
			if br, ok := wordBreak(vl.cells, start, overflow); ok {
				end = br
			}
		}
		segs = append(segs, segmentFor(vl, start, end))
		start = end
	}
	return segs
}

// wordBreak returns the end of the last whitespace run in [start, overflow),
// so the run stays on the current row and the next word starts the next.
func wordBreak(cells []visualCell, start, overflow int) (int, bool) {
	last := -1
	for i := start; i < overflow; {
		if !cells[i].Space {
			i++
			continue
		}
		j := i + 1
		for j < overflow && cells[j].Space {
			j++
		}
		last = j
		i = j
	}
	if last <= start {
		return 0, false
	}
	return last, true
}

func segmentFor(vl visualLine, start, end int) wrappedSegment {
	seg := wrappedSegment{StartCol: start, EndCol: end, StartCell: vl.cellForCol(start)}
	seg.EndCell = vl.cellForCol(end)
	return seg
}
