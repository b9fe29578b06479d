package buffer

import "github.com/linguista/linguista/internal/grapheme"

type MoveUnit uint8

const (
	MoveGrapheme MoveUnit = iota
	MoveWord
	MoveLine
	MoveDoc
)

type MoveDir uint8

const (
	DirLeft MoveDir = iota
	DirRight
	DirUp
	DirDown
	DirHome
	DirEnd
)

// Move describes a cursor motion. Extend grows the selection from its anchor
// (or from the cursor when nothing is selected) instead of clearing it.
type Move struct {
	Unit   MoveUnit
	Dir    MoveDir
	Extend bool
}

func (b *Buffer) Move(m Move) {
	from := b.cursor
	to := b.clampPos(b.target(from, m))

	next := selection{}
	if m.Extend {
		anchor := from
		if b.sel.active {
			anchor = b.sel.anchor
		}
		if anchor != to {
			next = selection{active: true, anchor: anchor, head: to}
		}
	} else if r, ok := b.Selection(); ok && m.Unit == MoveGrapheme && (m.Dir == DirLeft || m.Dir == DirRight) {
		// Collapse onto the matching edge instead of stepping past it.
		to = r.Start
		if m.Dir == DirRight {
			to = r.End
		}
	}

	if to == from && next == b.sel {
		return
	}
	b.cursor = to
	b.sel = next
	b.version++
}

func (b *Buffer) target(p Pos, m Move) Pos {
	switch m.Unit {
	case MoveGrapheme:
		return b.stepGrapheme(p, m.Dir)
	case MoveWord:
		return b.stepWord(p, m.Dir)
	case MoveLine:
		return b.stepLine(p, m.Dir)
	case MoveDoc:
		if m.Dir == DirHome || m.Dir == DirUp {
			return Pos{}
		}
		last := len(b.lines) - 1
		return Pos{Row: last, Col: len(b.lines[last])}
	}
	return p
}

func (b *Buffer) stepGrapheme(p Pos, dir MoveDir) Pos {
	switch dir {
	case DirLeft:
		if p.Col > 0 {
			return Pos{Row: p.Row, Col: p.Col - 1}
		}
		if p.Row > 0 {
			return Pos{Row: p.Row - 1, Col: len(b.lines[p.Row-1])}
		}
	case DirRight:
		if p.Col < len(b.lines[p.Row]) {
			return Pos{Row: p.Row, Col: p.Col + 1}
		}
		if p.Row < len(b.lines)-1 {
			return Pos{Row: p.Row + 1}
		}
	default:
		return b.stepLine(p, dir)
	}
	return p
}

func (b *Buffer) stepLine(p Pos, dir MoveDir) Pos {
	switch dir {
	case DirHome:
		return Pos{Row: p.Row}
	case DirEnd:
		return Pos{Row: p.Row, Col: len(b.lines[p.Row])}
	case DirUp:
		if p.Row > 0 {
			return Pos{Row: p.Row - 1, Col: min(p.Col, len(b.lines[p.Row-1]))}
		}
	case DirDown:
		if p.Row < len(b.lines)-1 {
			return Pos{Row: p.Row + 1, Col: min(p.Col, len(b.lines[p.Row+1]))}
		}
	}
	return p
}

// stepWord moves to the previous/next word boundary on the current line,
// wrapping to the neighbouring line at the line edges.
func (b *Buffer) stepWord(p Pos, dir MoveDir) Pos {
	line := b.lines[p.Row]
	switch dir {
	case DirLeft:
		if p.Col == 0 {
			return b.stepGrapheme(p, DirLeft)
		}
		i := p.Col
		for i > 0 && grapheme.Classify(line[i-1]) == grapheme.ClassSpace {
			i--
		}
		if i > 0 {
			class := grapheme.Classify(line[i-1])
			for i > 0 && grapheme.Classify(line[i-1]) == class {
				i--
			}
		}
		return Pos{Row: p.Row, Col: i}
	case DirRight:
		if p.Col == len(line) {
			return b.stepGrapheme(p, DirRight)
		}
		i := p.Col
		for i < len(line) && grapheme.Classify(line[i]) == grapheme.ClassSpace {
			i++
		}
		if i < len(line) {
			class := grapheme.Classify(line[i])
			for i < len(line) && grapheme.Classify(line[i]) == class {
				i++
			}
		}
		return Pos{Row: p.Row, Col: i}
	default:
		return b.stepLine(p, dir)
	}
}
