package format

import (
	"fmt"
	"strings"
	"unicode/utf16"
	"unicode/utf8"

	"github.com/linguista/linguista/internal/grapheme"
)

// Selection is a half-open range [Start, End) into a text. Start == End is a
// caret.
type Selection struct {
	Start int
	End   int
}

// Caret returns the empty selection at off.
func Caret(off int) Selection {
	return Selection{Start: off, End: off}
}

func (s Selection) IsCaret() bool { return s.Start == s.End }

func (s Selection) Len() int { return s.End - s.Start }

func (s Selection) String() string {
	return fmt.Sprintf("[%d,%d)", s.Start, s.End)
}

// Result is the outcome of a successful Apply. Selection is valid for Text in
// the engine's unit.
type Result struct {
	Text      string
	Selection Selection
	// Inserted is Len(Text) - Len(input) in the engine's unit.
	Inserted int
}

// Unit is the measure for offsets and lengths.
type Unit uint8

const (
	UnitRune Unit = iota
	UnitByte
	UnitUTF16
	UnitGrapheme
)

var unitNames = [...]string{
	UnitRune:     "rune",
	UnitByte:     "byte",
	UnitUTF16:    "utf16",
	UnitGrapheme: "grapheme",
}

func (u Unit) String() string {
	if int(u) < len(unitNames) {
		return unitNames[u]
	}
	return fmt.Sprintf("Unit(%d)", uint8(u))
}

// ParseUnit maps a unit name (case-insensitive) to a Unit.
func ParseUnit(name string) (Unit, error) {
	n := strings.ToLower(strings.TrimSpace(name))
	switch n {
	case "", "rune", "runes", "codepoint":
		return UnitRune, nil
	case "byte", "bytes", "utf8":
		return UnitByte, nil
	case "utf16", "utf-16":
		return UnitUTF16, nil
	case "grapheme", "graphemes":
		return UnitGrapheme, nil
	}
	return UnitRune, fmt.Errorf("unknown offset unit %q", name)
}

// Len returns the length of s in unit u.
func (u Unit) Len(s string) int {
	switch u {
	case UnitByte:
		return len(s)
	case UnitUTF16:
		n := 0
		for _, r := range s {
			if w := utf16.RuneLen(r); w > 0 {
				n += w
			} else {
				n++
			}
		}
		return n
	case UnitGrapheme:
		return grapheme.Count(s)
	default:
		return utf8.RuneCountInString(s)
	}
}

func (u Unit) valid() bool {
	return int(u) < len(unitNames)
}
