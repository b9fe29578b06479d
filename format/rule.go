package format

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// Kind distinguishes the two rule shapes.
type Kind uint8

const (
	KindWrap Kind = iota
	KindLine
)

func (k Kind) String() string {
	switch k {
	case KindWrap:
		return "wrap"
	case KindLine:
		return "line"
	default:
		return fmt.Sprintf("Kind(%d)", uint8(k))
	}
}

// Rule is a named formatting transformation. The set of shapes is closed:
// rules are built with Wrap, Line or Numbered.
type Rule interface {
	Name() string
	Kind() Kind
	// Describe is a one-line summary for listings, e.g. `**…**` or `> `.
	Describe() string

	validate() error
	splice(d *document, si, ei int) splice
}

// splice is a rewritten text plus the new selection in byte offsets. marks
// holds the byte span of every inserted marker in text.
type splice struct {
	text       string
	start, end int
	marks      [][2]int
}

// WrapRule surrounds the selection with Prefix and Suffix.
type WrapRule struct {
	name   string
	prefix string
	suffix string
}

// Wrap returns a wrap rule. An empty suffix repeats the prefix.
func Wrap(name, prefix, suffix string) WrapRule {
	if suffix == "" {
		suffix = prefix
	}
	return WrapRule{name: name, prefix: prefix, suffix: suffix}
}

func (r WrapRule) Name() string     { return r.name }
func (r WrapRule) Kind() Kind       { return KindWrap }
func (r WrapRule) Prefix() string   { return r.prefix }
func (r WrapRule) Suffix() string   { return r.suffix }
func (r WrapRule) Describe() string { return r.prefix + "…" + r.suffix }

func (r WrapRule) validate() error {
	if err := validateName(r.name); err != nil {
		return err
	}
	if r.prefix == "" {
		return fmt.Errorf("%w: %s: empty prefix", ErrInvalidRule, r.name)
	}
	if strings.ContainsAny(r.prefix+r.suffix, "\r\n") {
		return fmt.Errorf("%w: %s: markers must not contain line breaks", ErrInvalidRule, r.name)
	}
	return nil
}

func (r WrapRule) splice(d *document, si, ei int) splice {
	bs, be := d.bytes[si], d.bytes[ei]

	var sb strings.Builder
	sb.Grow(len(d.text) + len(r.prefix) + len(r.suffix))
	sb.WriteString(d.text[:bs])
	sb.WriteString(r.prefix)
	sb.WriteString(d.text[bs:be])
	sb.WriteString(r.suffix)
	sb.WriteString(d.text[be:])

	start := bs + len(r.prefix)
	end := start + (be - bs)
	return splice{
		text:  sb.String(),
		start: start,
		end:   end,
		marks: [][2]int{{bs, start}, {end, end + len(r.suffix)}},
	}
}

var numberedMarker = regexp.MustCompile(`^[0-9]+\. `)

// LineRule prepends a marker to each line touched by the selection.
type LineRule struct {
	name     string
	marker   string
	numbered bool
}

// Line returns a line rule with a fixed marker such as "> ".
func Line(name, marker string) LineRule {
	return LineRule{name: name, marker: marker}
}

// Numbered returns a line rule that numbers the touched lines "1. ", "2. ", …
// Lines already starting with "<digits>. " are left alone.
func Numbered(name string) LineRule {
	return LineRule{name: name, numbered: true}
}

func (r LineRule) Name() string     { return r.name }
func (r LineRule) Kind() Kind       { return KindLine }
func (r LineRule) IsNumbered() bool { return r.numbered }

// Marker returns the marker for the n-th touched line (1-based).
func (r LineRule) Marker(n int) string {
	if r.numbered {
		return strconv.Itoa(n) + ". "
	}
	return r.marker
}

func (r LineRule) Describe() string {
	if r.numbered {
		return "1. "
	}
	return r.marker
}

func (r LineRule) validate() error {
	if err := validateName(r.name); err != nil {
		return err
	}
	if r.numbered {
		return nil
	}
	if r.marker == "" {
		return fmt.Errorf("%w: %s: empty marker", ErrInvalidRule, r.name)
	}
	if strings.ContainsAny(r.marker, "\r\n") {
		return fmt.Errorf("%w: %s: marker must not contain line breaks", ErrInvalidRule, r.name)
	}
	return nil
}

// MarkerLen returns the byte length of the marker line starts with, or 0.
func (r LineRule) MarkerLen(line string) int {
	if r.numbered {
		return len(numberedMarker.FindString(line))
	}
	if strings.HasPrefix(line, r.marker) {
		return len(r.marker)
	}
	return 0
}

func (r LineRule) splice(d *document, si, ei int) splice {
	starts := d.lines(si, ei)
	bs, be := d.bytes[si], d.bytes[ei]

	var sb strings.Builder
	sb.Grow(len(d.text) + len(starts)*4)

	prev := 0
	total := 0
	shiftStart := 0
	var marks [][2]int
	for n, ls := range starts {
		off := d.bytes[ls]
		line := d.text[off:d.bytes[d.lineEnd(ls)]]
		if r.MarkerLen(line) > 0 {
			continue
		}
		m := r.Marker(n + 1)
		sb.WriteString(d.text[prev:off])
		sb.WriteString(m)
		prev = off
		marks = append(marks, [2]int{off + total, off + total + len(m)})
		total += len(m)
		if n == 0 && off <= bs {
			shiftStart = len(m)
		}
	}
	sb.WriteString(d.text[prev:])

	return splice{
		text:  sb.String(),
		start: bs + shiftStart,
		end:   be + total,
		marks: marks,
	}
}

func validateName(name string) error {
	if name == "" {
		return fmt.Errorf("%w: empty name", ErrInvalidRule)
	}
	if strings.IndexFunc(name, func(r rune) bool { return r == ' ' || r == '\t' || r == '\n' || r == '\r' }) >= 0 {
		return fmt.Errorf("%w: name %q contains whitespace", ErrInvalidRule, name)
	}
	return nil
}

// Builtin rule names.
const (
	RuleBold          = "bold"
	RuleItalic        = "italic"
	RuleStrikethrough = "strikethrough"
	RuleCode          = "code"
	RuleQuote         = "quote"
	RuleBullet        = "bullet"
	RuleNumbered      = "numbered"
)

// Builtins returns the default rule table in toolbar order.
func Builtins() []Rule {
	return []Rule{
		Wrap(RuleBold, "**", "**"),
		Wrap(RuleItalic, "*", "*"),
		Wrap(RuleStrikethrough, "~~", "~~"),
		Wrap(RuleCode, "`", "`"),
		Line(RuleQuote, "> "),
		Line(RuleBullet, "- "),
		Numbered(RuleNumbered),
	}
}
