package format

import "fmt"

// Engine applies rules from a registry using one offset unit.
type Engine struct {
	unit  Unit
	rules *Registry
}

type Option func(*Engine)

// WithUnit sets the offset unit. Unknown units fall back to UnitRune.
func WithUnit(u Unit) Option {
	return func(e *Engine) {
		if u.valid() {
			e.unit = u
		}
	}
}

// WithRegistry replaces the rule table.
func WithRegistry(reg *Registry) Option {
	return func(e *Engine) {
		if reg != nil {
			e.rules = reg
		}
	}
}

// NewEngine returns an engine counting runes over the builtin rules unless
// configured otherwise.
func NewEngine(opts ...Option) *Engine {
	e := &Engine{unit: UnitRune}
	for _, opt := range opts {
		opt(e)
	}
	if e.rules == nil {
		e.rules = DefaultRegistry()
	}
	return e
}

func (e *Engine) Unit() Unit { return e.unit }

func (e *Engine) Rules() *Registry { return e.rules }

// Apply formats the selection of text with the rule registered as name.
// On error the zero Result is returned.
func (e *Engine) Apply(text string, sel Selection, name string) (Result, error) {
	r, ok := e.rules.Lookup(name)
	if !ok {
		return Result{}, fmt.Errorf("%w: %q", ErrUnknownRule, name)
	}
	return e.ApplyRule(text, sel, r)
}

// ApplyRule is Apply for a rule value that need not be registered.
func (e *Engine) ApplyRule(text string, sel Selection, r Rule) (Result, error) {
	if r == nil {
		return Result{}, fmt.Errorf("%w: nil rule", ErrUnknownRule)
	}
	if err := r.validate(); err != nil {
		return Result{}, err
	}

	d := newDocument(text, e.unit)
	if sel.Start < 0 || sel.Start > sel.End || sel.End > d.unitLen() {
		return Result{}, fmt.Errorf("%w: %s over length %d", ErrInvalidSelection, sel, d.unitLen())
	}
	si, ok := d.clusterAt(sel.Start)
	if !ok {
		return Result{}, fmt.Errorf("%w: start %d splits a grapheme cluster", ErrInvalidSelection, sel.Start)
	}
	ei, ok := d.clusterAt(sel.End)
	if !ok {
		return Result{}, fmt.Errorf("%w: end %d splits a grapheme cluster", ErrInvalidSelection, sel.End)
	}

	sp := r.splice(d, si, ei)

	// Every marker must start and end on a cluster boundary of the new text.
	nd := newDocument(sp.text, e.unit)
	for _, m := range sp.marks {
		if !nd.boundary(m[0]) || !nd.boundary(m[1]) {
			return Result{}, fmt.Errorf("%w: %s marker at byte %d would join a neighbouring grapheme cluster", ErrInvalidSelection, r.Name(), m[0])
		}
	}

	start := e.unit.Len(sp.text[:sp.start])
	end := start
	if sp.end > sp.start {
		end = start + e.unit.Len(sp.text[sp.start:sp.end])
	}
	if sel.IsCaret() {
		end = start
	}
	return Result{
		Text:      sp.text,
		Selection: Selection{Start: start, End: end},
		Inserted:  e.unit.Len(sp.text) - d.unitLen(),
	}, nil
}

var defaultEngine = NewEngine()

// Apply runs the default engine: rune offsets and the builtin rules.
func Apply(text string, sel Selection, name string) (Result, error) {
	return defaultEngine.Apply(text, sel, name)
}
