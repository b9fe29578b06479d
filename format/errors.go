package format

import "errors"

var (
	// ErrInvalidSelection reports a selection with start > end, a bound
	// outside the text, or a bound inside a grapheme cluster.
	ErrInvalidSelection = errors.New("invalid selection")

	// ErrUnknownRule reports a rule name missing from the registry.
	ErrUnknownRule = errors.New("unknown format rule")

	// ErrInvalidRule reports a rule that cannot be registered (empty name,
	// empty marker, marker containing a line break).
	ErrInvalidRule = errors.New("invalid format rule")

	// ErrDuplicateRule reports a second registration under the same name.
	ErrDuplicateRule = errors.New("duplicate format rule")
)
