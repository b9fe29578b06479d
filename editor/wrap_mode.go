package editor

// WrapMode controls how long logical lines are displayed.
//
// WrapNone renders one logical line per visual row and uses horizontal scrolling
// to keep the cursor visible. WrapWord and WrapGrapheme use soft wrapping.
type WrapMode int

const (
	WrapWord WrapMode = iota
	WrapGrapheme
	WrapNone
)

func (w WrapMode) String() string {
	switch w {
	case WrapWord:
		return "word"
	case WrapGrapheme:
		return "grapheme"
	case WrapNone:
		return "none"
	}
	return "unknown"
}
