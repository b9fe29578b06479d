// Package editor provides a Bubble Tea text area for composing Markdown,
// backed by the buffer package.
//
// The package is responsible for input handling, viewport behavior,
// grapheme-aware rendering, soft wrapping, and host integration hooks
// (formatting toolbar keys, clipboard, highlighting, and change events).
// Formatting runs through a format.Engine, so the rules a host registers are
// the rules its keys can trigger.
package editor
