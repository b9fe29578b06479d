package editor

import "github.com/linguista/linguista/buffer"

type ChangeEvent struct {
	Version      uint64
	Cursor       buffer.Pos
	Selection    buffer.Range
	HasSelection bool

	// Change is the committed edit behind this event. It is absent for
	// cursor and selection moves.
	Change    buffer.Change
	HasChange bool

	Text string
}

func buildChangeEvent(b *buffer.Buffer, since uint64) ChangeEvent {
	ev := ChangeEvent{
		Version: b.Version(),
		Cursor:  b.Cursor(),
		Text:    b.Text(),
	}
	if r, ok := b.Selection(); ok {
		ev.HasSelection = true
		ev.Selection = r
	}
	if ch, ok := b.LastChange(); ok && ch.VersionBefore >= since {
		ev.Change = ch
		ev.HasChange = true
	}
	return ev
}
