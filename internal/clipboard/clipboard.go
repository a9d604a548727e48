package clipboard

import (
	"errors"

	"fyne.io/fyne/v2"
)

// ErrUnavailable is returned when the platform exposes no clipboard, for
// example in headless test drivers.
var ErrUnavailable = errors.New("clipboard is not available")

// Board is the destination for copied report text.
type Board interface {
	Write(text string) error
}

// FyneBoard implements Board on top of the toolkit clipboard.
type FyneBoard struct {
	clipboard fyne.Clipboard
}

// NewFyneBoard wraps the given toolkit clipboard.
func NewFyneBoard(clipboard fyne.Clipboard) *FyneBoard {
	return &FyneBoard{clipboard: clipboard}
}

// Write replaces the clipboard contents with text.
func (b *FyneBoard) Write(text string) error {
	if b.clipboard == nil {
		return ErrUnavailable
	}
	b.clipboard.SetContent(text)
	return nil
}
