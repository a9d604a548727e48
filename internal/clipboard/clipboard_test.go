package clipboard

import (
	"errors"
	"testing"
)

type fakeClipboard struct {
	content string
}

func (f *fakeClipboard) Content() string {
	return f.content
}

func (f *fakeClipboard) SetContent(content string) {
	f.content = content
}

func TestFyneBoardWrite(t *testing.T) {
	t.Parallel()

	fake := &fakeClipboard{}
	board := NewFyneBoard(fake)

	if err := board.Write("42 files"); err != nil {
		t.Fatalf("Write: %v", err)
	}
	if fake.content != "42 files" {
		t.Errorf("clipboard content = %q, want %q", fake.content, "42 files")
	}
}

func TestFyneBoardWriteOverwrites(t *testing.T) {
	t.Parallel()

	fake := &fakeClipboard{content: "stale"}
	board := NewFyneBoard(fake)

	if err := board.Write("fresh"); err != nil {
		t.Fatalf("Write: %v", err)
	}
	if fake.content != "fresh" {
		t.Errorf("clipboard content = %q, want %q", fake.content, "fresh")
	}
}

func TestFyneBoardNilClipboard(t *testing.T) {
	t.Parallel()

	board := NewFyneBoard(nil)

	err := board.Write("anything")
	if !errors.Is(err, ErrUnavailable) {
		t.Errorf("Write error = %v, want ErrUnavailable", err)
	}
}
