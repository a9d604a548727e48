package ui

import (
	"strings"
	"testing"
	"time"

	"fyne.io/fyne/v2/test"

	"ueloc/internal/scanner"
)

type recordingBoard struct {
	texts []string
}

func (b *recordingBoard) Write(text string) error {
	b.texts = append(b.texts, text)
	return nil
}

func newTestApp() *App {
	a := newWithApp(test.NewApp(), nil, nil)
	a.window.SetContent(a.createMainContent())
	return a
}

func sampleResult() *scanner.Result {
	return &scanner.Result{
		RootPath:        "/projects/ShooterGame",
		Files:           1234,
		TotalLines:      567890,
		CodeLines:       444555,
		UnreadableFiles: 2,
		TotalBytes:      2048,
		Duration:        1500 * time.Millisecond,
	}
}

func TestNewWithAppDefaults(t *testing.T) {
	a := newWithApp(test.NewApp(), nil, nil)

	if a.config == nil {
		t.Error("config not defaulted")
	}
	if a.scanner == nil {
		t.Error("scanner not wired")
	}
	if a.clipboard == nil {
		t.Error("clipboard not wired")
	}
	if a.window.Title() != appTitle {
		t.Errorf("window title = %q, want %q", a.window.Title(), appTitle)
	}
	if a.statusLabel.Text != msgReady {
		t.Errorf("status = %q, want %q", a.statusLabel.Text, msgReady)
	}
}

func TestResultsPanelPlaceholder(t *testing.T) {
	a := newTestApp()

	if a.pathLabel.Text != msgNoProject {
		t.Errorf("path = %q, want %q", a.pathLabel.Text, msgNoProject)
	}
	for name, label := range map[string]string{
		"files": a.filesLabel.Text,
		"total": a.totalLabel.Text,
		"code":  a.codeLabel.Text,
	} {
		if label != placeholder {
			t.Errorf("%s label = %q before any scan, want %q", name, label, placeholder)
		}
	}
}

func TestShowResult(t *testing.T) {
	a := newTestApp()

	a.showResult(sampleResult())

	if a.pathLabel.Text != "/projects/ShooterGame" {
		t.Errorf("path = %q", a.pathLabel.Text)
	}
	if a.filesLabel.Text != "1,234" {
		t.Errorf("files = %q, want grouped digits", a.filesLabel.Text)
	}
	if a.totalLabel.Text != "567,890" {
		t.Errorf("total = %q, want grouped digits", a.totalLabel.Text)
	}
	if a.codeLabel.Text != "444,555" {
		t.Errorf("code = %q, want grouped digits", a.codeLabel.Text)
	}
	want := "Scanned 2.0 KiB in 1.5s, skipped 2 unreadable files"
	if a.metaLabel.Text != want {
		t.Errorf("meta = %q, want %q", a.metaLabel.Text, want)
	}
}

func TestCopyToClipboard(t *testing.T) {
	a := newTestApp()
	board := &recordingBoard{}
	a.clipboard = board

	a.currentResult = sampleResult()
	a.handleCopyToClipboard()

	if len(board.texts) != 1 {
		t.Fatalf("clipboard writes = %d, want 1", len(board.texts))
	}
	for _, fragment := range []string{"UE Project Line Count", "1,234", "567,890"} {
		if !strings.Contains(board.texts[0], fragment) {
			t.Errorf("copied report missing %q:\n%s", fragment, board.texts[0])
		}
	}
}

func TestCopyToClipboardWithoutResult(t *testing.T) {
	a := newTestApp()
	board := &recordingBoard{}
	a.clipboard = board

	a.handleCopyToClipboard()

	if len(board.texts) != 0 {
		t.Errorf("clipboard written without a scan result: %q", board.texts)
	}
}

func TestSaveReportWithoutResult(t *testing.T) {
	a := newTestApp()

	a.handleSaveReport()

	if a.window.Canvas().Overlays().Top() == nil {
		t.Error("expected an information dialog when saving without a result")
	}
}
