package report

import (
	"errors"
	"io"
	"path/filepath"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"ueloc/internal/scanner"
)

// Writer defines the interface for rendering a scan result. Implementations
// write one report per call and return the number of bytes written.
type Writer interface {
	Write(result *scanner.Result) (int, error)
}

// errNilResult is returned when a writer is handed nothing to render.
var errNilResult = errors.New("no scan result to write")

// numberPrinter renders counters with digit grouping so six-figure line
// counts stay readable.
var numberPrinter = message.NewPrinter(language.English)

// ForFilename picks a writer from the extension of the file being saved:
// .json gets pretty-printed JSON, .md and .markdown get Markdown, anything
// else gets plain text.
func ForFilename(name string, output io.Writer) Writer {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".json":
		return NewJSONWriter(output, WithPrettyPrint())
	case ".md", ".markdown":
		return NewMarkdownWriter(output)
	default:
		return NewTextWriter(output)
	}
}
