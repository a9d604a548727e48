package report

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/dustin/go-humanize"

	"ueloc/internal/scanner"
)

const reportTitle = "UE Project Line Count"

// TextWriter renders a result as aligned plain text. This is the format
// used for the clipboard and for exports without a recognized extension.
type TextWriter struct {
	output io.Writer
}

// NewTextWriter creates a TextWriter that outputs to the given writer.
func NewTextWriter(output io.Writer) *TextWriter {
	return &TextWriter{output: output}
}

// Write outputs the report as plain text.
func (w *TextWriter) Write(result *scanner.Result) (int, error) {
	if result == nil {
		return 0, errNilResult
	}

	var b strings.Builder
	b.WriteString(reportTitle + "\n")
	b.WriteString(strings.Repeat("=", 50) + "\n\n")

	fmt.Fprintf(&b, "Project path:  %s\n", result.RootPath)
	fmt.Fprintf(&b, "Files counted: %s\n", numberPrinter.Sprintf("%d", result.Files))
	fmt.Fprintf(&b, "Total lines:   %s\n", numberPrinter.Sprintf("%d", result.TotalLines))
	fmt.Fprintf(&b, "Code lines:    %s\n", numberPrinter.Sprintf("%d", result.CodeLines))

	b.WriteString("\n")
	fmt.Fprintf(&b, "Scanned %s in %s\n",
		humanize.IBytes(uint64(result.TotalBytes)),
		result.Duration.Round(time.Millisecond))
	if result.UnreadableFiles > 0 {
		fmt.Fprintf(&b, "%s could not be read and were skipped\n",
			numberPrinter.Sprintf("%d file(s)", result.UnreadableFiles))
	}

	if len(result.ByExtension) > 0 {
		b.WriteString("\nBy extension:\n")
		fmt.Fprintf(&b, "  %-10s %8s %12s %12s\n", "ext", "files", "total", "code")
		for _, stat := range result.ByExtension {
			fmt.Fprintf(&b, "  %-10s %8s %12s %12s\n",
				"."+stat.Extension,
				numberPrinter.Sprintf("%d", stat.Files),
				numberPrinter.Sprintf("%d", stat.TotalLines),
				numberPrinter.Sprintf("%d", stat.CodeLines))
		}
	}

	return io.WriteString(w.output, b.String())
}
