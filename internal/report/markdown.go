package report

import (
	"io"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/nao1215/markdown"

	"ueloc/internal/scanner"
)

// MarkdownWriter renders a result as GitHub-flavored Markdown, suitable
// for pasting into a project wiki or pull request.
type MarkdownWriter struct {
	output io.Writer
}

// NewMarkdownWriter creates a MarkdownWriter that outputs to the given
// writer.
func NewMarkdownWriter(output io.Writer) *MarkdownWriter {
	return &MarkdownWriter{output: output}
}

// Write outputs the report as Markdown.
func (w *MarkdownWriter) Write(result *scanner.Result) (int, error) {
	if result == nil {
		return 0, errNilResult
	}

	md := markdown.NewMarkdown(w.output)

	md.H1(reportTitle)
	md.PlainText("")
	md.Table(markdown.TableSet{
		Header: []string{"Property", "Value"},
		Rows: [][]string{
			{"Project path", "`" + result.RootPath + "`"},
			{"Scan date", result.ScannedAt.Format("2006-01-02 15:04:05")},
			{"Files counted", numberPrinter.Sprintf("%d", result.Files)},
			{"Total lines", numberPrinter.Sprintf("%d", result.TotalLines)},
			{"Code lines", numberPrinter.Sprintf("%d", result.CodeLines)},
			{"Scanned size", humanize.IBytes(uint64(result.TotalBytes))},
			{"Duration", result.Duration.Round(time.Millisecond).String()},
		},
	})
	md.PlainText("")

	if result.UnreadableFiles > 0 {
		md.PlainText(numberPrinter.Sprintf("%d file(s) could not be read and were skipped.", result.UnreadableFiles))
		md.PlainText("")
	}

	if len(result.ByExtension) > 0 {
		md.H2("By Extension")
		md.PlainText("")

		rows := make([][]string, 0, len(result.ByExtension))
		for _, stat := range result.ByExtension {
			rows = append(rows, []string{
				"." + stat.Extension,
				numberPrinter.Sprintf("%d", stat.Files),
				numberPrinter.Sprintf("%d", stat.TotalLines),
				numberPrinter.Sprintf("%d", stat.CodeLines),
			})
		}
		md.Table(markdown.TableSet{
			Header: []string{"Extension", "Files", "Total lines", "Code lines"},
			Rows:   rows,
		})
		md.PlainText("")
	}

	return len(md.String()), md.Build()
}
