package ui

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
	"github.com/dustin/go-humanize"
	"go.uber.org/zap"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"ueloc/internal/clipboard"
	"ueloc/internal/config"
	"ueloc/internal/report"
	"ueloc/internal/scanner"
)

const (
	// UI Constants
	appTitle     = "UE Project Line Counter"
	windowWidth  = 620
	windowHeight = 460

	// Icons
	folderIcon = "📁"
	saveIcon   = "💾"
	copyIcon   = "📋"

	// File operations
	defaultReportExt = ".md"
	timeFormat       = "2006-01-02_15-04-05"

	// Messages
	msgReady       = "Select an Unreal Engine project folder to count its source lines."
	msgNoProject   = "No project selected"
	msgNoData      = "Please scan a project folder first."
	msgScanBusy    = "A scan is already running. Please wait for it to finish."
	msgScanSuccess = "Project scanned successfully!"
	msgSaveSuccess = "Report saved successfully!"
	msgCopySuccess = "Report copied to clipboard!"

	placeholder = "-"
)

// statPrinter renders counters with digit grouping for the results panel.
var statPrinter = message.NewPrinter(language.English)

// App is the main GUI application for counting source lines in Unreal Engine
// projects.
type App struct {
	// Core components
	app    fyne.App
	window fyne.Window
	config *config.Config
	logger *zap.Logger

	// Services
	scanner   scanner.CodeScanner
	clipboard clipboard.Board

	// UI components
	statusLabel *widget.Label
	pathLabel   *widget.Label
	filesLabel  *widget.Label
	totalLabel  *widget.Label
	codeLabel   *widget.Label
	metaLabel   *widget.Label

	// State - UI thread only, no synchronization needed
	currentResult *scanner.Result
	scanning      bool
}

// New creates the application with the given configuration.
func New(cfg *config.Config, logger *zap.Logger) *App {
	fyneApp := app.New()
	fyneApp.SetIcon(theme.FolderIcon())

	return newWithApp(fyneApp, cfg, logger)
}

// newWithApp wires the application against a concrete toolkit instance.
func newWithApp(fyneApp fyne.App, cfg *config.Config, logger *zap.Logger) *App {
	if cfg == nil {
		cfg = config.Default()
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	window := fyneApp.NewWindow(appTitle)
	window.Resize(fyne.NewSize(windowWidth, windowHeight))

	return &App{
		app:         fyneApp,
		window:      window,
		config:      cfg,
		logger:      logger,
		scanner:     scanner.New(cfg, logger),
		clipboard:   clipboard.NewFyneBoard(fyneApp.Clipboard()),
		statusLabel: widget.NewLabel(msgReady),
	}
}

// Run starts the application.
func (a *App) Run() {
	a.window.SetContent(a.createMainContent())
	a.enableDragDrop()
	a.window.ShowAndRun()
}

// createMainContent creates the main UI content.
func (a *App) createMainContent() fyne.CanvasObject {
	// Header
	title := widget.NewLabel(appTitle)
	title.TextStyle.Bold = true

	// Buttons
	selectBtn := widget.NewButton(folderIcon+" Select Project Folder", a.handleSelectFolder)
	saveBtn := widget.NewButton(saveIcon+" Save Report", a.handleSaveReport)
	copyBtn := widget.NewButton(copyIcon+" Copy to Clipboard", a.handleCopyToClipboard)

	buttonContainer := container.NewGridWithColumns(3,
		selectBtn,
		saveBtn,
		copyBtn,
	)

	// Main layout
	header := container.NewVBox(title, buttonContainer, a.statusLabel)
	content := container.NewBorder(header, nil, nil, nil, a.createResultsCard())

	return content
}

// createResultsCard creates the panel showing the counters of the last scan.
func (a *App) createResultsCard() fyne.CanvasObject {
	a.pathLabel = widget.NewLabel(msgNoProject)
	a.pathLabel.Wrapping = fyne.TextWrapBreak

	a.filesLabel = newStatValue()
	a.totalLabel = newStatValue()
	a.codeLabel = newStatValue()
	a.metaLabel = widget.NewLabel("")

	stats := container.NewGridWithColumns(2,
		widget.NewLabel("Files counted"), a.filesLabel,
		widget.NewLabel("Total lines"), a.totalLabel,
		widget.NewLabel("Code lines"), a.codeLabel,
	)

	card := widget.NewCard("Results", "",
		container.NewVBox(a.pathLabel, stats, a.metaLabel))

	return container.NewPadded(card)
}

// newStatValue creates the value label for a single counter.
func newStatValue() *widget.Label {
	label := widget.NewLabel(placeholder)
	label.TextStyle.Bold = true
	return label
}

// handleSelectFolder opens the native folder picker and scans the choice.
func (a *App) handleSelectFolder() {
	folderDialog := dialog.NewFolderOpen(func(folder fyne.ListableURI, err error) {
		if err != nil {
			a.showError("Folder Selection Error", err)
			return
		}
		if folder == nil {
			return // User cancelled
		}

		a.scanProjectAsync(folder.Path())
	}, a.window)

	folderDialog.Show()
}

// scanProjectAsync counts the project on a worker goroutine so the window
// stays responsive. Only one scan runs at a time.
func (a *App) scanProjectAsync(path string) {
	if a.scanning {
		dialog.ShowInformation("Scan Running", msgScanBusy, a.window)
		return
	}
	a.scanning = true

	// Create progress dialog
	progressBar := widget.NewProgressBarInfinite()
	progressBar.Start()
	progress := dialog.NewCustomWithoutButtons("Scanning", progressBar, a.window)

	// UI updates must be dispatched to the main thread
	fyne.Do(func() {
		progress.Show()
		a.statusLabel.SetText("Scanning: " + path)
	})

	a.logger.Info("scan started", zap.String("path", path))

	go func() {
		defer func() {
			if r := recover(); r != nil {
				a.logger.Error("panic during scan", zap.Any("panic", r))
				// UI updates must use main thread dispatcher
				fyne.Do(func() {
					a.scanning = false
					a.statusLabel.SetText("Scan failed")
				})
			}
			// UI updates must use main thread dispatcher
			fyne.Do(func() {
				progressBar.Stop()
				progress.Hide()
			})
		}()

		result, err := a.scanner.Scan(context.Background(), path)
		if err != nil {
			a.logger.Warn("scan failed", zap.String("path", path), zap.Error(err))
		} else {
			a.logger.Info("scan finished",
				zap.Int("files", result.Files),
				zap.Int("total_lines", result.TotalLines),
				zap.Int("code_lines", result.CodeLines),
				zap.Duration("duration", result.Duration))
		}

		// UI updates must use main thread dispatcher
		fyne.Do(func() {
			a.scanning = false
			if err != nil {
				a.showError("Scan Error", err)
				a.statusLabel.SetText("Scan failed")
				return
			}

			a.showResult(result)
			a.statusLabel.SetText(fmt.Sprintf("Scanned %s files from: %s",
				statPrinter.Sprintf("%d", result.Files), path))
			dialog.ShowInformation("Success", msgScanSuccess, a.window)
		})
	}()
}

// showResult publishes a finished scan to the results panel.
func (a *App) showResult(result *scanner.Result) {
	a.currentResult = result

	a.pathLabel.SetText(result.RootPath)
	a.filesLabel.SetText(statPrinter.Sprintf("%d", result.Files))
	a.totalLabel.SetText(statPrinter.Sprintf("%d", result.TotalLines))
	a.codeLabel.SetText(statPrinter.Sprintf("%d", result.CodeLines))

	meta := fmt.Sprintf("Scanned %s in %s",
		humanize.IBytes(uint64(result.TotalBytes)), result.Duration.Round(time.Millisecond))
	if result.UnreadableFiles > 0 {
		meta = fmt.Sprintf("%s, skipped %d unreadable files", meta, result.UnreadableFiles)
	}
	a.metaLabel.SetText(meta)
}

// handleSaveReport writes the last result to a file picked by the user. The
// report format follows the chosen file extension.
func (a *App) handleSaveReport() {
	result := a.currentResult
	if result == nil {
		dialog.ShowInformation("No Data", msgNoData, a.window)
		return
	}

	defaultName := fmt.Sprintf("ue_loc_report_%s%s", time.Now().Format(timeFormat), defaultReportExt)

	saveDialog := dialog.NewFileSave(func(writer fyne.URIWriteCloser, err error) {
		if err != nil {
			a.showError("Save Error", err)
			return
		}
		if writer == nil {
			return // User cancelled
		}
		defer writer.Close()

		if _, werr := report.ForFilename(writer.URI().Name(), writer).Write(result); werr != nil {
			a.showError("Save Error", werr)
			return
		}

		dialog.ShowInformation("Success", msgSaveSuccess, a.window)
	}, a.window)

	saveDialog.SetFileName(defaultName)
	saveDialog.Show()
}

// handleCopyToClipboard puts the plain text report on the clipboard.
func (a *App) handleCopyToClipboard() {
	result := a.currentResult
	if result == nil {
		dialog.ShowInformation("No Data", msgNoData, a.window)
		return
	}

	var buf bytes.Buffer
	if _, err := report.NewTextWriter(&buf).Write(result); err != nil {
		a.showError("Clipboard Error", err)
		return
	}
	if err := a.clipboard.Write(buf.String()); err != nil {
		a.showError("Clipboard Error", err)
		return
	}

	dialog.ShowInformation("Success", msgCopySuccess, a.window)
}

// showError shows an error dialog.
func (a *App) showError(title string, err error) {
	dialog.ShowError(fmt.Errorf("%s: %w", title, err), a.window)
}

// enableDragDrop lets the user drop a project folder onto the window.
func (a *App) enableDragDrop() {
	a.window.SetOnDropped(func(position fyne.Position, uris []fyne.URI) {
		if len(uris) == 0 {
			return
		}
		uri := uris[0] // Take first dropped item

		// Convert URI to local path
		if uri.Scheme() != "file" {
			dialog.ShowError(fmt.Errorf("invalid file path"), a.window)
			return
		}

		path := uri.Path()
		if info, err := os.Stat(path); err == nil && info.IsDir() {
			a.scanProjectAsync(path)
		} else {
			dialog.ShowError(fmt.Errorf("please drop a folder, not a file"), a.window)
		}
	})
}
