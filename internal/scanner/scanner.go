package scanner

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"go.uber.org/zap"

	"ueloc/internal/config"
)

// pluginsDirName is the directory whose immediate children may be excluded
// by the plugin-scoped rules.
const pluginsDirName = "Plugins"

// maxLineBytes bounds a single line read from a source file. Generated
// headers occasionally carry very long lines; anything beyond this truncates
// that file's tally rather than failing the scan.
const maxLineBytes = 1 << 20

// Result contains the outcome of one project scan. A Result is created
// fresh by every scan and never modified afterwards; the presenter swaps a
// new one in whole.
type Result struct {
	RootPath        string          `json:"root_path"`
	Files           int             `json:"files"`
	TotalLines      int             `json:"total_lines"`
	CodeLines       int             `json:"code_lines"`
	ByExtension     []ExtensionStat `json:"by_extension,omitempty"`
	UnreadableFiles int             `json:"unreadable_files,omitempty"`
	TotalBytes      int64           `json:"total_bytes"`
	Duration        time.Duration   `json:"duration"`
	ScannedAt       time.Time       `json:"scanned_at"`
}

// ExtensionStat aggregates the counters for one file extension.
type ExtensionStat struct {
	Extension  string `json:"extension"`
	Files      int    `json:"files"`
	TotalLines int    `json:"total_lines"`
	CodeLines  int    `json:"code_lines"`
}

// CodeScanner defines the interface for counting source lines beneath a
// directory root.
type CodeScanner interface {
	Scan(ctx context.Context, root string) (*Result, error)
}

// ProjectScanner implements CodeScanner for Unreal Engine project trees.
type ProjectScanner struct {
	config *config.Config
	logger *zap.Logger
}

// New creates a ProjectScanner with the given configuration and logger.
func New(cfg *config.Config, logger *zap.Logger) *ProjectScanner {
	if cfg == nil {
		cfg = config.Default()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ProjectScanner{
		config: cfg,
		logger: logger,
	}
}

// Scan walks every regular file under root, skips excluded subtrees and
// files outside the configured extensions, and tallies total and code lines
// for the rest. The walk is synchronous and single-threaded; it blocks the
// caller until the whole tree has been visited. Unreadable files and
// directories are skipped, never reported as errors.
func (s *ProjectScanner) Scan(ctx context.Context, root string) (*Result, error) {
	if root == "" {
		return nil, fmt.Errorf("root path cannot be empty")
	}

	info, err := os.Stat(root)
	if err != nil {
		return nil, fmt.Errorf("failed to stat path %q: %w", root, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("path %q is not a directory", root)
	}

	// A project may carry its own overrides; they apply to this scan only.
	cfg := s.config.Clone()
	overridePath := config.ProjectPath(root)
	if f, err := config.LoadFile(overridePath); err == nil {
		cfg.ApplyFile(f)
		s.logger.Info("applied project overrides", zap.String("file", overridePath))
	} else if !errors.Is(err, config.ErrNotFound) {
		s.logger.Warn("ignoring unreadable override file",
			zap.String("file", overridePath), zap.Error(err))
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid scan configuration: %w", err)
	}

	start := time.Now()
	result := &Result{
		RootPath:  root,
		ScannedAt: start,
	}
	tally := make(map[string]*ExtensionStat)

	// An excluded name anywhere on the root's own path excludes every
	// file beneath it, so the walk can be skipped outright.
	if shouldSkipPath(cfg, root) {
		s.logger.Info("root lies inside an excluded directory", zap.String("root", root))
	} else {
		if err := s.walk(ctx, cfg, root, result, tally); err != nil {
			return nil, fmt.Errorf("failed to scan directory: %w", err)
		}
	}

	result.Duration = time.Since(start)
	result.ByExtension = sortedStats(tally)
	return result, nil
}

// walk recursively tallies one directory. Excluded directories are pruned
// without descending; unreadable directories are logged and skipped so the
// scan always produces a best-effort result. Only a cancelled context stops
// the walk.
func (s *ProjectScanner) walk(ctx context.Context, cfg *config.Config, dir string, res *Result, tally map[string]*ExtensionStat) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		s.logger.Warn("skipping unreadable directory", zap.String("dir", dir), zap.Error(err))
		return nil // continue with partial results
	}

	for _, entry := range entries {
		path := filepath.Join(dir, entry.Name())

		if entry.IsDir() {
			if cfg.IsExcludedDir(entry.Name()) {
				continue
			}
			if cfg.IsPluginScoped(entry.Name()) && filepath.Base(dir) == pluginsDirName {
				continue
			}
			if err := s.walk(ctx, cfg, path, res, tally); err != nil {
				return err
			}
			continue
		}

		// Symlinks, sockets and the like are never counted.
		if !entry.Type().IsRegular() {
			continue
		}
		if shouldSkipPath(cfg, path) {
			continue
		}
		ext := fileExtension(entry.Name())
		if !cfg.IncludesExtension(ext) {
			continue
		}

		total, code, err := s.countFile(path)
		if err != nil {
			res.UnreadableFiles++
			s.logger.Debug("skipping unreadable file", zap.String("file", path), zap.Error(err))
			continue
		}

		res.Files++
		res.TotalLines += total
		res.CodeLines += code
		if fi, err := entry.Info(); err == nil {
			res.TotalBytes += fi.Size()
		}

		bucket := tally[ext]
		if bucket == nil {
			bucket = &ExtensionStat{Extension: ext}
			tally[ext] = bucket
		}
		bucket.Files++
		bucket.TotalLines += total
		bucket.CodeLines += code
	}

	return nil
}

// countFile reads one source file and returns its total and code line
// counts. A file that cannot be opened returns an error; a read error in
// the middle of a file keeps the lines read so far.
func (s *ProjectScanner) countFile(path string) (total, code int, err error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, 0, err
	}
	defer f.Close()

	sc := bufio.NewScanner(f)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineBytes)
	for sc.Scan() {
		total++
		if !isCommentOrBlank(sc.Text()) {
			code++
		}
	}
	if err := sc.Err(); err != nil {
		s.logger.Debug("short read, keeping partial counts",
			zap.String("file", path), zap.Error(err))
	}
	return total, code, nil
}

// isCommentOrBlank classifies a line with the prefix heuristic: after
// trimming whitespace, blank lines, // line comments, /* block openers and
// * continuation lines are not code. Block comment bodies whose lines do
// not start with one of the markers still count as code; that imprecision
// is accepted.
func isCommentOrBlank(line string) bool {
	s := strings.TrimSpace(line)
	return s == "" ||
		strings.HasPrefix(s, "//") ||
		strings.HasPrefix(s, "/*") ||
		strings.HasPrefix(s, "*")
}

// shouldSkipPath reports whether any name on the path, including those
// above the scan root, excludes the entry at its end. The plugin rule
// matches a "Plugins" component immediately followed by a plugin-scoped
// name.
func shouldSkipPath(cfg *config.Config, path string) bool {
	parts := pathComponents(path)
	for i, part := range parts {
		if cfg.IsExcludedDir(part) {
			return true
		}
		if part == pluginsDirName && i+1 < len(parts) && cfg.IsPluginScoped(parts[i+1]) {
			return true
		}
	}
	return false
}

// pathComponents splits a cleaned path into its named parts.
func pathComponents(path string) []string {
	var parts []string
	for _, part := range strings.Split(filepath.ToSlash(filepath.Clean(path)), "/") {
		if part != "" && part != "." {
			parts = append(parts, part)
		}
	}
	return parts
}

// fileExtension returns the extension of a file name without its dot, or
// "" when there is none. A dotfile with no stem has no extension.
func fileExtension(name string) string {
	ext := filepath.Ext(name)
	if ext == "" || ext == name {
		return ""
	}
	return ext[1:]
}

// sortedStats flattens the per-extension tally, largest code count first,
// ties broken by name.
func sortedStats(tally map[string]*ExtensionStat) []ExtensionStat {
	stats := make([]ExtensionStat, 0, len(tally))
	for _, stat := range tally {
		stats = append(stats, *stat)
	}
	sort.Slice(stats, func(i, j int) bool {
		if stats[i].CodeLines != stats[j].CodeLines {
			return stats[i].CodeLines > stats[j].CodeLines
		}
		return stats[i].Extension < stats[j].Extension
	})
	return stats
}
