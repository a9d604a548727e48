package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	"gopkg.in/yaml.v3"
)

// FileName is the name of the optional override file. A copy placed in the
// root of a scanned project adjusts that project's scan; a copy in the XDG
// config directory adjusts every scan.
const FileName = ".ueloc.yml"

// appDir is the subdirectory used under the XDG config home.
const appDir = "ueloc"

// File is the YAML schema of an override file. Every list is optional;
// a non-empty list replaces the corresponding default wholesale.
type File struct {
	ExcludeDirs       []string `yaml:"exclude_dirs,omitempty"`
	PluginExcludeDirs []string `yaml:"plugin_exclude_dirs,omitempty"`
	Extensions        []string `yaml:"extensions,omitempty"`
}

// GlobalPath returns the location of the user-wide override file,
// following the XDG Base Directory Specification.
func GlobalPath() string {
	return filepath.Join(xdg.ConfigHome, appDir, FileName)
}

// ProjectPath returns the location of a project-local override file for
// the given scan root.
func ProjectPath(root string) string {
	return filepath.Join(root, FileName)
}

// LoadFile parses the override file at path. A missing file yields
// ErrNotFound so callers can fall back to defaults without special-casing
// os.IsNotExist themselves.
func LoadFile(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, err
	}
	return &f, nil
}

// ApplyFile overrides c with the non-empty lists of f. Extensions are
// normalized so ".hpp" and "hpp" in the file mean the same thing.
func (c *Config) ApplyFile(f *File) {
	if f == nil {
		return
	}
	if len(f.ExcludeDirs) > 0 {
		c.ExcludeDirs = append([]string(nil), f.ExcludeDirs...)
	}
	if len(f.PluginExcludeDirs) > 0 {
		c.PluginExcludeDirs = append([]string(nil), f.PluginExcludeDirs...)
	}
	if len(f.Extensions) > 0 {
		exts := make([]string, 0, len(f.Extensions))
		for _, ext := range f.Extensions {
			exts = append(exts, normalizeExt(ext))
		}
		c.IncludeExts = exts
	}
}

// normalizeExt strips surrounding whitespace and a single leading dot.
func normalizeExt(ext string) string {
	return strings.TrimPrefix(strings.TrimSpace(ext), ".")
}
