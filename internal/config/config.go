package config

// Directory names that are never scanned, matching the layout of a stock
// Unreal Engine project: generated build artifacts, editor caches and IDE
// metadata live in these folders.
var defaultExcludeDirs = []string{"Intermediate", "Binaries", "Saved", ".vs"}

// Directory names skipped only when they sit directly under a "Plugins"
// folder. Plugin sources are counted, their generated and vendored parts
// are not.
var defaultPluginExcludeDirs = []string{"Intermediate", "ThirdParty"}

// File extensions (without the dot) treated as C++ source code.
var defaultIncludeExts = []string{"h", "cpp", "inl"}

// Config defines which files a project scan visits and which it counts.
type Config struct {
	// ExcludeDirs are directory names skipped anywhere in the tree.
	ExcludeDirs []string

	// PluginExcludeDirs are directory names skipped only directly
	// beneath a "Plugins" directory.
	PluginExcludeDirs []string

	// IncludeExts are file extensions, without the leading dot, that
	// qualify a file for line counting. Matching is case-sensitive.
	IncludeExts []string
}

// Default returns the stock configuration for an Unreal Engine project:
// skip Intermediate, Binaries, Saved and .vs everywhere, skip generated and
// third-party plugin content, count .h, .cpp and .inl files.
func Default() *Config {
	return &Config{
		ExcludeDirs:       append([]string(nil), defaultExcludeDirs...),
		PluginExcludeDirs: append([]string(nil), defaultPluginExcludeDirs...),
		IncludeExts:       append([]string(nil), defaultIncludeExts...),
	}
}

// Clone returns a deep copy so per-scan overrides never touch the base
// configuration.
func (c *Config) Clone() *Config {
	return &Config{
		ExcludeDirs:       append([]string(nil), c.ExcludeDirs...),
		PluginExcludeDirs: append([]string(nil), c.PluginExcludeDirs...),
		IncludeExts:       append([]string(nil), c.IncludeExts...),
	}
}

// IsExcludedDir reports whether a directory name is skipped regardless of
// where it appears.
func (c *Config) IsExcludedDir(name string) bool {
	return contains(c.ExcludeDirs, name)
}

// IsPluginScoped reports whether a directory name is skipped when its
// parent directory is named "Plugins".
func (c *Config) IsPluginScoped(name string) bool {
	return contains(c.PluginExcludeDirs, name)
}

// IncludesExtension reports whether files with the given extension
// (without the dot) are counted.
func (c *Config) IncludesExtension(ext string) bool {
	return contains(c.IncludeExts, ext)
}

// Validate checks that the configuration can drive a meaningful scan.
// It returns a sentinel error describing the first problem found.
func (c *Config) Validate() error {
	if len(c.IncludeExts) == 0 {
		return ErrNoExtensions
	}
	for _, list := range [][]string{c.ExcludeDirs, c.PluginExcludeDirs, c.IncludeExts} {
		for _, entry := range list {
			if entry == "" {
				return ErrBlankEntry
			}
		}
	}
	return nil
}

func contains(list []string, s string) bool {
	for _, entry := range list {
		if entry == s {
			return true
		}
	}
	return false
}
