package config

import "errors"

// Sentinel errors returned by Validate and LoadFile. Callers match them
// with errors.Is.
var (
	// ErrNoExtensions is returned when the extension list is empty;
	// a scan with no countable extensions can never count a file.
	ErrNoExtensions = errors.New("no file extensions configured")

	// ErrBlankEntry is returned when an exclusion or extension list
	// contains an empty string.
	ErrBlankEntry = errors.New("configuration list contains a blank entry")

	// ErrNotFound is returned by LoadFile when no override file exists
	// at the given path. Override files are optional, so most callers
	// treat this as "use the defaults".
	ErrNotFound = errors.New("override file not found")
)
