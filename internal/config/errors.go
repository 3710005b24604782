// Package config loads the YAML project description, applies defaults
// and validation, and builds the solution model handed to the
// generators.
package config

import "errors"

// Sentinel errors for description file handling.
var (
	// ErrNotFound indicates no description file exists at the path.
	ErrNotFound = errors.New("config: description file not found")

	// ErrParse indicates the description file is not valid YAML or
	// contains keys that are not recognized.
	ErrParse = errors.New("config: description parse failure")

	// ErrInvalid indicates the description parsed but holds values
	// that cannot be resolved, such as an unknown platform name.
	ErrInvalid = errors.New("config: invalid description")
)
