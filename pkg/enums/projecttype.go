package enums

import "strings"

// ProjectType is the kind of binary a project produces.
type ProjectType int

const (
	// ProjectTypeLibrary produces a static library.
	ProjectTypeLibrary ProjectType = iota
	// ProjectTypeTool produces a console executable.
	ProjectTypeTool
	// ProjectTypeApp produces a windowed application.
	ProjectTypeApp
	// ProjectTypeScreenSaver produces a screen saver.
	ProjectTypeScreenSaver
	// ProjectTypeSharedLibrary produces a dynamically linked library.
	ProjectTypeSharedLibrary
	// ProjectTypeEmpty produces nothing; the project only tracks files.
	ProjectTypeEmpty
)

var projectTypeNames = map[ProjectType]string{
	ProjectTypeLibrary:       "Library",
	ProjectTypeTool:          "Tool",
	ProjectTypeApp:           "App",
	ProjectTypeScreenSaver:   "ScreenSaver",
	ProjectTypeSharedLibrary: "SharedLibrary",
	ProjectTypeEmpty:         "Empty",
}

// projectTypeAliases accepts the historical command-line spellings in
// addition to the canonical names.
var projectTypeAliases = map[string]ProjectType{
	"library":       ProjectTypeLibrary,
	"lib":           ProjectTypeLibrary,
	"tool":          ProjectTypeTool,
	"console":       ProjectTypeTool,
	"app":           ProjectTypeApp,
	"game":          ProjectTypeApp,
	"screensaver":   ProjectTypeScreenSaver,
	"sharedlibrary": ProjectTypeSharedLibrary,
	"dll":           ProjectTypeSharedLibrary,
	"empty":         ProjectTypeEmpty,
}

// String returns the display name, e.g. "SharedLibrary".
func (p ProjectType) String() string {
	if name, ok := projectTypeNames[p]; ok {
		return name
	}
	return "Unknown"
}

// IsLibrary reports whether the project produces a static or shared library.
func (p ProjectType) IsLibrary() bool {
	return p == ProjectTypeLibrary || p == ProjectTypeSharedLibrary
}

// ParseProjectType resolves a project type from a canonical name or one
// of its aliases. The match is case-insensitive.
func ParseProjectType(name string) (ProjectType, bool) {
	t, ok := projectTypeAliases[strings.ToLower(name)]
	return t, ok
}

// DefaultProjectType is used when a description omits the project kind.
func DefaultProjectType() ProjectType {
	return ProjectTypeTool
}
