package model

import "github.com/chengwei920412/makeprojects/pkg/enums"

// Solution owns the projects generated into one set of project files
// for a single IDE target.
type Solution struct {
	// Name is the solution name, the stem of generated file names.
	Name string
	// WorkingDir is the absolute directory output is written into.
	WorkingDir string
	// IDE is the build system the generators emit for.
	IDE enums.IDEType
	// Perforce requests a "p4 edit" before rewriting tracked output.
	Perforce bool
	// Verbose enables generation progress output.
	Verbose bool

	Projects []*Project
}

// AddProject appends a project to the solution.
func (s *Solution) AddProject(p *Project) {
	s.Projects = append(s.Projects, p)
}

// IDECode returns the IDE file name suffix, e.g. "wat".
func (s *Solution) IDECode() string {
	return s.IDE.ShortCode()
}

// PlatformCode returns the declared platform suffix of the first
// project, the family code when a family was declared.
func (s *Solution) PlatformCode() string {
	if len(s.Projects) == 0 {
		return ""
	}
	return s.Projects[0].Platform.ShortCode()
}

// OutputStem builds the base name generated files use:
// name + IDE code + platform code.
func (s *Solution) OutputStem() string {
	return s.Name + s.IDECode() + s.PlatformCode()
}
