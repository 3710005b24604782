package model

import "github.com/chengwei920412/makeprojects/pkg/enums"

// Configuration is one build variant of a project, bound to a concrete
// platform. Attribute lookups chain to the owning project so values
// shared by every configuration only need to be stated once.
type Configuration struct {
	// Name is the configuration name, e.g. "Debug" or "Release".
	Name string
	// Platform is the concrete platform this variant builds for.
	// Family platforms are expanded before configurations are created,
	// so this is never an expandable member.
	Platform enums.PlatformType
	// Debug enables debug information and disables optimization.
	Debug bool
	// Optimization is the compiler optimization level, 0 to 4.
	Optimization int
	// LinkTimeCodeGen enables whole-program optimization at link time.
	LinkTimeCodeGen bool
	// AnalyzeCode enables static analysis passes where supported.
	AnalyzeCode bool
	// Profile enables profiling instrumentation, "" for off, "on" or
	// "fast" where the toolchain distinguishes.
	Profile string

	// Per-configuration additions to the project-wide attribute lists.
	Defines        []string
	IncludeFolders []string
	LibraryFolders []string
	Libraries      []string
	Frameworks     []string

	// DeployFolder overrides the project deploy folder when set.
	DeployFolder string

	project *Project
}

// Project returns the owning project, nil until the configuration is
// added to one.
func (c *Configuration) Project() *Project {
	return c.project
}

// ShortCode returns the file name suffix for the configuration name.
func (c *Configuration) ShortCode() string {
	return enums.ConfigShortCode(c.Name)
}

// uniqueChain concatenates the lists, keeping the first occurrence of
// each value and dropping later duplicates.
func uniqueChain(lists ...[]string) []string {
	var out []string
	seen := make(map[string]bool)
	for _, list := range lists {
		for _, value := range list {
			if !seen[value] {
				seen[value] = true
				out = append(out, value)
			}
		}
	}
	return out
}

// AllDefines returns the configuration defines followed by the owning
// project's, duplicates removed in first-seen order.
func (c *Configuration) AllDefines() []string {
	if c.project == nil {
		return uniqueChain(c.Defines)
	}
	return uniqueChain(c.Defines, c.project.Defines)
}

// AllIncludeFolders chains the include search paths.
func (c *Configuration) AllIncludeFolders() []string {
	if c.project == nil {
		return uniqueChain(c.IncludeFolders)
	}
	return uniqueChain(c.IncludeFolders, c.project.IncludeFolders)
}

// AllLibraryFolders chains the library search paths.
func (c *Configuration) AllLibraryFolders() []string {
	if c.project == nil {
		return uniqueChain(c.LibraryFolders)
	}
	return uniqueChain(c.LibraryFolders, c.project.LibraryFolders)
}

// AllLibraries chains the libraries passed to the linker.
func (c *Configuration) AllLibraries() []string {
	if c.project == nil {
		return uniqueChain(c.Libraries)
	}
	return uniqueChain(c.Libraries, c.project.Libraries)
}

// AllFrameworks chains the Apple frameworks passed to the linker.
func (c *Configuration) AllFrameworks() []string {
	if c.project == nil {
		return uniqueChain(c.Frameworks)
	}
	return uniqueChain(c.Frameworks, c.project.Frameworks)
}

// ResolvedDeployFolder returns the configuration deploy folder, or the
// project's when the configuration does not set one.
func (c *Configuration) ResolvedDeployFolder() string {
	if c.DeployFolder != "" {
		return c.DeployFolder
	}
	if c.project != nil {
		return c.project.DeployFolder
	}
	return ""
}
