// Package generators holds one emitter per supported build system.
// Each emitter turns a model.Solution into project files on disk,
// writing only when content changed.
package generators

import (
	"errors"
	"fmt"

	"github.com/chengwei920412/makeprojects/internal/hostenv"
	"github.com/chengwei920412/makeprojects/internal/model"
	"github.com/chengwei920412/makeprojects/pkg/enums"
)

// ErrUnsupported indicates the IDE and platform pair has no emitter.
var ErrUnsupported = errors.New("generators: unsupported target")

// Result reports one emitted file.
type Result struct {
	// Path is the absolute path of the file.
	Path string
	// Written is false when the file already held the content.
	Written bool
	// ConvertedNative is set when a native project file was produced
	// from the emitted one, e.g. a CodeWarrior .mcp from its XML.
	ConvertedNative bool
}

// Generator emits project files for one build system family.
type Generator interface {
	// Name identifies the generator in logs and summaries.
	Name() string
	// Supported reports whether the platform can be emitted. A family
	// platform counts as supported when any of its members is.
	Supported(platform enums.PlatformType) bool
	// Generate writes the project files for the solution.
	Generate(solution *model.Solution) ([]Result, error)
}

// For returns the generator handling an IDE. ok is false when no
// emitter exists for it.
func For(ide enums.IDEType, env hostenv.Env) (Generator, bool) {
	switch {
	case ide == enums.IDEWatcom:
		return newWatcom(env), true
	case ide == enums.IDEMake:
		return newMakefile(env), true
	case ide == enums.IDECodeBlocks:
		return newCodeBlocks(env), true
	case ide.IsCodeWarrior():
		return newCodeWarrior(env, ide), true
	case ide == enums.IDEVisualStudio2003,
		ide == enums.IDEVisualStudio2005,
		ide == enums.IDEVisualStudio2008:
		return newVisualStudio(env, ide), true
	}
	return nil, false
}

// Generate runs the emitter for the solution's IDE, guarding the
// platform support check so every caller gets the same error shape.
func Generate(solution *model.Solution, env hostenv.Env) ([]Result, error) {
	gen, ok := For(solution.IDE, env)
	if !ok {
		return nil, fmt.Errorf("%w: no generator for %s", ErrUnsupported, solution.IDE.DisplayName())
	}
	if len(solution.Projects) == 0 {
		return nil, fmt.Errorf("generators: solution %q has no projects", solution.Name)
	}
	platform := solution.Projects[0].Platform
	if !gen.Supported(platform) {
		return nil, fmt.Errorf("%w: %s cannot target %s",
			ErrUnsupported, solution.IDE.DisplayName(), platform.DisplayName())
	}
	for _, project := range solution.Projects {
		dropUnsupported(project, gen)
		if len(project.Configurations) == 0 {
			return nil, fmt.Errorf("%w: %s cannot target %s",
				ErrUnsupported, solution.IDE.DisplayName(), project.Platform.DisplayName())
		}
	}
	return gen.Generate(solution)
}

// dropUnsupported removes configurations whose concrete platform the
// emitter cannot serve. A family platform may expand past an emitter's
// reach, e.g. windows brings win64 to Watcom, and the remaining
// members still get their project files.
func dropUnsupported(project *model.Project, gen Generator) {
	kept := project.Configurations[:0]
	for _, cfg := range project.Configurations {
		if gen.Supported(cfg.Platform) {
			kept = append(kept, cfg)
		}
	}
	project.Configurations = kept
}
