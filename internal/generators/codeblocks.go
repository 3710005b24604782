package generators

import (
	"fmt"
	"path/filepath"
	"sort"
	"strings"

	"github.com/chengwei920412/makeprojects/internal/hostenv"
	"github.com/chengwei920412/makeprojects/internal/model"
	"github.com/chengwei920412/makeprojects/pkg/enums"
)

// codeblocks emits .cbp project files driving the Open Watcom compiler
// from the CodeBlocks IDE.
type codeblocks struct {
	env hostenv.Env
}

func newCodeBlocks(env hostenv.Env) *codeblocks {
	return &codeblocks{env: env}
}

func (c *codeblocks) Name() string {
	return "codeblocks"
}

// Supported mirrors the Watcom backend since that is the compiler the
// emitted project drives.
func (c *codeblocks) Supported(platform enums.PlatformType) bool {
	for _, concrete := range platform.Expanded() {
		switch concrete {
		case enums.PlatformWin32, enums.PlatformMSDos4GW, enums.PlatformMSDosX32:
			return true
		}
	}
	return false
}

var codeblocksAcceptable = []enums.FileType{
	enums.FileTypeHeader,
	enums.FileTypeCpp,
	enums.FileTypeC,
	enums.FileTypeWindowsResource,
	enums.FileTypeHLSL,
	enums.FileTypeGLSL,
}

func (c *codeblocks) Generate(solution *model.Solution) ([]Result, error) {
	project := solution.Projects[0]
	if err := project.ResolveFiles(codeblocksAcceptable); err != nil {
		return nil, err
	}

	fileName := solution.OutputStem() + ".cbp"
	var lines []string

	lines = append(lines,
		`<?xml version="1.0" encoding="UTF-8" standalone="yes" ?>`,
		"<CodeBlocks_project_file>",
		"\t<FileVersion major=\"1\" minor=\"6\" />",
		"\t<Project>",
		fmt.Sprintf("\t\t<Option title=\"%s\" />", solution.Name),
		"\t\t<Option makefile=\"makefile\" />",
		"\t\t<Option pch_mode=\"2\" />",
		"\t\t<Option compiler=\"ow\" />")

	// Per configuration build targets.
	lines = append(lines, "\t\t<Build>")
	binarySuffix := ".exe"
	targetType := "1"
	if project.Type.IsLibrary() {
		binarySuffix = ".lib"
		targetType = "2"
	}
	for _, cfg := range project.Configurations {
		stem := solution.Name + solution.IDECode() +
			cfg.Platform.ShortCode() + cfg.ShortCode()
		lines = append(lines,
			fmt.Sprintf("\t\t\t<Target title=\"%s\">", cbTargetTitle(project, cfg)),
			fmt.Sprintf("\t\t\t\t<Option output=\"bin/%s%s\" prefix_auto=\"0\" extension_auto=\"0\" />", stem, binarySuffix),
			"\t\t\t\t<Option working_dir=\"\" />",
			fmt.Sprintf("\t\t\t\t<Option object_output=\"temp/%s/\" />", stem),
			fmt.Sprintf("\t\t\t\t<Option type=\"%s\" />", targetType),
			"\t\t\t\t<Option compiler=\"ow\" />",
			"\t\t\t\t<Option createDefFile=\"1\" />",
			"\t\t\t\t<Compiler>")
		for _, option := range cbCompilerOptions(cfg) {
			lines = append(lines, fmt.Sprintf("\t\t\t\t\t<Add option=\"%s\" />", option))
		}
		lines = append(lines, "\t\t\t\t</Compiler>", "\t\t\t</Target>")
	}
	lines = append(lines,
		"\t\t\t<Environment>",
		"\t\t\t\t<Variable name=\"ERROR_FILE\" value=\"$(TARGET_OBJECT_DIR)foo.err\" />",
		"\t\t\t</Environment>",
		"\t\t</Build>")

	// One virtual target building every configuration.
	var titles []string
	for _, cfg := range project.Configurations {
		titles = append(titles, cbTargetTitle(project, cfg))
	}
	lines = append(lines,
		"\t\t<VirtualTargets>",
		fmt.Sprintf("\t\t\t<Add alias=\"Everything\" targets=\"%s;\" />",
			strings.Join(titles, ";")),
		"\t\t</VirtualTargets>")

	// Defines shared by every configuration go on the global compiler
	// node, per configuration ones stay on their targets.
	lines = append(lines, "\t\t<Compiler>")
	for _, define := range sharedDefines(project) {
		lines = append(lines, fmt.Sprintf("\t\t\t<Add option=\"-d%s\" />", define))
	}
	var includes []string
	includes = append(includes, project.SourceDirs...)
	includes = append(includes, project.IncludeFolders...)
	for _, dir := range includes {
		dir = strings.ReplaceAll(dir, "\\", "/")
		lines = append(lines, fmt.Sprintf("\t\t\t<Add directory='&quot;%s&quot;' />", dir))
	}
	lines = append(lines, "\t\t</Compiler>")

	var units []string
	for _, file := range project.SourceFiles {
		units = append(units, file.RelativePath)
	}
	sort.Strings(units)
	for _, unit := range units {
		lines = append(lines, fmt.Sprintf("\t\t<Unit filename=\"%s\" />", unit))
	}

	lines = append(lines,
		"\t\t<Extensions>",
		"\t\t\t<code_completion />",
		"\t\t\t<envvars />",
		"\t\t\t<debugger />",
		"\t\t</Extensions>",
		"\t</Project>",
		"</CodeBlocks_project_file>")

	result, err := writeOutput(c.env, solution,
		filepath.Join(solution.WorkingDir, fileName), lines)
	if err != nil {
		return nil, err
	}
	return []Result{result}, nil
}

// cbTargetTitle disambiguates configuration titles when the project
// builds more than one platform.
func cbTargetTitle(project *model.Project, cfg *model.Configuration) string {
	if len(project.Platforms()) > 1 {
		return cfg.Name + "_" + cfg.Platform.ShortCode()
	}
	return cfg.Name
}

// cbCompilerOptions renders the per target compiler switches.
func cbCompilerOptions(cfg *model.Configuration) []string {
	var options []string
	if cfg.Debug && cfg.Optimization == 0 {
		options = append(options, "-d2")
	} else {
		options = append(options, "-ox", "-ot")
	}
	options = append(options, "-wx", "-fp6", "-6r", "-fr=$(ERROR_FILE)")
	if cfg.Debug {
		options = append(options, "-d_DEBUG")
	} else {
		options = append(options, "-dNDEBUG")
	}
	for _, define := range cfg.Defines {
		if define == "_DEBUG" || define == "NDEBUG" {
			continue
		}
		options = append(options, "-d"+define)
	}
	return options
}

// sharedDefines returns the project level defines every target gets.
func sharedDefines(project *model.Project) []string {
	return append([]string(nil), project.Defines...)
}
