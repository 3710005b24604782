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

// makefile emits GNU make files for the unix style toolchains.
type makefile struct {
	env hostenv.Env
}

func newMakefile(env hostenv.Env) *makefile {
	return &makefile{env: env}
}

func (m *makefile) Name() string {
	return "make"
}

// Supported covers the hosts a plain gcc/clang makefile builds on.
func (m *makefile) Supported(platform enums.PlatformType) bool {
	for _, concrete := range platform.Expanded() {
		if concrete == enums.PlatformLinux || concrete.IsMacOSX() {
			return true
		}
	}
	return false
}

var makefileAcceptable = []enums.FileType{
	enums.FileTypeHeader,
	enums.FileTypeCpp,
	enums.FileTypeC,
}

func (m *makefile) Generate(solution *model.Solution) ([]Result, error) {
	project := solution.Projects[0]
	if err := project.ResolveFiles(makefileAcceptable); err != nil {
		return nil, err
	}

	fileName := solution.OutputStem() + ".mak"
	var lines []string

	lines = append(lines,
		"#",
		"# Build "+solution.Name+" with make",
		"# Generated with makeprojects",
		"#",
		"",
		"CXX ?= g++",
		"CC ?= cc",
		"AR ?= ar",
		"",
		"PROJECT_NAME = "+solution.Name,
		"BASE_TEMP_DIR = temp/$(PROJECT_NAME)",
		"DESTINATION_DIR = bin")

	sourceDirs := append([]string(nil), project.SourceDirs...)
	sort.Strings(sourceDirs)
	lines = append(lines, "", "VPATH = "+strings.Join(sourceDirs, ":"))

	// Flags per configuration, defines and includes from the chain.
	for _, cfg := range project.Configurations {
		var flags []string
		if cfg.Debug {
			flags = append(flags, "-g")
		}
		if cfg.Optimization > 0 {
			flags = append(flags, "-O2")
		} else {
			flags = append(flags, "-O0")
		}
		for _, define := range cfg.AllDefines() {
			flags = append(flags, "-D"+define)
		}
		for _, dir := range sourceDirs {
			flags = append(flags, "-I"+dir)
		}
		for _, dir := range cfg.AllIncludeFolders() {
			flags = append(flags, "-I"+strings.ReplaceAll(dir, "\\", "/"))
		}
		lines = append(lines, "",
			fmt.Sprintf("CXXFLAGS_%s = %s", makeFragment(cfg), strings.Join(flags, " ")))

		var ldflags []string
		for _, dir := range cfg.AllLibraryFolders() {
			ldflags = append(ldflags, "-L"+strings.ReplaceAll(dir, "\\", "/"))
		}
		for _, library := range cfg.AllLibraries() {
			ldflags = append(ldflags, "-l"+strings.TrimSuffix(library, ".lib"))
		}
		lines = append(lines,
			fmt.Sprintf("LDFLAGS_%s = %s", makeFragment(cfg), strings.Join(ldflags, " ")))
	}

	var objects []string
	for _, file := range project.FilesOfType(enums.FileTypeC, enums.FileTypeCpp) {
		objects = append(objects, file.ObjectName())
	}
	sort.Strings(objects)

	objNames := ""
	if len(objects) != 0 {
		objNames = strings.Join(objects, ".o ") + ".o"
	}
	lines = append(lines, "", "OBJ_NAMES = "+objNames)

	// The all target builds every configuration for every platform.
	var binaries []string
	for _, cfg := range project.Configurations {
		binaries = append(binaries, "$(DESTINATION_DIR)/"+makeBinaryName(solution, project, cfg))
	}
	lines = append(lines,
		"",
		".PHONY: all clean",
		"all: "+strings.Join(binaries, " "),
		"",
		"clean:",
		"\trm -rf temp $(DESTINATION_DIR)")

	for _, cfg := range project.Configurations {
		fragment := makeFragment(cfg)
		binary := makeBinaryName(solution, project, cfg)
		tempDir := "$(BASE_TEMP_DIR)" + fragment

		lines = append(lines, "",
			fmt.Sprintf("%s/%%.o: %%.cpp", tempDir),
			"\t@mkdir -p "+tempDir,
			fmt.Sprintf("\t$(CXX) $(CXXFLAGS_%s) -c -o $@ $<", fragment),
			"",
			fmt.Sprintf("%s/%%.o: %%.c", tempDir),
			"\t@mkdir -p "+tempDir,
			fmt.Sprintf("\t$(CC) $(CXXFLAGS_%s) -c -o $@ $<", fragment))

		objList := fmt.Sprintf("$(addprefix %s/,$(OBJ_NAMES))", tempDir)
		lines = append(lines, "",
			fmt.Sprintf("$(DESTINATION_DIR)/%s: %s", binary, objList),
			"\t@mkdir -p $(DESTINATION_DIR)")
		if project.Type.IsLibrary() {
			lines = append(lines, "\t$(AR) rcs $@ $^")
		} else {
			lines = append(lines,
				fmt.Sprintf("\t$(CXX) -o $@ $^ $(LDFLAGS_%s)", fragment))
		}
	}

	result, err := writeOutput(m.env, solution,
		filepath.Join(solution.WorkingDir, fileName), lines)
	if err != nil {
		return nil, err
	}
	return []Result{result}, nil
}

// makeFragment is the per configuration directory and variable suffix.
func makeFragment(cfg *model.Configuration) string {
	return "mak" + cfg.Platform.ShortCode() + cfg.ShortCode()
}

func makeBinaryName(solution *model.Solution, project *model.Project, cfg *model.Configuration) string {
	name := solution.Name + makeFragment(cfg)
	if project.Type.IsLibrary() {
		return "lib" + name + ".a"
	}
	return name
}
