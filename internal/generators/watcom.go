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

// watcom emits wmake files for Open Watcom 1.9.
type watcom struct {
	env hostenv.Env
}

func newWatcom(env hostenv.Env) *watcom {
	return &watcom{env: env}
}

func (w *watcom) Name() string {
	return "watcom"
}

// Supported matches the platforms the Watcom toolchain shipped for.
func (w *watcom) Supported(platform enums.PlatformType) bool {
	for _, concrete := range platform.Expanded() {
		switch concrete {
		case enums.PlatformWin32, enums.PlatformMSDos4GW, enums.PlatformMSDosX32:
			return true
		}
	}
	return false
}

// watcomAcceptable lists the file types wmake rules can build.
var watcomAcceptable = []enums.FileType{
	enums.FileTypeHeader,
	enums.FileTypeCpp,
	enums.FileTypeC,
	enums.FileTypeX86,
}

func (w *watcom) Generate(solution *model.Solution) ([]Result, error) {
	project := solution.Projects[0]
	if err := project.ResolveFiles(watcomAcceptable); err != nil {
		return nil, err
	}

	fileName := solution.OutputStem() + ".wmk"
	exporter := &watcomFile{
		solution: solution,
		project:  project,
		fileName: fileName,
	}

	var lines []string
	exporter.writeHeader(&lines)
	exporter.writeSourceDirs(&lines)
	exporter.writeRules(&lines)
	exporter.writeObjects(&lines)
	exporter.writeAllTargets(&lines)
	exporter.writeBuilds(&lines)

	result, err := writeOutput(w.env, solution,
		filepath.Join(solution.WorkingDir, fileName), lines)
	if err != nil {
		return nil, err
	}
	return []Result{result}, nil
}

// watcomFile renders one wmake file.
type watcomFile struct {
	solution *model.Solution
	project  *model.Project
	fileName string
}

// targetSuffix is the trailing three characters of the platform code,
// "w32" from "w32" and "4gw" from "dos4gw".
func targetSuffix(platform enums.PlatformType) string {
	code := platform.ShortCode()
	if len(code) > 3 {
		return code[len(code)-3:]
	}
	return code
}

// quoteIfNeeded wraps a path in quotes when it contains spaces.
func quoteIfNeeded(path string) string {
	if strings.ContainsAny(path, " \t") {
		return "\"" + path + "\""
	}
	return path
}

func (f *watcomFile) writeHeader(lines *[]string) {
	*lines = append(*lines,
		"#",
		"# Build "+f.solution.Name+" with WMAKE",
		"# Generated with makeprojects",
		"#",
		"# Require the environment variable WATCOM set to the OpenWatcom folder",
		"# Example: WATCOM=C:\\WATCOM",
		"#",
		"",
		"# This speeds up the building process for Watcom because it",
		"# keeps the apps in memory and doesn't have to reload for every source file",
		"# Note: There is a bug that if the wlib app is loaded, it will not",
		"# get the proper WOW file if a full build is performed",
		"",
		"# The bug is gone from Watcom 1.2",
		"",
		"!ifdef %WATCOM",
		"!ifdef __LOADDLL__",
		"!loaddll wcc $(%WATCOM)/binnt/wccd",
		"!loaddll wccaxp $(%WATCOM)/binnt/wccdaxp",
		"!loaddll wcc386 $(%WATCOM)/binnt/wccd386",
		"!loaddll wpp $(%WATCOM)/binnt/wppdi86",
		"!loaddll wppaxp $(%WATCOM)/binnt/wppdaxp",
		"!loaddll wpp386 $(%WATCOM)/binnt/wppd386",
		"!loaddll wlink $(%WATCOM)/binnt/wlinkd",
		"!loaddll wlib $(%WATCOM)/binnt/wlibd",
		"!endif",
		"!endif")

	// Release is the preferred default configuration when present.
	defaultConfig := ""
	for _, name := range f.project.ConfigurationNames() {
		if name == "Release" {
			defaultConfig = name
		} else if defaultConfig == "" {
			defaultConfig = name
		}
	}
	if defaultConfig == "" {
		defaultConfig = "Release"
	}
	*lines = append(*lines,
		"",
		"#",
		"# Default configuration",
		"#",
		"",
		"!ifndef CONFIG",
		"CONFIG = "+defaultConfig,
		"!endif")

	defaultTarget := ""
	for _, platform := range f.project.Platforms() {
		if platform == enums.PlatformMSDos4GW {
			defaultTarget = platform.ShortCode()
		} else if defaultTarget == "" {
			defaultTarget = platform.ShortCode()
		}
	}
	*lines = append(*lines,
		"",
		"#",
		"# Default target",
		"#",
		"",
		"!ifndef TARGET",
		"TARGET = "+defaultTarget,
		"!endif")

	*lines = append(*lines,
		"",
		"#",
		"# Directory name fragments",
		"#",
		"")
	for _, platform := range f.project.Platforms() {
		*lines = append(*lines, fmt.Sprintf("TARGET_SUFFIX_%s = %s",
			platform.ShortCode(), targetSuffix(platform)))
	}
	*lines = append(*lines, "")
	for _, name := range f.project.ConfigurationNames() {
		*lines = append(*lines, fmt.Sprintf("CONFIG_SUFFIX_%s = %s",
			name, enums.ConfigShortCode(name)))
	}

	*lines = append(*lines,
		"",
		"#",
		"# Set the set of known files supported",
		"# Note: They are in the reverse order of building. .c is built first, then .x86",
		"# until the .exe or .lib files are built",
		"#",
		"",
		".extensions:",
		".extensions: .exe .exp .lib .obj .h .cpp .x86 .c .i86")
}

func (f *watcomFile) writeSourceDirs(lines *[]string) {
	*lines = append(*lines,
		"",
		"#",
		"# SOURCE_DIRS = Work directories for the source code",
		"#",
		"")

	sourceDirs := append([]string(nil), f.project.SourceDirs...)
	sort.Strings(sourceDirs)
	if len(sourceDirs) != 0 {
		prefix := "SOURCE_DIRS ="
		for _, dir := range sourceDirs {
			*lines = append(*lines, prefix+quoteIfNeeded(dir))
			prefix = "SOURCE_DIRS +=;"
		}
	} else {
		*lines = append(*lines, "SOURCE_DIRS =")
	}

	*lines = append(*lines,
		"",
		"#",
		"# Name of the output library",
		"#",
		"",
		"PROJECT_NAME = "+f.solution.Name)

	*lines = append(*lines,
		"",
		"#",
		"# Base name of the temp directory",
		"#",
		"",
		"BASE_TEMP_DIR = temp/$(PROJECT_NAME)",
		"BASE_SUFFIX = wat$(TARGET_SUFFIX_$(%TARGET))$(CONFIG_SUFFIX_$(%CONFIG))",
		"TEMP_DIR = $(BASE_TEMP_DIR)$(BASE_SUFFIX)")

	*lines = append(*lines,
		"",
		"#",
		"# Binary directory",
		"#",
		"",
		"DESTINATION_DIR = bin")

	*lines = append(*lines,
		"",
		"#",
		"# INCLUDE_DIRS = Header includes",
		"#",
		"",
		"INCLUDE_DIRS = $(SOURCE_DIRS)")

	var includeFolders []string
	for _, cfg := range f.project.Configurations {
		for _, folder := range cfg.AllIncludeFolders() {
			folder = strings.ReplaceAll(folder, "\\", "/")
			found := false
			for _, existing := range includeFolders {
				if existing == folder {
					found = true
					break
				}
			}
			if !found {
				includeFolders = append(includeFolders, folder)
			}
		}
	}
	for _, folder := range includeFolders {
		*lines = append(*lines, "INCLUDE_DIRS +=;"+folder)
	}
}

// configAxisFlags are the per-configuration compiler switches: debug
// level and optimizer only, platform switches live on the target axis.
func configAxisFlags(cfg *model.Configuration) string {
	switch {
	case cfg.Debug && cfg.Optimization == 0:
		return "-d_DEBUG -d2 -od"
	case cfg.Debug:
		return "-d_DEBUG -d2 -oaxsh"
	default:
		return "-dNDEBUG -d0 -oaxsh"
	}
}

// targetAxisDefines pulls the platform specific defines from the first
// configuration bound to the platform, dropping the debug pair that
// the configuration axis already covers.
func (f *watcomFile) targetAxisDefines(platform enums.PlatformType) []string {
	for _, cfg := range f.project.Configurations {
		if cfg.Platform != platform {
			continue
		}
		var out []string
		for _, define := range cfg.AllDefines() {
			if define == "_DEBUG" || define == "NDEBUG" {
				continue
			}
			out = append(out, define)
		}
		return out
	}
	return nil
}

func watcomBuildTarget(platform enums.PlatformType) string {
	switch platform {
	case enums.PlatformMSDos4GW, enums.PlatformMSDosX32:
		return "-bt=DOS"
	default:
		return "-bt=NT"
	}
}

func watcomSystem(platform enums.PlatformType) string {
	switch platform {
	case enums.PlatformMSDos4GW:
		return "system dos4g"
	case enums.PlatformMSDosX32:
		return "system x32r"
	default:
		return "system nt"
	}
}

func (f *watcomFile) writeRules(lines *[]string) {
	*lines = append(*lines,
		"",
		"#",
		"# Tell WMAKE where to find the files to work with",
		"#",
		"",
		".c: $(SOURCE_DIRS)",
		".cpp: $(SOURCE_DIRS)",
		".x86: $(SOURCE_DIRS)",
		".i86: $(SOURCE_DIRS)")

	*lines = append(*lines,
		"",
		"#",
		"# Set the compiler flags for each of the build types",
		"#",
		"")
	for _, name := range f.project.ConfigurationNames() {
		for _, cfg := range f.project.Configurations {
			if cfg.Name == name {
				*lines = append(*lines, "CFlags"+name+"="+configAxisFlags(cfg))
				break
			}
		}
	}

	*lines = append(*lines,
		"",
		"#",
		"# Set the flags for each target operating system",
		"#",
		"")
	for _, platform := range f.project.Platforms() {
		flags := []string{watcomBuildTarget(platform)}
		for _, define := range f.targetAxisDefines(platform) {
			flags = append(flags, "-d"+define)
		}
		flags = append(flags, "-i=\"$(%WATCOM)/h\"")
		*lines = append(*lines,
			"CFlags"+platform.ShortCode()+"="+strings.Join(flags, " "))
	}

	*lines = append(*lines,
		"",
		"#",
		"# Set the WASM flags for each of the build types",
		"#",
		"")
	for _, name := range f.project.ConfigurationNames() {
		for _, cfg := range f.project.Configurations {
			if cfg.Name == name {
				if cfg.Debug {
					*lines = append(*lines, "AFlags"+name+"=-d_DEBUG")
				} else {
					*lines = append(*lines, "AFlags"+name+"=-dNDEBUG")
				}
				break
			}
		}
	}

	*lines = append(*lines,
		"",
		"#",
		"# Set the WASM flags for each operating system",
		"#",
		"")
	for _, platform := range f.project.Platforms() {
		switch platform {
		case enums.PlatformMSDos4GW:
			*lines = append(*lines, "AFlags"+platform.ShortCode()+"=-d__DOS4G__=1")
		case enums.PlatformMSDosX32:
			*lines = append(*lines, "AFlags"+platform.ShortCode()+"=-d__X32__=1")
		default:
			*lines = append(*lines, "AFlags"+platform.ShortCode()+"=-d__WIN32__=1")
		}
	}

	*lines = append(*lines, "")
	for _, name := range f.project.ConfigurationNames() {
		*lines = append(*lines, "LFlags"+name+"=")
	}
	*lines = append(*lines, "")
	for _, platform := range f.project.Platforms() {
		flags := []string{watcomSystem(platform)}
		for _, cfg := range f.project.Configurations {
			if cfg.Platform != platform {
				continue
			}
			if folders := cfg.AllLibraryFolders(); len(folders) != 0 {
				var cleaned []string
				for _, folder := range folders {
					cleaned = append(cleaned, strings.ReplaceAll(folder, "\\", "/"))
				}
				flags = append(flags, "libp "+strings.Join(cleaned, ";"))
			}
			if libraries := cfg.AllLibraries(); len(libraries) != 0 {
				flags = append(flags, "LIBRARY "+strings.Join(libraries, ","))
			}
			break
		}
		*lines = append(*lines,
			"LFlags"+platform.ShortCode()+"="+strings.Join(flags, " "))
	}

	*lines = append(*lines,
		"",
		"# Now, set the compiler flags",
		"",
		"CL=WCC386 -6r -fp6 -w4 -ei -j -mf -zq -zp=8 -wcd=7 -i=$(INCLUDE_DIRS)",
		"CP=WPP386 -6r -fp6 -w4 -ei -j -mf -zq -zp=8 -wcd=7 -i=$(INCLUDE_DIRS)",
		"ASM=WASM -5r -fp6 -w4 -zq -d__WATCOM__=1",
		"LINK=*WLINK option caseexact option quiet PATH $(%WATCOM)/binnt;$(%WATCOM)/binw;.",
		"",
		"# Set the default build rules",
		"# Requires ASM, CP to be set",
		"",
		"# Macro expansion is on page 93 of the C/C++ Tools User's Guide",
		"# $^* = C:\\dir\\target (No extension)",
		"# $[* = C:\\dir\\dep (No extension)",
		"# $^@ = C:\\dir\\target.ext",
		"# $^: = C:\\dir\\",
		"",
		".i86.obj : .AUTODEPEND",
		"\t@echo $[&.i86 / $(%CONFIG) / $(%TARGET)",
		"\t@$(ASM) -0 -w4 -zq -d__WATCOM__=1 $(AFlags$(%CONFIG)) $(AFlags$(%TARGET)) $[*.i86 -fo=$^@ -fr=$^*.err",
		"",
		".x86.obj : .AUTODEPEND",
		"\t@echo $[&.x86 / $(%CONFIG) / $(%TARGET)",
		"\t@$(ASM) $(AFlags$(%CONFIG)) $(AFlags$(%TARGET)) $[*.x86 -fo=$^@ -fr=$^*.err",
		"",
		".c.obj : .AUTODEPEND",
		"\t@echo $[&.c / $(%CONFIG) / $(%TARGET)",
		"\t@$(CP) $(CFlags$(%CONFIG)) $(CFlags$(%TARGET)) $[*.c -fo=$^@ -fr=$^*.err",
		"",
		".cpp.obj : .AUTODEPEND",
		"\t@echo $[&.cpp / $(%CONFIG) / $(%TARGET)",
		"\t@$(CP) $(CFlags$(%CONFIG)) $(CFlags$(%TARGET)) $[*.cpp -fo=$^@ -fr=$^*.err")
}

func (f *watcomFile) writeObjects(lines *[]string) {
	*lines = append(*lines,
		"",
		"#",
		"# Object files to work with for the library",
		"#",
		"")

	var objects []string
	for _, file := range f.project.FilesOfType(
		enums.FileTypeC, enums.FileTypeCpp, enums.FileTypeX86) {
		objects = append(objects, file.ObjectName())
	}
	sort.Strings(objects)

	if len(objects) == 0 {
		*lines = append(*lines, "OBJS=")
		return
	}
	prefix := "OBJS= "
	for i, name := range objects {
		entry := prefix + "$(A)/" + name + ".obj"
		if i != len(objects)-1 {
			entry += " &"
		}
		*lines = append(*lines, entry)
		prefix = "\t"
	}
}

func (f *watcomFile) writeAllTargets(lines *[]string) {
	*lines = append(*lines,
		"",
		"#",
		"# List the names of all of the final binaries to build",
		"#",
		"")

	all := []string{"all:"}
	all = append(all, f.project.ConfigurationNames()...)
	all = append(all, ".SYMBOLIC")
	*lines = append(*lines, strings.Join(all, " "), "\t@%null")

	*lines = append(*lines,
		"",
		"#",
		"# Configurations",
		"#")

	for _, name := range f.project.ConfigurationNames() {
		*lines = append(*lines, "")
		entry := []string{name + ":"}
		for _, platform := range f.project.Platforms() {
			entry = append(entry, name+platform.ShortCode())
		}
		entry = append(entry, ".SYMBOLIC")
		*lines = append(*lines, strings.Join(entry, " "), "\t@%null")
	}

	for _, platform := range f.project.Platforms() {
		*lines = append(*lines, "")
		entry := []string{platform.ShortCode() + ":"}
		for _, cfg := range f.project.Configurations {
			if cfg.Platform == platform {
				entry = append(entry, cfg.Name+platform.ShortCode())
			}
		}
		entry = append(entry, ".SYMBOLIC")
		*lines = append(*lines, strings.Join(entry, " "), "\t@%null")
	}

	for _, cfg := range f.project.Configurations {
		suffix := "exe"
		if f.project.Type.IsLibrary() {
			suffix = "lib"
		}
		code := cfg.Platform.ShortCode()
		fragment := "wat" + targetSuffix(cfg.Platform) + cfg.ShortCode()
		*lines = append(*lines, "",
			fmt.Sprintf("%s%s: .SYMBOLIC", cfg.Name, code),
			"\t@if not exist \"$(DESTINATION_DIR)\" @mkdir \"$(DESTINATION_DIR)\"",
			fmt.Sprintf("\t@if not exist \"$(BASE_TEMP_DIR)%s\" @mkdir \"$(BASE_TEMP_DIR)%s\"", fragment, fragment),
			"\t@set CONFIG="+cfg.Name,
			"\t@set TARGET="+code,
			fmt.Sprintf("\t@%%make $(DESTINATION_DIR)\\$(PROJECT_NAME)wat%s%s.%s",
				targetSuffix(cfg.Platform), cfg.ShortCode(), suffix))
	}

	*lines = append(*lines,
		"",
		"#",
		"# Disable building this make file",
		"#",
		"",
		f.fileName+":",
		"\t@%null")
}

func (f *watcomFile) writeBuilds(lines *[]string) {
	*lines = append(*lines,
		"",
		"#",
		"# A = The object file temp folder",
		"#")

	for _, cfg := range f.project.Configurations {
		suffix := ".exe"
		if f.project.Type.IsLibrary() {
			suffix = ".lib"
		}
		fragment := "wat" + targetSuffix(cfg.Platform) + cfg.ShortCode()

		*lines = append(*lines, "",
			"A = $(BASE_TEMP_DIR)"+fragment,
			fmt.Sprintf("$(DESTINATION_DIR)\\$(PROJECT_NAME)%s%s: $+$(OBJS)$- %s",
				fragment, suffix, f.fileName))

		if f.project.Type.IsLibrary() {
			*lines = append(*lines,
				"\t@SET WOW=$+$(OBJS)$-",
				"\t@WLIB -q -b -c -n $^@ @WOW")
			if deploy := cfg.ResolvedDeployFolder(); deploy != "" {
				deploy = strings.TrimSuffix(strings.ReplaceAll(deploy, "/", "\\"), "\\")
				*lines = append(*lines,
					fmt.Sprintf("\t@p4 edit \"%s\\$^.\"", deploy),
					fmt.Sprintf("\t@copy /y \"$^@\" \"%s\\$^.\"", deploy),
					fmt.Sprintf("\t@p4 revert -a \"%s\\$^.\"", deploy))
			}
		} else {
			*lines = append(*lines,
				"\t@SET WOW={$+$(OBJS)$-}",
				"\t@$(LINK) $(LFlags$(%TARGET)) $(LFlags$(%CONFIG)) NAME $^@ FILE @wow")
		}
	}
}
