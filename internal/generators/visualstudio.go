package generators

import (
	"crypto/md5"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/chengwei920412/makeprojects/internal/hostenv"
	"github.com/chengwei920412/makeprojects/internal/model"
	"github.com/chengwei920412/makeprojects/pkg/enums"
)

// visualstudio emits .sln and .vcproj pairs for the 2003 to 2008
// releases, the ones using the XML vcproj format.
type visualstudio struct {
	env hostenv.Env
	ide enums.IDEType
}

func newVisualStudio(env hostenv.Env, ide enums.IDEType) *visualstudio {
	return &visualstudio{env: env, ide: ide}
}

func (v *visualstudio) Name() string {
	return v.ide.String()
}

// Supported allows any platform Visual Studio has an identifier for.
func (v *visualstudio) Supported(platform enums.PlatformType) bool {
	for _, concrete := range platform.Expanded() {
		if len(concrete.VSPlatforms()) != 0 {
			return true
		}
	}
	return false
}

var visualStudioAcceptable = []enums.FileType{
	enums.FileTypeHeader,
	enums.FileTypeCpp,
	enums.FileTypeC,
	enums.FileTypeWindowsResource,
	enums.FileTypeIco,
}

// dnsNamespace is the RFC 4122 DNS namespace, matching what the
// historical generator seeded its project GUIDs with.
var dnsNamespace = []byte{
	0x6b, 0xa7, 0xb8, 0x10, 0x9d, 0xad, 0x11, 0xd1,
	0x80, 0xb4, 0x00, 0xc0, 0x4f, 0xd4, 0x30, 0xc8,
}

// deterministicGUID derives a stable version 3 UUID from a name so
// regenerating a project never churns its GUID.
func deterministicGUID(name string) string {
	h := md5.New()
	h.Write(dnsNamespace)
	h.Write([]byte(name))
	sum := h.Sum(nil)
	sum[6] = (sum[6] & 0x0f) | 0x30
	sum[8] = (sum[8] & 0x3f) | 0x80
	return strings.ToUpper(fmt.Sprintf("%x-%x-%x-%x-%x",
		sum[0:4], sum[4:6], sum[6:8], sum[8:10], sum[10:16]))
}

func (v *visualstudio) vcprojVersion() string {
	switch v.ide {
	case enums.IDEVisualStudio2003:
		return "7.10"
	case enums.IDEVisualStudio2005:
		return "8.00"
	default:
		return "9.00"
	}
}

func (v *visualstudio) slnHeader() []string {
	switch v.ide {
	case enums.IDEVisualStudio2003:
		return []string{"Microsoft Visual Studio Solution File, Format Version 8.00"}
	case enums.IDEVisualStudio2005:
		return []string{
			"Microsoft Visual Studio Solution File, Format Version 9.00",
			"# Visual Studio 2005",
		}
	default:
		return []string{
			"Microsoft Visual Studio Solution File, Format Version 10.00",
			"# Visual Studio 2008",
		}
	}
}

func (v *visualstudio) Generate(solution *model.Solution) ([]Result, error) {
	project := solution.Projects[0]
	if err := project.ResolveFiles(visualStudioAcceptable); err != nil {
		return nil, err
	}

	stem := solution.OutputStem()
	guid := deterministicGUID(stem + ".vcproj")

	slnResult, err := v.writeSolution(solution, project, stem, guid)
	if err != nil {
		return nil, err
	}
	vcprojResult, err := v.writeProject(solution, project, stem, guid)
	if err != nil {
		return nil, err
	}
	return []Result{slnResult, vcprojResult}, nil
}

// vsPlatformName returns the Visual Studio identifier for a concrete
// platform.
func vsPlatformName(platform enums.PlatformType) string {
	names := platform.VSPlatforms()
	if len(names) == 0 {
		return platform.DisplayName()
	}
	return names[0]
}

func (v *visualstudio) writeSolution(solution *model.Solution, project *model.Project, stem, guid string) (Result, error) {
	// The C++ project type GUID is fixed across VS releases.
	const cppProjectKind = "8BC9CEB8-8B4A-11D0-8D11-00A0C91BC942"

	var lines []string
	lines = append(lines, v.slnHeader()...)
	lines = append(lines,
		fmt.Sprintf("Project(\"{%s}\") = \"%s\", \"%s.vcproj\", \"{%s}\"",
			cppProjectKind, solution.Name, stem, guid),
		"EndProject",
		"Global",
		"\tGlobalSection(SolutionConfigurationPlatforms) = preSolution")

	var tokens []string
	for _, cfg := range project.Configurations {
		tokens = append(tokens, cfg.Name+"|"+vsPlatformName(cfg.Platform))
	}
	for _, token := range tokens {
		lines = append(lines, fmt.Sprintf("\t\t%s = %s", token, token))
	}
	lines = append(lines,
		"\tEndGlobalSection",
		"\tGlobalSection(ProjectConfigurationPlatforms) = postSolution")
	for _, token := range tokens {
		lines = append(lines,
			fmt.Sprintf("\t\t{%s}.%s.ActiveCfg = %s", guid, token, token),
			fmt.Sprintf("\t\t{%s}.%s.Build.0 = %s", guid, token, token))
	}
	lines = append(lines,
		"\tEndGlobalSection",
		"\tGlobalSection(SolutionProperties) = preSolution",
		"\t\tHideSolutionNode = FALSE",
		"\tEndGlobalSection",
		"EndGlobal")

	return writeOutput(v.env, solution,
		filepath.Join(solution.WorkingDir, stem+".sln"), lines)
}

func (v *visualstudio) writeProject(solution *model.Solution, project *model.Project, stem, guid string) (Result, error) {
	var lines []string
	lines = append(lines,
		`<?xml version="1.0" encoding="utf-8"?>`,
		"<VisualStudioProject",
		"\tProjectType=\"Visual C++\"",
		fmt.Sprintf("\tVersion=\"%s\"", v.vcprojVersion()),
		fmt.Sprintf("\tName=\"%s\"", solution.Name),
		fmt.Sprintf("\tProjectGUID=\"{%s}\"", guid),
		"\t>")

	lines = append(lines, "\t<Platforms>")
	seen := make(map[string]bool)
	for _, platform := range project.Platforms() {
		name := vsPlatformName(platform)
		if !seen[name] {
			seen[name] = true
			lines = append(lines, fmt.Sprintf("\t\t<Platform Name=\"%s\" />", name))
		}
	}
	lines = append(lines, "\t</Platforms>")

	lines = append(lines, "\t<Configurations>")
	for _, cfg := range project.Configurations {
		lines = append(lines, v.configurationBlock(solution, project, cfg)...)
	}
	lines = append(lines, "\t</Configurations>")

	if len(project.SourceFiles) != 0 {
		lines = append(lines, "\t<Files>")
		lines = append(lines, filterTree(buildGroupTree(project.SourceFiles), 2)...)
		lines = append(lines, "\t</Files>")
	}
	lines = append(lines, "</VisualStudioProject>")

	return writeOutput(v.env, solution,
		filepath.Join(solution.WorkingDir, stem+".vcproj"), lines)
}

func (v *visualstudio) configurationBlock(solution *model.Solution, project *model.Project, cfg *model.Configuration) []string {
	vsName := vsPlatformName(cfg.Platform)
	intDir := solution.Name + solution.IDECode() +
		cfg.Platform.ShortCode() + cfg.ShortCode()

	configurationType := "1"
	if project.Type.IsLibrary() {
		configurationType = "4"
	}

	lines := []string{
		"\t\t<Configuration",
		fmt.Sprintf("\t\t\tName=\"%s|%s\"", cfg.Name, vsName),
		"\t\t\tOutputDirectory=\"bin\\\"",
		fmt.Sprintf("\t\t\tIntermediateDirectory=\"temp\\%s\"", intDir),
		fmt.Sprintf("\t\t\tConfigurationType=\"%s\"", configurationType),
		"\t\t\tUseOfMFC=\"0\"",
		"\t\t\tATLMinimizesCRunTimeLibraryUsage=\"false\"",
		"\t\t\tCharacterSet=\"1\"",
		"\t\t\t>",
	}

	// Compiler settings.
	lines = append(lines,
		"\t\t\t<Tool",
		"\t\t\t\tName=\"VCCLCompilerTool\"",
		fmt.Sprintf("\t\t\t\tPreprocessorDefinitions=\"%s\"",
			strings.Join(cfg.AllDefines(), ";")),
		"\t\t\t\tStringPooling=\"true\"",
		"\t\t\t\tExceptionHandling=\"0\"",
		"\t\t\t\tStructMemberAlignment=\"4\"",
		"\t\t\t\tEnableFunctionLevelLinking=\"true\"",
		"\t\t\t\tFloatingPointModel=\"2\"",
		"\t\t\t\tRuntimeTypeInfo=\"false\"",
		"\t\t\t\tPrecompiledHeaderFile=\"\"",
		"\t\t\t\tWarningLevel=\"4\"",
		"\t\t\t\tSuppressStartupBanner=\"true\"")
	if project.Type.IsLibrary() || cfg.Debug {
		lines = append(lines,
			"\t\t\t\tDebugInformationFormat=\"3\"",
			"\t\t\t\tProgramDataBaseFileName=\"$(OutDir)$(TargetName).pdb\"")
	} else {
		lines = append(lines, "\t\t\t\tDebugInformationFormat=\"0\"")
	}
	lines = append(lines,
		"\t\t\t\tCallingConvention=\"1\"",
		"\t\t\t\tCompileAs=\"2\"",
		"\t\t\t\tFavorSizeOrSpeed=\"1\"",
		"\t\t\t\tDisableSpecificWarnings=\"4201\"")
	if cfg.Optimization == 0 {
		lines = append(lines, "\t\t\t\tOptimization=\"0\"")
	} else {
		lines = append(lines,
			"\t\t\t\tOptimization=\"2\"",
			"\t\t\t\tInlineFunctionExpansion=\"2\"",
			"\t\t\t\tEnableIntrinsicFunctions=\"true\"",
			"\t\t\t\tOmitFramePointers=\"true\"")
	}
	if cfg.Debug {
		lines = append(lines,
			"\t\t\t\tBufferSecurityCheck=\"true\"",
			"\t\t\t\tRuntimeLibrary=\"1\"")
	} else {
		lines = append(lines,
			"\t\t\t\tBufferSecurityCheck=\"false\"",
			"\t\t\t\tRuntimeLibrary=\"0\"")
	}
	if cfg.LinkTimeCodeGen {
		lines = append(lines, "\t\t\t\tWholeProgramOptimization=\"true\"")
	}

	var includes []string
	includes = append(includes, project.SourceDirs...)
	includes = append(includes, cfg.AllIncludeFolders()...)
	for i, dir := range includes {
		includes[i] = strings.ReplaceAll(dir, "/", "\\")
	}
	lines = append(lines,
		fmt.Sprintf("\t\t\t\tAdditionalIncludeDirectories=\"%s\"",
			strings.Join(includes, ";")),
		"\t\t\t/>")

	lines = append(lines,
		"\t\t\t<Tool",
		"\t\t\t\tName=\"VCResourceCompilerTool\"",
		"\t\t\t\tCulture=\"1033\"",
		"\t\t\t/>")

	if project.Type.IsLibrary() {
		lines = append(lines,
			"\t\t\t<Tool",
			"\t\t\t\tName=\"VCLibrarianTool\"",
			fmt.Sprintf("\t\t\t\tOutputFile=\"&quot;$(OutDir)%s.lib&quot;\"", intDir),
			"\t\t\t\tSuppressStartupBanner=\"true\"",
			"\t\t\t/>")
		if deploy := cfg.ResolvedDeployFolder(); deploy != "" {
			lines = append(lines, deployEventTool(deploy)...)
		}
	} else {
		subsystem := "2"
		if project.Type == enums.ProjectTypeTool {
			subsystem = "1"
		}
		var libDirs []string
		for _, dir := range cfg.AllLibraryFolders() {
			libDirs = append(libDirs, strings.ReplaceAll(dir, "/", "\\"))
		}
		lines = append(lines,
			"\t\t\t<Tool",
			"\t\t\t\tName=\"VCLinkerTool\"",
			fmt.Sprintf("\t\t\t\tAdditionalDependencies=\"%s\"",
				strings.Join(cfg.AllLibraries(), " ")),
			fmt.Sprintf("\t\t\t\tOutputFile=\"&quot;$(OutDir)%s.exe&quot;\"", intDir),
			fmt.Sprintf("\t\t\t\tAdditionalLibraryDirectories=\"%s\"",
				strings.Join(libDirs, ";")),
			fmt.Sprintf("\t\t\t\tSubSystem=\"%s\"", subsystem),
			"\t\t\t/>")
	}
	lines = append(lines, "\t\t</Configuration>")
	return lines
}

// deployEventTool emits the post build step copying the binary to the
// deploy folder through Perforce.
func deployEventTool(deploy string) []string {
	deploy = strings.ReplaceAll(deploy, "/", "\\")
	if !strings.HasSuffix(deploy, "\\") {
		deploy += "\\"
	}
	command := strings.Join([]string{
		"&quot;$(perforce)\\p4&quot; edit &quot;" + deploy + "$(TargetName)$(TargetExt)&quot;&#x0D;&#x0A;",
		"&quot;$(perforce)\\p4&quot; edit &quot;" + deploy + "$(TargetName).pdb&quot;&#x0D;&#x0A;",
		"copy /Y &quot;$(OutDir)$(TargetName)$(TargetExt)&quot; &quot;" + deploy + "$(TargetName)$(TargetExt)&quot;&#x0D;&#x0A;",
		"copy /Y &quot;$(OutDir)$(TargetName).pdb&quot; &quot;" + deploy + "$(TargetName).pdb&quot;&#x0D;&#x0A;",
		"&quot;$(perforce)\\p4&quot; revert -a &quot;" + deploy + "$(TargetName)$(TargetExt)&quot;&#x0D;&#x0A;",
		"&quot;$(perforce)\\p4&quot; revert -a &quot;" + deploy + "$(TargetName).pdb&quot;&#x0D;&#x0A;",
	}, "")
	return []string{
		"\t\t\t<Tool",
		"\t\t\t\tName=\"VCPostBuildEventTool\"",
		fmt.Sprintf("\t\t\t\tDescription=\"Copying $(TargetName)$(TargetExt) to %s\"", deploy),
		fmt.Sprintf("\t\t\t\tCommandLine=\"%s\"", command),
		"\t\t\t/>",
	}
}

// filterTree renders the nested Filter blocks for the file list.
func filterTree(node *groupNode, indent int) []string {
	tabs := strings.Repeat("\t", indent)
	var lines []string
	for _, file := range node.files {
		path := strings.ReplaceAll(file.RelativePath, "/", "\\")
		lines = append(lines, fmt.Sprintf("%s<File RelativePath=\"%s\" />", tabs, path))
	}
	for _, child := range node.sortedChildren() {
		lines = append(lines, fmt.Sprintf("%s<Filter Name=\"%s\">", tabs, child.name))
		lines = append(lines, filterTree(child, indent+1)...)
		lines = append(lines, fmt.Sprintf("%s</Filter>", tabs))
	}
	return lines
}
