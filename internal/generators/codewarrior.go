package generators

import (
	"log/slog"
	"os/exec"
	"path/filepath"
	"sort"
	"strings"

	"github.com/chengwei920412/makeprojects/internal/hostenv"
	"github.com/chengwei920412/makeprojects/internal/model"
	"github.com/chengwei920412/makeprojects/internal/scm"
	"github.com/chengwei920412/makeprojects/pkg/enums"
)

// codewarrior emits Metrowerks and Freescale project files as XML,
// optionally converting them to the native .mcp format when the IDE
// itself is installed.
//
// Release 5.0 is CodeWarrior 9 for Windows and MacOS, 5.8 is
// CodeWarrior 10 for MacOS and 5.9 is Freescale CodeWarrior for
// Nintendo.
type codewarrior struct {
	env hostenv.Env
	ide enums.IDEType
}

func newCodeWarrior(env hostenv.Env, ide enums.IDEType) *codewarrior {
	return &codewarrior{env: env, ide: ide}
}

func (c *codewarrior) Name() string {
	return c.ide.String()
}

// Supported maps each CodeWarrior release to the platforms its
// toolchains shipped with.
func (c *codewarrior) Supported(platform enums.PlatformType) bool {
	for _, concrete := range platform.Expanded() {
		switch c.ide {
		case enums.IDECodeWarrior50:
			if concrete == enums.PlatformWin32 {
				return true
			}
		case enums.IDECodeWarrior58:
			if concrete.IsMacOSCarbon() {
				return true
			}
		default:
			if concrete == enums.PlatformDSI {
				return true
			}
		}
	}
	return false
}

func (c *codewarrior) versions() (exportVersion, ideVersion string) {
	switch c.ide {
	case enums.IDECodeWarrior59:
		return "2.0", "5.9.0"
	case enums.IDECodeWarrior58:
		return "2.0", "5.8"
	default:
		return "1.0.1", "5.0"
	}
}

// setting is one SETTING record. A record carries a scalar value, a
// multi line value or nested sub settings.
type setting struct {
	name     string
	value    string
	hasValue bool
	multi    []string
	subs     []*setting
}

func newSetting(name, value string) *setting {
	return &setting{name: name, value: value, hasValue: true}
}

func newSettingNode(name string) *setting {
	return &setting{name: name}
}

func (s *setting) add(sub *setting) *setting {
	s.subs = append(s.subs, sub)
	return sub
}

func (s *setting) render(lines []string, level int) []string {
	tabs := strings.Repeat("\t", level)
	entry := tabs + "<SETTING>"
	if s.name != "" {
		entry += "<NAME>" + s.name + "</NAME>"
	}
	if s.multi != nil {
		entry += "<VALUE>"
		for _, item := range s.multi {
			lines = append(lines, entry+item)
			entry = ""
		}
		entry += "</VALUE>"
	} else if s.hasValue {
		entry += "<VALUE>" + s.value + "</VALUE>"
	}
	if len(s.subs) != 0 {
		lines = append(lines, entry)
		for _, sub := range s.subs {
			lines = sub.render(lines, level+1)
		}
		return append(lines, tabs+"</SETTING>")
	}
	return append(lines, entry+"</SETTING>")
}

// cwPath converts a path to the slash style the PATHFORMAT record
// declares for the platform.
func cwPath(platform enums.PlatformType, path string) (converted, format string) {
	if platform.IsWindows() {
		return strings.ReplaceAll(path, "/", "\\"), "Windows"
	}
	return strings.ReplaceAll(path, "\\", "/"), "Unix"
}

// searchPath builds a Path record. A $(Name) prefix is peeled off
// into a PathRoot record.
func searchPath(platform enums.PlatformType, path, root, title string) *setting {
	if strings.HasPrefix(path, "$(") {
		if index := strings.IndexByte(path, ')'); index != -1 {
			root = path[2:index]
			path = strings.TrimLeft(path[index+1:], "\\/")
		}
	}
	converted, format := cwPath(platform, path)
	entry := newSettingNode(title)
	entry.add(newSetting("Path", converted))
	entry.add(newSetting("PathFormat", format))
	if root != "" {
		entry.add(newSetting("PathRoot", root))
	}
	return entry
}

// searchPathAndFlags wraps a search path with the recursion flags an
// access path entry carries.
func searchPathAndFlags(platform enums.PlatformType, path, root string) []*setting {
	recursive := "false"
	if strings.HasPrefix(path, "$(CodeWarrior)") {
		recursive = "true"
	}
	return []*setting{
		searchPath(platform, path, root, "SearchPath"),
		newSetting("Recursive", recursive),
		newSetting("FrameworkPath", "false"),
		newSetting("HostFlags", "All"),
	}
}

func frontEndPanel() []*setting {
	return []*setting{
		newSetting("MWFrontEnd_C_cplusplus", "1"),
		newSetting("MWFrontEnd_C_templateparser", "0"),
		newSetting("MWFrontEnd_C_instance_manager", "0"),
		newSetting("MWFrontEnd_C_enableexceptions", "0"),
		newSetting("MWFrontEnd_C_useRTTI", "0"),
		newSetting("MWFrontEnd_C_booltruefalse", "1"),
		newSetting("MWFrontEnd_C_wchar_type", "0"),
		newSetting("MWFrontEnd_C_ecplusplus", "0"),
		newSetting("MWFrontEnd_C_dontinline", "0"),
		newSetting("MWFrontEnd_C_inlinelevel", "0"),
		newSetting("MWFrontEnd_C_autoinline", "1"),
		newSetting("MWFrontEnd_C_defer_codegen", "0"),
		newSetting("MWFrontEnd_C_bottomupinline", "1"),
		newSetting("MWFrontEnd_C_ansistrict", "0"),
		newSetting("MWFrontEnd_C_onlystdkeywords", "0"),
		newSetting("MWFrontEnd_C_trigraphs", "0"),
		newSetting("MWFrontEnd_C_arm", "0"),
		newSetting("MWFrontEnd_C_checkprotos", "1"),
		newSetting("MWFrontEnd_C_c99", "1"),
		newSetting("MWFrontEnd_C_gcc_extensions", "1"),
		newSetting("MWFrontEnd_C_enumsalwaysint", "1"),
		newSetting("MWFrontEnd_C_unsignedchars", "0"),
		newSetting("MWFrontEnd_C_poolstrings", "1"),
		newSetting("MWFrontEnd_C_dontreusestrings", "0"),
	}
}

func preprocessorPanel(defines []string) []*setting {
	prefix := &setting{name: "C_CPP_Preprocessor_PrefixText", multi: []string{}}
	for _, define := range defines {
		prefix.multi = append(prefix.multi, "#define "+define)
	}
	return []*setting{
		prefix,
		newSetting("C_CPP_Preprocessor_MultiByteEncoding", "encASCII_Unicode"),
		newSetting("C_CPP_Preprocessor_PCHUsesPrefixText", "false"),
		newSetting("C_CPP_Preprocessor_EmitPragmas", "true"),
		newSetting("C_CPP_Preprocessor_KeepWhiteSpace", "false"),
		newSetting("C_CPP_Preprocessor_EmitFullPath", "false"),
		newSetting("C_CPP_Preprocessor_KeepComments", "false"),
		newSetting("C_CPP_Preprocessor_EmitFile", "true"),
		newSetting("C_CPP_Preprocessor_EmitLine", "false"),
	}
}

func warningsPanel() []*setting {
	return []*setting{
		newSetting("MWWarning_C_warn_illpragma", "1"),
		newSetting("MWWarning_C_warn_possunwant", "1"),
		newSetting("MWWarning_C_pedantic", "1"),
		newSetting("MWWarning_C_warn_illtokenpasting", "0"),
		newSetting("MWWarning_C_warn_hidevirtual", "1"),
		newSetting("MWWarning_C_warn_implicitconv", "1"),
		newSetting("MWWarning_C_warn_impl_f2i_conv", "1"),
		newSetting("MWWarning_C_warn_impl_s2u_conv", "1"),
		newSetting("MWWarning_C_warn_impl_i2f_conv", "1"),
		newSetting("MWWarning_C_warn_ptrintconv", "1"),
		newSetting("MWWarning_C_warn_unusedvar", "1"),
		newSetting("MWWarning_C_warn_unusedarg", "1"),
		newSetting("MWWarning_C_warn_resultnotused", "0"),
		newSetting("MWWarning_C_warn_missingreturn", "1"),
		newSetting("MWWarning_C_warn_no_side_effect", "1"),
		newSetting("MWWarning_C_warn_extracomma", "1"),
		newSetting("MWWarning_C_warn_structclass", "1"),
		newSetting("MWWarning_C_warn_emptydecl", "1"),
		newSetting("MWWarning_C_warn_filenamecaps", "0"),
		newSetting("MWWarning_C_warn_filenamecapssystem", "0"),
		newSetting("MWWarning_C_warn_padding", "0"),
		newSetting("MWWarning_C_warn_undefmacro", "0"),
		newSetting("MWWarning_C_warn_notinlined", "0"),
		newSetting("MWWarning_C_warningerrors", "0"),
	}
}

func x86ProjectPanel(projectType enums.ProjectType, fileName string) []*setting {
	kind, extension := "Application", ".exe"
	if projectType.IsLibrary() {
		kind, extension = "Library", ".lib"
	}
	return []*setting{
		newSetting("MWProject_X86_type", kind),
		newSetting("MWProject_X86_outfile", fileName+extension),
	}
}

func x86CodeGenPanel(debug bool) []*setting {
	disableOpt, optimizeAsm := "0", "1"
	if debug {
		disableOpt, optimizeAsm = "1", "0"
	}
	return []*setting{
		newSetting("MWCodeGen_X86_processor", "PentiumIV"),
		newSetting("MWCodeGen_X86_use_extinst", "1"),
		newSetting("MWCodeGen_X86_extinst_mmx", "0"),
		newSetting("MWCodeGen_X86_extinst_3dnow", "0"),
		newSetting("MWCodeGen_X86_extinst_cmov", "1"),
		newSetting("MWCodeGen_X86_extinst_sse", "0"),
		newSetting("MWCodeGen_X86_extinst_sse2", "0"),
		newSetting("MWCodeGen_X86_use_mmx_3dnow_convention", "0"),
		newSetting("MWCodeGen_X86_vectorize", "0"),
		newSetting("MWCodeGen_X86_profile", "0"),
		newSetting("MWCodeGen_X86_readonlystrings", "1"),
		newSetting("MWCodeGen_X86_alignment", "bytes8"),
		newSetting("MWCodeGen_X86_intrinsics", "1"),
		newSetting("MWCodeGen_X86_optimizeasm", optimizeAsm),
		newSetting("MWCodeGen_X86_disableopts", disableOpt),
		newSetting("MWCodeGen_X86_relaxieee", "1"),
		newSetting("MWCodeGen_X86_exceptions", "ZeroOverhead"),
		newSetting("MWCodeGen_X86_name_mangling", "MWWin32"),
	}
}

func x86OptimizerPanel(debug bool) []*setting {
	level := "Level4"
	if debug {
		level = "Level0"
	}
	return []*setting{
		newSetting("GlobalOptimizer_X86__optimizationlevel", level),
		newSetting("GlobalOptimizer_X86__optfor", "Size"),
	}
}

func x86DisassemblerPanel() []*setting {
	return []*setting{
		newSetting("PDisasmX86_showHeaders", "true"),
		newSetting("PDisasmX86_showSectHeaders", "true"),
		newSetting("PDisasmX86_showSymTab", "true"),
		newSetting("PDisasmX86_showCode", "true"),
		newSetting("PDisasmX86_showData", "true"),
		newSetting("PDisasmX86_showDebug", "false"),
		newSetting("PDisasmX86_showExceptions", "false"),
		newSetting("PDisasmX86_showRelocation", "true"),
		newSetting("PDisasmX86_showRaw", "false"),
		newSetting("PDisasmX86_showAllRaw", "false"),
		newSetting("PDisasmX86_showSource", "false"),
		newSetting("PDisasmX86_showHex", "true"),
		newSetting("PDisasmX86_showComments", "false"),
		newSetting("PDisasmX86_resolveLocals", "false"),
		newSetting("PDisasmX86_resolveRelocs", "true"),
		newSetting("PDisasmX86_showSymDefs", "true"),
		newSetting("PDisasmX86_unmangle", "false"),
		newSetting("PDisasmX86_verbose", "false"),
	}
}

func x86LinkerPanel() []*setting {
	return []*setting{
		newSetting("MWLinker_X86_runtime", "Custom"),
		newSetting("MWLinker_X86_linksym", "0"),
		newSetting("MWLinker_X86_linkCV", "1"),
		newSetting("MWLinker_X86_symfullpath", "false"),
		newSetting("MWLinker_X86_linkdebug", "true"),
		newSetting("MWLinker_X86_debuginline", "true"),
		newSetting("MWLinker_X86_subsystem", "Unknown"),
		newSetting("MWLinker_X86_entrypointusage", "Default"),
		newSetting("MWLinker_X86_entrypoint", ""),
		newSetting("MWLinker_X86_codefolding", "Any"),
		newSetting("MWLinker_X86_usedefaultlibs", "true"),
		newSetting("MWLinker_X86_adddefaultlibs", "false"),
		newSetting("MWLinker_X86_mergedata", "true"),
		newSetting("MWLinker_X86_zero_init_bss", "false"),
		newSetting("MWLinker_X86_generatemap", "0"),
		newSetting("MWLinker_X86_checksum", "false"),
		newSetting("MWLinker_X86_linkformem", "false"),
		newSetting("MWLinker_X86_nowarnings", "false"),
		newSetting("MWLinker_X86_verbose", "false"),
		newSetting("MWLinker_X86_commandfile", ""),
	}
}

// cwFile is one FILELIST entry.
type cwFile struct {
	path   string
	format string
	kind   string
	flags  string
}

func newCWFile(platform enums.PlatformType, configName, fileName string) cwFile {
	path, format := cwPath(platform, fileName)
	file := cwFile{path: path, format: format, kind: "Text"}
	if strings.HasSuffix(path, ".lib") || strings.HasSuffix(path, ".a") {
		file.kind = "Library"
	} else if configName != "Release" &&
		(strings.HasSuffix(path, ".c") || strings.HasSuffix(path, ".cpp")) {
		file.flags = "Debug"
	}
	return file
}

func (f cwFile) render(lines []string, level int) []string {
	tabs := strings.Repeat("\t", level)
	return append(lines,
		tabs+"<FILE>",
		tabs+"\t<PATHTYPE>Name</PATHTYPE>",
		tabs+"\t<PATH>"+f.path+"</PATH>",
		tabs+"\t<PATHFORMAT>"+f.format+"</PATHFORMAT>",
		tabs+"\t<FILEKIND>"+f.kind+"</FILEKIND>",
		tabs+"\t<FILEFLAGS>"+f.flags+"</FILEFLAGS>",
		tabs+"</FILE>")
}

// cwFileRef is a FILEREF entry, used by link orders and group lists.
type cwFileRef struct {
	target string
	path   string
	format string
}

func (f cwFileRef) render(lines []string, level int) []string {
	tabs := strings.Repeat("\t", level)
	lines = append(lines, tabs+"<FILEREF>")
	if f.target != "" {
		lines = append(lines, tabs+"\t<TARGETNAME>"+f.target+"</TARGETNAME>")
	}
	return append(lines,
		tabs+"\t<PATHTYPE>Name</PATHTYPE>",
		tabs+"\t<PATH>"+f.path+"</PATH>",
		tabs+"\t<PATHFORMAT>"+f.format+"</PATHFORMAT>",
		tabs+"</FILEREF>")
}

// cwTarget is one TARGET record, one per configuration plus the
// "Everything" umbrella.
type cwTarget struct {
	name       string
	settings   []*setting
	files      []cwFile
	linkOrder  []cwFileRef
	subtargets []string
}

func newCWTarget(name, linker string) *cwTarget {
	return &cwTarget{
		name: name,
		settings: []*setting{
			newSetting("Linker", linker),
			newSetting("Targetname", name),
		},
	}
}

func (t *cwTarget) render(lines []string) []string {
	lines = append(lines,
		"\t\t<TARGET>",
		"\t\t\t<NAME>"+t.name+"</NAME>",
		"\t\t\t<SETTINGLIST>")
	for _, entry := range t.settings {
		lines = entry.render(lines, 4)
	}
	lines = append(lines, "\t\t\t</SETTINGLIST>", "\t\t\t<FILELIST>")
	for _, file := range t.files {
		lines = file.render(lines, 4)
	}
	lines = append(lines, "\t\t\t</FILELIST>", "\t\t\t<LINKORDER>")
	for _, ref := range t.linkOrder {
		lines = ref.render(lines, 4)
	}
	lines = append(lines, "\t\t\t</LINKORDER>", "\t\t\t<SUBTARGETLIST>")
	for _, sub := range t.subtargets {
		lines = append(lines,
			"\t\t\t\t<SUBTARGET>",
			"\t\t\t\t\t<TARGETNAME>"+sub+"</TARGETNAME>",
			"\t\t\t\t</SUBTARGET>")
	}
	return append(lines, "\t\t\t</SUBTARGETLIST>", "\t\t</TARGET>")
}

// cwTargetName disambiguates targets when one project spans several
// concrete platforms.
func cwTargetName(project *model.Project, cfg *model.Configuration) string {
	if len(project.Platforms()) > 1 {
		return cfg.Name + "_" + cfg.Platform.ShortCode()
	}
	return cfg.Name
}

func (c *codewarrior) Generate(solution *model.Solution) ([]Result, error) {
	project := solution.Projects[0]
	acceptable := []enums.FileType{
		enums.FileTypeHeader,
		enums.FileTypeCpp,
		enums.FileTypeC,
	}
	if project.Platform.IsWindows() {
		acceptable = append(acceptable, enums.FileTypeWindowsResource)
	}
	if err := project.ResolveFiles(acceptable); err != nil {
		return nil, err
	}

	lines := c.document(solution, project)

	stem := solution.OutputStem()
	xmlPath := filepath.Join(solution.WorkingDir, stem+".mcp.xml")
	result, err := writeOutput(c.env, solution, xmlPath, lines)
	if err != nil {
		return nil, err
	}
	results := []Result{result}

	// The 5.0 IDE for Windows can import the XML into a native .mcp.
	// Skipping the conversion when the IDE is absent is not an error.
	if result.Written && c.ide == enums.IDECodeWarrior50 {
		if mcp, ok := c.convertNative(solution, xmlPath, stem); ok {
			results = append(results, Result{Path: mcp, Written: true, ConvertedNative: true})
		}
	}
	return results, nil
}

func (c *codewarrior) convertNative(solution *model.Solution, xmlPath, stem string) (string, bool) {
	idePath, ok := c.env.CodeWarriorIDE()
	if !ok {
		return "", false
	}
	mcpPath := filepath.Join(solution.WorkingDir, stem+".mcp")
	scm.NewPerforce(c.env, solution.Perforce).Edit(mcpPath)
	cmd := exec.Command(idePath, "/x", xmlPath, mcpPath, "/s", "/c", "/q")
	cmd.Dir = solution.WorkingDir
	if solution.Verbose {
		slog.Info("converting to native project", "command", cmd.String())
	}
	if err := cmd.Run(); err != nil {
		slog.Warn("native project conversion failed", "path", mcpPath, "error", err)
		return "", false
	}
	return mcpPath, true
}

func (c *codewarrior) document(solution *model.Solution, project *model.Project) []string {
	exportVersion, ideVersion := c.versions()
	lines := []string{
		`<?xml version="1.0" encoding="UTF-8" standalone="yes" ?>`,
		`<?codewarrior exportversion="` + exportVersion + `" ideversion="` + ideVersion + `" ?>`,
	}
	lines = append(lines, codewarriorDoctype...)

	linker := "MacOS PPC Linker"
	if project.Platform.IsWindows() {
		linker = "Win32 x86 Linker"
	}

	everything := newCWTarget("Everything", "None")
	targets := []*cwTarget{everything}
	for _, cfg := range project.Configurations {
		target := c.configurationTarget(solution, project, cfg, linker)
		everything.subtargets = append(everything.subtargets, target.name)
		targets = append(targets, target)
	}

	lines = append(lines, "<PROJECT>", "\t<TARGETLIST>")
	for _, target := range targets {
		lines = target.render(lines)
	}
	lines = append(lines, "\t</TARGETLIST>", "\t<TARGETORDER>")
	for _, target := range targets {
		lines = append(lines,
			"\t\t<ORDEREDTARGET><NAME>"+target.name+"</NAME></ORDEREDTARGET>")
	}
	lines = append(lines, "\t</TARGETORDER>")

	lines = c.groupList(lines, project)
	return append(lines, "</PROJECT>")
}

func (c *codewarrior) configurationTarget(solution *model.Solution, project *model.Project, cfg *model.Configuration, linker string) *cwTarget {
	target := newCWTarget(cwTargetName(project, cfg), linker)

	// Build results land in bin, matching the other build systems.
	target.settings = append(target.settings,
		searchPath(cfg.Platform, "bin", "Project", "OutputDirectory"))

	var userDirs []string
	userDirs = append(userDirs, project.SourceDirs...)
	userDirs = append(userDirs, cfg.AllIncludeFolders()...)
	if len(userDirs) != 0 {
		paths := newSettingNode("UserSearchPaths")
		for _, dir := range userDirs {
			entry := paths.add(&setting{})
			entry.subs = searchPathAndFlags(cfg.Platform, dir, "Project")
		}
		target.settings = append(target.settings, paths)
	}

	if systemDirs := cfg.AllLibraryFolders(); len(systemDirs) != 0 {
		paths := newSettingNode("SystemSearchPaths")
		for _, dir := range systemDirs {
			entry := paths.add(&setting{})
			entry.subs = searchPathAndFlags(cfg.Platform, dir, "CodeWarrior")
		}
		target.settings = append(target.settings, paths)
	}

	target.settings = append(target.settings, frontEndPanel()...)
	target.settings = append(target.settings, preprocessorPanel(cfg.AllDefines())...)
	target.settings = append(target.settings, warningsPanel()...)

	if cfg.Platform.IsWindows() {
		outName := solution.Name + solution.IDECode() +
			cfg.Platform.ShortCode() + cfg.ShortCode()
		target.settings = append(target.settings, x86ProjectPanel(project.Type, outName)...)
		target.settings = append(target.settings, x86CodeGenPanel(cfg.Debug)...)
		target.settings = append(target.settings, x86OptimizerPanel(cfg.Debug)...)
		target.settings = append(target.settings, x86DisassemblerPanel()...)
		target.settings = append(target.settings, x86LinkerPanel()...)
	}

	names := make([]string, 0, len(project.SourceFiles))
	for _, file := range project.SourceFiles {
		names = append(names, filepath.Base(file.RelativePath))
	}
	if !project.Type.IsLibrary() {
		names = append(names, cfg.AllLibraries()...)
	}
	sort.Slice(names, func(i, j int) bool { return groupLess(names[i], names[j]) })
	for _, name := range names {
		target.files = append(target.files, newCWFile(cfg.Platform, cfg.Name, name))
		path, format := cwPath(cfg.Platform, name)
		target.linkOrder = append(target.linkOrder, cwFileRef{path: path, format: format})
	}
	return target
}

// groupList renders the GROUPLIST block using the display folder tree
// shared with the other emitters. Libraries for applications land in
// their own folder.
func (c *codewarrior) groupList(lines []string, project *model.Project) []string {
	firstTarget := ""
	if len(project.Configurations) != 0 {
		firstTarget = cwTargetName(project, project.Configurations[0])
	}
	tree := buildGroupTree(project.SourceFiles)
	lines = c.renderGroup(lines, tree, project, firstTarget, 1)
	return lines
}

func (c *codewarrior) renderGroup(lines []string, node *groupNode, project *model.Project, firstTarget string, level int) []string {
	tabs := strings.Repeat("\t", level)
	tag := "GROUP"
	if level == 1 {
		tag = "GROUPLIST"
		lines = append(lines, tabs+"<"+tag+">")
	} else {
		lines = append(lines, tabs+"<"+tag+"><NAME>"+node.name+"</NAME>")
	}

	for _, child := range node.sortedChildren() {
		lines = c.renderGroup(lines, child, project, firstTarget, level+1)
	}
	for _, file := range node.files {
		path, format := cwPath(project.Platform, filepath.Base(file.RelativePath))
		lines = cwFileRef{target: firstTarget, path: path, format: format}.render(lines, level+1)
	}

	// The root also carries the library folder for applications.
	if level == 1 && !project.Type.IsLibrary() && len(project.Configurations) != 0 {
		libraries := project.Configurations[0].AllLibraries()
		if len(libraries) != 0 {
			lines = append(lines, tabs+"\t<GROUP><NAME>Libraries</NAME>")
			sorted := append([]string(nil), libraries...)
			sort.Slice(sorted, func(i, j int) bool { return groupLess(sorted[i], sorted[j]) })
			for _, library := range sorted {
				path, format := cwPath(project.Platform, library)
				lines = cwFileRef{target: firstTarget, path: path, format: format}.render(lines, level+2)
			}
			lines = append(lines, tabs+"\t</GROUP>")
		}
	}
	return append(lines, tabs+"</"+tag+">")
}

// codewarriorDoctype is the inline DTD every exported project carries.
var codewarriorDoctype = []string{
	"",
	"<!DOCTYPE PROJECT [",
	"<!ELEMENT PROJECT (TARGETLIST, TARGETORDER, GROUPLIST, DESIGNLIST?)>",
	"<!ELEMENT TARGETLIST (TARGET+)>",
	"<!ELEMENT TARGET (NAME, SETTINGLIST, FILELIST?, LINKORDER?, SEGMENTLIST?, " +
		"OVERLAYGROUPLIST?, SUBTARGETLIST?, SUBPROJECTLIST?, FRAMEWORKLIST?, PACKAGEACTIONSLIST?)>",
	"<!ELEMENT NAME (#PCDATA)>",
	"<!ELEMENT USERSOURCETREETYPE (#PCDATA)>",
	"<!ELEMENT PATH (#PCDATA)>",
	"<!ELEMENT FILELIST (FILE*)>",
	"<!ELEMENT FILE (PATHTYPE, PATHROOT?, ACCESSPATH?, PATH, PATHFORMAT?, " +
		"ROOTFILEREF?, FILEKIND?, FILEFLAGS?)>",
	"<!ELEMENT PATHTYPE (#PCDATA)>",
	"<!ELEMENT PATHROOT (#PCDATA)>",
	"<!ELEMENT ACCESSPATH (#PCDATA)>",
	"<!ELEMENT PATHFORMAT (#PCDATA)>",
	"<!ELEMENT ROOTFILEREF (PATHTYPE, PATHROOT?, ACCESSPATH?, PATH, PATHFORMAT?)>",
	"<!ELEMENT FILEKIND (#PCDATA)>",
	"<!ELEMENT FILEFLAGS (#PCDATA)>",
	"<!ELEMENT FILEREF (TARGETNAME?, PATHTYPE, PATHROOT?, ACCESSPATH?, PATH, PATHFORMAT?)>",
	"<!ELEMENT TARGETNAME (#PCDATA)>",
	"<!ELEMENT SETTINGLIST ((SETTING|PANELDATA)+)>",
	"<!ELEMENT SETTING (NAME?, (VALUE|(SETTING+)))>",
	"<!ELEMENT PANELDATA (NAME, VALUE)>",
	"<!ELEMENT VALUE (#PCDATA)>",
	"<!ELEMENT LINKORDER (FILEREF*)>",
	"<!ELEMENT SEGMENTLIST (SEGMENT+)>",
	"<!ELEMENT SEGMENT (NAME, ATTRIBUTES?, FILEREF*)>",
	"<!ELEMENT ATTRIBUTES (#PCDATA)>",
	"<!ELEMENT OVERLAYGROUPLIST (OVERLAYGROUP+)>",
	"<!ELEMENT OVERLAYGROUP (NAME, BASEADDRESS, OVERLAY*)>",
	"<!ELEMENT BASEADDRESS (#PCDATA)>",
	"<!ELEMENT OVERLAY (NAME, FILEREF*)>",
	"<!ELEMENT SUBTARGETLIST (SUBTARGET+)>",
	"<!ELEMENT SUBTARGET (TARGETNAME, ATTRIBUTES?, FILEREF?)>",
	"<!ELEMENT SUBPROJECTLIST (SUBPROJECT+)>",
	"<!ELEMENT SUBPROJECT (FILEREF, SUBPROJECTTARGETLIST)>",
	"<!ELEMENT SUBPROJECTTARGETLIST (SUBPROJECTTARGET*)>",
	"<!ELEMENT SUBPROJECTTARGET (TARGETNAME, ATTRIBUTES?, FILEREF?)>",
	"<!ELEMENT FRAMEWORKLIST (FRAMEWORK+)>",
	"<!ELEMENT FRAMEWORK (FILEREF, DYNAMICLIBRARY?, VERSION?)>",
	"<!ELEMENT PACKAGEACTIONSLIST (PACKAGEACTION+)>",
	"<!ELEMENT PACKAGEACTION (#PCDATA)>",
	"<!ELEMENT LIBRARYFILE (FILEREF)>",
	"<!ELEMENT VERSION (#PCDATA)>",
	"<!ELEMENT TARGETORDER (ORDEREDTARGET|ORDEREDDESIGN)*>",
	"<!ELEMENT ORDEREDTARGET (NAME)>",
	"<!ELEMENT ORDEREDDESIGN (NAME, ORDEREDTARGET+)>",
	"<!ELEMENT GROUPLIST (GROUP|FILEREF)*>",
	"<!ELEMENT GROUP (NAME, (GROUP|FILEREF)*)>",
	"<!ELEMENT DESIGNLIST (DESIGN+)>",
	"<!ELEMENT DESIGN (NAME, DESIGNDATA)>",
	"<!ELEMENT DESIGNDATA (#PCDATA)>",
	"]>",
	"",
}
