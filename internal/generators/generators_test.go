package generators

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/chengwei920412/makeprojects/internal/hostenv"
	"github.com/chengwei920412/makeprojects/internal/model"
	"github.com/chengwei920412/makeprojects/pkg/enums"
)

func writeSourceTree(t *testing.T, dir string, names ...string) {
	t.Helper()
	src := filepath.Join(dir, "source")
	if err := os.MkdirAll(src, 0o755); err != nil {
		t.Fatal(err)
	}
	for _, name := range names {
		path := filepath.Join(src, name)
		if err := os.WriteFile(path, []byte("// "+name+"\n"), 0o644); err != nil {
			t.Fatal(err)
		}
	}
}

type testConfig struct {
	name     string
	platform enums.PlatformType
	debug    bool
	opt      int
}

func newTestSolution(dir string, ide enums.IDEType, declared enums.PlatformType, kind enums.ProjectType, configs []testConfig) *model.Solution {
	solution := &model.Solution{
		Name:       "demo",
		WorkingDir: dir,
		IDE:        ide,
	}
	project := &model.Project{
		Name:          "demo",
		Type:          kind,
		Platform:      declared,
		WorkingDir:    dir,
		SourceFolders: []string{"source"},
	}
	for _, tc := range configs {
		project.AddConfiguration(&model.Configuration{
			Name:         tc.name,
			Platform:     tc.platform,
			Debug:        tc.debug,
			Optimization: tc.opt,
		})
	}
	solution.AddProject(project)
	return solution
}

func readOutput(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	return string(data)
}

func TestGenerateWatcom(t *testing.T) {
	dir := t.TempDir()
	writeSourceTree(t, dir, "main.cpp", "main.h")

	// The windows family expands to win32 and win64; Watcom serves
	// win32 only, so the win64 configurations are dropped.
	solution := newTestSolution(dir, enums.IDEWatcom, enums.PlatformWindows,
		enums.ProjectTypeTool, []testConfig{
			{name: "Debug", platform: enums.PlatformWin32, debug: true},
			{name: "Debug", platform: enums.PlatformWin64, debug: true},
			{name: "Release", platform: enums.PlatformWin32, opt: 4},
			{name: "Release", platform: enums.PlatformWin64, opt: 4},
		})

	env := &hostenv.Fake{GOOS: "linux"}
	results, err := Generate(solution, env)
	if err != nil {
		t.Fatal(err)
	}
	if len(results) != 1 {
		t.Fatalf("results = %d, want 1", len(results))
	}
	wantPath := filepath.Join(dir, "demowatwin.wmk")
	if results[0].Path != wantPath {
		t.Errorf("path = %q, want %q", results[0].Path, wantPath)
	}
	if !results[0].Written {
		t.Error("first generation should write the file")
	}

	content := readOutput(t, wantPath)
	if got := strings.Count(content, "$(A)/main.obj"); got != 1 {
		t.Errorf("main.obj referenced %d times, want 1", got)
	}
	for _, want := range []string{
		"all: Debug Release .SYMBOLIC",
		"Debug: Debugw32 .SYMBOLIC",
		"Release: Releasew32 .SYMBOLIC",
		"CONFIG = Release",
	} {
		if !strings.Contains(content, want) {
			t.Errorf("output missing %q", want)
		}
	}
	if strings.Contains(content, "w64") {
		t.Error("win64 configurations must not reach the output")
	}
	if strings.Contains(content, "main.h") {
		t.Error("headers must not appear in the object list")
	}

	// A second run against unchanged input must not rewrite the file.
	results, err = Generate(solution, env)
	if err != nil {
		t.Fatal(err)
	}
	if results[0].Written {
		t.Error("second generation should leave the file alone")
	}
}

func TestGenerateWatcomDosExtender(t *testing.T) {
	dir := t.TempDir()
	writeSourceTree(t, dir, "main.cpp", "main.h")

	solution := newTestSolution(dir, enums.IDEWatcom, enums.PlatformMSDos,
		enums.ProjectTypeTool, []testConfig{
			{name: "Debug", platform: enums.PlatformMSDos4GW, debug: true},
			{name: "Release", platform: enums.PlatformMSDos4GW, opt: 4},
		})

	results, err := Generate(solution, &hostenv.Fake{GOOS: "linux"})
	if err != nil {
		t.Fatal(err)
	}
	if len(results) != 1 {
		t.Fatalf("results = %d, want 1", len(results))
	}
	content := readOutput(t, filepath.Join(dir, "demowatdos.wmk"))
	for _, want := range []string{
		"Debug: Debugdos4gw .SYMBOLIC",
		"Release: Releasedos4gw .SYMBOLIC",
	} {
		if !strings.Contains(content, want) {
			t.Errorf("output missing %q", want)
		}
	}
}

func TestGenerateCodeWarriorUnsupportedPlatform(t *testing.T) {
	dir := t.TempDir()
	writeSourceTree(t, dir, "main.cpp")

	// CodeWarrior 5.9 only targets the Nintendo DSi.
	solution := newTestSolution(dir, enums.IDECodeWarrior59, enums.PlatformWin32,
		enums.ProjectTypeTool, []testConfig{
			{name: "Release", platform: enums.PlatformWin32, opt: 4},
		})

	_, err := Generate(solution, &hostenv.Fake{GOOS: "linux"})
	if !errors.Is(err, ErrUnsupported) {
		t.Fatalf("err = %v, want ErrUnsupported", err)
	}

	entries, readErr := os.ReadDir(dir)
	if readErr != nil {
		t.Fatal(readErr)
	}
	for _, entry := range entries {
		if !entry.IsDir() {
			t.Errorf("unexpected output file %s", entry.Name())
		}
	}
}

func TestGenerateCodeWarrior(t *testing.T) {
	dir := t.TempDir()
	writeSourceTree(t, dir, "main.cpp", "main.h")

	solution := newTestSolution(dir, enums.IDECodeWarrior50, enums.PlatformWin32,
		enums.ProjectTypeTool, []testConfig{
			{name: "Debug", platform: enums.PlatformWin32, debug: true},
			{name: "Release", platform: enums.PlatformWin32, opt: 4},
		})

	// No IDE installed, so no native conversion is attempted.
	results, err := Generate(solution, &hostenv.Fake{GOOS: "linux"})
	if err != nil {
		t.Fatal(err)
	}
	if len(results) != 1 {
		t.Fatalf("results = %d, want 1", len(results))
	}
	if results[0].ConvertedNative {
		t.Error("conversion must not run without the IDE installed")
	}
	if got, want := results[0].Path, filepath.Join(dir, "democ50w32.mcp.xml"); got != want {
		t.Errorf("path = %q, want %q", got, want)
	}

	content := readOutput(t, results[0].Path)
	for _, want := range []string{
		`<?codewarrior exportversion="1.0.1" ideversion="5.0" ?>`,
		"<NAME>Everything</NAME>",
		"<TARGETNAME>Debug</TARGETNAME>",
		"<NAME>Release</NAME>",
		"<PATH>main.cpp</PATH>",
		"Win32 x86 Linker",
		"MWProject_X86_outfile",
	} {
		if !strings.Contains(content, want) {
			t.Errorf("output missing %q", want)
		}
	}
}

func TestGenerateVisualStudio(t *testing.T) {
	dir := t.TempDir()
	writeSourceTree(t, dir, "main.cpp", "main.h")

	solution := newTestSolution(dir, enums.IDEVisualStudio2008, enums.PlatformWin32,
		enums.ProjectTypeTool, []testConfig{
			{name: "Debug", platform: enums.PlatformWin32, debug: true},
			{name: "Release", platform: enums.PlatformWin32, opt: 4},
		})

	results, err := Generate(solution, &hostenv.Fake{GOOS: "windows"})
	if err != nil {
		t.Fatal(err)
	}
	if len(results) != 2 {
		t.Fatalf("results = %d, want 2", len(results))
	}

	sln := readOutput(t, filepath.Join(dir, "demovc9w32.sln"))
	for _, want := range []string{
		"Microsoft Visual Studio Solution File, Format Version 10.00",
		"# Visual Studio 2008",
		"Debug|Win32 = Debug|Win32",
	} {
		if !strings.Contains(sln, want) {
			t.Errorf("sln missing %q", want)
		}
	}

	vcproj := readOutput(t, filepath.Join(dir, "demovc9w32.vcproj"))
	for _, want := range []string{
		`Version="9.00"`,
		`<Platform Name="Win32" />`,
		`Name="Debug|Win32"`,
		`Name="Release|Win32"`,
		`RelativePath="source\main.cpp"`,
		`<Filter Name="source">`,
	} {
		if !strings.Contains(vcproj, want) {
			t.Errorf("vcproj missing %q", want)
		}
	}
}

func TestDeterministicGUID(t *testing.T) {
	first := deterministicGUID("demovc9w32.vcproj")
	second := deterministicGUID("demovc9w32.vcproj")
	if first != second {
		t.Errorf("GUID not stable: %q vs %q", first, second)
	}
	if len(first) != 36 {
		t.Errorf("GUID length = %d, want 36", len(first))
	}
	if first != strings.ToUpper(first) {
		t.Errorf("GUID must be upper case, got %q", first)
	}
	if first == deterministicGUID("othervc9w32.vcproj") {
		t.Error("different names must yield different GUIDs")
	}
}

func TestGenerateCodeBlocks(t *testing.T) {
	dir := t.TempDir()
	writeSourceTree(t, dir, "main.cpp", "main.h")

	solution := newTestSolution(dir, enums.IDECodeBlocks, enums.PlatformWin32,
		enums.ProjectTypeTool, []testConfig{
			{name: "Debug", platform: enums.PlatformWin32, debug: true},
			{name: "Release", platform: enums.PlatformWin32, opt: 4},
		})

	results, err := Generate(solution, &hostenv.Fake{GOOS: "windows"})
	if err != nil {
		t.Fatal(err)
	}
	content := readOutput(t, results[0].Path)
	for _, want := range []string{
		"<CodeBlocks_project_file>",
		`<Target title="Debug">`,
		`<Target title="Release">`,
		`<Add alias="Everything" targets="Debug;Release;" />`,
		`<Unit filename="source/main.cpp" />`,
	} {
		if !strings.Contains(content, want) {
			t.Errorf("output missing %q", want)
		}
	}
}

func TestGenerateMakefile(t *testing.T) {
	dir := t.TempDir()
	writeSourceTree(t, dir, "main.cpp", "main.h")

	solution := newTestSolution(dir, enums.IDEMake, enums.PlatformLinux,
		enums.ProjectTypeLibrary, []testConfig{
			{name: "Release", platform: enums.PlatformLinux, opt: 4},
		})

	results, err := Generate(solution, &hostenv.Fake{GOOS: "linux"})
	if err != nil {
		t.Fatal(err)
	}
	content := readOutput(t, results[0].Path)
	for _, want := range []string{
		"PROJECT_NAME = demo",
		"OBJ_NAMES = main.o",
		"VPATH = source",
	} {
		if !strings.Contains(content, want) {
			t.Errorf("output missing %q", want)
		}
	}
}

func TestGenerateUnknownIDE(t *testing.T) {
	dir := t.TempDir()
	solution := newTestSolution(dir, enums.IDEBazel, enums.PlatformLinux,
		enums.ProjectTypeTool, []testConfig{
			{name: "Release", platform: enums.PlatformLinux, opt: 4},
		})
	_, err := Generate(solution, &hostenv.Fake{GOOS: "linux"})
	if !errors.Is(err, ErrUnsupported) {
		t.Fatalf("err = %v, want ErrUnsupported", err)
	}
}

func TestGroupTree(t *testing.T) {
	files := []*model.SourceFile{
		model.NewSourceFile("source/gfx/blit.cpp", "source/gfx", enums.FileTypeCpp),
		model.NewSourceFile("source/main.cpp", "source", enums.FileTypeCpp),
		model.NewSourceFile("main.h", ".", enums.FileTypeHeader),
	}
	root := buildGroupTree(files)

	if len(root.files) != 1 || root.files[0].BaseName() != "main.h" {
		t.Errorf("root files = %v", root.files)
	}
	children := root.sortedChildren()
	if len(children) != 1 || children[0].name != "source" {
		t.Fatalf("root children = %v", children)
	}
	source := children[0]
	if len(source.files) != 1 || source.files[0].RelativePath != "source/main.cpp" {
		t.Errorf("source files = %v", source.files)
	}
	grand := source.sortedChildren()
	if len(grand) != 1 || grand[0].name != "gfx" {
		t.Fatalf("source children = %v", grand)
	}
}
