package model

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/chengwei920412/makeprojects/pkg/enums"
)

func TestSourceFileGroupName(t *testing.T) {
	tests := []struct {
		path string
		want string
	}{
		{"a/b/c.cpp", "a/b"},
		{"./x.cpp", ""},
		{"../../y/z.h", "y"},
		{"main.cpp", ""},
		{"source/main.cpp", "source"},
		{"..\\generated\\tables.h", "generated"},
		{"../shared.h", ""},
	}
	for _, tt := range tests {
		f := NewSourceFile(tt.path, "", enums.FileTypeCpp)
		if got := f.GroupName(); got != tt.want {
			t.Errorf("GroupName(%q) = %q, want %q", tt.path, got, tt.want)
		}
	}
}

func TestSourceFileObjectName(t *testing.T) {
	f := NewSourceFile("source/gfx/blit.cpp", "", enums.FileTypeCpp)
	if got := f.ObjectName(); got != "blit" {
		t.Errorf("ObjectName = %q, want %q", got, "blit")
	}
}

func newTestProject(t *testing.T) *Project {
	t.Helper()
	return &Project{
		Name:       "demo",
		Type:       enums.ProjectTypeTool,
		Platform:   enums.PlatformWin32,
		WorkingDir: t.TempDir(),
	}
}

func TestChainedResolution(t *testing.T) {
	project := newTestProject(t)
	project.Defines = []string{"SHARED", "NDEBUG"}
	project.Libraries = []string{"Kernel32.lib"}

	debug := &Configuration{
		Name:     "Debug",
		Platform: enums.PlatformWin32,
		Debug:    true,
		Defines:  []string{"_DEBUG", "SHARED"},
	}
	release := &Configuration{
		Name:     "Release",
		Platform: enums.PlatformWin32,
	}
	project.AddConfiguration(debug)
	project.AddConfiguration(release)

	got := debug.AllDefines()
	want := []string{"_DEBUG", "SHARED", "NDEBUG"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("debug.AllDefines() = %v, want %v", got, want)
	}

	// A project level addition reaches every configuration, while a
	// configuration level addition stays local.
	project.Defines = append(project.Defines, "PROJECT_WIDE")
	debug.Defines = append(debug.Defines, "DEBUG_ONLY")

	if got := release.AllDefines(); !reflect.DeepEqual(got, []string{"SHARED", "NDEBUG", "PROJECT_WIDE"}) {
		t.Errorf("release.AllDefines() = %v", got)
	}
	for _, d := range release.AllDefines() {
		if d == "DEBUG_ONLY" {
			t.Error("configuration define leaked into sibling configuration")
		}
	}
	if got := debug.AllLibraries(); !reflect.DeepEqual(got, []string{"Kernel32.lib"}) {
		t.Errorf("debug.AllLibraries() = %v", got)
	}
}

func TestResolvedDeployFolder(t *testing.T) {
	project := newTestProject(t)
	project.DeployFolder = "../bin"
	cfg := &Configuration{Name: "Release", Platform: enums.PlatformWin32}
	project.AddConfiguration(cfg)
	if got := cfg.ResolvedDeployFolder(); got != "../bin" {
		t.Errorf("ResolvedDeployFolder = %q, want project fallback", got)
	}
	cfg.DeployFolder = "../bin/release"
	if got := cfg.ResolvedDeployFolder(); got != "../bin/release" {
		t.Errorf("ResolvedDeployFolder = %q, want override", got)
	}
}

func writeFile(t *testing.T, dir, name string) {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte("// test\n"), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestResolveFilesScanAndSort(t *testing.T) {
	project := newTestProject(t)
	writeFile(t, project.WorkingDir, "source/main.cpp")
	writeFile(t, project.WorkingDir, "source/Audio.cpp")
	writeFile(t, project.WorkingDir, "source/zbuffer.h")
	writeFile(t, project.WorkingDir, "source/gfx/blit.cpp")
	writeFile(t, project.WorkingDir, "source/notes.txt")
	writeFile(t, project.WorkingDir, "source/temp/scratch.cpp")
	writeFile(t, project.WorkingDir, "source/skipme.cpp")
	project.SourceFolders = []string{"source/*.*"}
	project.Exclude = []string{"SkipMe.cpp"}

	acceptable := []enums.FileType{enums.FileTypeCpp, enums.FileTypeHeader}
	if err := project.ResolveFiles(acceptable); err != nil {
		t.Fatal(err)
	}

	var got []string
	for _, f := range project.SourceFiles {
		got = append(got, f.RelativePath)
	}
	want := []string{
		"source/Audio.cpp",
		"source/gfx/blit.cpp",
		"source/main.cpp",
		"source/zbuffer.h",
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("resolved files = %v, want %v", got, want)
	}

	// Rescanning an unchanged tree yields identical output.
	if err := project.ResolveFiles(acceptable); err != nil {
		t.Fatal(err)
	}
	var again []string
	for _, f := range project.SourceFiles {
		again = append(again, f.RelativePath)
	}
	if !reflect.DeepEqual(got, again) {
		t.Errorf("rescan changed output: %v vs %v", got, again)
	}
}

func TestResolveFilesMissingFolder(t *testing.T) {
	project := newTestProject(t)
	project.SourceFolders = []string{"nowhere/*.*"}
	if err := project.ResolveFiles([]enums.FileType{enums.FileTypeCpp}); err != nil {
		t.Fatalf("missing folder should be skipped, got %v", err)
	}
	if len(project.SourceFiles) != 0 {
		t.Errorf("expected no files, got %v", project.SourceFiles)
	}
}

func TestProjectPlatformsAndNames(t *testing.T) {
	project := newTestProject(t)
	for _, name := range []string{"Debug", "Release"} {
		for _, platform := range []enums.PlatformType{enums.PlatformWin32, enums.PlatformWin64} {
			project.AddConfiguration(&Configuration{Name: name, Platform: platform})
		}
	}
	if got := project.ConfigurationNames(); !reflect.DeepEqual(got, []string{"Debug", "Release"}) {
		t.Errorf("ConfigurationNames = %v", got)
	}
	platforms := project.Platforms()
	if len(platforms) != 2 || platforms[0] != enums.PlatformWin32 || platforms[1] != enums.PlatformWin64 {
		t.Errorf("Platforms = %v", platforms)
	}
}

func TestSolutionOutputStem(t *testing.T) {
	solution := &Solution{Name: "demo", IDE: enums.IDEWatcom}
	solution.AddProject(&Project{Name: "demo", Platform: enums.PlatformMSDos})
	if got := solution.OutputStem(); got != "demowatdos" {
		t.Errorf("OutputStem = %q, want %q", got, "demowatdos")
	}
}
