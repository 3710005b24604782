package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/chengwei920412/makeprojects/internal/hostenv"
	"github.com/chengwei920412/makeprojects/pkg/enums"
)

const sampleDescription = `
name: raycast
kind: app
platform: msdos
targets:
  - watcom
  - codeblocks
source_folders:
  - source/*.*
exclude:
  - legacy.cpp
defines:
  - USE_FIXED_POINT
configurations:
  - Debug
  - name: Release
    optimization: 4
    defines:
      - FINAL
perforce: false
`

func TestParse(t *testing.T) {
	doc, err := Parse(strings.NewReader(sampleDescription))
	if err != nil {
		t.Fatal(err)
	}
	if doc.Name != "raycast" || doc.Kind != "app" || doc.Platform != "msdos" {
		t.Errorf("header = %q %q %q", doc.Name, doc.Kind, doc.Platform)
	}
	if len(doc.Targets) != 2 {
		t.Errorf("targets = %v", doc.Targets)
	}
	if len(doc.Configurations) != 2 {
		t.Fatalf("configurations = %+v", doc.Configurations)
	}
	if doc.Configurations[0].Name != "Debug" {
		t.Errorf("scalar configuration = %+v", doc.Configurations[0])
	}
	release := doc.Configurations[1]
	if release.Name != "Release" || release.Optimization == nil || *release.Optimization != 4 {
		t.Errorf("mapping configuration = %+v", release)
	}
	if doc.Perforce == nil || *doc.Perforce {
		t.Error("perforce should parse as false")
	}
}

func TestParseRejectsUnknownKeys(t *testing.T) {
	_, err := Parse(strings.NewReader("name: x\nsources: [a]\n"))
	if err == nil {
		t.Fatal("unknown key should fail parsing")
	}
}

func TestParseEmptyDocument(t *testing.T) {
	doc, err := Parse(strings.NewReader(""))
	if err != nil {
		t.Fatal(err)
	}
	if doc.Name != "" {
		t.Errorf("empty document = %+v", doc)
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "projects.yaml"))
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("err = %v, want ErrNotFound", err)
	}
}

func TestLoadParseFailure(t *testing.T) {
	path := filepath.Join(t.TempDir(), "projects.yaml")
	if err := os.WriteFile(path, []byte("name: [unclosed\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	_, err := Load(path)
	if !errors.Is(err, ErrParse) {
		t.Errorf("err = %v, want ErrParse", err)
	}
}

func TestFind(t *testing.T) {
	dir := t.TempDir()
	if _, ok := Find(dir, ""); ok {
		t.Error("Find should miss in an empty directory")
	}
	path := filepath.Join(dir, DefaultFileName)
	if err := os.WriteFile(path, []byte("name: x\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	found, ok := Find(dir, "")
	if !ok || found != path {
		t.Errorf("Find = %q, %v", found, ok)
	}
	explicit, ok := Find(dir, "other.yaml")
	if !ok || explicit != "other.yaml" {
		t.Errorf("explicit Find = %q, %v", explicit, ok)
	}
}

func TestApplyDefaults(t *testing.T) {
	env := &hostenv.Fake{GOOS: "linux"}
	doc := &Document{}
	ApplyDefaults(doc, env, "/home/dev/raycast")
	if doc.Name != "raycast" {
		t.Errorf("default name = %q", doc.Name)
	}
	if doc.Kind != "tool" {
		t.Errorf("default kind = %q", doc.Kind)
	}
	if doc.Platform != "linux" {
		t.Errorf("default platform = %q", doc.Platform)
	}
	if doc.Perforce == nil || !*doc.Perforce {
		t.Error("perforce should default to enabled")
	}
}

func TestSolutionExpandsPlatformFamilies(t *testing.T) {
	doc, err := Parse(strings.NewReader(sampleDescription))
	if err != nil {
		t.Fatal(err)
	}
	env := &hostenv.Fake{GOOS: "linux"}
	solution, err := doc.Solution(env, t.TempDir(), enums.IDEWatcom)
	if err != nil {
		t.Fatal(err)
	}
	if solution.IDE != enums.IDEWatcom || solution.Perforce {
		t.Errorf("solution = %+v", solution)
	}
	if len(solution.Projects) != 1 {
		t.Fatalf("projects = %d", len(solution.Projects))
	}
	project := solution.Projects[0]
	if project.Platform != enums.PlatformMSDos {
		t.Errorf("declared platform = %v", project.Platform)
	}
	// msdos expands to x32 and dos4gw, two configurations each.
	if len(project.Configurations) != 4 {
		t.Fatalf("configurations = %d", len(project.Configurations))
	}
	platforms := project.Platforms()
	if len(platforms) != 2 || platforms[0] != enums.PlatformMSDosX32 || platforms[1] != enums.PlatformMSDos4GW {
		t.Errorf("expanded platforms = %v", platforms)
	}
	for _, cfg := range project.Configurations {
		if cfg.Platform.IsExpandable() {
			t.Errorf("configuration kept family platform %v", cfg.Platform)
		}
	}
}

func TestSolutionAppliesConfigurationDefaults(t *testing.T) {
	doc := &Document{
		Name:     "demo",
		Kind:     "tool",
		Platform: "win32",
	}
	env := &hostenv.Fake{GOOS: "linux"}
	solution, err := doc.Solution(env, t.TempDir(), enums.IDEVisualStudio2008)
	if err != nil {
		t.Fatal(err)
	}
	project := solution.Projects[0]
	// Defaults give Debug, Internal, Release and Release_LTCG on vs+win32.
	if got := project.ConfigurationNames(); len(got) != 4 {
		t.Fatalf("configuration names = %v", got)
	}
	debug := project.Configurations[0]
	if !debug.Debug {
		t.Error("first default configuration should be Debug")
	}
	found := false
	for _, d := range debug.AllDefines() {
		if d == "_DEBUG" {
			found = true
		}
		if d == "NDEBUG" {
			t.Error("debug configuration defines NDEBUG")
		}
	}
	if !found {
		t.Errorf("debug defines = %v", debug.AllDefines())
	}
}

func TestSolutionRejectsUnknownNames(t *testing.T) {
	env := &hostenv.Fake{GOOS: "linux"}
	doc := &Document{Name: "x", Kind: "kernel", Platform: "win32"}
	if _, err := doc.Solution(env, ".", enums.IDEMake); !errors.Is(err, ErrInvalid) {
		t.Errorf("unknown kind err = %v", err)
	}
	doc = &Document{Name: "x", Kind: "tool", Platform: "amiga"}
	if _, err := doc.Solution(env, ".", enums.IDEMake); !errors.Is(err, ErrInvalid) {
		t.Errorf("unknown platform err = %v", err)
	}
}

func TestTargetIDEs(t *testing.T) {
	env := &hostenv.Fake{GOOS: "linux"}
	doc := &Document{Targets: []string{"watcom", "vs2008", "wat"}}
	ides, err := doc.TargetIDEs(env)
	if err != nil {
		t.Fatal(err)
	}
	if len(ides) != 2 || ides[0] != enums.IDEWatcom || ides[1] != enums.IDEVisualStudio2008 {
		t.Errorf("ides = %v", ides)
	}

	doc = &Document{Targets: []string{"emacs"}}
	if _, err := doc.TargetIDEs(env); !errors.Is(err, ErrInvalid) {
		t.Errorf("unknown target err = %v", err)
	}

	doc = &Document{}
	ides, err = doc.TargetIDEs(env)
	if err != nil || len(ides) != 1 || ides[0] != enums.IDEMake {
		t.Errorf("default ides = %v, %v", ides, err)
	}
}
