package cli

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/chengwei920412/makeprojects/internal/config"
)

// resetCommand clears sticky flag state between runs.
func resetCommand() {
	flagVerbose = false
	flagFile = ""
	flagName = ""
	flagKind = ""
	flagPlatform = ""
	flagConfigs = nil
	flagStopOnError = false
	flagDebug = false
	flagInternal = false
	flagRelease = false
	flagLib = false
	flagApp = false
	flagTool = false
	initInteractive = false
	initForce = false
}

func runCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()
	resetCommand()
	if args == nil {
		args = []string{}
	}
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func writeMain(t *testing.T, dir string) {
	t.Helper()
	src := filepath.Join(dir, "source")
	if err := os.MkdirAll(src, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(src, "main.cpp"), []byte("int main() { return 0; }\n"), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestGenerateCommandLineOnly(t *testing.T) {
	dir := t.TempDir()
	writeMain(t, dir)
	t.Chdir(dir)

	out, err := runCommand(t, "watcom", "-n", "demo", "-p", "msdos")
	if err != nil {
		t.Fatalf("execute: %v\n%s", err, out)
	}
	if _, statErr := os.Stat(filepath.Join(dir, "demowatdos.wmk")); statErr != nil {
		t.Errorf("expected project file: %v", statErr)
	}
	if !strings.Contains(out, "1 targets: 1 written") {
		t.Errorf("summary missing in %q", out)
	}
}

func TestGenerateUnsupportedTargetExitCode(t *testing.T) {
	dir := t.TempDir()
	writeMain(t, dir)
	t.Chdir(dir)

	// CodeWarrior 5.9 cannot target Linux.
	out, err := runCommand(t, "codewarrior59", "-n", "demo", "-p", "linux")
	if err == nil {
		t.Fatalf("expected failure, output: %q", out)
	}
	var coded *exitError
	if !errors.As(err, &coded) || coded.code != exitUnsupported {
		t.Errorf("err = %v, want exit code %d", err, exitUnsupported)
	}
	if !strings.Contains(out, "skipped") {
		t.Errorf("output missing skip notice: %q", out)
	}
}

func TestGenerateMixedSkipExitCode(t *testing.T) {
	dir := t.TempDir()
	writeMain(t, dir)
	t.Chdir(dir)

	// codewarrior59 cannot target MSDos, watcom can. The watcom file
	// must still be written and the skip must surface in the exit code.
	out, err := runCommand(t, "codewarrior59", "watcom", "-n", "demo", "-p", "msdos")
	if err == nil {
		t.Fatalf("expected failure, output: %q", out)
	}
	var coded *exitError
	if !errors.As(err, &coded) || coded.code != exitPartial {
		t.Errorf("err = %v, want exit code %d", err, exitPartial)
	}
	if _, statErr := os.Stat(filepath.Join(dir, "demowatdos.wmk")); statErr != nil {
		t.Errorf("watcom output missing: %v", statErr)
	}
	if !strings.Contains(out, "skipped") {
		t.Errorf("output missing skip notice: %q", out)
	}
}

func TestGenerateReadsDescriptionFile(t *testing.T) {
	dir := t.TempDir()
	writeMain(t, dir)
	description := strings.Join([]string{
		"name: raycast",
		"kind: tool",
		"platform: msdos",
		"targets: [watcom]",
		"source_folders: [source]",
		"perforce: false",
	}, "\n")
	if err := os.WriteFile(filepath.Join(dir, config.DefaultFileName), []byte(description), 0o644); err != nil {
		t.Fatal(err)
	}
	t.Chdir(dir)

	out, err := runCommand(t)
	if err != nil {
		t.Fatalf("execute: %v\n%s", err, out)
	}
	if _, statErr := os.Stat(filepath.Join(dir, "raycastwatdos.wmk")); statErr != nil {
		t.Errorf("expected project file: %v", statErr)
	}
}

func TestGenerateBadDescriptionExitCode(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, config.DefaultFileName), []byte("kind: [broken"), 0o644); err != nil {
		t.Fatal(err)
	}
	t.Chdir(dir)

	_, err := runCommand(t)
	var coded *exitError
	if !errors.As(err, &coded) || coded.code != exitInput {
		t.Errorf("err = %v, want exit code %d", err, exitInput)
	}
}

func TestInitWritesStarter(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)

	out, err := runCommand(t, "init")
	if err != nil {
		t.Fatalf("execute: %v\n%s", err, out)
	}
	data, err := os.ReadFile(filepath.Join(dir, config.DefaultFileName))
	if err != nil {
		t.Fatal(err)
	}
	for _, want := range []string{"name: " + filepath.Base(dir), "kind: tool", "source_folders:"} {
		if !strings.Contains(string(data), want) {
			t.Errorf("starter missing %q", want)
		}
	}

	// A second init must refuse to clobber the file.
	_, err = runCommand(t, "init")
	var coded *exitError
	if !errors.As(err, &coded) || coded.code != exitInput {
		t.Errorf("err = %v, want exit code %d", err, exitInput)
	}
}

func TestApplyOverrides(t *testing.T) {
	resetCommand()
	flagName = "demo"
	flagKind = "library"
	flagPlatform = "win32"
	flagConfigs = []string{"Debug", "Release"}

	doc := &config.Document{Name: "other", Kind: "tool"}
	applyOverrides(doc, []string{"watcom", "vs2008"})

	if doc.Name != "demo" || doc.Kind != "library" || doc.Platform != "win32" {
		t.Errorf("overrides not applied: %+v", doc)
	}
	if len(doc.Targets) != 2 || doc.Targets[0] != "watcom" {
		t.Errorf("targets = %v", doc.Targets)
	}
	if len(doc.Configurations) != 2 || doc.Configurations[1].Name != "Release" {
		t.Errorf("configurations = %v", doc.Configurations)
	}
}

func TestShorthandFlags(t *testing.T) {
	resetCommand()
	flagLib = true
	flagDebug = true
	flagRelease = true

	doc := &config.Document{}
	applyOverrides(doc, nil)

	if doc.Kind != "library" {
		t.Errorf("kind = %q, want library", doc.Kind)
	}
	if len(doc.Configurations) != 2 ||
		doc.Configurations[0].Name != "Debug" ||
		doc.Configurations[1].Name != "Release" {
		t.Errorf("configurations = %v", doc.Configurations)
	}
}

func TestRenderDescription(t *testing.T) {
	got := renderDescription("demo", "library", "msdos", []string{"watcom", "codeblocks"})
	for _, want := range []string{
		"name: demo",
		"kind: library",
		"platform: msdos",
		"  - watcom",
		"  - codeblocks",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("description missing %q", want)
		}
	}
}
