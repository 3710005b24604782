package rules

import (
	"slices"
	"testing"

	"github.com/chengwei920412/makeprojects/internal/model"
	"github.com/chengwei920412/makeprojects/pkg/enums"
)

func configNames(templates []ConfigTemplate) []string {
	var names []string
	for _, t := range templates {
		names = append(names, t.Name)
	}
	return names
}

func TestDefaultConfigurations(t *testing.T) {
	base := DefaultConfigurations(enums.PlatformMSDos4GW, enums.IDEWatcom)
	if got := configNames(base); !slices.Equal(got, []string{"Debug", "Internal", "Release"}) {
		t.Errorf("watcom configurations = %v", got)
	}

	vs := DefaultConfigurations(enums.PlatformWin32, enums.IDEVisualStudio2008)
	if got := configNames(vs); !slices.Contains(got, "Release_LTCG") {
		t.Errorf("vs2008 win32 should include Release_LTCG, got %v", got)
	}

	xbox := DefaultConfigurations(enums.PlatformXbox360, enums.IDEVisualStudio2005)
	got := configNames(xbox)
	for _, want := range []string{"Profile", "Profile_FastCap", "CodeAnalysis", "Release_LTCG"} {
		if !slices.Contains(got, want) {
			t.Errorf("xbox360 configurations missing %s: %v", want, got)
		}
	}
}

func newConfig(t *testing.T, name string, debug bool, platform enums.PlatformType, projectType enums.ProjectType) *model.Configuration {
	t.Helper()
	project := &model.Project{Name: "demo", Type: projectType, Platform: platform}
	cfg := &model.Configuration{Name: name, Debug: debug, Platform: platform}
	project.AddConfiguration(cfg)
	return cfg
}

func TestApplyConfigurationDefaultsWindows(t *testing.T) {
	cfg := newConfig(t, "Debug", true, enums.PlatformWin32, enums.ProjectTypeTool)
	ApplyConfigurationDefaults(cfg, enums.IDEVisualStudio2008)

	for _, want := range []string{"_DEBUG", "_WINDOWS", "WIN32_LEAN_AND_MEAN", "WIN32", "_CONSOLE"} {
		if !slices.Contains(cfg.Defines, want) {
			t.Errorf("defines missing %s: %v", want, cfg.Defines)
		}
	}
	if slices.Contains(cfg.Defines, "NDEBUG") {
		t.Error("debug configuration must not define NDEBUG")
	}
	if slices.Contains(cfg.Defines, "GLUT_DISABLE_ATEXIT_HACK") {
		t.Error("GLUT workarounds are watcom/codeblocks only")
	}
	if !slices.Contains(cfg.Libraries, "Kernel32.lib") {
		t.Errorf("windows system libraries missing: %v", cfg.Libraries)
	}
}

func TestApplyConfigurationDefaultsWatcomRelease(t *testing.T) {
	cfg := newConfig(t, "Release", false, enums.PlatformWin32, enums.ProjectTypeTool)
	ApplyConfigurationDefaults(cfg, enums.IDEWatcom)
	for _, want := range []string{"NDEBUG", "GLUT_DISABLE_ATEXIT_HACK", "GLUT_NO_LIB_PRAGMA"} {
		if !slices.Contains(cfg.Defines, want) {
			t.Errorf("defines missing %s: %v", want, cfg.Defines)
		}
	}
}

func TestApplyConfigurationDefaultsCodeWarrior(t *testing.T) {
	cfg := newConfig(t, "Debug", true, enums.PlatformWin32, enums.ProjectTypeTool)
	ApplyConfigurationDefaults(cfg, enums.IDECodeWarrior50)
	if !slices.Contains(cfg.LibraryFolders, "$(CodeWarrior)/MSL") {
		t.Errorf("MSL library folders missing: %v", cfg.LibraryFolders)
	}
	if !slices.Contains(cfg.Libraries, "MSL_All_x86_D.lib") {
		t.Errorf("debug MSL library missing: %v", cfg.Libraries)
	}

	release := newConfig(t, "Release", false, enums.PlatformWin32, enums.ProjectTypeTool)
	ApplyConfigurationDefaults(release, enums.IDECodeWarrior50)
	if !slices.Contains(release.Libraries, "MSL_All_x86.lib") {
		t.Errorf("release MSL library missing: %v", release.Libraries)
	}
}

func TestApplyConfigurationDefaultsDosExtenders(t *testing.T) {
	dos4gw := newConfig(t, "Release", false, enums.PlatformMSDos4GW, enums.ProjectTypeTool)
	ApplyConfigurationDefaults(dos4gw, enums.IDEWatcom)
	if !slices.Contains(dos4gw.Defines, "__DOS4G__") {
		t.Errorf("dos4gw defines = %v", dos4gw.Defines)
	}
	x32 := newConfig(t, "Release", false, enums.PlatformMSDosX32, enums.ProjectTypeTool)
	ApplyConfigurationDefaults(x32, enums.IDEWatcom)
	if !slices.Contains(x32.Defines, "__X32__") {
		t.Errorf("x32 defines = %v", x32.Defines)
	}
}

func TestApplyConfigurationDefaultsLibrariesSkipLinkInputs(t *testing.T) {
	cfg := newConfig(t, "Release", false, enums.PlatformWin32, enums.ProjectTypeLibrary)
	ApplyConfigurationDefaults(cfg, enums.IDEVisualStudio2008)
	if len(cfg.Libraries) != 0 {
		t.Errorf("static libraries must not receive link inputs: %v", cfg.Libraries)
	}
}

func TestApplyConfigurationDefaultsMacFrameworks(t *testing.T) {
	app := newConfig(t, "Release", false, enums.PlatformMacOSXIntel64, enums.ProjectTypeApp)
	ApplyConfigurationDefaults(app, enums.IDEXcode3)
	if !slices.Contains(app.Frameworks, "Cocoa.framework") {
		t.Errorf("app frameworks = %v", app.Frameworks)
	}
	lib := newConfig(t, "Release", false, enums.PlatformMacOSXIntel64, enums.ProjectTypeLibrary)
	ApplyConfigurationDefaults(lib, enums.IDEXcode3)
	if len(lib.Frameworks) != 0 {
		t.Errorf("library frameworks = %v", lib.Frameworks)
	}
}
