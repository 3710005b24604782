// Package rules applies the stock build policy to a freshly built
// model: which configurations a platform gets by default and the
// defines, libraries and frameworks every toolchain expects.
package rules

import (
	"github.com/chengwei920412/makeprojects/internal/model"
	"github.com/chengwei920412/makeprojects/pkg/enums"
)

// ConfigTemplate describes one default configuration before it is
// bound to a platform.
type ConfigTemplate struct {
	Name            string
	Debug           bool
	Optimization    int
	LinkTimeCodeGen bool
	AnalyzeCode     bool
	Profile         string
}

// DefaultConfigurations returns the configuration set a platform and
// IDE pair receives when the description names none.
func DefaultConfigurations(platform enums.PlatformType, ide enums.IDEType) []ConfigTemplate {
	results := []ConfigTemplate{
		{Name: "Debug", Debug: true},
		{Name: "Internal", Debug: true, Optimization: 4},
		{Name: "Release", Optimization: 4},
	}

	// Link time code generation is a separate configuration on the
	// Microsoft toolchains that support it.
	if ide.IsVisualStudio() {
		switch platform {
		case enums.PlatformWin32, enums.PlatformWin64, enums.PlatformWindows,
			enums.PlatformXbox360:
			results = append(results, ConfigTemplate{
				Name:            "Release_LTCG",
				Optimization:    4,
				LinkTimeCodeGen: true,
			})
		}
	}

	if platform == enums.PlatformXbox360 {
		results = append(results,
			ConfigTemplate{Name: "Profile", Optimization: 4, Profile: "on"},
			ConfigTemplate{Name: "Profile_FastCap", Optimization: 4, Profile: "fast"},
			ConfigTemplate{Name: "CodeAnalysis", AnalyzeCode: true},
		)
	}
	return results
}

// NewConfiguration instantiates a template for a concrete platform.
func (t ConfigTemplate) NewConfiguration(platform enums.PlatformType) *model.Configuration {
	return &model.Configuration{
		Name:            t.Name,
		Platform:        platform,
		Debug:           t.Debug,
		Optimization:    t.Optimization,
		LinkTimeCodeGen: t.LinkTimeCodeGen,
		AnalyzeCode:     t.AnalyzeCode,
		Profile:         t.Profile,
	}
}

var windowsSystemLibraries = []string{
	"Kernel32.lib", "Gdi32.lib", "Shell32.lib", "Ole32.lib",
	"User32.lib", "Advapi32.lib", "version.lib", "Ws2_32.lib",
	"Comctl32.lib",
}

var macosxFrameworks = []string{
	"AppKit.framework",
	"AudioToolbox.framework",
	"AudioUnit.framework",
	"Carbon.framework",
	"Cocoa.framework",
	"CoreAudio.framework",
	"IOKit.framework",
	"OpenGL.framework",
	"QuartzCore.framework",
	"SystemConfiguration.framework",
}

var iosFrameworks = []string{
	"AVFoundation.framework",
	"CoreGraphics.framework",
	"CoreLocation.framework",
	"Foundation.framework",
	"QuartzCore.framework",
	"UIKit.framework",
}

var xbox360ProfileLibraries = []string{
	"d3d9i.lib", "d3dx9i.lib", "xgraphics.lib", "xapilibi.lib",
	"xaudio2.lib", "x3daudioi.lib", "xmcorei.lib",
}

var xbox360DebugLibraries = []string{
	"d3d9d.lib", "d3dx9d.lib", "xgraphicsd.lib", "xapilibd.lib",
	"xaudiod2.lib", "x3daudiod.lib", "xmcored.lib",
}

var xbox360ReleaseLibraries = []string{
	"d3d9ltcg.lib", "d3dx9.lib", "xgraphics.lib", "xapilib.lib",
	"xaudio2.lib", "x3daudioltcg.lib", "xmcoreltcg.lib",
}

// ApplyConfigurationDefaults fills in the defines, libraries, search
// paths and frameworks a configuration is expected to carry for its
// platform and the solution's IDE. The caller's own values are kept
// and the defaults appended after them.
func ApplyConfigurationDefaults(cfg *model.Configuration, ide enums.IDEType) {
	var defines []string
	var libraries []string

	if cfg.Debug {
		defines = append(defines, "_DEBUG")
	} else {
		defines = append(defines, "NDEBUG")
	}

	platform := cfg.Platform
	projectType := enums.DefaultProjectType()
	if cfg.Project() != nil {
		projectType = cfg.Project().Type
	}

	if platform.IsWindows() {
		if ide.IsCodeWarrior() {
			cfg.LibraryFolders = append(cfg.LibraryFolders,
				"$(CodeWarrior)/MSL", "$(CodeWarrior)/Win32-x86 Support")
			if cfg.Debug {
				libraries = append(libraries, "MSL_All_x86_D.lib")
			} else {
				libraries = append(libraries, "MSL_All_x86.lib")
			}
		}
		libraries = append(libraries, windowsSystemLibraries...)

		defines = append(defines, "_WINDOWS", "WIN32_LEAN_AND_MEAN")
		if platform == enums.PlatformWin64 {
			defines = append(defines, "WIN64")
		} else {
			defines = append(defines, "WIN32")
		}
		if projectType == enums.ProjectTypeTool {
			defines = append(defines, "_CONSOLE")
		}
		if ide == enums.IDEWatcom || ide == enums.IDECodeBlocks {
			defines = append(defines,
				"GLUT_DISABLE_ATEXIT_HACK", "GLUT_NO_LIB_PRAGMA")
		}
	}

	switch platform {
	case enums.PlatformMSDos4GW:
		defines = append(defines, "__DOS4G__")
	case enums.PlatformMSDosX32:
		defines = append(defines, "__X32__")
	case enums.PlatformPS4:
		defines = append(defines, "__ORBIS2__")
	case enums.PlatformVita:
		defines = append(defines, "SN_TARGET_PSP2")
	case enums.PlatformLinux:
		defines = append(defines, "__LINUX__")
	case enums.PlatformXbox360:
		defines = append(defines, "_XBOX", "XBOX")
		libraries = append(libraries, "xbdm.lib", "xboxkrnl.lib")
		switch {
		case cfg.Profile != "":
			libraries = append(libraries, xbox360ProfileLibraries...)
		case cfg.Debug:
			libraries = append(libraries, xbox360DebugLibraries...)
		default:
			libraries = append(libraries, xbox360ReleaseLibraries...)
		}
	}

	if platform.IsAndroid() {
		defines = append(defines, "DISABLE_IMPORTGL")
		libraries = append(libraries, "android", "EGL", "GLESv1_CM")
	}
	if platform.IsMacOSCarbon() {
		defines = append(defines, "TARGET_API_MAC_CARBON=1")
	}
	if platform.IsMacOSX() && !projectType.IsLibrary() {
		cfg.Frameworks = append(cfg.Frameworks, macosxFrameworks...)
	}
	if platform.IsIOS() && !projectType.IsLibrary() {
		cfg.Frameworks = append(cfg.Frameworks, iosFrameworks...)
	}

	cfg.Defines = append(cfg.Defines, defines...)

	// Libraries only matter when something links.
	if !projectType.IsLibrary() {
		cfg.Libraries = append(cfg.Libraries, libraries...)
	}
}
