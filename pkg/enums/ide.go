package enums

import "strings"

// IDEType identifies the build system or IDE a project file targets.
type IDEType int

const (
	IDEVisualStudio2003 IDEType = iota
	IDEVisualStudio2005
	IDEVisualStudio2008
	IDEVisualStudio2010
	IDEVisualStudio2012
	IDEVisualStudio2013
	IDEVisualStudio2015
	IDEVisualStudio2017
	IDEVisualStudio2019
	IDEWatcom
	IDECodeWarrior50
	IDECodeWarrior58
	IDECodeWarrior59
	IDEXcode3
	IDEXcode4
	IDEXcode5
	IDEXcode6
	IDEXcode7
	IDEXcode8
	IDEXcode9
	IDEXcode10
	IDECodeBlocks
	IDENMake
	IDEMake
	IDEBazel
)

// Host describes the machine the generator runs on. It is injected so
// tests never depend on what happens to be installed locally.
type Host interface {
	// OS returns the runtime.GOOS value of the host.
	OS() string
	// Installed reports whether the toolchain behind an IDE is present.
	Installed(IDEType) bool
}

var ideNames = map[IDEType]string{
	IDEVisualStudio2003: "vs2003",
	IDEVisualStudio2005: "vs2005",
	IDEVisualStudio2008: "vs2008",
	IDEVisualStudio2010: "vs2010",
	IDEVisualStudio2012: "vs2012",
	IDEVisualStudio2013: "vs2013",
	IDEVisualStudio2015: "vs2015",
	IDEVisualStudio2017: "vs2017",
	IDEVisualStudio2019: "vs2019",
	IDEWatcom:           "watcom",
	IDECodeWarrior50:    "codewarrior50",
	IDECodeWarrior58:    "codewarrior58",
	IDECodeWarrior59:    "codewarrior59",
	IDEXcode3:           "xcode3",
	IDEXcode4:           "xcode4",
	IDEXcode5:           "xcode5",
	IDEXcode6:           "xcode6",
	IDEXcode7:           "xcode7",
	IDEXcode8:           "xcode8",
	IDEXcode9:           "xcode9",
	IDEXcode10:          "xcode10",
	IDECodeBlocks:       "codeblocks",
	IDENMake:            "nmake",
	IDEMake:             "make",
	IDEBazel:            "bazel",
}

// ideShortCodes are the suffixes baked into generated file names so
// several targets can coexist in the same directory.
var ideShortCodes = map[IDEType]string{
	IDEVisualStudio2003: "vc7",
	IDEVisualStudio2005: "vc8",
	IDEVisualStudio2008: "vc9",
	IDEVisualStudio2010: "v10",
	IDEVisualStudio2012: "v12",
	IDEVisualStudio2013: "v13",
	IDEVisualStudio2015: "v15",
	IDEVisualStudio2017: "v17",
	IDEVisualStudio2019: "v19",
	IDEWatcom:           "wat",
	IDECodeWarrior50:    "c50",
	IDECodeWarrior58:    "c58",
	IDECodeWarrior59:    "c59",
	IDEXcode3:           "xc3",
	IDEXcode4:           "xc4",
	IDEXcode5:           "xc5",
	IDEXcode6:           "xc6",
	IDEXcode7:           "xc7",
	IDEXcode8:           "xc8",
	IDEXcode9:           "xc9",
	IDEXcode10:          "x10",
	IDECodeBlocks:       "cdb",
	IDENMake:            "nmk",
	IDEMake:             "mak",
	IDEBazel:            "bzl",
}

var ideDisplayNames = map[IDEType]string{
	IDEVisualStudio2003: "Visual Studio 2003",
	IDEVisualStudio2005: "Visual Studio 2005",
	IDEVisualStudio2008: "Visual Studio 2008",
	IDEVisualStudio2010: "Visual Studio 2010",
	IDEVisualStudio2012: "Visual Studio 2012",
	IDEVisualStudio2013: "Visual Studio 2013",
	IDEVisualStudio2015: "Visual Studio 2015",
	IDEVisualStudio2017: "Visual Studio 2017",
	IDEVisualStudio2019: "Visual Studio 2019",
	IDEWatcom:           "Open Watcom 1.9",
	IDECodeWarrior50:    "CodeWarrior 9",
	IDECodeWarrior58:    "CodeWarrior 10",
	IDECodeWarrior59:    "Freescale CodeWarrior 5.9",
	IDEXcode3:           "Xcode 3.1.4",
	IDEXcode4:           "Xcode 4",
	IDEXcode5:           "Xcode 5",
	IDEXcode6:           "Xcode 6",
	IDEXcode7:           "Xcode 7",
	IDEXcode8:           "Xcode 8",
	IDEXcode9:           "Xcode 9",
	IDEXcode10:          "Xcode 10",
	IDECodeBlocks:       "CodeBlocks 16.01",
	IDENMake:            "GNU nmake",
	IDEMake:             "GNU make",
	IDEBazel:            "Bazel",
}

// visualStudioNewestFirst orders the Visual Studio releases for the
// "pick the newest installed" probes.
var visualStudioNewestFirst = []IDEType{
	IDEVisualStudio2019, IDEVisualStudio2017, IDEVisualStudio2015,
	IDEVisualStudio2013, IDEVisualStudio2012, IDEVisualStudio2010,
	IDEVisualStudio2008, IDEVisualStudio2005, IDEVisualStudio2003,
}

var xcodeNewestFirst = []IDEType{
	IDEXcode10, IDEXcode9, IDEXcode8, IDEXcode7, IDEXcode6,
	IDEXcode5, IDEXcode4, IDEXcode3,
}

var codeWarriorNewestFirst = []IDEType{
	IDECodeWarrior59, IDECodeWarrior58, IDECodeWarrior50,
}

// String returns the lowercase member name, e.g. "vs2008".
func (i IDEType) String() string {
	if name, ok := ideNames[i]; ok {
		return name
	}
	return "unknown"
}

// ShortCode returns the three-character file name suffix, e.g. "vc9".
func (i IDEType) ShortCode() string {
	return ideShortCodes[i]
}

// DisplayName returns the human readable product name.
func (i IDEType) DisplayName() string {
	return ideDisplayNames[i]
}

// IsVisualStudio reports whether the IDE is any Visual Studio release.
func (i IDEType) IsVisualStudio() bool {
	return i >= IDEVisualStudio2003 && i <= IDEVisualStudio2019
}

// IsXcode reports whether the IDE is any Xcode release.
func (i IDEType) IsXcode() bool {
	return i >= IDEXcode3 && i <= IDEXcode10
}

// IsCodeWarrior reports whether the IDE is any CodeWarrior release.
func (i IDEType) IsCodeWarrior() bool {
	return i >= IDECodeWarrior50 && i <= IDECodeWarrior59
}

func newestInstalled(host Host, candidates []IDEType, fallback IDEType) IDEType {
	if host != nil {
		for _, ide := range candidates {
			if host.Installed(ide) {
				return ide
			}
		}
	}
	return fallback
}

// ParseIDE resolves an IDE from a member name, display name or short
// code. The generic spellings "vs", "visualstudio", "xcode" and
// "codewarrior" resolve to the newest installed release on the host, or
// to a sensible fixed release when none is found.
func ParseIDE(name string, host Host) (IDEType, bool) {
	lower := strings.ToLower(strings.TrimSpace(name))
	switch lower {
	case "vs", "visualstudio":
		return newestInstalled(host, visualStudioNewestFirst, IDEVisualStudio2019), true
	case "xcode":
		return newestInstalled(host, xcodeNewestFirst, IDEXcode10), true
	case "codewarrior":
		return newestInstalled(host, codeWarriorNewestFirst, IDECodeWarrior50), true
	}
	for ide, n := range ideNames {
		if n == lower || ideShortCodes[ide] == lower {
			return ide, true
		}
	}
	for ide, n := range ideDisplayNames {
		if strings.ToLower(n) == lower {
			return ide, true
		}
	}
	return IDEMake, false
}

// DefaultIDE picks the IDE used when a description names none: the
// newest installed native toolchain for the host platform, falling back
// to GNU make everywhere.
func DefaultIDE(host Host) IDEType {
	os := ""
	if host != nil {
		os = host.OS()
	}
	switch os {
	case "windows":
		for _, ide := range visualStudioNewestFirst {
			if host.Installed(ide) {
				return ide
			}
		}
		if host.Installed(IDEWatcom) {
			return IDEWatcom
		}
	case "darwin":
		for _, ide := range xcodeNewestFirst {
			if host.Installed(ide) {
				return ide
			}
		}
	}
	return IDEMake
}
