package enums

import "strings"

// PlatformType identifies a build target platform. Some members name a
// whole family (Windows, macOS, MSDos) and expand into the concrete
// CPU-specific members during solution construction.
type PlatformType int

const (
	PlatformWindows PlatformType = iota
	PlatformWin32
	PlatformWin64

	PlatformMacOSX
	PlatformMacOSXPPC32
	PlatformMacOSXPPC64
	PlatformMacOSXIntel32
	PlatformMacOSXIntel64

	PlatformMacOS9
	PlatformMacOS968k
	PlatformMacOS9PPC
	PlatformMacCarbon
	PlatformMacCarbon68k
	PlatformMacCarbonPPC

	PlatformIOS
	PlatformIOS32
	PlatformIOS64
	PlatformIOSEmu
	PlatformIOSEmu32
	PlatformIOSEmu64

	PlatformXbox
	PlatformXbox360
	PlatformXboxOne

	PlatformPS3
	PlatformPS4
	PlatformVita

	PlatformWiiU
	PlatformSwitch
	PlatformDSI
	PlatformDS

	PlatformAndroid
	PlatformShield
	PlatformAmico
	PlatformOuya
	PlatformAndroidArm32
	PlatformAndroidArm64
	PlatformAndroidIntel32
	PlatformAndroidIntel64

	PlatformLinux

	PlatformMSDos
	PlatformMSDos4GW
	PlatformMSDosX32

	PlatformBeOS
	PlatformIIGS
)

var platformNames = map[PlatformType]string{
	PlatformWindows:        "windows",
	PlatformWin32:          "win32",
	PlatformWin64:          "win64",
	PlatformMacOSX:         "macosx",
	PlatformMacOSXPPC32:    "macosxppc32",
	PlatformMacOSXPPC64:    "macosxppc64",
	PlatformMacOSXIntel32:  "macosxintel32",
	PlatformMacOSXIntel64:  "macosxintel64",
	PlatformMacOS9:         "macos9",
	PlatformMacOS968k:      "macos968k",
	PlatformMacOS9PPC:      "macos9ppc",
	PlatformMacCarbon:      "maccarbon",
	PlatformMacCarbon68k:   "maccarbon68k",
	PlatformMacCarbonPPC:   "maccarbonppc",
	PlatformIOS:            "ios",
	PlatformIOS32:          "ios32",
	PlatformIOS64:          "ios64",
	PlatformIOSEmu:         "iosemu",
	PlatformIOSEmu32:       "iosemu32",
	PlatformIOSEmu64:       "iosemu64",
	PlatformXbox:           "xbox",
	PlatformXbox360:        "xbox360",
	PlatformXboxOne:        "xboxone",
	PlatformPS3:            "ps3",
	PlatformPS4:            "ps4",
	PlatformVita:           "vita",
	PlatformWiiU:           "wiiu",
	PlatformSwitch:         "switch",
	PlatformDSI:            "dsi",
	PlatformDS:             "ds",
	PlatformAndroid:        "android",
	PlatformShield:         "shield",
	PlatformAmico:          "amico",
	PlatformOuya:           "ouya",
	PlatformAndroidArm32:   "androidarm32",
	PlatformAndroidArm64:   "androidarm64",
	PlatformAndroidIntel32: "androidintel32",
	PlatformAndroidIntel64: "androidintel64",
	PlatformLinux:          "linux",
	PlatformMSDos:          "msdos",
	PlatformMSDos4GW:       "msdos4gw",
	PlatformMSDosX32:       "msdosx32",
	PlatformBeOS:           "beos",
	PlatformIIGS:           "iigs",
}

// platformShortCodes are the file name suffixes. Family members carry a
// CPU qualifier after the three letter platform code.
var platformShortCodes = map[PlatformType]string{
	PlatformWindows:        "win",
	PlatformWin32:          "w32",
	PlatformWin64:          "w64",
	PlatformMacOSX:         "osx",
	PlatformMacOSXPPC32:    "osxp32",
	PlatformMacOSXPPC64:    "osxp64",
	PlatformMacOSXIntel32:  "osxx86",
	PlatformMacOSXIntel64:  "osxx64",
	PlatformMacOS9:         "mac",
	PlatformMacOS968k:      "mac68k",
	PlatformMacOS9PPC:      "macppc",
	PlatformMacCarbon:      "car",
	PlatformMacCarbon68k:   "car68k",
	PlatformMacCarbonPPC:   "carppc",
	PlatformIOS:            "ios",
	PlatformIOS32:          "iosa32",
	PlatformIOS64:          "iosa64",
	PlatformIOSEmu:         "ioe",
	PlatformIOSEmu32:       "ioex86",
	PlatformIOSEmu64:       "ioex64",
	PlatformXbox:           "xbx",
	PlatformXbox360:        "x36",
	PlatformXboxOne:        "one",
	PlatformPS3:            "ps3",
	PlatformPS4:            "ps4",
	PlatformVita:           "vit",
	PlatformWiiU:           "wiu",
	PlatformSwitch:         "swi",
	PlatformDSI:            "dsi",
	PlatformDS:             "2ds",
	PlatformAndroid:        "and",
	PlatformShield:         "shi",
	PlatformAmico:          "ami",
	PlatformOuya:           "oya",
	PlatformAndroidArm32:   "anda32",
	PlatformAndroidArm64:   "anda64",
	PlatformAndroidIntel32: "andx32",
	PlatformAndroidIntel64: "andx64",
	PlatformLinux:          "lnx",
	PlatformMSDos:          "dos",
	PlatformMSDos4GW:       "dos4gw",
	PlatformMSDosX32:       "dosx32",
	PlatformBeOS:           "beo",
	PlatformIIGS:           "2gs",
}

var platformDisplayNames = map[PlatformType]string{
	PlatformWindows:        "Microsoft Windows x86 and x64",
	PlatformWin32:          "Microsoft Windows x86",
	PlatformWin64:          "Microsoft Windows x64",
	PlatformMacOSX:         "Apple macOS all CPUs",
	PlatformMacOSXPPC32:    "Apple macOS PowerPC 32",
	PlatformMacOSXPPC64:    "Apple macOS PowerPC 64",
	PlatformMacOSXIntel32:  "Apple macOS x86",
	PlatformMacOSXIntel64:  "Apple macOS x64",
	PlatformMacOS9:         "Apple MacOS 9 PPC and 68k",
	PlatformMacOS968k:      "Apple MacOS 9 68k",
	PlatformMacOS9PPC:      "Apple MacOS 9 PowerPC 32",
	PlatformMacCarbon:      "Apple MacOS Carbon",
	PlatformMacCarbon68k:   "Apple MacOS Carbon 68k",
	PlatformMacCarbonPPC:   "Apple MacOS Carbon PowerPC 32",
	PlatformIOS:            "Apple iOS",
	PlatformIOS32:          "Apple iOS ARM 32",
	PlatformIOS64:          "Apple iOS ARM 64",
	PlatformIOSEmu:         "Apple iOS Emulator",
	PlatformIOSEmu32:       "Apple iOS Emulator x86",
	PlatformIOSEmu64:       "Apple iOS Emulator x64",
	PlatformXbox:           "Microsoft Xbox",
	PlatformXbox360:        "Microsoft Xbox 360",
	PlatformXboxOne:        "Microsoft Xbox ONE",
	PlatformPS3:            "Sony PS3",
	PlatformPS4:            "Sony PS4",
	PlatformVita:           "Sony Playstation Vita",
	PlatformWiiU:           "Nintendo WiiU",
	PlatformSwitch:         "Nintendo Switch",
	PlatformDSI:            "Nintendo DSI",
	PlatformDS:             "Nintendo 2DS",
	PlatformAndroid:        "Google Android",
	PlatformShield:         "nVidia Shield",
	PlatformAmico:          "Intellivision Amico",
	PlatformOuya:           "Ouya",
	PlatformAndroidArm32:   "Android ARM 32",
	PlatformAndroidArm64:   "Android ARM 64",
	PlatformAndroidIntel32: "Android x86",
	PlatformAndroidIntel64: "Android x64",
	PlatformLinux:          "Linux",
	PlatformMSDos:          "MSDos DOS4GW and X32",
	PlatformMSDos4GW:       "MSDos DOS4GW",
	PlatformMSDosX32:       "MSDos X32",
	PlatformBeOS:           "BeOS",
	PlatformIIGS:           "Apple IIgs",
}

// platformVSNames holds the platform identifiers Visual Studio project
// files use for each target. Console toolchains use vendor codes.
var platformVSNames = map[PlatformType][]string{
	PlatformWindows: {"Win32", "x64"},
	PlatformWin32:   {"Win32"},
	PlatformWin64:   {"x64"},
	PlatformXbox:    {"Xbox"},
	PlatformXbox360: {"Xbox 360"},
	PlatformXboxOne: {"Xbox ONE"},
	PlatformPS3:     {"PS3"},
	PlatformPS4:     {"ORBIS"},
	PlatformVita:    {"PSVita"},
	PlatformWiiU:    {"Cafe"},
	PlatformDSI:     {"CTR"},
	PlatformSwitch:  {"Switch"},
	PlatformAndroid: {"Android"},
	PlatformShield: {
		"Tegra-Android",
		"ARM-Android-NVIDIA",
		"AArch64-Android-NVIDIA",
		"x86-Android-NVIDIA",
		"x64-Android-NVIDIA",
	},
	PlatformAndroidArm32:   {"ARM-Android-NVIDIA"},
	PlatformAndroidArm64:   {"AArch64-Android-NVIDIA"},
	PlatformAndroidIntel32: {"x86-Android-NVIDIA"},
	PlatformAndroidIntel64: {"x64-Android-NVIDIA"},
}

var platformExpansions = map[PlatformType][]PlatformType{
	PlatformWindows: {PlatformWin32, PlatformWin64},
	PlatformMSDos:   {PlatformMSDosX32, PlatformMSDos4GW},
	PlatformMacOSX: {
		PlatformMacOSXPPC32, PlatformMacOSXPPC64,
		PlatformMacOSXIntel32, PlatformMacOSXIntel64,
	},
	PlatformMacOS9:    {PlatformMacOS968k, PlatformMacOS9PPC},
	PlatformMacCarbon: {PlatformMacCarbon68k, PlatformMacCarbonPPC},
	PlatformIOS:       {PlatformIOS32, PlatformIOS64},
	PlatformIOSEmu:    {PlatformIOSEmu32, PlatformIOSEmu64},
	PlatformAndroid: {
		PlatformAndroidArm32, PlatformAndroidArm64,
		PlatformAndroidIntel32, PlatformAndroidIntel64,
	},
}

// String returns the lowercase member name, e.g. "msdos4gw".
func (p PlatformType) String() string {
	if name, ok := platformNames[p]; ok {
		return name
	}
	return "unknown"
}

// ShortCode returns the file name suffix, e.g. "w32" or "dos4gw".
func (p PlatformType) ShortCode() string {
	return platformShortCodes[p]
}

// DisplayName returns the human readable platform name.
func (p PlatformType) DisplayName() string {
	return platformDisplayNames[p]
}

// VSPlatforms returns the Visual Studio platform identifiers for the
// target. The list is empty for platforms Visual Studio never hosted.
func (p PlatformType) VSPlatforms() []string {
	return platformVSNames[p]
}

// IsWindows reports whether the platform is any Microsoft Windows target.
func (p PlatformType) IsWindows() bool {
	return p == PlatformWindows || p == PlatformWin32 || p == PlatformWin64
}

// IsMacOSX reports whether the platform is any Apple macOS target.
func (p PlatformType) IsMacOSX() bool {
	switch p {
	case PlatformMacOSX, PlatformMacOSXPPC32, PlatformMacOSXPPC64,
		PlatformMacOSXIntel32, PlatformMacOSXIntel64:
		return true
	}
	return false
}

// IsIOS reports whether the platform is any Apple iOS target, device
// or emulator.
func (p PlatformType) IsIOS() bool {
	switch p {
	case PlatformIOS, PlatformIOS32, PlatformIOS64,
		PlatformIOSEmu, PlatformIOSEmu32, PlatformIOSEmu64:
		return true
	}
	return false
}

// IsMacOSClassic reports whether the platform targets MacOS 1.0 to 9.2.2.
func (p PlatformType) IsMacOSClassic() bool {
	return p == PlatformMacOS9 || p == PlatformMacOS968k || p == PlatformMacOS9PPC
}

// IsMacOSCarbon reports whether the platform targets the MacOS Carbon API.
func (p PlatformType) IsMacOSCarbon() bool {
	return p == PlatformMacCarbon || p == PlatformMacCarbon68k || p == PlatformMacCarbonPPC
}

// IsMacOS reports whether the platform is MacOS classic or Carbon.
func (p PlatformType) IsMacOS() bool {
	return p.IsMacOSClassic() || p.IsMacOSCarbon()
}

// IsMSDos reports whether the platform is any MSDos target.
func (p PlatformType) IsMSDos() bool {
	return p == PlatformMSDos || p == PlatformMSDos4GW || p == PlatformMSDosX32
}

// IsAndroid reports whether the platform is any Android derived target.
func (p PlatformType) IsAndroid() bool {
	switch p {
	case PlatformAndroid, PlatformShield, PlatformOuya, PlatformAmico,
		PlatformAndroidArm32, PlatformAndroidArm64,
		PlatformAndroidIntel32, PlatformAndroidIntel64:
		return true
	}
	return false
}

// Expanded returns the concrete platforms a family member covers. A
// platform that is not a family returns itself.
func (p PlatformType) Expanded() []PlatformType {
	if expanded, ok := platformExpansions[p]; ok {
		out := make([]PlatformType, len(expanded))
		copy(out, expanded)
		return out
	}
	return []PlatformType{p}
}

// IsExpandable reports whether the platform names a family.
func (p PlatformType) IsExpandable() bool {
	_, ok := platformExpansions[p]
	return ok
}

// Match reports whether two platforms are compatible. A family member
// matches every platform in its family, so the relation is symmetric:
// win32 matches windows and windows matches win32.
func (p PlatformType) Match(other PlatformType) bool {
	if p == other {
		return true
	}
	if p == PlatformWindows || other == PlatformWindows {
		return p.IsWindows() == other.IsWindows()
	}
	if p == PlatformMacOSX || other == PlatformMacOSX {
		return p.IsMacOSX() == other.IsMacOSX()
	}
	if p == PlatformMacOS9 || other == PlatformMacOS9 {
		return p.IsMacOSClassic() == other.IsMacOSClassic()
	}
	if p == PlatformMacCarbon || other == PlatformMacCarbon {
		return p.IsMacOSCarbon() == other.IsMacOSCarbon()
	}
	if p == PlatformIOS || other == PlatformIOS {
		return p.IsIOS() == other.IsIOS()
	}
	if p == PlatformMSDos || other == PlatformMSDos {
		return p.IsMSDos() == other.IsMSDos()
	}
	if p == PlatformAndroid || other == PlatformAndroid {
		return p.IsAndroid() == other.IsAndroid()
	}
	return false
}

// ParsePlatform resolves a platform from a member name, display name,
// short code or Visual Studio platform identifier. Case-insensitive.
func ParsePlatform(name string) (PlatformType, bool) {
	lower := strings.ToLower(strings.TrimSpace(name))
	for p, n := range platformNames {
		if n == lower || platformShortCodes[p] == lower {
			return p, true
		}
	}
	for p, n := range platformDisplayNames {
		if strings.ToLower(n) == lower {
			return p, true
		}
	}
	for p, vsNames := range platformVSNames {
		if p.IsExpandable() {
			continue
		}
		for _, vsName := range vsNames {
			if strings.ToLower(vsName) == lower {
				return p, true
			}
		}
	}
	return PlatformLinux, false
}

// DefaultPlatform picks the platform matching the host machine:
// Windows hosts target the Windows family, macOS hosts the macOS
// family, everything else targets Linux.
func DefaultPlatform(host Host) PlatformType {
	if host == nil {
		return PlatformLinux
	}
	switch host.OS() {
	case "windows":
		return PlatformWindows
	case "darwin":
		return PlatformMacOSX
	}
	return PlatformLinux
}
