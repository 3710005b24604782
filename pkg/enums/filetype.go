// Package enums defines the closed vocabularies shared by the project
// model and the generators: source file classifications, project kinds,
// target IDEs and platforms. Lookups are case-insensitive and report
// failure through a boolean instead of panicking so callers can decide
// whether an unknown string is fatal.
package enums

import (
	"path/filepath"
	"strings"
)

// FileType classifies a source file by how build tools treat it.
type FileType int

const (
	// FileTypeUser marks a file with a custom build step.
	FileTypeUser FileType = iota
	// FileTypeGeneric marks a file that is tracked but never compiled.
	FileTypeGeneric
	FileTypeC
	FileTypeCpp
	FileTypeHeader
	FileTypeObjC
	FileTypeXML
	FileTypeWindowsResource
	FileTypeMacResource
	FileTypeHLSL
	FileTypeGLSL
	FileTypeX360SL
	FileTypeVitaCG
	FileTypeFrameworks
	FileTypeLibrary
	FileTypeExe
	FileTypeXCConfig
	FileTypeX86
	FileTypeX64
	FileType6502
	FileTypePowerPC
	FileType68000
	FileTypeImage
	FileTypeIco
	FileTypeIcns
)

var fileTypeNames = map[FileType]string{
	FileTypeUser:            "user",
	FileTypeGeneric:         "generic",
	FileTypeC:               "c",
	FileTypeCpp:             "cpp",
	FileTypeHeader:          "h",
	FileTypeObjC:            "m",
	FileTypeXML:             "xml",
	FileTypeWindowsResource: "rc",
	FileTypeMacResource:     "r",
	FileTypeHLSL:            "hlsl",
	FileTypeGLSL:            "glsl",
	FileTypeX360SL:          "x360sl",
	FileTypeVitaCG:          "vitacg",
	FileTypeFrameworks:      "frameworks",
	FileTypeLibrary:         "library",
	FileTypeExe:             "exe",
	FileTypeXCConfig:        "xcconfig",
	FileTypeX86:             "x86",
	FileTypeX64:             "x64",
	FileType6502:            "a65",
	FileTypePowerPC:         "ppc",
	FileType68000:           "a68",
	FileTypeImage:           "image",
	FileTypeIco:             "ico",
	FileTypeIcns:            "icns",
}

// fileTypeByExtension maps lowercase file extensions (without the dot)
// to their classification. Extensions not listed here are unknown, not
// generic; the scanner decides what to do with unknown files.
var fileTypeByExtension = map[string]FileType{
	"c":        FileTypeC,
	"cc":       FileTypeCpp,
	"cpp":      FileTypeCpp,
	"c++":      FileTypeCpp,
	"hpp":      FileTypeHeader,
	"h":        FileTypeHeader,
	"hh":       FileTypeHeader,
	"i":        FileTypeHeader,
	"inc":      FileTypeHeader,
	"m":        FileTypeObjC,
	"mm":       FileTypeObjC,
	"plist":    FileTypeXML,
	"rc":       FileTypeWindowsResource,
	"r":        FileTypeMacResource,
	"rsrc":     FileTypeMacResource,
	"hlsl":     FileTypeHLSL,
	"vsh":      FileTypeGLSL,
	"fsh":      FileTypeGLSL,
	"glsl":     FileTypeGLSL,
	"x360sl":   FileTypeX360SL,
	"vitacg":   FileTypeVitaCG,
	"xml":      FileTypeXML,
	"x86":      FileTypeX86,
	"x64":      FileTypeX64,
	"a65":      FileType6502,
	"ppc":      FileTypePowerPC,
	"a68":      FileType68000,
	"ico":      FileTypeIco,
	"icns":     FileTypeIcns,
	"png":      FileTypeImage,
	"jpg":      FileTypeImage,
	"jpeg":     FileTypeImage,
	"bmp":      FileTypeImage,
	"gif":      FileTypeImage,
	"tif":      FileTypeImage,
	"tiff":     FileTypeImage,
	"psd":      FileTypeImage,
	"txt":      FileTypeGeneric,
	"md":       FileTypeGeneric,
	"doc":      FileTypeGeneric,
	"sh":       FileTypeGeneric,
	"cmd":      FileTypeGeneric,
	"bat":      FileTypeGeneric,
	"xcconfig": FileTypeXCConfig,
}

// String returns the lowercase name used in description files.
func (f FileType) String() string {
	if name, ok := fileTypeNames[f]; ok {
		return name
	}
	return "unknown"
}

// IsCompilable reports whether the file produces an object file.
func (f FileType) IsCompilable() bool {
	switch f {
	case FileTypeC, FileTypeCpp, FileTypeObjC,
		FileTypeX86, FileTypeX64, FileType6502, FileTypePowerPC, FileType68000:
		return true
	}
	return false
}

// FileTypeFromName classifies a file path by its extension. The match
// is case-insensitive. ok is false when the extension is not known.
func FileTypeFromName(name string) (FileType, bool) {
	ext := strings.TrimPrefix(filepath.Ext(name), ".")
	t, ok := fileTypeByExtension[strings.ToLower(ext)]
	return t, ok
}

// ParseFileType resolves a file type by its lowercase name.
func ParseFileType(name string) (FileType, bool) {
	lower := strings.ToLower(name)
	for t, n := range fileTypeNames {
		if n == lower {
			return t, true
		}
	}
	return FileTypeUser, false
}
