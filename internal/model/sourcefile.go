// Package model holds the in-memory description a generator consumes:
// a Solution owning Projects, each owning Configurations and a resolved
// list of SourceFiles. The model is built either from a description
// file or from command line arguments, then handed unchanged to every
// target generator.
package model

import (
	"path"
	"strings"

	"github.com/chengwei920412/makeprojects/pkg/enums"
)

// SourceFile is a single file tracked by a project. Paths are stored
// with forward slashes regardless of host so generated output is
// identical across platforms.
type SourceFile struct {
	// RelativePath locates the file relative to the working directory.
	RelativePath string
	// Directory is the absolute directory the file was found in.
	Directory string
	// Type is the build classification derived from the extension.
	Type enums.FileType
}

// NewSourceFile normalizes the relative path to forward slashes.
func NewSourceFile(relativePath, directory string, fileType enums.FileType) *SourceFile {
	return &SourceFile{
		RelativePath: strings.ReplaceAll(relativePath, "\\", "/"),
		Directory:    directory,
		Type:         fileType,
	}
}

// BaseName returns the file name without its directory.
func (s *SourceFile) BaseName() string {
	return path.Base(s.RelativePath)
}

// ObjectName returns the base name without its extension, the name the
// object file will carry.
func (s *SourceFile) ObjectName() string {
	base := s.BaseName()
	return strings.TrimSuffix(base, path.Ext(base))
}

// GroupName derives the IDE folder the file is displayed under: the
// directory portion with any leading "./" and "../" segments removed.
// Files in the working directory itself get the empty group.
func (s *SourceFile) GroupName() string {
	dir := path.Dir(s.RelativePath)
	if dir == "." {
		return ""
	}
	for {
		switch {
		case strings.HasPrefix(dir, "../"):
			dir = dir[3:]
		case strings.HasPrefix(dir, "./"):
			dir = dir[2:]
		case dir == ".." || dir == ".":
			return ""
		default:
			return dir
		}
	}
}
