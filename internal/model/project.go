package model

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/chengwei920412/makeprojects/pkg/enums"
)

// prunedDirectories are directory names never scanned for sources:
// scratch output and IDE bundles.
var prunedDirectories = map[string]bool{
	"temp":        true,
	"bin":         true,
	"appfolder":   true,
	".git":        true,
	".svn":        true,
	".vscode":     true,
	"__pycache__": true,
}

// prunedSuffixes are directory name suffixes treated as opaque bundles.
var prunedSuffixes = []string{".xcodeproj", ".app", ".framework"}

// Project is a single buildable target inside a solution.
type Project struct {
	// Name is the project name, used for file names and link targets.
	Name string
	// Type is the kind of binary produced.
	Type enums.ProjectType
	// Platform is the declared target, possibly a family member that
	// was expanded into the per-configuration concrete platforms.
	Platform enums.PlatformType
	// WorkingDir is the absolute directory scans are relative to.
	WorkingDir string

	// SourceFolders lists directories to scan. A trailing "/*.*"
	// requests a recursive scan of that directory.
	SourceFolders []string
	// Exclude lists base names skipped during scans, case-insensitive.
	Exclude []string

	// Project-wide attribute lists, chained into by configurations.
	Defines        []string
	IncludeFolders []string
	LibraryFolders []string
	Libraries      []string
	Frameworks     []string

	// DeployFolder receives a copy of the linked binary when set.
	DeployFolder string

	Configurations []*Configuration

	// Results of the last ResolveFiles call.
	SourceFiles []*SourceFile
	SourceDirs  []string
}

// AddConfiguration appends the configuration and binds it to the
// project so chained attribute lookups work.
func (p *Project) AddConfiguration(c *Configuration) {
	c.project = p
	p.Configurations = append(p.Configurations, c)
}

// ConfigurationNames returns the distinct configuration names in
// declaration order.
func (p *Project) ConfigurationNames() []string {
	var names []string
	seen := make(map[string]bool)
	for _, c := range p.Configurations {
		if !seen[c.Name] {
			seen[c.Name] = true
			names = append(names, c.Name)
		}
	}
	return names
}

// Platforms returns the distinct concrete platforms across all
// configurations in declaration order.
func (p *Project) Platforms() []enums.PlatformType {
	var platforms []enums.PlatformType
	seen := make(map[enums.PlatformType]bool)
	for _, c := range p.Configurations {
		if !seen[c.Platform] {
			seen[c.Platform] = true
			platforms = append(platforms, c.Platform)
		}
	}
	return platforms
}

// caseInsensitiveLess orders strings without regard to case, breaking
// ties with a byte comparison so the order is total.
var projectCollator = collate.New(language.Und, collate.IgnoreCase)

func caseInsensitiveLess(a, b string) bool {
	if r := projectCollator.CompareString(a, b); r != 0 {
		return r < 0
	}
	return a < b
}

func (p *Project) excluded(baseName string) bool {
	for _, item := range p.Exclude {
		if strings.EqualFold(item, baseName) {
			return true
		}
	}
	return false
}

func pruned(baseName string) bool {
	lower := strings.ToLower(baseName)
	if prunedDirectories[lower] {
		return true
	}
	for _, suffix := range prunedSuffixes {
		if strings.HasSuffix(lower, suffix) {
			return true
		}
	}
	return false
}

// scanDirectory collects acceptable files under directory, which is
// relative to the working directory ("." for the root itself).
func (p *Project) scanDirectory(directory string, recurse bool, acceptable map[enums.FileType]bool, files []*SourceFile, dirs []string) ([]*SourceFile, []string, error) {
	searchDir := p.WorkingDir
	if directory != "." {
		searchDir = filepath.Join(p.WorkingDir, filepath.FromSlash(directory))
	}

	entries, err := os.ReadDir(searchDir)
	if err != nil {
		if os.IsNotExist(err) {
			// Declared folders that do not exist are skipped, not fatal.
			return files, dirs, nil
		}
		return nil, nil, fmt.Errorf("scanning %s: %w", searchDir, err)
	}

	found := false
	for _, entry := range entries {
		baseName := entry.Name()
		if p.excluded(baseName) {
			continue
		}
		if entry.IsDir() {
			if recurse && !pruned(baseName) {
				files, dirs, err = p.scanDirectory(directory+"/"+baseName, recurse, acceptable, files, dirs)
				if err != nil {
					return nil, nil, err
				}
			}
			continue
		}
		fileType, ok := enums.FileTypeFromName(baseName)
		if !ok || !acceptable[fileType] {
			continue
		}
		relative := baseName
		if directory != "." {
			relative = directory + "/" + baseName
		}
		files = append(files, NewSourceFile(relative, searchDir, fileType))
		if !found {
			found = true
			dirs = append(dirs, directory)
		}
	}
	return files, dirs, nil
}

// ResolveFiles scans the source folders and replaces the project file
// list with the files whose type is in acceptable. The result is
// sorted case-insensitively by relative path, so repeated calls on an
// unchanged tree give identical output.
func (p *Project) ResolveFiles(acceptable []enums.FileType) error {
	accept := make(map[enums.FileType]bool, len(acceptable))
	for _, t := range acceptable {
		accept[t] = true
	}

	var files []*SourceFile
	var dirs []string
	var err error
	for _, folder := range p.SourceFolders {
		folder = strings.ReplaceAll(folder, "\\", "/")
		recurse := false
		if strings.HasSuffix(folder, "/*.*") {
			folder = strings.TrimSuffix(folder, "/*.*")
			recurse = true
		}
		if folder == "" {
			folder = "."
		}
		files, dirs, err = p.scanDirectory(folder, recurse, accept, files, dirs)
		if err != nil {
			return err
		}
	}

	sort.Slice(files, func(i, j int) bool {
		return caseInsensitiveLess(files[i].RelativePath, files[j].RelativePath)
	})
	p.SourceFiles = files
	p.SourceDirs = dirs
	return nil
}

// FilesOfType returns the resolved files matching any of the types, in
// list order.
func (p *Project) FilesOfType(types ...enums.FileType) []*SourceFile {
	var out []*SourceFile
	for _, f := range p.SourceFiles {
		for _, t := range types {
			if f.Type == t {
				out = append(out, f)
				break
			}
		}
	}
	return out
}
