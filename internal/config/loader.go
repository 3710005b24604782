package config

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Load reads and parses a description file. Unknown keys are a parse
// error so typos never silently drop settings.
func Load(path string) (*Document, error) {
	file, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, path)
		}
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	defer file.Close()

	doc, err := Parse(file)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrParse, path, err)
	}
	slog.Debug("description loaded", "path", path, "targets", doc.Targets)
	return doc, nil
}

// Parse decodes a description document from a reader.
func Parse(r io.Reader) (*Document, error) {
	decoder := yaml.NewDecoder(r)
	decoder.KnownFields(true)

	var doc Document
	if err := decoder.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			// An empty file is an empty description, defaults cover it.
			return &Document{}, nil
		}
		return nil, err
	}
	return &doc, nil
}

// Find locates the description file for a directory: an explicit path
// is used as given, otherwise the default file name inside dir. ok is
// false when nothing exists, which switches the caller to pure command
// line mode.
func Find(dir, explicit string) (string, bool) {
	if explicit != "" {
		return explicit, true
	}
	path := filepath.Join(dir, DefaultFileName)
	if _, err := os.Stat(path); err != nil {
		return "", false
	}
	return path, true
}

// Starter is the commented description written by "makeprojects init".
func Starter(name string) string {
	var b strings.Builder
	b.WriteString("# Project description for makeprojects.\n")
	b.WriteString("# Run \"makeprojects\" in this directory to generate project files.\n\n")
	fmt.Fprintf(&b, "name: %s\n", name)
	b.WriteString("kind: tool\n")
	b.WriteString("platform: windows\n\n")
	b.WriteString("# Build systems to generate project files for.\n")
	b.WriteString("targets:\n")
	b.WriteString("  - vs2008\n")
	b.WriteString("  - watcom\n\n")
	b.WriteString("# Directories scanned for sources. A trailing /*.* scans recursively.\n")
	b.WriteString("source_folders:\n")
	b.WriteString("  - source/*.*\n\n")
	b.WriteString("# File names to skip while scanning.\n")
	b.WriteString("exclude: []\n\n")
	b.WriteString("# Preprocessor defines shared by every configuration.\n")
	b.WriteString("defines: []\n\n")
	b.WriteString("# Configurations. Omit to use the platform defaults.\n")
	b.WriteString("#configurations:\n")
	b.WriteString("#  - Debug\n")
	b.WriteString("#  - Internal\n")
	b.WriteString("#  - Release\n\n")
	b.WriteString("# Check out generated files with p4 before rewriting them.\n")
	b.WriteString("perforce: true\n")
	return b.String()
}
