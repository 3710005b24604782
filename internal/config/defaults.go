package config

import (
	"path/filepath"

	"github.com/chengwei920412/makeprojects/internal/hostenv"
	"github.com/chengwei920412/makeprojects/pkg/enums"
)

// ApplyDefaults fills unset fields from the working directory and the
// host machine.
func ApplyDefaults(doc *Document, env hostenv.Env, workingDir string) {
	if doc.Name == "" {
		doc.Name = filepath.Base(workingDir)
	}
	if doc.Kind == "" {
		doc.Kind = "tool"
	}
	if doc.Platform == "" {
		doc.Platform = enums.DefaultPlatform(hostAdapter(env)).String()
	}
	if len(doc.SourceFolders) == 0 {
		doc.SourceFolders = []string{"source/*.*"}
	}
	if doc.Perforce == nil {
		enabled := true
		doc.Perforce = &enabled
	}
}

// hostAdapter narrows hostenv.Env to the enums.Host interface while
// tolerating a nil environment.
func hostAdapter(env hostenv.Env) enums.Host {
	if env == nil {
		return nil
	}
	return env
}
