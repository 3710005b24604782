package generators

import (
	"bytes"
	"log/slog"
	"os"

	"github.com/chengwei920412/makeprojects/internal/hostenv"
	"github.com/chengwei920412/makeprojects/internal/model"
	"github.com/chengwei920412/makeprojects/internal/scm"
	"github.com/chengwei920412/makeprojects/internal/textio"
)

// writeOutput writes rendered lines honoring the solution's Perforce
// setting: a tracked file that is about to change is opened for edit
// first. Unchanged files are left alone entirely.
func writeOutput(env hostenv.Env, solution *model.Solution, path string, lines []string) (Result, error) {
	data := textio.Join(lines)
	if existing, err := os.ReadFile(path); err == nil && !bytes.Equal(existing, data) {
		scm.NewPerforce(env, solution.Perforce).Edit(path)
	}
	written, err := textio.WriteIfChanged(path, data)
	if err != nil {
		return Result{Path: path}, err
	}
	if solution.Verbose {
		if written {
			slog.Info("wrote project file", "path", path)
		} else {
			slog.Info("project file up to date", "path", path)
		}
	}
	return Result{Path: path, Written: written}, nil
}
