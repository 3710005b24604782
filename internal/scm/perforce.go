// Package scm opens generated files for edit in Perforce before they
// are rewritten. Everything degrades to a no-op when p4 is not on the
// path, so generation works the same outside a Perforce workspace.
package scm

import (
	"log/slog"
	"os/exec"

	"github.com/chengwei920412/makeprojects/internal/hostenv"
)

// Perforce wraps the p4 command line client.
type Perforce struct {
	env     hostenv.Env
	enabled bool
}

// NewPerforce returns a client that runs p4 only when enabled and the
// client is actually installed.
func NewPerforce(env hostenv.Env, enabled bool) *Perforce {
	return &Perforce{env: env, enabled: enabled}
}

// Edit opens path for edit. Failures are logged and swallowed; a file
// that is not under client control is normal, not an error.
func (p *Perforce) Edit(path string) {
	if !p.enabled {
		return
	}
	p4, ok := p.env.LookPath("p4")
	if !ok {
		slog.Debug("p4 not found, skipping checkout", "path", path)
		return
	}
	if out, err := exec.Command(p4, "edit", path).CombinedOutput(); err != nil {
		slog.Warn("p4 edit failed", "path", path, "output", string(out), "error", err)
	}
}
