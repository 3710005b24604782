package config

import (
	"fmt"

	"github.com/chengwei920412/makeprojects/internal/hostenv"
	"github.com/chengwei920412/makeprojects/pkg/enums"
)

// TargetIDEs resolves the declared target names, deduplicated in
// declaration order. An unknown target name is fatal. An empty list
// falls back to the host's default IDE.
func (d *Document) TargetIDEs(env hostenv.Env) ([]enums.IDEType, error) {
	if len(d.Targets) == 0 {
		return []enums.IDEType{enums.DefaultIDE(hostAdapter(env))}, nil
	}
	var ides []enums.IDEType
	seen := make(map[enums.IDEType]bool)
	for _, name := range d.Targets {
		ide, ok := enums.ParseIDE(name, hostAdapter(env))
		if !ok {
			return nil, fmt.Errorf("%w: unknown target %q", ErrInvalid, name)
		}
		if !seen[ide] {
			seen[ide] = true
			ides = append(ides, ide)
		}
	}
	return ides, nil
}
