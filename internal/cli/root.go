// Package cli wires the cobra command tree.
package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/chengwei920412/makeprojects/pkg/version"
)

var rootCmd = &cobra.Command{
	Use:   "makeprojects [target ...]",
	Short: "Generate IDE and build tool project files",
	Long: `makeprojects reads a projects.yaml description, or synthesizes one
from the command line, and emits project files for classic build
systems: Visual Studio 2003 to 2008, Open Watcom wmake, Metrowerks
CodeWarrior, CodeBlocks and GNU make.

Targets name the build systems to generate for, e.g. "watcom",
"vs2008" or "codewarrior". Without targets the description file's
list is used, falling back to the host's default.`,
	Version: version.GetVersion(),
	Args:    cobra.ArbitraryArgs,
	RunE:    runGenerate,
}

// exitError carries the process exit code alongside the failure.
type exitError struct {
	code int
	err  error
}

func (e *exitError) Error() string { return e.err.Error() }

func (e *exitError) Unwrap() error { return e.err }

// Execute runs the command tree and returns the process exit code.
func Execute() int {
	if err := rootCmd.Execute(); err != nil {
		var coded *exitError
		if errors.As(err, &coded) {
			return coded.code
		}
		return exitInput
	}
	return exitOK
}

func init() {
	rootCmd.SetVersionTemplate(fmt.Sprintf("makeprojects %s\n", version.GetVersion()))

	flags := rootCmd.Flags()
	flags.BoolVarP(&flagVerbose, "verbose", "v", false, "log every emitted file")
	flags.StringVarP(&flagFile, "file", "f", "", "project description file (default "+`"projects.yaml")`)
	flags.StringVarP(&flagName, "name", "n", "", "project name (default: working directory name)")
	flags.StringVarP(&flagKind, "kind", "k", "", "project kind: tool, app, library, sharedlibrary")
	flags.StringVarP(&flagPlatform, "platform", "p", "", "target platform or family, e.g. win32, windows, msdos")
	flags.StringArrayVarP(&flagConfigs, "config", "c", nil, "configuration to generate, repeatable")
	flags.BoolVar(&flagStopOnError, "stop-on-error", false, "abort at the first failing target")
	flags.BoolVar(&flagDebug, "debug", false, "generate the Debug configuration")
	flags.BoolVar(&flagInternal, "internal", false, "generate the Internal configuration")
	flags.BoolVar(&flagRelease, "release", false, "generate the Release configuration")
	flags.BoolVar(&flagLib, "lib", false, "shorthand for --kind library")
	flags.BoolVar(&flagApp, "app", false, "shorthand for --kind app")
	flags.BoolVar(&flagTool, "tool", false, "shorthand for --kind tool")

	rootCmd.AddCommand(initCmd)
}
