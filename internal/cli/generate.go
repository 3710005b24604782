package cli

import (
	"errors"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/chengwei920412/makeprojects/internal/config"
	"github.com/chengwei920412/makeprojects/internal/generators"
	"github.com/chengwei920412/makeprojects/internal/hostenv"
	"github.com/chengwei920412/makeprojects/internal/ui"
)

// Exit codes reported to the calling shell.
const (
	exitOK          = 0
	exitPartial     = 1
	exitInput       = 2
	exitUnsupported = 10
)

var (
	flagVerbose     bool
	flagFile        string
	flagName        string
	flagKind        string
	flagPlatform    string
	flagConfigs     []string
	flagStopOnError bool

	flagDebug    bool
	flagInternal bool
	flagRelease  bool
	flagLib      bool
	flagApp      bool
	flagTool     bool
)

func runGenerate(cmd *cobra.Command, args []string) error {
	cmd.SilenceUsage = true
	setupLogging()

	cwd, err := os.Getwd()
	if err != nil {
		return &exitError{exitInput, err}
	}
	env := hostenv.NewSystem()

	doc, err := loadDocument(cwd)
	if err != nil {
		return &exitError{exitInput, err}
	}
	applyOverrides(doc, args)
	config.ApplyDefaults(doc, env, cwd)

	ides, err := doc.TargetIDEs(env)
	if err != nil {
		return &exitError{exitInput, err}
	}

	console := ui.NewConsole(cmd.OutOrStdout())
	summary := ui.Summary{}

	for _, ide := range ides {
		summary.Attempted++

		solution, err := doc.Solution(env, cwd, ide)
		if err != nil {
			console.Failed(ide.String(), err)
			summary.Failed++
			if flagStopOnError {
				break
			}
			continue
		}
		solution.Verbose = flagVerbose

		results, err := generators.Generate(solution, env)
		switch {
		case errors.Is(err, generators.ErrUnsupported):
			console.Skipped(ide.String(), err)
			summary.Skipped++
		case err != nil:
			console.Failed(ide.String(), err)
			summary.Failed++
		default:
			for _, result := range results {
				switch {
				case result.ConvertedNative:
					console.Converted(result.Path)
					summary.Written++
				case result.Written:
					console.Wrote(result.Path)
					summary.Written++
				default:
					console.UpToDate(result.Path)
					summary.UpToDate++
				}
			}
		}
		if flagStopOnError && summary.Failed > 0 {
			break
		}
	}
	summary.Print(console)

	switch {
	case summary.Failed > 0:
		return &exitError{exitPartial, errors.New("some targets failed")}
	case summary.Skipped > 0 && summary.Skipped == summary.Attempted:
		return &exitError{exitUnsupported, errors.New("no requested target supports the platform")}
	case summary.Skipped > 0:
		return &exitError{exitPartial, errors.New("some targets were skipped as unsupported")}
	}
	return nil
}

func setupLogging() {
	level := slog.LevelWarn
	if flagVerbose {
		level = slog.LevelInfo
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr,
		&slog.HandlerOptions{Level: level})))
}

// loadDocument reads the description file, or starts from an empty
// document when none exists so the command line alone can drive a
// generation.
func loadDocument(cwd string) (*config.Document, error) {
	path, ok := config.Find(cwd, flagFile)
	if !ok {
		return &config.Document{}, nil
	}
	return config.Load(path)
}

// applyOverrides lets command line flags win over the description.
func applyOverrides(doc *config.Document, targets []string) {
	foldShorthand()
	if flagName != "" {
		doc.Name = flagName
	}
	if flagKind != "" {
		doc.Kind = flagKind
	}
	if flagPlatform != "" {
		doc.Platform = flagPlatform
	}
	if len(targets) != 0 {
		doc.Targets = targets
	}
	if len(flagConfigs) != 0 {
		sections := make([]config.ConfigSection, 0, len(flagConfigs))
		for _, name := range flagConfigs {
			sections = append(sections, config.ConfigSection{Name: name})
		}
		doc.Configurations = sections
	}
}

// foldShorthand rewrites the boolean shorthand flags into the general
// --kind and --config values before they are applied.
func foldShorthand() {
	switch {
	case flagLib:
		flagKind = "library"
	case flagApp:
		flagKind = "app"
	case flagTool:
		flagKind = "tool"
	}
	for _, pick := range []struct {
		set  bool
		name string
	}{
		{flagDebug, "Debug"},
		{flagInternal, "Internal"},
		{flagRelease, "Release"},
	} {
		if pick.set {
			flagConfigs = append(flagConfigs, pick.name)
		}
	}
}
