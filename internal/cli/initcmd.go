package cli

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"

	"github.com/chengwei920412/makeprojects/internal/config"
)

var (
	initInteractive bool
	initForce       bool
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a starter projects.yaml",
	Long: `init writes a commented projects.yaml into the current directory.
With --interactive a short wizard asks for the project name, kind,
platform and targets instead of using the defaults.`,
	Args: cobra.NoArgs,
	RunE: runInit,
}

func init() {
	initCmd.Flags().BoolVarP(&initInteractive, "interactive", "i", false, "ask for the project settings")
	initCmd.Flags().BoolVar(&initForce, "force", false, "overwrite an existing description")
}

func runInit(cmd *cobra.Command, args []string) error {
	cmd.SilenceUsage = true

	cwd, err := os.Getwd()
	if err != nil {
		return &exitError{exitInput, err}
	}
	path := filepath.Join(cwd, config.DefaultFileName)
	if _, err := os.Stat(path); err == nil && !initForce {
		return &exitError{exitInput,
			fmt.Errorf("%s already exists, use --force to overwrite", config.DefaultFileName)}
	}

	content := config.Starter(filepath.Base(cwd))
	if initInteractive {
		content, err = runInitWizard(filepath.Base(cwd))
		if err != nil {
			if errors.Is(err, huh.ErrUserAborted) {
				return &exitError{exitInput, errors.New("cancelled")}
			}
			return &exitError{exitInput, err}
		}
	}

	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return &exitError{exitInput, err}
	}
	fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", path)
	return nil
}

// runInitWizard asks for the description settings and renders them as
// a YAML document.
func runInitWizard(defaultName string) (string, error) {
	name := defaultName
	kind := "tool"
	platform := "windows"
	targets := []string{"vs2008"}

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Project name").
				Value(&name),
			huh.NewSelect[string]().
				Title("Project kind").
				Options(
					huh.NewOption("Command line tool", "tool"),
					huh.NewOption("Windowed application", "app"),
					huh.NewOption("Static library", "library"),
					huh.NewOption("Shared library", "sharedlibrary"),
				).
				Value(&kind),
			huh.NewSelect[string]().
				Title("Platform").
				Options(
					huh.NewOption("Windows (32 and 64 bit)", "windows"),
					huh.NewOption("Windows 32 bit only", "win32"),
					huh.NewOption("MS-DOS (DOS4GW and X32)", "msdos"),
					huh.NewOption("macOS", "macosx"),
					huh.NewOption("Mac OS Carbon", "maccarbon"),
					huh.NewOption("Linux", "linux"),
				).
				Value(&platform),
			huh.NewMultiSelect[string]().
				Title("Build systems").
				Options(
					huh.NewOption("Visual Studio 2003", "vs2003"),
					huh.NewOption("Visual Studio 2005", "vs2005"),
					huh.NewOption("Visual Studio 2008", "vs2008").Selected(true),
					huh.NewOption("Open Watcom wmake", "watcom"),
					huh.NewOption("CodeWarrior", "codewarrior"),
					huh.NewOption("CodeBlocks", "codeblocks"),
					huh.NewOption("GNU make", "make"),
				).
				Value(&targets),
		),
	)
	if err := form.Run(); err != nil {
		return "", err
	}
	return renderDescription(name, kind, platform, targets), nil
}

// renderDescription writes the wizard's answers in the starter file's
// layout.
func renderDescription(name, kind, platform string, targets []string) string {
	var b strings.Builder
	b.WriteString("# Project description for makeprojects.\n\n")
	fmt.Fprintf(&b, "name: %s\n", name)
	fmt.Fprintf(&b, "kind: %s\n", kind)
	fmt.Fprintf(&b, "platform: %s\n\n", platform)
	b.WriteString("targets:\n")
	for _, target := range targets {
		fmt.Fprintf(&b, "  - %s\n", target)
	}
	b.WriteString("\nsource_folders:\n")
	b.WriteString("  - source/*.*\n")
	return b.String()
}
