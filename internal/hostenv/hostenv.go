// Package hostenv probes the machine the generator runs on: host
// operating system and which toolchains are installed. It is passed
// around as an interface so tests control the answers instead of
// depending on the build machine.
package hostenv

import (
	"os"
	"os/exec"
	"path/filepath"
	"runtime"

	"github.com/chengwei920412/makeprojects/pkg/enums"
)

// Env answers questions about the host machine.
type Env interface {
	// OS returns the runtime.GOOS value.
	OS() string
	// Installed reports whether the toolchain behind an IDE is present.
	Installed(enums.IDEType) bool
	// CodeWarriorIDE returns the path of the CodeWarrior IDE binary
	// used to convert XML project files to native format.
	CodeWarriorIDE() (string, bool)
	// LookPath resolves an executable on the search path.
	LookPath(name string) (string, bool)
}

// visualStudioEnvVars maps each Visual Studio release to the
// environment variable its installer sets.
var visualStudioEnvVars = map[enums.IDEType]string{
	enums.IDEVisualStudio2003: "VS71COMNTOOLS",
	enums.IDEVisualStudio2005: "VS80COMNTOOLS",
	enums.IDEVisualStudio2008: "VS90COMNTOOLS",
	enums.IDEVisualStudio2010: "VS100COMNTOOLS",
	enums.IDEVisualStudio2012: "VS110COMNTOOLS",
	enums.IDEVisualStudio2013: "VS120COMNTOOLS",
	enums.IDEVisualStudio2015: "VS140COMNTOOLS",
	enums.IDEVisualStudio2017: "VS150COMNTOOLS",
	enums.IDEVisualStudio2019: "VS160COMNTOOLS",
}

// System probes the real machine through environment variables and the
// executable search path.
type System struct{}

// NewSystem returns the host probe for the running machine.
func NewSystem() *System {
	return &System{}
}

// OS returns runtime.GOOS.
func (s *System) OS() string {
	return runtime.GOOS
}

// Installed checks the conventional installation markers: VS*COMNTOOLS
// for Visual Studio, WATCOM for Open Watcom, CWFolder for CodeWarrior
// and the search path for everything else.
func (s *System) Installed(ide enums.IDEType) bool {
	if envVar, ok := visualStudioEnvVars[ide]; ok {
		return os.Getenv(envVar) != ""
	}
	switch {
	case ide == enums.IDEWatcom:
		if os.Getenv("WATCOM") != "" {
			return true
		}
		_, found := s.LookPath("wmake")
		return found
	case ide.IsCodeWarrior():
		_, found := s.CodeWarriorIDE()
		return found
	case ide.IsXcode():
		_, found := s.LookPath("xcodebuild")
		return found
	case ide == enums.IDECodeBlocks:
		_, found := s.LookPath("codeblocks")
		return found
	case ide == enums.IDEMake || ide == enums.IDENMake || ide == enums.IDEBazel:
		_, found := s.LookPath(ide.String())
		return found
	}
	return false
}

// CodeWarriorIDE locates the IDE binary via the CWFolder environment
// variable the Metrowerks installer sets. Only meaningful on Windows.
func (s *System) CodeWarriorIDE() (string, bool) {
	folder := os.Getenv("CWFolder")
	if folder == "" || s.OS() != "windows" {
		return "", false
	}
	path := filepath.Join(folder, "Bin", "IDE.exe")
	if _, err := os.Stat(path); err != nil {
		return "", false
	}
	return path, true
}

// LookPath resolves an executable on the search path.
func (s *System) LookPath(name string) (string, bool) {
	path, err := exec.LookPath(name)
	if err != nil {
		return "", false
	}
	return path, true
}

// Fake is a scripted Env for tests.
type Fake struct {
	GOOS          string
	InstalledIDEs map[enums.IDEType]bool
	CodeWarrior   string
	Tools         map[string]string
}

func (f *Fake) OS() string {
	return f.GOOS
}

func (f *Fake) Installed(ide enums.IDEType) bool {
	return f.InstalledIDEs[ide]
}

func (f *Fake) CodeWarriorIDE() (string, bool) {
	return f.CodeWarrior, f.CodeWarrior != ""
}

func (f *Fake) LookPath(name string) (string, bool) {
	path, ok := f.Tools[name]
	return path, ok
}
