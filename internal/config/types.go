package config

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// DefaultFileName is the description file looked for when none is
// named on the command line.
const DefaultFileName = "projects.yaml"

// Document is the parsed description file. Zero values mean "not
// stated" and are filled by ApplyDefaults.
type Document struct {
	// Name is the solution and project name. Defaults to the working
	// directory base name.
	Name string `yaml:"name"`
	// Kind is the project kind, e.g. "tool", "app", "library".
	Kind string `yaml:"kind"`
	// Platform is the target platform, possibly a family like
	// "windows" or "msdos".
	Platform string `yaml:"platform"`
	// Targets lists the IDEs or build systems to generate for.
	Targets []string `yaml:"targets"`

	// Configurations replaces the platform's default configuration
	// set when present.
	Configurations []ConfigSection `yaml:"configurations"`

	SourceFolders  []string `yaml:"source_folders"`
	Exclude        []string `yaml:"exclude"`
	Defines        []string `yaml:"defines"`
	IncludeFolders []string `yaml:"include_folders"`
	LibraryFolders []string `yaml:"library_folders"`
	Libraries      []string `yaml:"libraries"`
	Frameworks     []string `yaml:"frameworks"`

	// DeployFolder receives a copy of release binaries when set.
	DeployFolder string `yaml:"deploy_folder"`

	// Perforce controls checking out generated files before writing.
	// Defaults to on, matching workspaces that track generated output.
	Perforce *bool `yaml:"perforce"`
}

// ConfigSection is one configuration entry. It accepts either a bare
// name:
//
//	configurations: [Debug, Release]
//
// or a mapping with overrides:
//
//	configurations:
//	  - name: Release
//	    optimization: 4
type ConfigSection struct {
	Name            string   `yaml:"name"`
	Debug           *bool    `yaml:"debug"`
	Optimization    *int     `yaml:"optimization"`
	LinkTimeCodeGen bool     `yaml:"link_time_code_generation"`
	Defines         []string `yaml:"defines"`
	IncludeFolders  []string `yaml:"include_folders"`
	LibraryFolders  []string `yaml:"library_folders"`
	Libraries       []string `yaml:"libraries"`
	Frameworks      []string `yaml:"frameworks"`
	DeployFolder    string   `yaml:"deploy_folder"`
}

// UnmarshalYAML accepts the scalar shorthand for a configuration.
func (c *ConfigSection) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind == yaml.ScalarNode {
		return value.Decode(&c.Name)
	}
	type plain ConfigSection
	var p plain
	if err := value.Decode(&p); err != nil {
		return err
	}
	*c = ConfigSection(p)
	if c.Name == "" {
		return fmt.Errorf("line %d: configuration entry needs a name", value.Line)
	}
	return nil
}
