package config

import (
	"fmt"

	"github.com/chengwei920412/makeprojects/internal/hostenv"
	"github.com/chengwei920412/makeprojects/internal/model"
	"github.com/chengwei920412/makeprojects/internal/rules"
	"github.com/chengwei920412/makeprojects/pkg/enums"
)

// Solution builds the model for one target IDE. Platform families are
// expanded here, once: every configuration the generators see is bound
// to a concrete platform.
func (d *Document) Solution(env hostenv.Env, workingDir string, ide enums.IDEType) (*model.Solution, error) {
	projectType, ok := enums.ParseProjectType(d.Kind)
	if !ok {
		return nil, fmt.Errorf("%w: unknown project kind %q", ErrInvalid, d.Kind)
	}
	platform, ok := enums.ParsePlatform(d.Platform)
	if !ok {
		return nil, fmt.Errorf("%w: unknown platform %q", ErrInvalid, d.Platform)
	}

	solution := &model.Solution{
		Name:       d.Name,
		WorkingDir: workingDir,
		IDE:        ide,
		Perforce:   d.Perforce != nil && *d.Perforce,
	}

	project := &model.Project{
		Name:           d.Name,
		Type:           projectType,
		Platform:       platform,
		WorkingDir:     workingDir,
		SourceFolders:  append([]string(nil), d.SourceFolders...),
		Exclude:        append([]string(nil), d.Exclude...),
		Defines:        append([]string(nil), d.Defines...),
		IncludeFolders: append([]string(nil), d.IncludeFolders...),
		LibraryFolders: append([]string(nil), d.LibraryFolders...),
		Libraries:      append([]string(nil), d.Libraries...),
		Frameworks:     append([]string(nil), d.Frameworks...),
		DeployFolder:   d.DeployFolder,
	}

	templates, err := d.configTemplates(platform, ide)
	if err != nil {
		return nil, err
	}

	for _, concrete := range platform.Expanded() {
		for _, section := range templates {
			cfg := section.template.NewConfiguration(concrete)
			cfg.Defines = append(cfg.Defines, section.Defines...)
			cfg.IncludeFolders = append(cfg.IncludeFolders, section.IncludeFolders...)
			cfg.LibraryFolders = append(cfg.LibraryFolders, section.LibraryFolders...)
			cfg.Libraries = append(cfg.Libraries, section.Libraries...)
			cfg.Frameworks = append(cfg.Frameworks, section.Frameworks...)
			cfg.DeployFolder = section.DeployFolder
			project.AddConfiguration(cfg)
			rules.ApplyConfigurationDefaults(cfg, ide)
		}
	}

	solution.AddProject(project)
	return solution, nil
}

// boundSection is a configuration section with its resolved template.
type boundSection struct {
	ConfigSection
	template rules.ConfigTemplate
}

// configTemplates resolves the declared configurations, or the
// platform's default set when the description names none.
func (d *Document) configTemplates(platform enums.PlatformType, ide enums.IDEType) ([]boundSection, error) {
	if len(d.Configurations) == 0 {
		defaults := rules.DefaultConfigurations(platform, ide)
		sections := make([]boundSection, 0, len(defaults))
		for _, t := range defaults {
			sections = append(sections, boundSection{template: t})
		}
		return sections, nil
	}

	sections := make([]boundSection, 0, len(d.Configurations))
	for _, section := range d.Configurations {
		if section.Name == "" {
			return nil, fmt.Errorf("%w: configuration entry without a name", ErrInvalid)
		}
		template := templateFor(section, platform, ide)
		sections = append(sections, boundSection{ConfigSection: section, template: template})
	}
	return sections, nil
}

// templateFor starts from the stock template matching the section name
// so "Debug" behaves like the default Debug, then applies overrides.
func templateFor(section ConfigSection, platform enums.PlatformType, ide enums.IDEType) rules.ConfigTemplate {
	template := rules.ConfigTemplate{Name: section.Name}
	for _, t := range rules.DefaultConfigurations(platform, ide) {
		if t.Name == section.Name {
			template = t
			break
		}
	}
	if section.Debug != nil {
		template.Debug = *section.Debug
	}
	if section.Optimization != nil {
		template.Optimization = *section.Optimization
	}
	if section.LinkTimeCodeGen {
		template.LinkTimeCodeGen = true
	}
	return template
}
