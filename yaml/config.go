// Package yaml loads experience engine vocabulary from YAML files.
//
// A file only needs to name the settings it changes; everything else keeps
// the value from experience.DefaultConfig. Lists replace the default list
// rather than extending it.
package yaml

import (
	"errors"
	"io/fs"
	"os"

	"github.com/fwojciec/vitae"
	"github.com/fwojciec/vitae/experience"
	"gopkg.in/yaml.v3"
)

// file mirrors experience.Config. Nil fields are left at their defaults.
type file struct {
	Headers         []string `yaml:"headers"`
	PrimaryHeader   *string  `yaml:"primary_header"`
	NextSections    []string `yaml:"next_sections"`
	RoleKeywords    []string `yaml:"role_keywords"`
	SummaryKeywords []string `yaml:"summary_keywords"`

	Weights struct {
		PrimaryHeader      *int `yaml:"primary_header"`
		LongSection        *int `yaml:"long_section"`
		LongSectionLength  *int `yaml:"long_section_length"`
		RoleKeyword        *int `yaml:"role_keyword"`
		SummaryKeyword     *int `yaml:"summary_keyword"`
		ShortSection       *int `yaml:"short_section"`
		ShortSectionLength *int `yaml:"short_section_length"`
	} `yaml:"weights"`

	Lines struct {
		MaxLineLength    *int     `yaml:"max_line_length"`
		MaxCompanyLength *int     `yaml:"max_company_length"`
		MinFieldLength   *int     `yaml:"min_field_length"`
		Bullets          []string `yaml:"bullets"`
		NarrativeVerbs   []string `yaml:"narrative_verbs"`
		SummaryPhrases   []string `yaml:"summary_phrases"`
		RoleKeywords     []string `yaml:"role_keywords"`
	} `yaml:"lines"`

	FallbackRoleKeywords []string `yaml:"fallback_role_keywords"`
}

// LoadConfig reads the engine configuration at path.
// An empty path returns the default configuration.
func LoadConfig(path string) (experience.Config, error) {
	if path == "" {
		return experience.DefaultConfig(), nil
	}
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return experience.Config{}, vitae.Errorf(vitae.ENOTFOUND, "config file not found: %s", path)
	} else if err != nil {
		return experience.Config{}, err
	}
	return ParseConfig(data)
}

// ParseConfig decodes data over the default configuration and validates
// the result.
func ParseConfig(data []byte) (experience.Config, error) {
	var f file
	if err := yaml.Unmarshal(data, &f); err != nil {
		return experience.Config{}, vitae.Errorf(vitae.EINVALID, "invalid config: %v", err)
	}

	cfg := experience.DefaultConfig()
	f.apply(&cfg)
	if err := cfg.Validate(); err != nil {
		return experience.Config{}, err
	}
	return cfg, nil
}

func (f *file) apply(cfg *experience.Config) {
	setList(&cfg.Headers, f.Headers)
	setValue(&cfg.PrimaryHeader, f.PrimaryHeader)
	setList(&cfg.NextSections, f.NextSections)
	setList(&cfg.RoleKeywords, f.RoleKeywords)
	setList(&cfg.SummaryKeywords, f.SummaryKeywords)

	w := &cfg.Weights
	setValue(&w.PrimaryHeader, f.Weights.PrimaryHeader)
	setValue(&w.LongSection, f.Weights.LongSection)
	setValue(&w.LongSectionLength, f.Weights.LongSectionLength)
	setValue(&w.RoleKeyword, f.Weights.RoleKeyword)
	setValue(&w.SummaryKeyword, f.Weights.SummaryKeyword)
	setValue(&w.ShortSection, f.Weights.ShortSection)
	setValue(&w.ShortSectionLength, f.Weights.ShortSectionLength)

	l := &cfg.Lines
	setValue(&l.MaxLineLength, f.Lines.MaxLineLength)
	setValue(&l.MaxCompanyLength, f.Lines.MaxCompanyLength)
	setValue(&l.MinFieldLength, f.Lines.MinFieldLength)
	setList(&l.Bullets, f.Lines.Bullets)
	setList(&l.NarrativeVerbs, f.Lines.NarrativeVerbs)
	setList(&l.SummaryPhrases, f.Lines.SummaryPhrases)
	setList(&l.RoleKeywords, f.Lines.RoleKeywords)

	setList(&cfg.FallbackRoleKeywords, f.FallbackRoleKeywords)
}

func setValue[T any](dst *T, src *T) {
	if src != nil {
		*dst = *src
	}
}

// setList replaces dst when the file names the list, even as empty.
func setList(dst *[]string, src []string) {
	if src != nil {
		*dst = src
	}
}
