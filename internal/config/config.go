// Package config handles pipeline configuration.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/reprolab/sharescan/internal/country"
	"github.com/reprolab/sharescan/internal/extract"
	"github.com/reprolab/sharescan/internal/keyword"
)

// Config represents pipeline configuration stored in a YAML file.
type Config struct {
	PDFRoot  string `yaml:"pdf_root" json:"pdf_root"` // directory scanned for PDF documents
	Workbook string `yaml:"workbook" json:"workbook"` // path to the xlsx workbook

	MaxPagesIdentifier  int `yaml:"max_pages_identifier,omitempty" json:"max_pages_identifier"`
	MaxPagesAffiliation int `yaml:"max_pages_affiliation,omitempty" json:"max_pages_affiliation"`
	MaxPagesAccepted    int `yaml:"max_pages_accepted,omitempty" json:"max_pages_accepted"`
	Workers             int `yaml:"workers,omitempty" json:"workers"`

	// CountryAliases is overlaid onto the built-in alias table.
	CountryAliases map[string]string `yaml:"country_aliases,omitempty" json:"country_aliases,omitempty"`
	// SearchTerms replaces the built-in sharing-keyword patterns when set.
	SearchTerms []string `yaml:"search_terms,omitempty" json:"search_terms,omitempty"`

	NamesTable      string `yaml:"names_table,omitempty" json:"names_table,omitempty"`           // curated name->gender CSV
	NameFrequencies string `yaml:"name_frequencies,omitempty" json:"name_frequencies,omitempty"` // name,male,female counts CSV
	UseGenderize    bool   `yaml:"use_genderize,omitempty" json:"use_genderize"`

	CrossrefMailto string `yaml:"crossref_mailto,omitempty" json:"crossref_mailto,omitempty"`
	CachePath      string `yaml:"cache_path,omitempty" json:"cache_path,omitempty"` // extraction cache database
}

const (
	// ConfigDir is the directory name under XDG_CONFIG_HOME.
	ConfigDir = "sharescan"
	// ConfigFile is the config file name.
	ConfigFile = "config.yml"

	// DefaultWorkers bounds concurrent PDF extraction.
	DefaultWorkers = 4
)

// DefaultPath returns the default config file path. Respects
// XDG_CONFIG_HOME, defaults to ~/.config/sharescan/config.yml.
func DefaultPath() string {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		configHome = filepath.Join(home, ".config")
	}
	return filepath.Join(configHome, ConfigDir, ConfigFile)
}

// Default returns a config populated with the built-in defaults.
func Default() *Config {
	return &Config{
		MaxPagesIdentifier:  extract.DefaultMaxPages,
		MaxPagesAffiliation: extract.DefaultMaxPages,
		MaxPagesAccepted:    extract.DefaultMaxPagesAccepted,
		Workers:             DefaultWorkers,
	}
}

// Load reads configuration from path. An empty path means DefaultPath,
// and a missing file yields the defaults rather than an error.
func Load(path string) (*Config, error) {
	if path == "" {
		path = DefaultPath()
	}
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("reading config: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}

	cfg.PDFRoot = ExpandTilde(cfg.PDFRoot)
	cfg.Workbook = ExpandTilde(cfg.Workbook)
	cfg.NamesTable = ExpandTilde(cfg.NamesTable)
	cfg.NameFrequencies = ExpandTilde(cfg.NameFrequencies)
	cfg.CachePath = ExpandTilde(cfg.CachePath)

	if cfg.MaxPagesIdentifier <= 0 {
		cfg.MaxPagesIdentifier = extract.DefaultMaxPages
	}
	if cfg.MaxPagesAffiliation <= 0 {
		cfg.MaxPagesAffiliation = extract.DefaultMaxPages
	}
	if cfg.MaxPagesAccepted <= 0 {
		cfg.MaxPagesAccepted = extract.DefaultMaxPagesAccepted
	}
	if cfg.Workers <= 0 {
		cfg.Workers = DefaultWorkers
	}

	return cfg, nil
}

// Save writes the configuration to path, creating parent directories.
func (c *Config) Save(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}

// Aliases returns the built-in country alias table with any configured
// overrides overlaid.
func (c *Config) Aliases() map[string]string {
	if len(c.CountryAliases) == 0 {
		return country.DefaultAliases
	}
	merged := make(map[string]string, len(country.DefaultAliases)+len(c.CountryAliases))
	for k, v := range country.DefaultAliases {
		merged[k] = v
	}
	for k, v := range c.CountryAliases {
		merged[strings.ToLower(k)] = v
	}
	return merged
}

// Terms returns the sharing-keyword patterns: the configured list when
// set, otherwise the built-in one.
func (c *Config) Terms() ([]keyword.Term, error) {
	if len(c.SearchTerms) == 0 {
		return keyword.MustCompile(keyword.DefaultTerms), nil
	}
	terms, err := keyword.Compile(c.SearchTerms)
	if err != nil {
		return nil, fmt.Errorf("compiling search_terms: %w", err)
	}
	return terms, nil
}

// ExpandTilde expands a leading ~ to the user's home directory.
func ExpandTilde(path string) string {
	if path == "~" || strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return path
		}
		return filepath.Join(home, path[1:])
	}
	return path
}
