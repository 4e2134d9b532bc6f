package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/greatbody/charsetdetect/detector"
)

// Locale registers a locale with the detector.
type Locale struct {
	Name       string   `json:"name" yaml:"name"`
	Encodings  []string `json:"encodings" yaml:"encodings"`
	Diacritics string   `json:"diacritics" yaml:"diacritics"`
}

// Config holds the CLI settings. An empty Locale means the system locale.
type Config struct {
	DefaultEncoding   string   `json:"default_encoding" yaml:"default_encoding"`
	Locale            string   `json:"locale" yaml:"locale"`
	AllowedExtensions []string `json:"allowed_extensions" yaml:"allowed_extensions"`
	MaxFileSize       int64    `json:"max_file_size" yaml:"max_file_size"`
	Locales           []Locale `json:"locales" yaml:"locales"`
}

// LoadConfig reads a JSON or YAML file, chosen by extension, on top of the
// defaults.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, cfg)
	default:
		err = json.Unmarshal(data, cfg)
	}
	if err != nil {
		return nil, errors.Wrapf(err, "parse %s", path)
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrapf(err, "invalid config %s", path)
	}
	return cfg, nil
}

func DefaultConfig() *Config {
	return &Config{
		DefaultEncoding:   "UTF-8",
		AllowedExtensions: []string{".txt", ".csv", ".log", ".ini", ".conf", ".properties", ".srt", ".xml", ".html"},
	}
}

// Validate checks that every encoding name resolves and that each locale
// carries a non-empty candidate list and diacritic set.
func (c *Config) Validate() error {
	if _, err := detector.Lookup(c.DefaultEncoding); err != nil {
		return errors.Wrap(err, "default_encoding")
	}
	for i, l := range c.Locales {
		if l.Name == "" {
			return errors.Errorf("locales[%d]: missing name", i)
		}
		if len(l.Encodings) == 0 {
			return errors.Errorf("locale %s: no encodings", l.Name)
		}
		if l.Diacritics == "" {
			return errors.Errorf("locale %s: no diacritics", l.Name)
		}
		for _, enc := range l.Encodings {
			if _, err := detector.Lookup(enc); err != nil {
				return errors.Wrapf(err, "locale %s", l.Name)
			}
		}
	}
	return nil
}

// NewDetector builds a detector with the configured default encoding and
// every configured locale registered. Later entries overwrite earlier ones.
func (c *Config) NewDetector() *detector.Detector {
	d := detector.New(c.DefaultEncoding)
	c.Apply(d)
	return d
}

// Apply registers the configured locales with d.
func (c *Config) Apply(d *detector.Detector) {
	for _, l := range c.Locales {
		d.AddCandidatesForLocale(l.Name, l.Encodings)
		d.AddDiacriticsForLocale(l.Name, l.Diacritics)
	}
}
