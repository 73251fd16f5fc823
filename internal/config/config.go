package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v3"
)

// FileName is the config file looked up at the project root.
const FileName = "cfdilens.yaml"

// EnvPrefix prefixes every environment override, e.g. CFDILENS_SOURCE_FILE_NAME.
// Leaf keys are derived from field names with split_words, never from a bare
// tag, so unprefixed variables like FORMAT are not read.
const EnvPrefix = "CFDILENS"

// Config represents the top-level cfdilens.yaml configuration.
type Config struct {
	Source  SourceConfig  `yaml:"source" envconfig:"SOURCE"`
	Report  ReportConfig  `yaml:"report" envconfig:"REPORT"`
	Export  ExportConfig  `yaml:"export" envconfig:"EXPORT"`
	Logging LoggingConfig `yaml:"logging" envconfig:"LOGGING"`
}

// SourceConfig locates the dataset, relative to the project root.
type SourceConfig struct {
	DataDir  string `yaml:"data_dir" split_words:"true" validate:"required"`
	FileName string `yaml:"file_name" split_words:"true" validate:"required"`
}

// ReportConfig sizes the ranked and tabular report sections.
type ReportConfig struct {
	TopSmall     int `yaml:"top_small" split_words:"true" validate:"min=1"`
	TopLarge     int `yaml:"top_large" split_words:"true" validate:"min=1"`
	ExplorerRows int `yaml:"explorer_rows" split_words:"true" validate:"min=0"`
}

// ExportConfig controls the export command.
type ExportConfig struct {
	Dir    string `yaml:"dir" split_words:"true"`
	Format string `yaml:"format" split_words:"true" validate:"oneof=csv xlsx"`
	BOM    bool   `yaml:"bom" split_words:"true"`
}

// LoggingConfig controls the stderr logger.
type LoggingConfig struct {
	Level  string `yaml:"level" split_words:"true" validate:"oneof=debug info warn error"`
	Format string `yaml:"format" split_words:"true" validate:"oneof=console json"`
}

var validate = validator.New()

// Load reads a cfdilens.yaml file from disk, applies environment overrides
// and validates the result. Keys missing from the file keep their defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	return finish(cfg)
}

// LoadOrDefault is Load, except that a missing file yields the defaults.
func LoadOrDefault(path string) (*Config, error) {
	cfg, err := Load(path)
	if errors.Is(err, fs.ErrNotExist) {
		return finish(Default())
	}
	return cfg, err
}

func finish(cfg *Config) (*Config, error) {
	if err := envconfig.Process(EnvPrefix, cfg); err != nil {
		return nil, fmt.Errorf("reading environment: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks field constraints.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}

// Save writes a Config to a YAML file.
func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}

// Default returns a Config with the dashboard's defaults.
func Default() *Config {
	return &Config{
		Source: SourceConfig{
			DataDir:  "Data",
			FileName: "data_gold_main.csv",
		},
		Report: ReportConfig{
			TopSmall:     5,
			TopLarge:     10,
			ExplorerRows: 20,
		},
		Export: ExportConfig{
			Format: "csv",
		},
		Logging: LoggingConfig{
			Level:  "warn",
			Format: "console",
		},
	}
}
