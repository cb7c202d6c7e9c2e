package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/rshade/pagebar/internal/pagination"
)

// Output formats understood by the range command.
const (
	OutputTable  = "table"
	OutputJSON   = "json"
	OutputNDJSON = "ndjson"
	OutputYAML   = "yaml"
)

// Environment variables that override the config file.
const (
	EnvConfigPath = "PAGEBAR_CONFIG"
	EnvHome       = "PAGEBAR_HOME"
	EnvLogLevel   = "PAGEBAR_LOG_LEVEL"
	EnvLogFormat  = "PAGEBAR_LOG_FORMAT"
	EnvLogFile    = "PAGEBAR_LOG_FILE"
	EnvOutput     = "PAGEBAR_OUTPUT"
	EnvSiblings   = "PAGEBAR_SIBLINGS"
	EnvBoundaries = "PAGEBAR_BOUNDARIES"
)

// Configuration errors.
var (
	ErrInvalidOutputFormat = errors.New("output format must be one of table, json, ndjson, yaml")
	ErrInvalidLogFormat    = errors.New("log format must be json or console")
	ErrNegativeCount       = errors.New("siblings and boundaries must be >= 0")
)

// Config is the pagebar configuration file.
type Config struct {
	Output     OutputConfig     `yaml:"output"     json:"output"`
	Logging    LoggingConfig    `yaml:"logging"    json:"logging"`
	Pagination PaginationConfig `yaml:"pagination" json:"pagination"`
}

// OutputConfig holds output defaults.
type OutputConfig struct {
	DefaultFormat string `yaml:"default_format" json:"default_format"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level  string `yaml:"level"  json:"level"`
	Format string `yaml:"format" json:"format"`
	File   string `yaml:"file"   json:"file"`
}

// PaginationConfig holds the display defaults applied when flags are not given.
type PaginationConfig struct {
	Siblings   int `yaml:"siblings"    json:"siblings"`
	Boundaries int `yaml:"boundaries"  json:"boundaries"`
	PageSize   int `yaml:"page_size"   json:"page_size"`
}

// New returns a Config with built-in defaults.
func New() *Config {
	return &Config{
		Output: OutputConfig{
			DefaultFormat: OutputTable,
		},
		Logging: LoggingConfig{
			Level:  "warn",
			Format: "console",
		},
		Pagination: PaginationConfig{
			Siblings:   pagination.DefaultSiblings,
			Boundaries: pagination.DefaultBoundaries,
			PageSize:   pagination.DefaultPageSize,
		},
	}
}

// Load reads the config file at path on top of the defaults, then applies
// environment overrides. A missing file is not an error. An empty path
// resolves through $PAGEBAR_CONFIG and then the default location.
func Load(path string) (*Config, error) {
	cfg := New()

	if path == "" {
		resolved, err := DefaultConfigPath()
		if err != nil {
			return nil, err
		}
		path = resolved
	}

	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, os.ErrNotExist):
		// Defaults only.
	case err != nil:
		return nil, fmt.Errorf("reading config file %s: %w", path, err)
	default:
		if err = yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file %s: %w", path, err)
		}
	}

	if err = cfg.ApplyEnv(os.LookupEnv); err != nil {
		return nil, err
	}

	return cfg, nil
}

// LoadDotEnv loads a .env file from the working directory into the process
// environment, without overwriting variables that are already set. A missing
// file is ignored.
func LoadDotEnv(path string) error {
	if path == "" {
		path = ".env"
	}
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		return nil
	}
	if err := godotenv.Load(path); err != nil {
		return fmt.Errorf("loading %s: %w", path, err)
	}
	return nil
}

// ApplyEnv overrides fields from PAGEBAR_* variables found through lookupEnv.
func (c *Config) ApplyEnv(lookupEnv func(string) (string, bool)) error {
	if v, ok := lookupEnv(EnvLogLevel); ok && v != "" {
		c.Logging.Level = v
	}
	if v, ok := lookupEnv(EnvLogFormat); ok && v != "" {
		c.Logging.Format = v
	}
	if v, ok := lookupEnv(EnvLogFile); ok {
		c.Logging.File = v
	}
	if v, ok := lookupEnv(EnvOutput); ok && v != "" {
		c.Output.DefaultFormat = v
	}
	if v, ok := lookupEnv(EnvSiblings); ok && v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("parsing %s=%q: %w", EnvSiblings, v, err)
		}
		c.Pagination.Siblings = n
	}
	if v, ok := lookupEnv(EnvBoundaries); ok && v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("parsing %s=%q: %w", EnvBoundaries, v, err)
		}
		c.Pagination.Boundaries = n
	}
	return nil
}

// Validate checks value ranges and enumerations.
func (c *Config) Validate() error {
	if !IsValidOutputFormat(c.Output.DefaultFormat) {
		return fmt.Errorf("%w: got %q", ErrInvalidOutputFormat, c.Output.DefaultFormat)
	}
	switch c.Logging.Format {
	case "json", "console":
	default:
		return fmt.Errorf("%w: got %q", ErrInvalidLogFormat, c.Logging.Format)
	}
	if c.Pagination.Siblings < 0 || c.Pagination.Boundaries < 0 {
		return fmt.Errorf("%w: siblings=%d boundaries=%d",
			ErrNegativeCount, c.Pagination.Siblings, c.Pagination.Boundaries)
	}
	return nil
}

// IsValidOutputFormat reports whether format is a supported output format.
func IsValidOutputFormat(format string) bool {
	switch format {
	case OutputTable, OutputJSON, OutputNDJSON, OutputYAML:
		return true
	default:
		return false
	}
}

// Save writes c as YAML to path, creating the parent directory.
func (c *Config) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}

	if err = os.WriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("writing config file %s: %w", path, err)
	}
	return nil
}
