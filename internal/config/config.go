package config

import (
	"errors"
	"fmt"
	"os"
	"reflect"
	"regexp"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

// FileName is the config file at the root of a statements repo.
const FileName = "statements.yaml"

// Environment variables that override the file.
const (
	EnvLogLevel = "STATEMENTS_LOG_LEVEL"
	EnvOutput   = "STATEMENTS_OUTPUT"
)

// Config represents the top-level statements.yaml configuration.
type Config struct {
	Business  BusinessConfig  `yaml:"business"`
	Fiscal    FiscalConfig    `yaml:"fiscal"`
	Statement StatementConfig `yaml:"statement"`
	Logging   LoggingConfig   `yaml:"logging"`
	RunLog    bool            `yaml:"run_log"`
	Git       GitConfig       `yaml:"git"`
}

// BusinessConfig identifies the business entity.
type BusinessConfig struct {
	Name       string `yaml:"name" validate:"required"`
	EntityType string `yaml:"entity_type" validate:"required"`
}

// FiscalConfig defines the fiscal year boundaries.
type FiscalConfig struct {
	YearStart string `yaml:"year_start" validate:"required,monthday"` // "MM-DD" format, e.g. "01-01"
}

// StatementConfig controls derivation output.
type StatementConfig struct {
	// TieTolerance is the largest accepted gap between net cash and the
	// movement of the cash accounts.
	TieTolerance decimal.Decimal `yaml:"tie_tolerance" validate:"gte=0"`
	Output       string          `yaml:"output" validate:"oneof=json yaml"`
}

// LoggingConfig controls the command logger.
type LoggingConfig struct {
	Level  string `yaml:"level" validate:"oneof=debug info warn error"`
	Format string `yaml:"format" validate:"oneof=console json"`
}

// GitConfig controls git integration.
type GitConfig struct {
	AutoCommit  bool   `yaml:"auto_commit"`
	AuthorName  string `yaml:"author_name" validate:"required_if=AutoCommit true"`
	AuthorEmail string `yaml:"author_email" validate:"omitempty,email"`
}

var monthDayFormat = regexp.MustCompile(`^\d{2}-\d{2}$`)

// validMonthDay reports whether s is an "MM-DD" date that exists in every
// year. Feb 29 is rejected.
func validMonthDay(s string) bool {
	if !monthDayFormat.MatchString(s) || s == "02-29" {
		return false
	}
	_, err := time.Parse("01-02", s)
	return err == nil
}

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterCustomTypeFunc(func(field reflect.Value) interface{} {
		if d, ok := field.Interface().(decimal.Decimal); ok {
			return d.InexactFloat64()
		}
		return nil
	}, decimal.Decimal{})
	_ = v.RegisterValidation("monthday", func(fl validator.FieldLevel) bool {
		return validMonthDay(fl.Field().String())
	})
	return v
}

// Validate checks cfg against its field constraints.
func (c *Config) Validate() error {
	if err := newValidator().Struct(c); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			return fmt.Errorf("invalid config: %s fails %q", verrs[0].Namespace(), verrs[0].Tag())
		}
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}

// ApplyEnv overrides cfg from the process environment, falling back to the
// dotenv file at envPath. A missing dotenv file is not an error.
func (c *Config) ApplyEnv(envPath string) error {
	env, err := godotenv.Read(envPath)
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("reading %s: %w", envPath, err)
		}
		env = map[string]string{}
	}

	lookup := func(key string) string {
		if v := os.Getenv(key); v != "" {
			return v
		}
		return env[key]
	}

	if v := lookup(EnvLogLevel); v != "" {
		c.Logging.Level = v
	}
	if v := lookup(EnvOutput); v != "" {
		c.Statement.Output = v
	}
	return nil
}

// Load reads a statements.yaml file from disk. Fields the file omits keep
// their defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	cfg := Default("", "")
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	return cfg, nil
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

// Default returns a Config with sensible defaults for a new project.
func Default(businessName, entityType string) *Config {
	return &Config{
		Business: BusinessConfig{
			Name:       businessName,
			EntityType: entityType,
		},
		Fiscal: FiscalConfig{
			YearStart: "01-01",
		},
		Statement: StatementConfig{
			TieTolerance: decimal.Zero,
			Output:       "json",
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
		RunLog: true,
		Git: GitConfig{
			AutoCommit:  false,
			AuthorName:  "Statements",
			AuthorEmail: "statements@cleared.dev",
		},
	}
}
