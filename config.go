package riskfolio

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/creasty/defaults"
	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// Config holds the analysis parameters, as read from a YAML file.
//
// Zero values are replaced by the default tags when loading.
type Config struct {
	// ConfidenceLevel is the user selected level for VaR and ES, 95 and 99 are always reported.
	ConfidenceLevel float64 `yaml:"confidence_level" default:"0.95" validate:"gt=0,lt=1"`
	// Horizon is the VaR and ES time horizon in trading days.
	Horizon      int     `yaml:"horizon" default:"1" validate:"min=1"`
	RiskFreeRate float64 `yaml:"risk_free_rate" default:"0.02" validate:"gte=0,lt=1"`
	BinCount     int     `yaml:"bin_count" default:"25" validate:"min=1,max=1000"`
	// Window is the number of trading days of the return series.
	Window int `yaml:"window" default:"252" validate:"min=2"`
	// PortfolioValue overrides the latest value of the series when positive.
	PortfolioValue float64 `yaml:"portfolio_value" validate:"gte=0"`
	Currency       string  `yaml:"currency" default:"PLN" validate:"len=3,uppercase"`

	Source struct {
		// File is a JSONL file of return samples.
		File string `yaml:"file"`
		// Values is a JSONL file of daily portfolio values.
		Values string `yaml:"values"`
		// URL of the historical portfolio endpoint of the dashboard backend.
		URL string `yaml:"url" validate:"omitempty,url"`
		// Path is the JSONPath to the samples in the URL response.
		Path string `yaml:"path" default:"$"`
		// Market is a JSONL file of market return samples, used for beta.
		Market string `yaml:"market"`
		// Seed of the synthetic generators.
		Seed uint64 `yaml:"seed" default:"1"`
	} `yaml:"source"`
}

var validate = validator.New()

// DefaultConfig returns a configuration with all default values.
func DefaultConfig() *Config {
	c := new(Config)
	if err := defaults.Set(c); err != nil {
		// default tags are static, they cannot fail at runtime.
		panic(err)
	}
	return c
}

// LoadConfig reads and validates a YAML configuration file.
//
// A missing file is not an error, the default configuration is returned instead.
func LoadConfig(path string) (*Config, error) {
	c := new(Config)
	b, err := os.ReadFile(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
	case err != nil:
		return nil, fmt.Errorf("read config: %w", err)
	default:
		if err := yaml.Unmarshal(b, c); err != nil {
			return nil, fmt.Errorf("parse config %q: %w", path, err)
		}
	}
	if err := defaults.Set(c); err != nil {
		return nil, fmt.Errorf("config defaults: %w", err)
	}
	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("validate config %q: %w", path, err)
	}
	return c, nil
}

// Validate checks the configuration values.
func (c *Config) Validate() error {
	err := validate.Struct(c)
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}
	errs := make([]error, 0, len(verrs))
	for _, fe := range verrs {
		errs = append(errs, fmt.Errorf("%s %w", fe.Namespace(), fieldError(fe)))
	}
	return errors.Join(errs...)
}

// fieldError turns a validation failure into a readable message.
func fieldError(fe validator.FieldError) error {
	switch fe.Tag() {
	case "gt":
		return fmt.Errorf("must be greater than %s, got %v", fe.Param(), fe.Value())
	case "gte":
		return fmt.Errorf("must be greater than or equal to %s, got %v", fe.Param(), fe.Value())
	case "lt":
		return fmt.Errorf("must be less than %s, got %v", fe.Param(), fe.Value())
	case "min":
		return fmt.Errorf("must be at least %s, got %v", fe.Param(), fe.Value())
	case "max":
		return fmt.Errorf("must be at most %s, got %v", fe.Param(), fe.Value())
	case "len":
		return fmt.Errorf("must be %s characters long, got %q", fe.Param(), fe.Value())
	default:
		return fmt.Errorf("failed validation %q with %v", fe.Tag(), fe.Value())
	}
}

// Options returns the analysis options of the configuration.
func (c *Config) Options() Options {
	return Options{
		ConfidenceLevel: c.ConfidenceLevel,
		Horizon:         c.Horizon,
		RiskFreeRate:    c.RiskFreeRate,
		BinCount:        c.BinCount,
		PortfolioValue:  c.PortfolioValue,
		Currency:        c.Currency,
	}
}
