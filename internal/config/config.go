package config

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"

	"BookingAdvisor/internal/strategy"
)

// Config holds all application configuration.
type Config struct {
	Scoring ScoringConfig `yaml:"scoring"`
	Log     struct {
		Level string `yaml:"level"`
		File  string `yaml:"file"`
	} `yaml:"log"`
	Output struct {
		Format  string `yaml:"format"`   // table or json
		MaxRows int    `yaml:"max_rows"` // 0 shows every day
	} `yaml:"output"`
}

// ScoringConfig mirrors strategy.Params.
type ScoringConfig struct {
	PriceWeight            float64 `yaml:"price_weight"`
	TrendWeight            float64 `yaml:"trend_weight"`
	RiskWeight             float64 `yaml:"risk_weight"`
	TimePenalty            float64 `yaml:"time_penalty"`
	ThresholdStdMultiplier float64 `yaml:"threshold_std_multiplier"`
	EarlyDays              int     `yaml:"early_days"`
	MaxTrendWindow         int     `yaml:"max_trend_window"`
}

// Params converts the scoring section into strategy parameters.
func (s ScoringConfig) Params() strategy.Params {
	return strategy.Params{
		PriceWeight:            s.PriceWeight,
		TrendWeight:            s.TrendWeight,
		RiskWeight:             s.RiskWeight,
		TimePenalty:            s.TimePenalty,
		ThresholdStdMultiplier: s.ThresholdStdMultiplier,
		EarlyDays:              s.EarlyDays,
		MaxTrendWindow:         s.MaxTrendWindow,
	}
}

// Default returns the configuration used when no file is present.
func Default() *Config {
	p := strategy.DefaultParams()
	cfg := &Config{
		Scoring: ScoringConfig{
			PriceWeight:            p.PriceWeight,
			TrendWeight:            p.TrendWeight,
			RiskWeight:             p.RiskWeight,
			TimePenalty:            p.TimePenalty,
			ThresholdStdMultiplier: p.ThresholdStdMultiplier,
			EarlyDays:              p.EarlyDays,
			MaxTrendWindow:         p.MaxTrendWindow,
		},
	}
	cfg.Log.Level = "info"
	cfg.Output.Format = "table"
	return cfg
}

// Load reads config from a YAML file over the defaults, then applies
// environment variable overrides. A missing file is not an error.
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("read config: %w", err)
	}
	if len(data) > 0 {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	}

	if v := os.Getenv("LOG_LEVEL"); v != "" {
		cfg.Log.Level = v
	}
	if v := os.Getenv("LOG_FILE"); v != "" {
		cfg.Log.File = v
	}
	if v := os.Getenv("OUTPUT_FORMAT"); v != "" {
		cfg.Output.Format = v
	}

	return cfg, nil
}

// Validate checks that all fields hold usable values.
func (c *Config) Validate() error {
	if err := c.Scoring.Params().Validate(); err != nil {
		return fmt.Errorf("scoring: %w", err)
	}
	if _, err := logrus.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("log.level: %w", err)
	}
	switch c.Output.Format {
	case "table", "json":
	default:
		return fmt.Errorf("output.format must be table or json, got %q", c.Output.Format)
	}
	if c.Output.MaxRows < 0 {
		return fmt.Errorf("output.max_rows must not be negative")
	}
	return nil
}
