package compare

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/domino14/lsdlmsr/pkg/fees"
)

type Config struct {
	Fee     float64 `yaml:"fee"`
	Stable  bool    `yaml:"stable"`
	Verbose bool    `yaml:"verbose"`

	// Schedule, if set, prices scenarios that carry a volume history with
	// a dynamic fee instead of Fee.
	Schedule    *fees.Schedule `yaml:"schedule"`
	ShortWindow int            `yaml:"short_window"`
	LongWindow  int            `yaml:"long_window"`

	Reference Reference  `yaml:"reference"`
	Scenarios []Scenario `yaml:"scenarios"`
}

// Reference lists the fixed quantities printed before the scenarios run.
type Reference struct {
	Balances []float64      `yaml:"balances"`
	Fees     []float64      `yaml:"fees"`
	Sigmoid  *SigmoidParams `yaml:"sigmoid"`
}

type SigmoidParams struct {
	Amplitude float64 `yaml:"amplitude"`
	Midpoint  float64 `yaml:"midpoint"`
	Curvature float64 `yaml:"curvature"`
	Reference float64 `yaml:"reference"`
}

type Scenario struct {
	Name     string    `yaml:"name"`
	Balances []float64 `yaml:"balances"`
	Amount   float64   `yaml:"amount"`
	Index    int       `yaml:"index"`
	Volumes  []float64 `yaml:"volumes"`
}

var (
	errNoScenarios   = errors.New("at least one scenario is required")
	errEmptyBalances = errors.New("balances must not be empty")
)

// DefaultConfig reproduces the built-in demonstration: a 0.1 fee and a
// single 500/500 pool buying 250 of the second asset.
func DefaultConfig() *Config {
	cfg := &Config{}
	cfg.setDefaults()
	cfg.Scenarios = []Scenario{
		{Name: "half-pool", Balances: []float64{500, 500}, Amount: 250, Index: 1},
	}
	return cfg
}

// LoadConfig reads a YAML config, expanding environment variables in it.
// A missing file yields the defaults.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultConfig(), nil
		}
		return nil, fmt.Errorf("reading config file: %w", err)
	}
	cfg := &Config{}
	cfg.setDefaults()
	if err := yaml.Unmarshal([]byte(os.ExpandEnv(string(data))), cfg); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}
	return cfg, nil
}

func (c *Config) setDefaults() {
	c.Fee = 0.1
	c.ShortWindow = 1
	c.LongWindow = 6
	c.Reference = Reference{
		Balances: []float64{1000, 1000},
		Fees:     []float64{0.1, 0.001},
		Sigmoid:  &SigmoidParams{Amplitude: 0.01, Midpoint: 0, Curvature: 2, Reference: 0.000000001},
	}
}

func (c *Config) validate() error {
	if !(c.Fee > 0) {
		return fmt.Errorf("fee must be positive, got %v", c.Fee)
	}
	if c.Schedule != nil && !(c.Schedule.Base > 0) {
		return fmt.Errorf("schedule.base must be positive, got %v", c.Schedule.Base)
	}
	for _, f := range c.Reference.Fees {
		if !(f > 0) {
			return fmt.Errorf("reference fee must be positive, got %v", f)
		}
	}
	if len(c.Scenarios) == 0 {
		return errNoScenarios
	}
	for i, s := range c.Scenarios {
		if len(s.Balances) == 0 {
			return fmt.Errorf("scenario %d (%s): %w", i, s.Name, errEmptyBalances)
		}
		if s.Index < 0 || s.Index >= len(s.Balances) {
			return fmt.Errorf("scenario %d (%s): index %d out of range", i, s.Name, s.Index)
		}
	}
	return nil
}

// FeeFor returns the fee a scenario is priced with.
func (c *Config) FeeFor(s Scenario) float64 {
	if c.Schedule == nil || len(s.Volumes) == 0 {
		return c.Fee
	}
	_, fee := c.Schedule.FeeFor(s.Volumes, c.ShortWindow, c.LongWindow)
	return fee
}
