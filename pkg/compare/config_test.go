package compare

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/matryer/is"
)

func writeConfig(t *testing.T, contents string) string {
	path := filepath.Join(t.TempDir(), "scenarios.yaml")
	if err := os.WriteFile(path, []byte(contents), 0o600); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadConfig(t *testing.T) {
	is := is.New(t)
	t.Setenv("POOL_FEE", "0.05")
	path := writeConfig(t, `
fee: ${POOL_FEE}
verbose: true
scenarios:
  - name: three
    balances: [100, 200, 300]
    amount: 20
    index: 2
`)
	cfg, err := LoadConfig(path)
	is.NoErr(err)
	is.Equal(cfg.Fee, 0.05)
	is.True(cfg.Verbose)
	is.True(!cfg.Stable)
	is.Equal(len(cfg.Scenarios), 1)
	is.Equal(cfg.Scenarios[0].Balances, []float64{100, 200, 300})
	is.Equal(cfg.Scenarios[0].Index, 2)
	// defaults survive
	is.Equal(cfg.LongWindow, 6)
	is.Equal(cfg.Reference.Fees, []float64{0.1, 0.001})
}

func TestLoadConfigMissingFile(t *testing.T) {
	is := is.New(t)
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yaml"))
	is.NoErr(err)
	is.Equal(cfg.Fee, 0.1)
	is.Equal(len(cfg.Scenarios), 1)
}

func TestLoadConfigInvalid(t *testing.T) {
	is := is.New(t)
	cases := map[string]string{
		"fee must be positive": `
fee: 0
scenarios:
  - {name: a, balances: [1, 1]}
`,
		"at least one scenario": `fee: 0.1`,
		"balances must not be empty": `
scenarios:
  - {name: a}
`,
		"out of range": `
scenarios:
  - {name: a, balances: [1, 1], index: 2}
`,
		"schedule.base": `
schedule: {base: 0}
scenarios:
  - {name: a, balances: [1, 1]}
`,
		"parsing config": `fee: [`,
	}
	for want, contents := range cases {
		_, err := LoadConfig(writeConfig(t, contents))
		is.True(err != nil)
		is.True(strings.Contains(err.Error(), want))
	}
}

func TestFeeFor(t *testing.T) {
	is := is.New(t)
	path := writeConfig(t, `
fee: 0.03
short_window: 1
long_window: 4
schedule:
  base: 0.03
  amplitude: 0.005
  midpoint: 0.9
  curvature: 6
  min_revenue_share: 0.75
scenarios:
  - {name: flat, balances: [1000, 1000], amount: 10}
  - {name: busy, balances: [1000, 1000], amount: 10, volumes: [10, 10, 10, 40]}
`)
	cfg, err := LoadConfig(path)
	is.NoErr(err)
	is.Equal(cfg.FeeFor(cfg.Scenarios[0]), 0.03)
	busy := cfg.FeeFor(cfg.Scenarios[1])
	is.Equal(busy, cfg.Schedule.TotalFee(40/17.5))
	is.True(busy > 0.03)
}
