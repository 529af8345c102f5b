package compare

import (
	"io"
	"math"

	"github.com/rs/zerolog"
)

// Reporter writes comparisons to a zerolog logger. The summary of every
// comparison goes out at info; balances and intermediate costs only when
// verbose.
type Reporter struct {
	log zerolog.Logger
}

func NewReporter(log zerolog.Logger, verbose bool) *Reporter {
	level := zerolog.InfoLevel
	if verbose {
		level = zerolog.DebugLevel
	}
	return &Reporter{log: log.Level(level)}
}

// NewConsoleReporter reports in human-readable form to w.
func NewConsoleReporter(w io.Writer, verbose bool) *Reporter {
	return NewReporter(zerolog.New(zerolog.ConsoleWriter{Out: w, NoColor: true}).With().Timestamp().Logger(), verbose)
}

func (r *Reporter) Report(c *Comparison) {
	r.log.Debug().Str("id", c.ID).Float64("fee", c.Fee).
		Floats64("balances_before", c.Before).
		Float64("cost_before", c.CostBefore).
		Msg("before")
	r.log.Debug().Str("id", c.ID).Float64("buy", c.Amount).Int("index", c.Index).
		Floats64("balances_after", c.After).
		Float64("cost_after", c.CostAfter).
		Msg("after")

	ev := r.log.Info()
	if c.Disagreement > 1e-9 {
		ev = r.log.Warn()
	}
	ev.Str("id", c.ID).Str("scenario", c.Scenario).
		Floats64("balances", c.Before).Float64("amount", c.Amount).Int("index", c.Index).
		Float64("cost_strategy", c.CostStrategy).
		Float64("price_strategy", c.PriceStrategy).
		Float64("price", c.Price).
		Float64("price2", c.Price2).
		Float64("disagreement", c.Disagreement).
		Msg("exchange-cost")
}

func (r *Reporter) ReportReferences(quotes []ReferenceQuote, sigmoid float64) {
	for _, q := range quotes {
		r.log.Info().Float64("fee", q.Fee).Float64("cost", q.Cost).Float64("price", q.Price).Msg("reference")
	}
	if !math.IsNaN(sigmoid) {
		r.log.Info().Float64("sigmoid_fee", sigmoid).Msg("reference")
	}
}
