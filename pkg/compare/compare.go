package compare

import (
	"fmt"
	"math"

	"github.com/lithammer/shortuuid"

	"github.com/domino14/lsdlmsr/pkg/fees"
	"github.com/domino14/lsdlmsr/pkg/lmsr"
)

// Comparison holds the two ways of costing a purchase: the difference of
// the cost potential before and after, and the marginal price times the
// amount.
type Comparison struct {
	ID       string
	Scenario string
	Fee      float64
	Amount   float64
	Index    int

	Before     []float64
	After      []float64
	CostBefore float64
	CostAfter  float64

	// CostStrategy is CostBefore - CostAfter.
	CostStrategy float64
	// PriceStrategy is Price * Amount.
	PriceStrategy float64

	Price  float64
	Price2 float64
	// Disagreement is the relative difference between Price and Price2.
	Disagreement float64
}

// Compare buys s.Amount of asset s.Index out of the pool at the given fee.
// The scenario's balances are left untouched.
func Compare(fee float64, stable bool, s Scenario) (*Comparison, error) {
	opts := []lmsr.CurveOption{}
	if stable {
		opts = append(opts, lmsr.WithStableLogSumExp())
	}
	curve, err := lmsr.NewCurve(fee, opts...)
	if err != nil {
		return nil, fmt.Errorf("scenario %s: %w", s.Name, err)
	}
	if s.Index < 0 || s.Index >= len(s.Balances) {
		return nil, fmt.Errorf("scenario %s: index %d out of range", s.Name, s.Index)
	}

	after := make([]float64, len(s.Balances))
	copy(after, s.Balances)
	after[s.Index] -= s.Amount

	costBefore, err := curve.Cost(s.Balances)
	if err != nil {
		return nil, fmt.Errorf("scenario %s: %w", s.Name, err)
	}
	costAfter, err := curve.Cost(after)
	if err != nil {
		return nil, fmt.Errorf("scenario %s: %w", s.Name, err)
	}
	q := s.Balances[s.Index]
	p, err := curve.Price(s.Balances, q)
	if err != nil {
		return nil, fmt.Errorf("scenario %s: %w", s.Name, err)
	}
	p2, err := curve.Price2(s.Balances, q)
	if err != nil {
		return nil, fmt.Errorf("scenario %s: %w", s.Name, err)
	}

	return &Comparison{
		ID:            shortuuid.New(),
		Scenario:      s.Name,
		Fee:           fee,
		Amount:        s.Amount,
		Index:         s.Index,
		Before:        append([]float64(nil), s.Balances...),
		After:         after,
		CostBefore:    costBefore,
		CostAfter:     costAfter,
		CostStrategy:  costBefore - costAfter,
		PriceStrategy: p * s.Amount,
		Price:         p,
		Price2:        p2,
		Disagreement:  relativeDiff(p, p2),
	}, nil
}

func relativeDiff(a, b float64) float64 {
	scale := math.Max(math.Abs(a), math.Abs(b))
	if scale == 0 {
		return 0
	}
	return math.Abs(a-b) / scale
}

// ReferenceQuote is the cost and the price of the first asset of a pool at
// one fee.
type ReferenceQuote struct {
	Fee   float64
	Cost  float64
	Price float64
}

// References evaluates the reference pool at every reference fee, and the
// sigmoid fee if one is configured.
func References(ref Reference) ([]ReferenceQuote, float64) {
	quotes := make([]ReferenceQuote, 0, len(ref.Fees))
	if len(ref.Balances) > 0 {
		for _, fee := range ref.Fees {
			quotes = append(quotes, ReferenceQuote{
				Fee:   fee,
				Cost:  lmsr.Cost(fee, ref.Balances),
				Price: lmsr.Price(fee, ref.Balances, ref.Balances[0]),
			})
		}
	}
	sigmoid := math.NaN()
	if ref.Sigmoid != nil {
		sp := ref.Sigmoid
		sigmoid = fees.SigmoidFee(sp.Amplitude, sp.Midpoint, sp.Curvature, sp.Reference)
	}
	return quotes, sigmoid
}

// Run compares every scenario of the config and reports it. It stops at
// the first scenario that cannot be priced.
func Run(cfg *Config, r *Reporter) ([]*Comparison, error) {
	quotes, sigmoid := References(cfg.Reference)
	r.ReportReferences(quotes, sigmoid)

	out := make([]*Comparison, 0, len(cfg.Scenarios))
	for _, s := range cfg.Scenarios {
		c, err := Compare(cfg.FeeFor(s), cfg.Stable, s)
		if err != nil {
			return out, err
		}
		r.Report(c)
		out = append(out, c)
	}
	return out, nil
}
