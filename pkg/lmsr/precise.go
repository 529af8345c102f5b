package lmsr

import (
	"errors"
	"math"

	"github.com/shopspring/decimal"
)

var (
	ErrZeroBalanceSum = errors.New("balances must not sum to zero")
	ErrNonFinite      = errors.New("balances and fee must be finite")
)

// PreciseCost evaluates the cost potential in decimal arithmetic, rounded to
// digits decimal places. It is slow and meant as a reference for checking
// the float paths, including inputs where the literal LogSumExp overflows.
func PreciseCost(fee float64, balances []float64, digits int32) (decimal.Decimal, error) {
	if math.IsNaN(fee) || math.IsInf(fee, 0) {
		return decimal.Zero, ErrNonFinite
	}
	if fee <= 0 {
		return decimal.Zero, ErrNonPositiveFee
	}
	if len(balances) == 0 {
		return decimal.Zero, ErrEmptyBalances
	}

	total := decimal.Zero
	bs := make([]decimal.Decimal, len(balances))
	for i, b := range balances {
		if math.IsNaN(b) || math.IsInf(b, 0) {
			return decimal.Zero, ErrNonFinite
		}
		bs[i] = decimal.NewFromFloat(b)
		total = total.Add(bs[i])
	}
	if total.IsZero() {
		return decimal.Zero, ErrZeroBalanceSum
	}

	work := digits + 8
	k := decimal.NewFromFloat(fee).Mul(total)
	exponents := make([]decimal.Decimal, len(bs))
	max := decimal.Zero
	for i, b := range bs {
		exponents[i] = b.DivRound(k, work)
		if i == 0 || exponents[i].GreaterThan(max) {
			max = exponents[i]
		}
	}

	// terms below e^-cutoff cannot move the sum at the working precision
	cutoff := decimal.NewFromFloat(math.Ln10 * float64(work)).Neg()
	acc := decimal.Zero
	for _, x := range exponents {
		shifted := x.Sub(max)
		if shifted.LessThan(cutoff) {
			continue
		}
		e, err := shifted.ExpTaylor(work)
		if err != nil {
			return decimal.Zero, err
		}
		acc = acc.Add(e)
	}
	ln, err := acc.Ln(work)
	if err != nil {
		return decimal.Zero, err
	}
	return k.Mul(max.Add(ln)).Round(digits), nil
}
