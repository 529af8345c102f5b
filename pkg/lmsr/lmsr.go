// package lmsr implements the cost potential and marginal prices of a
// liquidity-sensitive Logarithmic Market Scoring Rule over a reserve vector.

package lmsr

import "math"

// Cost calculates the cost potential for a fee (liquidity) parameter and the
// reserve balances of every asset in the pool:
//
//	fee*sum(balances) * ln(sum(exp(b_i / (fee*sum(balances)))))
//
// Only differences of the potential are meaningful. A zero balance sum
// yields NaN.
func Cost(fee float64, balances []float64) float64 {
	return cost(fee, balances, false)
}

// Price calculates the marginal price at reserve level q given the fee and
// the reserve balances. q does not have to be one of the balances; the
// formula is evaluated at whatever level is passed in.
func Price(fee float64, balances []float64, q float64) float64 {
	return price(fee, balances, q, false)
}

// PriceFirstQuotient is the exp(q/K)*S / (sum(exp(b_i/K))*S) term of the
// marginal price, where S is the balance sum and K = fee*S.
func PriceFirstQuotient(fee float64, balances []float64, q float64) float64 {
	return firstQuotient(fee, balances, q, false)
}

// PriceSecondQuotient is the sum(b_i*exp(b_i/K)) / (sum(exp(b_i/K))*S) term
// of the marginal price.
func PriceSecondQuotient(fee float64, balances []float64, q float64) float64 {
	return secondQuotient(fee, balances, q, false)
}

// Price2 is the marginal price assembled from its two quotients. It should
// agree with Price up to rounding.
func Price2(fee float64, balances []float64, q float64) float64 {
	return price2(fee, balances, q, false)
}

// OutcomeProbability returns exp(b_i/K) / sum(exp(b_j/K)) for every asset.
func OutcomeProbability(fee float64, balances []float64) []float64 {
	return probabilities(fee, balances, false)
}

// TradeCost calculates the change in cost potential when the balance at idx
// moves by delta. balances is not modified.
func TradeCost(fee float64, delta float64, balances []float64, idx int) float64 {
	return tradeCost(fee, delta, balances, idx, false)
}

func sum(balances []float64) float64 {
	s := float64(0)
	for _, b := range balances {
		s += b
	}
	return s
}

// exponentials returns the balance sum S, the scale K = fee*S, the shift
// subtracted from every exponent and exp(b_i/K - shift) for every balance.
// The shift is zero unless stable is set, in which case it is max(b_i)/K.
func exponentials(fee float64, balances []float64, stable bool) (float64, float64, float64, []float64) {
	s := sum(balances)
	k := fee * s
	shift := float64(0)
	if stable {
		shift = maxExponent(balances, k)
	}
	exps := make([]float64, len(balances))
	for i, b := range balances {
		exps[i] = math.Exp(b/k - shift)
	}
	return s, k, shift, exps
}

// maxExponent returns max(b_i/k), or zero when that is not finite so a
// degenerate vector keeps producing the same NaN/Inf as the literal path.
func maxExponent(balances []float64, k float64) float64 {
	max := math.Inf(-1)
	for _, b := range balances {
		max = math.Max(max, b/k)
	}
	if math.IsInf(max, 0) || math.IsNaN(max) {
		return 0
	}
	return max
}

func cost(fee float64, balances []float64, stable bool) float64 {
	k := fee * sum(balances)
	exponents := make([]float64, len(balances))
	for i, b := range balances {
		exponents[i] = b / k
	}
	if stable {
		return k * StableLogSumExp(exponents)
	}
	return k * LogSumExp(exponents)
}

func price(fee float64, balances []float64, q float64, stable bool) float64 {
	s := sum(balances)
	k := fee * s
	shift := float64(0)
	if stable {
		shift = maxExponent(balances, k)
	}
	expSum := float64(0)
	weighted := float64(0)
	for _, b := range balances {
		e := math.Exp(b/k - shift)
		expSum += e
		weighted += b * e
	}
	return cost(fee, balances, stable)/s +
		(math.Exp(q/k-shift)*s-weighted)/(expSum*s)
}

func firstQuotient(fee float64, balances []float64, q float64, stable bool) float64 {
	s, k, shift, exps := exponentials(fee, balances, stable)
	denominator := sum(exps) * s
	return (math.Exp(q/k-shift) * s) / denominator
}

func secondQuotient(fee float64, balances []float64, q float64, stable bool) float64 {
	s, _, _, exps := exponentials(fee, balances, stable)
	denominator := sum(exps) * s
	weighted := float64(0)
	for i, e := range exps {
		weighted += balances[i] * e
	}
	return weighted / denominator
}

func price2(fee float64, balances []float64, q float64, stable bool) float64 {
	left := cost(fee, balances, stable) / sum(balances)
	return left + firstQuotient(fee, balances, q, stable) - secondQuotient(fee, balances, q, stable)
}

func probabilities(fee float64, balances []float64, stable bool) []float64 {
	_, _, _, exps := exponentials(fee, balances, stable)
	total := sum(exps)
	for i := range exps {
		exps[i] /= total
	}
	return exps
}

func tradeCost(fee float64, delta float64, balances []float64, idx int, stable bool) float64 {
	after := make([]float64, len(balances))
	copy(after, balances)
	after[idx] += delta
	return cost(fee, after, stable) - cost(fee, balances, stable)
}
