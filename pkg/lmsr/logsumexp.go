package lmsr

import "math"

// LogSumExp returns ln(sum(exp(x))) for the given exponents. It does not
// shift by the maximum first, so large arguments overflow to +Inf exactly
// as the plain formula would.
func LogSumExp(exponents []float64) float64 {
	sum := float64(0)
	for _, x := range exponents {
		sum += math.Exp(x)
	}
	return math.Log(sum)
}

// StableLogSumExp is LogSumExp computed as max + ln(sum(exp(x - max))),
// which stays finite for any finite input.
func StableLogSumExp(exponents []float64) float64 {
	if len(exponents) == 0 {
		return math.Inf(-1)
	}
	max := math.Inf(-1)
	for _, x := range exponents {
		if math.IsNaN(x) {
			return math.NaN()
		}
		if x > max {
			max = x
		}
	}
	if math.IsInf(max, 0) {
		return max
	}
	sum := float64(0)
	for _, x := range exponents {
		sum += math.Exp(x - max)
	}
	return max + math.Log(sum)
}
