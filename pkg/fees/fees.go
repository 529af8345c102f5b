// package fees implements the dynamic fee schedule that drives the
// liquidity parameter of the scoring rule.

package fees

import "math"

// SigmoidFee maps a reference value r to a fee adjustment bounded by the
// amplitude m:
//
//	m*(r-n) / sqrt(p + (r-n)^2)
//
// n is the midpoint and p the curvature. A negative p can make the radicand
// negative, in which case the result is NaN; checking p is up to the caller.
func SigmoidFee(m, n, p, r float64) float64 {
	return (m * (r - n)) / math.Sqrt(p+math.Pow(r-n, 2))
}

// FixFee is the base fee for a market with n outcomes and the given vig.
func FixFee(vig float64, n int) float64 {
	return vig / (float64(n) * math.Log(float64(n)))
}

// MinRevenue is the lowest fee the pool accepts, as a share b (between 0
// and 1) of the base fee.
func MinRevenue(b, fee float64) float64 {
	return b * fee
}

// VolumeRatio compares recent volume to the longer-run average: the mean of
// the last short samples divided by the mean of the last long samples.
// Windows are clamped to the history length. An empty history or a zero
// long-run mean gives 0.
func VolumeRatio(volumes []float64, short, long int) float64 {
	if len(volumes) == 0 {
		return 0
	}
	longAvg := trailingMean(volumes, long)
	if longAvg == 0 {
		return 0
	}
	return trailingMean(volumes, short) / longAvg
}

func trailingMean(volumes []float64, window int) float64 {
	if window < 1 {
		window = 1
	}
	if window > len(volumes) {
		window = len(volumes)
	}
	total := float64(0)
	for _, v := range volumes[len(volumes)-window:] {
		total += v
	}
	return total / float64(window)
}
