package fees

import "math"

// Schedule combines a base fee with a sigmoid adjustment driven by the
// volume ratio, floored at a share of the base fee.
type Schedule struct {
	Base      float64 `yaml:"base"`
	Amplitude float64 `yaml:"amplitude"`
	Midpoint  float64 `yaml:"midpoint"`
	Curvature float64 `yaml:"curvature"`
	// MinRevenueShare is the b passed to MinRevenue.
	MinRevenueShare float64 `yaml:"min_revenue_share"`
}

// TotalFee returns the fee to charge for volume ratio r.
func (s Schedule) TotalFee(r float64) float64 {
	total := s.Base + SigmoidFee(s.Amplitude, s.Midpoint, s.Curvature, r)
	return math.Max(total, MinRevenue(s.MinRevenueShare, s.Base))
}

// FeeFor computes the volume ratio of the history and the fee for it.
func (s Schedule) FeeFor(volumes []float64, short, long int) (ratio, fee float64) {
	ratio = VolumeRatio(volumes, short, long)
	return ratio, s.TotalFee(ratio)
}
