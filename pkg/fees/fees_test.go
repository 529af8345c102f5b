package fees

import (
	"math"
	"testing"

	"github.com/matryer/is"
)

const Epsilon = 1e-9

func withinEpsilon(a, b float64) bool {
	return math.Abs(a-b) < Epsilon
}

func TestSigmoidFee(t *testing.T) {
	is := is.New(t)
	is.True(withinEpsilon(SigmoidFee(0.01, 0, 2, 0.000000001), 0.01*0.000000001/math.Sqrt2))
	is.Equal(SigmoidFee(0.005, 0.9, 6, 0.9), 0.0)
	// (1*3)/sqrt(16) with p=7
	is.True(withinEpsilon(SigmoidFee(1, 0, 7, 3), 0.75))
}

func TestSigmoidFeeBounded(t *testing.T) {
	is := is.New(t)
	for _, p := range []float64{0.5, 2, 6} {
		for r := -100.0; r <= 100; r += 0.5 {
			is.True(math.Abs(SigmoidFee(0.005, 0.9, p, r)) < 0.005)
		}
	}
}

func TestSigmoidFeeMonotonic(t *testing.T) {
	is := is.New(t)
	prev := SigmoidFee(0.005, 0.9, 6, -100)
	for r := -99.5; r <= 100; r += 0.5 {
		cur := SigmoidFee(0.005, 0.9, 6, r)
		is.True(cur > prev)
		prev = cur
	}
}

func TestSigmoidFeeOddAroundMidpoint(t *testing.T) {
	is := is.New(t)
	for _, x := range []float64{0.1, 1, 10} {
		is.True(withinEpsilon(SigmoidFee(0.01, 2, 3, 2+x), -SigmoidFee(0.01, 2, 3, 2-x)))
	}
}

func TestSigmoidFeeNegativeCurvature(t *testing.T) {
	is := is.New(t)
	is.True(math.IsNaN(SigmoidFee(1, 0, -4, 1)))
}

func TestFixFee(t *testing.T) {
	is := is.New(t)
	is.True(withinEpsilon(FixFee(0.1, 2), 0.1/(2*math.Ln2)))
	is.True(math.IsInf(FixFee(0.1, 1), 1))
}

func TestMinRevenue(t *testing.T) {
	is := is.New(t)
	is.True(withinEpsilon(MinRevenue(0.75, 0.03), 0.0225))
}

func TestVolumeRatio(t *testing.T) {
	is := is.New(t)
	is.Equal(VolumeRatio(nil, 1, 6), 0.0)
	is.True(withinEpsilon(VolumeRatio([]float64{10, 10, 10, 40}, 1, 4), 40/17.5))
	// long window longer than the history
	is.True(withinEpsilon(VolumeRatio([]float64{5, 15}, 1, 6), 1.5))
	is.Equal(VolumeRatio([]float64{0, 0}, 1, 2), 0.0)
	is.True(withinEpsilon(VolumeRatio([]float64{3, 9}, 0, 0), 1))
}
