package stats

import (
	"math"

	"gonum.org/v1/gonum/stat"

	"github.com/sartorproj/goseasonal/timeseries"
)

// seasonalityZCrit is the 90% one-sided critical value used by the
// M4-competition seasonality test.
const seasonalityZCrit = 1.645

// SeasonalityTest reports whether the series shows a statistically
// significant seasonal signal at the given period.
//
// It uses the autocorrelation test from the M4 forecasting competition: the
// autocorrelation at lag = period is compared against a confidence band
// widened by the autocorrelations at the lower lags (Bartlett's formula).
// A period of 1, a series too short to estimate the lag, or a constant
// series all yield false.
func SeasonalityTest(series *timeseries.Series, period int) bool {
	if period <= 1 {
		return false
	}
	n := series.Len()
	if n <= period+1 {
		return false
	}

	acf := ACF(series, period)
	if acf == nil {
		return false
	}

	sumSq := 0.0
	for _, r := range acf[1:period] {
		sumSq += r * r
	}
	limit := seasonalityZCrit * math.Sqrt((1+2*sumSq)/float64(n))

	return math.Abs(acf[period]) > limit
}

// SeasonalStrength calculates the strength of seasonality at the given
// period, following Hyndman's measure:
//
//	F_S = max(0, 1 - Var(R) / Var(S+R))
//
// where S is the seasonal component and R the residual of an additive
// decomposition. The result is in [0, 1]; values near zero indicate no
// usable seasonal signal. Returns 0 when the series is too short to
// decompose.
func SeasonalStrength(series *timeseries.Series, period int) float64 {
	if period <= 1 || series.Len() < 2*period {
		return 0
	}

	decomp := Decompose(series, period, Additive)
	if decomp == nil {
		return 0
	}

	varR := varianceSkipNaN(decomp.Residual.Values)

	seasonalPlusResid := make([]float64, 0, decomp.Seasonal.Len())
	for i := range decomp.Seasonal.Values {
		s, r := decomp.Seasonal.Values[i], decomp.Residual.Values[i]
		if !math.IsNaN(s) && !math.IsNaN(r) {
			seasonalPlusResid = append(seasonalPlusResid, s+r)
		}
	}
	varSR := varianceSkipNaN(seasonalPlusResid)
	if varSR == 0 {
		return 0
	}

	strength := 1 - varR/varSR
	if strength < 0 {
		strength = 0
	}
	return strength
}

// varianceSkipNaN calculates the sample variance of a slice, ignoring NaNs.
func varianceSkipNaN(data []float64) float64 {
	valid := make([]float64, 0, len(data))
	for _, v := range data {
		if !math.IsNaN(v) {
			valid = append(valid, v)
		}
	}
	if len(valid) < 2 {
		return 0
	}
	return stat.Variance(valid, nil)
}
