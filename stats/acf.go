// Package stats provides seasonality tests and decomposition for time series.
package stats

import (
	"math"

	"gonum.org/v1/gonum/stat"

	"github.com/sartorproj/goseasonal/timeseries"
)

// ACF calculates the Autocorrelation Function for the given series.
// Returns ACF values for lags 0 to maxLag, or nil if the series is constant
// or too short.
func ACF(series *timeseries.Series, maxLag int) []float64 {
	n := series.Len()
	if maxLag >= n {
		maxLag = n - 1
	}
	if maxLag < 0 {
		return nil
	}

	mean := stat.Mean(series.Values, nil)
	variance := 0.0
	for _, v := range series.Values {
		diff := v - mean
		variance += diff * diff
	}
	if variance == 0 {
		return nil
	}

	acf := make([]float64, maxLag+1)
	for k := 0; k <= maxLag; k++ {
		sum := 0.0
		for i := k; i < n; i++ {
			sum += (series.Values[i] - mean) * (series.Values[i-k] - mean)
		}
		acf[k] = sum / variance
	}

	return acf
}

// ConfidenceBound returns the white-noise confidence bound for autocorrelation
// estimates from n observations at the given z critical value
// (e.g. 1.96 for 95%, 1.645 for 90%).
func ConfidenceBound(n int, zCrit float64) float64 {
	if n <= 0 {
		return math.Inf(1)
	}
	return zCrit / math.Sqrt(float64(n))
}
