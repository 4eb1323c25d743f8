package stats

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/stat"

	"github.com/sartorproj/goseasonal/timeseries"
)

// Decomposition model types.
const (
	Additive       = "additive"
	Multiplicative = "multiplicative"
)

// DecompositionResult represents the decomposition of a time series.
type DecompositionResult struct {
	Original *timeseries.Series
	Trend    *timeseries.Series
	Seasonal *timeseries.Series
	Residual *timeseries.Series
	Period   int
	Type     string // Additive or Multiplicative
}

// Decompose performs classical seasonal decomposition of a time series.
// Uses a centered moving average for trend. Type can be "additive"
// (Y = T + S + R) or "multiplicative" (Y = T * S * R).
//
// The seasonal component repeats one period-length pattern across the whole
// series, anchored so that pattern position 0 is the series' first
// observation. Returns nil if the series is shorter than two full periods.
func Decompose(series *timeseries.Series, period int, decompositionType string) *DecompositionResult {
	n := series.Len()
	if period < 1 || n < 2*period {
		return nil
	}

	if decompositionType != Multiplicative {
		decompositionType = Additive
	}
	multiplicative := decompositionType == Multiplicative

	// Step 1: trend via centered moving average.
	trend := centeredMovingAverage(series.Values, period)

	// Step 2: detrend.
	detrended := make([]float64, n)
	for i := 0; i < n; i++ {
		switch {
		case math.IsNaN(trend[i]) || (multiplicative && trend[i] == 0):
			detrended[i] = math.NaN()
		case multiplicative:
			detrended[i] = series.Values[i] / trend[i]
		default:
			detrended[i] = series.Values[i] - trend[i]
		}
	}

	// Step 3: one normalized period-length pattern, tiled to full length.
	pattern := seasonalPattern(detrended, period, multiplicative)
	seasonal := make([]float64, n)
	for i := 0; i < n; i++ {
		seasonal[i] = pattern[i%period]
	}

	// Step 4: residual.
	residual := make([]float64, n)
	for i := 0; i < n; i++ {
		switch {
		case math.IsNaN(trend[i]) || (multiplicative && (trend[i] == 0 || seasonal[i] == 0)):
			residual[i] = math.NaN()
		case multiplicative:
			residual[i] = series.Values[i] / (trend[i] * seasonal[i])
		default:
			residual[i] = series.Values[i] - trend[i] - seasonal[i]
		}
	}

	return &DecompositionResult{
		Original: series,
		Trend:    componentSeries(series, trend, "trend"),
		Seasonal: componentSeries(series, seasonal, "seasonal"),
		Residual: componentSeries(series, residual, "residual"),
		Period:   period,
		Type:     decompositionType,
	}
}

// seasonalPattern averages the detrended values within each period position
// and normalizes the result to mean zero (additive) or mean one
// (multiplicative). NaN positions, where the trend is undefined, are skipped.
func seasonalPattern(detrended []float64, period int, multiplicative bool) []float64 {
	pattern := make([]float64, period)
	counts := make([]int, period)

	for i, v := range detrended {
		if !math.IsNaN(v) {
			pattern[i%period] += v
			counts[i%period]++
		}
	}
	for i := range pattern {
		if counts[i] > 0 {
			pattern[i] /= float64(counts[i])
		}
	}

	mean := stat.Mean(pattern, nil)
	if multiplicative {
		if mean != 0 {
			for i := range pattern {
				pattern[i] /= mean
			}
		}
	} else {
		for i := range pattern {
			pattern[i] -= mean
		}
	}

	return pattern
}

// centeredMovingAverage calculates the trend estimate. Positions within half
// a period of either end have no centered window and are NaN.
func centeredMovingAverage(values []float64, period int) []float64 {
	n := len(values)
	trend := make([]float64, n)
	for i := range trend {
		trend[i] = math.NaN()
	}

	half := period / 2

	if period%2 == 0 {
		// Even period: 2xMA with half weight on the window edges.
		for i := half; i < n-half; i++ {
			sum := values[i-half]*0.5 + values[i+half]*0.5
			for j := i - half + 1; j < i+half; j++ {
				sum += values[j]
			}
			trend[i] = sum / float64(period)
		}
	} else {
		for i := half; i < n-half; i++ {
			sum := 0.0
			for j := i - half; j <= i+half; j++ {
				sum += values[j]
			}
			trend[i] = sum / float64(period)
		}
	}

	return trend
}

func componentSeries(original *timeseries.Series, values []float64, name string) *timeseries.Series {
	return &timeseries.Series{
		Timestamps: original.Timestamps,
		Values:     values,
		Name:       name,
	}
}

// STL performs Seasonal and Trend decomposition using Loess.
// This is a simplified, iteratively reweighted implementation; the seasonal
// component is always additive. Returns nil if the series is shorter than
// two full periods.
func STL(series *timeseries.Series, period int, robustIters int) *DecompositionResult {
	n := series.Len()
	if period < 1 || n < 2*period {
		return nil
	}
	if robustIters < 1 {
		robustIters = 2
	}

	trend := make([]float64, n)
	seasonal := make([]float64, n)
	residual := make([]float64, n)
	weights := make([]float64, n)
	for i := range weights {
		weights[i] = 1.0
	}

	for iter := 0; iter < robustIters; iter++ {
		// Detrend, then average the detrended values per period position.
		pattern := make([]float64, period)
		counts := make([]float64, period)
		for i := 0; i < n; i++ {
			idx := i % period
			pattern[idx] += (series.Values[i] - trend[i]) * weights[i]
			counts[idx] += weights[i]
		}
		for i := range pattern {
			if counts[i] > 0 {
				pattern[i] /= counts[i]
			}
		}

		mean := stat.Mean(pattern, nil)
		for i := range pattern {
			pattern[i] -= mean
		}
		for i := 0; i < n; i++ {
			seasonal[i] = pattern[i%period]
		}

		// Smooth the deseasonalized series for the trend.
		window := period
		if window%2 == 0 {
			window++
		}
		half := window / 2

		for i := 0; i < n; i++ {
			sum, weightSum := 0.0, 0.0
			for j := -half; j <= half; j++ {
				idx := i + j
				if idx >= 0 && idx < n {
					w := weights[idx] * (1 - math.Abs(float64(j))/float64(half+1))
					sum += (series.Values[idx] - seasonal[idx]) * w
					weightSum += w
				}
			}
			if weightSum > 0 {
				trend[i] = sum / weightSum
			}
		}

		for i := 0; i < n; i++ {
			residual[i] = series.Values[i] - trend[i] - seasonal[i]
		}

		// Downweight outliers for the next pass (bisquare on residual/6*MAD).
		if iter < robustIters-1 {
			absResiduals := make([]float64, n)
			for i, r := range residual {
				absResiduals[i] = math.Abs(r)
			}
			h := 6 * median(absResiduals)
			if h > 0 {
				for i := 0; i < n; i++ {
					u := math.Abs(residual[i]) / h
					if u < 1 {
						weights[i] = (1 - u*u) * (1 - u*u)
					} else {
						weights[i] = 0
					}
				}
			}
		}
	}

	return &DecompositionResult{
		Original: series,
		Trend:    componentSeries(series, trend, "trend"),
		Seasonal: componentSeries(series, seasonal, "seasonal"),
		Residual: componentSeries(series, residual, "residual"),
		Period:   period,
		Type:     Additive,
	}
}

// median calculates the midpoint median of a slice.
func median(data []float64) float64 {
	n := len(data)
	if n == 0 {
		return 0
	}
	sorted := make([]float64, n)
	copy(sorted, data)
	sort.Float64s(sorted)

	if n%2 == 0 {
		return (sorted[n/2-1] + sorted[n/2]) / 2
	}
	return sorted[n/2]
}
