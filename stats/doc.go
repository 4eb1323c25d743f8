// Package stats provides seasonality tests and decomposition for time series.
//
// # Seasonality Testing
//
// Test whether a series has a significant seasonal signal at a given period:
//
//	// M4-competition autocorrelation test
//	if stats.SeasonalityTest(series, 12) {
//	    // model the seasonal component
//	}
//
//	// Hyndman's seasonal strength measure in [0, 1]
//	strength := stats.SeasonalStrength(series, 12)
//
// # Time Series Decomposition
//
// Decompose a series into trend, seasonal, and residual components:
//
//	// Classical decomposition
//	decomp := stats.Decompose(series, 12, stats.Additive)
//	// decomp.Trend, decomp.Seasonal, decomp.Residual
//
//	// STL decomposition (robust to outliers)
//	stl := stats.STL(series, 12, 2)
//
// # Autocorrelation
//
// The underlying autocorrelation function is exported for direct use:
//
//	acf := stats.ACF(series, 20)
//	bound := stats.ConfidenceBound(series.Len(), 1.96)
package stats
