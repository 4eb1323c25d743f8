// Package goseasonal provides reversible seasonal adjustment for univariate time series.
//
// GoSeasonal estimates a repeating seasonal pattern of known periodicity from a
// fitted series, then removes or restores that pattern on arbitrary series that
// share the same time grid. It implements the classical deseasonalization
// transform: fit once, then transform (detrend) and inverse-transform (retrend)
// any phase-shifted series against the stored cycle.
//
// # Quick Start
//
// Fit a deseasonalizer and adjust a series:
//
//	series, _ := timeseries.NewWithTimestamps(ts, values)
//	d, _ := deseason.New(12, deseason.Additive, true)
//	if err := d.Fit(series); err != nil {
//	    log.Fatal(err)
//	}
//	adjusted, _ := d.Transform(series)
//	restored, _ := d.InverseTransform(adjusted)
//
// # Packages
//
// The library is organized into the following packages:
//
//   - deseason: the seasonal adjustment transformer (fit/transform/inverse)
//   - stats: seasonality testing and time series decomposition
//   - timeseries: time series data structures, validation, and CSV I/O
//
// # References
//
//   - Hyndman, R.J., & Athanasopoulos, G. (2021). Forecasting: Principles and Practice
//   - Makridakis, S., Spiliotis, E., & Assimakopoulos, V. (2020). The M4 Competition
package goseasonal
