// Package deseason removes and restores seasonal components of time series.
//
// The Deseasonalizer is a fit/transform style component: Fit estimates one
// seasonal cycle of a known periodicity from a series, Transform subtracts
// (or divides out) that cycle from any series on the same time grid, and
// InverseTransform puts it back. Transform and InverseTransform are exact
// inverses for the same input index.
//
// # Basic Usage
//
// Deseasonalize monthly data with yearly seasonality:
//
//	d, err := deseason.New(12, deseason.Additive, true)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if err := d.Fit(series); err != nil {
//	    log.Fatal(err)
//	}
//	adjusted, _ := d.Transform(series)
//	restored, _ := d.InverseTransform(adjusted)
//
// # Phase Alignment
//
// The fitted cycle is anchored at the fit series' first instant. A query
// series may start anywhere on the same grid; the transformer computes the
// whole number of grid steps between the two starts and rotates the cycle to
// match before applying it. Both indices must lie on the same uniform grid.
//
// # Seasonality Decision
//
// With testSeasonality enabled, Fit consults a seasonality test and stores a
// neutral cycle (zeros for additive, ones for multiplicative) when no
// significant signal is found, making the transform a no-op. A periodicity
// of 1 is never seasonal. Both the test and the decomposition routine can be
// swapped out:
//
//	d.SetDetector(func(s *timeseries.Series, period int) bool {
//	    return stats.SeasonalStrength(s, period) >= 0.64
//	})
//	d.SetDecomposer(func(s *timeseries.Series, period int, model string) *stats.DecompositionResult {
//	    return stats.STL(s, period, 2)
//	})
package deseason
