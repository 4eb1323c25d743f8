// Package timeseries provides time series data structures and utilities.
//
// This package includes the Series type for representing time series data,
// along with index validation, grid arithmetic, and CSV I/O.
//
// # Creating a Series
//
// Create a time series from a slice (an hourly index is generated):
//
//	values := []float64{100, 102, 105, 103, 108, 110}
//	series := timeseries.New(values)
//
// Or with explicit timestamps:
//
//	series, err := timeseries.NewWithTimestamps(timestamps, values)
//
// # Validation
//
// Check a series before handing it to numeric routines:
//
//	if err := timeseries.CheckValues(series); err != nil { ... }
//	step, err := timeseries.CheckIndex(series.Timestamps)
//
// # Grid Arithmetic
//
// Seasonal alignment needs to know how many grid positions separate two
// instants:
//
//	step, _ := series.Freq()
//	n, err := timeseries.StepsBetween(series.Timestamps[0], other, step)
//
// # Loading from CSV
//
// Load time series data from CSV files:
//
//	series, err := timeseries.LoadCSV("data.csv", nil)
//
//	opts := timeseries.DefaultCSVOptions()
//	opts.DateColumn = "month"
//	opts.ValueColumn = "passengers"
//	series, err := timeseries.LoadCSV("air.csv", opts)
package timeseries
