// Package main demonstrates seasonal adjustment with the deseason transformer.
package main

import (
	"fmt"
	"log"
	"math"
	"strings"
	"time"

	"github.com/sartorproj/goseasonal/deseason"
	"github.com/sartorproj/goseasonal/stats"
	"github.com/sartorproj/goseasonal/timeseries"
)

// monthlySeries builds five years of synthetic monthly data: a linear trend,
// a yearly seasonal swing, and a small deterministic wobble.
func monthlySeries() *timeseries.Series {
	n := 60
	base := time.Date(2019, time.January, 1, 0, 0, 0, 0, time.UTC)

	timestamps := make([]time.Time, n)
	values := make([]float64, n)
	for i := 0; i < n; i++ {
		timestamps[i] = base.Add(time.Duration(i) * 30 * 24 * time.Hour)
		trend := 200 + 1.5*float64(i)
		seasonal := 25 * math.Sin(2*math.Pi*float64(i%12)/12)
		wobble := float64(i%5-2) / 2
		values[i] = trend + seasonal + wobble
	}

	series, err := timeseries.NewWithTimestamps(timestamps, values)
	if err != nil {
		log.Fatal(err)
	}
	series.Name = "monthly demand"
	return series
}

func main() {
	fmt.Println(strings.Repeat("=", 70))
	fmt.Println("GoSeasonal Demonstration - Seasonal Adjustment")
	fmt.Println(strings.Repeat("=", 70))

	series := monthlySeries()
	period := 12

	fmt.Printf("\nSeries: %s (%d observations)\n", series.Name, series.Len())
	fmt.Printf("Mean: %.2f  Std: %.2f  Min: %.2f  Max: %.2f\n",
		series.Mean(), series.Std(), series.Min(), series.Max())

	// Seasonality diagnostics
	fmt.Printf("\nSeasonality test at period %d: %v\n",
		period, stats.SeasonalityTest(series, period))
	fmt.Printf("Seasonal strength: %.3f\n", stats.SeasonalStrength(series, period))

	// Fit the transformer
	d, err := deseason.New(period, deseason.Additive, true)
	if err != nil {
		log.Fatal(err)
	}
	if err := d.Fit(series); err != nil {
		log.Fatal(err)
	}

	fmt.Println("\nEstimated seasonal cycle (anchored at the fit start):")
	for i, v := range d.SeasonalCycle() {
		fmt.Printf("  month %2d: %+8.3f\n", i+1, v)
	}

	// Remove the seasonal component
	adjusted, err := d.Transform(series)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Printf("\nAdjusted series std: %.2f (original %.2f)\n",
		adjusted.Std(), series.Std())

	// A query starting mid-cycle is aligned automatically
	lastYear := series.Slice(series.Len()-15, series.Len())
	adjustedTail, err := d.Transform(lastYear)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Printf("Adjusted last %d observations starting %s\n",
		adjustedTail.Len(), lastYear.Timestamps[0].Format("2006-01-02"))

	// Round trip back to the original
	restored, err := d.InverseTransform(adjusted)
	if err != nil {
		log.Fatal(err)
	}
	maxErr := 0.0
	for i := range series.Values {
		if e := math.Abs(restored.Values[i] - series.Values[i]); e > maxErr {
			maxErr = e
		}
	}
	fmt.Printf("\nRound-trip max error: %.2e\n", maxErr)

	fmt.Println(strings.Repeat("=", 70))
}
