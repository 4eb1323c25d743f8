// Package deseason implements a reversible seasonal adjustment transformer.
package deseason

import (
	"errors"
	"fmt"
	"time"

	"gonum.org/v1/gonum/floats"

	"github.com/sartorproj/goseasonal/stats"
	"github.com/sartorproj/goseasonal/timeseries"
)

// Combination model types, shared with the stats decomposition routines.
const (
	Additive       = stats.Additive
	Multiplicative = stats.Multiplicative
)

var (
	// ErrNotFitted is returned by Transform and InverseTransform before a
	// successful Fit.
	ErrNotFitted = errors.New("deseason: transformer is not fitted")

	// ErrInsufficientData is returned by Fit when the series is too short to
	// extract a seasonal cycle at the configured periodicity.
	ErrInsufficientData = errors.New("deseason: series too short for seasonal decomposition")
)

// DetectFunc decides whether a series carries a statistically significant
// seasonal signal at the given period.
type DetectFunc func(series *timeseries.Series, period int) bool

// DecomposeFunc splits a series into trend, seasonal, and residual
// components for the given period and combination model. It returns nil when
// the series cannot support the decomposition.
type DecomposeFunc func(series *timeseries.Series, period int, model string) *stats.DecompositionResult

// Deseasonalizer estimates one repeating seasonal cycle from a fitted series
// and removes (Transform) or restores (InverseTransform) it on any series
// that lies on the same uniform time grid. Transform and InverseTransform
// are exact inverses of each other.
//
// A Deseasonalizer is not safe for concurrent use; distinct instances are
// independent.
type Deseasonalizer struct {
	periodicity     int
	model           string
	testSeasonality bool

	detect    DetectFunc
	decompose DecomposeFunc

	state *fitState
}

// fitState holds everything derived from one Fit call. It is built in full
// and swapped in only on success, so a failed refit cannot leave the
// transformer half-updated.
type fitState struct {
	anchor time.Time     // first instant of the fit index
	step   time.Duration // fit grid step; zero when fitted on one observation
	cycle  []float64     // one seasonal cycle, anchored at the fit start
}

// New creates a Deseasonalizer for the given seasonal periodicity and
// combination model ("additive" or "multiplicative"). When testSeasonality
// is true, Fit runs a seasonality test and falls back to a neutral cycle
// when the series shows no seasonal signal; when false, seasonality is
// assumed. A periodicity of 1 always produces a neutral cycle.
func New(periodicity int, model string, testSeasonality bool) (*Deseasonalizer, error) {
	if err := timeseries.CheckPeriodicity(periodicity); err != nil {
		return nil, err
	}
	if model != Additive && model != Multiplicative {
		return nil, fmt.Errorf("deseason: model must be %q or %q, got %q",
			Additive, Multiplicative, model)
	}
	return &Deseasonalizer{
		periodicity:     periodicity,
		model:           model,
		testSeasonality: testSeasonality,
		detect:          stats.SeasonalityTest,
		decompose:       stats.Decompose,
	}, nil
}

// Periodicity returns the configured seasonal periodicity.
func (d *Deseasonalizer) Periodicity() int { return d.periodicity }

// Model returns the configured combination model.
func (d *Deseasonalizer) Model() string { return d.model }

// IsFitted reports whether a successful Fit has run.
func (d *Deseasonalizer) IsFitted() bool { return d.state != nil }

// SetDetector replaces the seasonality test consulted during Fit. The
// default is stats.SeasonalityTest.
func (d *Deseasonalizer) SetDetector(fn DetectFunc) {
	if fn != nil {
		d.detect = fn
	}
}

// SetDecomposer replaces the decomposition routine used during Fit. The
// default is stats.Decompose.
func (d *Deseasonalizer) SetDecomposer(fn DecomposeFunc) {
	if fn != nil {
		d.decompose = fn
	}
}

// SeasonalCycle returns a copy of the stored seasonal cycle, or nil before a
// successful Fit. The cycle has exactly Periodicity values and its first
// value corresponds to the fit series' first observation.
func (d *Deseasonalizer) SeasonalCycle() []float64 {
	if d.state == nil {
		return nil
	}
	cycle := make([]float64, len(d.state.cycle))
	copy(cycle, d.state.cycle)
	return cycle
}

// Fit estimates the seasonal cycle from the given series and anchors it to
// the series' first instant. Refitting replaces all fitted state; a failed
// Fit leaves the transformer unfitted, never with partial state.
func (d *Deseasonalizer) Fit(series *timeseries.Series) error {
	if err := timeseries.CheckValues(series); err != nil {
		d.state = nil
		return err
	}
	step, err := timeseries.CheckIndex(series.Timestamps)
	if err != nil {
		d.state = nil
		return err
	}

	cycle, err := d.extractCycle(series, d.checkIsSeasonal(series))
	if err != nil {
		d.state = nil
		return err
	}

	d.state = &fitState{
		anchor: series.Timestamps[0],
		step:   step,
		cycle:  cycle,
	}
	return nil
}

// Transform removes the seasonal component from the series. The series may
// start at any phase of the cycle; its index offset from the fit anchor
// determines the rotation applied before subtraction or division.
func (d *Deseasonalizer) Transform(series *timeseries.Series) (*timeseries.Series, error) {
	return d.apply(series, true)
}

// InverseTransform restores the seasonal component removed by Transform.
func (d *Deseasonalizer) InverseTransform(series *timeseries.Series) (*timeseries.Series, error) {
	return d.apply(series, false)
}

// checkIsSeasonal runs the seasonality decision: a single-observation cycle
// is never seasonal, an untested fit is always seasonal, otherwise the
// detector decides.
func (d *Deseasonalizer) checkIsSeasonal(series *timeseries.Series) bool {
	switch {
	case d.periodicity == 1:
		return false
	case !d.testSeasonality:
		return true
	default:
		return d.detect(series, d.periodicity)
	}
}

func (d *Deseasonalizer) extractCycle(series *timeseries.Series, isSeasonal bool) ([]float64, error) {
	if !isSeasonal {
		return neutralCycle(d.periodicity, d.model), nil
	}

	decomp := d.decompose(series, d.periodicity, d.model)
	if decomp == nil || decomp.Seasonal.Len() < d.periodicity {
		return nil, fmt.Errorf("%w: %d observations cannot support periodicity %d",
			ErrInsufficientData, series.Len(), d.periodicity)
	}

	// The decomposition repeats one cycle across the whole series length;
	// the first period-length run, anchored at the fit start, is canonical.
	cycle := make([]float64, d.periodicity)
	copy(cycle, decomp.Seasonal.Values[:d.periodicity])
	return cycle, nil
}

// neutralCycle is the identity cycle for the model: zeros leave an additive
// adjustment a no-op, ones a multiplicative one.
func neutralCycle(periodicity int, model string) []float64 {
	cycle := make([]float64, periodicity)
	if model == Multiplicative {
		for i := range cycle {
			cycle[i] = 1
		}
	}
	return cycle
}

func (d *Deseasonalizer) apply(series *timeseries.Series, remove bool) (*timeseries.Series, error) {
	if d.state == nil {
		return nil, ErrNotFitted
	}
	if err := timeseries.CheckValues(series); err != nil {
		return nil, err
	}

	seasonal, err := d.alignSeasonal(series)
	if err != nil {
		return nil, err
	}

	out := make([]float64, series.Len())
	copy(out, series.Values)
	switch {
	case remove && d.model == Multiplicative:
		floats.Div(out, seasonal)
	case remove:
		floats.Sub(out, seasonal)
	case d.model == Multiplicative:
		floats.Mul(out, seasonal)
	default:
		floats.Add(out, seasonal)
	}

	return series.WithValues(out, series.Name)
}

// alignSeasonal materializes the seasonal vector for a query series: rotate
// the stored cycle by the phase offset between the query start and the fit
// anchor, then tile it to the query length. The rotation offset is always in
// [0, periodicity), and a query starting a whole number of cycles away from
// the anchor gets the unrotated cycle.
func (d *Deseasonalizer) alignSeasonal(series *timeseries.Series) ([]float64, error) {
	// A length-one cycle has a single phase; no grid arithmetic needed.
	if d.periodicity == 1 {
		return tileToLength(d.state.cycle, series.Len()), nil
	}

	qstep, err := timeseries.CheckIndex(series.Timestamps)
	if err != nil {
		return nil, err
	}
	if d.periodicity > 1 && qstep != 0 && d.state.step != 0 && qstep != d.state.step {
		return nil, fmt.Errorf("%w: series step %v differs from fitted step %v",
			timeseries.ErrNonUniformIndex, qstep, d.state.step)
	}

	steps, err := timeseries.StepsBetween(d.state.anchor, series.Timestamps[0], d.state.step)
	if err != nil {
		return nil, err
	}

	shift := posMod(-steps, d.periodicity)
	return tileToLength(rotate(d.state.cycle, shift), series.Len()), nil
}
