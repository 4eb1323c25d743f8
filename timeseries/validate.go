package timeseries

import (
	"errors"
	"fmt"
	"math"
	"time"
)

// CheckValues validates a series before it enters numeric routines: the
// series must be non-nil and non-empty, every value must be finite, and the
// index must cover every value.
func CheckValues(s *Series) error {
	if s == nil || len(s.Values) == 0 {
		return errors.New("timeseries: series is empty")
	}
	if len(s.Timestamps) != len(s.Values) {
		return fmt.Errorf("timeseries: index length %d does not match %d values",
			len(s.Timestamps), len(s.Values))
	}
	for i, v := range s.Values {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("timeseries: non-finite value %v at position %d", v, i)
		}
	}
	return nil
}

// CheckIndex validates that the timestamps form a strictly increasing uniform
// grid and returns the grid step. A single-observation index is accepted and
// yields a zero step, since no spacing can be inferred from one point.
func CheckIndex(timestamps []time.Time) (time.Duration, error) {
	if len(timestamps) == 0 {
		return 0, errors.New("timeseries: index is empty")
	}
	if len(timestamps) == 1 {
		return 0, nil
	}
	return (&Series{Timestamps: timestamps, Values: make([]float64, len(timestamps))}).Freq()
}

// CheckPeriodicity validates a seasonal periodicity.
func CheckPeriodicity(periodicity int) error {
	if periodicity < 1 {
		return fmt.Errorf("timeseries: periodicity must be a positive integer, got %d", periodicity)
	}
	return nil
}
