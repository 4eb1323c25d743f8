package timeseries

import (
	"errors"
	"fmt"
	"time"
)

// ErrNonUniformIndex indicates a time index whose observations are not evenly
// spaced, or an instant that does not fall on the index grid.
var ErrNonUniformIndex = errors.New("timeseries: index is not on a uniform grid")

// Freq infers the step between consecutive observations. It returns an error
// if the series has fewer than two observations or the spacing is not
// constant. Phase-alignment arithmetic depends on a uniform grid, so anything
// irregular is rejected rather than approximated.
func (s *Series) Freq() (time.Duration, error) {
	if len(s.Timestamps) < 2 {
		return 0, errors.New("timeseries: at least two observations are required to infer a frequency")
	}

	step := s.Timestamps[1].Sub(s.Timestamps[0])
	if step <= 0 {
		return 0, fmt.Errorf("%w: index is not strictly increasing", ErrNonUniformIndex)
	}
	for i := 2; i < len(s.Timestamps); i++ {
		if s.Timestamps[i].Sub(s.Timestamps[i-1]) != step {
			return 0, fmt.Errorf("%w: spacing changes at position %d", ErrNonUniformIndex, i)
		}
	}
	return step, nil
}

// StepsBetween returns the number of whole steps from one instant to another.
// The distance must be an exact multiple of step; otherwise the instants are
// on incompatible grids and an error is returned. The count is negative when
// to precedes from.
func StepsBetween(from, to time.Time, step time.Duration) (int, error) {
	if from.Equal(to) {
		return 0, nil
	}
	if step <= 0 {
		return 0, fmt.Errorf("%w: no step to measure against", ErrNonUniformIndex)
	}

	d := to.Sub(from)
	if d%step != 0 {
		return 0, fmt.Errorf("%w: %v is not a whole number of %v steps", ErrNonUniformIndex, d, step)
	}
	return int(d / step), nil
}
