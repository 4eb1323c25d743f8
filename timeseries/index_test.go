package timeseries

import (
	"errors"
	"math"
	"testing"
	"time"
)

func hourlyTimestamps(base time.Time, n int) []time.Time {
	timestamps := make([]time.Time, n)
	for i := range timestamps {
		timestamps[i] = base.Add(time.Duration(i) * time.Hour)
	}
	return timestamps
}

func TestFreq(t *testing.T) {
	base := time.Date(2020, time.January, 1, 0, 0, 0, 0, time.UTC)

	s := &Series{Timestamps: hourlyTimestamps(base, 5), Values: make([]float64, 5)}
	step, err := s.Freq()
	if err != nil {
		t.Fatalf("Freq failed: %v", err)
	}
	if step != time.Hour {
		t.Errorf("Expected 1h step, got %v", step)
	}

	// Irregular spacing is rejected.
	irregular := hourlyTimestamps(base, 5)
	irregular[3] = irregular[3].Add(10 * time.Minute)
	s = &Series{Timestamps: irregular, Values: make([]float64, 5)}
	if _, err := s.Freq(); !errors.Is(err, ErrNonUniformIndex) {
		t.Errorf("Expected ErrNonUniformIndex, got %v", err)
	}

	// Non-increasing index is rejected.
	decreasing := []time.Time{base.Add(time.Hour), base, base.Add(2 * time.Hour)}
	s = &Series{Timestamps: decreasing, Values: make([]float64, 3)}
	if _, err := s.Freq(); !errors.Is(err, ErrNonUniformIndex) {
		t.Errorf("Expected ErrNonUniformIndex for decreasing index, got %v", err)
	}

	// Too short to infer.
	s = &Series{Timestamps: hourlyTimestamps(base, 1), Values: make([]float64, 1)}
	if _, err := s.Freq(); err == nil {
		t.Error("Expected error for single-observation index")
	}
}

func TestStepsBetween(t *testing.T) {
	base := time.Date(2020, time.January, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		to      time.Time
		step    time.Duration
		want    int
		wantErr bool
	}{
		{"zero", base, time.Hour, 0, false},
		{"forward", base.Add(5 * time.Hour), time.Hour, 5, false},
		{"backward", base.Add(-3 * time.Hour), time.Hour, -3, false},
		{"off grid", base.Add(90 * time.Minute), time.Hour, 0, true},
		{"zero step nonzero distance", base.Add(time.Hour), 0, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := StepsBetween(base, tt.to, tt.step)
			if tt.wantErr {
				if !errors.Is(err, ErrNonUniformIndex) {
					t.Errorf("Expected ErrNonUniformIndex, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("StepsBetween failed: %v", err)
			}
			if got != tt.want {
				t.Errorf("Expected %d steps, got %d", tt.want, got)
			}
		})
	}

	// Equal instants need no step at all.
	if got, err := StepsBetween(base, base, 0); err != nil || got != 0 {
		t.Errorf("Expected 0 steps for equal instants, got %d, %v", got, err)
	}
}

func TestCheckValues(t *testing.T) {
	if err := CheckValues(New([]float64{1, 2, 3})); err != nil {
		t.Errorf("Unexpected error for valid series: %v", err)
	}

	if err := CheckValues(nil); err == nil {
		t.Error("Expected error for nil series")
	}
	if err := CheckValues(New(nil)); err == nil {
		t.Error("Expected error for empty series")
	}
	if err := CheckValues(New([]float64{1, math.NaN()})); err == nil {
		t.Error("Expected error for NaN value")
	}
	if err := CheckValues(New([]float64{1, math.Inf(-1)})); err == nil {
		t.Error("Expected error for infinite value")
	}
	if err := CheckValues(&Series{Values: []float64{1, 2}}); err == nil {
		t.Error("Expected error for missing index")
	}
}

func TestCheckIndex(t *testing.T) {
	base := time.Date(2020, time.January, 1, 0, 0, 0, 0, time.UTC)

	step, err := CheckIndex(hourlyTimestamps(base, 4))
	if err != nil {
		t.Fatalf("CheckIndex failed: %v", err)
	}
	if step != time.Hour {
		t.Errorf("Expected 1h step, got %v", step)
	}

	// One observation is fine, but no step can be inferred.
	step, err = CheckIndex(hourlyTimestamps(base, 1))
	if err != nil {
		t.Fatalf("CheckIndex failed on single observation: %v", err)
	}
	if step != 0 {
		t.Errorf("Expected zero step, got %v", step)
	}

	if _, err := CheckIndex(nil); err == nil {
		t.Error("Expected error for empty index")
	}
}

func TestCheckPeriodicity(t *testing.T) {
	for _, p := range []int{1, 2, 12, 365} {
		if err := CheckPeriodicity(p); err != nil {
			t.Errorf("Unexpected error for periodicity %d: %v", p, err)
		}
	}
	for _, p := range []int{0, -1, -12} {
		if err := CheckPeriodicity(p); err == nil {
			t.Errorf("Expected error for periodicity %d", p)
		}
	}
}
