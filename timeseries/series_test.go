package timeseries

import (
	"math"
	"testing"
	"time"
)

func TestNew(t *testing.T) {
	values := []float64{1, 2, 3, 4, 5}
	s := New(values)

	if s.Len() != 5 {
		t.Errorf("Expected length 5, got %d", s.Len())
	}

	for i, v := range s.Values {
		if v != values[i] {
			t.Errorf("Expected value %f at index %d, got %f", values[i], i, v)
		}
	}

	// The generated index is hourly and uniform.
	step, err := s.Freq()
	if err != nil {
		t.Fatalf("Freq failed: %v", err)
	}
	if step != time.Hour {
		t.Errorf("Expected hourly index, got %v", step)
	}
}

func TestNewWithTimestamps(t *testing.T) {
	base := time.Date(2021, time.March, 1, 0, 0, 0, 0, time.UTC)
	timestamps := []time.Time{base, base.AddDate(0, 1, 0)}

	s, err := NewWithTimestamps(timestamps, []float64{1, 2})
	if err != nil {
		t.Fatalf("NewWithTimestamps failed: %v", err)
	}
	if s.Len() != 2 {
		t.Errorf("Expected length 2, got %d", s.Len())
	}

	if _, err := NewWithTimestamps(timestamps, []float64{1}); err == nil {
		t.Error("Expected error for mismatched lengths")
	}
}

func TestMean(t *testing.T) {
	tests := []struct {
		name     string
		values   []float64
		expected float64
	}{
		{"simple", []float64{1, 2, 3, 4, 5}, 3.0},
		{"single", []float64{5}, 5.0},
		{"negative", []float64{-1, -2, -3}, -2.0},
		{"mixed", []float64{-1, 0, 1}, 0.0},
		{"empty", []float64{}, 0.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := New(tt.values)
			result := s.Mean()
			if math.Abs(result-tt.expected) > 1e-10 {
				t.Errorf("Expected mean %f, got %f", tt.expected, result)
			}
		})
	}
}

func TestVarianceAndStd(t *testing.T) {
	s := New([]float64{2, 4, 4, 4, 5, 5, 7, 9})
	expected := 4.571428571428571

	if got := s.Variance(); math.Abs(got-expected) > 1e-10 {
		t.Errorf("Expected variance %f, got %f", expected, got)
	}
	if got := s.Std(); math.Abs(got-math.Sqrt(expected)) > 1e-10 {
		t.Errorf("Expected std %f, got %f", math.Sqrt(expected), got)
	}

	if got := New([]float64{3}).Variance(); got != 0 {
		t.Errorf("Expected 0 variance for single value, got %f", got)
	}
}

func TestMinMax(t *testing.T) {
	s := New([]float64{3, -1, 7, 0})

	if got := s.Min(); got != -1 {
		t.Errorf("Expected min -1, got %f", got)
	}
	if got := s.Max(); got != 7 {
		t.Errorf("Expected max 7, got %f", got)
	}

	empty := New(nil)
	if !math.IsNaN(empty.Min()) || !math.IsNaN(empty.Max()) {
		t.Error("Expected NaN min/max for empty series")
	}
}

func TestSlice(t *testing.T) {
	s := New([]float64{0, 1, 2, 3, 4, 5})
	sub := s.Slice(2, 5)

	if sub.Len() != 3 {
		t.Fatalf("Expected length 3, got %d", sub.Len())
	}
	for i, want := range []float64{2, 3, 4} {
		if sub.Values[i] != want {
			t.Errorf("Value at %d: expected %f, got %f", i, want, sub.Values[i])
		}
	}

	// Timestamps carry over so the slice keeps its grid position.
	if !sub.Timestamps[0].Equal(s.Timestamps[2]) {
		t.Error("Slice did not preserve timestamps")
	}

	if got := s.Slice(4, 2); got.Len() != 0 {
		t.Errorf("Expected empty slice for inverted range, got %d", got.Len())
	}
	if got := s.Slice(-2, 100); got.Len() != 6 {
		t.Errorf("Expected clamped slice of 6, got %d", got.Len())
	}
}

func TestCopy(t *testing.T) {
	s := New([]float64{1, 2, 3})
	s.Name = "orig"
	c := s.Copy()

	c.Values[0] = 99
	c.Timestamps[0] = c.Timestamps[0].Add(time.Minute)

	if s.Values[0] != 1 {
		t.Error("Copy shares value storage with original")
	}
	if s.Timestamps[0].Equal(c.Timestamps[0]) {
		t.Error("Copy shares timestamp storage with original")
	}
	if c.Name != "orig" {
		t.Errorf("Expected name to carry over, got %q", c.Name)
	}
}

func TestWithValues(t *testing.T) {
	s := New([]float64{1, 2, 3})

	out, err := s.WithValues([]float64{4, 5, 6}, "adjusted")
	if err != nil {
		t.Fatalf("WithValues failed: %v", err)
	}
	if out.Name != "adjusted" {
		t.Errorf("Expected name %q, got %q", "adjusted", out.Name)
	}
	for i := range out.Timestamps {
		if !out.Timestamps[i].Equal(s.Timestamps[i]) {
			t.Fatalf("Timestamp mismatch at %d", i)
		}
	}

	if _, err := s.WithValues([]float64{1, 2}, ""); err == nil {
		t.Error("Expected error for mismatched value count")
	}
}
