package core

import (
	"math"
	"testing"
)

func TestInterval_EmptyContainsNothing(t *testing.T) {
	tests := []struct {
		name     string
		interval Interval
	}{
		{"Default empty", EmptyInterval()},
		{"Reversed bounds", NewInterval(1, 0)},
		{"Reversed negative", NewInterval(-0.5, -3)},
		{"NaN bound", NewInterval(math.NaN(), 1)},
	}

	values := []float64{-1e300, -3, -1, -0.5, 0, 0.5, 1, 3, 1e300, math.Inf(1), math.Inf(-1)}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !tt.interval.IsEmpty() {
				t.Fatalf("Expected %v to be empty", tt.interval)
			}
			for _, x := range values {
				if tt.interval.Contains(x) {
					t.Errorf("Empty interval %v should not contain %f", tt.interval, x)
				}
			}
			if tt.interval.Size() != 0 {
				t.Errorf("Empty interval size should be 0, got %f", tt.interval.Size())
			}
		})
	}
}

func TestInterval_Membership(t *testing.T) {
	interval := NewInterval(0.001, 10)

	tests := []struct {
		x        float64
		contains bool
	}{
		{0, false},
		{0.001, true},
		{5, true},
		{10, true},
		{10.5, false},
	}

	for _, tt := range tests {
		if got := interval.Contains(tt.x); got != tt.contains {
			t.Errorf("Contains(%f): expected %t, got %t", tt.x, tt.contains, got)
		}
	}
}

func TestInterval_Clamp(t *testing.T) {
	unit := NewInterval(0, 1)
	if got := unit.Clamp(-0.2); got != 0 {
		t.Errorf("Expected 0, got %f", got)
	}
	if got := unit.Clamp(1.7); got != 1 {
		t.Errorf("Expected 1, got %f", got)
	}
	if got := unit.Clamp(0.25); got != 0.25 {
		t.Errorf("Expected 0.25, got %f", got)
	}
}

func TestInterval_ZeroValueIsNotEmpty(t *testing.T) {
	var zero Interval
	if zero.IsEmpty() || !zero.Contains(0) {
		t.Errorf("Zero value should be the degenerate range [0,0], got %v", zero)
	}
	if EmptyInterval().Contains(0) {
		t.Error("EmptyInterval should not contain 0")
	}
	if got := EmptyInterval().WithMax(5); !got.IsEmpty() {
		t.Errorf("Lowering the bound of an empty interval should stay empty, got %v", got)
	}
}
