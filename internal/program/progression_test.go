package program

import (
	"math"
	"testing"
)

// TestEpley1RM verifies the one-rep-max estimate.
func TestEpley1RM(t *testing.T) {
	tests := []struct {
		weight float64
		reps   int
		want   float64
	}{
		{215, 12, 300.914},
		{100, 10, 133.3},
		{100, 1, 103.33},
	}

	for _, tt := range tests {
		if got := Epley1RM(tt.weight, tt.reps); math.Abs(got-tt.want) > 0.001 {
			t.Errorf("Epley1RM(%v, %d) = %v, want %v", tt.weight, tt.reps, got, tt.want)
		}
	}
}

// TestNextTrainingMaxCapWins verifies the safety cap branch: two reps
// over target would add 10 lbs, but 90% of the demonstrated 1RM is
// lower than the linear candidate.
func TestNextTrainingMaxCapWins(t *testing.T) {
	got := NextTrainingMax(285, 215, 10, 12, 5, 0.9)
	want := Epley1RM(215, 12) * 0.9 // 270.82, below 285+10
	if math.Abs(got-want) > 0.001 {
		t.Errorf("NextTrainingMax = %v, want cap %v", got, want)
	}
}

// TestNextTrainingMaxLinearWins verifies the linear branch when the
// demonstrated 1RM leaves plenty of headroom.
func TestNextTrainingMaxLinearWins(t *testing.T) {
	got := NextTrainingMax(200, 215, 10, 12, 5, 0.9)
	if want := 210.0; math.Abs(got-want) > 0.001 {
		t.Errorf("NextTrainingMax = %v, want linear %v", got, want)
	}
}

// TestNextTrainingMaxRepBonusCapped verifies that outperformance past
// ten extra reps stops growing the linear candidate.
func TestNextTrainingMaxRepBonusCapped(t *testing.T) {
	atTen := NextTrainingMax(100, 400, 5, 15, 5, 0.9)
	atTwenty := NextTrainingMax(100, 400, 5, 25, 5, 0.9)
	if atTen != atTwenty {
		t.Errorf("rep bonus not capped: +10 reps gives %v, +20 reps gives %v", atTen, atTwenty)
	}
	if want := 150.0; atTen != want {
		t.Errorf("NextTrainingMax = %v, want %v", atTen, want)
	}
}

// TestNextTrainingMaxUnderperformance verifies that missing the rep
// target reduces the training max proportionally.
func TestNextTrainingMaxUnderperformance(t *testing.T) {
	got := NextTrainingMax(200, 215, 10, 8, 5, 0.9)
	if want := 190.0; math.Abs(got-want) > 0.001 {
		t.Errorf("NextTrainingMax = %v, want %v", got, want)
	}
}
