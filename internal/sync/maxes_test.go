package sync

import (
	"errors"
	"math"
	"testing"

	"github.com/claude/juggsync/internal/config"
	"github.com/claude/juggsync/internal/hevy"
	"github.com/claude/juggsync/internal/program"
)

func wave3History(t *testing.T, cfg *config.Config, reps map[config.Lift]int) []hevy.Workout {
	t.Helper()
	var workouts []hevy.Workout
	for _, lift := range config.AllLifts() {
		lc := cfg.LiftConfig(lift)
		workouts = append(workouts, topSetWorkout(lc.ExerciseID, expectedKg(t, lc.TrainingMax, 0.85), reps[lift]))
	}
	return workouts
}

// TestComputeRevisions verifies the full maxes path: located reps feed
// the revision engine with wave-appropriate expected reps and per-lift
// increments.
func TestComputeRevisions(t *testing.T) {
	cfg := testConfig()
	// Wave 3 expects 5 reps on the top set.
	workouts := wave3History(t, cfg, map[config.Lift]int{
		config.Squat:    20, // huge overperformance: linear branch, rep bonus capped
		config.Bench:    15, // +10: linear branch with the smaller upper-body step
		config.Deadlift: 4,  // missed a rep: safety cap undercuts the linear candidate
		config.OHP:      8,  // +3: cap still wins at a realistic training max
	})

	revisions, err := ComputeRevisions(cfg, 3, workouts)
	if err != nil {
		t.Fatalf("ComputeRevisions returned error: %v", err)
	}
	if len(revisions) != 4 {
		t.Fatalf("got %d revisions, want 4", len(revisions))
	}

	byLift := make(map[config.Lift]Revision, 4)
	for _, rev := range revisions {
		byLift[rev.Lift] = rev
	}

	// Squat: 285 + 5*min(10, 15) = 335, below the Epley cap for 245x20.
	squat := byLift[config.Squat]
	if squat.TopSetWeight != 245 {
		t.Errorf("squat top-set weight = %v, want 245", squat.TopSetWeight)
	}
	if want := 335.0; math.Abs(squat.NewTM-want) > 0.001 {
		t.Errorf("squat NewTM = %v, want %v", squat.NewTM, want)
	}

	// Bench: 225 + 2.5*10 = 250, below the cap for 195x15.
	bench := byLift[config.Bench]
	if want := 250.0; math.Abs(bench.NewTM-want) > 0.001 {
		t.Errorf("bench NewTM = %v, want %v", bench.NewTM, want)
	}

	// Deadlift: linear candidate 360, but 90% of the 315x4 estimate is
	// lower, so the cap wins.
	deadlift := byLift[config.Deadlift]
	if want := program.Epley1RM(315, 4) * program.DefaultOneRepMaxCap; math.Abs(deadlift.NewTM-want) > 0.001 {
		t.Errorf("deadlift NewTM = %v, want cap %v", deadlift.NewTM, want)
	}

	// OHP: linear candidate 142.5, capped by 90% of the 115x8 estimate.
	ohp := byLift[config.OHP]
	if want := program.Epley1RM(115, 8) * program.DefaultOneRepMaxCap; math.Abs(ohp.NewTM-want) > 0.001 {
		t.Errorf("ohp NewTM = %v, want cap %v", ohp.NewTM, want)
	}

	for _, rev := range revisions {
		if rev.ExpectedReps != program.ExpectedTopSetReps[2] {
			t.Errorf("%s expected reps = %d, want %d", rev.Lift, rev.ExpectedReps, program.ExpectedTopSetReps[2])
		}
	}
}

// TestComputeRevisionsPropagatesNotFound verifies that a missing lift
// aborts the computation with no partial result.
func TestComputeRevisionsPropagatesNotFound(t *testing.T) {
	cfg := testConfig()
	workouts := wave3History(t, cfg, map[config.Lift]int{
		config.Squat:    7,
		config.Bench:    5,
		config.Deadlift: 4,
		config.OHP:      8,
	})[:3] // drop the OHP workout

	revisions, err := ComputeRevisions(cfg, 3, workouts)
	if !errors.Is(err, ErrTopSetNotFound) {
		t.Fatalf("error = %v, want ErrTopSetNotFound", err)
	}
	if revisions != nil {
		t.Errorf("revisions = %v, want nil on failure", revisions)
	}
}

// TestApplyRevisions verifies that applying writes the new maxes back
// into the config.
func TestApplyRevisions(t *testing.T) {
	cfg := testConfig()
	ApplyRevisions(cfg, []Revision{
		{Lift: config.Squat, OldTM: 285, NewTM: 295},
		{Lift: config.OHP, OldTM: 135, NewTM: 142.5},
	})

	if cfg.Squat.TrainingMax != 295 {
		t.Errorf("squat TM = %v, want 295", cfg.Squat.TrainingMax)
	}
	if cfg.OHP.TrainingMax != 142.5 {
		t.Errorf("ohp TM = %v, want 142.5", cfg.OHP.TrainingMax)
	}
	if cfg.Bench.TrainingMax != 225 {
		t.Errorf("bench TM = %v, want unchanged 225", cfg.Bench.TrainingMax)
	}
}
