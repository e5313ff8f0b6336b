package sync

import (
	"github.com/claude/juggsync/internal/config"
	"github.com/claude/juggsync/internal/hevy"
	"github.com/claude/juggsync/internal/program"
	"github.com/claude/juggsync/internal/units"
)

// Revision is one lift's proposed training-max change, computed from
// observed top-set performance. Nothing is persisted until the caller
// confirms and applies it.
type Revision struct {
	Lift         config.Lift
	OldTM        float64
	NewTM        float64
	TopSetWeight float64
	ExpectedReps int
	ActualReps   int
}

// liftIncrement is the per-lift linear progression step in pounds.
func liftIncrement(l config.Lift) float64 {
	switch l {
	case config.Squat:
		return program.SquatIncrement
	case config.Deadlift:
		return program.DeadliftIncrement
	case config.Bench:
		return program.BenchIncrement
	default:
		return program.OHPIncrement
	}
}

// ComputeRevisions locates each lift's top set in workout history and
// derives the next training maxes. All four lifts must resolve; a
// partial revision set would leave the program inconsistent across
// lifts, so any miss fails the whole computation.
func ComputeRevisions(cfg *config.Config, wave int, workouts []hevy.Workout) ([]Revision, error) {
	topSetReps, err := LocateTopSets(cfg, wave, workouts)
	if err != nil {
		return nil, err
	}

	ratio, err := program.TopSetRatio(wave)
	if err != nil {
		return nil, err
	}
	expectedReps := program.ExpectedTopSetReps[wave-1]

	revisions := make([]Revision, 0, 4)
	for _, lift := range config.AllLifts() {
		oldTM := cfg.LiftConfig(lift).TrainingMax
		topSetWeight, err := units.RoundToGrid(oldTM*ratio, RoundPrecision)
		if err != nil {
			return nil, err
		}

		actual := topSetReps[lift]
		revisions = append(revisions, Revision{
			Lift:         lift,
			OldTM:        oldTM,
			NewTM: program.NextTrainingMax(
				oldTM, topSetWeight, expectedReps, actual,
				liftIncrement(lift), program.DefaultOneRepMaxCap,
			),
			TopSetWeight: topSetWeight,
			ExpectedReps: expectedReps,
			ActualReps:   actual,
		})
	}
	return revisions, nil
}

// ApplyRevisions writes the revised training maxes into the config.
// The caller is responsible for persisting it afterwards.
func ApplyRevisions(cfg *config.Config, revisions []Revision) {
	for _, rev := range revisions {
		cfg.LiftConfig(rev.Lift).TrainingMax = rev.NewTM
	}
}
