package sync

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/claude/juggsync/internal/config"
	"github.com/claude/juggsync/internal/hevy"
	"github.com/claude/juggsync/internal/program"
	"github.com/claude/juggsync/internal/units"
)

// ErrTopSetNotFound is returned when workout history contains no set
// matching a lift's expected top-set weight. The search is a heuristic:
// if the lifter deviated from the generated prescription, the set will
// not be found even though it exists.
var ErrTopSetNotFound = errors.New("top set not found")

// weightTolerance absorbs floating-point and unit-conversion drift when
// comparing kilogram weights.
const weightTolerance = 0.01

func weightsEqual(a, b float64) bool {
	return math.Abs(a-b) < weightTolerance
}

// expectedTopSetKg computes the kilogram weight the top set should have
// been prescribed at: the grid-rounded ratio of the training max,
// converted to the remote unit.
func expectedTopSetKg(trainingMax, ratio float64) (float64, error) {
	weight, err := units.RoundToGrid(trainingMax*ratio, RoundPrecision)
	if err != nil {
		return 0, err
	}
	return units.LbsToKg(weight), nil
}

// LocateTopSets finds, per lift, the reps of the most recent set
// matching the wave's expected week-3 top-set weight. Workouts must be
// ordered most recent first; each lift stops searching independently
// once found. If any lift has no match anywhere in history the whole
// lookup fails.
func LocateTopSets(cfg *config.Config, wave int, workouts []hevy.Workout) (map[config.Lift]int, error) {
	ratio, err := program.TopSetRatio(wave)
	if err != nil {
		return nil, err
	}

	expected := make(map[config.Lift]float64, 4)
	for _, lift := range config.AllLifts() {
		kg, err := expectedTopSetKg(cfg.LiftConfig(lift).TrainingMax, ratio)
		if err != nil {
			return nil, err
		}
		expected[lift] = kg
	}

	found := make(map[config.Lift]int, 4)
	for _, workout := range workouts {
		for _, exercise := range workout.Exercises {
			for _, lift := range config.AllLifts() {
				if _, ok := found[lift]; ok {
					continue
				}
				if exercise.ExerciseTemplateID != cfg.LiftConfig(lift).ExerciseID {
					continue
				}
				if len(exercise.Sets) == 0 {
					continue
				}
				last := exercise.Sets[len(exercise.Sets)-1]
				if weightsEqual(last.WeightKg, expected[lift]) {
					found[lift] = last.Reps
				}
			}
		}
		if len(found) == len(expected) {
			break
		}
	}

	var missing []string
	for _, lift := range config.AllLifts() {
		if _, ok := found[lift]; !ok {
			missing = append(missing, string(lift))
		}
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("%w for: %s", ErrTopSetNotFound, strings.Join(missing, ", "))
	}
	return found, nil
}
