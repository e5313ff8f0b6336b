package program

// DefaultOneRepMaxCap is the fraction of the estimated one-rep max that
// a revised training max may not exceed.
const DefaultOneRepMaxCap = 0.9

// Per-lift training-max increments in pounds. Upper-body lifts move in
// smaller steps.
const (
	SquatIncrement    = 5.0
	DeadliftIncrement = 5.0
	BenchIncrement    = 2.5
	OHPIncrement      = 2.5
)

// Epley1RM estimates a one-rep max from an observed weight and rep
// count: weight * reps * 0.0333 + weight.
func Epley1RM(weight float64, reps int) float64 {
	return weight*float64(reps)*0.0333 + weight
}

// NextTrainingMax revises a training max from an observed top set.
//
// The linear candidate rewards (or penalizes) rep performance against
// the target, capped at 10 reps over to keep outlier sets from causing
// runaway jumps. The result never exceeds capFraction of the Epley
// estimate for what the lifter just demonstrated.
func NextTrainingMax(oldTM, topSetWeight float64, expectedReps, actualReps int, increment, capFraction float64) float64 {
	over := actualReps - expectedReps
	if over > 10 {
		over = 10
	}
	linear := oldTM + increment*float64(over)

	ceiling := Epley1RM(topSetWeight, actualReps) * capFraction
	if linear < ceiling {
		return linear
	}
	return ceiling
}
