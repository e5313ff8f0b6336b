package program

import (
	"errors"

	"github.com/claude/juggsync/internal/units"
)

// ErrEmptyProtocol is returned when a protocol has no schemes to
// generate from.
var ErrEmptyProtocol = errors.New("protocol must contain at least one scheme")

// Prescription is a single generated set: a grid-rounded weight and a
// rep target.
type Prescription struct {
	Weight float64
	Reps   int
}

// Day is one lift's full session. Warmups and work sets are kept as
// separate ordered sequences; downstream conversion tags them as
// warmup-type and normal-type sets respectively.
type Day struct {
	Warmups []Prescription
	Work    []Prescription
}

// Bar floors for the first warmup set. The deadlift starts from a
// heavier implement.
const (
	warmupFloor         = 45.0
	warmupFloorDeadlift = 65.0
)

// warmupReps is the rep sequence for warmup sets after the first.
// Generation stops early rather than reuse reps out of sequence.
var warmupReps = []int{5, 3, 2, 1, 1, 1, 1}

// DefaultWarmupSets is the number of warmup sets generated for a day.
const DefaultWarmupSets = 4

// WorkSets generates the work-set prescriptions for a protocol and
// training max, preserving protocol order.
func WorkSets(protocol Protocol, trainingMax, precision float64) ([]Prescription, error) {
	if len(protocol) == 0 {
		return nil, ErrEmptyProtocol
	}

	sets := make([]Prescription, 0, len(protocol))
	for _, s := range protocol {
		weight, err := units.RoundToGrid(trainingMax*s.Ratio, precision)
		if err != nil {
			return nil, err
		}
		sets = append(sets, Prescription{Weight: weight, Reps: s.Reps})
	}
	return sets, nil
}

// Warmups generates count warmup sets ramping from the bar floor up to
// (but never past) the first work-set weight. The first set is the
// floor at 10 reps; each subsequent set adds a linear increment of
// (workSetWeight - floor) / count and is rounded to the grid.
func Warmups(workSetWeight, precision float64, deadlift bool, count int) ([]Prescription, error) {
	floor := warmupFloor
	if deadlift {
		floor = warmupFloorDeadlift
	}
	if precision <= 0 {
		return nil, units.ErrInvalidPrecision
	}

	sets := []Prescription{{Weight: floor, Reps: 10}}
	increment := (workSetWeight - floor) / float64(count)

	weight := floor
	for i := 0; i < count-1; i++ {
		if i >= len(warmupReps) {
			break
		}
		rounded, err := units.RoundToGrid(weight+increment, precision)
		if err != nil {
			return nil, err
		}
		weight = rounded
		sets = append(sets, Prescription{Weight: weight, Reps: warmupReps[i]})
	}
	return sets, nil
}

// GenerateDay composes the warmup ramp (sized from the protocol's first
// work-set weight) with the protocol's work sets.
func GenerateDay(protocol Protocol, trainingMax, precision float64, deadlift bool) (Day, error) {
	work, err := WorkSets(protocol, trainingMax, precision)
	if err != nil {
		return Day{}, err
	}

	warmups, err := Warmups(work[0].Weight, precision, deadlift, DefaultWarmupSets)
	if err != nil {
		return Day{}, err
	}

	return Day{Warmups: warmups, Work: work}, nil
}
