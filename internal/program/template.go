// Package program implements the four-wave periodization scheme: the
// static wave/week template, warmup and work-set generation, and the
// training-max revision that feeds the next cycle.
package program

// Scheme is one prescribed set within a week: a fraction of the
// training max and a rep target.
type Scheme struct {
	Ratio float64
	Reps  int
}

// Protocol is one training day's ordered work-set schemes.
type Protocol []Scheme

// Wave is a four-week block: three working weeks followed by the deload.
type Wave [4]Protocol

// DeloadWeek is the fixed light week shared by every wave.
var DeloadWeek = Protocol{{0.40, 5}, {0.50, 5}, {0.60, 5}}

// Template is the full four-wave scheme. The ratios and rep targets are
// the domain contract: generation, reconciliation, and the top-set
// search all depend on these exact numbers. Built once, never mutated.
var Template = [4]Wave{
	// Wave 1 (10s)
	{
		{{0.60, 10}, {0.60, 10}, {0.60, 10}, {0.60, 10}, {0.60, 10}},
		{{0.55, 5}, {0.625, 5}, {0.675, 10}, {0.675, 10}, {0.675, 10}},
		{{0.50, 5}, {0.60, 3}, {0.70, 1}, {0.75, 10}},
		DeloadWeek,
	},
	// Wave 2 (8s)
	{
		{{0.65, 8}, {0.65, 8}, {0.65, 8}, {0.65, 8}, {0.65, 8}},
		{{0.60, 3}, {0.675, 3}, {0.725, 8}, {0.725, 8}, {0.725, 8}},
		{{0.50, 5}, {0.60, 3}, {0.70, 2}, {0.75, 1}, {0.80, 8}},
		DeloadWeek,
	},
	// Wave 3 (5s)
	{
		{{0.70, 5}, {0.70, 5}, {0.70, 5}, {0.70, 5}, {0.70, 5}, {0.70, 5}},
		{{0.65, 2}, {0.725, 2}, {0.775, 5}, {0.775, 5}, {0.775, 5}, {0.775, 5}},
		{{0.50, 5}, {0.60, 3}, {0.70, 2}, {0.75, 1}, {0.80, 1}, {0.85, 5}},
		DeloadWeek,
	},
	// Wave 4 (3s)
	{
		{{0.75, 3}, {0.75, 3}, {0.75, 3}, {0.75, 3}, {0.75, 3}, {0.75, 3}, {0.75, 3}},
		{{0.70, 1}, {0.775, 1}, {0.825, 3}, {0.825, 3}, {0.825, 3}},
		{{0.50, 5}, {0.60, 3}, {0.70, 2}, {0.75, 1}, {0.80, 1}, {0.85, 1}, {0.90, 3}},
		DeloadWeek,
	},
}

// ExpectedTopSetReps is the rep target of each wave's top set, indexed
// by wave number (1-4). Used when revising training maxes.
var ExpectedTopSetReps = [4]int{10, 8, 5, 3}

// ProtocolFor returns the template entry for a wave and week, both 1-4.
func ProtocolFor(wave, week int) (Protocol, error) {
	if wave < 1 || wave > 4 {
		return nil, &RangeError{Field: "wave", Value: wave}
	}
	if week < 1 || week > 4 {
		return nil, &RangeError{Field: "week", Value: week}
	}
	return Template[wave-1][week-1], nil
}

// TopSetRatio returns the heaviest ratio of a wave's third week, the
// basis for locating top sets in workout history.
func TopSetRatio(wave int) (float64, error) {
	if wave < 1 || wave > 4 {
		return 0, &RangeError{Field: "wave", Value: wave}
	}
	week3 := Template[wave-1][2]
	return week3[len(week3)-1].Ratio, nil
}

// RangeError reports a wave or week number outside 1-4.
type RangeError struct {
	Field string
	Value int
}

func (e *RangeError) Error() string {
	return e.Field + " must be between 1 and 4"
}
