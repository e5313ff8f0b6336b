package hevy

// SetType tags a routine set as part of the warmup ramp or the working
// prescription.
type SetType string

const (
	SetTypeWarmup SetType = "warmup"
	SetTypeNormal SetType = "normal"
)

// Set is the remote set representation. Weights are always kilograms on
// the wire regardless of the local unit.
type Set struct {
	Type     SetType `json:"type"`
	WeightKg float64 `json:"weight_kg"`
	Reps     int     `json:"reps"`
}

// Exercise is a generated main-lift exercise in a routine payload.
type Exercise struct {
	ExerciseTemplateID string `json:"exercise_template_id"`
	Notes              string `json:"notes,omitempty"`
	Sets               []Set  `json:"sets"`
}

// RoutineRequest is the body for routine creates and updates. FolderID
// is set only on creates; updates never reassign a routine's folder.
//
// Exercises mixes typed generated exercises with opaque accessory
// payloads, so it is deliberately loosely typed.
type RoutineRequest struct {
	Title     string `json:"title"`
	FolderID  *int   `json:"folder_id,omitempty"`
	Exercises []any  `json:"exercises"`
}

// Routine is a remote routine as returned by the API.
type Routine struct {
	ID       string `json:"id"`
	Title    string `json:"title"`
	FolderID *int   `json:"folder_id"`
}

// Folder is a remote routine folder.
type Folder struct {
	ID    int    `json:"id"`
	Title string `json:"title"`
}

// WorkoutSet is a performed set within workout history.
type WorkoutSet struct {
	WeightKg float64 `json:"weight_kg"`
	Reps     int     `json:"reps"`
}

// WorkoutExercise is a performed exercise within workout history.
type WorkoutExercise struct {
	ExerciseTemplateID string       `json:"exercise_template_id"`
	Sets               []WorkoutSet `json:"sets"`
}

// Workout is one entry of workout history, most recent first.
type Workout struct {
	ID        string            `json:"id"`
	Title     string            `json:"title"`
	Exercises []WorkoutExercise `json:"exercises"`
}

type foldersResponse struct {
	PageCount      int      `json:"page_count"`
	RoutineFolders []Folder `json:"routine_folders"`
}

type routinesResponse struct {
	PageCount int       `json:"page_count"`
	Routines  []Routine `json:"routines"`
}

type workoutsResponse struct {
	PageCount int       `json:"page_count"`
	Workouts  []Workout `json:"workouts"`
}
