// Package sync reconciles generated prescriptions with remote Hevy
// state: a named folder, four per-lift routines, and the reverse path
// that recovers top-set performance from workout history.
package sync

import (
	"fmt"
	"log/slog"

	"github.com/claude/juggsync/internal/config"
	"github.com/claude/juggsync/internal/hevy"
	"github.com/claude/juggsync/internal/program"
	"github.com/claude/juggsync/internal/units"
)

// RoundPrecision is the weight grid for every generated prescription.
const RoundPrecision = 5.0

// API is the slice of the Hevy client the sync paths consume.
type API interface {
	ListRoutineFolders() ([]hevy.Folder, error)
	CreateRoutineFolder(title string) (*hevy.Folder, error)
	ListRoutines() ([]hevy.Routine, error)
	CreateRoutine(req hevy.RoutineRequest) (*hevy.Routine, error)
	UpdateRoutine(id string, req hevy.RoutineRequest) (*hevy.Routine, error)
	ListWorkouts() ([]hevy.Workout, error)
}

var liftTitles = map[config.Lift]string{
	config.Squat:    "Squat Day",
	config.Bench:    "Bench Day",
	config.Deadlift: "Deadlift Day",
	config.OHP:      "OHP Day",
}

// RoutineTitle returns the remote routine title for a lift.
func RoutineTitle(l config.Lift) string {
	return liftTitles[l]
}

// Reconciler maps generated weeks onto remote routines, creating or
// updating by (title, folder) without ever deleting remote state.
type Reconciler struct {
	api API
	cfg *config.Config
	log *slog.Logger
}

// NewReconciler creates a Reconciler.
func NewReconciler(api API, cfg *config.Config, log *slog.Logger) *Reconciler {
	return &Reconciler{api: api, cfg: cfg, log: log}
}

// SyncWeek generates the four lift days for a wave/week and pushes them
// to Hevy. Remote failures abort immediately; routines already written
// in this run stay written, and a re-run reproduces the same
// create-or-update decisions.
func (r *Reconciler) SyncWeek(wave, week int) error {
	protocol, err := program.ProtocolFor(wave, week)
	if err != nil {
		return err
	}

	folderID, err := r.ensureFolder()
	if err != nil {
		return err
	}

	routines, err := r.api.ListRoutines()
	if err != nil {
		return err
	}

	notes := fmt.Sprintf("Wave %d, Week %d", wave, week)
	for _, lift := range config.AllLifts() {
		lc := r.cfg.LiftConfig(lift)

		day, err := program.GenerateDay(protocol, lc.TrainingMax, RoundPrecision, lift == config.Deadlift)
		if err != nil {
			return fmt.Errorf("generating %s day: %w", lift, err)
		}

		exercises := []any{dayToExercise(day, lc.ExerciseID, notes)}
		for _, accessory := range lc.Accessories {
			exercises = append(exercises, accessory)
		}

		if err := r.syncRoutine(routines, RoutineTitle(lift), folderID, exercises); err != nil {
			return err
		}
	}
	return nil
}

// ensureFolder resolves the target folder by exact title, creating it
// when absent. A second run finds the folder and never duplicates it.
func (r *Reconciler) ensureFolder() (int, error) {
	name := r.cfg.FolderName()

	folders, err := r.api.ListRoutineFolders()
	if err != nil {
		return 0, err
	}
	for _, f := range folders {
		if f.Title == name {
			r.log.Info("found routine folder", "title", name, "id", f.ID)
			return f.ID, nil
		}
	}

	folder, err := r.api.CreateRoutineFolder(name)
	if err != nil {
		return 0, err
	}
	r.log.Info("created routine folder", "title", name, "id", folder.ID)
	return folder.ID, nil
}

// syncRoutine updates the routine matching (title, folder) or creates
// it when absent. Updates replace the exercise list wholesale and never
// reassign the folder; only creates carry the folder assignment.
func (r *Reconciler) syncRoutine(routines []hevy.Routine, title string, folderID int, exercises []any) error {
	req := hevy.RoutineRequest{Title: title, Exercises: exercises}

	for _, routine := range routines {
		if routine.Title != title || routine.FolderID == nil || *routine.FolderID != folderID {
			continue
		}
		if _, err := r.api.UpdateRoutine(routine.ID, req); err != nil {
			return err
		}
		r.log.Info("updated routine", "title", title, "id", routine.ID)
		return nil
	}

	req.FolderID = &folderID
	created, err := r.api.CreateRoutine(req)
	if err != nil {
		return err
	}
	r.log.Info("created routine", "title", title, "id", created.ID)
	return nil
}

// dayToExercise converts a generated day into the remote exercise
// payload: warmup-typed sets for the ramp, normal-typed sets for the
// work, weights converted to kilograms.
func dayToExercise(day program.Day, exerciseID, notes string) hevy.Exercise {
	sets := make([]hevy.Set, 0, len(day.Warmups)+len(day.Work))
	for _, p := range day.Warmups {
		sets = append(sets, hevy.Set{Type: hevy.SetTypeWarmup, WeightKg: units.LbsToKg(p.Weight), Reps: p.Reps})
	}
	for _, p := range day.Work {
		sets = append(sets, hevy.Set{Type: hevy.SetTypeNormal, WeightKg: units.LbsToKg(p.Weight), Reps: p.Reps})
	}
	return hevy.Exercise{ExerciseTemplateID: exerciseID, Notes: notes, Sets: sets}
}
