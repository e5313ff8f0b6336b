package main

import (
	"bufio"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/claude/juggsync/internal/config"
	"github.com/claude/juggsync/internal/hevy"
	"github.com/claude/juggsync/internal/revlog"
	"github.com/claude/juggsync/internal/sync"
)

// Version is set at build time via -ldflags.
var Version = "dev"

func main() {
	command := flag.String("command", "program", "command to run: program, maxes, or history")
	wave := flag.Int("wave", 1, "wave of the program (1-4)")
	week := flag.Int("week", 1, "week within the wave (1-4)")
	configPath := flag.String("config", "config.yaml", "path to config file")
	showVersion := flag.Bool("version", false, "print version and exit")
	flag.Parse()

	if *showVersion {
		fmt.Println(Version)
		return
	}

	log := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	switch *command {
	case "program":
		runProgram(cfg, *wave, *week, log)
	case "maxes":
		runMaxes(cfg, *configPath, *wave, log)
	case "history":
		runHistory(log)
	default:
		fmt.Fprintf(os.Stderr, "Usage: juggsync -command program|maxes|history [-wave N] [-week N] [-config config.yaml]\n")
		flag.PrintDefaults()
		os.Exit(1)
	}
}

// runProgram pushes the generated week's routines to Hevy.
func runProgram(cfg *config.Config, wave, week int, log *slog.Logger) {
	client := hevy.NewClient(hevy.DefaultBaseURL, cfg.APIKey)
	rec := sync.NewReconciler(client, cfg, log)

	if err := rec.SyncWeek(wave, week); err != nil {
		log.Error("sync failed", "wave", wave, "week", week, "error", err)
		os.Exit(1)
	}
	log.Info("week synced", "wave", wave, "week", week)
}

// runMaxes computes training-max revisions from logged workouts, shows
// them, and writes them back only after an explicit SAVE confirmation.
func runMaxes(cfg *config.Config, configPath string, wave int, log *slog.Logger) {
	client := hevy.NewClient(hevy.DefaultBaseURL, cfg.APIKey)

	workouts, err := client.ListWorkouts()
	if err != nil {
		log.Error("failed to fetch workouts", "error", err)
		os.Exit(1)
	}

	revisions, err := sync.ComputeRevisions(cfg, wave, workouts)
	if err != nil {
		log.Error("failed to compute revisions", "wave", wave, "error", err)
		os.Exit(1)
	}

	fmt.Printf("Proposed training maxes after wave %d:\n\n", wave)
	for _, rev := range revisions {
		fmt.Printf("  %-8s %6.1f -> %6.1f  (top set %.1f x %d, expected %d)\n",
			rev.Lift, rev.OldTM, rev.NewTM, rev.TopSetWeight, rev.ActualReps, rev.ExpectedReps)
	}
	fmt.Printf("\nType SAVE to write the new maxes to %s: ", configPath)

	line, _ := bufio.NewReader(os.Stdin).ReadString('\n')
	if strings.TrimSpace(line) != "SAVE" {
		fmt.Println("Aborted. Config unchanged.")
		return
	}

	sync.ApplyRevisions(cfg, revisions)
	if err := config.Save(cfg, configPath); err != nil {
		log.Error("failed to save config", "error", err)
		os.Exit(1)
	}
	log.Info("training maxes saved", "path", configPath)

	db, err := revlog.Open(revlogDir())
	if err != nil {
		log.Warn("revision log unavailable", "error", err)
		return
	}
	defer db.Close()

	entries := make([]revlog.Entry, 0, len(revisions))
	for _, rev := range revisions {
		entries = append(entries, revlog.Entry{
			Lift:  string(rev.Lift),
			OldTM: rev.OldTM,
			NewTM: rev.NewTM,
			Wave:  wave,
		})
	}
	if err := db.Record(entries); err != nil {
		log.Warn("failed to record revisions", "error", err)
	}
}

// runHistory prints recent training-max revisions.
func runHistory(log *slog.Logger) {
	db, err := revlog.Open(revlogDir())
	if err != nil {
		log.Error("failed to open revision log", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	entries, err := db.List(20)
	if err != nil {
		log.Error("failed to list revisions", "error", err)
		os.Exit(1)
	}
	if len(entries) == 0 {
		fmt.Println("No revisions recorded yet.")
		return
	}

	for _, e := range entries {
		fmt.Printf("%s  wave %d  %-8s %6.1f -> %6.1f\n",
			e.RecordedAt.Local().Format("2006-01-02 15:04"), e.Wave, e.Lift, e.OldTM, e.NewTM)
	}
}

func revlogDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".juggsync"
	}
	return filepath.Join(home, ".juggsync")
}
