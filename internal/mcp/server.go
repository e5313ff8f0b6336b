// Package mcp exposes the program generator and revision history as
// read-only MCP tools so an assistant can answer "what am I lifting
// this week" without touching remote state.
package mcp

import (
	"context"
	"log/slog"

	"github.com/claude/juggsync/internal/config"
	"github.com/claude/juggsync/internal/program"
	"github.com/claude/juggsync/internal/revlog"
	syncer "github.com/claude/juggsync/internal/sync"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// RevisionLog is the slice of the revision history consumed by tools.
// Nil-safe at the call site: list_revisions reports an error when no
// log is attached.
type RevisionLog interface {
	List(limit int) ([]revlog.Entry, error)
}

// New creates an MCP server with all tools registered.
func New(cfg *config.Config, log RevisionLog, version string, logger *slog.Logger) *server.MCPServer {
	s := server.NewMCPServer("juggsync", version,
		server.WithToolCapabilities(false),
		server.WithInstructions("Juggernaut-method training program server. Preview generated weeks, inspect training maxes, and review how maxes have been revised across waves. All tools are read-only."),
	)

	h := &handlers{cfg: cfg, revlog: log, log: logger}

	s.AddTools(
		server.ServerTool{Tool: toolPreviewWeek, Handler: h.previewWeek},
		server.ServerTool{Tool: toolGetTrainingMaxes, Handler: h.getTrainingMaxes},
		server.ServerTool{Tool: toolListRevisions, Handler: h.listRevisions},
	)

	return s
}

// handlers holds dependencies for MCP tool handlers.
type handlers struct {
	cfg    *config.Config
	revlog RevisionLog
	log    *slog.Logger
}

// --- Tool definitions ---

var toolPreviewWeek = mcp.NewTool("preview_week",
	mcp.WithDescription("Generate the four lift days for a wave and week: warmup ramp and work sets per lift, weights in lbs."),
	mcp.WithNumber("wave", mcp.Required(), mcp.Description("Wave of the program (1-4)")),
	mcp.WithNumber("week", mcp.Required(), mcp.Description("Week within the wave (1-4; week 4 is the deload)")),
)

var toolGetTrainingMaxes = mcp.NewTool("get_training_maxes",
	mcp.WithDescription("Current training max per lift (squat, bench, deadlift, ohp) in lbs."),
)

var toolListRevisions = mcp.NewTool("list_revisions",
	mcp.WithDescription("Recent training-max revisions, newest first."),
	mcp.WithNumber("limit", mcp.Description("Maximum entries to return. Defaults to 20.")),
)

// --- Tool handlers ---

// previewSet mirrors program.Prescription with JSON field names.
type previewSet struct {
	Weight float64 `json:"weight_lbs"`
	Reps   int     `json:"reps"`
}

type previewDay struct {
	Lift        string       `json:"lift"`
	TrainingMax float64      `json:"training_max"`
	Warmups     []previewSet `json:"warmups"`
	Work        []previewSet `json:"work"`
}

func toPreviewSets(prescriptions []program.Prescription) []previewSet {
	sets := make([]previewSet, len(prescriptions))
	for i, p := range prescriptions {
		sets[i] = previewSet{Weight: p.Weight, Reps: p.Reps}
	}
	return sets
}

func (h *handlers) previewWeek(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	wave, err := req.RequireInt("wave")
	if err != nil {
		return mcp.NewToolResultError("wave parameter is required"), nil
	}
	week, err := req.RequireInt("week")
	if err != nil {
		return mcp.NewToolResultError("week parameter is required"), nil
	}

	protocol, err := program.ProtocolFor(wave, week)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	days := make([]previewDay, 0, 4)
	for _, lift := range config.AllLifts() {
		lc := h.cfg.LiftConfig(lift)
		day, err := program.GenerateDay(protocol, lc.TrainingMax, syncer.RoundPrecision, lift == config.Deadlift)
		if err != nil {
			h.log.Error("mcp preview_week", "lift", lift, "error", err)
			return mcp.NewToolResultError("generation failed: " + err.Error()), nil
		}
		days = append(days, previewDay{
			Lift:        string(lift),
			TrainingMax: lc.TrainingMax,
			Warmups:     toPreviewSets(day.Warmups),
			Work:        toPreviewSets(day.Work),
		})
	}

	result, err := mcp.NewToolResultJSON(days)
	if err != nil {
		return mcp.NewToolResultError("serialization failed"), nil
	}
	return result, nil
}

func (h *handlers) getTrainingMaxes(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	maxes := make(map[string]float64, 4)
	for _, lift := range config.AllLifts() {
		maxes[string(lift)] = h.cfg.LiftConfig(lift).TrainingMax
	}

	result, err := mcp.NewToolResultJSON(maxes)
	if err != nil {
		return mcp.NewToolResultError("serialization failed"), nil
	}
	return result, nil
}

func (h *handlers) listRevisions(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	if h.revlog == nil {
		return mcp.NewToolResultError("no revision log available"), nil
	}

	limit := req.GetInt("limit", 20)
	entries, err := h.revlog.List(limit)
	if err != nil {
		h.log.Error("mcp list_revisions", "error", err)
		return mcp.NewToolResultError("query failed: " + err.Error()), nil
	}

	result, err := mcp.NewToolResultJSON(entries)
	if err != nil {
		return mcp.NewToolResultError("serialization failed"), nil
	}
	return result, nil
}
