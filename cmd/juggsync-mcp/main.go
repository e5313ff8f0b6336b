package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/claude/juggsync/internal/config"
	"github.com/claude/juggsync/internal/mcp"
	"github.com/claude/juggsync/internal/revlog"
	"github.com/mark3labs/mcp-go/server"
)

// Version is set at build time via -ldflags.
var Version = "dev"

func main() {
	configPath := flag.String("config", "config.yaml", "path to config file")
	showVersion := flag.Bool("version", false, "print version and exit")
	flag.Parse()

	if *showVersion {
		fmt.Println("juggsync-mcp", Version)
		return
	}

	// Stdout carries the MCP stream, so logs go to stderr.
	log := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelInfo}))

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	var rl mcp.RevisionLog
	if home, err := os.UserHomeDir(); err == nil {
		db, err := revlog.Open(filepath.Join(home, ".juggsync"))
		if err != nil {
			log.Warn("revision log unavailable", "error", err)
		} else {
			defer db.Close()
			rl = db
		}
	}

	s := mcp.New(cfg, rl, Version, log)
	if err := server.ServeStdio(s); err != nil {
		log.Error("mcp server error", "error", err)
		os.Exit(1)
	}
}
