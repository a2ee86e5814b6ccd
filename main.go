package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"flowboard/config"
	"flowboard/editor"
	"flowboard/export"
	"flowboard/storage"
	redisstore "flowboard/storage/redis"
	"flowboard/tui"
)

func main() {
	var (
		configPath = flag.String("config", "flowboard.yaml", "Config file path")
		redisAddr  = flag.String("redis", "", "Redis address (overrides config; empty uses in-memory storage)")
		exportDir  = flag.String("export-dir", "", "Directory for exported files (overrides config)")
		fresh      = flag.Bool("fresh", false, "Start with an empty diagram instead of the saved session")
	)

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [options]\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "An interactive column-based flowchart editor.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

	cfg, err := config.Load(*configPath)
	if err != nil {
		logger.Error("config load failed", "error", err)
		os.Exit(1)
	}
	if *redisAddr != "" {
		cfg.Redis.Addr = *redisAddr
	}
	if *exportDir != "" {
		cfg.ExportDir = *exportDir
	}

	var store editor.Store
	var loader storage.Store
	if cfg.Redis.Addr != "" {
		rs := redisstore.New(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
		defer rs.Close()
		store, loader = rs, rs
	} else {
		ms := storage.NewMemoryStore()
		store, loader = ms, ms
	}

	session := editor.NewSession(
		editor.WithHistoryLimit(cfg.HistoryLimit),
		editor.WithLogger(logger),
	)

	ctx := context.Background()
	if !*fresh {
		saved, err := loader.Load(ctx)
		switch {
		case err == nil:
			session.Load(saved)
			logger.Info("session restored", "nodes", len(saved.Nodes), "columns", len(saved.Columns))
		case errors.Is(err, storage.ErrNotSaved):
			// First run; start empty.
		default:
			logger.Warn("could not restore session", "error", err)
		}
	}

	ui := tui.New(session, store, export.DirWriter{Dir: cfg.ExportDir}, logger)
	if err := ui.Run(); err != nil {
		logger.Error("editor exited with error", "error", err)
		os.Exit(1)
	}

	if err := ui.SaveSession(ctx); err != nil {
		logger.Error("final save failed", "error", err)
		os.Exit(1)
	}
}
