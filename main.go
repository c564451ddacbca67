package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"marpmcp/config"
	"marpmcp/marp"
	"marpmcp/server"
)

const (
	Version = "v0.01.00"
	License = "Apache-2.0"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Initialize debug logging after config is loaded
	config.InitDebugLog()

	// Clean up old tmp dir in cache directory (crash recovery)
	if err := config.CleanupTempDir(); err != nil && config.DebugLog != nil {
		config.DebugLog.Printf("Warning: failed to cleanup old temp directory: %v", err)
	}

	// Create scoped temp directory in cache (never synced to cloud)
	if err := config.CreateTempDir(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create temp directory: %v\n", err)
		os.Exit(1)
	}

	// Ensure cleanup on exit
	defer func() {
		if err := config.CleanupTempDir(); err != nil && config.DebugLog != nil {
			config.DebugLog.Printf("Warning: failed to cleanup temp directory on exit: %v", err)
		}
	}()

	runner := marp.NewRunner(cfg)

	// Probe the Marp CLI up front so a missing install shows up in the log
	// before the first tool call. Absence is not fatal here.
	probeCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	version, probeErr := runner.Version(probeCtx)
	cancel()
	switch {
	case probeErr != nil && config.DebugLog != nil:
		config.DebugLog.Printf("Warning: Marp CLI probe failed: %v", probeErr)
	case probeErr == nil && config.DebugLog != nil:
		config.DebugLog.Printf("Marp CLI available: %s", version)
	}

	s := server.New(runner, Version)

	if config.DebugLog != nil {
		config.DebugLog.Printf("Starting %s %s (stdio)", server.Name, Version)
	}

	if err := server.ServeStdio(s); err != nil {
		fmt.Fprintf(os.Stderr, "Server error: %v\n", err)
		os.Exit(1)
	}
}
