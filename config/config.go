package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"time"
)

type Settings struct {
	MarpPath        string `toml:"marp_path"`
	ThemeDir        string `toml:"theme_dir"`
	OutputDir       string `toml:"output_dir"`
	TimeoutSeconds  int    `toml:"timeout_seconds"`
	AllowLocalFiles bool   `toml:"allow_local_files"`
}

type Config struct {
	MarpPath        string
	ThemeDirectory  string
	OutputDirectory string
	TimeoutSeconds  int
	AllowLocalFiles bool
}

var Debug = false
var DebugLog *log.Logger

func (c *Config) ThemeDir() string {
	return ExpandPath(c.ThemeDirectory)
}

func (c *Config) OutputDir() string {
	return ExpandPath(c.OutputDirectory)
}

func (c *Config) Timeout() time.Duration {
	if c.TimeoutSeconds <= 0 {
		return 60 * time.Second
	}
	return time.Duration(c.TimeoutSeconds) * time.Second
}

func (c *Config) applyEnvOverrides() {
	if marpPath := os.Getenv("MARPMCP_MARP_PATH"); marpPath != "" {
		c.MarpPath = marpPath
	}
	if themeDir := os.Getenv("MARPMCP_THEME_DIR"); themeDir != "" {
		c.ThemeDirectory = themeDir
	}
	if outputDir := os.Getenv("MARPMCP_OUTPUT_DIR"); outputDir != "" {
		c.OutputDirectory = outputDir
	}
	if timeout := os.Getenv("MARPMCP_TIMEOUT"); timeout != "" {
		if secs, err := strconv.Atoi(timeout); err == nil && secs > 0 {
			c.TimeoutSeconds = secs
		}
	}
}

func CheckDebug() bool {
	debug := os.Getenv("MARPMCP_DEBUG")
	return debug == "true" || debug == "1"
}

// InitDebugLog opens the debug log file when MARPMCP_DEBUG is set.
// Stdout carries the MCP stdio transport, so the log always goes to a file.
func InitDebugLog() {
	if !CheckDebug() {
		return
	}

	Debug = true
	if err := EnsureDir(GetCacheDir()); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: Could not create cache directory: %v\n", err)
		return
	}
	logPath := GetDebugLogPath()

	// Create debug log with secure permissions (0600 - may contain document content)
	f, err := os.OpenFile(logPath, os.O_RDWR|os.O_CREATE|os.O_APPEND, 0600)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: Could not open debug log at %s: %v\n", logPath, err)
		return
	}

	DebugLog = log.New(f, "", log.Ldate|log.Ltime|log.Lmicroseconds|log.Lshortfile)
	DebugLog.Printf("=== Debug logging started (MARPMCP_DEBUG=%s) ===", os.Getenv("MARPMCP_DEBUG"))
	DebugLog.Printf("Log path: %s", logPath)
}

func Load() (*Config, error) {
	cfg := defaultConfig()

	settingsPath := GetSettingsFilePath()
	if FileExists(settingsPath) {
		settings, err := LoadSettings()
		if err != nil {
			return nil, fmt.Errorf("failed to load settings: %w", err)
		}
		cfg.MarpPath = settings.MarpPath
		cfg.ThemeDirectory = settings.ThemeDir
		cfg.OutputDirectory = settings.OutputDir
		cfg.TimeoutSeconds = settings.TimeoutSeconds
		cfg.AllowLocalFiles = settings.AllowLocalFiles
	} else {
		if err := CreateDefaultSettings(); err != nil {
			return nil, fmt.Errorf("failed to create settings: %w", err)
		}
	}

	cfg.applyEnvOverrides()

	outputDir := cfg.OutputDir()
	if err := os.MkdirAll(outputDir, 0700); err != nil {
		return nil, fmt.Errorf("failed to create output directory: %w", err)
	}

	themeDir := cfg.ThemeDir()
	if err := os.MkdirAll(themeDir, 0700); err != nil {
		return nil, fmt.Errorf("failed to create theme directory: %w", err)
	}

	return cfg, nil
}
