package am

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// SetDefaults configures default values for all configuration options
func SetDefaults(v *viper.Viper) {
	// Solver defaults
	v.SetDefault("solver.workers", 0) // one per CPU
	v.SetDefault("solver.timeout_seconds", 0)
	v.SetDefault("solver.progress_interval_ms", DefaultProgressInterval)

	// Output defaults
	v.SetDefault("output.dir", DefaultOutputDir)
	v.SetDefault("output.write", true)
	v.SetDefault("output.json", false)

	// Database defaults (empty path resolves to ~/.argx/history.db)
	v.SetDefault("database.path", "")
	v.SetDefault("database.record", true)

	// Logging defaults
	v.SetDefault("log.theme", DefaultLogTheme)
	v.SetDefault("log.json", false)
}

// BindEnvVars binds the settings most often overridden in scripts to
// explicit environment variable names.
func BindEnvVars(v *viper.Viper) {
	v.BindEnv("database.path", "ARGX_DATABASE_PATH")
	v.BindEnv("output.dir", "ARGX_OUTPUT_DIR")
	v.BindEnv("solver.workers", "ARGX_WORKERS")
	v.BindEnv("log.theme", "ARGX_LOG_THEME")
}

// UserDir returns ~/.argx, or "" when the home directory is unknown.
func UserDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".argx")
}

// GetDatabasePath returns the history database path with ~ expanded.
func (c *Config) GetDatabasePath() string {
	p := c.Database.Path
	if p == "" {
		if dir := UserDir(); dir != "" {
			return filepath.Join(dir, DefaultDatabaseFile)
		}
		return DefaultDatabaseFile
	}
	if strings.HasPrefix(p, "~/") {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, p[2:])
		}
	}
	return p
}

// GetOutputDir returns the result directory (default: outputs/results)
func (c *Config) GetOutputDir() string {
	if c.Output.Dir == "" {
		return DefaultOutputDir
	}
	return c.Output.Dir
}

// GetLogTheme returns the console log theme (default: everforest)
func (c *Config) GetLogTheme() string {
	if c.Log.Theme == "" {
		return DefaultLogTheme
	}
	return c.Log.Theme
}

// Timeout returns the solver time limit; zero means none.
func (c *Config) Timeout() time.Duration {
	return time.Duration(c.Solver.TimeoutSeconds) * time.Second
}

// ProgressInterval returns how often a running search may log progress.
func (c *Config) ProgressInterval() time.Duration {
	if c.Solver.ProgressIntervalMillis <= 0 {
		return DefaultProgressInterval * time.Millisecond
	}
	return time.Duration(c.Solver.ProgressIntervalMillis) * time.Millisecond
}

// String returns a string representation of the config
func (c *Config) String() string {
	return fmt.Sprintf("Config{Solver: {Workers: %d, Timeout: %s}, Output: %s, Database: %s}",
		c.Solver.Workers, c.Timeout(), c.GetOutputDir(), c.GetDatabasePath())
}
