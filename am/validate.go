package am

import (
	"strings"

	"github.com/teranos/argx/errors"
	"github.com/teranos/argx/logger"
)

// Validate checks that the configuration is valid
func (c *Config) Validate() error {
	// Workers: 0 = one per CPU, negative = invalid
	if c.Solver.Workers < 0 {
		return errors.Newf("solver.workers must be >= 0, got %d", c.Solver.Workers)
	}

	// Timeout: 0 = no limit, negative = invalid
	if c.Solver.TimeoutSeconds < 0 {
		return errors.Newf("solver.timeout_seconds must be >= 0, got %d", c.Solver.TimeoutSeconds)
	}
	if c.Solver.ProgressIntervalMillis < 0 {
		return errors.Newf("solver.progress_interval_ms must be >= 0, got %d", c.Solver.ProgressIntervalMillis)
	}

	if c.Output.Write && strings.TrimSpace(c.Output.Dir) == "" {
		return errors.WithHint(
			errors.New("output.dir cannot be empty when output.write is enabled"),
			"set output.dir or disable output.write")
	}

	if c.Log.Theme != "" && !validTheme(c.Log.Theme) {
		return errors.WithHintf(
			errors.Newf("log.theme %q is not a known theme", c.Log.Theme),
			"use one of: %s", strings.Join(logger.Themes, ", "))
	}

	return nil
}

func validTheme(theme string) bool {
	for _, t := range logger.Themes {
		if t == theme {
			return true
		}
	}
	return false
}
