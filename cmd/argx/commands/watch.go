package commands

import (
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/teranos/argx/am"
	"github.com/teranos/argx/logger"
	"github.com/teranos/argx/sym"
	"github.com/teranos/argx/watch"
)

func newWatchCmd() *cobra.Command {
	opts := &solveOptions{}
	var debounce time.Duration

	cmd := &cobra.Command{
		Use:   "watch -p PROBLEM -f FILE [-a ARG]",
		Short: sym.Watch + " Re-solve whenever the framework changes",
		Long: sym.Watch + ` watch - Solve once, then again every time the framework file or a
config file (user or project am.toml, --config) is saved. Stops on Ctrl-C.

Examples:
  argx watch -p SE-CO -f draft.apx
  argx watch -p DC-ST -f draft.apx -a a --no-record`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runWatch(cmd, opts, debounce)
		},
	}
	opts.bind(cmd)
	cmd.Flags().DurationVar(&debounce, "debounce", watch.DefaultDebounce, "Quiet period before re-solving")
	return cmd
}

func runWatch(cmd *cobra.Command, opts *solveOptions, debounce time.Duration) error {
	ctx := cmd.Context()
	log := logger.ChildLogger(logger.AddWatchSymbol(logger.ComponentLogger("watch")), logger.FieldFile, opts.file)
	events := logger.ShouldOutput(verbosityOf(cmd), logger.OutputWatchEvents)

	cfg, err := am.Load()
	if err != nil {
		return err
	}

	// a failing first solve is reported like a later one: watching continues
	if _, err := runSolve(ctx, cmd, cfg, opts); err != nil {
		if ctx.Err() != nil {
			return err
		}
		PrintError(cmd.ErrOrStderr(), err)
	}

	framework, err := filepath.Abs(opts.file)
	if err != nil {
		return err
	}

	// the watcher never runs two callbacks at once
	onChange := func(paths []string) {
		configChanged := false
		for _, p := range paths {
			if p != framework {
				configChanged = true
			}
		}
		if configChanged {
			am.Reset()
			fresh, err := am.Load()
			if err != nil {
				PrintError(cmd.ErrOrStderr(), err)
				return
			}
			if err := fresh.Validate(); err != nil {
				PrintError(cmd.ErrOrStderr(), err)
				return
			}
			cfg = fresh
			if events {
				logger.WatchInfow("config reloaded", logger.FieldPath, paths)
			}
		}

		if events {
			logger.WatchInfow("change detected, solving", logger.FieldFile, opts.file, logger.FieldCount, len(paths))
		}
		if _, err := runSolve(ctx, cmd, cfg, opts); err != nil {
			PrintError(cmd.ErrOrStderr(), err)
		}
	}

	w, err := watch.New(onChange, debounce, log)
	if err != nil {
		return err
	}
	if err := w.Add(framework); err != nil {
		w.Close()
		return err
	}
	for _, src := range am.ConfigPaths() {
		if _, err := os.Stat(src.Path); err == nil {
			if err := w.Add(src.Path); err != nil {
				log.Warnw("cannot watch config file", logger.FieldPath, src.Path, logger.FieldError, err)
			}
		}
	}

	log.Infow("watching", logger.FieldPath, framework, "debounce", debounce.String())
	return w.Run(ctx)
}
