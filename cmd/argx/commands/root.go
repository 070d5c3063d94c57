// Package commands implements the argx command line.
package commands

import (
	"fmt"
	"io"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/teranos/argx/am"
	"github.com/teranos/argx/errors"
	"github.com/teranos/argx/format"
	"github.com/teranos/argx/logger"
	"github.com/teranos/argx/sym"
)

// Exit codes
const (
	ExitOK      = 0
	ExitError   = 1
	ExitAborted = 2 // search cancelled or out of time
)

// NewRootCmd builds the argx command tree.
func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "argx",
		Short: "Abstract argumentation solver",
		Long: `argx - stable and complete semantics for abstract argumentation frameworks.

Frameworks are read from apx, tgf, toml or yaml files. Problems use the
ICCMA codes: SE (enumerate), DC (credulous), DS (skeptical) combined with
ST (stable) or CO (complete).

Available commands:
` + sym.Help("  ") + `
Examples:
  argx solve -p SE-ST -f cycle.apx
  argx solve -p DC-CO -f cycle.apx -a a
  argx graph -f cycle.apx -s stable --format dot | dot -Tsvg > cycle.svg
  argx history ls`,
		SilenceErrors:     true,
		SilenceUsage:      true,
		PersistentPreRunE: initialize,
	}

	root.PersistentFlags().CountP("verbose", "v", "Increase output verbosity (repeat for more detail: -v, -vv, -vvv)")
	root.PersistentFlags().String("config", "", "Config file read after the user and project am.toml")
	root.PersistentFlags().Bool("json", false, "Output JSON instead of text")
	root.PersistentFlags().Bool("log-json", false, "Write logs as JSON")

	root.AddCommand(newSolveCmd())
	root.AddCommand(newGraphCmd())
	root.AddCommand(newWatchCmd())
	root.AddCommand(newHistoryCmd())
	root.AddCommand(newAmCmd())
	root.AddCommand(newVersionCmd())

	return root
}

// initialize loads configuration and sets up the global logger before any
// command runs.
func initialize(cmd *cobra.Command, args []string) error {
	verbosity, _ := cmd.Flags().GetCount("verbose")
	logJSON, _ := cmd.Flags().GetBool("log-json")

	if path, _ := cmd.Flags().GetString("config"); path != "" {
		am.UseConfigFile(path)
	}

	// version must work even with a broken config
	if cmd.Name() == "version" {
		return logger.Initialize(logJSON, verbosity)
	}

	cfg, err := am.Load()
	if err != nil {
		return errors.Wrap(err, "failed to load config")
	}

	if err := logger.Initialize(logJSON || cfg.Log.JSON, verbosity); err != nil {
		return errors.Wrap(err, "failed to initialize logger")
	}
	logger.SetTheme(cfg.GetLogTheme())

	if logger.ShouldOutput(verbosity, logger.OutputConfig) {
		logger.Infow("config loaded",
			"sources", am.ConfigPaths(),
			logger.FieldCommand, cmd.Name(),
			"verbosity", logger.LevelName(verbosity)+": "+logger.VerbosityDescription(verbosity))
	}
	if logger.ShouldLogTrace(verbosity) {
		logger.Debugw("output categories", "shown", logger.EnabledCategoryNames(verbosity))
	}
	return nil
}

// ExitCode maps an error returned by a command to the process exit status.
func ExitCode(err error) int {
	switch {
	case err == nil:
		return ExitOK
	case errors.IsAborted(err):
		return ExitAborted
	}
	return ExitError
}

// PrintError writes err for a terminal user: parse errors with their
// source context, everything else with any hints attached.
func PrintError(w io.Writer, err error) {
	var pe *format.ParseError
	if errors.As(err, &pe) {
		fmt.Fprintln(w, pe.FormatError(format.ErrorContextTerminal))
		return
	}

	fmt.Fprintln(w, pterm.Red("Error: ")+err.Error())
	for _, hint := range errors.GetAllHints(err) {
		fmt.Fprintln(w, pterm.Yellow("Hint: ")+hint)
	}
}

// verbosityOf reads the global -v count.
func verbosityOf(cmd *cobra.Command) int {
	v, _ := cmd.Flags().GetCount("verbose")
	return v
}
