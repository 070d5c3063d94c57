package commands

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/teranos/argx/af"
	"github.com/teranos/argx/am"
	"github.com/teranos/argx/db"
	"github.com/teranos/argx/display"
	"github.com/teranos/argx/format"
	"github.com/teranos/argx/logger"
	"github.com/teranos/argx/semantics"
	"github.com/teranos/argx/store"
	"github.com/teranos/argx/sym"
)

// solveOptions are the flags shared by solve and watch.
type solveOptions struct {
	problem  string
	file     string
	argument string
	timeout  time.Duration
	workers  int
	outDir   string
	noWrite  bool
	noRecord bool
}

func (o *solveOptions) bind(cmd *cobra.Command) {
	f := cmd.Flags()
	f.StringVarP(&o.problem, "problem", "p", "", "Problem code: SE-ST, SE-CO, DC-ST, DC-CO, DS-ST, DS-CO")
	f.StringVarP(&o.file, "file", "f", "", "Framework file (.apx, .tgf, .toml, .yaml)")
	f.StringVarP(&o.argument, "argument", "a", "", "Query argument for DC/DS problems")
	f.DurationVar(&o.timeout, "timeout", 0, "Abort the search after this long (default from solver.timeout_seconds)")
	f.IntVar(&o.workers, "workers", 0, "Search goroutines (default from solver.workers, 0 = one per CPU)")
	f.StringVar(&o.outDir, "out", "", "Directory for result files (default from output.dir)")
	f.BoolVar(&o.noWrite, "no-write", false, "Do not write a result file")
	f.BoolVar(&o.noRecord, "no-record", false, "Do not record the run in history")
	_ = cmd.MarkFlagRequired("problem")
	_ = cmd.MarkFlagRequired("file")
}

func newSolveCmd() *cobra.Command {
	opts := &solveOptions{}
	cmd := &cobra.Command{
		Use:   "solve -p PROBLEM -f FILE [-a ARG]",
		Short: sym.Solve + " Enumerate extensions or decide acceptance",
		Long: sym.Solve + ` solve - Run one problem on one framework.

Enumeration (SE-ST, SE-CO) prints one extension per line as [a,b,c].
Decisions (DC-*, DS-*) print YES or NO for the argument given with -a.
The same lines are written to <output.dir>/<name>_<problem>.txt and the
run is recorded in history unless disabled.

Examples:
  argx solve -p SE-CO -f frameworks/cycle.apx
  argx solve -p DS-ST -f frameworks/cycle.apx -a b --timeout 30s
  argx solve -p SE-ST -f big.apx --json --no-write`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := am.Load()
			if err != nil {
				return err
			}
			_, err = runSolve(cmd.Context(), cmd, cfg, opts)
			return err
		},
	}
	opts.bind(cmd)
	return cmd
}

// runSolve parses the framework, solves, records, writes and prints one
// result. It returns the displayed result for callers that re-run it.
func runSolve(ctx context.Context, cmd *cobra.Command, cfg *am.Config, opts *solveOptions) (*display.Result, error) {
	verbosity := verbosityOf(cmd)
	ctx = logger.WithComponent(logger.WithFile(ctx, opts.file), "solve")
	log := logger.LoggerFromContext(ctx)

	problem, err := semantics.ParseProblem(opts.problem)
	if err != nil {
		return nil, err
	}
	fw, err := format.ParseFile(opts.file)
	if err != nil {
		return nil, err
	}
	log.Debugw("framework loaded",
		logger.FieldArguments, fw.Len(),
		logger.FieldAttacks, len(fw.Attacks()))

	timeout := opts.timeout
	if timeout == 0 {
		timeout = cfg.Timeout()
	}
	if timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	workers := opts.workers
	if workers == 0 {
		workers = cfg.Solver.Workers
	}
	progress := cfg.ProgressInterval()
	if !logger.ShouldOutput(verbosity, logger.OutputSearchProgress) {
		progress = 0
	}
	solver := semantics.NewSolver(semantics.SolverConfig{
		Workers:          workers,
		ProgressInterval: progress,
	}, logger.AddSearchSymbol(logger.ComponentLogger("solver")))

	arg := af.Argument(opts.argument)
	res, solveErr := solver.Solve(ctx, fw, problem, arg)

	var runID string
	if cfg.Database.Record && !opts.noRecord {
		runID = recordRun(cfg, log, store.NewRun(opts.file, fw, problem, arg, res, solveErr))
		ctx = logger.WithRunID(ctx, runID)
		log = logger.LoggerFromContext(ctx)
	}
	if solveErr != nil {
		return nil, solveErr
	}

	result := display.NewResult(opts.file, fw, res)
	result.RunID = runID
	lines := display.Lines(res)

	if cfg.Output.Write && !opts.noWrite {
		dir := opts.outDir
		if dir == "" {
			dir = cfg.GetOutputDir()
		}
		path, err := display.WriteResultFile(dir, format.Name(opts.file), problem, lines)
		if err != nil {
			return nil, err
		}
		result.OutputFile = path
	}

	if logger.ShouldOutput(verbosity, logger.OutputTiming) {
		log.Debugw("search finished",
			logger.FieldWorkers, workers,
			logger.FieldTotalCount, af.Full(fw.Len()).Size(),
			logger.FieldDurationMS, result.DurationMS)
	}
	if logger.ShouldOutput(verbosity, logger.OutputExtensionDump) {
		for i, ext := range res.Extensions {
			log.Debugw("extension", logger.FieldCount, i, logger.FieldExtensions, ext.String())
		}
	}
	logger.SolveInfow("solved", append(logger.FieldsFromContext(ctx),
		logger.FieldProblem, result.Problem,
		logger.FieldAnswer, result.Answer,
		logger.FieldDurationMS, result.DurationMS)...)

	if err := printResult(cmd, cfg, result, lines); err != nil {
		return nil, err
	}
	return &result, nil
}

// printResult writes the result lines (or JSON) to stdout and a one-line
// summary to stderr.
func printResult(cmd *cobra.Command, cfg *am.Config, result display.Result, lines []string) error {
	out := cmd.OutOrStdout()
	if wantJSON(cmd, cfg) {
		return display.OutputJSON(out, result)
	}
	if err := display.PrintLines(out, lines); err != nil {
		return err
	}
	printSummary(cmd.ErrOrStderr(), result, verbosityOf(cmd))
	return nil
}

func printSummary(w io.Writer, result display.Result, verbosity int) {
	fmt.Fprintln(w, sym.Solve+" "+display.Summary(result))
	if result.OutputFile != "" {
		fmt.Fprintln(w, "  written to "+result.OutputFile)
	}
	if result.Count != nil && logger.ShouldOutput(verbosity, logger.OutputRunSummary) {
		fmt.Fprintf(w, "  %s credulous: [%s]\n", sym.Accepted, joinArgs(result.Credulous))
		fmt.Fprintf(w, "  %s skeptical: [%s]\n", sym.Accepted, joinArgs(result.Skeptical))
	}
}

func joinArgs(args []af.Argument) string {
	parts := make([]string, len(args))
	for i, a := range args {
		parts[i] = string(a)
	}
	return strings.Join(parts, ",")
}

// wantJSON honours an explicit --json first, then ARGX_JSON, then
// output.json from config.
func wantJSON(cmd *cobra.Command, cfg *am.Config) bool {
	if f := cmd.Flags().Lookup("json"); f != nil && f.Changed {
		return display.ShouldOutputJSON(cmd)
	}
	return display.ShouldOutputJSON(cmd) || (cfg != nil && cfg.Output.JSON)
}

// recordRun stores run in history and returns its id, or "" when the run
// could not be recorded. Failures are logged only.
func recordRun(cfg *am.Config, log *zap.SugaredLogger, run *store.Run) string {
	conn, err := db.OpenWithMigrations(cfg.GetDatabasePath(), logger.AddDBSymbol(log))
	if err != nil {
		logger.SolveWarnw("history unavailable", logger.FieldDatabase, cfg.GetDatabasePath(), logger.FieldError, err)
		return ""
	}
	defer conn.Close()

	// recorded even when the solve itself was cancelled
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := store.NewRunStore(conn, log).Record(ctx, run); err != nil {
		log.Warnw("failed to record run", logger.FieldError, err)
		return ""
	}
	return run.ID
}
