package commands

import (
	"fmt"
	"strings"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/teranos/argx/am"
	"github.com/teranos/argx/db"
	"github.com/teranos/argx/display"
	"github.com/teranos/argx/logger"
	"github.com/teranos/argx/store"
	"github.com/teranos/argx/sym"
)

func newHistoryCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "history",
		Short: sym.History + " Inspect recorded runs",
		Long: sym.History + ` history - Every solve is recorded in a SQLite database
(database.path, default ~/.argx/history.db) unless --no-record is given.

Examples:
  argx history ls --limit 5
  argx history show 3f2a      # unique id prefix is enough`,
	}

	var limit int
	ls := &cobra.Command{
		Use:   "ls",
		Short: "List recent runs, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runHistoryLs(cmd, limit)
		},
	}
	ls.Flags().IntVarP(&limit, "limit", "n", store.DefaultListLimit, "Maximum number of runs")

	show := &cobra.Command{
		Use:   "show ID",
		Short: "Show one run with its extensions",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runHistoryShow(cmd, args[0])
		},
	}

	cmd.AddCommand(ls, show)
	return cmd
}

func openRunStore(verbosity int) (*store.RunStore, *am.Config, func(), error) {
	cfg, err := am.Load()
	if err != nil {
		return nil, nil, nil, err
	}
	log := logger.ComponentLogger("history")
	conn, err := db.OpenWithMigrations(cfg.GetDatabasePath(), logger.AddDBSymbol(log))
	if err != nil {
		return nil, nil, nil, err
	}
	if logger.ShouldOutput(verbosity, logger.OutputDBStats) {
		if v, err := db.SchemaVersion(conn); err == nil {
			logger.DBDebugw("history opened", logger.FieldDatabase, cfg.GetDatabasePath(), "schema", v)
		}
	}
	return store.NewRunStore(conn, log), cfg, func() { conn.Close() }, nil
}

func runHistoryLs(cmd *cobra.Command, limit int) error {
	runs, cfg, closeFn, err := openRunStore(verbosityOf(cmd))
	if err != nil {
		return err
	}
	defer closeFn()

	list, err := runs.List(cmd.Context(), limit)
	if err != nil {
		return err
	}

	if wantJSON(cmd, cfg) {
		return display.OutputJSON(cmd.OutOrStdout(), list)
	}

	if len(list) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), sym.History+" No runs recorded")
		return nil
	}

	data := pterm.TableData{{"ID", "PROBLEM", "FILE", "RESULT", "STATUS", "MS", "CREATED"}}
	for _, r := range list {
		data = append(data, []string{
			shortID(r.ID),
			r.Problem,
			r.File,
			outcome(r),
			string(r.Status),
			fmt.Sprint(r.DurationMS),
			r.CreatedAt.Local().Format("2006-01-02 15:04:05"),
		})
	}
	table, err := pterm.DefaultTable.WithHasHeader().WithData(data).Srender()
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), table)
	fmt.Fprintf(cmd.OutOrStdout(), "\nTotal: %d run(s)\n", len(list))
	return nil
}

func runHistoryShow(cmd *cobra.Command, id string) error {
	runs, cfg, closeFn, err := openRunStore(verbosityOf(cmd))
	if err != nil {
		return err
	}
	defer closeFn()

	run, err := runs.Get(cmd.Context(), id)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if wantJSON(cmd, cfg) {
		return display.OutputJSON(out, run)
	}

	fmt.Fprintf(out, "%s Run %s\n", sym.History, run.ID)
	fmt.Fprintf(out, "  Problem:   %s (%s)\n", run.Problem, run.Semantics)
	fmt.Fprintf(out, "  File:      %s\n", run.File)
	fmt.Fprintf(out, "  Framework: %d arguments, %d attacks\n", run.Arguments, run.Attacks)
	if run.Argument != "" {
		fmt.Fprintf(out, "  Argument:  %s\n", run.Argument)
	}
	fmt.Fprintf(out, "  Status:    %s\n", run.Status)
	if run.Error != "" {
		fmt.Fprintf(out, "  Error:     %s\n", run.Error)
	}
	fmt.Fprintf(out, "  Duration:  %dms\n", run.DurationMS)
	fmt.Fprintf(out, "  Created:   %s\n", run.CreatedAt.Local().Format("2006-01-02 15:04:05"))

	if run.Answer != "" {
		fmt.Fprintf(out, "\n%s\n", run.Answer)
	}
	if run.Count != nil {
		fmt.Fprintf(out, "\n%d extension(s)\n", *run.Count)
		for _, ext := range run.Extensions {
			fmt.Fprintf(out, "[%s]\n", strings.Join(ext, ","))
		}
	}
	return nil
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

// outcome summarises a run for the table's RESULT column.
func outcome(r store.Run) string {
	switch {
	case r.Answer != "":
		return r.Argument + ": " + r.Answer
	case r.Count != nil:
		return fmt.Sprintf("%d ext", *r.Count)
	}
	return "-"
}
