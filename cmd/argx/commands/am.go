package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/teranos/argx/am"
	"github.com/teranos/argx/display"
	"github.com/teranos/argx/errors"
	"github.com/teranos/argx/sym"
)

func newAmCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "am",
		Short: sym.AM + " Show and edit configuration",
		Long: sym.AM + ` am - Configuration is merged from, lowest to highest:

  /etc/argx/config.toml
  ~/.argx/am.toml
  am.toml in the current directory or a parent
  --config FILE
  ARGX_* environment variables (ARGX_SOLVER_WORKERS, ARGX_OUTPUT_DIR, ...)

Examples:
  argx am show --sources
  argx am get solver.timeout_seconds
  argx am set solver.workers 4
  argx am set output.dir results --project`,
	}

	cmd.AddCommand(newAmShowCmd(), newAmGetCmd(), newAmSetCmd(), newAmValidateCmd(), newAmWhereCmd())
	return cmd
}

func newAmShowCmd() *cobra.Command {
	var (
		outFormat string
		sources   bool
	)
	cmd := &cobra.Command{
		Use:   "show",
		Short: "Print the effective configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if display.ShouldOutputJSON(cmd) {
				outFormat = "json"
			}

			var v interface{}
			if sources {
				in, err := am.GetConfigIntrospection()
				if err != nil {
					return err
				}
				v = in
			} else {
				cfg, err := am.Load()
				if err != nil {
					return err
				}
				v = cfg
			}

			data, err := am.Marshal(v, outFormat)
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(data)
			return err
		},
	}
	cmd.Flags().StringVar(&outFormat, "format", "toml", "Output format: toml, json or yaml")
	cmd.Flags().BoolVar(&sources, "sources", false, "List every setting with the file or variable it came from")
	return cmd
}

func newAmGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get KEY",
		Short: "Print one setting",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := am.Load(); err != nil {
				return err
			}
			v := am.GetViper()
			if !v.IsSet(args[0]) {
				return errors.WithHint(errors.Wrapf(errors.ErrNotFound, "setting %q", args[0]),
					"run 'argx am show' to list settings")
			}
			fmt.Fprintln(cmd.OutOrStdout(), v.Get(args[0]))
			return nil
		},
	}
}

func newAmSetCmd() *cobra.Command {
	var project bool
	cmd := &cobra.Command{
		Use:   "set KEY VALUE",
		Short: "Write a setting to the user (or project) am.toml",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := am.UserConfigPath()
			if project {
				path = "am.toml"
			}
			if path == "" {
				return errors.WithHint(errors.New("cannot determine home directory"),
					"use --project to write ./am.toml")
			}
			if err := am.Set(path, args[0], args[1]); err != nil {
				return err
			}
			abs, _ := filepath.Abs(path)
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s = %s (%s)\n", sym.AM, args[0], args[1], abs)
			return nil
		},
	}
	cmd.Flags().BoolVar(&project, "project", false, "Write ./am.toml instead of ~/.argx/am.toml")
	return cmd
}

func newAmValidateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate",
		Short: "Check the merged configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := am.Load()
			if err != nil {
				return err
			}
			if err := cfg.Validate(); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), pterm.Green(sym.Accepted+" configuration is valid"))
			return nil
		},
	}
}

func newAmWhereCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "where",
		Short: "List the config files argx reads, in precedence order",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			for _, info := range am.ConfigPaths() {
				mark := pterm.Gray("missing")
				if _, err := os.Stat(info.Path); err == nil {
					mark = pterm.Green("loaded")
				}
				fmt.Fprintf(out, "%-8s %s  %s\n", info.Source, info.Path, mark)
			}
			return nil
		},
	}
}
