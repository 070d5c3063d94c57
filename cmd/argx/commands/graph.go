package commands

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/teranos/argx/af"
	"github.com/teranos/argx/am"
	"github.com/teranos/argx/errors"
	"github.com/teranos/argx/format"
	"github.com/teranos/argx/graph"
	"github.com/teranos/argx/logger"
	"github.com/teranos/argx/semantics"
	"github.com/teranos/argx/sym"
)

type graphOptions struct {
	file      string
	semantics string
	format    string
	out       string
	workers   int
}

func newGraphCmd() *cobra.Command {
	opts := &graphOptions{}
	cmd := &cobra.Command{
		Use:   "graph -f FILE|DIR [-s SEMANTICS]",
		Short: sym.Graph + " Render the attack graph (JSON or DOT)",
		Long: sym.Graph + ` graph - Render a framework as a node/link graph.

With -s the arguments are colored by acceptance under that semantics:
skeptical (in every extension), credulous (in some) or rejected (in none).
Given a directory, one graph is written per framework file in it.

Examples:
  argx graph -f cycle.apx
  argx graph -f cycle.apx -s complete --format dot -o cycle.dot
  argx graph -f frameworks/ -s stable -o graphs/`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := am.Load()
			if err != nil {
				return err
			}
			return runGraph(cmd, cfg, opts)
		},
	}

	f := cmd.Flags()
	f.StringVarP(&opts.file, "file", "f", "", "Framework file or directory of frameworks")
	f.StringVarP(&opts.semantics, "semantics", "s", "", "Color nodes by acceptance: stable or complete")
	f.StringVar(&opts.format, "format", "json", "Output format: json or dot")
	f.StringVarP(&opts.out, "output", "o", "", "Output file (or directory when -f is a directory)")
	f.IntVar(&opts.workers, "workers", 0, "Search goroutines (default from solver.workers)")
	_ = cmd.MarkFlagRequired("file")
	return cmd
}

func runGraph(cmd *cobra.Command, cfg *am.Config, opts *graphOptions) error {
	if opts.format != "json" && opts.format != "dot" {
		return errors.WithHint(errors.Newf("unknown graph format %q", opts.format), "use json or dot")
	}

	var sem semantics.Semantics
	if opts.semantics != "" {
		var err error
		if sem, err = semantics.Parse(opts.semantics); err != nil {
			return err
		}
	}

	info, err := os.Stat(opts.file)
	if err != nil {
		return errors.Wrapf(err, "cannot read %s", opts.file)
	}

	if !info.IsDir() {
		data, err := renderGraph(cmd.Context(), cfg, opts, opts.file, sem)
		if err != nil {
			return err
		}
		if opts.out == "" {
			_, err = cmd.OutOrStdout().Write(data)
			return err
		}
		return writeGraph(cmd, opts.out, data)
	}

	entries, err := os.ReadDir(opts.file)
	if err != nil {
		return errors.Wrapf(err, "cannot list %s", opts.file)
	}
	outDir := opts.out
	if outDir == "" {
		outDir = filepath.Join(cfg.GetOutputDir(), "graphs")
	}

	count := 0
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		path := filepath.Join(opts.file, e.Name())
		if _, err := format.Detect(path); err != nil {
			continue
		}
		data, err := renderGraph(cmd.Context(), cfg, opts, path, sem)
		if err != nil {
			return errors.Wrapf(err, "graph for %s", path)
		}
		if err := writeGraph(cmd, filepath.Join(outDir, format.Name(path)+"."+opts.format), data); err != nil {
			return err
		}
		count++
	}
	if count == 0 {
		return errors.WithHint(errors.Newf("no framework files in %s", opts.file),
			"files need one of the extensions .apx, .af, .tgf, .toml, .yaml")
	}
	return nil
}

// renderGraph builds the graph for one framework file, enumerating
// extensions first when a semantics is selected.
func renderGraph(ctx context.Context, cfg *am.Config, opts *graphOptions, path string, sem semantics.Semantics) ([]byte, error) {
	fw, err := format.ParseFile(path)
	if err != nil {
		return nil, err
	}

	title := format.Name(path)
	var exts []af.Extension
	if sem != "" {
		workers := opts.workers
		if workers == 0 {
			workers = cfg.Solver.Workers
		}
		solver := semantics.NewSolver(semantics.SolverConfig{
			Workers:          workers,
			ProgressInterval: cfg.ProgressInterval(),
		}, logger.AddSearchSymbol(logger.ComponentLogger("solver")))

		if t := cfg.Timeout(); t > 0 {
			var cancel context.CancelFunc
			ctx, cancel = context.WithTimeout(ctx, t)
			defer cancel()
		}
		if exts, err = solver.Enumerate(ctx, fw, sem); err != nil {
			return nil, err
		}
		title = fmt.Sprintf("%s (%s)", title, sem)
	}

	g := graph.NewBuilder(logger.ComponentLogger("graph")).Build(fw, exts, title)
	logger.SymbolInfow(sym.Graph, "graph built",
		logger.FieldFile, path,
		logger.FieldNodes, len(g.Nodes),
		logger.FieldLinks, len(g.Links))

	if opts.format == "dot" {
		return []byte(graph.DOT(g)), nil
	}
	var buf bytes.Buffer
	if err := graph.WriteJSON(&buf, g); err != nil {
		return nil, errors.Wrap(err, "failed to encode graph")
	}
	return buf.Bytes(), nil
}

func writeGraph(cmd *cobra.Command, path string, data []byte) error {
	if err := os.MkdirAll(filepath.Dir(path), am.DefaultDirPermissions); err != nil {
		return errors.Wrapf(err, "failed to create %s", filepath.Dir(path))
	}
	if err := os.WriteFile(path, data, am.DefaultFilePermissions); err != nil {
		return errors.Wrapf(err, "failed to write %s", path)
	}
	fmt.Fprintln(cmd.ErrOrStderr(), sym.Graph+" "+path)
	return nil
}
