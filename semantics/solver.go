package semantics

import (
	"context"
	"runtime"
	"sync/atomic"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"golang.org/x/time/rate"

	"github.com/teranos/argx/af"
	"github.com/teranos/argx/errors"
	"github.com/teranos/argx/logger"
)

const (
	// checkInterval is how many candidates a worker tests between context checks.
	checkInterval = 1 << 12

	// parallelThreshold is the smallest candidate space worth splitting.
	parallelThreshold = 1 << 14
)

// errStop ends a decision search once its answer is known.
var errStop = errors.New("search stopped early")

// SolverConfig tunes the parallel search.
type SolverConfig struct {
	Workers          int           // Number of search goroutines (<= 0 means one per CPU)
	ProgressInterval time.Duration // Minimum gap between progress log lines; 0 disables them
}

// DefaultSolverConfig returns sensible defaults.
func DefaultSolverConfig() SolverConfig {
	return SolverConfig{
		Workers:          runtime.NumCPU(),
		ProgressInterval: 2 * time.Second,
	}
}

// Solver enumerates extensions and answers decision problems. The candidate
// space is split into contiguous ranges that are scanned concurrently; results
// are stitched back in range order, so output never depends on scheduling.
type Solver struct {
	config   SolverConfig
	logger   *zap.SugaredLogger
	progress *rate.Sometimes // nil when progress logging is off
}

// NewSolver creates a solver. A nil logger discards output.
func NewSolver(cfg SolverConfig, log *zap.SugaredLogger) *Solver {
	if cfg.Workers <= 0 {
		cfg.Workers = runtime.NumCPU()
	}
	if log == nil {
		log = zap.NewNop().Sugar()
	}
	s := &Solver{config: cfg, logger: log}
	if cfg.ProgressInterval > 0 {
		s.progress = &rate.Sometimes{Interval: cfg.ProgressInterval}
	}
	return s
}

// Result is the outcome of Solve. Extensions is set for enumeration
// problems, Verdict for decision problems.
type Result struct {
	Problem    Problem        `json:"problem"`
	Extensions []af.Extension `json:"extensions,omitempty"`
	Verdict    *Verdict       `json:"verdict,omitempty"`
	Duration   time.Duration  `json:"duration_ns"`
}

// Solve runs a problem. arg is required for decision problems and ignored
// otherwise.
func (s *Solver) Solve(ctx context.Context, fw *af.Framework, p Problem, arg af.Argument) (*Result, error) {
	start := time.Now()
	res := &Result{Problem: p}

	if p.IsDecision() {
		if arg == "" {
			err := errors.Wrapf(errors.ErrMissingArgument, "%s", p)
			return nil, errors.WithHint(err, "decision problems need an argument, e.g. -a a1")
		}
		v, err := s.Decide(ctx, fw, p, arg)
		if err != nil {
			return nil, err
		}
		res.Verdict = &v
	} else {
		exts, err := s.Enumerate(ctx, fw, p.Semantics)
		if err != nil {
			return nil, err
		}
		res.Extensions = exts
	}

	res.Duration = time.Since(start)
	return res, nil
}

// Enumerate returns every extension of fw under sem, in enumeration order.
func (s *Solver) Enumerate(ctx context.Context, fw *af.Framework, sem Semantics) ([]af.Extension, error) {
	accept, err := predicateFor(sem)
	if err != nil {
		return nil, err
	}

	start := time.Now()
	ranges := s.partition(fw)
	found := make([][]af.Set, len(ranges))

	g, gctx := errgroup.WithContext(ctx)
	for i, r := range ranges {
		g.Go(func() error {
			return s.scan(gctx, fw, r, accept, func(set af.Set) bool {
				found[i] = append(found[i], set)
				return true
			})
		})
	}
	if err := g.Wait(); err != nil {
		return nil, aborted(err, sem)
	}

	exts := make([]af.Extension, 0)
	for _, sets := range found {
		for _, set := range sets {
			exts = append(exts, fw.Extension(set))
		}
	}

	s.logger.Debugw("Enumerated extensions",
		logger.FieldSemantics, sem,
		logger.FieldArguments, fw.Len(),
		logger.FieldExtensions, len(exts),
		logger.FieldWorkers, len(ranges),
		logger.FieldDurationMS, time.Since(start).Milliseconds())
	return exts, nil
}

// Decide answers a credulous or skeptical question about arg without
// materialising the extension list. The search stops at the first witness:
// an extension containing arg (credulous) or one excluding it (skeptical).
// When fw has no extensions under the semantics both answers are NO.
func (s *Solver) Decide(ctx context.Context, fw *af.Framework, p Problem, arg af.Argument) (Verdict, error) {
	if !p.IsDecision() {
		return Verdict{}, errors.Wrapf(errors.ErrUnknownProblem, "%s is not a decision problem", p)
	}
	x, ok := fw.Index(arg)
	if !ok {
		err := errors.Wrapf(errors.ErrUnknownArgument, "%q", arg)
		return Verdict{}, errors.WithHintf(err, "the framework has %d arguments", fw.Len())
	}
	accept, err := predicateFor(p.Semantics)
	if err != nil {
		return Verdict{}, err
	}

	start := time.Now()
	wantMember := p.Task == TaskCredulous
	var witness, anyExtension atomic.Bool

	ranges := s.partition(fw)
	g, gctx := errgroup.WithContext(ctx)
	for _, r := range ranges {
		g.Go(func() error {
			return s.scan(gctx, fw, r, accept, func(set af.Set) bool {
				anyExtension.Store(true)
				if set.Has(x) == wantMember {
					witness.Store(true)
					return false
				}
				return true
			})
		})
	}
	// a witness settles the answer even if cancellation raced it
	if err := g.Wait(); err != nil && !witness.Load() {
		return Verdict{}, aborted(err, p.Semantics)
	}

	accepted := witness.Load()
	if p.Task == TaskSkeptical {
		accepted = !witness.Load() && anyExtension.Load()
	}

	v := Verdict{Problem: p, Argument: arg, Accepted: accepted}
	s.logger.Debugw("Decided acceptance",
		logger.FieldProblem, p.String(),
		logger.FieldArgument, arg,
		"accepted", accepted,
		logger.FieldDurationMS, time.Since(start).Milliseconds())
	return v, nil
}

// partition picks the ranges to scan. Small frameworks run on one goroutine.
func (s *Solver) partition(fw *af.Framework) []af.Range {
	k := s.config.Workers
	if af.Full(fw.Len()).Size() < parallelThreshold {
		k = 1
	}
	return af.Partition(fw.Len(), k)
}

// scan tests every candidate in r and hands accepted ones to visit. It
// returns errStop when visit asks to stop, or the context error when the
// search is cancelled.
func (s *Solver) scan(ctx context.Context, fw *af.Framework, r af.Range, accept predicate, visit func(af.Set) bool) error {
	var n uint64
	for c := range r.All() {
		if n%checkInterval == 0 {
			if err := ctx.Err(); err != nil {
				return err
			}
			if n > 0 && s.progress != nil {
				s.progress.Do(func() {
					s.logger.Debugw("Scanning candidates",
						"range", r.String(),
						"scanned", n,
						logger.FieldTotalCount, r.Size())
				})
			}
		}
		n++
		if accept(fw, c) && !visit(c) {
			return errStop
		}
	}
	return nil
}

func aborted(err error, sem Semantics) error {
	err = errors.Mark(errors.Wrapf(err, "%s search aborted", sem), errors.ErrAborted)
	return errors.WithHint(err, "the search space doubles with every argument; raise --timeout or shrink the framework")
}
