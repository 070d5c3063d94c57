// Package store records solver runs in SQLite so earlier results can be
// listed and inspected without recomputing them.
package store

import (
	"time"

	"github.com/teranos/argx/af"
	"github.com/teranos/argx/errors"
	"github.com/teranos/argx/semantics"
)

// Status is the outcome of a run.
type Status string

const (
	StatusOK      Status = "ok"
	StatusAborted Status = "aborted" // cancelled or timed out
	StatusFailed  Status = "failed"
)

// Run is one recorded invocation of the solver.
type Run struct {
	ID         string     `json:"id"`
	Problem    string     `json:"problem"`
	Semantics  string     `json:"semantics"`
	File       string     `json:"file"`
	Argument   string     `json:"argument,omitempty"`
	Arguments  int        `json:"arguments"`
	Attacks    int        `json:"attacks"`
	Answer     string     `json:"answer,omitempty"`
	Count      *int       `json:"count,omitempty"`      // number of extensions, enumeration only
	Extensions [][]string `json:"extensions,omitempty"` // filled by Get, not List
	DurationMS int64      `json:"duration_ms"`
	Status     Status     `json:"status"`
	Error      string     `json:"error,omitempty"`
	CreatedAt  time.Time  `json:"created_at"`
}

// NewRun describes a finished solve. res may be nil when solveErr is set.
func NewRun(file string, fw *af.Framework, p semantics.Problem, arg af.Argument, res *semantics.Result, solveErr error) *Run {
	run := &Run{
		Problem:   p.String(),
		Semantics: p.Semantics.String(),
		File:      file,
		Argument:  string(arg),
		Status:    StatusOK,
	}
	if fw != nil {
		run.Arguments = fw.Len()
		run.Attacks = len(fw.Attacks())
	}

	switch {
	case errors.IsAborted(solveErr):
		run.Status = StatusAborted
		run.Error = solveErr.Error()
		return run
	case solveErr != nil:
		run.Status = StatusFailed
		run.Error = solveErr.Error()
		return run
	}

	run.DurationMS = res.Duration.Milliseconds()
	if res.Verdict != nil {
		run.Answer = res.Verdict.Answer()
		return run
	}
	n := len(res.Extensions)
	run.Count = &n
	run.Extensions = make([][]string, n)
	for i, ext := range res.Extensions {
		members := ext.Members()
		run.Extensions[i] = make([]string, len(members))
		for j, a := range members {
			run.Extensions[i][j] = string(a)
		}
	}
	return run
}
