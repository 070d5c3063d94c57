// Package display renders solver results: the one-extension-per-line text
// format, YES/NO verdicts, result files, and JSON documents.
package display

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/pterm/pterm"

	"github.com/teranos/argx/af"
	"github.com/teranos/argx/errors"
	"github.com/teranos/argx/semantics"
)

// Result is the JSON shape of a solved problem.
type Result struct {
	RunID      string         `json:"run_id,omitempty"`
	Problem    string         `json:"problem"`
	Semantics  string         `json:"semantics"`
	File       string         `json:"file"`
	Arguments  int            `json:"arguments"`
	Attacks    int            `json:"attacks"`
	Extensions []af.Extension `json:"extensions,omitempty"`
	Count      *int           `json:"count,omitempty"`
	Credulous  []af.Argument  `json:"credulous,omitempty"`
	Skeptical  []af.Argument  `json:"skeptical,omitempty"`
	Argument   string         `json:"argument,omitempty"`
	Answer     string         `json:"answer,omitempty"`
	DurationMS int64          `json:"duration_ms"`
	OutputFile string         `json:"output_file,omitempty"`
}

// NewResult flattens a solver result for display.
func NewResult(file string, fw *af.Framework, res *semantics.Result) Result {
	r := Result{
		Problem:    res.Problem.String(),
		Semantics:  res.Problem.Semantics.String(),
		File:       file,
		Arguments:  fw.Len(),
		Attacks:    len(fw.Attacks()),
		DurationMS: res.Duration.Milliseconds(),
	}
	if res.Verdict != nil {
		r.Argument = string(res.Verdict.Argument)
		r.Answer = res.Verdict.Answer()
		return r
	}

	r.Extensions = res.Extensions
	n := len(res.Extensions)
	r.Count = &n
	r.Credulous = semantics.Credulous(res.Extensions)
	r.Skeptical = semantics.Skeptical(res.Extensions)
	return r
}

// Lines returns the text form of a result: one "[a,b]" line per extension,
// or a single YES/NO line for decision problems.
func Lines(res *semantics.Result) []string {
	if res.Verdict != nil {
		return []string{res.Verdict.Answer()}
	}
	return af.Strings(res.Extensions)
}

// ResultFileName names the file a result is written to: "<name>_st.txt" and
// "<name>_co.txt" for enumeration, "<name>_<problem>.txt" (lowercase) for
// decisions.
func ResultFileName(name string, p semantics.Problem) string {
	if p.IsDecision() {
		return fmt.Sprintf("%s_%s.txt", name, strings.ToLower(p.String()))
	}
	return fmt.Sprintf("%s_%s.txt", name, strings.ToLower(p.Semantics.Abbrev()))
}

// WriteResultFile writes lines to dir/ResultFileName(name, p), creating dir
// as needed, and returns the path written.
func WriteResultFile(dir, name string, p semantics.Problem, lines []string) (string, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", errors.Wrapf(err, "failed to create output directory %s", dir)
	}
	path := filepath.Join(dir, ResultFileName(name, p))

	var b strings.Builder
	for _, l := range lines {
		b.WriteString(l)
		b.WriteByte('\n')
	}
	if err := os.WriteFile(path, []byte(b.String()), 0644); err != nil {
		return "", errors.Wrapf(err, "failed to write result file %s", path)
	}
	return path, nil
}

// PrintLines writes each line to w.
func PrintLines(w io.Writer, lines []string) error {
	for _, l := range lines {
		if _, err := fmt.Fprintln(w, l); err != nil {
			return err
		}
	}
	return nil
}

// Summary renders a one-line colored description of r for the terminal.
func Summary(r Result) string {
	head := pterm.LightCyan(r.Problem) + " " + pterm.Gray(r.File)
	stats := fmt.Sprintf("%d arguments, %d attacks, %dms", r.Arguments, r.Attacks, r.DurationMS)

	var outcome string
	switch {
	case r.Answer == "YES":
		outcome = pterm.Green(fmt.Sprintf("%s: YES", r.Argument))
	case r.Answer == "NO":
		outcome = pterm.Red(fmt.Sprintf("%s: NO", r.Argument))
	case r.Count != nil && *r.Count == 0:
		outcome = pterm.Yellow("no extensions")
	case r.Count != nil && *r.Count == 1:
		outcome = pterm.Cyan("1 extension")
	case r.Count != nil:
		outcome = pterm.Cyan(fmt.Sprintf("%d extensions", *r.Count))
	}
	return fmt.Sprintf("%s  %s  (%s)", head, outcome, stats)
}
