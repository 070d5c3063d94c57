package semantics

import (
	"strings"

	"github.com/teranos/argx/errors"
)

// Task is the kind of question asked about a framework.
type Task string

const (
	TaskEnumerate Task = "SE" // list every extension
	TaskCredulous Task = "DC" // is the argument in some extension?
	TaskSkeptical Task = "DS" // is the argument in every extension?
)

// Problem pairs a task with a semantics, e.g. DC-ST.
type Problem struct {
	Task      Task      `json:"task"`
	Semantics Semantics `json:"semantics"`
}

// Problems lists every supported problem.
func Problems() []Problem {
	var out []Problem
	for _, task := range []Task{TaskEnumerate, TaskCredulous, TaskSkeptical} {
		for _, sem := range All {
			out = append(out, Problem{Task: task, Semantics: sem})
		}
	}
	return out
}

// ParseProblem parses a code such as "SE-CO" or "ds-st".
func ParseProblem(code string) (Problem, error) {
	task, abbrev, ok := strings.Cut(strings.ToUpper(strings.TrimSpace(code)), "-")
	if ok {
		switch Task(task) {
		case TaskEnumerate, TaskCredulous, TaskSkeptical:
			switch abbrev {
			case "ST":
				return Problem{Task: Task(task), Semantics: Stable}, nil
			case "CO":
				return Problem{Task: Task(task), Semantics: Complete}, nil
			}
		}
	}

	names := make([]string, 0, 6)
	for _, p := range Problems() {
		names = append(names, p.String())
	}
	err := errors.Wrapf(errors.ErrUnknownProblem, "%q", code)
	return Problem{}, errors.WithHintf(err, "supported problems: %s", strings.Join(names, ", "))
}

func (p Problem) String() string {
	return string(p.Task) + "-" + p.Semantics.Abbrev()
}

// IsDecision reports whether the problem asks about a single argument.
func (p Problem) IsDecision() bool {
	return p.Task == TaskCredulous || p.Task == TaskSkeptical
}
