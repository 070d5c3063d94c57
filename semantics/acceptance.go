package semantics

import (
	"slices"

	"github.com/teranos/argx/af"
)

// Credulous returns the arguments that belong to at least one extension,
// sorted. No extensions means no credulously accepted arguments.
func Credulous(exts []af.Extension) []af.Argument {
	seen := make(map[af.Argument]struct{})
	for _, e := range exts {
		for _, a := range e.Members() {
			seen[a] = struct{}{}
		}
	}
	return sortedKeys(seen)
}

// Skeptical returns the arguments that belong to every extension, sorted.
// No extensions means no skeptically accepted arguments; the vacuous
// "every argument is in all zero extensions" reading is deliberately refused.
func Skeptical(exts []af.Extension) []af.Argument {
	if len(exts) == 0 {
		return []af.Argument{}
	}

	common := make(map[af.Argument]struct{})
	for _, a := range exts[0].Members() {
		common[a] = struct{}{}
	}
	for _, e := range exts[1:] {
		for a := range common {
			if !e.Contains(a) {
				delete(common, a)
			}
		}
	}
	return sortedKeys(common)
}

// CredulousSet enumerates the extensions of fw under sem and returns the
// credulously accepted arguments.
func CredulousSet(fw *af.Framework, sem Semantics) ([]af.Argument, error) {
	exts, err := Extensions(fw, sem)
	if err != nil {
		return nil, err
	}
	return Credulous(exts), nil
}

// SkepticalSet is CredulousSet for skeptical acceptance.
func SkepticalSet(fw *af.Framework, sem Semantics) ([]af.Argument, error) {
	exts, err := Extensions(fw, sem)
	if err != nil {
		return nil, err
	}
	return Skeptical(exts), nil
}

// Verdict answers a decision problem for one argument.
type Verdict struct {
	Problem  Problem     `json:"problem"`
	Argument af.Argument `json:"argument"`
	Accepted bool        `json:"accepted"`
}

// Answer renders the verdict as YES or NO.
func (v Verdict) Answer() string {
	if v.Accepted {
		return "YES"
	}
	return "NO"
}

func sortedKeys(m map[af.Argument]struct{}) []af.Argument {
	out := make([]af.Argument, 0, len(m))
	for a := range m {
		out = append(out, a)
	}
	slices.Sort(out)
	return out
}
