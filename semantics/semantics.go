// Package semantics decides which subsets of an argumentation framework are
// stable or complete extensions, and aggregates extensions into credulous and
// skeptical acceptance.
//
// The finders are brute force: every one of the 2^n candidate subsets is
// tested against the semantics predicate. Solver runs the same search over
// contiguous slices of the candidate space in parallel and honours context
// cancellation; Stable and Complete are the plain sequential forms.
package semantics

import (
	"strings"

	"github.com/teranos/argx/af"
	"github.com/teranos/argx/errors"
)

// Semantics selects the acceptability criterion.
type Semantics string

const (
	Stable   Semantics = "stable"
	Complete Semantics = "complete"
)

// All lists the supported semantics in display order.
var All = []Semantics{Stable, Complete}

// Parse resolves a semantics selector. Full names and the two-letter problem
// abbreviations (st, co) are accepted, case-insensitively. Anything else is
// ErrUnknownSemantics; there is no default.
func Parse(s string) (Semantics, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "stable", "st":
		return Stable, nil
	case "complete", "co":
		return Complete, nil
	}
	err := errors.Wrapf(errors.ErrUnknownSemantics, "%q", s)
	return "", errors.WithHint(err, "allowed semantics: stable, complete")
}

// Abbrev returns the two-letter problem code suffix ("ST" or "CO").
func (s Semantics) Abbrev() string {
	switch s {
	case Stable:
		return "ST"
	case Complete:
		return "CO"
	}
	return strings.ToUpper(string(s))
}

func (s Semantics) String() string { return string(s) }

// predicate reports whether a candidate set is an extension.
type predicate func(fw *af.Framework, s af.Set) bool

func predicateFor(sem Semantics) (predicate, error) {
	switch sem {
	case Stable:
		return IsStable, nil
	case Complete:
		return IsComplete, nil
	}
	_, err := Parse(string(sem))
	return nil, err
}

// IsStable reports whether s is conflict-free and attacks every argument
// outside itself.
func IsStable(fw *af.Framework, s af.Set) bool {
	if !fw.IsConflictFree(s) {
		return false
	}
	outside := fw.Universe() &^ s
	return outside.SubsetOf(fw.AttackedBy(s))
}

// IsComplete reports whether s is admissible and contains every argument it
// defends.
func IsComplete(fw *af.Framework, s af.Set) bool {
	if !fw.IsConflictFree(s) {
		return false
	}
	defended := fw.DefendedBy(s)
	// admissible: every member is defended
	if !s.SubsetOf(defended) {
		return false
	}
	// closed: nothing defended is left out
	return defended.SubsetOf(s)
}

// StableExtensions returns every stable extension in enumeration order. The
// result is non-nil even when empty.
func StableExtensions(fw *af.Framework) []af.Extension {
	return collect(fw, IsStable)
}

// CompleteExtensions returns every complete extension in enumeration order.
// The empty set appears only when it satisfies the predicate itself.
func CompleteExtensions(fw *af.Framework) []af.Extension {
	return collect(fw, IsComplete)
}

// Extensions dispatches to the finder for sem.
func Extensions(fw *af.Framework, sem Semantics) ([]af.Extension, error) {
	accept, err := predicateFor(sem)
	if err != nil {
		return nil, err
	}
	return collect(fw, accept), nil
}

func collect(fw *af.Framework, accept predicate) []af.Extension {
	exts := make([]af.Extension, 0)
	for s := range af.Subsets(fw.Len()) {
		if accept(fw, s) {
			exts = append(exts, fw.Extension(s))
		}
	}
	return exts
}
