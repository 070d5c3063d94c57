// Package af models abstract argumentation frameworks: a finite set of
// arguments and a directed attack relation between them.
//
// A Framework is validated once by New and is immutable afterwards, so it is
// safe for concurrent read access by the solver's workers. Every argument gets
// a stable index (ascending label order) and candidate sets are bitsets over
// those indices.
package af

import (
	"fmt"
	"slices"

	"github.com/teranos/argx/errors"
)

// MaxArguments is the largest framework the subset counter can enumerate.
const MaxArguments = 62

// Argument is an opaque argument label, unique within a framework.
type Argument string

// Attack is the ordered pair (From, To): From attacks To.
type Attack struct {
	From Argument `json:"from" yaml:"from" toml:"from"`
	To   Argument `json:"to" yaml:"to" toml:"to"`
}

func (a Attack) String() string {
	return fmt.Sprintf("(%s,%s)", a.From, a.To)
}

// Framework is an immutable, validated argumentation framework.
type Framework struct {
	args    []Argument // canonical order
	index   map[Argument]int
	attacks []Attack // canonical order, no duplicates

	attackers []Set // by canonical index: who attacks i
	targets   []Set // by canonical index: whom i attacks
}

// New builds and validates a Framework.
//
// It rejects empty or duplicate argument labels, attacks that reference an
// argument missing from arguments, and frameworks larger than MaxArguments.
// Repeated attack pairs collapse into one.
func New(arguments []Argument, attacks []Attack) (*Framework, error) {
	index := make(map[Argument]int, len(arguments))
	args := make([]Argument, 0, len(arguments))
	for _, a := range arguments {
		if a == "" {
			return nil, errors.Invalidf("argument label is required")
		}
		if _, exists := index[a]; exists {
			return nil, errors.Invalidf("duplicate argument %q", a)
		}
		index[a] = -1
		args = append(args, a)
	}

	if len(args) > MaxArguments {
		err := errors.Wrapf(errors.ErrTooLarge, "%d arguments (limit %d)", len(args), MaxArguments)
		return nil, errors.WithHint(err, "brute-force enumeration visits 2^n subsets; split the framework or drop arguments")
	}

	slices.Sort(args)
	for i, a := range args {
		index[a] = i
	}

	attackers := make([]Set, len(args))
	targets := make([]Set, len(args))
	mapped := make([]Attack, 0, len(attacks))
	for _, att := range attacks {
		from, ok := index[att.From]
		if !ok {
			return nil, errors.Invalidf("attack %s references unknown argument %q", att, att.From)
		}
		to, ok := index[att.To]
		if !ok {
			return nil, errors.Invalidf("attack %s references unknown argument %q", att, att.To)
		}
		if targets[from].Has(to) {
			continue
		}
		targets[from] = targets[from].Add(to)
		attackers[to] = attackers[to].Add(from)
		mapped = append(mapped, att)
	}

	slices.SortFunc(mapped, func(a, b Attack) int {
		if d := index[a.From] - index[b.From]; d != 0 {
			return d
		}
		return index[a.To] - index[b.To]
	})

	return &Framework{
		args:      args,
		index:     index,
		attacks:   mapped,
		attackers: attackers,
		targets:   targets,
	}, nil
}

// Len returns the number of arguments.
func (f *Framework) Len() int { return len(f.args) }

// Arguments returns the arguments in canonical (sorted) order.
func (f *Framework) Arguments() []Argument { return slices.Clone(f.args) }

// Attacks returns the attack relation ordered by attacker, then target.
func (f *Framework) Attacks() []Attack { return slices.Clone(f.attacks) }

// Index returns the canonical index of a.
func (f *Framework) Index(a Argument) (int, bool) {
	i, ok := f.index[a]
	return i, ok
}

// Label returns the argument at canonical index i.
func (f *Framework) Label(i int) Argument { return f.args[i] }

// Has reports whether a belongs to the framework.
func (f *Framework) Has(a Argument) bool {
	_, ok := f.index[a]
	return ok
}

// Universe returns the set of all arguments.
func (f *Framework) Universe() Set {
	return Set(1)<<uint(len(f.args)) - 1
}

// Attackers returns the arguments attacking i.
func (f *Framework) Attackers(i int) Set { return f.attackers[i] }

// Targets returns the arguments attacked by i.
func (f *Framework) Targets(i int) Set { return f.targets[i] }

// SelfAttacking reports whether argument i attacks itself.
func (f *Framework) SelfAttacking(i int) bool { return f.targets[i].Has(i) }

// AttackedBy returns every argument attacked by some member of s.
func (f *Framework) AttackedBy(s Set) Set {
	var out Set
	for i := range s.All() {
		out |= f.targets[i]
	}
	return out
}

// IsConflictFree reports whether no member of s attacks a member of s.
// A self-attacking member is a conflict.
func (f *Framework) IsConflictFree(s Set) bool {
	for i := range s.All() {
		if f.targets[i]&s != 0 {
			return false
		}
	}
	return true
}

// Defends reports whether s defends argument x: every attacker of x is
// attacked by some member of s. An unattacked x is defended by every set.
func (f *Framework) Defends(x int, s Set) bool {
	return f.attackers[x].SubsetOf(f.AttackedBy(s))
}

// DefendedBy returns every argument defended by s.
func (f *Framework) DefendedBy(s Set) Set {
	plus := f.AttackedBy(s)
	var out Set
	for x := range f.attackers {
		if f.attackers[x].SubsetOf(plus) {
			out = out.Add(x)
		}
	}
	return out
}

// SetOf converts labels into a Set. Unknown labels yield ErrUnknownArgument.
func (f *Framework) SetOf(args ...Argument) (Set, error) {
	var s Set
	for _, a := range args {
		i, ok := f.index[a]
		if !ok {
			return 0, errors.Wrapf(errors.ErrUnknownArgument, "%q", a)
		}
		s = s.Add(i)
	}
	return s, nil
}

// Extension wraps s with the framework's labels.
func (f *Framework) Extension(s Set) Extension {
	return Extension{set: s & f.Universe(), labels: f.args}
}
