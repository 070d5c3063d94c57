package af

import (
	"encoding/json"
	"slices"
	"strings"
)

// Extension is a set of arguments accepted together by some semantics.
// Equality is set equality over labels.
type Extension struct {
	set    Set
	labels []Argument // framework's canonical labels, shared read-only
}

// Set returns the extension as a bitset over the framework's indices.
func (e Extension) Set() Set { return e.set }

// Len returns the number of members.
func (e Extension) Len() int { return e.set.Len() }

// IsEmpty reports whether the extension is the empty set.
func (e Extension) IsEmpty() bool { return e.set == 0 }

// Members returns the member labels in ascending order.
func (e Extension) Members() []Argument {
	out := make([]Argument, 0, e.set.Len())
	for i := range e.set.All() {
		out = append(out, e.labels[i])
	}
	return out
}

// Contains reports whether a is a member.
func (e Extension) Contains(a Argument) bool {
	i, ok := slices.BinarySearch(e.labels, a)
	return ok && e.set.Has(i)
}

// Equal reports set equality with o.
func (e Extension) Equal(o Extension) bool {
	return slices.Equal(e.Members(), o.Members())
}

// String renders the extension as "[a,b,c]", members sorted.
func (e Extension) String() string {
	var b strings.Builder
	b.WriteByte('[')
	for n, a := range e.Members() {
		if n > 0 {
			b.WriteByte(',')
		}
		b.WriteString(string(a))
	}
	b.WriteByte(']')
	return b.String()
}

// MarshalJSON encodes the extension as a sorted array of labels.
func (e Extension) MarshalJSON() ([]byte, error) {
	return json.Marshal(e.Members())
}

// Strings renders every extension with String.
func Strings(exts []Extension) []string {
	out := make([]string, len(exts))
	for i, e := range exts {
		out[i] = e.String()
	}
	return out
}
