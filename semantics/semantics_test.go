package semantics

import (
	"fmt"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/teranos/argx/af"
	"github.com/teranos/argx/errors"
)

func framework(t *testing.T, args []af.Argument, attacks ...af.Attack) *af.Framework {
	t.Helper()
	fw, err := af.New(args, attacks)
	require.NoError(t, err)
	return fw
}

func labels(exts []af.Extension) []string {
	return af.Strings(exts)
}

func TestExtensions(t *testing.T) {
	tests := []struct {
		name     string
		args     []af.Argument
		attacks  []af.Attack
		stable   []string
		complete []string
	}{
		{
			name:     "empty framework",
			stable:   []string{"[]"},
			complete: []string{"[]"},
		},
		{
			name:     "mutual attack",
			args:     []af.Argument{"a", "b"},
			attacks:  []af.Attack{{From: "a", To: "b"}, {From: "b", To: "a"}},
			stable:   []string{"[a]", "[b]"},
			complete: []string{"[]", "[a]", "[b]"},
		},
		{
			name:     "odd cycle",
			args:     []af.Argument{"a", "b", "c"},
			attacks:  []af.Attack{{From: "a", To: "b"}, {From: "b", To: "c"}, {From: "c", To: "a"}},
			stable:   []string{},
			complete: []string{"[]"},
		},
		{
			name:     "self-attack",
			args:     []af.Argument{"a"},
			attacks:  []af.Attack{{From: "a", To: "a"}},
			stable:   []string{},
			complete: []string{"[]"},
		},
		{
			name:     "unattacked reinstates",
			args:     []af.Argument{"a", "b", "c"},
			attacks:  []af.Attack{{From: "a", To: "b"}, {From: "b", To: "c"}},
			stable:   []string{"[a,c]"},
			complete: []string{"[a,c]"},
		},
		{
			name:     "isolated arguments",
			args:     []af.Argument{"x", "y"},
			stable:   []string{"[x,y]"},
			complete: []string{"[x,y]"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fw := framework(t, tt.args, tt.attacks...)

			assert.Equal(t, tt.stable, labels(StableExtensions(fw)))
			assert.Equal(t, tt.complete, labels(CompleteExtensions(fw)))

			viaDispatch, err := Extensions(fw, Complete)
			require.NoError(t, err)
			assert.Equal(t, tt.complete, labels(viaDispatch))
		})
	}
}

func TestExtensionsUnknownSemantics(t *testing.T) {
	fw := framework(t, []af.Argument{"a"})

	_, err := Extensions(fw, Semantics("grounded"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrUnknownSemantics))
}

func TestParse(t *testing.T) {
	for _, in := range []string{"stable", "STABLE", "st", " St "} {
		got, err := Parse(in)
		require.NoError(t, err, in)
		assert.Equal(t, Stable, got)
	}
	for _, in := range []string{"complete", "co", "CO"} {
		got, err := Parse(in)
		require.NoError(t, err, in)
		assert.Equal(t, Complete, got)
	}

	_, err := Parse("preferred")
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrUnknownSemantics))
	assert.Contains(t, errors.FlattenHints(err), "stable, complete")

	_, err = Parse("")
	assert.True(t, errors.Is(err, errors.ErrUnknownSemantics), "there is no default semantics")
}

func TestParseProblem(t *testing.T) {
	tests := []struct {
		code string
		want Problem
	}{
		{"SE-ST", Problem{TaskEnumerate, Stable}},
		{"SE-CO", Problem{TaskEnumerate, Complete}},
		{"dc-st", Problem{TaskCredulous, Stable}},
		{"DC-CO", Problem{TaskCredulous, Complete}},
		{"DS-ST", Problem{TaskSkeptical, Stable}},
		{" ds-co ", Problem{TaskSkeptical, Complete}},
	}
	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			got, err := ParseProblem(tt.code)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	for _, bad := range []string{"", "SE", "SE-PR", "EE-ST", "SE_ST", "SE-ST-X"} {
		t.Run("rejects "+bad, func(t *testing.T) {
			_, err := ParseProblem(bad)
			require.Error(t, err)
			assert.True(t, errors.Is(err, errors.ErrUnknownProblem))
		})
	}

	assert.Len(t, Problems(), 6)
	assert.Equal(t, "DS-CO", Problem{TaskSkeptical, Complete}.String())
	assert.True(t, Problem{TaskCredulous, Stable}.IsDecision())
	assert.False(t, Problem{TaskEnumerate, Stable}.IsDecision())
}

func TestAcceptance(t *testing.T) {
	fw := framework(t, []af.Argument{"a", "b", "c"}, af.Attack{From: "a", To: "b"}, af.Attack{From: "b", To: "a"})
	ac := fw.Extension(mustSet(t, fw, "a", "c"))
	bc := fw.Extension(mustSet(t, fw, "b", "c"))

	assert.Equal(t, []af.Argument{"a", "b", "c"}, Credulous([]af.Extension{ac, bc}))
	assert.Equal(t, []af.Argument{"c"}, Skeptical([]af.Extension{ac, bc}))

	t.Run("no extensions accept nothing", func(t *testing.T) {
		assert.Empty(t, Credulous(nil))
		assert.Empty(t, Skeptical(nil))
		assert.NotNil(t, Skeptical(nil))
	})

	t.Run("only the empty extension", func(t *testing.T) {
		empty := []af.Extension{fw.Extension(0)}
		assert.Empty(t, Credulous(empty))
		assert.Empty(t, Skeptical(empty))
	})

	t.Run("from the framework", func(t *testing.T) {
		cred, err := CredulousSet(fw, Stable)
		require.NoError(t, err)
		assert.Equal(t, []af.Argument{"a", "b", "c"}, cred)

		skep, err := SkepticalSet(fw, Complete)
		require.NoError(t, err)
		assert.Equal(t, []af.Argument{"c"}, skep)

		_, err = SkepticalSet(fw, Semantics("preferred"))
		assert.True(t, errors.Is(err, errors.ErrUnknownSemantics))
	})
}

func mustSet(t *testing.T, fw *af.Framework, args ...af.Argument) af.Set {
	t.Helper()
	s, err := fw.SetOf(args...)
	require.NoError(t, err)
	return s
}

// randomFramework builds n arguments a0..a(n-1) with each ordered pair
// (self-attacks included) attacking with probability p.
func randomFramework(t *testing.T, r *rand.Rand, n int, p float64) *af.Framework {
	t.Helper()
	args := make([]af.Argument, n)
	for i := range args {
		args[i] = af.Argument(fmt.Sprintf("a%d", i))
	}
	var attacks []af.Attack
	for _, from := range args {
		for _, to := range args {
			if r.Float64() < p {
				attacks = append(attacks, af.Attack{From: from, To: to})
			}
		}
	}
	return framework(t, args, attacks...)
}

func TestProperties(t *testing.T) {
	r := rand.New(rand.NewPCG(7, 42))

	for round := 0; round < 60; round++ {
		fw := randomFramework(t, r, 1+r.IntN(6), 0.25)

		stable := StableExtensions(fw)
		complete := CompleteExtensions(fw)

		for _, e := range stable {
			assert.True(t, fw.IsConflictFree(e.Set()), "stable %s is conflict-free", e)
			assert.Equal(t, fw.Universe()&^e.Set(), fw.AttackedBy(e.Set())&^e.Set(),
				"stable %s attacks everything outside it", e)
			assert.True(t, IsComplete(fw, e.Set()), "stable %s is complete", e)
		}

		for _, e := range complete {
			assert.True(t, fw.IsConflictFree(e.Set()))
			for x := range e.Set().All() {
				assert.True(t, fw.Defends(x, e.Set()), "member %s of %s is defended", fw.Label(x), e)
			}
			for x := 0; x < fw.Len(); x++ {
				if fw.Defends(x, e.Set()) {
					assert.True(t, e.Set().Has(x), "%s defends %s so must contain it", e, fw.Label(x))
				}
			}
		}

		// no duplicates, ascending counter order
		for _, exts := range [][]af.Extension{stable, complete} {
			for i := 1; i < len(exts); i++ {
				assert.Less(t, exts[i-1].Set(), exts[i].Set())
			}
		}

		// at least one complete extension always exists
		assert.NotEmpty(t, complete)

		cred := Credulous(stable)
		skep := Skeptical(stable)
		for _, a := range skep {
			assert.Contains(t, cred, a, "skeptical is a subset of credulous")
		}

		// credulous acceptance only grows as extensions are added
		for _, exts := range [][]af.Extension{stable, complete} {
			all := Credulous(exts)
			for k := 0; k <= len(exts); k++ {
				for _, a := range Credulous(exts[:k]) {
					assert.Contains(t, all, a, "credulous over %d of %d extensions", k, len(exts))
				}
			}
		}

		// repeated computations agree
		assert.Equal(t, labels(stable), labels(StableExtensions(fw)))
		assert.Equal(t, labels(complete), labels(CompleteExtensions(fw)))
		assert.ElementsMatch(t, labels(complete), labels(CompleteExtensions(fw)))
	}
}
