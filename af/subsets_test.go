package af

import (
	"encoding/json"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSubsets(t *testing.T) {
	t.Run("zero arguments yield only the empty set", func(t *testing.T) {
		got := slices.Collect(Subsets(0))
		assert.Equal(t, []Set{0}, got)
	})

	t.Run("every subset exactly once in ascending order", func(t *testing.T) {
		got := slices.Collect(Subsets(4))
		require.Len(t, got, 16)
		for i, s := range got {
			assert.Equal(t, Set(i), s)
		}
	})

	t.Run("restartable", func(t *testing.T) {
		seq := Subsets(3)
		assert.Equal(t, slices.Collect(seq), slices.Collect(seq))
	})

	t.Run("early stop", func(t *testing.T) {
		var seen int
		for range Subsets(10) {
			seen++
			if seen == 3 {
				break
			}
		}
		assert.Equal(t, 3, seen)
	})
}

func TestPartition(t *testing.T) {
	tests := []struct {
		name      string
		n, k      int
		wantCount int
	}{
		{"single worker", 5, 1, 1},
		{"even split", 4, 4, 4},
		{"uneven split", 5, 3, 3},
		{"more workers than subsets", 1, 8, 2},
		{"empty framework", 0, 4, 1},
		{"non-positive k", 3, 0, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ranges := Partition(tt.n, tt.k)
			require.Len(t, ranges, tt.wantCount)

			var joined []Set
			for _, r := range ranges {
				assert.NotZero(t, r.Size())
				joined = append(joined, slices.Collect(r.All())...)
			}
			assert.Equal(t, slices.Collect(Subsets(tt.n)), joined)
		})
	}
}

func TestSetAll(t *testing.T) {
	s := Set(0).Add(5).Add(0).Add(2)

	assert.Equal(t, []int{0, 2, 5}, slices.Collect(s.All()))
	assert.Equal(t, 3, s.Len())
	assert.True(t, Set(0).Add(2).SubsetOf(s))
	assert.False(t, Set(0).Add(1).SubsetOf(s))
}

func TestExtension(t *testing.T) {
	fw := mustFramework(t, []Argument{"b", "a", "c"}, nil)

	ext := fw.Extension(mustSet(t, fw, "c", "a"))
	assert.Equal(t, "[a,c]", ext.String())
	assert.Equal(t, []Argument{"a", "c"}, ext.Members())
	assert.True(t, ext.Contains("c"))
	assert.False(t, ext.Contains("b"))
	assert.False(t, ext.Contains("zzz"))

	empty := fw.Extension(0)
	assert.Equal(t, "[]", empty.String())
	assert.True(t, empty.IsEmpty())

	other := mustFramework(t, []Argument{"a", "c", "x"}, nil)
	assert.True(t, ext.Equal(other.Extension(mustSet(t, other, "a", "c"))), "equality is by labels, not indices")

	data, err := json.Marshal([]Extension{ext, empty})
	require.NoError(t, err)
	assert.JSONEq(t, `[["a","c"],[]]`, string(data))

	assert.Equal(t, []string{"[a,c]", "[]"}, Strings([]Extension{ext, empty}))
}
