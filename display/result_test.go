package display

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/teranos/argx/af"
	"github.com/teranos/argx/semantics"
)

func mutual(t *testing.T) *af.Framework {
	t.Helper()
	fw, err := af.New([]af.Argument{"a", "b"}, []af.Attack{{From: "a", To: "b"}, {From: "b", To: "a"}})
	require.NoError(t, err)
	return fw
}

func TestResultFileName(t *testing.T) {
	tests := []struct {
		code string
		want string
	}{
		{"SE-ST", "x_st.txt"},
		{"SE-CO", "x_co.txt"},
		{"DC-ST", "x_dc-st.txt"},
		{"DS-CO", "x_ds-co.txt"},
	}
	for _, tt := range tests {
		p, err := semantics.ParseProblem(tt.code)
		require.NoError(t, err)
		assert.Equal(t, tt.want, ResultFileName("x", p))
	}
}

func TestLinesAndFiles(t *testing.T) {
	fw := mutual(t)
	exts := semantics.CompleteExtensions(fw)
	enum := &semantics.Result{Problem: semantics.Problem{Task: semantics.TaskEnumerate, Semantics: semantics.Complete}, Extensions: exts}

	lines := Lines(enum)
	assert.Equal(t, []string{"[]", "[a]", "[b]"}, lines)

	dir := filepath.Join(t.TempDir(), "outputs", "results")
	path, err := WriteResultFile(dir, "mutual", enum.Problem, lines)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "mutual_co.txt"), path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "[]\n[a]\n[b]\n", string(data))

	verdict := &semantics.Result{
		Problem: semantics.Problem{Task: semantics.TaskSkeptical, Semantics: semantics.Stable},
		Verdict: &semantics.Verdict{Argument: "a", Accepted: false},
	}
	assert.Equal(t, []string{"NO"}, Lines(verdict))

	var buf bytes.Buffer
	require.NoError(t, PrintLines(&buf, Lines(verdict)))
	assert.Equal(t, "NO\n", buf.String())

	t.Run("no extensions writes an empty file", func(t *testing.T) {
		empty := &semantics.Result{Problem: semantics.Problem{Task: semantics.TaskEnumerate, Semantics: semantics.Stable}, Extensions: []af.Extension{}}
		path, err := WriteResultFile(dir, "cycle", empty.Problem, Lines(empty))
		require.NoError(t, err)
		data, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Empty(t, data)
	})
}

func TestNewResultJSON(t *testing.T) {
	fw := mutual(t)
	res := &semantics.Result{
		Problem:    semantics.Problem{Task: semantics.TaskEnumerate, Semantics: semantics.Stable},
		Extensions: semantics.StableExtensions(fw),
		Duration:   3 * time.Millisecond,
	}

	r := NewResult("mutual.apx", fw, res)
	data, err := MarshalJSON(r)
	require.NoError(t, err)

	var got map[string]interface{}
	require.NoError(t, json.Unmarshal(data, &got))
	assert.Equal(t, "SE-ST", got["problem"])
	assert.Equal(t, float64(2), got["count"])
	assert.Equal(t, []interface{}{[]interface{}{"a"}, []interface{}{"b"}}, got["extensions"])
	assert.Equal(t, []interface{}{"a", "b"}, got["credulous"])
	assert.NotContains(t, got, "skeptical", "empty skeptical set is omitted")
	assert.Equal(t, float64(3), got["duration_ms"])

	decision := NewResult("mutual.apx", fw, &semantics.Result{
		Problem: semantics.Problem{Task: semantics.TaskCredulous, Semantics: semantics.Stable},
		Verdict: &semantics.Verdict{Argument: "a", Accepted: true},
	})
	assert.Equal(t, "YES", decision.Answer)
	assert.Nil(t, decision.Count)
}

func TestMarshalJSONKeepsLabels(t *testing.T) {
	data, err := MarshalJSON(map[string]string{"argument": "a<b&c"})
	require.NoError(t, err)
	assert.Equal(t, "{\n  \"argument\": \"a<b&c\"\n}", string(data))
}

func TestSummary(t *testing.T) {
	pterm.DisableColor()
	defer pterm.EnableColor()

	n := 0
	assert.Contains(t, Summary(Result{Problem: "SE-ST", File: "x.apx", Count: &n}), "no extensions")
	assert.Contains(t, Summary(Result{Problem: "DC-CO", Argument: "a", Answer: "YES"}), "a: YES")
}

func TestShouldOutputJSON(t *testing.T) {
	newCmd := func() *cobra.Command {
		root := &cobra.Command{Use: "root"}
		child := &cobra.Command{Use: "child", Run: func(*cobra.Command, []string) {}}
		child.Flags().Bool("json", false, "")
		root.AddCommand(child)
		return child
	}

	cmd := newCmd()
	assert.False(t, ShouldOutputJSON(cmd))

	require.NoError(t, cmd.Flags().Set("json", "true"))
	assert.True(t, ShouldOutputJSON(cmd))

	t.Setenv(envJSON, "1")
	assert.True(t, ShouldOutputJSON(newCmd()))
	assert.True(t, ShouldOutputJSON(nil))

	explicit := newCmd()
	require.NoError(t, explicit.Flags().Set("json", "false"))
	assert.False(t, ShouldOutputJSON(explicit), "explicit flag wins over the environment")
}
