package graph

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"go.uber.org/zap/zaptest"

	"github.com/teranos/argx/af"
	"github.com/teranos/argx/semantics"
)

// Helper to create a test builder
func createTestBuilder(t *testing.T) *Builder {
	t.Helper()
	return NewBuilder(zaptest.NewLogger(t).Sugar())
}

func createFramework(t *testing.T, args []af.Argument, attacks []af.Attack) *af.Framework {
	t.Helper()
	fw, err := af.New(args, attacks)
	if err != nil {
		t.Fatalf("Failed to create framework: %v", err)
	}
	return fw
}

// TestBuildEmpty tests the empty framework
func TestBuildEmpty(t *testing.T) {
	builder := createTestBuilder(t)
	graph := builder.Build(createFramework(t, nil, nil), nil, "empty")

	if len(graph.Nodes) != 0 {
		t.Errorf("Expected 0 nodes, got %d", len(graph.Nodes))
	}
	if len(graph.Links) != 0 {
		t.Errorf("Expected 0 links, got %d", len(graph.Links))
	}
	if graph.Meta.Config["title"] != "empty" {
		t.Errorf("Meta title = %q, want %q", graph.Meta.Config["title"], "empty")
	}
}

// TestBuildWithoutExtensions tests that unclassified nodes are plain arguments
func TestBuildWithoutExtensions(t *testing.T) {
	builder := createTestBuilder(t)
	fw := createFramework(t, []af.Argument{"b", "a"}, []af.Attack{{From: "a", To: "b"}, {From: "b", To: "b"}})

	graph := builder.Build(fw, nil, "plain")

	if len(graph.Nodes) != 2 {
		t.Fatalf("Expected 2 nodes, got %d", len(graph.Nodes))
	}
	if graph.Nodes[0].ID != "a" || graph.Nodes[1].ID != "b" {
		t.Errorf("Nodes not sorted: %s, %s", graph.Nodes[0].ID, graph.Nodes[1].ID)
	}
	for _, n := range graph.Nodes {
		if n.Type != TypeArgument {
			t.Errorf("Node %s type = %q, want %q", n.ID, n.Type, TypeArgument)
		}
		if _, ok := n.Metadata["extensions"]; ok {
			t.Errorf("Node %s should not carry extension indices", n.ID)
		}
	}
	if graph.Nodes[1].Metadata["self_attacking"] != true {
		t.Error("Expected b to be flagged self_attacking")
	}

	if len(graph.Links) != 2 {
		t.Fatalf("Expected 2 links, got %d", len(graph.Links))
	}
	if graph.Links[0].Type != LinkAttacks || graph.Links[1].Type != LinkSelfAttack {
		t.Errorf("Link types = %q, %q", graph.Links[0].Type, graph.Links[1].Type)
	}
}

// TestBuildClassifiesAcceptance tests node typing from extensions
func TestBuildClassifiesAcceptance(t *testing.T) {
	builder := createTestBuilder(t)
	// a <-> b, c unattacked, d attacked by c
	fw := createFramework(t,
		[]af.Argument{"a", "b", "c", "d"},
		[]af.Attack{{From: "a", To: "b"}, {From: "b", To: "a"}, {From: "c", To: "d"}},
	)

	graph := builder.Build(fw, semantics.StableExtensions(fw), "stable")

	want := map[string]string{
		"a": TypeCredulous,
		"b": TypeCredulous,
		"c": TypeSkeptical,
		"d": TypeRejected,
	}
	for _, n := range graph.Nodes {
		if n.Type != want[n.ID] {
			t.Errorf("Node %s type = %q, want %q", n.ID, n.Type, want[n.ID])
		}
	}

	if graph.Meta.Stats.TotalExtensions != 2 {
		t.Errorf("TotalExtensions = %d, want 2", graph.Meta.Stats.TotalExtensions)
	}
	if got := graph.Nodes[2].Metadata["extensions"].([]int); len(got) != 2 {
		t.Errorf("c extensions = %v, want both", got)
	}

	if len(graph.Meta.NodeTypes) != 3 {
		t.Fatalf("Expected 3 node types, got %d", len(graph.Meta.NodeTypes))
	}
	if graph.Meta.NodeTypes[0].Type != TypeCredulous || graph.Meta.NodeTypes[0].Count != 2 {
		t.Errorf("Most common node type = %+v, want credulous x2", graph.Meta.NodeTypes[0])
	}
}

// TestBuildNoExtensions tests that an empty extension list rejects everything
func TestBuildNoExtensions(t *testing.T) {
	builder := createTestBuilder(t)
	fw := createFramework(t,
		[]af.Argument{"a", "b", "c"},
		[]af.Attack{{From: "a", To: "b"}, {From: "b", To: "c"}, {From: "c", To: "a"}},
	)

	graph := builder.Build(fw, semantics.StableExtensions(fw), "cycle")
	for _, n := range graph.Nodes {
		if n.Type != TypeRejected {
			t.Errorf("Node %s type = %q, want %q", n.ID, n.Type, TypeRejected)
		}
	}
}

// TestGraphRendering tests JSON and DOT output
func TestGraphRendering(t *testing.T) {
	builder := createTestBuilder(t)
	fw := createFramework(t, []af.Argument{"x", "y"}, []af.Attack{{From: "x", To: "y"}})
	graph := builder.Build(fw, semantics.StableExtensions(fw), "demo")

	var buf bytes.Buffer
	if err := WriteJSON(&buf, graph); err != nil {
		t.Fatalf("WriteJSON failed: %v", err)
	}
	var decoded struct {
		Nodes []struct {
			ID   string `json:"id"`
			Type string `json:"type"`
		} `json:"nodes"`
		Links []struct {
			Source string  `json:"source"`
			Value  float64 `json:"value"`
		} `json:"links"`
	}
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("Invalid JSON: %v", err)
	}
	if len(decoded.Nodes) != 2 || decoded.Links[0].Source != "x" || decoded.Links[0].Value != 1.0 {
		t.Errorf("Unexpected JSON: %s", buf.String())
	}

	dot := DOT(graph)
	for _, want := range []string{`digraph "demo" {`, `"x" -> "y"`, `"y" [label="y", fillcolor="#e74c3c"`} {
		if !strings.Contains(dot, want) {
			t.Errorf("DOT output missing %q:\n%s", want, dot)
		}
	}
}
