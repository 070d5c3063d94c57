package graph

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// WriteJSON writes g as indented D3 JSON.
func WriteJSON(w io.Writer, g *Graph) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(g)
}

// DOT renders g in Graphviz syntax. Nodes are filled with their type color
// and links keep their order.
func DOT(g *Graph) string {
	var b strings.Builder

	name := g.Meta.Config["title"]
	if name == "" {
		name = "af"
	}
	fmt.Fprintf(&b, "digraph %s {\n", strconv.Quote(name))
	b.WriteString("  node [shape=circle, style=filled, fontname=\"Helvetica\"];\n")

	for _, n := range g.Nodes {
		color := defaultUntypedColor
		if def, ok := typeDefinitions[n.Type]; ok {
			color = def.DisplayColor
		}
		fmt.Fprintf(&b, "  %s [label=%s, fillcolor=%s, tooltip=%s];\n",
			strconv.Quote(n.ID), strconv.Quote(n.Label), strconv.Quote(color), strconv.Quote(n.Type))
	}
	for _, l := range g.Links {
		attrs := ""
		if def, ok := relationshipDefinitions[l.Type]; ok && def.Color != "" {
			attrs = fmt.Sprintf(" [color=%s]", strconv.Quote(def.Color))
		}
		fmt.Fprintf(&b, "  %s -> %s%s;\n", strconv.Quote(l.Source), strconv.Quote(l.Target), attrs)
	}

	b.WriteString("}\n")
	return b.String()
}
