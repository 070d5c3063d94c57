package graph

import (
	"strconv"
	"strings"
)

// normalizeNodeID creates a safe, lowercase node ID for graph visualization.
// It replaces special characters with underscores and converts to lowercase,
// ensuring IDs are valid for use in D3.js and Graphviz.
// Example: "Arg@1" becomes "arg_1"
func normalizeNodeID(id string) string {
	normalized := strings.Map(func(r rune) rune {
		if (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9') || r == '_' || r == '-' {
			return r
		}
		return '_'
	}, id)

	return strings.ToLower(normalized)
}

// uniqueIDs normalizes every label, suffixing collisions ("a", "A" become
// "a" and "a_2") so distinct arguments never share a node.
func uniqueIDs(labels []string) []string {
	ids := make([]string, len(labels))
	seen := make(map[string]int, len(labels))
	for i, label := range labels {
		id := normalizeNodeID(label)
		if id == "" {
			id = "_"
		}
		seen[id]++
		if n := seen[id]; n > 1 {
			id += "_" + strconv.Itoa(n)
			seen[id]++
		}
		ids[i] = id
	}
	return ids
}
