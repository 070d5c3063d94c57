package graph

import (
	"time"
)

// Graph represents the complete graph structure for visualization
type Graph struct {
	Nodes []Node `json:"nodes"`
	Links []Link `json:"links"`
	Meta  Meta   `json:"meta"`
}

// Node represents an argument in the graph
type Node struct {
	ID       string                 `json:"id"`
	Type     string                 `json:"type"`            // Acceptance status ("skeptical", "credulous", "rejected") or "argument"
	Label    string                 `json:"label"`           // Argument identifier as written in the input
	Visible  bool                   `json:"visible"`         // Backend controls visibility
	Group    int                    `json:"group,omitempty"` // For coloring/clustering
	Metadata map[string]interface{} `json:"metadata,omitempty"`
}

// Link represents an attack between arguments
type Link struct {
	Source string  `json:"source"` // Node ID of the attacker
	Target string  `json:"target"` // Node ID of the attacked argument
	Type   string  `json:"type"`   // "attacks" or "self_attack"
	Weight float64 `json:"value"`  // Link strength/weight (D3 uses "value")
	Label  string  `json:"label,omitempty"`
	Hidden bool    `json:"hidden,omitempty"`
}

// Meta contains metadata about the graph
type Meta struct {
	GeneratedAt       time.Time              `json:"generated_at"`
	Stats             Stats                  `json:"stats"`
	Config            map[string]string      `json:"config"`
	NodeTypes         []NodeTypeInfo         `json:"node_types"`         // Node types present in this graph
	RelationshipTypes []RelationshipTypeInfo `json:"relationship_types"` // Link types present with physics
}

// NodeTypeInfo describes a node type and its visual configuration
type NodeTypeInfo struct {
	Type    string   `json:"type"`
	Label   string   `json:"label"`           // Human-readable display name
	Color   string   `json:"color,omitempty"` // Hex color code
	Count   int      `json:"count,omitempty"` // Number of nodes of this type
	Opacity *float64 `json:"opacity,omitempty"`
}

// RelationshipTypeInfo describes a relationship type with physics and visual configuration
type RelationshipTypeInfo struct {
	Type         string   `json:"type"`
	Label        string   `json:"label"`
	Color        string   `json:"color,omitempty"`         // Optional link color override
	LinkDistance *float64 `json:"link_distance,omitempty"` // D3 force distance override (nil = use default)
	LinkStrength *float64 `json:"link_strength,omitempty"` // D3 force strength override (nil = use default)
	Count        int      `json:"count,omitempty"`         // Number of links of this type
}

// Stats provides graph statistics
type Stats struct {
	TotalNodes      int `json:"total_nodes,omitempty"`
	TotalEdges      int `json:"total_edges,omitempty"`
	TotalExtensions int `json:"total_extensions,omitempty"`
}
