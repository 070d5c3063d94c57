package graph

import (
	"sort"
)

// TypeDefinition holds display metadata for a node type.
type TypeDefinition struct {
	TypeName     string
	DisplayColor string  // Hex color or rgba() string
	DisplayLabel string  // Human-readable label
	Opacity      float64 // Visual opacity (default 1.0)
}

// typeDefinitions colors arguments by acceptance status.
var typeDefinitions = map[string]TypeDefinition{
	TypeSkeptical: {TypeName: TypeSkeptical, DisplayColor: "#2ecc71", DisplayLabel: "Skeptically accepted", Opacity: 1.0},
	TypeCredulous: {TypeName: TypeCredulous, DisplayColor: "#f1c40f", DisplayLabel: "Credulously accepted", Opacity: 1.0},
	TypeRejected:  {TypeName: TypeRejected, DisplayColor: "#e74c3c", DisplayLabel: "Rejected", Opacity: 0.6},
	TypeArgument:  {TypeName: TypeArgument, DisplayColor: "#add8e6", DisplayLabel: "Argument", Opacity: 1.0},
}

// nodeGroups gives each type a stable D3 group number.
var nodeGroups = map[string]int{
	TypeSkeptical: 1,
	TypeCredulous: 2,
	TypeRejected:  3,
}

// determineNodeType classifies an argument from how many of the extensions
// contain it.
func determineNodeType(memberOf, extensions int, computed bool) string {
	switch {
	case !computed:
		return TypeArgument
	case memberOf == 0:
		return TypeRejected
	case memberOf == extensions:
		return TypeSkeptical
	default:
		return TypeCredulous
	}
}

// collectNodeTypeInfo collects information about node types present in the graph.
// Returns a list of node type metadata including count and color for each type.
func collectNodeTypeInfo(nodes []Node) []NodeTypeInfo {
	typeCounts := make(map[string]int)
	for _, node := range nodes {
		typeCounts[node.Type]++
	}

	nodeTypes := make([]NodeTypeInfo, 0, len(typeCounts))
	for nodeType, count := range typeCounts {
		info := NodeTypeInfo{
			Type:  nodeType,
			Label: nodeType,
			Color: defaultUntypedColor,
			Count: count,
		}
		if def, ok := typeDefinitions[nodeType]; ok {
			info.Label = def.DisplayLabel
			info.Color = def.DisplayColor
			if def.Opacity != 1.0 {
				opacity := def.Opacity
				info.Opacity = &opacity
			}
		}
		nodeTypes = append(nodeTypes, info)
	}

	// Most common types appear first in the legend; ties by name
	sort.Slice(nodeTypes, func(i, j int) bool {
		if nodeTypes[i].Count != nodeTypes[j].Count {
			return nodeTypes[i].Count > nodeTypes[j].Count
		}
		return nodeTypes[i].Type < nodeTypes[j].Type
	})

	return nodeTypes
}
