package graph

import (
	"sort"
)

// RelationshipDefinition holds physics and display metadata for a link type.
type RelationshipDefinition struct {
	DisplayLabel string
	Color        string
	LinkDistance *float64 // D3 force distance (nil = use default)
	LinkStrength *float64 // D3 force strength (nil = use default)
}

func ptr(f float64) *float64 { return &f }

var relationshipDefinitions = map[string]RelationshipDefinition{
	LinkAttacks:    {DisplayLabel: "Attacks", Color: "#7f8c8d"},
	LinkSelfAttack: {DisplayLabel: "Attacks itself", Color: "#c0392b", LinkDistance: ptr(20), LinkStrength: ptr(0)},
}

// collectRelationshipTypeInfo collects information about link types present in the graph.
func collectRelationshipTypeInfo(links []Link) []RelationshipTypeInfo {
	typeCounts := make(map[string]int)
	for _, link := range links {
		typeCounts[link.Type]++
	}

	relationshipTypes := make([]RelationshipTypeInfo, 0, len(typeCounts))
	for linkType, count := range typeCounts {
		info := RelationshipTypeInfo{
			Type:  linkType,
			Label: linkType, // Default to type name if no definition
			Count: count,
		}
		if def, ok := relationshipDefinitions[linkType]; ok {
			info.Label = def.DisplayLabel
			info.Color = def.Color
			info.LinkDistance = def.LinkDistance
			info.LinkStrength = def.LinkStrength
		}
		relationshipTypes = append(relationshipTypes, info)
	}

	sort.Slice(relationshipTypes, func(i, j int) bool {
		if relationshipTypes[i].Count != relationshipTypes[j].Count {
			return relationshipTypes[i].Count > relationshipTypes[j].Count
		}
		return relationshipTypes[i].Type < relationshipTypes[j].Type
	})

	return relationshipTypes
}
