package graph

import (
	"fmt"
	"time"

	"github.com/teranos/argx/af"
)

// Build converts a framework into a graph visualization structure. One node
// is created per argument and one link per attack. When exts is non-nil,
// nodes are typed by acceptance under those extensions and carry the indices
// of the extensions they belong to; pass nil to skip classification.
func (b *Builder) Build(fw *af.Framework, exts []af.Extension, title string) *Graph {
	computed := exts != nil

	graph := &Graph{
		Nodes: []Node{},
		Links: []Link{},
		Meta: Meta{
			GeneratedAt: time.Now(),
			Stats:       Stats{},
			Config: map[string]string{
				"title":       title,
				"description": fmt.Sprintf("Argumentation framework: %s", title),
			},
		},
	}

	args := fw.Arguments()
	labels := make([]string, len(args))
	for i, a := range args {
		labels[i] = string(a)
	}
	ids := uniqueIDs(labels)

	// Arguments come out of the framework sorted, so nodes are too
	for i, a := range args {
		var memberOf []int
		for e, ext := range exts {
			if ext.Contains(a) {
				memberOf = append(memberOf, e)
			}
		}

		nodeType := determineNodeType(len(memberOf), len(exts), computed)
		node := Node{
			ID:      ids[i],
			Type:    nodeType,
			Label:   string(a),
			Visible: true,
			Group:   nodeGroups[nodeType],
			Metadata: map[string]interface{}{
				"original_id": string(a),
				"attackers":   fw.Attackers(i).Len(),
			},
		}
		if computed {
			node.Metadata["extensions"] = memberOf
		}
		if fw.SelfAttacking(i) {
			node.Metadata["self_attacking"] = true
		}
		graph.Nodes = append(graph.Nodes, node)
	}

	// Attacks are sorted and unique
	for _, att := range fw.Attacks() {
		from, _ := fw.Index(att.From)
		to, _ := fw.Index(att.To)

		link := Link{
			Source: ids[from],
			Target: ids[to],
			Type:   LinkAttacks,
			Weight: defaultLinkWeight,
			Label:  LinkAttacks,
		}
		if from == to {
			link.Type = LinkSelfAttack
		}
		graph.Links = append(graph.Links, link)
	}

	graph.Meta.Stats.TotalNodes = len(graph.Nodes)
	graph.Meta.Stats.TotalEdges = len(graph.Links)
	graph.Meta.Stats.TotalExtensions = len(exts)
	graph.Meta.NodeTypes = collectNodeTypeInfo(graph.Nodes)
	graph.Meta.RelationshipTypes = collectRelationshipTypeInfo(graph.Links)

	b.logger.Debugw("Built graph",
		"title", title,
		"nodes", len(graph.Nodes),
		"links", len(graph.Links),
		"extensions", len(exts))

	return graph
}
