package graph

// Node types. Without extensions every node is TypeArgument.
const (
	TypeSkeptical = "skeptical" // in every extension
	TypeCredulous = "credulous" // in some but not all extensions
	TypeRejected  = "rejected"  // in no extension
	TypeArgument  = "argument"  // acceptance not computed
)

// Link types
const (
	LinkAttacks    = "attacks"
	LinkSelfAttack = "self_attack"
)

const (
	defaultLinkWeight = 1.0

	// Default color for node types without a definition
	defaultUntypedColor = "rgba(149, 165, 166, 0.3)" // Transparent gray
)
