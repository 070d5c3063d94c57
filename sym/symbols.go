// Package sym defines the glyphs argx attaches to log lines and terminal
// output, one per command plus a few system markers.
package sym

import (
	"fmt"
	"strings"
)

// Command glyphs
const (
	Solve   = "⊨" // entailment: what follows from the framework
	Graph   = "⋈" // attack graph rendering
	Watch   = "◉" // re-solve when the input changes
	History = "✦" // recorded runs
	AM      = "≡" // configuration
)

// Acceptance markers
const (
	Accepted = "✓"
	Rejected = "✗"
)

// System infrastructure symbols.
const (
	DB     = "⊔" // database/storage layer
	Search = "꩜" // long-running subset search
)

// Commands lists the CLI commands that have a glyph, in help order.
var Commands = []string{"solve", "graph", "watch", "history", "am"}

// PaletteOrder is the glyph of each entry of Commands, same order.
var PaletteOrder = []string{Solve, Graph, Watch, History, AM}

// CommandToSymbol maps command names to their glyphs.
var CommandToSymbol = map[string]string{
	"solve":   Solve,
	"graph":   Graph,
	"watch":   Watch,
	"history": History,
	"am":      AM,
}

// CommandDescriptions is the one-line summary shown in the root help.
var CommandDescriptions = map[string]string{
	"solve":   "Enumerate extensions or decide acceptance",
	"graph":   "Render the attack graph (JSON or DOT)",
	"watch":   "Re-solve whenever the framework changes",
	"history": "Inspect recorded runs",
	"am":      "Show and edit configuration",
}

// Prefix returns the glyph for a command followed by a space, or "" when
// the command has none.
func Prefix(cmd string) string {
	if g, ok := CommandToSymbol[cmd]; ok {
		return g + " "
	}
	return ""
}

// Help renders one "glyph name - description" line per command, each
// starting with indent.
func Help(indent string) string {
	var b strings.Builder
	for _, cmd := range Commands {
		fmt.Fprintf(&b, "%s%s%-9s- %s\n", indent, Prefix(cmd), cmd, CommandDescriptions[cmd])
	}
	return b.String()
}
