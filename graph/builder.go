// Package graph turns an argumentation framework into a D3-style node/link
// document, optionally colored by the acceptance status of each argument,
// and renders it as JSON or Graphviz DOT.
package graph

import (
	"go.uber.org/zap"
)

// Builder builds graph structures from frameworks and their extensions
type Builder struct {
	logger *zap.SugaredLogger
}

// NewBuilder creates a new graph builder. A nil logger discards output.
func NewBuilder(logger *zap.SugaredLogger) *Builder {
	if logger == nil {
		logger = zap.NewNop().Sugar()
	}
	return &Builder{
		logger: logger.Named("graph.builder"),
	}
}
