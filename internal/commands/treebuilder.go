package commands

import (
	"go.uber.org/zap"

	"github.com/temirov/richtree/internal/types"
)

// TreeBuilder builds directory tree nodes using configured options.
type TreeBuilder struct {
	Config types.ScanConfig
	Logger *zap.Logger
}

// NewTreeBuilder returns a TreeBuilder for the configuration. A nil logger is replaced with a no-op logger.
func NewTreeBuilder(config types.ScanConfig, logger *zap.Logger) *TreeBuilder {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &TreeBuilder{Config: config, Logger: logger}
}
