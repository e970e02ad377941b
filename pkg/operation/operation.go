// Package operation provides the discovery and rewrite loop over route files
package operation

import (
	"context"

	"github.com/rs/zerolog"
	"github.com/walteh/routefix/pkg/config"
	"github.com/walteh/routefix/pkg/rewrite"
	"github.com/walteh/routefix/pkg/status"
)

// 🎯 Operation defines a runnable unit of work
type Operation interface {
	// Name identifies the operation in logs
	Name() string
	// Execute runs the operation
	Execute(ctx context.Context) error
}

// 🔧 Options contains configuration for operations
type Options struct {
	// Config is the routefix configuration
	Config *config.Config
	// Rewriter applies the rewrite rules to file content
	Rewriter rewrite.Rewriter
	// StatusMgr reports per-file outcomes
	StatusMgr *status.Manager
	// Logger is used for debug logging
	Logger *zerolog.Logger
}

// 📦 BaseOperation provides shared fields for operations
type BaseOperation struct {
	Options
}

// 🏭 NewBaseOperation creates a new base operation
func NewBaseOperation(opts Options) BaseOperation {
	return BaseOperation{Options: opts}
}
