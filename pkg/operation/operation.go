// Package operation provides the core formatting workflow of wsfmt
package operation

import (
	"context"

	"github.com/walteh/wsfmt/pkg/config"
	"github.com/walteh/wsfmt/pkg/status"
	"gitlab.com/tozd/go/errors"
)

// 🎯 Operation is a unit of work executed by the command layer
type Operation interface {
	// Execute runs the operation against the configured paths
	Execute(ctx context.Context) error
}

// 🔧 Options contains the dependencies and inputs of an operation
type Options struct {
	// Config is the validated run configuration
	Config *config.Config
	// StatusMgr tracks and prints per-file outcomes
	StatusMgr *status.Manager
	// Paths are the files and directories to process
	Paths []string
}

func (opts Options) validate() error {
	if opts.Config == nil {
		return errors.Errorf("config is required")
	}
	if opts.StatusMgr == nil {
		return errors.Errorf("status manager is required")
	}
	if len(opts.Paths) == 0 {
		return errors.Errorf("at least one path is required")
	}
	return nil
}
