// Copyright 2025 walteh LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package operation

import (
	"context"
	"os"

	"github.com/rs/zerolog"
	"github.com/walteh/wsfmt/pkg/config"
	"github.com/walteh/wsfmt/pkg/discover"
	"github.com/walteh/wsfmt/pkg/format"
	"github.com/walteh/wsfmt/pkg/status"
	"gitlab.com/tozd/go/errors"
)

// 🧮 NewFormatOperation creates the operation that formats files in place,
// or only reports pending changes when the config says check-only.
func NewFormatOperation(opts Options) (Operation, error) {
	if err := opts.validate(); err != nil {
		return nil, err
	}

	formatOpts, err := opts.Config.Options()
	if err != nil {
		return nil, errors.Errorf("converting config: %w", err)
	}

	return &formatOperation{
		config:    opts.Config,
		statusMgr: opts.StatusMgr,
		paths:     opts.Paths,
		options:   formatOpts,
	}, nil
}

// 🧮 formatOperation implements the format and check workflows
type formatOperation struct {
	config    *config.Config
	statusMgr *status.Manager
	paths     []string
	options   format.Options
}

// 🏃 Execute discovers the target files and processes them in order.
// The first file that cannot be read or written aborts the whole run;
// skipping it silently could mask unformatted output in automation.
func (op *formatOperation) Execute(ctx context.Context) error {
	logger := zerolog.Ctx(ctx)

	files, err := discover.Discover(ctx, op.paths, discover.Options{
		FollowSymlinks: op.config.FollowSymlinks,
		ExcludePattern: op.config.Exclude,
		IgnoreGlobs:    op.config.IgnoreGlobs,
	})
	if err != nil {
		return errors.Errorf("discovering files: %w", err)
	}

	logger.Debug().
		Int("files", len(files)).
		Bool("check_only", op.config.CheckOnly).
		Msg("processing files")

	for _, file := range files {
		if err := op.processFile(ctx, file); err != nil {
			return errors.Errorf("processing file %s: %w", file, err)
		}
	}

	return nil
}

// 📄 processFile formats or checks a single file
func (op *formatOperation) processFile(ctx context.Context, path string) error {
	input, err := os.ReadFile(path)
	if err != nil {
		return errors.Errorf("reading file: %w", err)
	}

	output, changes := format.Process(input, op.options, op.config.CheckOnly)

	// Process returns output only when there is something to write back.
	if output != nil {
		if err := os.WriteFile(path, output, 0644); err != nil {
			return errors.Errorf("writing file: %w", err)
		}
	}

	op.statusMgr.TrackFile(ctx, path, changes, nil)
	return nil
}
