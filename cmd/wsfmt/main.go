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

package main

import (
	"context"
	"os"

	"github.com/rs/zerolog"
	"github.com/walteh/wsfmt/pkg/log"
	"gitlab.com/tozd/go/errors"
)

func main() {
	// Setup logging. The structured log goes to stderr so stdout stays
	// reserved for the formatting report; --debug raises the level later,
	// once flags are parsed.
	zerolog.SetGlobalLevel(zerolog.WarnLevel)
	zlog := zerolog.New(os.Stderr).With().Timestamp().Logger()
	zerolog.DefaultContextLogger = &zlog

	ctx := zlog.WithContext(context.Background())
	ctx = log.NewContext(ctx, log.New(os.Stdout, zlog))

	rootCmd := newRootCmd()
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		// Check failures already printed their verdict; everything else
		// gets the error: prefix on stderr.
		if !errors.Is(err, errCheckFailed) {
			log.New(os.Stderr, zlog).Error(err.Error())
		}
		os.Exit(1)
	}
}
