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

// Package discover expands command line paths into the list of files to
// process. Directories are walked recursively, symlinks are skipped unless
// explicitly followed, and the result is filtered by an exclude pattern and
// ignore globs before being returned in sorted order.
package discover

import (
	"context"
	"os"
	"path/filepath"
	"regexp"
	"sort"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/rs/zerolog"
	"gitlab.com/tozd/go/errors"
)

// 🔭 Options control how files are discovered and filtered.
type Options struct {
	// FollowSymlinks descends into symlinked files and directories. Off by
	// default because symlinks can point outside the tree being formatted.
	FollowSymlinks bool

	// ExcludePattern is a regular expression matched against each file
	// path (with forward slashes). Matching files are dropped. An empty
	// pattern excludes nothing.
	ExcludePattern string

	// IgnoreGlobs are doublestar patterns matched against each file path.
	// Matching files are dropped. Use "**/" prefixes to match files in
	// nested directories, e.g. "**/*.min.js".
	IgnoreGlobs []string
}

// Discover expands paths (files or directories) into the sorted, de-duplicated
// list of files to process. Every path must exist.
func Discover(ctx context.Context, paths []string, opts Options) ([]string, error) {
	var exclude *regexp.Regexp
	if opts.ExcludePattern != "" {
		var err error
		exclude, err = regexp.Compile(opts.ExcludePattern)
		if err != nil {
			return nil, errors.Errorf("compiling exclude pattern %q: %w", opts.ExcludePattern, err)
		}
	}

	files, err := listFiles(paths, opts.FollowSymlinks)
	if err != nil {
		return nil, err
	}

	kept := make([]string, 0, len(files))
	excluded := 0
	for _, file := range files {
		ignored, err := isIgnored(file, exclude, opts.IgnoreGlobs)
		if err != nil {
			return nil, err
		}
		if ignored {
			excluded++
			continue
		}
		kept = append(kept, file)
	}

	sort.Strings(kept)
	kept = dedupe(kept)

	zerolog.Ctx(ctx).Debug().
		Int("discovered", len(files)).
		Int("excluded", excluded).
		Int("kept", len(kept)).
		Msg("discovered files")

	return kept, nil
}

// listFiles walks the given paths breadth first and collects regular files.
// Symlinks are resolved only when follow is set; a visited set keeps
// symlink cycles from walking forever.
func listFiles(paths []string, follow bool) ([]string, error) {
	var files []string
	visited := map[string]bool{}

	pending := make([]string, len(paths))
	copy(pending, paths)

	for len(pending) > 0 {
		var directories []string

		for _, path := range pending {
			info, err := os.Lstat(path)
			if err != nil {
				return nil, errors.Errorf("file or directory not found: %s", path)
			}

			if info.Mode()&os.ModeSymlink != 0 {
				if !follow {
					continue
				}
				// Stat the target so symlinked files and directories are
				// classified like regular ones.
				info, err = os.Stat(path)
				if err != nil {
					return nil, errors.Errorf("resolving symlink %s: %w", path, err)
				}
			}

			switch {
			case info.Mode().IsRegular():
				files = append(files, path)
			case info.IsDir():
				canonical, err := filepath.EvalSymlinks(path)
				if err != nil {
					return nil, errors.Errorf("resolving directory %s: %w", path, err)
				}
				if visited[canonical] {
					continue
				}
				visited[canonical] = true
				directories = append(directories, path)
			}
		}

		pending = pending[:0]

		for _, directory := range directories {
			entries, err := os.ReadDir(directory)
			if err != nil {
				return nil, errors.Errorf("reading directory %s: %w", directory, err)
			}
			for _, entry := range entries {
				pending = append(pending, filepath.Join(directory, entry.Name()))
			}
		}
	}

	return files, nil
}

// isIgnored reports whether file matches the exclude pattern or any of the
// ignore globs. Matching runs against the slash separated form of the path.
func isIgnored(file string, exclude *regexp.Regexp, globs []string) (bool, error) {
	slashed := filepath.ToSlash(file)

	if exclude != nil && exclude.MatchString(slashed) {
		return true, nil
	}

	for _, glob := range globs {
		matched, err := doublestar.Match(glob, slashed)
		if err != nil {
			return false, errors.Errorf("matching ignore glob %q: %w", glob, err)
		}
		if matched {
			return true, nil
		}
	}

	return false, nil
}

// dedupe removes adjacent duplicates from a sorted slice.
func dedupe(sorted []string) []string {
	if len(sorted) < 2 {
		return sorted
	}

	out := sorted[:1]
	for _, s := range sorted[1:] {
		if s != out[len(out)-1] {
			out = append(out, s)
		}
	}
	return out
}
