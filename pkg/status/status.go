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

package status

import (
	"context"
	"fmt"
	"io"
	"sort"
	"sync"

	"github.com/rs/zerolog"
	"github.com/walteh/wsfmt/pkg/format"
	"gitlab.com/tozd/go/errors"
)

// 📊 FileStatus represents the outcome of processing a single file
type FileStatus int

const (
	StatusUnknown     FileStatus = iota
	StatusUnchanged              // File was already formatted correctly
	StatusChanged                // File was rewritten with fixes applied
	StatusWouldChange            // Check-only run found fixes but left the file alone
	StatusError                  // File could not be processed
)

// String returns a string representation of FileStatus
func (s FileStatus) String() string {
	switch s {
	case StatusUnchanged:
		return "unchanged"
	case StatusChanged:
		return "changed"
	case StatusWouldChange:
		return "would-change"
	case StatusError:
		return "error"
	default:
		return "unknown"
	}
}

// 📄 FileReport contains the processing outcome of a single file
type FileReport struct {
	Path    string          // Path of the file as discovered
	Status  FileStatus      // Outcome of processing
	Changes []format.Change // Fixes applied or pending, in file order
	Err     error           // Any error associated with this file
}

// 📈 Summary aggregates the outcomes of a whole run
type Summary struct {
	Files     int  // Total number of files processed
	Changed   int  // Files rewritten, or needing a rewrite in check-only mode
	Unchanged int  // Files that were already clean
	Errors    int  // Files that failed to process
	Changes   int  // Individual fixes across all files
	CheckOnly bool // Whether this was a check-only run
}

// Clean reports whether the run found nothing to fix and nothing failed.
func (s Summary) Clean() bool {
	return s.Changed == 0 && s.Errors == 0
}

// String renders the one line verdict of a run for the user
func (s Summary) String() string {
	switch {
	case s.Files == 0:
		return "no files to process"
	case s.CheckOnly && s.Changed > 0:
		return fmt.Sprintf("%d of %d files need formatting (%d changes pending)", s.Changed, s.Files, s.Changes)
	case s.CheckOnly:
		return fmt.Sprintf("all %d files are formatted correctly", s.Files)
	case s.Changed > 0:
		return fmt.Sprintf("formatted %d of %d files (%d changes)", s.Changed, s.Files, s.Changes)
	default:
		return fmt.Sprintf("all %d files already formatted", s.Files)
	}
}

// 🔧 Manager tracks per-file outcomes and renders them for the user.
// Per-file lines go to out, a structured mirror of every event goes to the
// logger. Manager is safe for concurrent use.
type Manager struct {
	out       io.Writer       // Destination for user-facing lines
	logger    *zerolog.Logger // Logger for the structured mirror
	formatter ChangeFormatter // Formatter for user-facing lines
	checkOnly bool

	mu      sync.RWMutex
	files   map[string]FileReport
	summary Summary
}

// 🏭 New creates a new status manager
func New(out io.Writer, logger *zerolog.Logger, checkOnly bool) *Manager {
	return &Manager{
		out:       out,
		logger:    logger,
		formatter: NewDefaultChangeFormatter(),
		checkOnly: checkOnly,
		files:     make(map[string]FileReport),
		summary:   Summary{CheckOnly: checkOnly},
	}
}

// 📝 TrackFile records the outcome of one file and prints it for the user.
// Clean files stay silent on out and only appear in the debug log.
func (m *Manager) TrackFile(ctx context.Context, path string, changes []format.Change, err error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	report := FileReport{Path: path, Changes: changes, Err: err}
	switch {
	case err != nil:
		report.Status = StatusError
	case len(changes) == 0:
		report.Status = StatusUnchanged
	case m.checkOnly:
		report.Status = StatusWouldChange
	default:
		report.Status = StatusChanged
	}

	m.files[path] = report
	m.summary.Files++

	switch report.Status {
	case StatusError:
		m.summary.Errors++
		fmt.Fprintln(m.out, m.formatter.FormatError(path, err))
		m.logger.Error().Err(err).Str("path", path).Msg("processing failed")

	case StatusUnchanged:
		m.summary.Unchanged++
		m.logger.Debug().Str("path", path).Msg("file is already formatted")

	default:
		m.summary.Changed++
		m.summary.Changes += len(changes)
		fmt.Fprintln(m.out, m.formatter.FormatFile(path, report.Status))
		for _, change := range changes {
			fmt.Fprintln(m.out, m.formatter.FormatChange(change, m.checkOnly))
		}
		m.logger.Info().
			Str("path", path).
			Str("status", report.Status.String()).
			Int("changes", len(changes)).
			Msg("file needs formatting")
	}
}

// 🔍 GetReport returns the recorded outcome for a single file
func (m *Manager) GetReport(ctx context.Context, path string) (FileReport, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	report, ok := m.files[path]
	if !ok {
		return FileReport{}, errors.Errorf("file not tracked: %s", path)
	}
	return report, nil
}

// 🗂️ ListReports returns all recorded outcomes ordered by path
func (m *Manager) ListReports(ctx context.Context) []FileReport {
	m.mu.RLock()
	defer m.mu.RUnlock()

	reports := make([]FileReport, 0, len(m.files))
	for _, report := range m.files {
		reports = append(reports, report)
	}
	sort.Slice(reports, func(i, j int) bool { return reports[i].Path < reports[j].Path })
	return reports
}

// 📊 Summary returns a snapshot of the aggregated outcomes
func (m *Manager) Summary() Summary {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return m.summary
}
