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
	"bytes"
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/walteh/wsfmt/pkg/format"
	"gitlab.com/tozd/go/errors"
)

func newTestManager(t *testing.T, checkOnly bool) (*Manager, *bytes.Buffer, *bytes.Buffer) {
	t.Helper()
	disableColor(t)

	out := &bytes.Buffer{}
	logBuf := &bytes.Buffer{}
	logger := zerolog.New(logBuf)
	return New(out, &logger, checkOnly), out, logBuf
}

func TestManagerTrackFile(t *testing.T) {
	ctx := context.Background()

	t.Run("changed_file_prints_header_and_changes", func(t *testing.T) {
		mgr, out, _ := newTestManager(t, false)

		mgr.TrackFile(ctx, "a.txt", []format.Change{
			{LineNumber: 1, Kind: format.ChangeTrailingWhitespaceRemoved},
			{LineNumber: 3, Kind: format.ChangeNewLineMarkerAdded},
		}, nil)

		want := "✓ a.txt\n" +
			"    line 1: Trailing whitespace removed.\n" +
			"    line 3: New line marker added to the end of the file.\n"
		assert.Equal(t, want, out.String(), "output should list the file and its changes")

		summary := mgr.Summary()
		assert.Equal(t, 1, summary.Files, "one file should be counted")
		assert.Equal(t, 1, summary.Changed, "file should count as changed")
		assert.Equal(t, 2, summary.Changes, "both changes should be counted")
		assert.False(t, summary.Clean(), "summary should not be clean")
	})

	t.Run("check_only_uses_conditional_wording", func(t *testing.T) {
		mgr, out, _ := newTestManager(t, true)

		mgr.TrackFile(ctx, "b.txt", []format.Change{
			{LineNumber: 2, Kind: format.ChangeTrailingEmptyLinesRemoved},
		}, nil)

		want := "⟳ b.txt\n" +
			"    line 2: Empty line(s) at the end of the file would be removed.\n"
		assert.Equal(t, want, out.String(), "output should use conditional wording")

		report, err := mgr.GetReport(ctx, "b.txt")
		require.NoError(t, err, "tracked file should have a report")
		assert.Equal(t, StatusWouldChange, report.Status, "status should be would-change")

		summary := mgr.Summary()
		assert.True(t, summary.CheckOnly, "summary should record check-only mode")
		assert.Equal(t, 1, summary.Changed, "pending file should count as changed")
	})

	t.Run("unchanged_file_is_silent", func(t *testing.T) {
		mgr, out, logBuf := newTestManager(t, false)

		mgr.TrackFile(ctx, "clean.txt", nil, nil)

		assert.Empty(t, out.String(), "clean files should not be printed")
		assert.Contains(t, logBuf.String(), "file is already formatted", "clean files should appear in the log")

		summary := mgr.Summary()
		assert.Equal(t, 1, summary.Unchanged, "file should count as unchanged")
		assert.True(t, summary.Clean(), "summary should be clean")
	})

	t.Run("error_file_prints_error", func(t *testing.T) {
		mgr, out, logBuf := newTestManager(t, false)

		mgr.TrackFile(ctx, "bad.txt", nil, errors.New("permission denied"))

		assert.Equal(t, "✗ bad.txt: permission denied\n", out.String(), "error should be printed")
		assert.Contains(t, logBuf.String(), "processing failed", "error should appear in the log")

		report, err := mgr.GetReport(ctx, "bad.txt")
		require.NoError(t, err, "tracked file should have a report")
		assert.Equal(t, StatusError, report.Status, "status should be error")

		summary := mgr.Summary()
		assert.Equal(t, 1, summary.Errors, "file should count as an error")
		assert.False(t, summary.Clean(), "summary with errors should not be clean")
	})
}

func TestManagerReports(t *testing.T) {
	ctx := context.Background()
	mgr, _, _ := newTestManager(t, false)

	mgr.TrackFile(ctx, "z.txt", nil, nil)
	mgr.TrackFile(ctx, "a.txt", []format.Change{
		{LineNumber: 1, Kind: format.ChangeTabRemoved},
	}, nil)

	t.Run("get_report", func(t *testing.T) {
		report, err := mgr.GetReport(ctx, "a.txt")
		require.NoError(t, err, "tracked file should have a report")
		assert.Equal(t, StatusChanged, report.Status, "status should match")
		assert.Len(t, report.Changes, 1, "changes should be recorded")
	})

	t.Run("untracked_file_is_an_error", func(t *testing.T) {
		_, err := mgr.GetReport(ctx, "missing.txt")
		require.Error(t, err, "untracked file should be an error")
		assert.Contains(t, err.Error(), "file not tracked", "error should name the problem")
	})

	t.Run("list_reports_is_sorted", func(t *testing.T) {
		reports := mgr.ListReports(ctx)
		require.Len(t, reports, 2, "both files should be listed")
		assert.Equal(t, "a.txt", reports[0].Path, "reports should be ordered by path")
		assert.Equal(t, "z.txt", reports[1].Path, "reports should be ordered by path")
	})
}

func TestSummaryClean(t *testing.T) {
	tests := []struct {
		name    string
		summary Summary
		want    bool
	}{
		{name: "empty_run", summary: Summary{}, want: true},
		{name: "all_unchanged", summary: Summary{Files: 3, Unchanged: 3}, want: true},
		{name: "changed_files", summary: Summary{Files: 3, Changed: 1, Unchanged: 2}, want: false},
		{name: "errors", summary: Summary{Files: 2, Unchanged: 1, Errors: 1}, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.summary.Clean(), "Clean() should match")
		})
	}
}

func TestSummaryString(t *testing.T) {
	tests := []struct {
		name    string
		summary Summary
		want    string
	}{
		{
			name:    "no_files",
			summary: Summary{},
			want:    "no files to process",
		},
		{
			name:    "check_only_with_pending_changes",
			summary: Summary{Files: 10, Changed: 3, Unchanged: 7, Changes: 5, CheckOnly: true},
			want:    "3 of 10 files need formatting (5 changes pending)",
		},
		{
			name:    "check_only_all_clean",
			summary: Summary{Files: 4, Unchanged: 4, CheckOnly: true},
			want:    "all 4 files are formatted correctly",
		},
		{
			name:    "formatted_files",
			summary: Summary{Files: 10, Changed: 3, Unchanged: 7, Changes: 5},
			want:    "formatted 3 of 10 files (5 changes)",
		},
		{
			name:    "all_already_formatted",
			summary: Summary{Files: 4, Unchanged: 4},
			want:    "all 4 files already formatted",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.summary.String(), "verdict should match")
		})
	}
}
