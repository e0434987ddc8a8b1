package format

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestChangeDescribe(t *testing.T) {
	tests := []struct {
		name        string
		change      Change
		wantApplied string
		wantPending string
	}{
		{
			name:        "new_line_marker_added",
			change:      Change{LineNumber: 3, Kind: ChangeNewLineMarkerAdded},
			wantApplied: "line 3: New line marker added to the end of the file.",
			wantPending: "line 3: New line marker would be added to the end of the file.",
		},
		{
			name:        "new_line_marker_removed",
			change:      Change{LineNumber: 1, Kind: ChangeNewLineMarkerRemoved},
			wantApplied: "line 1: New line marker removed from the end of the file.",
			wantPending: "line 1: New line marker would be removed from the end of the file.",
		},
		{
			name:        "new_line_marker_replaced",
			change:      Change{LineNumber: 2, Kind: ChangeNewLineMarkerReplaced, From: MarkerMacOS, To: MarkerWindows},
			wantApplied: `line 2: New line marker '\r' replaced by '\r\n'.`,
			wantPending: `line 2: New line marker '\r' would be replaced by '\r\n'.`,
		},
		{
			name:        "trailing_whitespace_removed",
			change:      Change{LineNumber: 7, Kind: ChangeTrailingWhitespaceRemoved},
			wantApplied: "line 7: Trailing whitespace removed.",
			wantPending: "line 7: Trailing whitespace would be removed.",
		},
		{
			name:        "leading_empty_lines_removed",
			change:      Change{LineNumber: 1, Kind: ChangeLeadingEmptyLinesRemoved},
			wantApplied: "line 1: Empty line(s) at the beginning of the file removed.",
			wantPending: "line 1: Empty line(s) at the beginning of the file would be removed.",
		},
		{
			name:        "trailing_empty_lines_removed",
			change:      Change{LineNumber: 4, Kind: ChangeTrailingEmptyLinesRemoved},
			wantApplied: "line 4: Empty line(s) at the end of the file removed.",
			wantPending: "line 4: Empty line(s) at the end of the file would be removed.",
		},
		{
			name:        "empty_file_replaced_with_one_line",
			change:      Change{LineNumber: 1, Kind: ChangeEmptyFileReplacedWithOneLine},
			wantApplied: "line 1: Empty file replaced with a single empty line.",
			wantPending: "line 1: Empty file would be replaced with a single empty line.",
		},
		{
			name:        "whitespace_file_replaced_with_empty",
			change:      Change{LineNumber: 1, Kind: ChangeWhitespaceFileReplacedWithEmpty},
			wantApplied: "line 1: File replaced with an empty file.",
			wantPending: "line 1: File would be replaced with an empty file.",
		},
		{
			name:        "whitespace_file_replaced_with_one_line",
			change:      Change{LineNumber: 1, Kind: ChangeWhitespaceFileReplacedWithOneLine},
			wantApplied: "line 1: File replaced with a single empty line.",
			wantPending: "line 1: File would be replaced with a single empty line.",
		},
		{
			name:        "tab_replaced_with_spaces",
			change:      Change{LineNumber: 12, Kind: ChangeTabReplacedWithSpaces, Count: 4},
			wantApplied: "line 12: Tab replaced with spaces.",
			wantPending: "line 12: Tab would be replaced with spaces.",
		},
		{
			name:        "tab_removed",
			change:      Change{LineNumber: 5, Kind: ChangeTabRemoved},
			wantApplied: "line 5: Tab removed.",
			wantPending: "line 5: Tab would be removed.",
		},
		{
			name:        "non_standard_whitespace_replaced",
			change:      Change{LineNumber: 9, Kind: ChangeNonStandardWhitespaceReplaced, Byte: 0x0B},
			wantApplied: `line 9: Non-standard whitespace character '\v' replaced by a space.`,
			wantPending: `line 9: Non-standard whitespace character '\v' would be replaced by a space.`,
		},
		{
			name:        "non_standard_whitespace_removed",
			change:      Change{LineNumber: 9, Kind: ChangeNonStandardWhitespaceRemoved, Byte: 0x0C},
			wantApplied: `line 9: Non-standard whitespace character '\f' removed.`,
			wantPending: `line 9: Non-standard whitespace character '\f' would be removed.`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wantApplied, tt.change.Describe(false))
			assert.Equal(t, tt.wantPending, tt.change.Describe(true))
		})
	}
}

func TestEscapeByte(t *testing.T) {
	assert.Equal(t, `\r`, escapeByte(carriageReturn))
	assert.Equal(t, `\n`, escapeByte(lineFeed))
	assert.Equal(t, `\t`, escapeByte(tab))
	assert.Equal(t, `\v`, escapeByte(verticalTab))
	assert.Equal(t, `\f`, escapeByte(formFeed))
	assert.Equal(t, " ", escapeByte(space))
	assert.Equal(t, "?", escapeByte('x'))
}
