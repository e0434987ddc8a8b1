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

package format

import (
	"bytes"
)

// isWhitespace reports whether c is one of the six whitespace bytes the
// engine cares about.
func isWhitespace(c byte) bool {
	switch c {
	case space, tab, carriageReturn, lineFeed, verticalTab, formFeed:
		return true
	default:
		return false
	}
}

// isWhitespaceOnly reports whether input consists of whitespace bytes only.
func isWhitespaceOnly(input []byte) bool {
	for _, c := range input {
		if !isWhitespace(c) {
			return false
		}
	}
	return true
}

// 🔬 Transform is the core normalization algorithm. It scans input exactly
// once, writes the normalized bytes to sink and returns the ordered list of
// changes between input and output. Line numbers in the returned changes are
// counted in the output stream.
//
// The sink only ever moves forward or rewinds to an earlier position, so the
// same call works against a Counter (to size the output and detect changes
// without allocating) and against a Buffer (to materialize the result).
//
// Transform is idempotent: feeding its output back through the same Options
// yields no further changes.
func Transform(input []byte, opts Options, sink Sink) []Change {
	outputMarker := opts.NewLineMarker.Resolve(input)

	// Empty files never enter the scan loop.
	if len(input) == 0 {
		if opts.NormalizeEmptyFiles == TrivialOneLine {
			sink.WriteBytes(outputMarker.Bytes())
			return []Change{{LineNumber: 1, Kind: ChangeEmptyFileReplacedWithOneLine}}
		}
		return nil
	}

	// Whitespace-only files are handled by their own policy and bypass all
	// other normalizations.
	if isWhitespaceOnly(input) {
		switch opts.NormalizeWhitespaceOnlyFiles {
		case TrivialEmpty:
			return []Change{{LineNumber: 1, Kind: ChangeWhitespaceFileReplacedWithEmpty}}
		case TrivialOneLine:
			sink.WriteBytes(outputMarker.Bytes())
			if bytes.Equal(input, outputMarker.Bytes()) {
				return nil
			}
			return []Change{{LineNumber: 1, Kind: ChangeWhitespaceFileReplacedWithOneLine}}
		default:
			sink.WriteBytes(input)
			return nil
		}
	}

	var changes []Change

	// Line number in the output stream. Incremented whenever an end of line
	// marker is written.
	lineNumber := 1

	// Position one byte past the end of the last line written to the sink,
	// including its end of line marker.
	lastEndOfLineInclMarker := 0

	// Position one byte past the last non-whitespace byte written to the
	// sink.
	lastNonWhitespace := 0

	// Positions one byte past the end of the last non-empty line, excluding
	// and including its end of line marker, and that line's number.
	lastEndOfNonEmptyLineExclMarker := 0
	lastEndOfNonEmptyLineInclMarker := 0
	lastNonEmptyLineNumber := 0

	// Set once the coalesced leading empty line change has been recorded.
	leadingEmptyRemoved := false

	for i := 0; i < len(input); i++ {
		c := input[i]
		switch {
		case c == carriageReturn || c == lineFeed:
			marker := MarkerLinux
			if c == carriageReturn {
				if i+1 < len(input) && input[i+1] == lineFeed {
					// The Windows marker is two bytes, skip the extra one.
					marker = MarkerWindows
					i++
				} else {
					marker = MarkerMacOS
				}
			}

			if opts.RemoveTrailingWhitespace &&
				max(lastNonWhitespace, lastEndOfLineInclMarker) < sink.Position() {
				changes = append(changes, Change{
					LineNumber: lineNumber,
					Kind:       ChangeTrailingWhitespaceRemoved,
				})
				sink.Rewind(max(lastNonWhitespace, lastEndOfLineInclMarker))
			}

			isEmptyLine := lastEndOfLineInclMarker == sink.Position()

			// Empty lines before the first non-empty line are dropped by
			// skipping their markers. The line counter stays put so the
			// remaining lines are numbered in the output stream.
			if isEmptyLine && opts.RemoveLeadingEmptyLines && lastNonEmptyLineNumber == 0 {
				if !leadingEmptyRemoved {
					leadingEmptyRemoved = true
					changes = append(changes, Change{
						LineNumber: 1,
						Kind:       ChangeLeadingEmptyLinesRemoved,
					})
				}
				continue
			}

			lastEndOfLineExclMarker := sink.Position()

			if opts.NormalizeNewLineMarkers && outputMarker != marker {
				changes = append(changes, Change{
					LineNumber: lineNumber,
					Kind:       ChangeNewLineMarkerReplaced,
					From:       marker,
					To:         outputMarker,
				})
				sink.WriteBytes(outputMarker.Bytes())
			} else {
				sink.WriteBytes(marker.Bytes())
			}
			lastEndOfLineInclMarker = sink.Position()

			if !isEmptyLine {
				lastEndOfNonEmptyLineExclMarker = lastEndOfLineExclMarker
				lastEndOfNonEmptyLineInclMarker = lastEndOfLineInclMarker
				lastNonEmptyLineNumber = lineNumber
			}
			lineNumber++

		case c == space:
			sink.Write(c)

		case c == tab:
			switch {
			case opts.ReplaceTabsWithSpaces < 0:
				sink.Write(c)
			case opts.ReplaceTabsWithSpaces > 0:
				changes = append(changes, Change{
					LineNumber: lineNumber,
					Kind:       ChangeTabReplacedWithSpaces,
					Count:      opts.ReplaceTabsWithSpaces,
				})
				for j := 0; j < opts.ReplaceTabsWithSpaces; j++ {
					sink.Write(space)
				}
			default:
				changes = append(changes, Change{
					LineNumber: lineNumber,
					Kind:       ChangeTabRemoved,
				})
			}

		case c == verticalTab || c == formFeed:
			switch opts.NormalizeNonStandardWhitespace {
			case NonStandardReplaceWithSpace:
				sink.Write(space)
				changes = append(changes, Change{
					LineNumber: lineNumber,
					Kind:       ChangeNonStandardWhitespaceReplaced,
					Byte:       c,
				})
			case NonStandardRemove:
				changes = append(changes, Change{
					LineNumber: lineNumber,
					Kind:       ChangeNonStandardWhitespaceRemoved,
					Byte:       c,
				})
			default:
				sink.Write(c)
			}

		default:
			sink.Write(c)
			lastNonWhitespace = sink.Position()
		}
	}

	// Remove trailing whitespace from the last line.
	if opts.RemoveTrailingWhitespace &&
		lastEndOfLineInclMarker < sink.Position() &&
		lastNonWhitespace < sink.Position() {
		changes = append(changes, Change{
			LineNumber: lineNumber,
			Kind:       ChangeTrailingWhitespaceRemoved,
		})
		sink.Rewind(lastNonWhitespace)
	}

	// Remove trailing empty lines.
	if opts.RemoveTrailingEmptyLines &&
		lastEndOfLineInclMarker == sink.Position() &&
		lastEndOfNonEmptyLineInclMarker < sink.Position() {
		lineNumber = lastNonEmptyLineNumber + 1
		lastEndOfLineInclMarker = lastEndOfNonEmptyLineInclMarker
		changes = append(changes, Change{
			LineNumber: lineNumber,
			Kind:       ChangeTrailingEmptyLinesRemoved,
		})
		sink.Rewind(lastEndOfNonEmptyLineInclMarker)
	}

	// Add a new line marker at the end of the file.
	if opts.AddNewLineMarkerAtEndOfFile && lastEndOfLineInclMarker < sink.Position() {
		changes = append(changes, Change{
			LineNumber: lineNumber,
			Kind:       ChangeNewLineMarkerAdded,
		})
		sink.WriteBytes(outputMarker.Bytes())
		lastEndOfLineInclMarker = sink.Position()
		lineNumber++
	}

	// Remove the new line marker from the end of the file.
	if opts.RemoveNewLineMarkerFromEndOfFile &&
		lastEndOfLineInclMarker == sink.Position() &&
		lineNumber >= 2 {
		lineNumber = lastNonEmptyLineNumber
		changes = append(changes, Change{
			LineNumber: lineNumber,
			Kind:       ChangeNewLineMarkerRemoved,
		})
		sink.Rewind(lastEndOfNonEmptyLineExclMarker)
	}

	return changes
}
