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
	"gitlab.com/tozd/go/errors"
)

// 🗂️ TrivialFileMode says what to do with files that carry no content:
// completely empty files and files consisting of whitespace only.
type TrivialFileMode int

const (
	// TrivialIgnore leaves the file exactly as it is.
	TrivialIgnore TrivialFileMode = iota

	// TrivialEmpty replaces the file with a zero byte file.
	TrivialEmpty

	// TrivialOneLine replaces the file with a single new line marker.
	TrivialOneLine
)

// String returns the configuration name of the mode.
func (m TrivialFileMode) String() string {
	switch m {
	case TrivialIgnore:
		return "ignore"
	case TrivialEmpty:
		return "empty"
	case TrivialOneLine:
		return "one-line"
	default:
		return "unknown"
	}
}

// ParseTrivialFileMode converts a configuration string to a TrivialFileMode.
func ParseTrivialFileMode(s string) (TrivialFileMode, error) {
	switch s {
	case "ignore":
		return TrivialIgnore, nil
	case "empty":
		return TrivialEmpty, nil
	case "one-line":
		return TrivialOneLine, nil
	default:
		return TrivialIgnore, errors.Errorf("unknown trivial file mode %q (want ignore, empty or one-line)", s)
	}
}

// 🧹 NonStandardMode says what to do with non-standard whitespace
// characters, i.e. vertical tabs and form feeds.
type NonStandardMode int

const (
	// NonStandardIgnore keeps the characters as they are.
	NonStandardIgnore NonStandardMode = iota

	// NonStandardReplaceWithSpace replaces each character with a space.
	NonStandardReplaceWithSpace

	// NonStandardRemove deletes the characters.
	NonStandardRemove
)

// String returns the configuration name of the mode.
func (m NonStandardMode) String() string {
	switch m {
	case NonStandardIgnore:
		return "ignore"
	case NonStandardReplaceWithSpace:
		return "replace-with-space"
	case NonStandardRemove:
		return "remove"
	default:
		return "unknown"
	}
}

// ParseNonStandardMode converts a configuration string to a NonStandardMode.
func ParseNonStandardMode(s string) (NonStandardMode, error) {
	switch s {
	case "ignore":
		return NonStandardIgnore, nil
	case "replace-with-space":
		return NonStandardReplaceWithSpace, nil
	case "remove":
		return NonStandardRemove, nil
	default:
		return NonStandardIgnore, errors.Errorf("unknown non-standard whitespace mode %q (want ignore, replace-with-space or remove)", s)
	}
}

// ⚙️ Options selects which whitespace fixes the engine performs. The zero
// value disables everything except tab handling, which is disabled by the
// negative ReplaceTabsWithSpaces default, so construct Options through
// DefaultOptions or the config layer rather than as a literal.
type Options struct {
	// NewLineMarker is the marker written when markers are normalized,
	// added or restored. MarkerModeAuto derives it from the input.
	NewLineMarker MarkerMode

	// AddNewLineMarkerAtEndOfFile appends a marker to the last line when
	// it does not end with one.
	AddNewLineMarkerAtEndOfFile bool

	// RemoveNewLineMarkerFromEndOfFile strips the marker that ends the
	// last line. Mutually exclusive with AddNewLineMarkerAtEndOfFile.
	RemoveNewLineMarkerFromEndOfFile bool

	// NormalizeNewLineMarkers rewrites every marker to NewLineMarker.
	NormalizeNewLineMarkers bool

	// RemoveTrailingWhitespace drops whitespace that precedes a marker or
	// the end of the file.
	RemoveTrailingWhitespace bool

	// RemoveTrailingEmptyLines drops empty lines at the end of the file.
	RemoveTrailingEmptyLines bool

	// RemoveLeadingEmptyLines drops empty lines at the beginning of the
	// file.
	RemoveLeadingEmptyLines bool

	// NormalizeEmptyFiles is the policy for files with no bytes at all.
	NormalizeEmptyFiles TrivialFileMode

	// NormalizeWhitespaceOnlyFiles is the policy for files that contain
	// only whitespace. It takes precedence over NormalizeEmptyFiles.
	NormalizeWhitespaceOnlyFiles TrivialFileMode

	// NormalizeNonStandardWhitespace is the policy for vertical tab and
	// form feed characters.
	NormalizeNonStandardWhitespace NonStandardMode

	// ReplaceTabsWithSpaces replaces each tab with this many spaces. Zero
	// removes tabs, a negative value keeps them.
	ReplaceTabsWithSpaces int
}

// DefaultOptions returns Options with every fix disabled. Tabs are kept
// because ReplaceTabsWithSpaces is negative.
func DefaultOptions() Options {
	return Options{
		NewLineMarker:         MarkerModeAuto,
		ReplaceTabsWithSpaces: -1,
	}
}

// Validate rejects option combinations that contradict each other or would
// break idempotence.
func (o Options) Validate() error {
	if o.AddNewLineMarkerAtEndOfFile && o.RemoveNewLineMarkerFromEndOfFile {
		return errors.New("adding and removing the end of file marker at the same time is not possible")
	}

	if o.NormalizeWhitespaceOnlyFiles == TrivialEmpty && o.NormalizeEmptyFiles == TrivialOneLine {
		return errors.New("whitespace-only files cannot become empty while empty files become one line, the result would keep changing")
	}

	return nil
}
