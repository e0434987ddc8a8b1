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
	"fmt"
)

// 🏷️ ChangeKind identifies the kind of a single formatting change.
type ChangeKind int

const (
	ChangeUnknown ChangeKind = iota
	ChangeNewLineMarkerAdded
	ChangeNewLineMarkerRemoved
	ChangeNewLineMarkerReplaced
	ChangeTrailingWhitespaceRemoved
	ChangeLeadingEmptyLinesRemoved
	ChangeTrailingEmptyLinesRemoved
	ChangeEmptyFileReplacedWithOneLine
	ChangeWhitespaceFileReplacedWithEmpty
	ChangeWhitespaceFileReplacedWithOneLine
	ChangeTabReplacedWithSpaces
	ChangeTabRemoved
	ChangeNonStandardWhitespaceReplaced
	ChangeNonStandardWhitespaceRemoved
)

// 📝 Change is a single difference between the input and the output of the
// engine. LineNumber is 1-based and counted in the output stream, not the
// input. The payload fields are populated per kind: From/To for marker
// replacements, Byte for non-standard whitespace characters, Count for the
// number of spaces a tab was replaced with.
type Change struct {
	LineNumber int
	Kind       ChangeKind
	From       Marker
	To         Marker
	Byte       byte
	Count      int
}

// changeText holds the template pair for one change kind: the phrasing used
// after changes were applied, and the phrasing used in check-only mode.
type changeText struct {
	applied string
	pending string
}

var changeTexts = map[ChangeKind]changeText{
	ChangeNewLineMarkerAdded: {
		applied: "New line marker added to the end of the file.",
		pending: "New line marker would be added to the end of the file.",
	},
	ChangeNewLineMarkerRemoved: {
		applied: "New line marker removed from the end of the file.",
		pending: "New line marker would be removed from the end of the file.",
	},
	ChangeNewLineMarkerReplaced: {
		applied: "New line marker '%s' replaced by '%s'.",
		pending: "New line marker '%s' would be replaced by '%s'.",
	},
	ChangeTrailingWhitespaceRemoved: {
		applied: "Trailing whitespace removed.",
		pending: "Trailing whitespace would be removed.",
	},
	ChangeLeadingEmptyLinesRemoved: {
		applied: "Empty line(s) at the beginning of the file removed.",
		pending: "Empty line(s) at the beginning of the file would be removed.",
	},
	ChangeTrailingEmptyLinesRemoved: {
		applied: "Empty line(s) at the end of the file removed.",
		pending: "Empty line(s) at the end of the file would be removed.",
	},
	ChangeEmptyFileReplacedWithOneLine: {
		applied: "Empty file replaced with a single empty line.",
		pending: "Empty file would be replaced with a single empty line.",
	},
	ChangeWhitespaceFileReplacedWithEmpty: {
		applied: "File replaced with an empty file.",
		pending: "File would be replaced with an empty file.",
	},
	ChangeWhitespaceFileReplacedWithOneLine: {
		applied: "File replaced with a single empty line.",
		pending: "File would be replaced with a single empty line.",
	},
	ChangeTabReplacedWithSpaces: {
		applied: "Tab replaced with spaces.",
		pending: "Tab would be replaced with spaces.",
	},
	ChangeTabRemoved: {
		applied: "Tab removed.",
		pending: "Tab would be removed.",
	},
	ChangeNonStandardWhitespaceReplaced: {
		applied: "Non-standard whitespace character '%s' replaced by a space.",
		pending: "Non-standard whitespace character '%s' would be replaced by a space.",
	},
	ChangeNonStandardWhitespaceRemoved: {
		applied: "Non-standard whitespace character '%s' removed.",
		pending: "Non-standard whitespace character '%s' would be removed.",
	},
}

// Describe renders the change as a one line human readable string of the
// form "line <n>: <description>". With checkOnly set the prospective
// phrasing is used instead of the past one.
func (c Change) Describe(checkOnly bool) string {
	texts, ok := changeTexts[c.Kind]
	if !ok {
		return fmt.Sprintf("line %d: unknown change", c.LineNumber)
	}

	text := texts.applied
	if checkOnly {
		text = texts.pending
	}

	switch c.Kind {
	case ChangeNewLineMarkerReplaced:
		text = fmt.Sprintf(text, c.From, c.To)
	case ChangeNonStandardWhitespaceReplaced, ChangeNonStandardWhitespaceRemoved:
		text = fmt.Sprintf(text, escapeByte(c.Byte))
	}

	return fmt.Sprintf("line %d: %s", c.LineNumber, text)
}

// escapeByte converts a whitespace byte to its visible escape notation.
func escapeByte(c byte) string {
	switch c {
	case carriageReturn:
		return `\r`
	case lineFeed:
		return `\n`
	case tab:
		return `\t`
	case verticalTab:
		return `\v`
	case formFeed:
		return `\f`
	case space:
		return " "
	default:
		return "?"
	}
}
