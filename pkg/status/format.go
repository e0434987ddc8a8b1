package status

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/walteh/wsfmt/pkg/format"
)

// 🎨 Display configuration
const (
	changeIndent = 4 // spaces to indent change entries under their file
)

// ChangeFormatter defines how file outcomes and changes should be formatted
type ChangeFormatter interface {
	// FormatFile formats the header line for a file with pending or applied fixes
	FormatFile(path string, status FileStatus) string

	// FormatChange formats a single change entry below its file header
	FormatChange(change format.Change, checkOnly bool) string

	// FormatError formats a per-file error message
	FormatError(path string, err error) string
}

// DefaultChangeFormatter provides a default implementation of ChangeFormatter
type DefaultChangeFormatter struct{}

// NewDefaultChangeFormatter creates a new DefaultChangeFormatter
func NewDefaultChangeFormatter() *DefaultChangeFormatter {
	return &DefaultChangeFormatter{}
}

// FormatFile formats the file header line with a colored status symbol
func (f *DefaultChangeFormatter) FormatFile(path string, status FileStatus) string {
	var prefix string
	switch status {
	case StatusChanged:
		prefix = color.GreenString("✓")
	case StatusWouldChange:
		prefix = color.YellowString("⟳")
	case StatusError:
		prefix = color.RedString("✗")
	default:
		prefix = color.HiBlackString("-")
	}

	return fmt.Sprintf("%s %s", prefix, path)
}

// FormatChange formats a single change entry, indented under the file header
func (f *DefaultChangeFormatter) FormatChange(change format.Change, checkOnly bool) string {
	return strings.Repeat(" ", changeIndent) + change.Describe(checkOnly)
}

// FormatError formats a per-file error message
func (f *DefaultChangeFormatter) FormatError(path string, err error) string {
	if err == nil {
		return fmt.Sprintf("%s %s", color.RedString("✗"), path)
	}
	return fmt.Sprintf("%s %s: %v", color.RedString("✗"), path, err)
}
