package status

import (
	"fmt"
)

// FileFormatter defines how file processing and run summaries should be formatted
type FileFormatter interface {
	// FormatProcessing formats the line announcing a file is being processed
	FormatProcessing(path string) string

	// FormatResult formats a per-file outcome line
	FormatResult(path string, status FileStatus) string

	// FormatSummary formats the end-of-run summary line
	FormatSummary(summary Summary) string

	// FormatError formats an error message
	FormatError(err error) string
}

// DefaultFileFormatter provides a default implementation of FileFormatter
type DefaultFileFormatter struct{}

// NewDefaultFileFormatter creates a new DefaultFileFormatter
func NewDefaultFileFormatter() *DefaultFileFormatter {
	return &DefaultFileFormatter{}
}

// FormatProcessing formats the processing announcement
func (f *DefaultFileFormatter) FormatProcessing(path string) string {
	return fmt.Sprintf("Processing %s...", path)
}

// FormatResult formats a per-file outcome line with emojis
func (f *DefaultFileFormatter) FormatResult(path string, status FileStatus) string {
	switch status {
	case StatusFixed:
		return fmt.Sprintf("  ✅ Fixed %s", path)
	case StatusError:
		return fmt.Sprintf("  ❌ Failed %s", path)
	default:
		return fmt.Sprintf("  ⏭️  No changes needed for %s", path)
	}
}

// FormatSummary formats the end-of-run summary line
func (f *DefaultFileFormatter) FormatSummary(summary Summary) string {
	return fmt.Sprintf("\n✨ Done! %d fixed, %d unchanged", summary.Fixed, summary.Unchanged)
}

// FormatError formats an error message with emoji
func (f *DefaultFileFormatter) FormatError(err error) string {
	if err == nil {
		return ""
	}
	return fmt.Sprintf("❌ Error: %v", err)
}
