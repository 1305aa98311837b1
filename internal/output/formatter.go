// Package output writes pull request summaries in the supported formats.
package output

import (
	"fmt"
	"io"

	"github.com/spiffcs/prsummary/internal/constants"
	"github.com/spiffcs/prsummary/internal/format"
	"github.com/spiffcs/prsummary/internal/model"
)

// Format represents the output format
type Format string

const (
	FormatText     Format = constants.FormatText
	FormatJSON     Format = constants.FormatJSON
	FormatMarkdown Format = constants.FormatMarkdown
)

// Formats lists every supported output format.
var Formats = []Format{FormatText, FormatJSON, FormatMarkdown}

// ParseFormat validates a format name.
func ParseFormat(s string) (Format, error) {
	for _, f := range Formats {
		if string(f) == s {
			return f, nil
		}
	}
	return "", fmt.Errorf("unknown output format %q (use text, json or markdown)", s)
}

// Options tune how a summary is rendered.
type Options struct {
	Color          bool // colorize the diffstat (text only)
	MaxTitleWidth  int  // 0 = no truncation
	SizeThresholds format.PRSizeThresholds
}

// Formatter defines the interface for output formatters
type Formatter interface {
	Format(id model.PullRequestIdentifier, s model.PullRequestSummary, w io.Writer) error
}

// NewFormatter creates a formatter for the specified format
func NewFormatter(f Format, opts Options) Formatter {
	switch f {
	case FormatJSON:
		return &JSONFormatter{Pretty: true, opts: opts}
	case FormatMarkdown:
		return &MarkdownFormatter{opts: opts}
	default:
		return &TextFormatter{opts: opts}
	}
}
