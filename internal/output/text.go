package output

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/spiffcs/prsummary/internal/format"
	"github.com/spiffcs/prsummary/internal/model"
)

// TextFormatter writes the two-line summary.
type TextFormatter struct {
	opts Options
}

// Format writes the summary followed by a newline.
func (f *TextFormatter) Format(_ model.PullRequestIdentifier, s model.PullRequestSummary, w io.Writer) error {
	s.Title = format.Title(s.Title, f.opts.MaxTitleWidth)

	if !f.opts.Color {
		_, err := fmt.Fprintln(w, format.Summary(s))
		return err
	}

	green := color.New(color.FgGreen)
	red := color.New(color.FgRed)
	green.EnableColor()
	red.EnableColor()

	_, err := fmt.Fprintf(w, "%s (%s,%s) changed files %d\n%s\n",
		s.Title,
		green.Sprintf("+%d", s.Additions),
		red.Sprintf("-%d", s.Deletions),
		s.ChangedFiles,
		s.URL)
	return err
}
