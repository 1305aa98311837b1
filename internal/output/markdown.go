package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/spiffcs/prsummary/internal/format"
	"github.com/spiffcs/prsummary/internal/model"
)

// MarkdownFormatter formats output as Markdown
type MarkdownFormatter struct {
	opts Options
}

// Format outputs the summary as a short Markdown section.
func (f *MarkdownFormatter) Format(id model.PullRequestIdentifier, s model.PullRequestSummary, w io.Writer) error {
	title := escapeMarkdown(format.Title(s.Title, f.opts.MaxTitleWidth))
	size := format.CalculatePRSize(s, f.opts.SizeThresholds)

	var b strings.Builder
	fmt.Fprintf(&b, "### [%s](%s)\n\n", title, s.URL)
	fmt.Fprintf(&b, "- **Pull request:** %s\n", id)
	fmt.Fprintf(&b, "- **Changes:** +%d / -%d (%s)\n", s.Additions, s.Deletions, size)
	fmt.Fprintf(&b, "- **Changed files:** %d\n", s.ChangedFiles)

	_, err := io.WriteString(w, b.String())
	return err
}

// escapeMarkdown escapes characters that would break a link label.
func escapeMarkdown(s string) string {
	replacer := strings.NewReplacer(
		`\`, `\\`,
		"[", `\[`,
		"]", `\]`,
		"*", `\*`,
		"_", `\_`,
		"`", "\\`",
	)
	return replacer.Replace(s)
}
