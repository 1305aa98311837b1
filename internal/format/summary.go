package format

import (
	"fmt"

	"github.com/spiffcs/prsummary/internal/model"
)

// Summary renders a pull request summary as two lines:
//
//	<title> (+<additions>,-<deletions>) changed files <changedFiles>
//	<url>
func Summary(s model.PullRequestSummary) string {
	return fmt.Sprintf("%s %s changed files %d\n%s",
		s.Title, Diffstat(s.Additions, s.Deletions), s.ChangedFiles, s.URL)
}

// Diffstat renders line counts as (+adds,-dels).
func Diffstat(additions, deletions uint) string {
	return fmt.Sprintf("(+%d,-%d)", additions, deletions)
}
