package output

import (
	"encoding/json"
	"io"

	"github.com/spiffcs/prsummary/internal/format"
	"github.com/spiffcs/prsummary/internal/model"
)

// JSONFormatter formats output as JSON
type JSONFormatter struct {
	Pretty bool
	opts   Options
}

// JSONOutput is the document written by JSONFormatter.
type JSONOutput struct {
	Owner        string `json:"owner"`
	Repository   string `json:"repository"`
	Number       string `json:"number"`
	Title        string `json:"title"`
	URL          string `json:"html_url"`
	Additions    uint   `json:"additions"`
	Deletions    uint   `json:"deletions"`
	ChangedFiles uint   `json:"changed_files"`
	Size         string `json:"size"`
}

// Format outputs the summary as a single JSON object.
// Titles are never truncated in JSON.
func (f *JSONFormatter) Format(id model.PullRequestIdentifier, s model.PullRequestSummary, w io.Writer) error {
	out := JSONOutput{
		Owner:        id.Owner,
		Repository:   id.Repository,
		Number:       id.Number,
		Title:        s.Title,
		URL:          s.URL,
		Additions:    s.Additions,
		Deletions:    s.Deletions,
		ChangedFiles: s.ChangedFiles,
		Size:         string(format.CalculatePRSize(s, f.opts.SizeThresholds)),
	}

	encoder := json.NewEncoder(w)
	if f.Pretty {
		encoder.SetIndent("", "  ")
	}
	return encoder.Encode(out)
}
