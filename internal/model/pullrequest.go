// Package model contains domain types for the prsummary application.
// These types are independent of any external GitHub library.
package model

import "fmt"

// PullRequestIdentifier addresses a single pull request on the hosting service.
// The number is kept as the raw path segment; the API accepts it as-is.
type PullRequestIdentifier struct {
	Owner      string
	Repository string
	Number     string
}

// String renders the identifier as owner/repo#number.
func (id PullRequestIdentifier) String() string {
	return fmt.Sprintf("%s/%s#%s", id.Owner, id.Repository, id.Number)
}

// APIPath returns the REST path of the pull request, relative to the API base URL.
func (id PullRequestIdentifier) APIPath() string {
	return fmt.Sprintf("repos/%s/%s/pulls/%s", id.Owner, id.Repository, id.Number)
}

// PullRequestSummary is the reduced view of a pull request used for display.
type PullRequestSummary struct {
	Title        string
	URL          string // html_url, the canonical web URL
	Additions    uint
	Deletions    uint
	ChangedFiles uint
}

// TotalChanges returns additions plus deletions.
func (s PullRequestSummary) TotalChanges() uint {
	return s.Additions + s.Deletions
}
