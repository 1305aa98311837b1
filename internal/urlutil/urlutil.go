// Package urlutil provides URL parsing utilities.
package urlutil

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/spiffcs/prsummary/internal/model"
)

// PullKeyword is the path segment that marks a pull request resource,
// as in https://github.com/owner/repo/pull/123.
const PullKeyword = "pull"

// ParsePullRequestURL extracts the owner, repository and number from a pull
// request web URL. Segments after the number, the query string and the
// fragment are ignored.
func ParsePullRequestURL(raw string) (model.PullRequestIdentifier, error) {
	u, err := url.Parse(raw)
	if err != nil || u.Scheme == "" {
		return model.PullRequestIdentifier{}, model.NewError(model.KindInvalidURL, fmt.Sprintf("invalid url: %s", raw))
	}
	if u.Opaque != "" {
		return model.PullRequestIdentifier{}, model.NewError(model.KindInvalidURL, "url pull request parse error")
	}

	segments := pathSegments(u)

	owner, ok := segment(segments, 0)
	if !ok {
		return model.PullRequestIdentifier{}, missing("owner")
	}
	repo, ok := segment(segments, 1)
	if !ok {
		return model.PullRequestIdentifier{}, missing("repository")
	}
	keyword, ok := segment(segments, 2)
	if !ok {
		return model.PullRequestIdentifier{}, missing("pull path")
	}
	if keyword != PullKeyword {
		return model.PullRequestIdentifier{}, model.NewError(model.KindUnexpectedPathKeyword, fmt.Sprintf("not a pull request url: %s", raw))
	}
	number, ok := segment(segments, 3)
	if !ok {
		return model.PullRequestIdentifier{}, missing("pull request id")
	}

	return model.PullRequestIdentifier{
		Owner:      owner,
		Repository: repo,
		Number:     number,
	}, nil
}

// pathSegments splits the escaped URL path, dropping the leading slash.
// Segments stay percent-encoded since they are reused as API path components.
func pathSegments(u *url.URL) []string {
	path := strings.TrimPrefix(u.EscapedPath(), "/")
	if path == "" {
		return nil
	}
	return strings.Split(path, "/")
}

// segment returns the i-th segment. Empty and dot segments count as absent,
// since a dot segment would move the API request to another endpoint.
func segment(segments []string, i int) (string, bool) {
	if i >= len(segments) || segments[i] == "" {
		return "", false
	}
	if unescaped, err := url.PathUnescape(segments[i]); err == nil && (unescaped == "." || unescaped == "..") {
		return "", false
	}
	return segments[i], true
}

func missing(field string) error {
	return model.NewError(model.KindIncompleteIdentifier, fmt.Sprintf("missing %s: pull request url", field))
}
