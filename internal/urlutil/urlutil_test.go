package urlutil

import (
	"strings"
	"testing"

	"github.com/spiffcs/prsummary/internal/model"
)

func TestParsePullRequestURL(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  model.PullRequestIdentifier
	}{
		{
			name:  "canonical",
			input: "https://github.com/acme/widgets/pull/42",
			want:  model.PullRequestIdentifier{Owner: "acme", Repository: "widgets", Number: "42"},
		},
		{
			name:  "trailing segments",
			input: "https://github.com/acme/widgets/pull/42/files",
			want:  model.PullRequestIdentifier{Owner: "acme", Repository: "widgets", Number: "42"},
		},
		{
			name:  "query and fragment",
			input: "https://github.com/acme/widgets/pull/42?w=1#discussion_r1",
			want:  model.PullRequestIdentifier{Owner: "acme", Repository: "widgets", Number: "42"},
		},
		{
			name:  "trailing slash",
			input: "https://github.com/acme/widgets/pull/42/",
			want:  model.PullRequestIdentifier{Owner: "acme", Repository: "widgets", Number: "42"},
		},
		{
			name:  "number is kept opaque",
			input: "https://ghe.example.com/org/repo.go/pull/007",
			want:  model.PullRequestIdentifier{Owner: "org", Repository: "repo.go", Number: "007"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParsePullRequestURL(tt.input)
			if err != nil {
				t.Fatalf("ParsePullRequestURL(%q) unexpected error: %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("ParsePullRequestURL(%q) = %+v, want %+v", tt.input, got, tt.want)
			}
		})
	}
}

func TestParsePullRequestURLErrors(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		wantKind model.Kind
		wantMsg  string
	}{
		{"not a url", "not a url", model.KindInvalidURL, "invalid url: not a url"},
		{"empty", "", model.KindInvalidURL, "invalid url: "},
		{"bad escape", "https://github.com/%zz", model.KindInvalidURL, "invalid url"},
		{"opaque", "mailto:someone@example.com", model.KindInvalidURL, "url pull request parse error"},
		{"no path", "https://github.com", model.KindIncompleteIdentifier, "missing owner"},
		{"root path", "https://github.com/", model.KindIncompleteIdentifier, "missing owner"},
		{"owner only", "https://github.com/acme", model.KindIncompleteIdentifier, "missing repository"},
		{"owner and repo", "https://github.com/acme/widgets", model.KindIncompleteIdentifier, "missing pull path"},
		{"no id", "https://github.com/acme/widgets/pull", model.KindIncompleteIdentifier, "missing pull request id"},
		{"empty id", "https://github.com/acme/widgets/pull/", model.KindIncompleteIdentifier, "missing pull request id"},
		{"dot owner", "https://github.com/./widgets/pull/1", model.KindIncompleteIdentifier, "missing owner"},
		{"dot dot repository", "https://github.com/acme/../pull/1", model.KindIncompleteIdentifier, "missing repository"},
		{"dot dot id", "https://github.com/acme/widgets/pull/..", model.KindIncompleteIdentifier, "missing pull request id"},
		{"escaped dot id", "https://github.com/acme/widgets/pull/%2E", model.KindIncompleteIdentifier, "missing pull request id"},
		{"tree keyword", "https://github.com/acme/widgets/tree/main", model.KindUnexpectedPathKeyword, "not a pull request url"},
		{"pulls keyword", "https://github.com/acme/widgets/pulls/42", model.KindUnexpectedPathKeyword, "not a pull request url"},
		{"wrong keyword without id", "https://github.com/acme/widgets/issues", model.KindUnexpectedPathKeyword, "not a pull request url"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParsePullRequestURL(tt.input)
			if err == nil {
				t.Fatalf("ParsePullRequestURL(%q) expected error, got nil", tt.input)
			}
			if got := model.KindOf(err); got != tt.wantKind {
				t.Errorf("ParsePullRequestURL(%q) kind = %v, want %v", tt.input, got, tt.wantKind)
			}
			if !strings.Contains(err.Error(), tt.wantMsg) {
				t.Errorf("ParsePullRequestURL(%q) error = %q, want it to contain %q", tt.input, err.Error(), tt.wantMsg)
			}
		})
	}
}
