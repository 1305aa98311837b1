// Package ghclient fetches pull request data from the GitHub REST API.
package ghclient

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	gh "github.com/google/go-github/v57/github"
	"github.com/spiffcs/prsummary/internal/log"
	"github.com/spiffcs/prsummary/internal/model"
	"golang.org/x/oauth2"
)

// Client wraps the GitHub API client
type Client struct {
	client    *gh.Client
	rateLimit *RateLimitState
}

type clientOptions struct {
	baseURL    string
	userAgent  string
	timeout    time.Duration
	httpClient *http.Client
}

// Option configures a Client.
type Option func(*clientOptions)

// WithBaseURL points the client at another API root, such as a GitHub
// Enterprise server (https://ghe.example.com/api/v3/) or a test server.
func WithBaseURL(baseURL string) Option {
	return func(o *clientOptions) {
		o.baseURL = baseURL
	}
}

// WithUserAgent overrides the User-Agent header.
func WithUserAgent(ua string) Option {
	return func(o *clientOptions) {
		o.userAgent = ua
	}
}

// WithTimeout bounds each request. Zero keeps the http.Client default.
func WithTimeout(d time.Duration) Option {
	return func(o *clientOptions) {
		o.timeout = d
	}
}

// WithHTTPClient sets the base HTTP client the oauth2 transport wraps.
func WithHTTPClient(hc *http.Client) Option {
	return func(o *clientOptions) {
		o.httpClient = hc
	}
}

// NewClient creates a GitHub client authenticated with token.
// The token must be supplied by the caller; it is never read from the environment here.
func NewClient(ctx context.Context, token string, opts ...Option) (*Client, error) {
	if token == "" {
		return nil, model.NewError(model.KindAuthFailure, "GitHub token not provided")
	}

	o := &clientOptions{}
	for _, opt := range opts {
		opt(o)
	}

	if o.httpClient != nil {
		ctx = context.WithValue(ctx, oauth2.HTTPClient, o.httpClient)
	}
	ts := oauth2.StaticTokenSource(
		&oauth2.Token{AccessToken: token},
	)
	tc := oauth2.NewClient(ctx, ts)
	if o.timeout > 0 {
		tc.Timeout = o.timeout
	}

	state := &RateLimitState{}
	tc.Transport = &rateLimitTransport{
		base:  tc.Transport,
		state: state,
	}

	client := gh.NewClient(tc)

	if o.baseURL != "" {
		u, err := parseBaseURL(o.baseURL)
		if err != nil {
			return nil, model.WrapError(model.KindAuthFailure, "not create github client", err)
		}
		client.BaseURL = u
	}
	if o.userAgent != "" {
		client.UserAgent = o.userAgent
	}

	return &Client{
		client:    client,
		rateLimit: state,
	}, nil
}

// parseBaseURL validates an API root and ensures it ends with a slash,
// which go-github requires to resolve relative paths.
func parseBaseURL(raw string) (*url.URL, error) {
	u, err := url.Parse(raw)
	if err != nil {
		return nil, fmt.Errorf("invalid API URL %q: %w", raw, err)
	}
	if u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("invalid API URL %q: scheme and host are required", raw)
	}
	if !strings.HasSuffix(u.Path, "/") {
		u.Path += "/"
	}
	return u, nil
}

// BaseURL returns the API root requests are sent to.
func (c *Client) BaseURL() string {
	return c.client.BaseURL.String()
}

// PullRequest fetches the pull request addressed by id and reduces it to a summary.
// A successful response without a pull request body yields a KindNotFound error.
func (c *Client) PullRequest(ctx context.Context, id model.PullRequestIdentifier) (model.PullRequestSummary, error) {
	start := time.Now()
	path := id.APIPath()

	req, err := c.client.NewRequest(http.MethodGet, path, nil)
	if err != nil {
		return model.PullRequestSummary{}, model.WrapError(model.KindTransportFailure, "not get pull request", err)
	}

	log.Debug("fetching pull request", "path", path, "base_url", c.BaseURL())

	var pr *gh.PullRequest
	resp, err := c.client.Do(ctx, req, &pr)
	log.Elapsed("pull request request finished", start, "path", path)
	if log.IsTrace() && resp != nil {
		log.Trace("pull request response", "status", resp.StatusCode, "content_length", resp.ContentLength)
	}
	if err != nil {
		return model.PullRequestSummary{}, classifyError(err)
	}

	if log.IsDebug() {
		if remaining, limit, resetAt, _ := c.rateLimit.Status(); limit > 0 {
			log.Debug("rate limit", "remaining", remaining, "limit", limit, "resets_at", resetAt.Format(time.RFC3339))
		}
	}

	// A body without title or html_url, such as {}, is not a pull request.
	if pr == nil || (pr.Title == nil && pr.HTMLURL == nil) {
		return model.PullRequestSummary{}, model.NewError(model.KindNotFound, "no pull request")
	}

	return toSummary(pr), nil
}

// classifyError maps a go-github error onto the error kinds the CLI reports.
func classifyError(err error) error {
	var ghErr *gh.ErrorResponse
	if errors.As(err, &ghErr) && ghErr.Response != nil && ghErr.Response.StatusCode == http.StatusUnauthorized {
		return model.WrapError(model.KindAuthFailure, "not get pull request: bad credentials", err)
	}
	return model.WrapError(model.KindTransportFailure, "not get pull request", err)
}

func toSummary(pr *gh.PullRequest) model.PullRequestSummary {
	return model.PullRequestSummary{
		Title:        pr.GetTitle(),
		URL:          pr.GetHTMLURL(),
		Additions:    count(pr.GetAdditions()),
		Deletions:    count(pr.GetDeletions()),
		ChangedFiles: count(pr.GetChangedFiles()),
	}
}

// count converts an API counter to uint; the API never reports negatives.
func count(n int) uint {
	if n < 0 {
		return 0
	}
	return uint(n)
}

// AuthenticatedUser returns the authenticated user's login
func (c *Client) AuthenticatedUser(ctx context.Context) (string, error) {
	user, _, err := c.client.Users.Get(ctx, "")
	if err != nil {
		return "", fmt.Errorf("failed to get authenticated user: %w", err)
	}
	return user.GetLogin(), nil
}

// RateLimits fetches the current GitHub API rate limit status.
func (c *Client) RateLimits(ctx context.Context) (*gh.RateLimits, error) {
	limits, _, err := c.client.RateLimit.Get(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get rate limits: %w", err)
	}
	return limits, nil
}
