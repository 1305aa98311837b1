// Package constants provides a centralized location for configuration
// values shared across the prsummary application.
package constants

// Environment variables
const (
	// TokenEnvVar holds the GitHub API token.
	TokenEnvVar = "GITHUB_API_TOKEN"

	// FallbackTokenEnvVar is consulted when TokenEnvVar is unset, matching
	// the variable most GitHub tooling already exports.
	FallbackTokenEnvVar = "GITHUB_TOKEN"

	// APIURLEnvVar overrides the GitHub API root (GitHub Enterprise).
	APIURLEnvVar = "GITHUB_API_URL"
)

// Rate limiting constants
const (
	// RateLimitLowWatermark is the threshold below which rate limit
	// warnings are logged.
	RateLimitLowWatermark = 100
)

// Output format names
const (
	FormatText     = "text"
	FormatJSON     = "json"
	FormatMarkdown = "markdown"
)
