package format

import "github.com/spiffcs/prsummary/internal/model"

// PRSize represents a T-shirt size category for PR changes.
type PRSize string

const (
	PRSizeXS PRSize = "XS"
	PRSizeS  PRSize = "S"
	PRSizeM  PRSize = "M"
	PRSizeL  PRSize = "L"
	PRSizeXL PRSize = "XL"
)

// PRSizeThresholds holds the thresholds for determining PR size.
type PRSizeThresholds struct {
	XS uint // <= XS is extra small
	S  uint // <= S is small
	M  uint // <= M is medium
	L  uint // <= L is large
	// > L is extra large
}

// DefaultPRSizeThresholds returns the built-in size thresholds.
func DefaultPRSizeThresholds() PRSizeThresholds {
	return PRSizeThresholds{XS: 10, S: 50, M: 200, L: 500}
}

// CalculatePRSize determines the T-shirt size of a PR from its total changed lines.
func CalculatePRSize(s model.PullRequestSummary, thresholds PRSizeThresholds) PRSize {
	total := s.TotalChanges()

	switch {
	case total <= thresholds.XS:
		return PRSizeXS
	case total <= thresholds.S:
		return PRSizeS
	case total <= thresholds.M:
		return PRSizeM
	case total <= thresholds.L:
		return PRSizeL
	default:
		return PRSizeXL
	}
}
