package format

import (
	"testing"

	"github.com/spiffcs/prsummary/internal/model"
)

func TestCalculatePRSize(t *testing.T) {
	thresholds := DefaultPRSizeThresholds()

	tests := []struct {
		name      string
		additions uint
		deletions uint
		want      PRSize
	}{
		{"extra small", 5, 3, PRSizeXS},
		{"small lower bound", 10, 0, PRSizeXS},
		{"small", 30, 15, PRSizeS},
		{"medium", 100, 80, PRSizeM},
		{"large", 300, 150, PRSizeL},
		{"extra large", 400, 200, PRSizeXL},
		{"zero changes", 0, 0, PRSizeXS},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := model.PullRequestSummary{Additions: tt.additions, Deletions: tt.deletions}
			if got := CalculatePRSize(s, thresholds); got != tt.want {
				t.Errorf("CalculatePRSize(+%d/-%d) = %q, want %q", tt.additions, tt.deletions, got, tt.want)
			}
		})
	}
}

func TestPRSizeEdgeCases(t *testing.T) {
	thresholds := PRSizeThresholds{XS: 10, S: 50, M: 200, L: 500}

	tests := []struct {
		total uint
		want  PRSize
	}{
		{10, PRSizeXS},
		{11, PRSizeS},
		{50, PRSizeS},
		{51, PRSizeM},
		{200, PRSizeM},
		{201, PRSizeL},
		{500, PRSizeL},
		{501, PRSizeXL},
	}

	for _, tt := range tests {
		s := model.PullRequestSummary{Additions: tt.total}
		if got := CalculatePRSize(s, thresholds); got != tt.want {
			t.Errorf("total %d: got size %q, want %q", tt.total, got, tt.want)
		}
	}
}
