package cmd

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"github.com/spiffcs/prsummary/config"
	"github.com/spiffcs/prsummary/internal/constants"
	"github.com/spiffcs/prsummary/internal/duration"
	"github.com/spiffcs/prsummary/internal/ghclient"
	"github.com/spiffcs/prsummary/internal/log"
	"github.com/spiffcs/prsummary/internal/output"
	"github.com/spiffcs/prsummary/internal/urlutil"
	"golang.org/x/term"
)

func addSummaryFlags(cmd *cobra.Command, opts *Options) {
	cmd.Flags().StringVarP(&opts.Format, "output", "o", opts.Format, "Output format: text, json, markdown (default from config, else text)")
	cmd.Flags().IntVar(&opts.MaxTitleWidth, "max-title-width", opts.MaxTitleWidth, "Shorten titles to this many columns (0 = never, -1 = config value)")
	cmd.Flags().BoolVar(&opts.NoColor, "no-color", opts.NoColor, "Disable colored output")
}

func runSummary(cmd *cobra.Command, rawURL string, opts *Options) error {
	start := time.Now()

	token := config.GitHubToken()
	if token == "" {
		return fmt.Errorf("GitHub token not provided. Set the %s environment variable", constants.TokenEnvVar)
	}

	id, err := urlutil.ParsePullRequestURL(rawURL)
	if err != nil {
		return err
	}
	log.Info("resolved pull request", "pull_request", id.String())

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	formatName := opts.Format
	if formatName == "" {
		formatName = cfg.DefaultFormat
	}
	outFormat, err := output.ParseFormat(formatName)
	if err != nil {
		return err
	}

	client, err := newGitHubClient(cmd.Context(), token, opts, cfg)
	if err != nil {
		return err
	}

	summary, err := client.PullRequest(cmd.Context(), id)
	if err != nil {
		return err
	}

	width := opts.MaxTitleWidth
	if width < 0 {
		width = cfg.GetMaxTitleWidth()
	}

	formatter := output.NewFormatter(outFormat, output.Options{
		Color:          outFormat == output.FormatText && useColor(cmd, opts),
		MaxTitleWidth:  width,
		SizeThresholds: cfg.GetPRSizeThresholds(),
	})
	if err := formatter.Format(id, summary, cmd.OutOrStdout()); err != nil {
		return fmt.Errorf("failed to write summary: %w", err)
	}

	log.Elapsed("summary complete", start)
	return nil
}

// newGitHubClient builds a client from flags, environment and config, in that order of precedence.
func newGitHubClient(ctx context.Context, token string, opts *Options, cfg *config.Config) (*ghclient.Client, error) {
	timeoutStr := opts.Timeout
	if timeoutStr == "" {
		timeoutStr = cfg.Timeout
	}
	timeout, err := duration.Parse(timeoutStr)
	if err != nil {
		return nil, fmt.Errorf("invalid timeout: %w", err)
	}

	clientOpts := []ghclient.Option{
		ghclient.WithTimeout(timeout),
		ghclient.WithUserAgent("prsummary/" + version),
	}

	apiURL := opts.APIURL
	if apiURL == "" {
		apiURL = cfg.GetAPIURL()
	}
	if apiURL != "" {
		clientOpts = append(clientOpts, ghclient.WithBaseURL(apiURL))
	}

	client, err := ghclient.NewClient(ctx, token, clientOpts...)
	if err != nil {
		return nil, err
	}
	log.Debug("github client ready", "base_url", client.BaseURL(), "timeout", timeout)
	return client, nil
}

// useColor reports whether the text output should be colorized: only when
// writing to a terminal and not disabled by --no-color or NO_COLOR.
func useColor(cmd *cobra.Command, opts *Options) bool {
	if opts.NoColor || os.Getenv("NO_COLOR") != "" {
		return false
	}
	f, ok := cmd.OutOrStdout().(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}
