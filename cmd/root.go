package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spiffcs/prsummary/internal/log"
)

// New creates the root command with all subcommands registered.
func New() *cobra.Command {
	return newRootCmd(NewOptions())
}

func newRootCmd(opts *Options) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "prsummary <pull-request-url>",
		Short: "Summarize a GitHub pull request",
		Long: `Fetches a pull request from the GitHub API and prints its title,
line additions/deletions, changed-file count and URL.

The token is read from GITHUB_API_TOKEN (or GITHUB_TOKEN).

Example:
  prsummary https://github.com/acme/widgets/pull/42`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSummary(cmd, args[0], opts)
		},
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			log.Initialize(opts.Verbosity, cmd.ErrOrStderr())
		},
		SilenceUsage:  true,
		SilenceErrors: true,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
	}

	addSummaryFlags(rootCmd, opts)

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&opts.APIURL, "api-url", opts.APIURL, "GitHub API root (default $GITHUB_API_URL, config api_url, or https://api.github.com/)")
	pf.StringVar(&opts.Timeout, "timeout", opts.Timeout, "Request timeout (e.g., 30s, 2m); default from config or none")
	pf.CountVarP(&opts.Verbosity, "verbose", "v", "Increase verbosity (-v info, -vv debug, -vvv trace)")

	rootCmd.AddCommand(NewCmdVersion())
	rootCmd.AddCommand(NewCmdRateLimit(opts))
	rootCmd.AddCommand(NewCmdAuth(opts))
	rootCmd.AddCommand(NewCmdConfig())

	return rootCmd
}
