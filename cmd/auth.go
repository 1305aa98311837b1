package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spiffcs/prsummary/config"
	"github.com/spiffcs/prsummary/internal/constants"
)

// NewCmdAuth creates the auth command.
func NewCmdAuth(opts *Options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "auth",
		Short: "Inspect GitHub authentication",
	}
	cmd.AddCommand(NewCmdAuthStatus(opts))
	return cmd
}

// NewCmdAuthStatus creates the auth status subcommand.
func NewCmdAuthStatus(opts *Options) *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show which account the token belongs to",
		Long: `Resolve the token from the environment and ask the API which user it
authenticates as. Useful to check a token before summarizing pull requests.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runAuthStatus(cmd, opts)
		},
	}
}

func runAuthStatus(cmd *cobra.Command, opts *Options) error {
	token := config.GitHubToken()
	if token == "" {
		return fmt.Errorf("GitHub token not provided. Set the %s environment variable", constants.TokenEnvVar)
	}

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	client, err := newGitHubClient(cmd.Context(), token, opts, cfg)
	if err != nil {
		return err
	}

	login, err := client.AuthenticatedUser(cmd.Context())
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Logged in to %s as %s\n", client.BaseURL(), login)
	return nil
}
