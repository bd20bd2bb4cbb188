package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pipeshift/pipeshift/internal/adapters/outbound/lint"
	"github.com/pipeshift/pipeshift/internal/domain"
)

func newLintCmd() *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "lint <file>",
		Short: "Lint a CI configuration against a GitLab instance",
		Long:  "Send an existing .gitlab-ci.yml to the GitLab CI lint API. The instance comes from GITLAB_URL (and usually GITLAB_TOKEN) in the environment, or from .pipeshift.yaml next to the linted file.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			endpoint, token := collaborator("GITLAB_URL", "GITLAB_TOKEN", fileConfig(args[0]).Lint)
			if endpoint == "" {
				return fmt.Errorf("no GitLab instance configured: set GITLAB_URL or lint.endpoint in .pipeshift.yaml")
			}

			data, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("reading %s: %w", args[0], err)
			}

			result := lint.New(endpoint, token).Lint(cmd.Context(), string(data))

			if jsonOutput {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(result)
			}

			switch {
			case result.Status == domain.CollaboratorDegraded:
				fmt.Fprintf(cmd.OutOrStdout(), "lint degraded: %s\n", result.Note)
			case result.Valid:
				fmt.Fprintln(cmd.OutOrStdout(), "configuration is valid")
			default:
				fmt.Fprintln(cmd.OutOrStdout(), "configuration is invalid:")
				for _, e := range result.Errors {
					fmt.Fprintf(cmd.OutOrStdout(), "  - %s\n", e)
				}
				return fmt.Errorf("lint failed")
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output the lint result as JSON")

	return cmd
}
