package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pipeshift/pipeshift/internal/adapters/outbound/tui"
)

func newSecretsCmd() *cobra.Command {
	var (
		jsonOutput bool
		envFile    bool
		script     bool
	)

	cmd := &cobra.Command{
		Use:   "secrets [Jenkinsfile]",
		Short: "Extract credentials and map them to CI/CD variables",
		Long:  "Scan a Jenkinsfile for credential call sites and propose GitLab CI/CD variable declarations, with provisioning artifacts.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			report, err := newSecretsService().ExtractSecrets(sourceArg(args))
			if err != nil {
				return fmt.Errorf("secret extraction failed: %w", err)
			}

			switch {
			case jsonOutput:
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(report)
			case envFile:
				fmt.Fprint(cmd.OutOrStdout(), report.EnvFile)
			case script:
				fmt.Fprint(cmd.OutOrStdout(), report.Script)
			default:
				fmt.Fprint(cmd.OutOrStdout(), tui.RenderSecrets(report))
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output the inventory as JSON")
	cmd.Flags().BoolVar(&envFile, "env-file", false, "Output a dotenv-style key list")
	cmd.Flags().BoolVar(&script, "script", false, "Output the provisioning shell script")

	return cmd
}
