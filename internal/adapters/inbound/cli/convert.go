package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pipeshift/pipeshift/internal/adapters/outbound/tui"
	"github.com/pipeshift/pipeshift/internal/application"
)

func newConvertCmd() *cobra.Command {
	var (
		jsonOutput  bool
		output      string
		withSecrets bool
		remoteLint  bool
	)

	cmd := &cobra.Command{
		Use:   "convert [Jenkinsfile]",
		Short: "Generate a .gitlab-ci.yml from a Jenkins pipeline",
		Long:  "Synthesize a structurally validated GitLab CI configuration from a Jenkinsfile, optionally linting it against a GitLab instance.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			source := sourceArg(args)
			svc := newConvertService(source)
			result, err := svc.Convert(cmd.Context(), source, application.ConvertOptions{
				WithSecrets: withSecrets,
				Lint:        remoteLint,
			})
			if err != nil {
				return fmt.Errorf("conversion failed: %w", err)
			}

			if output != "" {
				if err := os.WriteFile(output, []byte(result.YAML), 0644); err != nil {
					return fmt.Errorf("writing %s: %w", output, err)
				}
			}

			switch {
			case jsonOutput:
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(result)
			case output == "":
				fmt.Fprint(cmd.OutOrStdout(), result.YAML)
			default:
				fmt.Fprint(cmd.OutOrStdout(), tui.RenderConversion(result))
			}

			if !result.Document.Validation.Valid {
				return fmt.Errorf("generated configuration failed structural validation")
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output the conversion result as JSON")
	cmd.Flags().StringVarP(&output, "output", "o", "", "Write the generated configuration to a file")
	cmd.Flags().BoolVar(&withSecrets, "with-secrets", false, "Record mapped credential keys as required variables")
	cmd.Flags().BoolVar(&remoteLint, "lint", false, "Lint the result against the configured GitLab instance")

	return cmd
}
