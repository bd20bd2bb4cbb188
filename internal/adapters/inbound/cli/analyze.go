package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pipeshift/pipeshift/internal/adapters/outbound/tui"
	"github.com/pipeshift/pipeshift/internal/domain"
)

func newAnalyzeCmd() *cobra.Command {
	var (
		jsonOutput   bool
		checklist    bool
		withAdvisor  bool
		ciMode       bool
		minReadiness string
	)

	cmd := &cobra.Command{
		Use:   "analyze [Jenkinsfile]",
		Short: "Analyze a Jenkins pipeline for GitLab CI migration",
		Long:  "Scan a Jenkinsfile, grade every detected plugin against GitLab CI and produce a migration readiness report.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			source := sourceArg(args)
			svc := newAnalyzeService(source, withAdvisor)
			report, err := svc.Analyze(cmd.Context(), source)
			if err != nil {
				return fmt.Errorf("analysis failed: %w", err)
			}

			switch {
			case jsonOutput:
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(report)
			case checklist:
				fmt.Fprint(cmd.OutOrStdout(), report.Checklist)
			default:
				fmt.Fprint(cmd.OutOrStdout(), tui.RenderReport(report))
			}

			if ciMode {
				min := domain.Readiness(minReadiness)
				if !domain.ValidReadiness(min) {
					return fmt.Errorf("invalid --min-readiness value %q", minReadiness)
				}
				if !domain.ReadinessAtLeast(report.Summary.Readiness, min) {
					return fmt.Errorf("pipeline readiness %s is below the %s gate", report.Summary.Readiness, min)
				}
			}

			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output the report as JSON")
	cmd.Flags().BoolVar(&checklist, "checklist", false, "Output the textual migration checklist")
	cmd.Flags().BoolVar(&withAdvisor, "advisor", false, "Fetch advisory prose from the configured advisor service")
	cmd.Flags().BoolVar(&ciMode, "ci", false, "CI mode: exit 1 when readiness falls below the gate")
	cmd.Flags().StringVar(&minReadiness, "min-readiness", string(domain.ReadinessReady),
		"Worst readiness accepted in CI mode (ready, needs-preparation, significant-work-needed)")

	return cmd
}
