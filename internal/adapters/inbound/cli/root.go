package cli

import (
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var (
	version = "dev"
	commit  = "none"
)

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "pipeshift",
		Short:         "Move Jenkins pipelines to GitLab CI without guesswork",
		Long:          "Pipeshift analyzes a Jenkinsfile, grades every plugin against GitLab CI, migrates its credentials and generates a working .gitlab-ci.yml.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.AddCommand(newVersionCmd())
	cmd.AddCommand(newAnalyzeCmd())
	cmd.AddCommand(newSecretsCmd())
	cmd.AddCommand(newConvertCmd())
	cmd.AddCommand(newLintCmd())
	cmd.AddCommand(newMCPCmd())
	return cmd
}

// NewRootCmdForTest returns the root command for testing.
func NewRootCmdForTest() *cobra.Command {
	return newRootCmd()
}

func Execute() error {
	// Service endpoints and tokens may live in a local .env; absence is fine.
	_ = godotenv.Load()
	return newRootCmd().Execute()
}
