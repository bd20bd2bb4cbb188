package cli

import (
	mcpadapter "github.com/pipeshift/pipeshift/internal/adapters/inbound/mcp"

	"github.com/mark3labs/mcp-go/server"
	"github.com/spf13/cobra"
)

func newMCPCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "mcp",
		Short: "MCP server commands",
		Long:  "Commands for running the pipeshift MCP (Model Context Protocol) server.",
	}
	cmd.AddCommand(newMCPServeCmd())
	return cmd
}

func newMCPServeCmd() *cobra.Command {
	var sourcePath string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the pipeshift MCP server (stdio)",
		Long:  "Start the pipeshift MCP server using stdio transport so AI coding assistants can run migration analysis, credential mapping and conversion.",
		RunE: func(cmd *cobra.Command, args []string) error {
			if sourcePath == "" {
				sourcePath = defaultSource
			}
			s := mcpadapter.NewPipeshiftMCPServer(sourcePath)
			return server.ServeStdio(s)
		},
	}

	cmd.Flags().StringVar(&sourcePath, "source", "", "Pipeline definition path (defaults to ./Jenkinsfile)")

	return cmd
}
