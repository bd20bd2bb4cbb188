package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	mcplib "github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/pipeshift/pipeshift/internal/adapters/outbound/config"
	"github.com/pipeshift/pipeshift/internal/adapters/outbound/gitinfo"
	"github.com/pipeshift/pipeshift/internal/adapters/outbound/history"
	"github.com/pipeshift/pipeshift/internal/adapters/outbound/knowledge"
	"github.com/pipeshift/pipeshift/internal/application"
)

// registerTools registers all pipeshift MCP tools on the given server.
func registerTools(s *server.MCPServer, sourcePath string) {
	// 1. pipeshift_analyze
	s.AddTool(
		mcplib.NewTool("pipeshift_analyze",
			mcplib.WithDescription("Analyze the Jenkins pipeline and return the full migration report as JSON"),
		),
		handleAnalyze(sourcePath),
	)

	// 2. pipeshift_checklist
	s.AddTool(
		mcplib.NewTool("pipeshift_checklist",
			mcplib.WithDescription("Return the textual migration checklist for the Jenkins pipeline"),
		),
		handleChecklist(sourcePath),
	)

	// 3. pipeshift_secrets
	s.AddTool(
		mcplib.NewTool("pipeshift_secrets",
			mcplib.WithDescription("Extract credential call sites and return the proposed CI/CD variable inventory as JSON"),
		),
		handleSecrets(sourcePath),
	)

	// 4. pipeshift_convert
	s.AddTool(
		mcplib.NewTool("pipeshift_convert",
			mcplib.WithDescription("Generate a .gitlab-ci.yml from the Jenkins pipeline and return its text"),
			mcplib.WithBoolean("with_secrets", mcplib.Description("Record mapped credential keys as required variables")),
		),
		handleConvert(sourcePath),
	)
}

func newAnalyzeService() *application.AnalyzeService {
	return application.NewAnalyzeService(
		knowledge.New(),
		config.New(),
		gitinfo.New(),
		history.New(),
		nil, // advisory prose is a CLI concern; MCP clients write their own
	)
}

func handleAnalyze(sourcePath string) server.ToolHandlerFunc {
	return func(ctx context.Context, _ mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		report, err := newAnalyzeService().Analyze(ctx, sourcePath)
		if err != nil {
			return errorResult(fmt.Sprintf("analysis failed: %v", err)), nil
		}
		return jsonResult(report)
	}
}

func handleChecklist(sourcePath string) server.ToolHandlerFunc {
	return func(ctx context.Context, _ mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		report, err := newAnalyzeService().Analyze(ctx, sourcePath)
		if err != nil {
			return errorResult(fmt.Sprintf("analysis failed: %v", err)), nil
		}
		return textResult(report.Checklist), nil
	}
}

func handleSecrets(sourcePath string) server.ToolHandlerFunc {
	return func(_ context.Context, _ mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		report, err := application.NewSecretsService(config.New()).ExtractSecrets(sourcePath)
		if err != nil {
			return errorResult(fmt.Sprintf("secret extraction failed: %v", err)), nil
		}
		return jsonResult(report)
	}
}

func handleConvert(sourcePath string) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		svc := application.NewConvertService(knowledge.New(), config.New(), nil)
		result, err := svc.Convert(ctx, sourcePath, application.ConvertOptions{
			WithSecrets: request.GetBool("with_secrets", false),
		})
		if err != nil {
			return errorResult(fmt.Sprintf("conversion failed: %v", err)), nil
		}
		return textResult(result.YAML), nil
	}
}

// jsonResult marshals v into a text content result.
func jsonResult(v interface{}) (*mcplib.CallToolResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshaling result: %w", err)
	}
	return &mcplib.CallToolResult{
		Content: []mcplib.Content{mcplib.NewTextContent(string(data))},
	}, nil
}

// textResult returns a plain text content result.
func textResult(text string) *mcplib.CallToolResult {
	return &mcplib.CallToolResult{
		Content: []mcplib.Content{mcplib.NewTextContent(text)},
	}
}

// errorResult returns an error content result.
func errorResult(msg string) *mcplib.CallToolResult {
	return &mcplib.CallToolResult{
		Content: []mcplib.Content{mcplib.NewTextContent(msg)},
		IsError: true,
	}
}
