package cli

import (
	"os"
	"path/filepath"

	"github.com/pipeshift/pipeshift/internal/adapters/outbound/advisor"
	"github.com/pipeshift/pipeshift/internal/adapters/outbound/config"
	"github.com/pipeshift/pipeshift/internal/adapters/outbound/gitinfo"
	"github.com/pipeshift/pipeshift/internal/adapters/outbound/history"
	"github.com/pipeshift/pipeshift/internal/adapters/outbound/knowledge"
	"github.com/pipeshift/pipeshift/internal/adapters/outbound/lint"
	"github.com/pipeshift/pipeshift/internal/application"
	"github.com/pipeshift/pipeshift/internal/domain"
)

// defaultSource is the conventional pipeline definition file name.
const defaultSource = "Jenkinsfile"

func sourceArg(args []string) string {
	if len(args) > 0 {
		return args[0]
	}
	return defaultSource
}

// fileConfig reads the project config sitting next to path. Load errors are
// swallowed here; the service reloads the same file and reports them itself.
func fileConfig(path string) domain.ProjectConfig {
	cfg, err := config.New().Load(filepath.Dir(path))
	if err != nil {
		return domain.DefaultConfig()
	}
	return cfg
}

// collaborator resolves an external service endpoint and token. Environment
// variables win over the project config file.
func collaborator(endpointVar, tokenVar string, file domain.ServiceConfig) (string, string) {
	endpoint := os.Getenv(endpointVar)
	if endpoint == "" {
		endpoint = file.Endpoint
	}
	token := os.Getenv(tokenVar)
	if token == "" {
		token = file.Token
	}
	return endpoint, token
}

// newAnalyzeService wires the analyze pipeline for the given source file. The
// advisor is only attached when an endpoint is configured; analysis is
// complete without it.
func newAnalyzeService(source string, withAdvisor bool) *application.AnalyzeService {
	var adv domain.Advisor
	if withAdvisor {
		if endpoint, token := collaborator("PIPESHIFT_ADVISOR_URL", "PIPESHIFT_ADVISOR_TOKEN", fileConfig(source).Advisor); endpoint != "" {
			adv = advisor.New(endpoint, token)
		}
	}
	return application.NewAnalyzeService(
		knowledge.New(),
		config.New(),
		gitinfo.New(),
		history.New(),
		adv,
	)
}

func newSecretsService() *application.SecretsService {
	return application.NewSecretsService(config.New())
}

// newConvertService wires the conversion pipeline for the given source file;
// the linter is optional and points at the GitLab instance from the
// environment or the project config.
func newConvertService(source string) *application.ConvertService {
	var linter domain.Linter
	if endpoint, token := collaborator("GITLAB_URL", "GITLAB_TOKEN", fileConfig(source).Lint); endpoint != "" {
		linter = lint.New(endpoint, token)
	}
	return application.NewConvertService(knowledge.New(), config.New(), linter)
}
