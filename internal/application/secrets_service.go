package application

import (
	"fmt"
	"path/filepath"

	"github.com/pipeshift/pipeshift/internal/domain"
	"github.com/pipeshift/pipeshift/internal/domain/secrets"
)

// SecretsService orchestrates the credential pipeline:
// read source → extract call sites → map variables → validate → render
// provisioning artifacts.
type SecretsService struct {
	config domain.ConfigLoader
}

func NewSecretsService(config domain.ConfigLoader) *SecretsService {
	return &SecretsService{config: config}
}

// ExtractSecrets builds the full secrets report for the pipeline definition
// at path.
func (s *SecretsService) ExtractSecrets(path string) (*domain.SecretsReport, error) {
	cfg, err := s.config.Load(filepath.Dir(path))
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	text, err := readSource(path, cfg.EffectiveMaxInputBytes())
	if err != nil {
		return nil, err
	}

	hits := secrets.Extract(text)
	specs := secrets.MapVariables(hits, cfg.EffectiveProtectedTokens())

	return &domain.SecretsReport{
		SourcePath: path,
		Hits:       hits,
		Specs:      specs,
		Validation: secrets.ValidateSpecs(specs),
		EnvFile:    secrets.RenderEnvFile(specs),
		Script:     secrets.RenderProvisionScript(specs),
	}, nil
}
