package application

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/pipeshift/pipeshift/internal/domain"
	"github.com/pipeshift/pipeshift/internal/domain/compat"
	"github.com/pipeshift/pipeshift/internal/domain/scan"
	"github.com/pipeshift/pipeshift/internal/domain/secrets"
	"github.com/pipeshift/pipeshift/internal/domain/synth"
)

// ConvertOptions tune one conversion run.
type ConvertOptions struct {
	// WithSecrets maps credential call sites and records the resulting keys
	// as required variables in the generated configuration.
	WithSecrets bool
	// Lint sends the generated text to the remote lint service.
	Lint bool
}

// ConvertService orchestrates the conversion pipeline:
// scan → verdicts → synthesize → serialize, with optional remote linting.
type ConvertService struct {
	knowledge domain.KnowledgeSource
	config    domain.ConfigLoader
	linter    domain.Linter // optional
}

func NewConvertService(knowledge domain.KnowledgeSource, config domain.ConfigLoader, linter domain.Linter) *ConvertService {
	return &ConvertService{knowledge: knowledge, config: config, linter: linter}
}

// Convert synthesizes the target configuration for the pipeline definition at
// path.
func (s *ConvertService) Convert(ctx context.Context, path string, opts ConvertOptions) (*domain.ConversionResult, error) {
	cfg, err := s.config.Load(filepath.Dir(path))
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	text, err := readSource(path, cfg.EffectiveMaxInputBytes())
	if err != nil {
		return nil, err
	}

	catalog, err := s.knowledge.Load()
	if err != nil {
		return nil, fmt.Errorf("loading knowledge catalog: %w", err)
	}
	kb, err := compat.NewKnowledgeBase(catalog)
	if err != nil {
		return nil, fmt.Errorf("building knowledge base: %w", err)
	}

	profile := scan.Scan(text)
	verdicts := compat.AnalyzeAll(kb, profile.FeatureHits)

	var specs []domain.VariableSpec
	if opts.WithSecrets {
		specs = secrets.MapVariables(secrets.Extract(text), cfg.EffectiveProtectedTokens())
	}

	doc := synth.Synthesize(profile, verdicts, specs)
	result := &domain.ConversionResult{
		SourcePath: path,
		Document:   doc,
		YAML:       synth.Serialize(doc),
	}

	if opts.Lint && s.linter != nil {
		lint := s.linter.Lint(ctx, result.YAML)
		result.Lint = &lint
	}

	return result, nil
}
