package application

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/pipeshift/pipeshift/internal/domain"
	"github.com/pipeshift/pipeshift/internal/domain/compat"
	"github.com/pipeshift/pipeshift/internal/domain/scan"
)

// AnalyzeService orchestrates the analysis pipeline:
// load config → read source → scan → verdicts → summary → recommendations →
// checklist, then stamps git metadata and records history.
type AnalyzeService struct {
	knowledge domain.KnowledgeSource
	config    domain.ConfigLoader
	git       domain.GitInfo
	history   domain.AnalysisHistory
	advisor   domain.Advisor // optional
}

func NewAnalyzeService(
	knowledge domain.KnowledgeSource,
	config domain.ConfigLoader,
	git domain.GitInfo,
	history domain.AnalysisHistory,
	advisor domain.Advisor,
) *AnalyzeService {
	return &AnalyzeService{
		knowledge: knowledge,
		config:    config,
		git:       git,
		history:   history,
		advisor:   advisor,
	}
}

// Analyze runs the full analysis over the pipeline definition at path.
func (s *AnalyzeService) Analyze(ctx context.Context, path string) (*domain.AnalysisReport, error) {
	dir := filepath.Dir(path)

	cfg, err := s.config.Load(dir)
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

	report := &domain.AnalysisReport{
		SourcePath:       path,
		GeneratedAt:      time.Now(),
		KnowledgeVersion: kb.Version(),
		Profile:          profile,
		Verdicts:         verdicts,
		Summary:          compat.Summarize(verdicts),
		Recommendations:  compat.Recommendations(kb, profile.FeatureHits),
		Checklist:        compat.Checklist(profile, verdicts),
	}

	if hash, err := s.git.CommitHash(dir); err == nil {
		report.CommitHash = hash
	}

	if s.advisor != nil {
		advisory := s.advisor.Advise(ctx, report)
		report.Advisory = &advisory
	}

	entry := domain.HistoryEntry{
		Timestamp:    report.GeneratedAt.Format(time.RFC3339),
		CommitHash:   report.CommitHash,
		Readiness:    report.Summary.Readiness,
		FeatureCount: profile.FeatureCount,
		Tier:         string(profile.ComplexityTier),
	}
	_ = s.history.Save(dir, entry) // best-effort

	return report, nil
}

// readSource reads the pipeline definition, enforcing the input-size cap the
// core itself does not impose.
func readSource(path string, maxBytes int) (string, error) {
	info, err := os.Stat(path)
	if err != nil {
		return "", fmt.Errorf("reading pipeline definition: %w", err)
	}
	if info.Size() > int64(maxBytes) {
		return "", fmt.Errorf("pipeline definition %s is %d bytes, above the %d byte cap", path, info.Size(), maxBytes)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("reading pipeline definition: %w", err)
	}
	return string(data), nil
}
