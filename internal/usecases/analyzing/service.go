package analyzing

import (
	"context"
	"fmt"
	"strings"

	"github.com/pkg/errors"
	"github.com/vfg2006/ads-analyst/infrastructure/dataset"
	"github.com/vfg2006/ads-analyst/internal/config"
	"github.com/vfg2006/ads-analyst/internal/domain"
	"github.com/vfg2006/ads-analyst/internal/usecases/insighting"
	"github.com/vfg2006/ads-analyst/internal/usecases/planning"
	"github.com/vfg2006/ads-analyst/internal/usecases/recommending"
	"github.com/vfg2006/ads-analyst/pkg/log"
	"github.com/vfg2006/ads-analyst/pkg/utils"
)

type Service struct {
	cfg         *config.Config
	loader      dataset.Loader
	planner     planning.Planner
	insighter   insighting.Insighter
	recommender recommending.Recommender
}

func NewService(
	cfg *config.Config,
	loader dataset.Loader,
	planner planning.Planner,
	insighter insighting.Insighter,
	recommender recommending.Recommender,
) Analyzer {
	return &Service{
		cfg:         cfg,
		loader:      loader,
		planner:     planner,
		insighter:   insighter,
		recommender: recommender,
	}
}

// Run sequencia o pipeline: carregar, janelar, diagnosticar, recomendar e
// montar o relatório. Falha no carregamento aborta a execução sem saída parcial.
func (s *Service) Run(ctx context.Context, query string) (*domain.Report, error) {
	logger := log.ForContext(ctx)

	planSteps := s.planner.Plan(query)
	logger.WithField("steps", len(planSteps)).Info("Plano de análise montado")

	ds, err := s.loader.Load()
	if err != nil {
		return nil, errors.Wrap(err, "erro ao carregar o dataset")
	}

	windows, err := s.insighter.SplitWindows(ds)
	if err != nil {
		return nil, err
	}

	currentSnapshot := domain.ComputeSnapshot(windows.Current)
	previousSnapshot := domain.ComputeSnapshot(windows.Previous)

	analysis := s.insighter.Analyze(currentSnapshot, previousSnapshot)
	logger.WithFields(log.Fields{
		"roas_change_pct": analysis.ROASChangePct,
		"is_drop":         analysis.IsDrop,
		"primary_driver":  analysis.PrimaryDriver,
	}).Info("Diagnóstico de drivers concluído")

	var recommendations []domain.Recommendation
	if s.shouldRecommend(analysis) {
		recommendations = s.recommender.Generate(ds, s.cfg.Analysis.MaxRecommendations)
	} else {
		logger.Info("Performance dentro do esperado; recomendações de criativos não solicitadas")
	}

	report := s.buildReport(query, windows, currentSnapshot, previousSnapshot, analysis, planSteps, recommendations)
	return report, nil
}

// shouldRecommend decide se a geração de criativos é acionada: queda de ROAS
// ou qualquer driver relacionado a CTR
func (s *Service) shouldRecommend(analysis *domain.DriverAnalysis) bool {
	if analysis.IsDrop {
		return true
	}

	for _, driver := range analysis.Drivers {
		if strings.Contains(driver, "CTR") {
			return true
		}
	}

	return false
}

func (s *Service) buildReport(
	query string,
	windows *insighting.AnalysisWindows,
	current, previous *domain.MetricSnapshot,
	analysis *domain.DriverAnalysis,
	planSteps []domain.PlanStep,
	recommendations []domain.Recommendation,
) *domain.Report {
	runID, err := utils.GenerateID()
	if err != nil {
		log.L.WithError(err).Warn("Erro ao gerar o ID da execução")
	}

	if recommendations == nil {
		recommendations = []domain.Recommendation{}
	}

	return &domain.Report{
		RunID: runID,
		Query: query,
		PeriodAnalyzed: fmt.Sprintf(
			"%s to %s",
			utils.FormatDate(windows.CurrentStart),
			utils.FormatDate(windows.CurrentEnd),
		),
		ROASChange:    fmt.Sprintf("%.2f%%", analysis.ROASChangePct*100),
		Drivers:       analysis.Drivers,
		PrimaryDriver: analysis.PrimaryDriver,
		Metrics: domain.ReportMetrics{
			CurrentROAS:  utils.RoundWithTwoDecimalPlace(current.ROAS),
			PreviousROAS: utils.RoundWithTwoDecimalPlace(previous.ROAS),
			CurrentCTR:   utils.RoundWithFourDecimalPlace(current.CTR),
			PreviousCTR:  utils.RoundWithFourDecimalPlace(previous.CTR),
		},
		PlanSteps:               planSteps,
		CreativeRecommendations: recommendations,
	}
}
