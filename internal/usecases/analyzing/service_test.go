package analyzing

import (
	"context"
	"math/rand"
	"testing"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/ads-analyst/infrastructure/dataset/mocks"
	"github.com/vfg2006/ads-analyst/internal/config"
	"github.com/vfg2006/ads-analyst/internal/domain"
	"github.com/vfg2006/ads-analyst/internal/usecases/insighting"
	"github.com/vfg2006/ads-analyst/internal/usecases/planning"
	"github.com/vfg2006/ads-analyst/internal/usecases/recommending"
	"go.uber.org/mock/gomock"
)

func testConfig() *config.Config {
	return &config.Config{
		Thresholds: config.Thresholds{
			LowCTR:      0.012,
			MinSpend:    1000,
			ROASDrop:    0.05,
			CPMIncrease: 1.05,
			CTRDrop:     0.95,
			AOVDrop:     0.95,
			CPCSpike:    1.05,
		},
		Analysis: config.Analysis{
			WindowDays:         14,
			TopPerformers:      5,
			MaxRecommendations: 3,
		},
	}
}

// syntheticDataset monta 28 dias com queda clara de performance na janela
// atual: CPM maior, CTR menor e ROAS 30% abaixo da janela anterior
func syntheticDataset() domain.Dataset {
	maxDate := time.Date(2024, 5, 29, 0, 0, 0, 0, time.UTC)

	ds := make(domain.Dataset, 0, 28)
	for i := 0; i < 28; i++ {
		date := maxDate.AddDate(0, 0, -i)

		if i < 14 {
			// Janela atual: ROAS 1.75, CTR 0.01, CPM 12, CPC 1.2
			ds = append(ds, domain.Record{
				Date:            date,
				Spend:           120,
				Impressions:     10000,
				Clicks:          100,
				Purchases:       4,
				Revenue:         210,
				CreativeMessage: "Fraco — oferta básica",
			})
			continue
		}

		// Janela anterior: ROAS 2.5, CTR 0.02, CPM 10, CPC 0.5
		ds = append(ds, domain.Record{
			Date:            date,
			Spend:           100,
			Impressions:     10000,
			Clicks:          200,
			Purchases:       5,
			Revenue:         250,
			CreativeMessage: "Estrela — frete grátis",
		})
	}

	return ds
}

func newTestAnalyzer(t *testing.T, loader *mocks.MockLoader) Analyzer {
	cfg := testConfig()
	rng := rand.New(rand.NewSource(42))

	return NewService(
		cfg,
		loader,
		planning.NewService(),
		insighting.NewService(cfg),
		recommending.NewService(cfg, rng),
	)
}

func TestServiceRun(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	t.Run("Pipeline completo com queda de ROAS gera relatório e recomendações", func(t *testing.T) {
		mockLoader := mocks.NewMockLoader(ctrl)
		mockLoader.EXPECT().Load().Return(syntheticDataset(), nil)

		analyzer := newTestAnalyzer(t, mockLoader)

		report, err := analyzer.Run(context.Background(), "Analyze ROAS drop")
		assert.NoError(t, err)

		assert.Equal(t, "Analyze ROAS drop", report.Query)
		assert.Equal(t, "2024-05-16 to 2024-05-29", report.PeriodAnalyzed)
		assert.Equal(t, "-30.00%", report.ROASChange)

		assert.Equal(t, 1.75, report.Metrics.CurrentROAS)
		assert.Equal(t, 2.5, report.Metrics.PreviousROAS)
		assert.Equal(t, 0.01, report.Metrics.CurrentCTR)
		assert.Equal(t, 0.02, report.Metrics.PreviousCTR)

		assert.Equal(t, []string{
			domain.DriverCPMIncrease,
			domain.DriverCTRDrop,
			domain.DriverCPCSpike,
		}, report.Drivers)
		assert.Equal(t, domain.DriverCPMIncrease, report.PrimaryDriver)

		assert.Len(t, report.PlanSteps, 5)
		assert.NotEmpty(t, report.RunID)

		assert.Len(t, report.CreativeRecommendations, 1)
		rec := report.CreativeRecommendations[0]
		assert.Equal(t, "Fraco — oferta básica", rec.Original)
		assert.Contains(t, rec.SuggestedVariation, "Limited Time Offer.")
	})

	t.Run("Performance saudável não gera recomendações", func(t *testing.T) {
		maxDate := time.Date(2024, 5, 29, 0, 0, 0, 0, time.UTC)

		// Mesmas métricas nas duas janelas
		ds := make(domain.Dataset, 0, 28)
		for i := 0; i < 28; i++ {
			ds = append(ds, domain.Record{
				Date:            maxDate.AddDate(0, 0, -i),
				Spend:           100,
				Impressions:     10000,
				Clicks:          200,
				Purchases:       5,
				Revenue:         250,
				CreativeMessage: "Estável — sempre igual",
			})
		}

		mockLoader := mocks.NewMockLoader(ctrl)
		mockLoader.EXPECT().Load().Return(ds, nil)

		analyzer := newTestAnalyzer(t, mockLoader)

		report, err := analyzer.Run(context.Background(), "Analyze ROAS drop")
		assert.NoError(t, err)

		assert.Equal(t, "0.00%", report.ROASChange)
		assert.Empty(t, report.Drivers)
		assert.Equal(t, domain.DriverUnknown, report.PrimaryDriver)
		assert.Empty(t, report.CreativeRecommendations)
	})

	t.Run("Falha no carregamento aborta a execução", func(t *testing.T) {
		mockLoader := mocks.NewMockLoader(ctrl)
		mockLoader.EXPECT().Load().Return(nil, errors.New("arquivo inacessível"))

		analyzer := newTestAnalyzer(t, mockLoader)

		report, err := analyzer.Run(context.Background(), "Analyze ROAS drop")
		assert.Error(t, err)
		assert.Nil(t, report)
	})
}

func TestReportJSONRoundTrip(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockLoader := mocks.NewMockLoader(ctrl)
	mockLoader.EXPECT().Load().Return(syntheticDataset(), nil)

	analyzer := newTestAnalyzer(t, mockLoader)

	report, err := analyzer.Run(context.Background(), "Analyze ROAS drop")
	assert.NoError(t, err)

	json := jsoniter.ConfigCompatibleWithStandardLibrary

	serialized, err := json.Marshal(report)
	assert.NoError(t, err)

	parsed := &domain.Report{}
	assert.NoError(t, json.Unmarshal(serialized, parsed))

	assert.Equal(t, report, parsed)
}

func TestBuildReportMarkdown(t *testing.T) {
	report := &domain.Report{
		Query:          "Analyze ROAS drop",
		PeriodAnalyzed: "2024-05-16 to 2024-05-29",
		ROASChange:     "-30.00%",
		Drivers:        []string{domain.DriverCPMIncrease},
		PrimaryDriver:  domain.DriverCPMIncrease,
		Metrics: domain.ReportMetrics{
			CurrentROAS:  1.75,
			PreviousROAS: 2.5,
			CurrentCTR:   0.01,
			PreviousCTR:  0.02,
		},
		PlanSteps: []domain.PlanStep{
			{Step: 1, Name: "Load Data", Description: "Carregar o dataset"},
		},
		CreativeRecommendations: []domain.Recommendation{
			{
				Original:           "Fraco — oferta",
				InspirationSource:  "Estrela — frete grátis",
				SuggestedVariation: "Estrela — oferta - Limited Time Offer.",
				Rationale:          "teste",
			},
		},
	}

	markdown := BuildReportMarkdown(report)

	assert.Contains(t, markdown, "`Analyze ROAS drop`")
	assert.Contains(t, markdown, "- Variação de ROAS: -30.00%")
	assert.Contains(t, markdown, domain.DriverCPMIncrease)
	assert.Contains(t, markdown, "### Original: Fraco — oferta")

	emptyReport := &domain.Report{Query: "q"}
	assert.Contains(t, BuildReportMarkdown(emptyReport), "_Nenhum criativo de baixo CTR detectado")
}
