package main

import (
	"context"
	"math/rand"
	"os"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/ads-analyst/infrastructure/dataset"
	"github.com/vfg2006/ads-analyst/infrastructure/output"
	"github.com/vfg2006/ads-analyst/internal/config"
	"github.com/vfg2006/ads-analyst/internal/usecases/analyzing"
	"github.com/vfg2006/ads-analyst/internal/usecases/insighting"
	"github.com/vfg2006/ads-analyst/internal/usecases/planning"
	"github.com/vfg2006/ads-analyst/internal/usecases/recommending"
	"github.com/vfg2006/ads-analyst/pkg/log"
	"github.com/vfg2006/ads-analyst/pkg/utils"
)

const defaultQuery = "Analyze ROAS drop"

func main() {
	// Inicializa configuração de logs
	configureLogger()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	// Define o nível de log com base na configuração
	logLevel, err := logrus.ParseLevel(cfg.App.LogLevel)
	if err != nil {
		logrus.Warnf("Nível de log inválido: %s, usando 'info'", cfg.App.LogLevel)
		logLevel = logrus.InfoLevel
	}
	logrus.SetLevel(logLevel)

	query := defaultQuery
	if len(os.Args) > 1 {
		query = os.Args[1]
	}

	ctx, runID := log.WithRunID(context.Background())
	logger := log.ForContext(ctx)
	logger.WithFields(log.Fields{
		"query":  query,
		"run_id": runID,
	}).Info("Iniciando análise de performance de anúncios")

	// Fonte de aleatoriedade semeada para escolha reproduzível de exemplares
	rng := rand.New(rand.NewSource(cfg.RandomSeed))

	loader := dataset.NewCSVLoader(cfg.Paths.Dataset)
	planner := planning.NewService()
	insighter := insighting.NewService(cfg)
	recommender := recommending.NewService(cfg, rng)

	analyzer := analyzing.NewService(cfg, loader, planner, insighter, recommender)

	report, err := analyzer.Run(ctx, query)
	if err != nil {
		logger.WithError(err).Fatal("Falha na execução da análise")
	}

	logger.Debug(utils.PrettyJson(report))

	writer := output.NewFileWriter(cfg.Paths.Outputs)

	insightsPath, err := writer.SaveJSON("insights.json", report)
	if err != nil {
		logger.WithError(err).Fatal("Erro ao gravar insights.json")
	}

	if _, err := writer.SaveJSON("creatives.json", report.CreativeRecommendations); err != nil {
		logger.WithError(err).Fatal("Erro ao gravar creatives.json")
	}

	reportPath, err := writer.SaveMarkdown("report.md", analyzing.BuildReportMarkdown(report))
	if err != nil {
		logger.WithError(err).Fatal("Erro ao gravar report.md")
	}

	logger.WithFields(log.Fields{
		"insights_path": insightsPath,
		"report_path":   reportPath,
	}).Info("Análise concluída com sucesso")
}

// configureLogger configura o formato e comportamento dos logs
func configureLogger() {
	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
}
