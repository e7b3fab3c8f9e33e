package analyzing

import (
	"context"

	"github.com/vfg2006/ads-analyst/internal/domain"
)

// Analyzer é a interface do orquestrador da análise de ROAS
type Analyzer interface {
	// Run executa o pipeline completo para a consulta e retorna o relatório final
	Run(ctx context.Context, query string) (*domain.Report, error)
}
