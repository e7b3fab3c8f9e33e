package insighting

import (
	"time"

	"github.com/vfg2006/ads-analyst/internal/domain"
)

// AnalysisWindows delimita as duas janelas adjacentes usadas na comparação
type AnalysisWindows struct {
	CurrentStart  time.Time
	CurrentEnd    time.Time
	PreviousStart time.Time
	PreviousEnd   time.Time

	Current  domain.Dataset
	Previous domain.Dataset
}

// Insighter define a interface de diagnóstico da variação de ROAS
type Insighter interface {
	// SplitWindows deriva as janelas atual e anterior a partir da data mais recente do dataset
	SplitWindows(ds domain.Dataset) (*AnalysisWindows, error)

	// Analyze compara dois snapshots e aponta os drivers da variação
	Analyze(current, previous *domain.MetricSnapshot) *domain.DriverAnalysis
}
