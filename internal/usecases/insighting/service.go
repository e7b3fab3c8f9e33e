package insighting

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/ads-analyst/internal/config"
	"github.com/vfg2006/ads-analyst/internal/domain"
)

type Service struct {
	cfg *config.Config
}

func NewService(cfg *config.Config) Insighter {
	return &Service{
		cfg: cfg,
	}
}

// SplitWindows fixa duas janelas adjacentes e sem sobreposição a partir da
// data mais recente: atual = (midDate, maxDate] e anterior = (startDate, midDate].
func (s *Service) SplitWindows(ds domain.Dataset) (*AnalysisWindows, error) {
	maxDate, ok := ds.MaxDate()
	if !ok {
		return nil, fmt.Errorf("dataset vazio: não há datas para delimitar as janelas")
	}

	windowDays := s.cfg.Analysis.WindowDays
	midDate := maxDate.AddDate(0, 0, -windowDays)
	startDate := midDate.AddDate(0, 0, -windowDays)

	windows := &AnalysisWindows{
		CurrentStart:  midDate.AddDate(0, 0, 1),
		CurrentEnd:    maxDate,
		PreviousStart: startDate.AddDate(0, 0, 1),
		PreviousEnd:   midDate,
	}

	windows.Current = ds.FilterByDateRange(&windows.CurrentStart, &windows.CurrentEnd)
	windows.Previous = ds.FilterByDateRange(&windows.PreviousStart, &windows.PreviousEnd)

	logrus.WithFields(logrus.Fields{
		"current_rows":  len(windows.Current),
		"previous_rows": len(windows.Previous),
		"window_days":   windowDays,
	}).Debug("Janelas de análise delimitadas")

	return windows, nil
}

// Analyze avalia as regras de diagnóstico na ordem fixa CPM, CTR, AOV, CPC.
// A primeira regra disparada define o driver primário.
func (s *Service) Analyze(current, previous *domain.MetricSnapshot) *domain.DriverAnalysis {
	analysis := &domain.DriverAnalysis{
		Drivers:       []string{},
		PrimaryDriver: domain.DriverUnknown,
	}

	if previous.ROAS > 0 {
		analysis.ROASChangePct = (current.ROAS - previous.ROAS) / previous.ROAS
		analysis.IsDrop = analysis.ROASChangePct < -s.cfg.Thresholds.ROASDrop
	} else {
		// Sem ROAS anterior a variação percentual é indefinida; as regras de
		// driver ainda são avaliadas, mas a detecção de queda fica desabilitada
		logrus.Warn("ROAS da janela anterior é zero; detecção de queda desabilitada nesta execução")
	}

	if current.CPM > previous.CPM*s.cfg.Thresholds.CPMIncrease {
		analysis.Drivers = append(analysis.Drivers, domain.DriverCPMIncrease)
	}

	if current.CTR < previous.CTR*s.cfg.Thresholds.CTRDrop {
		analysis.Drivers = append(analysis.Drivers, domain.DriverCTRDrop)
	}

	if current.AOV < previous.AOV*s.cfg.Thresholds.AOVDrop {
		analysis.Drivers = append(analysis.Drivers, domain.DriverAOVDrop)
	}

	if current.CPC > previous.CPC*s.cfg.Thresholds.CPCSpike {
		analysis.Drivers = append(analysis.Drivers, domain.DriverCPCSpike)
	}

	if len(analysis.Drivers) > 0 {
		analysis.PrimaryDriver = analysis.Drivers[0]
	}

	return analysis
}
