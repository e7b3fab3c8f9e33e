package analyzing

import (
	"fmt"
	"strings"

	"github.com/vfg2006/ads-analyst/internal/domain"
)

// BuildReportMarkdown monta a versão legível do relatório para analistas
func BuildReportMarkdown(report *domain.Report) string {
	var lines []string

	lines = append(lines, "# Ads Performance Analyst – Report")
	lines = append(lines, "")
	lines = append(lines, "## Consulta")
	lines = append(lines, fmt.Sprintf("`%s`", report.Query))
	lines = append(lines, "")

	lines = append(lines, "## Plano de análise")
	for _, step := range report.PlanSteps {
		lines = append(lines, fmt.Sprintf("- **Passo %d – %s**: %s", step.Step, step.Name, step.Description))
	}
	lines = append(lines, "")

	lines = append(lines, "## Diagnóstico")
	lines = append(lines, fmt.Sprintf("- Período analisado: %s", report.PeriodAnalyzed))
	lines = append(lines, fmt.Sprintf("- Variação de ROAS: %s", report.ROASChange))
	lines = append(lines, fmt.Sprintf("- ROAS: %.2f (anterior %.2f)", report.Metrics.CurrentROAS, report.Metrics.PreviousROAS))
	lines = append(lines, fmt.Sprintf("- CTR: %.4f (anterior %.4f)", report.Metrics.CurrentCTR, report.Metrics.PreviousCTR))
	lines = append(lines, fmt.Sprintf("- Driver primário: %s", report.PrimaryDriver))

	if len(report.Drivers) > 0 {
		lines = append(lines, "- Drivers detectados:")
		for _, driver := range report.Drivers {
			lines = append(lines, fmt.Sprintf("  - %s", driver))
		}
	}
	lines = append(lines, "")

	lines = append(lines, "## Recomendações de criativos")
	if len(report.CreativeRecommendations) == 0 {
		lines = append(lines, "_Nenhum criativo de baixo CTR detectado sob os limites configurados._")
	} else {
		for _, rec := range report.CreativeRecommendations {
			lines = append(lines, fmt.Sprintf("### Original: %s", rec.Original))
			lines = append(lines, fmt.Sprintf("- Inspiração: %s", rec.InspirationSource))
			lines = append(lines, fmt.Sprintf("- Variação sugerida: %s", rec.SuggestedVariation))
			lines = append(lines, fmt.Sprintf("- Justificativa: %s", rec.Rationale))
			lines = append(lines, "")
		}
	}

	return strings.Join(lines, "\n")
}
