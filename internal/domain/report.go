package domain

// ReportMetrics são as métricas antes/depois já arredondadas para o relatório
type ReportMetrics struct {
	CurrentROAS  float64 `json:"current_roas"`
	PreviousROAS float64 `json:"previous_roas"`
	CurrentCTR   float64 `json:"current_ctr"`
	PreviousCTR  float64 `json:"previous_ctr"`
}

// Report é o artefato final de uma execução da análise
type Report struct {
	RunID                   string           `json:"run_id"`
	Query                   string           `json:"query"`
	PeriodAnalyzed          string           `json:"period_analyzed"`
	ROASChange              string           `json:"roas_change"`
	Drivers                 []string         `json:"drivers"`
	PrimaryDriver           string           `json:"primary_driver"`
	Metrics                 ReportMetrics    `json:"metrics"`
	PlanSteps               []PlanStep       `json:"plan_steps"`
	CreativeRecommendations []Recommendation `json:"creative_recommendations"`
}
