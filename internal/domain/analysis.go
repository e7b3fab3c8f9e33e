package domain

// Rótulos das regras de diagnóstico, na ordem fixa de avaliação
const (
	DriverCPMIncrease = "CPM Increase (Competition/Fatigue)"
	DriverCTRDrop     = "CTR Drop (Creative Fatigue)"
	DriverAOVDrop     = "AOV Drop (Product Mix Shift)"
	DriverCPCSpike    = "CPC Spike (Bidding Pressure)"

	// DriverUnknown é o sentinela quando nenhuma regra disparou
	DriverUnknown = "Unknown/Multi-factor"
)

// DriverAnalysis é o resultado da comparação entre dois snapshots de métricas
type DriverAnalysis struct {
	IsDrop        bool     `json:"is_drop"`
	ROASChangePct float64  `json:"roas_change_pct"`
	Drivers       []string `json:"drivers"`
	PrimaryDriver string   `json:"primary_driver"`
}

// PlanStep é um passo do plano de análise ecoado no relatório
type PlanStep struct {
	Step        int    `json:"step"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

// Recommendation é uma sugestão de variação para um criativo de baixo desempenho
type Recommendation struct {
	Original           string `json:"original"`
	InspirationSource  string `json:"inspiration_source"`
	SuggestedVariation string `json:"suggested_variation"`
	Rationale          string `json:"rationale"`
}
