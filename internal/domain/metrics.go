package domain

// MetricSnapshot agrega as métricas derivadas de um subconjunto do dataset.
// Cada razão é 0 quando o denominador correspondente é 0.
type MetricSnapshot struct {
	Spend   float64 `json:"spend"`
	Revenue float64 `json:"revenue"`
	ROAS    float64 `json:"roas"`
	CTR     float64 `json:"ctr"`
	CPC     float64 `json:"cpc"`
	CPM     float64 `json:"cpm"`
	AOV     float64 `json:"aov"`
}

func (m *MetricSnapshot) IsEmpty() bool {
	if m == nil {
		return true
	}

	return m.Spend == 0 && m.Revenue == 0 && m.ROAS == 0 && m.CTR == 0
}

// ComputeSnapshot calcula as métricas agregadas a partir dos totais somados em
// uma única passada. Dataset vazio produz um snapshot zerado, não um erro.
func ComputeSnapshot(ds Dataset) *MetricSnapshot {
	totals := ds.SumColumns(
		ColumnSpend,
		ColumnImpressions,
		ColumnClicks,
		ColumnPurchases,
		ColumnRevenue,
	)

	snapshot := &MetricSnapshot{
		Spend:   totals[ColumnSpend],
		Revenue: totals[ColumnRevenue],
	}

	if totals[ColumnSpend] > 0 {
		snapshot.ROAS = totals[ColumnRevenue] / totals[ColumnSpend]
	}

	if totals[ColumnImpressions] > 0 {
		snapshot.CTR = totals[ColumnClicks] / totals[ColumnImpressions]
		snapshot.CPM = totals[ColumnSpend] / totals[ColumnImpressions] * 1000
	}

	if totals[ColumnClicks] > 0 {
		snapshot.CPC = totals[ColumnSpend] / totals[ColumnClicks]
	}

	if totals[ColumnPurchases] > 0 {
		snapshot.AOV = totals[ColumnRevenue] / totals[ColumnPurchases]
	}

	return snapshot
}
