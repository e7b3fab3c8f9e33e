package domain

// CreativeAggregate consolida as métricas de um creative_message distinto
type CreativeAggregate struct {
	CreativeMessage string  `json:"creative_message"`
	Spend           float64 `json:"spend"`
	Clicks          float64 `json:"clicks"`
	Impressions     float64 `json:"impressions"`
	CTR             float64 `json:"ctr"`
}

// AggregateCreative soma as linhas de um criativo e calcula o CTR agregado
func AggregateCreative(message string, rows Dataset) *CreativeAggregate {
	totals := rows.SumColumns(ColumnSpend, ColumnClicks, ColumnImpressions)

	aggregate := &CreativeAggregate{
		CreativeMessage: message,
		Spend:           totals[ColumnSpend],
		Clicks:          totals[ColumnClicks],
		Impressions:     totals[ColumnImpressions],
	}

	if aggregate.Impressions > 0 {
		aggregate.CTR = aggregate.Clicks / aggregate.Impressions
	}

	return aggregate
}
