package domain

import (
	"time"
)

// Colunas numéricas reconhecidas pelo dataset
const (
	ColumnSpend       = "spend"
	ColumnImpressions = "impressions"
	ColumnClicks      = "clicks"
	ColumnPurchases   = "purchases"
	ColumnRevenue     = "revenue"
)

// Record representa uma linha de atividade de anúncio carregada do dataset.
// Imutável após o carregamento.
type Record struct {
	Date            time.Time `json:"date"`
	Spend           float64   `json:"spend"`
	Impressions     float64   `json:"impressions"`
	Clicks          float64   `json:"clicks"`
	Purchases       float64   `json:"purchases"`
	Revenue         float64   `json:"revenue"`
	CreativeMessage string    `json:"creative_message"`

	// Colunas descritivas repassadas sem uso pelo núcleo da análise
	Campaign string `json:"campaign,omitempty"`
	Platform string `json:"platform,omitempty"`
	Country  string `json:"country,omitempty"`
}

// ROAS calcula o retorno sobre o investimento da linha individual
func (r Record) ROAS() float64 {
	if r.Spend <= 0 {
		return 0
	}
	return r.Revenue / r.Spend
}

// Dataset é uma coleção ordenada de Records
type Dataset []Record

// FilterByDateRange retorna as linhas dentro do intervalo inclusivo [start, end].
// Se qualquer limite for nil, retorna o dataset completo sem filtrar.
func (d Dataset) FilterByDateRange(start, end *time.Time) Dataset {
	if start == nil || end == nil {
		return d
	}

	filtered := make(Dataset, 0, len(d))
	for _, record := range d {
		if record.Date.Before(*start) || record.Date.After(*end) {
			continue
		}
		filtered = append(filtered, record)
	}

	return filtered
}

// SumColumns soma as colunas numéricas informadas em uma única passada
func (d Dataset) SumColumns(columns ...string) map[string]float64 {
	totals := make(map[string]float64, len(columns))
	for _, column := range columns {
		totals[column] = 0
	}

	for _, record := range d {
		for _, column := range columns {
			switch column {
			case ColumnSpend:
				totals[column] += record.Spend
			case ColumnImpressions:
				totals[column] += record.Impressions
			case ColumnClicks:
				totals[column] += record.Clicks
			case ColumnPurchases:
				totals[column] += record.Purchases
			case ColumnRevenue:
				totals[column] += record.Revenue
			}
		}
	}

	return totals
}

// GroupByCreative agrupa as linhas por creative_message, preservando a ordem
// do primeiro encontro de cada criativo
func (d Dataset) GroupByCreative() ([]string, map[string]Dataset) {
	order := make([]string, 0)
	groups := make(map[string]Dataset)

	for _, record := range d {
		if _, exists := groups[record.CreativeMessage]; !exists {
			order = append(order, record.CreativeMessage)
		}
		groups[record.CreativeMessage] = append(groups[record.CreativeMessage], record)
	}

	return order, groups
}

// MaxDate retorna a data mais recente do dataset; o booleano indica se o
// dataset tinha ao menos uma linha
func (d Dataset) MaxDate() (time.Time, bool) {
	if len(d) == 0 {
		return time.Time{}, false
	}

	maxDate := d[0].Date
	for _, record := range d[1:] {
		if record.Date.After(maxDate) {
			maxDate = record.Date
		}
	}

	return maxDate, true
}
