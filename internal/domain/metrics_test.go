package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestComputeSnapshot(t *testing.T) {
	date := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		dataset  Dataset
		expected MetricSnapshot
	}{
		{
			name:     "Dataset vazio - snapshot zerado sem erro",
			dataset:  Dataset{},
			expected: MetricSnapshot{},
		},
		{
			name: "Métricas calculadas a partir dos totais somados",
			dataset: Dataset{
				{Date: date, Spend: 100, Impressions: 10000, Clicks: 200, Purchases: 10, Revenue: 500},
				{Date: date, Spend: 100, Impressions: 10000, Clicks: 100, Purchases: 10, Revenue: 300},
			},
			expected: MetricSnapshot{
				Spend:   200,
				Revenue: 800,
				ROAS:    4.0,    // 800 / 200
				CTR:     0.015,  // 300 / 20000
				CPC:     200.0 / 300.0,
				CPM:     10.0,   // 200 / 20000 * 1000
				AOV:     40.0,   // 800 / 20
			},
		},
		{
			name: "Denominadores zerados - razões valem 0, nunca NaN",
			dataset: Dataset{
				{Date: date, Spend: 0, Impressions: 0, Clicks: 0, Purchases: 0, Revenue: 150},
			},
			expected: MetricSnapshot{
				Revenue: 150,
			},
		},
		{
			name: "Gasto sem receita - ROAS zero mas custo por clique calculado",
			dataset: Dataset{
				{Date: date, Spend: 50, Impressions: 1000, Clicks: 25, Purchases: 0, Revenue: 0},
			},
			expected: MetricSnapshot{
				Spend: 50,
				CTR:   0.025,
				CPC:   2.0,
				CPM:   50.0,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			snapshot := ComputeSnapshot(tt.dataset)

			assert.InDelta(t, tt.expected.Spend, snapshot.Spend, 1e-9)
			assert.InDelta(t, tt.expected.Revenue, snapshot.Revenue, 1e-9)
			assert.InDelta(t, tt.expected.ROAS, snapshot.ROAS, 1e-9)
			assert.InDelta(t, tt.expected.CTR, snapshot.CTR, 1e-9)
			assert.InDelta(t, tt.expected.CPC, snapshot.CPC, 1e-9)
			assert.InDelta(t, tt.expected.CPM, snapshot.CPM, 1e-9)
			assert.InDelta(t, tt.expected.AOV, snapshot.AOV, 1e-9)

			// Todas as razões devem ser não negativas
			assert.GreaterOrEqual(t, snapshot.ROAS, 0.0)
			assert.GreaterOrEqual(t, snapshot.CTR, 0.0)
			assert.GreaterOrEqual(t, snapshot.CPC, 0.0)
			assert.GreaterOrEqual(t, snapshot.CPM, 0.0)
			assert.GreaterOrEqual(t, snapshot.AOV, 0.0)
		})
	}
}

func TestMetricSnapshotIsEmpty(t *testing.T) {
	var nilSnapshot *MetricSnapshot
	assert.True(t, nilSnapshot.IsEmpty())

	assert.True(t, ComputeSnapshot(Dataset{}).IsEmpty())
	assert.False(t, (&MetricSnapshot{Spend: 1}).IsEmpty())
}
