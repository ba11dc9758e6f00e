package scoring

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/clinic-crm-api/internal/domain"
)

func TestComputeScore(t *testing.T) {
	tests := []struct {
		name        string
		recencyDays int
		frequency   int
		monetary    float64
		expected    float64
	}{
		{
			name:        "cliente comprou hoje uma vez com valor baixo",
			recencyDays: 0,
			frequency:   1,
			monetary:    100,
			expected:    37, // (100 + 10 + 1) / 3
		},
		{
			name:        "todas as notas saturadas no teto",
			recencyDays: 0,
			frequency:   10,
			monetary:    10000,
			expected:    100,
		},
		{
			name:        "recência acima de um ano zera a nota de recência",
			recencyDays: 400,
			frequency:   1,
			monetary:    50,
			expected:    3.5, // (0 + 10 + 0.5) / 3
		},
		{
			name:        "frequência acima de dez não passa de cem",
			recencyDays: 0,
			frequency:   25,
			monetary:    0,
			expected:    66.67,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.expected, ComputeScore(tt.recencyDays, tt.frequency, tt.monetary), 0.01)
		})
	}
}

func TestClassify(t *testing.T) {
	tests := []struct {
		name        string
		recencyDays int
		frequency   int
		monetary    float64
		expected    string
	}{
		{
			name:        "alto valor e alta frequência é VIP",
			recencyDays: 200,
			frequency:   6,
			monetary:    15000,
			expected:    domain.SegmentVIP,
		},
		{
			name:        "alto valor sem frequência não é VIP",
			recencyDays: 10,
			frequency:   2,
			monetary:    20000,
			expected:    domain.SegmentRecente,
		},
		{
			name:        "mais de três compras é Frequente",
			recencyDays: 90,
			frequency:   4,
			monetary:    500,
			expected:    domain.SegmentFrequente,
		},
		{
			name:        "compra no último mês é Recente",
			recencyDays: 29,
			frequency:   1,
			monetary:    100,
			expected:    domain.SegmentRecente,
		},
		{
			name:        "sem critério algum é Ocasional",
			recencyDays: 60,
			frequency:   1,
			monetary:    100,
			expected:    domain.SegmentOcasional,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Classify(tt.recencyDays, tt.frequency, tt.monetary))
		})
	}
}

func TestAggregateCustomers(t *testing.T) {
	now := time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)

	records := []*domain.ExecutedRecord{
		{
			PatientName:  "Maria Silva",
			Date:         time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC),
			Amount:       300,
			PatientPhone: "11999990000",
		},
		{
			PatientName:  "maria silva",
			Date:         time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC),
			Amount:       200,
			PatientEmail: "maria@example.com",
		},
		{
			PatientName: "João Souza",
			Date:        time.Date(2023, 1, 5, 0, 0, 0, 0, time.UTC),
			Amount:      150,
		},
		{
			PatientName: "   ",
			Date:        time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC),
			Amount:      999,
		},
	}

	customers := AggregateCustomers(records, now)

	assert.Len(t, customers, 2)

	joao := customers[0]
	assert.Equal(t, "joão souza", joao.CustomerName)
	assert.Equal(t, 1, joao.Frequency)
	assert.Equal(t, 150.0, joao.Monetary)

	maria := customers[1]
	assert.Equal(t, "maria silva", maria.CustomerName)
	assert.Equal(t, 2, maria.Frequency)
	assert.Equal(t, 500.0, maria.Monetary)
	assert.Equal(t, 5, maria.RecencyDays)
	assert.Equal(t, "maria@example.com", maria.Email)
	assert.Equal(t, "11999990000", maria.Phone)
	assert.Equal(t, time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC), maria.LastPurchaseDate)
}

func TestAggregateCustomersCompraFutura(t *testing.T) {
	now := time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC)

	records := []*domain.ExecutedRecord{
		{
			PatientName: "Cliente Futuro",
			Date:        time.Date(2024, 6, 20, 0, 0, 0, 0, time.UTC),
			Amount:      100,
		},
	}

	customers := AggregateCustomers(records, now)

	assert.Len(t, customers, 1)
	assert.Equal(t, 0, customers[0].RecencyDays)
}
