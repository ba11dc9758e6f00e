package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestParseFlexibleDate(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
		wantErr  bool
	}{
		{
			name:     "Formato brasileiro DD/MM/YYYY",
			input:    "01/03/2024",
			expected: "2024-03-01",
		},
		{
			name:     "Formato ISO simples",
			input:    "2024-03-01",
			expected: "2024-03-01",
		},
		{
			name:     "Formato ISO com hora (prefixo)",
			input:    "2024-03-01T15:04:05Z",
			expected: "2024-03-01",
		},
		{
			name:     "Serial de planilha",
			input:    "45352",
			expected: "2024-03-01",
		},
		{
			name:     "Serial de planilha com fração",
			input:    "45352.75",
			expected: "2024-03-01",
		},
		{
			name:     "Serial zero é a época",
			input:    "0",
			expected: "1899-12-30",
		},
		{
			name:     "Formato com traços DD-MM-YYYY",
			input:    "01-03-2024",
			expected: "2024-03-01",
		},
		{
			name:     "Espaços em volta são ignorados",
			input:    "  01/03/2024  ",
			expected: "2024-03-01",
		},
		{
			name:    "String vazia",
			input:   "",
			wantErr: true,
		},
		{
			name:    "Texto arbitrário",
			input:   "ontem",
			wantErr: true,
		},
		{
			name:    "Dia inexistente",
			input:   "32/01/2024",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			date, err := ParseFlexibleDate(tt.input)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrUnparseableDate)
				return
			}

			assert.NoError(t, err)
			assert.Equal(t, tt.expected, date.Format(time.DateOnly))
		})
	}
}

func TestParseFlexibleDateSerialEpoch(t *testing.T) {
	// O serial N deve corresponder exatamente a época + N dias
	date, err := ParseFlexibleDate("10")
	assert.NoError(t, err)

	epoch := time.Date(1899, time.December, 30, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, epoch.AddDate(0, 0, 10), date)
}
