package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseMonetaryValue(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected float64
		wantErr  bool
	}{
		{
			name:     "Número simples",
			input:    "1000",
			expected: 1000,
		},
		{
			name:     "Decimal com ponto",
			input:    "1000.50",
			expected: 1000.50,
		},
		{
			name:     "Vírgula decimal",
			input:    "1000,50",
			expected: 1000.50,
		},
		{
			name:     "Milhar com ponto e vírgula decimal",
			input:    "1.234,56",
			expected: 1234.56,
		},
		{
			name:     "Símbolo de moeda",
			input:    "R$ 1.234,56",
			expected: 1234.56,
		},
		{
			name:     "Símbolo sem espaço",
			input:    "R$1500",
			expected: 1500,
		},
		{
			name:     "Valor negativo é numérico (validação decide rejeitar)",
			input:    "-10,00",
			expected: -10,
		},
		{
			name:    "Vazio",
			input:   "",
			wantErr: true,
		},
		{
			name:    "Apenas símbolo",
			input:   "R$",
			wantErr: true,
		},
		{
			name:    "Texto",
			input:   "mil reais",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			value, err := ParseMonetaryValue(tt.input)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidMonetaryValue)
				return
			}

			assert.NoError(t, err)
			assert.Equal(t, tt.expected, value)
		})
	}
}
