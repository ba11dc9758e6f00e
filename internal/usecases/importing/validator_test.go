package importing

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/clinic-crm-api/internal/domain"
)

func TestValidateBatch(t *testing.T) {
	t.Run("lote com linha válida, inválida e duplicada", func(t *testing.T) {
		rows := []domain.ImportRow{
			{Date: "15/03/2024", ClientName: "Maria Silva", ProcedureName: "Botox", ValueSold: "R$ 1.200,00"},
			{Date: "15/03/2024", ClientName: "maria silva", ProcedureName: "botox", ValueSold: "1200"},
			{Date: "15/03/2024", ClientName: "", ProcedureName: "Limpeza", ValueSold: "300"},
		}

		result := ValidateBatch(rows, domain.FileTypeVendas, nil, nil)

		assert.Equal(t, 3, result.TotalRows)
		assert.Equal(t, []int{0}, result.ValidRows)

		assert.Len(t, result.Duplicates, 1)
		assert.Equal(t, 2, result.Duplicates[0].Row)
		assert.Equal(t, "2024-03-15|maria silva|botox|1200.00", result.Duplicates[0].Key)

		assert.Len(t, result.Errors, 1)
		assert.Equal(t, 3, result.Errors[0].Row)
		assert.Equal(t, "client_name", result.Errors[0].Field)

		assert.Equal(t, 1, result.Summary.Valid)
		assert.Equal(t, 1, result.Summary.Invalid)
		assert.Equal(t, 1, result.Summary.Duplicate)
	})

	t.Run("data ausente e data indecifrável invalidam a linha", func(t *testing.T) {
		rows := []domain.ImportRow{
			{Date: "", ClientName: "Ana", ValueSold: "100"},
			{Date: "ontem", ClientName: "Ana", ValueSold: "100"},
		}

		result := ValidateBatch(rows, domain.FileTypeVendas, nil, nil)

		assert.Empty(t, result.ValidRows)
		assert.Len(t, result.Errors, 2)
		assert.Equal(t, "date", result.Errors[0].Field)
		assert.Equal(t, "date", result.Errors[1].Field)
	})

	t.Run("data fora do período gera aviso mas não invalida", func(t *testing.T) {
		start := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
		end := time.Date(2024, 3, 31, 0, 0, 0, 0, time.UTC)

		rows := []domain.ImportRow{
			{Date: "15/02/2024", ClientName: "Ana", ValueSold: "100"},
		}

		result := ValidateBatch(rows, domain.FileTypeVendas, &start, &end)

		assert.Equal(t, []int{0}, result.ValidRows)
		assert.Len(t, result.Warnings, 1)
		assert.Equal(t, 1, result.Warnings[0].Row)
	})

	t.Run("valor em branco vale zero e não invalida", func(t *testing.T) {
		rows := []domain.ImportRow{
			{Date: "15/03/2024", ClientName: "Ana"},
		}

		result := ValidateBatch(rows, domain.FileTypeVendas, nil, nil)

		assert.Equal(t, []int{0}, result.ValidRows)
		assert.Empty(t, result.Errors)
	})

	t.Run("valor não numérico e valor negativo invalidam a linha", func(t *testing.T) {
		rows := []domain.ImportRow{
			{Date: "15/03/2024", ClientName: "Ana", ValueSold: "abc"},
			{Date: "15/03/2024", ClientName: "Bia", ValueSold: "-50"},
		}

		result := ValidateBatch(rows, domain.FileTypeVendas, nil, nil)

		assert.Empty(t, result.ValidRows)
		assert.Len(t, result.Errors, 2)
	})

	t.Run("executado prefere valor recebido com valor vendido como reserva", func(t *testing.T) {
		rows := []domain.ImportRow{
			{Date: "15/03/2024", ClientName: "Ana", ValueSold: "100", ValueReceived: "80"},
			{Date: "16/03/2024", ClientName: "Bia", ValueSold: "100"},
		}

		result := ValidateBatch(rows, domain.FileTypeExecutado, nil, nil)

		assert.Equal(t, []int{0, 1}, result.ValidRows)
	})

	t.Run("procedimento em branco usa o marcador na chave composta", func(t *testing.T) {
		rows := []domain.ImportRow{
			{Date: "15/03/2024", ClientName: "Ana", ValueSold: "100"},
			{Date: "15/03/2024", ClientName: "Ana", ValueSold: "100"},
		}

		result := ValidateBatch(rows, domain.FileTypeVendas, nil, nil)

		assert.Equal(t, []int{0}, result.ValidRows)
		assert.Len(t, result.Duplicates, 1)
		assert.Contains(t, result.Duplicates[0].Key, "não informado")
	})

	t.Run("data serial de planilha é aceita", func(t *testing.T) {
		rows := []domain.ImportRow{
			{Date: "45352", ClientName: "Ana", ValueSold: "100"},
		}

		result := ValidateBatch(rows, domain.FileTypeVendas, nil, nil)

		assert.Equal(t, []int{0}, result.ValidRows)
		assert.Empty(t, result.Errors)
	})
}
