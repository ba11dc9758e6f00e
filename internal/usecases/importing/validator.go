package importing

import (
	"fmt"
	"strings"
	"time"

	"github.com/vfg2006/clinic-crm-api/internal/domain"
	"github.com/vfg2006/clinic-crm-api/pkg/utils"
)

// Limites usados quando o chamador não declara o período da importação.
var defaultPeriodStart = time.Date(2020, time.January, 1, 0, 0, 0, 0, time.UTC)

// ValidateBatch examina o lote linha a linha sem tocar o banco. Linhas com
// erro estrutural nunca interrompem as demais; a segunda ocorrência de uma
// chave composta dentro do lote é marcada como duplicada e fica fora de
// ValidRows.
func ValidateBatch(rows []domain.ImportRow, fileType string, periodStart, periodEnd *time.Time) *domain.ValidationResult {
	result := &domain.ValidationResult{
		TotalRows:  len(rows),
		ValidRows:  []int{},
		Errors:     []domain.RowError{},
		Warnings:   []domain.RowWarning{},
		Duplicates: []domain.RowDuplicate{},
	}

	rangeStart := defaultPeriodStart
	if periodStart != nil {
		rangeStart = *periodStart
	}

	rangeEnd := time.Now().AddDate(1, 0, 0)
	if periodEnd != nil {
		rangeEnd = *periodEnd
	}

	seen := make(map[string]struct{}, len(rows))

	for i, row := range rows {
		line := i + 1 // numeração de planilha, para as mensagens

		date, rowErr := parseRowDate(row, line)
		if rowErr != nil {
			result.Errors = append(result.Errors, *rowErr)
			continue
		}

		if date.Before(rangeStart) || date.After(rangeEnd) {
			result.Warnings = append(result.Warnings, domain.RowWarning{
				Row: line,
				Message: fmt.Sprintf(
					"Linha %d: data %s fora do período declarado", line, date.Format("02/01/2006"),
				),
			})
		}

		if strings.TrimSpace(row.ClientName) == "" {
			result.Errors = append(result.Errors, domain.RowError{
				Row:     line,
				Field:   "client_name",
				Message: fmt.Sprintf("Linha %d: nome do cliente em branco", line),
			})
			continue
		}

		amount, rowErr := parseRowAmount(row, fileType, line)
		if rowErr != nil {
			result.Errors = append(result.Errors, *rowErr)
			continue
		}

		key := domain.CompositeKey(date, row.ClientName, procedureOrPlaceholder(row), amount)
		if _, ok := seen[key]; ok {
			result.Duplicates = append(result.Duplicates, domain.RowDuplicate{
				Row: line,
				Key: key,
			})
			continue
		}
		seen[key] = struct{}{}

		result.ValidRows = append(result.ValidRows, i)
	}

	result.Summary = domain.ValidationSummary{
		Valid:     len(result.ValidRows),
		Invalid:   len(result.Errors),
		Duplicate: len(result.Duplicates),
	}

	return result
}

// parseRowDate resolve a data da linha. Data ausente e data indecifrável são
// erros distintos na mensagem, mas ambos invalidam a linha.
func parseRowDate(row domain.ImportRow, line int) (time.Time, *domain.RowError) {
	if row.Date.IsEmpty() {
		return time.Time{}, &domain.RowError{
			Row:     line,
			Field:   "date",
			Message: fmt.Sprintf("Linha %d: data não informada", line),
		}
	}

	date, err := utils.ParseFlexibleDate(row.Date.String())
	if err != nil {
		return time.Time{}, &domain.RowError{
			Row:     line,
			Field:   "date",
			Message: fmt.Sprintf("Linha %d: data inválida (%s)", line, row.Date.String()),
		}
	}

	return date, nil
}

// parseRowAmount resolve o valor monetário da linha conforme o tipo de
// arquivo: executado usa o valor recebido (com o valor vendido como reserva);
// vendas usa apenas o valor vendido. Valor em branco vira zero; valor não
// numérico ou negativo invalida a linha.
func parseRowAmount(row domain.ImportRow, fileType string, line int) (float64, *domain.RowError) {
	raw := row.ValueSold
	field := "value_sold"

	if fileType == domain.FileTypeExecutado {
		if !row.ValueReceived.IsEmpty() {
			raw = row.ValueReceived
			field = "value_received"
		}
	}

	if raw.IsEmpty() {
		return 0, nil
	}

	amount, err := utils.ParseMonetaryValue(raw.String())
	if err != nil {
		return 0, &domain.RowError{
			Row:     line,
			Field:   field,
			Message: fmt.Sprintf("Linha %d: valor monetário inválido (%s)", line, raw.String()),
		}
	}

	if amount < 0 {
		return 0, &domain.RowError{
			Row:     line,
			Field:   field,
			Message: fmt.Sprintf("Linha %d: valor monetário negativo", line),
		}
	}

	return utils.RoundWithTwoDecimalPlace(amount), nil
}

func procedureOrPlaceholder(row domain.ImportRow) string {
	name := strings.TrimSpace(row.ProcedureName)
	if name == "" {
		return domain.ProcedurePlaceholder
	}
	return name
}
