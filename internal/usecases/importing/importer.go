package importing

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/vfg2006/clinic-crm-api/infrastructure/repository"
	"github.com/vfg2006/clinic-crm-api/internal/domain"
)

// runImporter executa a fase de inserção de uma importação. O conjunto de
// chaves em seen é o escopo de deduplicação da execução: começa carregado com
// tudo que já existe no banco e cresce a cada inserção, cobrindo também o
// caso de vendas e executado compartilharem linhas no mesmo lote.
type runImporter struct {
	resolver    SellerResolver
	batchID     string
	seen        map[string]struct{}
	defaultTeam *int
}

func newRunImporter(resolver SellerResolver, batchID string, seen map[string]struct{}, defaultTeam *int) *runImporter {
	if seen == nil {
		seen = make(map[string]struct{})
	}
	return &runImporter{
		resolver:    resolver,
		batchID:     batchID,
		seen:        seen,
		defaultTeam: defaultTeam,
	}
}

// importRevenue insere as linhas válidas como registros de venda, uma a uma.
// Erros de linha são coletados sem interromper as demais; duplicados contra o
// conjunto da execução (ou contra o índice único do banco) são apenas
// contados.
func (imp *runImporter) importRevenue(
	rows []domain.ImportRow,
	validation *domain.ValidationResult,
	repo repository.RevenueRecordRepository,
) *domain.ImporterResult {
	result := newImporterResult()
	unmatched := make(map[string]struct{})
	duplicates := duplicateKeySet(validation)

	for _, idx := range validation.ValidRows {
		row := rows[idx]
		line := idx + 1

		date, amount, ok := imp.rowValues(row, domain.FileTypeVendas, line, result)
		if !ok {
			continue
		}

		key := domain.CompositeKey(date, row.ClientName, procedureOrPlaceholder(row), amount)
		if _, ok := imp.seen[key]; ok {
			duplicates[key] = struct{}{}
			continue
		}

		record := &domain.RevenueRecord{
			Date:              date,
			PatientName:       strings.TrimSpace(row.ClientName),
			ProcedureName:     procedureOrPlaceholder(row),
			Department:        strings.TrimSpace(row.Department),
			Amount:            amount,
			Notes:             strings.TrimSpace(row.Notes),
			BatchID:           imp.batchID,
			RegisteredByAdmin: true,
		}
		imp.assignSeller(row.SellerName, unmatched, &record.UserID, &record.TeamID)

		inserted, err := repo.Insert(record)
		if err != nil {
			result.Errors = append(result.Errors, domain.RowError{
				Row:     line,
				Message: fmt.Sprintf("Linha %d: falha ao inserir registro: %s", line, err.Error()),
			})
			continue
		}

		imp.seen[key] = struct{}{}

		if !inserted {
			// rejeitado pelo índice único: outra execução inseriu antes
			duplicates[key] = struct{}{}
			continue
		}

		result.Imported++
	}

	finishResult(result, duplicates, unmatched)
	return result
}

// importExecuted é o análogo de importRevenue para procedimentos executados,
// que carregam também os dados de contato e origem do paciente.
func (imp *runImporter) importExecuted(
	rows []domain.ImportRow,
	validation *domain.ValidationResult,
	repo repository.ExecutedRecordRepository,
) *domain.ImporterResult {
	result := newImporterResult()
	unmatched := make(map[string]struct{})
	duplicates := duplicateKeySet(validation)

	for _, idx := range validation.ValidRows {
		row := rows[idx]
		line := idx + 1

		date, amount, ok := imp.rowValues(row, domain.FileTypeExecutado, line, result)
		if !ok {
			continue
		}

		key := domain.CompositeKey(date, row.ClientName, procedureOrPlaceholder(row), amount)
		if _, ok := imp.seen[key]; ok {
			duplicates[key] = struct{}{}
			continue
		}

		record := &domain.ExecutedRecord{
			Date:              date,
			PatientName:       strings.TrimSpace(row.ClientName),
			ProcedureName:     procedureOrPlaceholder(row),
			Department:        strings.TrimSpace(row.Department),
			Amount:            amount,
			PatientPhone:      strings.TrimSpace(row.Phone),
			PatientEmail:      strings.TrimSpace(row.Email),
			Origin:            strings.TrimSpace(row.Origin),
			ReferralName:      strings.TrimSpace(row.ReferredBy),
			ExecutorName:      strings.TrimSpace(row.ProfessionalName),
			Notes:             strings.TrimSpace(row.Notes),
			BatchID:           imp.batchID,
			RegisteredByAdmin: true,
		}
		imp.assignSeller(row.SellerName, unmatched, &record.UserID, &record.TeamID)

		inserted, err := repo.Insert(record)
		if err != nil {
			result.Errors = append(result.Errors, domain.RowError{
				Row:     line,
				Message: fmt.Sprintf("Linha %d: falha ao inserir registro: %s", line, err.Error()),
			})
			continue
		}

		imp.seen[key] = struct{}{}

		if !inserted {
			duplicates[key] = struct{}{}
			continue
		}

		result.Imported++
	}

	finishResult(result, duplicates, unmatched)
	return result
}

// rowValues reprocessa data e valor de uma linha já validada. A validação
// garante que ambos são interpretáveis; o erro aqui só ocorre se o lote foi
// alterado entre as fases.
func (imp *runImporter) rowValues(
	row domain.ImportRow,
	fileType string,
	line int,
	result *domain.ImporterResult,
) (time.Time, float64, bool) {
	date, rowErr := parseRowDate(row, line)
	if rowErr != nil {
		result.Errors = append(result.Errors, *rowErr)
		return time.Time{}, 0, false
	}

	amount, rowErr := parseRowAmount(row, fileType, line)
	if rowErr != nil {
		result.Errors = append(result.Errors, *rowErr)
		return time.Time{}, 0, false
	}

	return date, amount, true
}

// duplicateKeySet parte das duplicatas intra-lote já apontadas pela
// validação. As chaves barradas pelo conjunto da execução ou pelo índice
// único entram no mesmo conjunto, de modo que cada chave repetida conta uma
// única vez por execução, mesmo quando o lote inteiro é reenviado.
func duplicateKeySet(validation *domain.ValidationResult) map[string]struct{} {
	set := make(map[string]struct{}, len(validation.Duplicates))
	for _, dup := range validation.Duplicates {
		set[dup.Key] = struct{}{}
	}
	return set
}

// assignSeller resolve o vendedor da linha e grava dono e time no registro.
// Nome não resolvido não invalida a linha: o registro cai no time padrão,
// sem dono, e o nome é reportado em UnmatchedSellers.
func (imp *runImporter) assignSeller(name string, unmatched map[string]struct{}, userID, teamID **int) {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return
	}

	ref, ok := imp.resolver.Resolve(trimmed)
	if !ok {
		unmatched[trimmed] = struct{}{}
		if imp.defaultTeam != nil {
			tid := *imp.defaultTeam
			*teamID = &tid
		}
		return
	}

	uid := ref.UserID
	tid := ref.TeamID
	*userID = &uid
	*teamID = &tid
}

func finishResult(result *domain.ImporterResult, duplicates, unmatched map[string]struct{}) {
	result.Duplicates = len(duplicates)
	result.DuplicateDetails = sortedKeys(duplicates)
	result.UnmatchedSellers = sortedKeys(unmatched)
}

func newImporterResult() *domain.ImporterResult {
	return &domain.ImporterResult{
		DuplicateDetails: []string{},
		Errors:           []domain.RowError{},
		UnmatchedSellers: []string{},
	}
}

func sortedKeys(set map[string]struct{}) []string {
	keys := make([]string, 0, len(set))
	for key := range set {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}
