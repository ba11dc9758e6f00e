package importing

import (
	"fmt"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/clinic-crm-api/infrastructure/repository"
	"github.com/vfg2006/clinic-crm-api/internal/config"
	"github.com/vfg2006/clinic-crm-api/internal/domain"
	"github.com/vfg2006/clinic-crm-api/internal/usecases/backup"
	"github.com/vfg2006/clinic-crm-api/internal/usecases/scoring"
	"github.com/vfg2006/clinic-crm-api/pkg/utils"
)

// ImportService é o ponto único de entrada do pipeline de importação de
// dados históricos: backup, validação, importação idempotente e recálculo
// de RFV.
type ImportService interface {
	Backup(requestedBy string) *domain.BackupResponse
	Validate(request *domain.ImportRequest) (*domain.ValidateResponse, error)
	Import(request *domain.ImportRequest, requestedBy string) *domain.ImportResponse
	ListLogs(limit uint64) ([]*domain.ImportLog, error)
}

type Service struct {
	cfg           *config.Import
	revenueRepo   repository.RevenueRecordRepository
	executedRepo  repository.ExecutedRecordRepository
	importLogRepo repository.ImportLogRepository
	userRepo      repository.UserRepository
	backupService backup.BackupService
	scorer        scoring.Scorer
}

func NewService(
	cfg *config.Import,
	revenueRepo repository.RevenueRecordRepository,
	executedRepo repository.ExecutedRecordRepository,
	importLogRepo repository.ImportLogRepository,
	userRepo repository.UserRepository,
	backupService backup.BackupService,
	scorer scoring.Scorer,
) ImportService {
	return &Service{
		cfg:           cfg,
		revenueRepo:   revenueRepo,
		executedRepo:  executedRepo,
		importLogRepo: importLogRepo,
		userRepo:      userRepo,
		backupService: backupService,
		scorer:        scorer,
	}
}

// Backup executa a ação "backup": captura os dois conjuntos sem importar
// nada.
func (s *Service) Backup(requestedBy string) *domain.BackupResponse {
	created, err := s.backupService.CreateBackup("", requestedBy)
	if err != nil {
		logrus.WithError(err).Error("Erro ao criar backup avulso")
		return &domain.BackupResponse{Success: false, Error: err.Error()}
	}

	return &domain.BackupResponse{
		Success:       true,
		BackupID:      created.ID,
		RevenueCount:  created.RevenueCount,
		ExecutedCount: created.ExecutedCount,
	}
}

// Validate executa a ação "validate": examina o lote sem backup e sem
// qualquer escrita no banco.
func (s *Service) Validate(request *domain.ImportRequest) (*domain.ValidateResponse, error) {
	periodStart, periodEnd, err := s.parsePeriod(request)
	if err != nil {
		return nil, err
	}

	switch request.FileType {
	case domain.FileTypeVendas, domain.FileTypeExecutado:
		result := ValidateBatch(request.Data, request.FileType, periodStart, periodEnd)
		return &domain.ValidateResponse{Result: result}, nil
	case domain.FileTypeBoth:
		return &domain.ValidateResponse{
			Vendas:    ValidateBatch(request.Data, domain.FileTypeVendas, periodStart, periodEnd),
			Executado: ValidateBatch(request.ExecutadoData, domain.FileTypeExecutado, periodStart, periodEnd),
		}, nil
	default:
		return nil, NewImportError(ErrInvalidFileType, fmt.Sprintf("Tipo de arquivo desconhecido: %s", request.FileType), nil)
	}
}

// Import executa o pipeline completo. A ordem é inegociável: backup antes de
// qualquer mutação; validação com disjuntor de taxa de erros; importação
// idempotente; recálculo de RFV. Exatamente um registro de auditoria é
// escrito por chamada, inclusive nos caminhos de aborto e falha.
func (s *Service) Import(request *domain.ImportRequest, requestedBy string) *domain.ImportResponse {
	startTime := time.Now()
	response := &domain.ImportResponse{}

	switch request.FileType {
	case domain.FileTypeVendas, domain.FileTypeExecutado, domain.FileTypeBoth:
	default:
		response.Error = NewImportError(ErrInvalidFileType, fmt.Sprintf("Tipo de arquivo desconhecido: %s", request.FileType), nil).Error()
		s.writeLog(request, response, nil, nil, domain.ImportStatusFailed, requestedBy, startTime, nil, nil)
		return response
	}

	periodStart, periodEnd, err := s.parsePeriod(request)
	if err != nil {
		response.Error = err.Error()
		s.writeLog(request, response, periodStart, periodEnd, domain.ImportStatusFailed, requestedBy, startTime, nil, nil)
		return response
	}

	if request.ClearOldData && (periodStart == nil || periodEnd == nil) {
		response.Error = ErrMissingPeriod.Error()
		s.writeLog(request, response, periodStart, periodEnd, domain.ImportStatusFailed, requestedBy, startTime, nil, nil)
		return response
	}

	// Backup primeiro. Sem backup não há importação.
	created, err := s.backupService.CreateBackup("", requestedBy)
	if err != nil {
		logrus.WithError(err).Error("Erro no backup pré-importação, importação abortada")
		response.Error = NewImportError(ErrBackupFailed, "", err).Error()
		s.writeLog(request, response, periodStart, periodEnd, domain.ImportStatusFailed, requestedBy, startTime, nil, nil)
		return response
	}
	response.BackupID = created.ID

	vendasRows, executadoRows := s.splitBatches(request)
	vendasValidation := ValidateBatch(vendasRows, domain.FileTypeVendas, periodStart, periodEnd)
	executadoValidation := ValidateBatch(executadoRows, domain.FileTypeExecutado, periodStart, periodEnd)
	response.Validation = s.validationResponse(request.FileType, vendasValidation, executadoValidation)

	// Disjuntor: taxa de erros sobre o total submetido dos dois conjuntos.
	totalRows := vendasValidation.TotalRows + executadoValidation.TotalRows
	totalErrors := len(vendasValidation.Errors) + len(executadoValidation.Errors)
	if totalRows == 0 {
		response.Error = ErrEmptyBatch.Error()
		s.writeLog(request, response, periodStart, periodEnd, domain.ImportStatusAborted, requestedBy, startTime, vendasValidation, executadoValidation)
		return response
	}
	if float64(totalErrors)/float64(totalRows) > s.maxErrorRate() {
		logrus.WithFields(logrus.Fields{
			"total_rows":   totalRows,
			"total_errors": totalErrors,
		}).Warn("Importação abortada pelo disjuntor de taxa de erros")
		response.Error = ErrTooManyErrors.Error()
		s.writeLog(request, response, periodStart, periodEnd, domain.ImportStatusAborted, requestedBy, startTime, vendasValidation, executadoValidation)
		return response
	}

	if request.ClearOldData {
		if err := s.clearPeriod(request.FileType, *periodStart, *periodEnd); err != nil {
			response.Error = NewImportError(ErrClearDataFailed, "", err).Error()
			s.writeLog(request, response, periodStart, periodEnd, domain.ImportStatusFailed, requestedBy, startTime, vendasValidation, executadoValidation)
			return response
		}
	}

	importer, err := s.newImporter(request.FileType)
	if err != nil {
		response.Error = err.Error()
		s.writeLog(request, response, periodStart, periodEnd, domain.ImportStatusFailed, requestedBy, startTime, vendasValidation, executadoValidation)
		return response
	}

	if len(vendasRows) > 0 {
		response.Vendas = importer.importRevenue(vendasRows, vendasValidation, s.revenueRepo)
	}
	if len(executadoRows) > 0 {
		response.Executado = importer.importExecuted(executadoRows, executadoValidation, s.executedRepo)
	}

	// RFV sempre roda após a importação, mesmo parcial. A falha do recálculo
	// não desfaz nada: é reportada como flag.
	rfvResult, rfvErr := s.scorer.RecalculateAll()
	if rfvErr != nil {
		logrus.WithError(rfvErr).Error("Erro no recálculo de RFV pós-importação")
	}
	response.RFV = rfvResult

	status := domain.ImportStatusCompleted
	if importErrors(response.Vendas)+importErrors(response.Executado) > 0 {
		status = domain.ImportStatusPartial
	}
	response.Success = true
	response.DurationSeconds = time.Since(startTime).Seconds()

	s.writeLog(request, response, periodStart, periodEnd, status, requestedBy, startTime, vendasValidation, executadoValidation)

	logrus.WithFields(logrus.Fields{
		"status":    status,
		"backup_id": response.BackupID,
		"imported":  importedRows(response.Vendas) + importedRows(response.Executado),
		"duration":  time.Since(startTime).String(),
	}).Info("Importação concluída")

	return response
}

func (s *Service) ListLogs(limit uint64) ([]*domain.ImportLog, error) {
	return s.importLogRepo.List(limit)
}

// splitBatches separa os conjuntos de vendas e executado conforme o tipo de
// arquivo declarado. Para "both", cada conjunto vem de um campo próprio do
// corpo.
func (s *Service) splitBatches(request *domain.ImportRequest) (vendas, executado []domain.ImportRow) {
	switch request.FileType {
	case domain.FileTypeVendas:
		return request.Data, nil
	case domain.FileTypeExecutado:
		return nil, request.Data
	case domain.FileTypeBoth:
		return request.Data, request.ExecutadoData
	default:
		return nil, nil
	}
}

func (s *Service) validationResponse(fileType string, vendas, executado *domain.ValidationResult) *domain.ValidateResponse {
	switch fileType {
	case domain.FileTypeVendas:
		return &domain.ValidateResponse{Result: vendas}
	case domain.FileTypeExecutado:
		return &domain.ValidateResponse{Result: executado}
	default:
		return &domain.ValidateResponse{Vendas: vendas, Executado: executado}
	}
}

// newImporter monta o importador da execução: o identificador do lote, a
// cadeia de resolução de vendedores e o conjunto de chaves já persistidas.
func (s *Service) newImporter(fileType string) (*runImporter, error) {
	batchID, err := utils.GenerateID()
	if err != nil {
		return nil, NewImportError(ErrKeyLookupFailed, "Falha ao gerar identificador do lote", err)
	}

	sellers, err := s.userRepo.ListSellers()
	if err != nil {
		return nil, NewImportError(ErrSellerDirFailed, "", err)
	}
	defaultTeam, err := s.userRepo.DefaultTeamID()
	if err != nil {
		return nil, NewImportError(ErrSellerDirFailed, "Falha ao buscar o time padrão", err)
	}
	resolver := NewChainResolver(
		NewMappingResolver(s.aliasRefs(sellers)),
		NewExactResolver(sellers),
		NewNormalizedResolver(sellers),
	)

	seen := make(map[string]struct{})
	if fileType == domain.FileTypeVendas || fileType == domain.FileTypeBoth {
		keys, err := s.revenueRepo.ListCompositeKeys()
		if err != nil {
			return nil, NewImportError(ErrKeyLookupFailed, "", err)
		}
		for key := range keys {
			seen[key] = struct{}{}
		}
	}
	if fileType == domain.FileTypeExecutado || fileType == domain.FileTypeBoth {
		keys, err := s.executedRepo.ListCompositeKeys()
		if err != nil {
			return nil, NewImportError(ErrKeyLookupFailed, "", err)
		}
		for key := range keys {
			seen[key] = struct{}{}
		}
	}

	return newRunImporter(resolver, batchID, seen, defaultTeam), nil
}

func (s *Service) clearPeriod(fileType string, start, end time.Time) error {
	if fileType == domain.FileTypeVendas || fileType == domain.FileTypeBoth {
		deleted, err := s.revenueRepo.DeleteByPeriod(start, end)
		if err != nil {
			return err
		}
		logrus.WithField("deleted", deleted).Info("Registros de vendas do período removidos")
	}
	if fileType == domain.FileTypeExecutado || fileType == domain.FileTypeBoth {
		deleted, err := s.executedRepo.DeleteByPeriod(start, end)
		if err != nil {
			return err
		}
		logrus.WithField("deleted", deleted).Info("Procedimentos executados do período removidos")
	}
	return nil
}

func (s *Service) parsePeriod(request *domain.ImportRequest) (*time.Time, *time.Time, error) {
	parse := func(value string) (*time.Time, error) {
		if strings.TrimSpace(value) == "" {
			return nil, nil
		}
		date, err := time.Parse(time.DateOnly, value)
		if err != nil {
			return nil, NewImportError(ErrInvalidPeriod, fmt.Sprintf("Período inválido: %s", value), err)
		}
		return &date, nil
	}

	start, err := parse(request.PeriodStart)
	if err != nil {
		return nil, nil, err
	}
	end, err := parse(request.PeriodEnd)
	if err != nil {
		return nil, nil, err
	}
	return start, end, nil
}

// aliasRefs materializa o mapeamento manual de apelidos da configuração
// (apelido -> id de usuário) em referências completas, buscando o time do
// usuário no diretório.
func (s *Service) aliasRefs(sellers []*domain.Seller) map[string]*domain.SellerRef {
	if s.cfg == nil || len(s.cfg.SellerAliases) == 0 {
		return nil
	}

	byID := make(map[int]*domain.Seller, len(sellers))
	for _, seller := range sellers {
		byID[seller.ID] = seller
	}

	refs := make(map[string]*domain.SellerRef, len(s.cfg.SellerAliases))
	for alias, userID := range s.cfg.SellerAliases {
		seller, ok := byID[userID]
		if !ok {
			continue
		}
		refs[alias] = &domain.SellerRef{UserID: seller.ID, TeamID: seller.TeamID}
	}
	return refs
}

func (s *Service) maxErrorRate() float64 {
	if s.cfg == nil || s.cfg.MaxErrorRate <= 0 {
		return 0.10
	}
	return s.cfg.MaxErrorRate
}

// writeLog grava o registro de auditoria da chamada. A falha da escrita é
// logada e engolida: o log nunca derruba uma importação que já aconteceu.
func (s *Service) writeLog(
	request *domain.ImportRequest,
	response *domain.ImportResponse,
	periodStart, periodEnd *time.Time,
	status, requestedBy string,
	startTime time.Time,
	vendasValidation, executadoValidation *domain.ValidationResult,
) {
	entry := &domain.ImportLog{
		BackupID:          response.BackupID,
		FileType:          request.FileType,
		PeriodStart:       periodStart,
		PeriodEnd:         periodEnd,
		ImportedRows:      importedRows(response.Vendas) + importedRows(response.Executado),
		DuplicateRows:     duplicateRows(response.Vendas) + duplicateRows(response.Executado),
		Errors:            []domain.RowError{},
		DuplicatesRemoved: []string{},
		Status:            status,
		DurationSeconds:   time.Since(startTime).Seconds(),
		RFVRecalculated:   response.RFV != nil && response.RFV.Success,
		RequestedBy:       requestedBy,
		CompletedAt:       time.Now(),
	}

	for _, validation := range []*domain.ValidationResult{vendasValidation, executadoValidation} {
		if validation == nil {
			continue
		}
		entry.TotalRows += validation.TotalRows
		entry.Errors = append(entry.Errors, validation.Errors...)
	}
	for _, result := range []*domain.ImporterResult{response.Vendas, response.Executado} {
		if result == nil {
			continue
		}
		entry.Errors = append(entry.Errors, result.Errors...)
		entry.DuplicatesRemoved = append(entry.DuplicatesRemoved, result.DuplicateDetails...)
	}
	entry.ErrorRows = len(entry.Errors)

	if max := s.maxMessages(); len(entry.Errors) > max {
		entry.Errors = entry.Errors[:max]
	}

	if err := s.importLogRepo.Create(entry); err != nil {
		logrus.WithError(err).Error("Erro ao gravar o registro de auditoria da importação")
	}
}

func (s *Service) maxMessages() int {
	if s.cfg == nil || s.cfg.MaxMessages <= 0 {
		return 200
	}
	return s.cfg.MaxMessages
}

func importedRows(result *domain.ImporterResult) int {
	if result == nil {
		return 0
	}
	return result.Imported
}

func duplicateRows(result *domain.ImporterResult) int {
	if result == nil {
		return 0
	}
	return result.Duplicates
}

func importErrors(result *domain.ImporterResult) int {
	if result == nil {
		return 0
	}
	return len(result.Errors)
}
