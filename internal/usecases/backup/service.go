package backup

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/clinic-crm-api/infrastructure/repository"
	"github.com/vfg2006/clinic-crm-api/internal/domain"
	"github.com/vfg2006/clinic-crm-api/pkg/utils"
)

// BackupService captura o estado completo dos dois conjuntos de registros
// antes de qualquer mutação. Ou ambos os conjuntos são capturados e
// persistidos juntos, ou a operação falha sem backup parcial.
type BackupService interface {
	CreateBackup(label, requestedBy string) (*domain.ImportBackup, error)
	ListBackups(limit uint64) ([]*domain.ImportBackup, error)
}

type Service struct {
	revenueRepo  repository.RevenueRecordRepository
	executedRepo repository.ExecutedRecordRepository
	backupRepo   repository.BackupRepository
}

func NewService(
	revenueRepo repository.RevenueRecordRepository,
	executedRepo repository.ExecutedRecordRepository,
	backupRepo repository.BackupRepository,
) BackupService {
	return &Service{
		revenueRepo:  revenueRepo,
		executedRepo: executedRepo,
		backupRepo:   backupRepo,
	}
}

func (s *Service) CreateBackup(label, requestedBy string) (*domain.ImportBackup, error) {
	startTime := time.Now()

	revenueRecords, err := s.revenueRepo.ListAll()
	if err != nil {
		return nil, NewBackupError(ErrSnapshotRead, "Falha ao ler registros de vendas para o backup", err)
	}

	executedRecords, err := s.executedRepo.ListAll()
	if err != nil {
		return nil, NewBackupError(ErrSnapshotRead, "Falha ao ler procedimentos executados para o backup", err)
	}

	revenueData, err := json.Marshal(revenueRecords)
	if err != nil {
		return nil, NewBackupError(ErrSnapshotSerialize, "Falha ao serializar registros de vendas", err)
	}

	executedData, err := json.Marshal(executedRecords)
	if err != nil {
		return nil, NewBackupError(ErrSnapshotSerialize, "Falha ao serializar procedimentos executados", err)
	}

	backupID, err := utils.GenerateID()
	if err != nil {
		return nil, NewBackupError(ErrGenerateID, "Falha ao gerar identificador do backup", err)
	}

	if label == "" {
		label = fmt.Sprintf("Backup pré-importação %s", startTime.Format("02/01/2006 15:04"))
	}

	bkp := &domain.ImportBackup{
		ID:            backupID,
		Label:         label,
		Type:          domain.BackupTypeFull,
		RevenueCount:  len(revenueRecords),
		ExecutedCount: len(executedRecords),
		Status:        domain.BackupStatusCompleted,
		RevenueData:   revenueData,
		ExecutedData:  executedData,
		RequestedBy:   requestedBy,
	}

	if err := s.backupRepo.Create(bkp); err != nil {
		return nil, NewBackupError(ErrSnapshotWrite, "Falha ao persistir o backup", err)
	}

	logrus.WithFields(logrus.Fields{
		"backup_id":      bkp.ID,
		"revenue_count":  bkp.RevenueCount,
		"executed_count": bkp.ExecutedCount,
		"duration":       time.Since(startTime).String(),
	}).Info("Backup pré-importação criado com sucesso")

	return bkp, nil
}

func (s *Service) ListBackups(limit uint64) ([]*domain.ImportBackup, error) {
	backups, err := s.backupRepo.List(limit)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao listar backups")
	}

	return backups, nil
}
