package backup

import (
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	repomocks "github.com/vfg2006/clinic-crm-api/infrastructure/repository/mocks"
	"github.com/vfg2006/clinic-crm-api/internal/domain"
	"go.uber.org/mock/gomock"
)

func TestCreateBackup(t *testing.T) {
	revenueRecords := []*domain.RevenueRecord{
		{ID: 1, PatientName: "Maria Silva", Amount: 1200, Date: time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)},
	}
	executedRecords := []*domain.ExecutedRecord{
		{ID: 1, PatientName: "Maria Silva", Amount: 800, Date: time.Date(2024, 3, 20, 0, 0, 0, 0, time.UTC)},
		{ID: 2, PatientName: "João Souza", Amount: 300, Date: time.Date(2024, 3, 21, 0, 0, 0, 0, time.UTC)},
	}

	t.Run("captura os dois conjuntos e persiste tudo junto", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		revenueRepo := repomocks.NewMockRevenueRecordRepository(ctrl)
		executedRepo := repomocks.NewMockExecutedRecordRepository(ctrl)
		backupRepo := repomocks.NewMockBackupRepository(ctrl)

		revenueRepo.EXPECT().ListAll().Return(revenueRecords, nil)
		executedRepo.EXPECT().ListAll().Return(executedRecords, nil)

		var created *domain.ImportBackup
		backupRepo.EXPECT().
			Create(gomock.Any()).
			Do(func(bkp *domain.ImportBackup) { created = bkp }).
			Return(nil)

		service := NewService(revenueRepo, executedRepo, backupRepo)

		bkp, err := service.CreateBackup("", "admin")

		assert.NoError(t, err)
		assert.NotEmpty(t, bkp.ID)
		assert.Contains(t, bkp.Label, "Backup pré-importação")
		assert.Equal(t, 1, bkp.RevenueCount)
		assert.Equal(t, 2, bkp.ExecutedCount)
		assert.Equal(t, domain.BackupStatusCompleted, bkp.Status)
		assert.NotEmpty(t, created.RevenueData)
		assert.NotEmpty(t, created.ExecutedData)
	})

	t.Run("falha na leitura de vendas não gera backup parcial", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		revenueRepo := repomocks.NewMockRevenueRecordRepository(ctrl)
		executedRepo := repomocks.NewMockExecutedRecordRepository(ctrl)
		backupRepo := repomocks.NewMockBackupRepository(ctrl)

		revenueRepo.EXPECT().ListAll().Return(nil, errors.New("banco indisponível"))

		service := NewService(revenueRepo, executedRepo, backupRepo)

		bkp, err := service.CreateBackup("", "admin")

		assert.Nil(t, bkp)
		assert.ErrorIs(t, err, ErrSnapshotRead)
	})

	t.Run("falha na persistência propaga o erro", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		revenueRepo := repomocks.NewMockRevenueRecordRepository(ctrl)
		executedRepo := repomocks.NewMockExecutedRecordRepository(ctrl)
		backupRepo := repomocks.NewMockBackupRepository(ctrl)

		revenueRepo.EXPECT().ListAll().Return(revenueRecords, nil)
		executedRepo.EXPECT().ListAll().Return(executedRecords, nil)
		backupRepo.EXPECT().Create(gomock.Any()).Return(errors.New("disco cheio"))

		service := NewService(revenueRepo, executedRepo, backupRepo)

		bkp, err := service.CreateBackup("", "admin")

		assert.Nil(t, bkp)
		assert.ErrorIs(t, err, ErrSnapshotWrite)
	})

	t.Run("rótulo informado é preservado", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		revenueRepo := repomocks.NewMockRevenueRecordRepository(ctrl)
		executedRepo := repomocks.NewMockExecutedRecordRepository(ctrl)
		backupRepo := repomocks.NewMockBackupRepository(ctrl)

		revenueRepo.EXPECT().ListAll().Return(revenueRecords, nil)
		executedRepo.EXPECT().ListAll().Return(executedRecords, nil)
		backupRepo.EXPECT().Create(gomock.Any()).Return(nil)

		service := NewService(revenueRepo, executedRepo, backupRepo)

		bkp, err := service.CreateBackup("Antes da carga de março", "admin")

		assert.NoError(t, err)
		assert.Equal(t, "Antes da carga de março", bkp.Label)
	})
}
