package importing

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/clinic-crm-api/internal/config"
	"github.com/vfg2006/clinic-crm-api/internal/domain"
	"go.uber.org/mock/gomock"

	repomocks "github.com/vfg2006/clinic-crm-api/infrastructure/repository/mocks"
	backupmocks "github.com/vfg2006/clinic-crm-api/internal/usecases/backup/mocks"
	scoringmocks "github.com/vfg2006/clinic-crm-api/internal/usecases/scoring/mocks"
)

type serviceFixture struct {
	revenueRepo   *repomocks.MockRevenueRecordRepository
	executedRepo  *repomocks.MockExecutedRecordRepository
	importLogRepo *repomocks.MockImportLogRepository
	userRepo      *repomocks.MockUserRepository
	backupService *backupmocks.MockBackupService
	scorer        *scoringmocks.MockScorer
	service       ImportService
}

func newServiceFixture(t *testing.T) *serviceFixture {
	return newServiceFixtureWithConfig(t, &config.Import{MaxErrorRate: 0.10, MaxMessages: 200})
}

func newServiceFixtureWithConfig(t *testing.T, cfg *config.Import) *serviceFixture {
	ctrl := gomock.NewController(t)

	f := &serviceFixture{
		revenueRepo:   repomocks.NewMockRevenueRecordRepository(ctrl),
		executedRepo:  repomocks.NewMockExecutedRecordRepository(ctrl),
		importLogRepo: repomocks.NewMockImportLogRepository(ctrl),
		userRepo:      repomocks.NewMockUserRepository(ctrl),
		backupService: backupmocks.NewMockBackupService(ctrl),
		scorer:        scoringmocks.NewMockScorer(ctrl),
	}

	f.service = NewService(
		cfg,
		f.revenueRepo,
		f.executedRepo,
		f.importLogRepo,
		f.userRepo,
		f.backupService,
		f.scorer,
	)

	return f
}

func validVendasRequest() *domain.ImportRequest {
	return &domain.ImportRequest{
		Action:   domain.ActionImport,
		FileType: domain.FileTypeVendas,
		Data: []domain.ImportRow{
			{Date: "15/03/2024", ClientName: "Maria Silva", ProcedureName: "Botox", ValueSold: "R$ 1.200,00"},
		},
	}
}

func TestImportFalhaDeBackupAborta(t *testing.T) {
	f := newServiceFixture(t)

	f.backupService.EXPECT().
		CreateBackup("", "admin").
		Return(nil, errors.New("banco indisponível"))

	var logged *domain.ImportLog
	f.importLogRepo.EXPECT().
		Create(gomock.Any()).
		Do(func(entry *domain.ImportLog) { logged = entry }).
		Return(nil).
		Times(1)

	response := f.service.Import(validVendasRequest(), "admin")

	assert.False(t, response.Success)
	assert.NotEmpty(t, response.Error)
	assert.Empty(t, response.BackupID)
	assert.NotNil(t, logged)
	assert.Equal(t, domain.ImportStatusFailed, logged.Status)
}

func TestImportVendasComSucesso(t *testing.T) {
	f := newServiceFixture(t)

	f.backupService.EXPECT().
		CreateBackup("", "admin").
		Return(&domain.ImportBackup{ID: "abc123", RevenueCount: 10, ExecutedCount: 5}, nil)

	f.userRepo.EXPECT().
		ListSellers().
		Return([]*domain.Seller{{ID: 7, Name: "Carla Souza", TeamID: 2}}, nil)

	f.userRepo.EXPECT().
		DefaultTeamID().
		Return(nil, nil)

	f.revenueRepo.EXPECT().
		ListCompositeKeys().
		Return(map[string]struct{}{}, nil)

	f.revenueRepo.EXPECT().
		Insert(gomock.Any()).
		Do(func(record *domain.RevenueRecord) {
			assert.Equal(t, "Maria Silva", record.PatientName)
			assert.Equal(t, 1200.0, record.Amount)
			assert.True(t, record.RegisteredByAdmin)
			assert.NotEmpty(t, record.BatchID)
		}).
		Return(true, nil)

	f.scorer.EXPECT().
		RecalculateAll().
		Return(&domain.RFVResult{Success: true, Updated: 3, Total: 3}, nil)

	var logged *domain.ImportLog
	f.importLogRepo.EXPECT().
		Create(gomock.Any()).
		Do(func(entry *domain.ImportLog) { logged = entry }).
		Return(nil).
		Times(1)

	response := f.service.Import(validVendasRequest(), "admin")

	assert.True(t, response.Success)
	assert.Equal(t, "abc123", response.BackupID)
	assert.Equal(t, 1, response.Vendas.Imported)
	assert.Zero(t, response.Vendas.Duplicates)
	assert.True(t, response.RFV.Success)

	assert.NotNil(t, logged)
	assert.Equal(t, domain.ImportStatusCompleted, logged.Status)
	assert.Equal(t, 1, logged.ImportedRows)
	assert.True(t, logged.RFVRecalculated)
}

func TestImportReimportarLoteIdenticoNaoDuplicaNada(t *testing.T) {
	f := newServiceFixture(t)

	f.backupService.EXPECT().
		CreateBackup("", "admin").
		Return(&domain.ImportBackup{ID: "abc123"}, nil)

	f.userRepo.EXPECT().
		ListSellers().
		Return([]*domain.Seller{}, nil)

	f.userRepo.EXPECT().
		DefaultTeamID().
		Return(nil, nil)

	// A chave da linha já existe no banco: tudo cai como duplicado, sem Insert.
	f.revenueRepo.EXPECT().
		ListCompositeKeys().
		Return(map[string]struct{}{
			"2024-03-15|maria silva|botox|1200.00": {},
		}, nil)

	f.scorer.EXPECT().
		RecalculateAll().
		Return(&domain.RFVResult{Success: true}, nil)

	f.importLogRepo.EXPECT().
		Create(gomock.Any()).
		Return(nil).
		Times(1)

	response := f.service.Import(validVendasRequest(), "admin")

	assert.True(t, response.Success)
	assert.Zero(t, response.Vendas.Imported)
	assert.Equal(t, 1, response.Vendas.Duplicates)
	assert.Equal(t, []string{"2024-03-15|maria silva|botox|1200.00"}, response.Vendas.DuplicateDetails)
}

func TestImportVendedorNaoResolvidoCaiNoTimePadrao(t *testing.T) {
	f := newServiceFixture(t)

	f.backupService.EXPECT().
		CreateBackup("", "admin").
		Return(&domain.ImportBackup{ID: "abc123"}, nil)

	f.userRepo.EXPECT().
		ListSellers().
		Return([]*domain.Seller{{ID: 7, Name: "Carla Souza", TeamID: 2}}, nil)

	defaultTeam := 42
	f.userRepo.EXPECT().
		DefaultTeamID().
		Return(&defaultTeam, nil)

	f.revenueRepo.EXPECT().
		ListCompositeKeys().
		Return(map[string]struct{}{}, nil)

	var inserted *domain.RevenueRecord
	f.revenueRepo.EXPECT().
		Insert(gomock.Any()).
		Do(func(record *domain.RevenueRecord) { inserted = record }).
		Return(true, nil)

	f.scorer.EXPECT().
		RecalculateAll().
		Return(&domain.RFVResult{Success: true}, nil)

	f.importLogRepo.EXPECT().
		Create(gomock.Any()).
		Return(nil).
		Times(1)

	request := validVendasRequest()
	request.Data[0].SellerName = "Vendedor Desconhecido"

	response := f.service.Import(request, "admin")

	assert.True(t, response.Success)
	assert.Equal(t, 1, response.Vendas.Imported)
	assert.Equal(t, []string{"Vendedor Desconhecido"}, response.Vendas.UnmatchedSellers)

	// Sem dono, mas nunca sem time: o registro cai no time padrão da clínica.
	assert.NotNil(t, inserted)
	assert.Nil(t, inserted.UserID)
	if assert.NotNil(t, inserted.TeamID) {
		assert.Equal(t, 42, *inserted.TeamID)
	}
}

func loteComDuplicataIntraLote() *domain.ImportRequest {
	return &domain.ImportRequest{
		Action:   domain.ActionImport,
		FileType: domain.FileTypeVendas,
		Data: []domain.ImportRow{
			{Date: "01/03/2024", ClientName: "Maria Silva", ProcedureName: "Botox", ValueSold: "1000"},
			{Date: "01/03/2024", ClientName: "maria silva", ProcedureName: "Botox", ValueSold: "1000"},
			{Date: "", ClientName: "João", ValueSold: "500"},
		},
	}
}

func TestImportDuplicataIntraLoteContaNoResultado(t *testing.T) {
	f := newServiceFixtureWithConfig(t, &config.Import{MaxErrorRate: 0.50, MaxMessages: 200})

	f.backupService.EXPECT().
		CreateBackup("", "admin").
		Return(&domain.ImportBackup{ID: "abc123"}, nil)

	f.userRepo.EXPECT().
		ListSellers().
		Return([]*domain.Seller{}, nil)

	f.userRepo.EXPECT().
		DefaultTeamID().
		Return(nil, nil)

	f.revenueRepo.EXPECT().
		ListCompositeKeys().
		Return(map[string]struct{}{}, nil)

	// Só a primeira ocorrência da chave chega ao banco.
	f.revenueRepo.EXPECT().
		Insert(gomock.Any()).
		Return(true, nil).
		Times(1)

	f.scorer.EXPECT().
		RecalculateAll().
		Return(&domain.RFVResult{Success: true}, nil)

	var logged *domain.ImportLog
	f.importLogRepo.EXPECT().
		Create(gomock.Any()).
		Do(func(entry *domain.ImportLog) { logged = entry }).
		Return(nil).
		Times(1)

	response := f.service.Import(loteComDuplicataIntraLote(), "admin")

	assert.True(t, response.Success)
	assert.Equal(t, 1, response.Vendas.Imported)
	assert.Equal(t, 1, response.Vendas.Duplicates)
	assert.Equal(t, []string{"2024-03-01|maria silva|botox|1000.00"}, response.Vendas.DuplicateDetails)
	assert.Equal(t, []int{0}, response.Validation.Result.ValidRows)
	assert.Len(t, response.Validation.Result.Errors, 1)
	assert.Equal(t, 3, response.Validation.Result.Errors[0].Row)

	assert.NotNil(t, logged)
	assert.Equal(t, 1, logged.ImportedRows)
	assert.Equal(t, 1, logged.DuplicateRows)
	assert.Equal(t, []string{"2024-03-01|maria silva|botox|1000.00"}, logged.DuplicatesRemoved)
	assert.Equal(t, 1, logged.ErrorRows)
}

func TestImportReenvioDoLoteComDuplicataIntraLote(t *testing.T) {
	f := newServiceFixtureWithConfig(t, &config.Import{MaxErrorRate: 0.50, MaxMessages: 200})

	f.backupService.EXPECT().
		CreateBackup("", "admin").
		Return(&domain.ImportBackup{ID: "def456"}, nil)

	f.userRepo.EXPECT().
		ListSellers().
		Return([]*domain.Seller{}, nil)

	f.userRepo.EXPECT().
		DefaultTeamID().
		Return(nil, nil)

	// O lote inteiro já foi importado: a linha válida e a duplicata intra-lote
	// compartilham a mesma chave, que conta uma única vez.
	f.revenueRepo.EXPECT().
		ListCompositeKeys().
		Return(map[string]struct{}{
			"2024-03-01|maria silva|botox|1000.00": {},
		}, nil)

	f.scorer.EXPECT().
		RecalculateAll().
		Return(&domain.RFVResult{Success: true}, nil)

	f.importLogRepo.EXPECT().
		Create(gomock.Any()).
		Return(nil).
		Times(1)

	response := f.service.Import(loteComDuplicataIntraLote(), "admin")

	assert.True(t, response.Success)
	assert.Zero(t, response.Vendas.Imported)
	assert.Equal(t, 1, response.Vendas.Duplicates)
	assert.Equal(t, []string{"2024-03-01|maria silva|botox|1000.00"}, response.Vendas.DuplicateDetails)
	assert.Len(t, response.Validation.Result.Errors, 1)
}

func TestImportDisjuntorDeTaxaDeErros(t *testing.T) {
	f := newServiceFixture(t)

	f.backupService.EXPECT().
		CreateBackup("", "admin").
		Return(&domain.ImportBackup{ID: "abc123"}, nil)

	var logged *domain.ImportLog
	f.importLogRepo.EXPECT().
		Create(gomock.Any()).
		Do(func(entry *domain.ImportLog) { logged = entry }).
		Return(nil).
		Times(1)

	request := &domain.ImportRequest{
		Action:   domain.ActionImport,
		FileType: domain.FileTypeVendas,
		Data: []domain.ImportRow{
			{Date: "15/03/2024", ClientName: "Ana", ValueSold: "100"},
			{Date: "", ClientName: "Bia", ValueSold: "100"},
		},
	}

	response := f.service.Import(request, "admin")

	assert.False(t, response.Success)
	assert.Equal(t, ErrTooManyErrors.Error(), response.Error)
	assert.Equal(t, "abc123", response.BackupID)
	assert.Nil(t, response.Vendas)

	assert.NotNil(t, logged)
	assert.Equal(t, domain.ImportStatusAborted, logged.Status)
	assert.Equal(t, 2, logged.TotalRows)
	assert.Equal(t, 1, logged.ErrorRows)
}

func TestImportRejeitadoPeloIndiceUnicoContaComoDuplicado(t *testing.T) {
	f := newServiceFixture(t)

	f.backupService.EXPECT().
		CreateBackup("", "admin").
		Return(&domain.ImportBackup{ID: "abc123"}, nil)

	f.userRepo.EXPECT().
		ListSellers().
		Return([]*domain.Seller{}, nil)

	f.userRepo.EXPECT().
		DefaultTeamID().
		Return(nil, nil)

	f.revenueRepo.EXPECT().
		ListCompositeKeys().
		Return(map[string]struct{}{}, nil)

	// Outra execução inseriu a mesma linha entre a leitura das chaves e o
	// insert: o índice único rejeita e o registro conta como duplicado.
	f.revenueRepo.EXPECT().
		Insert(gomock.Any()).
		Return(false, nil)

	f.scorer.EXPECT().
		RecalculateAll().
		Return(&domain.RFVResult{Success: true}, nil)

	f.importLogRepo.EXPECT().
		Create(gomock.Any()).
		Return(nil).
		Times(1)

	response := f.service.Import(validVendasRequest(), "admin")

	assert.True(t, response.Success)
	assert.Zero(t, response.Vendas.Imported)
	assert.Equal(t, 1, response.Vendas.Duplicates)
}

func TestImportClearOldDataExigePeriodo(t *testing.T) {
	f := newServiceFixture(t)

	f.importLogRepo.EXPECT().
		Create(gomock.Any()).
		Do(func(entry *domain.ImportLog) {
			assert.Equal(t, domain.ImportStatusFailed, entry.Status)
		}).
		Return(nil).
		Times(1)

	request := validVendasRequest()
	request.ClearOldData = true

	response := f.service.Import(request, "admin")

	assert.False(t, response.Success)
	assert.Equal(t, ErrMissingPeriod.Error(), response.Error)
}

func TestImportFalhaNoRFVNaoDesfazImportacao(t *testing.T) {
	f := newServiceFixture(t)

	f.backupService.EXPECT().
		CreateBackup("", "admin").
		Return(&domain.ImportBackup{ID: "abc123"}, nil)

	f.userRepo.EXPECT().
		ListSellers().
		Return([]*domain.Seller{}, nil)

	f.userRepo.EXPECT().
		DefaultTeamID().
		Return(nil, nil)

	f.revenueRepo.EXPECT().
		ListCompositeKeys().
		Return(map[string]struct{}{}, nil)

	f.revenueRepo.EXPECT().
		Insert(gomock.Any()).
		Return(true, nil)

	f.scorer.EXPECT().
		RecalculateAll().
		Return(&domain.RFVResult{Success: false, Error: "falha no recálculo"}, errors.New("falha no recálculo"))

	var logged *domain.ImportLog
	f.importLogRepo.EXPECT().
		Create(gomock.Any()).
		Do(func(entry *domain.ImportLog) { logged = entry }).
		Return(nil).
		Times(1)

	response := f.service.Import(validVendasRequest(), "admin")

	assert.True(t, response.Success)
	assert.Equal(t, 1, response.Vendas.Imported)
	assert.False(t, response.RFV.Success)
	assert.False(t, logged.RFVRecalculated)
}

func TestValidateAcaoValidateNaoTocaOBanco(t *testing.T) {
	f := newServiceFixture(t)

	request := &domain.ImportRequest{
		Action:   domain.ActionValidate,
		FileType: domain.FileTypeVendas,
		Data: []domain.ImportRow{
			{Date: "15/03/2024", ClientName: "Ana", ValueSold: "100"},
		},
	}

	response, err := f.service.Validate(request)

	assert.NoError(t, err)
	assert.NotNil(t, response.Result)
	assert.Equal(t, []int{0}, response.Result.ValidRows)
}

func TestValidateFileTypeBothSeparaOsConjuntos(t *testing.T) {
	f := newServiceFixture(t)

	request := &domain.ImportRequest{
		Action:   domain.ActionValidate,
		FileType: domain.FileTypeBoth,
		Data: []domain.ImportRow{
			{Date: "15/03/2024", ClientName: "Ana", ValueSold: "100"},
		},
		ExecutadoData: []domain.ImportRow{
			{Date: "16/03/2024", ClientName: "Bia", ValueReceived: "80"},
		},
	}

	response, err := f.service.Validate(request)

	assert.NoError(t, err)
	assert.Nil(t, response.Result)
	assert.Equal(t, []int{0}, response.Vendas.ValidRows)
	assert.Equal(t, []int{0}, response.Executado.ValidRows)
}
