package handler

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/clinic-crm-api/internal/domain"
	"github.com/vfg2006/clinic-crm-api/pkg/apiErrors"
	"go.uber.org/mock/gomock"

	importingmocks "github.com/vfg2006/clinic-crm-api/internal/usecases/importing/mocks"
)

func TestRunImportAcaoDesconhecidaRetorna400(t *testing.T) {
	ctrl := gomock.NewController(t)
	service := importingmocks.NewMockImportService(ctrl)

	request := httptest.NewRequest(http.MethodPost, "/v1/import",
		strings.NewReader(`{"action":"reprocessar","fileType":"vendas"}`))
	recorder := httptest.NewRecorder()

	RunImport(service)(recorder, request)

	assert.Equal(t, http.StatusBadRequest, recorder.Code)

	var apiErr apiErrors.APIError
	assert.NoError(t, json.NewDecoder(recorder.Body).Decode(&apiErr))
	assert.Equal(t, apiErrors.ErrInvalidRequest, apiErr.Code)
	assert.Contains(t, apiErr.Message, "Ação inválida")
}

func TestRunImportAcaoImportSemSucessoRetorna422(t *testing.T) {
	ctrl := gomock.NewController(t)
	service := importingmocks.NewMockImportService(ctrl)

	service.EXPECT().
		Import(gomock.Any(), gomock.Any()).
		Return(&domain.ImportResponse{Success: false, Error: "lote com taxa de erros acima do limite"})

	request := httptest.NewRequest(http.MethodPost, "/v1/import",
		strings.NewReader(`{"action":"import","fileType":"vendas"}`))
	recorder := httptest.NewRecorder()

	RunImport(service)(recorder, request)

	assert.Equal(t, http.StatusUnprocessableEntity, recorder.Code)
}
