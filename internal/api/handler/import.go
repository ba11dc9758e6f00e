package handler

import (
	"net/http"
	"strconv"

	jsoniter "github.com/json-iterator/go"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/clinic-crm-api/internal/domain"
	"github.com/vfg2006/clinic-crm-api/internal/usecases/importing"
	"github.com/vfg2006/clinic-crm-api/pkg/apiErrors"
	"github.com/vfg2006/clinic-crm-api/pkg/middleware"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// RunImport é o endpoint único do pipeline de importação. A ação vem no
// corpo: "backup" captura o estado atual, "validate" examina o lote sem
// escrever nada e "import" executa o pipeline completo.
func RunImport(service importing.ImportService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		request := &domain.ImportRequest{}
		if err := json.NewDecoder(r.Body).Decode(request); err != nil {
			logrus.Error("Erro ao decodificar o corpo da importação:", err)
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Corpo da requisição inválido", nil)
			return
		}

		requestedBy := middleware.IdentityFromContext(r.Context())

		switch request.Action {
		case domain.ActionBackup:
			response := service.Backup(requestedBy)
			status := http.StatusOK
			if !response.Success {
				status = http.StatusInternalServerError
			}
			writeJSON(w, status, response)

		case domain.ActionValidate:
			response, err := service.Validate(request)
			if err != nil {
				apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, err.Error(), nil)
				return
			}
			writeJSON(w, http.StatusOK, response)

		case domain.ActionImport:
			response := service.Import(request, requestedBy)
			status := http.StatusOK
			if !response.Success {
				status = http.StatusUnprocessableEntity
			}
			writeJSON(w, status, response)

		default:
			err := importing.NewImportError(importing.ErrInvalidAction,
				"Ação inválida. Valores aceitos: backup, validate, import", nil)
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, err.Error(), nil)
		}
	}
}

// ListImportLogs retorna o histórico de auditoria das importações, da mais
// recente para a mais antiga.
func ListImportLogs(service importing.ImportService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logs, err := service.ListLogs(queryLimit(r, 50))
		if err != nil {
			logrus.Error("Erro ao listar registros de importação:", err)
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao listar registros de importação", nil)
			return
		}

		writeJSON(w, http.StatusOK, logs)
	}
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		logrus.Error("Erro ao enviar resposta:", err)
	}
}

func queryLimit(r *http.Request, fallback uint64) uint64 {
	raw := r.URL.Query().Get("limit")
	if raw == "" {
		return fallback
	}

	limit, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || limit == 0 {
		return fallback
	}
	return limit
}
