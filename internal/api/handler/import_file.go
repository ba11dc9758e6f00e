package handler

import (
	"net/http"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/clinic-crm-api/internal/domain"
	"github.com/vfg2006/clinic-crm-api/internal/usecases/importing"
	"github.com/vfg2006/clinic-crm-api/pkg/apiErrors"
)

// Limite de upload de planilha: 20 MB cobre com folga um ano de movimento
const maxSpreadsheetBytes = 20 << 20

// ImportFile recebe uma planilha xlsx via multipart, converte a primeira aba
// em linhas de importação e devolve o resultado da validação. A importação
// definitiva continua passando pelo endpoint de importação com os dados já
// revisados.
func ImportFile(service importing.ImportService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseMultipartForm(maxSpreadsheetBytes); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Arquivo inválido ou grande demais", nil)
			return
		}

		file, header, err := r.FormFile("file")
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Campo 'file' ausente na requisição", nil)
			return
		}
		defer file.Close()

		fileType := r.FormValue("fileType")
		if fileType != domain.FileTypeVendas && fileType != domain.FileTypeExecutado {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest,
				"fileType inválido. Valores aceitos: vendas, executado", nil)
			return
		}

		rows, err := importing.ParseSpreadsheet(file)
		if err != nil {
			logrus.WithFields(logrus.Fields{
				"filename": header.Filename,
				"error":    err.Error(),
			}).Error("Erro ao interpretar planilha enviada")
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Não foi possível ler a planilha", nil)
			return
		}

		response, err := service.Validate(&domain.ImportRequest{
			Action:      domain.ActionValidate,
			FileType:    fileType,
			Data:        rows,
			PeriodStart: r.FormValue("periodStart"),
			PeriodEnd:   r.FormValue("periodEnd"),
		})
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, err.Error(), nil)
			return
		}

		writeJSON(w, http.StatusOK, map[string]any{
			"filename":   header.Filename,
			"rows":       rows,
			"validation": response.Result,
		})
	}
}
