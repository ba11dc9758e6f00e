package handler

import (
	"net/http"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/clinic-crm-api/internal/usecases/backup"
	"github.com/vfg2006/clinic-crm-api/pkg/apiErrors"
)

// ListBackups retorna os backups pré-importação mais recentes. Os dados dos
// snapshots ficam de fora da listagem: só os metadados trafegam.
func ListBackups(service backup.BackupService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		backups, err := service.ListBackups(queryLimit(r, 20))
		if err != nil {
			logrus.Error("Erro ao listar backups:", err)
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao listar backups", nil)
			return
		}

		writeJSON(w, http.StatusOK, backups)
	}
}
