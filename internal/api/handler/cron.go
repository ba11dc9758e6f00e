package handler

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/clinic-crm-api/internal/scheduler"
	"github.com/vfg2006/clinic-crm-api/pkg/apiErrors"
)

// CronJobType define o tipo de cron job que será executada
const (
	CronJobTypeRFV = "rfv"
)

// CronJobServices contém os serviços de cron necessários para executar manualmente
type CronJobServices struct {
	RFVRebuildService *scheduler.RFVRebuildService
}

// RunCronJob executa manualmente uma cron job específica
func RunCronJob(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - RunCronJob")

		cronType := httprouter.ParamsFromContext(r.Context()).ByName("type")
		if cronType == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Tipo de cron job não especificado", nil)
			return
		}

		switch cronType {
		case CronJobTypeRFV:
			if services.RFVRebuildService == nil {
				apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Serviço de reconstrução de RFV não disponível", nil)
				return
			}
			services.RFVRebuildService.TriggerManualRebuild()

		default:
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Tipo de cron job inválido. Valores aceitos: rfv", nil)
			return
		}

		writeJSON(w, http.StatusOK, map[string]any{
			"message": "Cron job iniciada com sucesso",
			"type":    cronType,
		})
	}
}

// GetCronStatus retorna o status das cron jobs
func GetCronStatus(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - GetCronStatus")

		status := map[string]any{
			"rfv": services.RFVRebuildService.GetStatus(),
		}

		writeJSON(w, http.StatusOK, status)
	}
}
