package handler

import (
	"net/http"

	"github.com/vfg2006/clinic-crm-api/internal/api/handler/router"
	"github.com/vfg2006/clinic-crm-api/internal/usecases/backup"
	"github.com/vfg2006/clinic-crm-api/internal/usecases/importing"
	"github.com/vfg2006/clinic-crm-api/internal/usecases/scoring"
)

func Healthcheck() []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(),
		},
	}
}

func Import(service importing.ImportService) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/import",
			Method:  http.MethodPost,
			Handler: RunImport(service),
		},
		{
			Path:    "/v1/import/file",
			Method:  http.MethodPost,
			Handler: ImportFile(service),
		},
		{
			Path:    "/v1/import/logs",
			Method:  http.MethodGet,
			Handler: ListImportLogs(service),
		},
	}
}

func Backups(service backup.BackupService) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/import/backups",
			Method:  http.MethodGet,
			Handler: ListBackups(service),
		},
	}
}

func RFV(scorer scoring.Scorer) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/rfv/customers",
			Method:  http.MethodGet,
			Handler: ListRFVCustomers(scorer),
		},
	}
}

func CronJobs(services CronJobServices) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/cron/:type/run",
			Method:  http.MethodPost,
			Handler: RunCronJob(services),
		},
		{
			Path:    "/v1/cron/status",
			Method:  http.MethodGet,
			Handler: GetCronStatus(services),
		},
	}
}
