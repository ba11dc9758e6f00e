package domain

import "time"

// Status possíveis de uma execução de importação
const (
	ImportStatusCompleted = "completed"
	ImportStatusPartial   = "partial"
	ImportStatusAborted   = "aborted"
	ImportStatusFailed    = "failed"
)

// ImportLog é o registro de auditoria de uma invocação de importação.
// Exatamente um por chamada, escrito tanto no caminho de sucesso quanto no
// de falha. Append-only: é o único histórico consultável do que aconteceu.
type ImportLog struct {
	ID                int64      `json:"id"`
	BackupID          string     `json:"backup_id"`
	FileType          string     `json:"file_type"`
	PeriodStart       *time.Time `json:"period_start"`
	PeriodEnd         *time.Time `json:"period_end"`
	TotalRows         int        `json:"total_rows"`
	ImportedRows      int        `json:"imported_rows"`
	DuplicateRows     int        `json:"duplicate_rows"`
	ErrorRows         int        `json:"error_rows"`
	Errors            []RowError `json:"errors"`
	DuplicatesRemoved []string   `json:"duplicates_removed"`
	Status            string     `json:"status"`
	DurationSeconds   float64    `json:"duration_seconds"`
	RFVRecalculated   bool       `json:"rfv_recalculated"`
	RequestedBy       string     `json:"requested_by"`
	CompletedAt       time.Time  `json:"completed_at"`
}
