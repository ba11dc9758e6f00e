package domain

import "time"

// Status possíveis de um backup
const (
	BackupStatusCompleted = "completed"
	BackupStatusFailed    = "failed"
)

// BackupTypeFull indica que ambos os conjuntos de registros foram capturados.
const BackupTypeFull = "full"

// ImportBackup é um snapshot imutável do conteúdo completo dos dois conjuntos
// de registros persistidos, criado antes de toda importação. Nunca é alterado
// nem removido automaticamente: é o mecanismo de rollback manual de última
// instância.
type ImportBackup struct {
	ID            string    `json:"id"`
	Label         string    `json:"label"`
	Type          string    `json:"type"`
	RevenueCount  int       `json:"revenue_count"`
	ExecutedCount int       `json:"executed_count"`
	Status        string    `json:"status"`
	RevenueData   []byte    `json:"-"`
	ExecutedData  []byte    `json:"-"`
	RequestedBy   string    `json:"requested_by"`
	CreatedAt     time.Time `json:"created_at"`
}
