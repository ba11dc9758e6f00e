package repository

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/vfg2006/clinic-crm-api/infrastructure/database/postgres"
	"github.com/vfg2006/clinic-crm-api/internal/domain"
)

const (
	importLogsTable = "import_logs"
)

type ImportLogRepository interface {
	Create(log *domain.ImportLog) error
	List(limit uint64) ([]*domain.ImportLog, error)
}

type importLogRepository struct {
	conn *postgres.Connection
}

func NewImportLogRepository(conn *postgres.Connection) ImportLogRepository {
	return &importLogRepository{
		conn: conn,
	}
}

// Create grava o registro de auditoria de uma execução. A tabela é
// append-only: não há update nem delete.
func (r *importLogRepository) Create(log *domain.ImportLog) error {
	errorsJSON, err := json.Marshal(log.Errors)
	if err != nil {
		return fmt.Errorf("erro ao serializar erros para JSON: %w", err)
	}

	duplicatesJSON, err := json.Marshal(log.DuplicatesRemoved)
	if err != nil {
		return fmt.Errorf("erro ao serializar duplicados para JSON: %w", err)
	}

	builder := squirrel.
		Insert(importLogsTable).
		Columns(
			"backup_id", "file_type", "period_start", "period_end",
			"total_rows", "imported_rows", "duplicate_rows", "error_rows",
			"errors", "duplicates_removed", "status", "duration_seconds",
			"rfv_recalculated", "requested_by", "completed_at",
		).
		Values(
			log.BackupID,
			log.FileType,
			formatNullableDate(log.PeriodStart),
			formatNullableDate(log.PeriodEnd),
			log.TotalRows,
			log.ImportedRows,
			log.DuplicateRows,
			log.ErrorRows,
			errorsJSON,
			duplicatesJSON,
			log.Status,
			log.DurationSeconds,
			log.RFVRecalculated,
			log.RequestedBy,
			log.CompletedAt,
		).
		Suffix("RETURNING id").
		PlaceholderFormat(squirrel.Dollar)

	query, args, err := builder.ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	err = r.conn.QueryRow(query, args...).Scan(&log.ID)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			return fmt.Errorf("erro no banco de dados: %w (código: %s)", pqErr, pqErr.Code)
		}
		return fmt.Errorf("erro ao executar a query: %w", err)
	}

	return nil
}

func (r *importLogRepository) List(limit uint64) ([]*domain.ImportLog, error) {
	query, args, err := squirrel.
		Select(
			"id", "backup_id", "file_type", "period_start", "period_end",
			"total_rows", "imported_rows", "duplicate_rows", "error_rows",
			"errors", "duplicates_removed", "status", "duration_seconds",
			"rfv_recalculated", "requested_by", "completed_at",
		).
		From(importLogsTable).
		OrderBy("completed_at DESC").
		Limit(limit).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	logs := make([]*domain.ImportLog, 0)
	for rows.Next() {
		entry := &domain.ImportLog{}
		var errorsJSON, duplicatesJSON []byte

		if err := rows.Scan(
			&entry.ID,
			&entry.BackupID,
			&entry.FileType,
			&entry.PeriodStart,
			&entry.PeriodEnd,
			&entry.TotalRows,
			&entry.ImportedRows,
			&entry.DuplicateRows,
			&entry.ErrorRows,
			&errorsJSON,
			&duplicatesJSON,
			&entry.Status,
			&entry.DurationSeconds,
			&entry.RFVRecalculated,
			&entry.RequestedBy,
			&entry.CompletedAt,
		); err != nil {
			return nil, fmt.Errorf("erro ao escanear registro de importação: %w", err)
		}

		if errorsJSON != nil {
			if err := json.Unmarshal(errorsJSON, &entry.Errors); err != nil {
				return nil, fmt.Errorf("erro ao deserializar JSON de erros: %w", err)
			}
		}
		if duplicatesJSON != nil {
			if err := json.Unmarshal(duplicatesJSON, &entry.DuplicatesRemoved); err != nil {
				return nil, fmt.Errorf("erro ao deserializar JSON de duplicados: %w", err)
			}
		}

		logs = append(logs, entry)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return logs, nil
}

func formatNullableDate(date *time.Time) interface{} {
	if date == nil {
		return nil
	}
	return date.Format(time.DateOnly)
}
