package repository

import (
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/vfg2006/clinic-crm-api/infrastructure/database/postgres"
	"github.com/vfg2006/clinic-crm-api/internal/domain"
)

const (
	importBackupsTable = "import_backups"
)

type BackupRepository interface {
	Create(backup *domain.ImportBackup) error
	List(limit uint64) ([]*domain.ImportBackup, error)
}

type backupRepository struct {
	conn *postgres.Connection
}

func NewBackupRepository(conn *postgres.Connection) BackupRepository {
	return &backupRepository{
		conn: conn,
	}
}

// Create persiste um backup completo. Backups nunca são atualizados nem
// removidos por este subsistema.
func (r *backupRepository) Create(backup *domain.ImportBackup) error {
	query, args, err := squirrel.
		Insert(importBackupsTable).
		Columns(
			"id", "label", "type", "revenue_count", "executed_count",
			"status", "revenue_data", "executed_data", "requested_by",
		).
		Values(
			backup.ID,
			backup.Label,
			backup.Type,
			backup.RevenueCount,
			backup.ExecutedCount,
			backup.Status,
			backup.RevenueData,
			backup.ExecutedData,
			backup.RequestedBy,
		).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	_, err = r.conn.Exec(query, args...)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			return fmt.Errorf("erro no banco de dados: %w (código: %s)", pqErr, pqErr.Code)
		}
		return fmt.Errorf("erro ao executar a query: %w", err)
	}

	return nil
}

// List retorna os backups mais recentes, sem o conteúdo dos snapshots.
func (r *backupRepository) List(limit uint64) ([]*domain.ImportBackup, error) {
	query, args, err := squirrel.
		Select("id", "label", "type", "revenue_count", "executed_count", "status", "requested_by", "created_at").
		From(importBackupsTable).
		OrderBy("created_at DESC").
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

	backups := make([]*domain.ImportBackup, 0)
	for rows.Next() {
		backup := &domain.ImportBackup{}
		if err := rows.Scan(
			&backup.ID,
			&backup.Label,
			&backup.Type,
			&backup.RevenueCount,
			&backup.ExecutedCount,
			&backup.Status,
			&backup.RequestedBy,
			&backup.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("erro ao escanear backup: %w", err)
		}
		backups = append(backups, backup)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return backups, nil
}
