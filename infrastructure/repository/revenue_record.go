package repository

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/vfg2006/clinic-crm-api/infrastructure/database/postgres"
	"github.com/vfg2006/clinic-crm-api/internal/domain"
)

const (
	revenueRecordsTable = "revenue_records"

	// Cláusula de conflito sobre o índice único da chave composta. O banco é
	// a última barreira contra duplicados quando duas importações concorrem
	// sobre o mesmo período.
	revenueConflictClause = "ON CONFLICT (date, lower(patient_name), lower(procedure_name), amount) DO NOTHING RETURNING id"
)

type RevenueRecordRepository interface {
	ListCompositeKeys() (map[string]struct{}, error)
	Insert(record *domain.RevenueRecord) (bool, error)
	ListAll() ([]*domain.RevenueRecord, error)
	DeleteByPeriod(start, end time.Time) (int64, error)
}

type revenueRecordRepository struct {
	conn *postgres.Connection
}

func NewRevenueRecordRepository(conn *postgres.Connection) RevenueRecordRepository {
	return &revenueRecordRepository{
		conn: conn,
	}
}

// ListCompositeKeys carrega em uma única leitura o conjunto de chaves
// compostas de todos os registros já persistidos.
func (r *revenueRecordRepository) ListCompositeKeys() (map[string]struct{}, error) {
	query, args, err := squirrel.
		Select("date", "patient_name", "procedure_name", "amount").
		From(revenueRecordsTable).
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

	keys := make(map[string]struct{})
	for rows.Next() {
		var (
			date          time.Time
			patientName   string
			procedureName string
			amount        float64
		)
		if err := rows.Scan(&date, &patientName, &procedureName, &amount); err != nil {
			return nil, fmt.Errorf("erro ao escanear chave composta: %w", err)
		}
		keys[domain.CompositeKey(date, patientName, procedureName, amount)] = struct{}{}
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return keys, nil
}

// Insert persiste um registro de venda. Retorna false quando o índice único
// da chave composta rejeitou a linha (duplicado inserido por outra execução).
func (r *revenueRecordRepository) Insert(record *domain.RevenueRecord) (bool, error) {
	query, args, err := squirrel.
		Insert(revenueRecordsTable).
		Columns(
			"date", "patient_name", "procedure_name", "department", "amount",
			"user_id", "team_id", "notes", "batch_id", "registered_by_admin",
		).
		Values(
			record.Date.Format(time.DateOnly),
			record.PatientName,
			record.ProcedureName,
			record.Department,
			record.Amount,
			record.UserID,
			record.TeamID,
			record.Notes,
			record.BatchID,
			record.RegisteredByAdmin,
		).
		Suffix(revenueConflictClause).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return false, fmt.Errorf("erro ao construir a query: %w", err)
	}

	err = r.conn.QueryRow(query, args...).Scan(&record.ID)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			return false, fmt.Errorf("erro no banco de dados: %w (código: %s)", pqErr, pqErr.Code)
		}
		return false, fmt.Errorf("erro ao executar a query: %w", err)
	}

	return true, nil
}

func (r *revenueRecordRepository) ListAll() ([]*domain.RevenueRecord, error) {
	query, args, err := squirrel.
		Select(
			"id", "date", "patient_name", "procedure_name", "department", "amount",
			"user_id", "team_id", "notes", "batch_id", "registered_by_admin", "created_at",
		).
		From(revenueRecordsTable).
		OrderBy("date ASC", "id ASC").
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

	records := make([]*domain.RevenueRecord, 0)
	for rows.Next() {
		record := &domain.RevenueRecord{}
		if err := rows.Scan(
			&record.ID,
			&record.Date,
			&record.PatientName,
			&record.ProcedureName,
			&record.Department,
			&record.Amount,
			&record.UserID,
			&record.TeamID,
			&record.Notes,
			&record.BatchID,
			&record.RegisteredByAdmin,
			&record.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("erro ao escanear registro de venda: %w", err)
		}
		records = append(records, record)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return records, nil
}

// DeleteByPeriod remove registros apenas dentro do intervalo de datas
// informado. Nunca há limpeza de tabela inteira por este caminho.
func (r *revenueRecordRepository) DeleteByPeriod(start, end time.Time) (int64, error) {
	query, args, err := squirrel.
		Delete(revenueRecordsTable).
		Where(squirrel.GtOrEq{"date": start.Format(time.DateOnly)}).
		Where(squirrel.LtOrEq{"date": end.Format(time.DateOnly)}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("erro ao construir a query: %w", err)
	}

	result, err := r.conn.Exec(query, args...)
	if err != nil {
		return 0, fmt.Errorf("erro ao executar a query: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("erro ao obter número de linhas afetadas: %w", err)
	}

	return rowsAffected, nil
}
