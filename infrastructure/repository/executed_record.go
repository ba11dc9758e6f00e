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
	executedRecordsTable = "executed_records"

	executedConflictClause = "ON CONFLICT (date, lower(patient_name), lower(procedure_name), amount) DO NOTHING RETURNING id"
)

type ExecutedRecordRepository interface {
	ListCompositeKeys() (map[string]struct{}, error)
	Insert(record *domain.ExecutedRecord) (bool, error)
	ListAll() ([]*domain.ExecutedRecord, error)
	DeleteByPeriod(start, end time.Time) (int64, error)
}

type executedRecordRepository struct {
	conn *postgres.Connection
}

func NewExecutedRecordRepository(conn *postgres.Connection) ExecutedRecordRepository {
	return &executedRecordRepository{
		conn: conn,
	}
}

func (r *executedRecordRepository) ListCompositeKeys() (map[string]struct{}, error) {
	query, args, err := squirrel.
		Select("date", "patient_name", "procedure_name", "amount").
		From(executedRecordsTable).
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

func (r *executedRecordRepository) Insert(record *domain.ExecutedRecord) (bool, error) {
	query, args, err := squirrel.
		Insert(executedRecordsTable).
		Columns(
			"date", "patient_name", "procedure_name", "department", "amount",
			"patient_phone", "patient_email", "origin", "referral_name", "executor_name",
			"user_id", "team_id", "notes", "batch_id", "registered_by_admin",
		).
		Values(
			record.Date.Format(time.DateOnly),
			record.PatientName,
			record.ProcedureName,
			record.Department,
			record.Amount,
			record.PatientPhone,
			record.PatientEmail,
			record.Origin,
			record.ReferralName,
			record.ExecutorName,
			record.UserID,
			record.TeamID,
			record.Notes,
			record.BatchID,
			record.RegisteredByAdmin,
		).
		Suffix(executedConflictClause).
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

func (r *executedRecordRepository) ListAll() ([]*domain.ExecutedRecord, error) {
	query, args, err := squirrel.
		Select(
			"id", "date", "patient_name", "procedure_name", "department", "amount",
			"patient_phone", "patient_email", "origin", "referral_name", "executor_name",
			"user_id", "team_id", "notes", "batch_id", "registered_by_admin", "created_at",
		).
		From(executedRecordsTable).
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

	records := make([]*domain.ExecutedRecord, 0)
	for rows.Next() {
		record, err := r.scanRecord(rows)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear procedimento executado: %w", err)
		}
		records = append(records, record)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return records, nil
}

func (r *executedRecordRepository) DeleteByPeriod(start, end time.Time) (int64, error) {
	query, args, err := squirrel.
		Delete(executedRecordsTable).
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

func (r *executedRecordRepository) scanRecord(rows *sql.Rows) (*domain.ExecutedRecord, error) {
	record := &domain.ExecutedRecord{}
	err := rows.Scan(
		&record.ID,
		&record.Date,
		&record.PatientName,
		&record.ProcedureName,
		&record.Department,
		&record.Amount,
		&record.PatientPhone,
		&record.PatientEmail,
		&record.Origin,
		&record.ReferralName,
		&record.ExecutorName,
		&record.UserID,
		&record.TeamID,
		&record.Notes,
		&record.BatchID,
		&record.RegisteredByAdmin,
		&record.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	return record, nil
}
