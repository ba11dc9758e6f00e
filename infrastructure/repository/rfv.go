package repository

import (
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/vfg2006/clinic-crm-api/infrastructure/database/postgres"
	"github.com/vfg2006/clinic-crm-api/internal/domain"
)

const (
	rfvCustomersTable = "rfv_customers"
)

type RFVRepository interface {
	Upsert(customer *domain.RFVCustomer) error
	List(segment string, limit uint64) ([]*domain.RFVCustomer, error)
}

type rfvRepository struct {
	conn *postgres.Connection
}

func NewRFVRepository(conn *postgres.Connection) RFVRepository {
	return &rfvRepository{
		conn: conn,
	}
}

// Upsert insere ou substitui o perfil RFV de um cliente, chaveado pelo nome
// normalizado.
func (r *rfvRepository) Upsert(customer *domain.RFVCustomer) error {
	query, args, err := squirrel.
		Insert(rfvCustomersTable).
		Columns(
			"customer_name", "email", "phone", "recency_days", "frequency",
			"monetary", "score", "segment", "last_purchase_date",
		).
		Values(
			customer.CustomerName,
			customer.Email,
			customer.Phone,
			customer.RecencyDays,
			customer.Frequency,
			customer.Monetary,
			customer.Score,
			customer.Segment,
			customer.LastPurchaseDate.Format(time.DateOnly),
		).
		Suffix(`
			ON CONFLICT (customer_name) DO UPDATE SET
				email = EXCLUDED.email,
				phone = EXCLUDED.phone,
				recency_days = EXCLUDED.recency_days,
				frequency = EXCLUDED.frequency,
				monetary = EXCLUDED.monetary,
				score = EXCLUDED.score,
				segment = EXCLUDED.segment,
				last_purchase_date = EXCLUDED.last_purchase_date,
				updated_at = NOW()
		`).
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

func (r *rfvRepository) List(segment string, limit uint64) ([]*domain.RFVCustomer, error) {
	builder := squirrel.
		Select(
			"customer_name", "email", "phone", "recency_days", "frequency",
			"monetary", "score", "segment", "last_purchase_date", "updated_at",
		).
		From(rfvCustomersTable).
		OrderBy("score DESC", "customer_name ASC").
		Limit(limit).
		PlaceholderFormat(squirrel.Dollar)

	if segment != "" {
		builder = builder.Where(squirrel.Eq{"segment": segment})
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	customers := make([]*domain.RFVCustomer, 0)
	for rows.Next() {
		customer := &domain.RFVCustomer{}
		if err := rows.Scan(
			&customer.CustomerName,
			&customer.Email,
			&customer.Phone,
			&customer.RecencyDays,
			&customer.Frequency,
			&customer.Monetary,
			&customer.Score,
			&customer.Segment,
			&customer.LastPurchaseDate,
			&customer.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("erro ao escanear cliente RFV: %w", err)
		}
		customers = append(customers, customer)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return customers, nil
}
