package repository

import (
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/clinic-crm-api/infrastructure/database/postgres"
	"github.com/vfg2006/clinic-crm-api/internal/domain"
)

const (
	usersTable = "users"
	teamsTable = "teams"
)

// UserRepository é a leitura do diretório de usuários usada para resolver
// nomes de vendedor/profissional em identificadores internos.
type UserRepository interface {
	ListSellers() ([]*domain.Seller, error)
	DefaultTeamID() (*int, error)
}

type userRepository struct {
	conn *postgres.Connection
}

func NewUserRepository(conn *postgres.Connection) UserRepository {
	return &userRepository{
		conn: conn,
	}
}

// ListSellers retorna todos os usuários ativos com seus times, em uma única
// leitura por execução de importação.
func (r *userRepository) ListSellers() ([]*domain.Seller, error) {
	query, args, err := squirrel.
		Select("id", "name", "team_id").
		From(usersTable).
		Where(squirrel.Eq{"active": true}).
		OrderBy("name ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir consulta: %w", err)
	}

	rows, err := r.conn.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao consultar usuários: %w", err)
	}
	defer rows.Close()

	sellers := make([]*domain.Seller, 0)
	for rows.Next() {
		seller := &domain.Seller{}
		if err := rows.Scan(&seller.ID, &seller.Name, &seller.TeamID); err != nil {
			return nil, fmt.Errorf("erro ao processar resultado: %w", err)
		}
		sellers = append(sellers, seller)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante iteração: %w", err)
	}

	return sellers, nil
}

// DefaultTeamID retorna o time padrão para linhas cujo vendedor não foi
// resolvido. Retorna nil quando nenhum time padrão está configurado.
func (r *userRepository) DefaultTeamID() (*int, error) {
	query, args, err := squirrel.
		Select("id").
		From(teamsTable).
		Where(squirrel.Eq{"is_default": true}).
		Limit(1).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir consulta: %w", err)
	}

	var teamID int
	err = r.conn.QueryRow(query, args...).Scan(&teamID)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("erro ao consultar time padrão: %w", err)
	}

	return &teamID, nil
}
