package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/clube-api/internal/domain"
	"github.com/jhoicas/clube-api/internal/domain/entity"
	"github.com/jhoicas/clube-api/internal/domain/repository"
)

var _ repository.UserRepository = (*UserRepo)(nil)

// UserRepo implementação de UserRepository sobre PostgreSQL.
type UserRepo struct {
	q Querier
}

// NewUserRepository constrói o adaptador de persistência para usuários.
func NewUserRepository(q Querier) *UserRepo {
	return &UserRepo{q: q}
}

// GetByID obtém um usuário; (nil, nil) quando não existe.
// Papel fora do conjunto conhecido é tratado como erro de configuração do dado.
func (r *UserRepo) GetByID(ctx context.Context, id string) (*entity.User, error) {
	query := `
		SELECT id, email, display_name, role, diretor, created_at, updated_at
		FROM users WHERE id = $1`
	var (
		u    entity.User
		role string
	)
	err := r.q.QueryRow(ctx, query, id).Scan(&u.ID, &u.Email, &u.DisplayName, &role, &u.Diretor, &u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get user: %w", err)
	}
	if u.Role, err = entity.ParseRole(role); err != nil {
		return nil, fmt.Errorf("%w: usuário %s: %v", domain.ErrConfiguration, id, err)
	}
	return &u, nil
}

// UpdateProfile altera apenas display_name.
func (r *UserRepo) UpdateProfile(ctx context.Context, id, displayName string) error {
	return r.exec(ctx, `UPDATE users SET display_name = $2, updated_at = now() WHERE id = $1`, id, displayName)
}

// UpdateRole altera o papel.
func (r *UserRepo) UpdateRole(ctx context.Context, id string, role entity.Role) error {
	return r.exec(ctx, `UPDATE users SET role = $2, updated_at = now() WHERE id = $1`, id, string(role))
}

// UpdateDirector altera a permissão de diretoria.
func (r *UserRepo) UpdateDirector(ctx context.Context, id string, diretor bool) error {
	return r.exec(ctx, `UPDATE users SET diretor = $2, updated_at = now() WHERE id = $1`, id, diretor)
}

func (r *UserRepo) exec(ctx context.Context, query string, args ...any) error {
	tag, err := r.q.Exec(ctx, query, args...)
	if err != nil {
		if isCheckViolation(err) {
			return fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
		}
		return fmt.Errorf("update user: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
