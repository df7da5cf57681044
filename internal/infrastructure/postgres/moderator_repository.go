package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/clube-api/internal/domain/repository"
)

var _ repository.ModeratorRepository = (*ModeratorRepo)(nil)

// ModeratorRepo leitura da tabela cashflow_moderators.
type ModeratorRepo struct {
	q Querier
}

// NewModeratorRepository constrói o adaptador.
func NewModeratorRepository(q Querier) *ModeratorRepo {
	return &ModeratorRepo{q: q}
}

// IsModerator informa se o usuário está na lista de moderadores do caixa.
func (r *ModeratorRepo) IsModerator(ctx context.Context, userID string) (bool, error) {
	var ok bool
	err := r.q.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM cashflow_moderators WHERE user_id = $1)`, userID).Scan(&ok)
	if err != nil {
		return false, fmt.Errorf("is moderator: %w", err)
	}
	return ok, nil
}
