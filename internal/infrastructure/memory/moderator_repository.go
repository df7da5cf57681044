package memory

import (
	"context"
	"sync"

	"github.com/jhoicas/clube-api/internal/domain/repository"
)

var _ repository.ModeratorRepository = (*ModeratorRepo)(nil)

// ModeratorRepo lista de moderadores do caixa em memória.
type ModeratorRepo struct {
	mu  sync.RWMutex
	ids map[string]struct{}
}

// NewModeratorRepository constrói a lista com os ids informados.
func NewModeratorRepository(userIDs ...string) *ModeratorRepo {
	r := &ModeratorRepo{ids: make(map[string]struct{}, len(userIDs))}
	for _, id := range userIDs {
		r.ids[id] = struct{}{}
	}
	return r
}

// IsModerator informa se o usuário está na lista.
func (r *ModeratorRepo) IsModerator(ctx context.Context, userID string) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.ids[userID]
	return ok, nil
}
