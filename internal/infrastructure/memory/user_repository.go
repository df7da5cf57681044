package memory

import (
	"context"
	"sync"
	"time"

	"github.com/jhoicas/clube-api/internal/domain"
	"github.com/jhoicas/clube-api/internal/domain/entity"
	"github.com/jhoicas/clube-api/internal/domain/repository"
)

var _ repository.UserRepository = (*UserRepo)(nil)

// UserRepo usuários em memória.
type UserRepo struct {
	mu    sync.RWMutex
	users map[string]entity.User
	now   func() time.Time
}

// NewUserRepository constrói o repositório com os usuários iniciais.
func NewUserRepository(users ...*entity.User) *UserRepo {
	r := &UserRepo{users: make(map[string]entity.User), now: time.Now}
	for _, u := range users {
		r.users[u.ID] = *u
	}
	return r
}

// GetByID devolve (nil, nil) quando não existe.
func (r *UserRepo) GetByID(ctx context.Context, id string) (*entity.User, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	u, ok := r.users[id]
	if !ok {
		return nil, nil
	}
	return &u, nil
}

// UpdateProfile altera apenas o nome de exibição.
func (r *UserRepo) UpdateProfile(ctx context.Context, id, displayName string) error {
	return r.update(ctx, id, func(u *entity.User) { u.DisplayName = displayName })
}

// UpdateRole altera o papel.
func (r *UserRepo) UpdateRole(ctx context.Context, id string, role entity.Role) error {
	return r.update(ctx, id, func(u *entity.User) { u.Role = role })
}

// UpdateDirector altera a permissão de diretoria.
func (r *UserRepo) UpdateDirector(ctx context.Context, id string, diretor bool) error {
	return r.update(ctx, id, func(u *entity.User) { u.Diretor = diretor })
}

func (r *UserRepo) update(ctx context.Context, id string, fn func(u *entity.User)) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[id]
	if !ok {
		return domain.ErrNotFound
	}
	fn(&u)
	u.UpdatedAt = r.now()
	r.users[id] = u
	return nil
}
