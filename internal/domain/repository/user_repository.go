package repository

import (
	"context"

	"github.com/jhoicas/clube-api/internal/domain/entity"
)

// UserRepository define o porto de persistência para User (DIP).
type UserRepository interface {
	GetByID(ctx context.Context, id string) (*entity.User, error)
	UpdateProfile(ctx context.Context, id, displayName string) error
	UpdateRole(ctx context.Context, id string, role entity.Role) error
	UpdateDirector(ctx context.Context, id string, diretor bool) error
}
