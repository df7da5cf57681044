package usecase

import (
	"context"
	"fmt"

	"github.com/jhoicas/clube-api/internal/domain/access"
	"github.com/jhoicas/clube-api/internal/domain/repository"
)

// SessionResolver monta a access.Session de cada requisição a partir do usuário
// autenticado. É o único ponto que junta papel, diretoria e moderação do caixa.
type SessionResolver struct {
	users      repository.UserRepository
	moderators repository.ModeratorRepository
}

// NewSessionResolver constrói o resolvedor.
func NewSessionResolver(users repository.UserRepository, moderators repository.ModeratorRepository) *SessionResolver {
	return &SessionResolver{users: users, moderators: moderators}
}

// Resolve carrega o usuário e a participação na lista de moderadores.
// userID vazio ou usuário inexistente devolve sessão de visitante, sem erro.
// Erro só em falhas de infraestrutura.
func (r *SessionResolver) Resolve(ctx context.Context, userID string) (access.Session, error) {
	if userID == "" {
		return access.Anonymous(), nil
	}
	u, err := r.users.GetByID(ctx, userID)
	if err != nil {
		return access.Session{}, fmt.Errorf("session: carregar usuário: %w", err)
	}
	if u == nil {
		return access.Anonymous(), nil
	}
	moderator, err := r.moderators.IsModerator(ctx, userID)
	if err != nil {
		return access.Session{}, fmt.Errorf("session: consultar moderadores: %w", err)
	}
	return access.ForUser(u, moderator), nil
}
