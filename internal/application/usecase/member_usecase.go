package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/jhoicas/clube-api/internal/application/dto"
	"github.com/jhoicas/clube-api/internal/domain"
	"github.com/jhoicas/clube-api/internal/domain/access"
	"github.com/jhoicas/clube-api/internal/domain/entity"
	"github.com/jhoicas/clube-api/internal/domain/repository"
	"github.com/jhoicas/clube-api/pkg/logger"
)

// MemberUseCase aplica as regras de negócio sobre os membros do portal.
// Papel e diretoria só mudam pelo painel admin.
type MemberUseCase struct {
	repo repository.UserRepository
	log  *logger.Logger
}

// NewMemberUseCase constrói o caso de uso com a porta de persistência.
func NewMemberUseCase(repo repository.UserRepository, log *logger.Logger) *MemberUseCase {
	if log == nil {
		log = logger.Nop()
	}
	return &MemberUseCase{repo: repo, log: log}
}

// Me devolve o usuário da sessão.
func (uc *MemberUseCase) Me(ctx context.Context, s access.Session) (*dto.UserResponse, error) {
	if !s.Authenticated() {
		return nil, domain.ErrUnauthorized
	}
	return uc.get(ctx, s.UserID())
}

// UpdateProfile altera o nome de exibição do próprio usuário. Não toca em papel nem diretoria.
func (uc *MemberUseCase) UpdateProfile(ctx context.Context, s access.Session, in dto.UpdateProfileRequest) (*dto.UserResponse, error) {
	if !s.Authenticated() {
		return nil, domain.ErrUnauthorized
	}
	name := strings.TrimSpace(in.DisplayName)
	if name == "" {
		return nil, fmt.Errorf("%w: nome de exibição obrigatório", domain.ErrInvalidInput)
	}
	if err := uc.repo.UpdateProfile(ctx, s.UserID(), name); err != nil {
		return nil, err
	}
	return uc.get(ctx, s.UserID())
}

// ChangeRole define o papel de um usuário. Exige access.ViewAdminPanel.
func (uc *MemberUseCase) ChangeRole(ctx context.Context, s access.Session, userID string, in dto.ChangeRoleRequest) (*dto.UserResponse, error) {
	if err := access.Require(s, access.ViewAdminPanel); err != nil {
		return nil, err
	}
	role, err := entity.ParseRole(in.Role)
	if err != nil {
		return nil, err
	}
	if err := uc.repo.UpdateRole(ctx, userID, role); err != nil {
		return nil, err
	}
	uc.log.Info().Str("user_id", userID).Str("role", string(role)).Str("by", s.UserID()).Msg("papel alterado")
	return uc.get(ctx, userID)
}

// SetDirector concede ou revoga a permissão de diretoria. Exige access.ViewAdminPanel.
func (uc *MemberUseCase) SetDirector(ctx context.Context, s access.Session, userID string, in dto.SetDirectorRequest) (*dto.UserResponse, error) {
	if err := access.Require(s, access.ViewAdminPanel); err != nil {
		return nil, err
	}
	if in.Diretor == nil {
		return nil, fmt.Errorf("%w: diretor obrigatório", domain.ErrInvalidInput)
	}
	if err := uc.repo.UpdateDirector(ctx, userID, *in.Diretor); err != nil {
		return nil, err
	}
	uc.log.Info().Str("user_id", userID).Bool("diretor", *in.Diretor).Str("by", s.UserID()).Msg("diretoria alterada")
	return uc.get(ctx, userID)
}

// Capabilities avalia todas as capacidades para a sessão.
func (uc *MemberUseCase) Capabilities(s access.Session) *dto.CapabilitiesResponse {
	out := &dto.CapabilitiesResponse{Capabilities: make(map[string]bool, len(access.All))}
	if s.User != nil {
		out.UserID = s.User.ID
		out.Role = string(s.User.Role)
		out.Diretor = s.User.Diretor
	}
	for c, ok := range access.Capabilities(s) {
		out.Capabilities[string(c)] = ok
	}
	return out
}

func (uc *MemberUseCase) get(ctx context.Context, id string) (*dto.UserResponse, error) {
	u, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, domain.ErrNotFound
	}
	return entityToUserResponse(u), nil
}

func entityToUserResponse(u *entity.User) *dto.UserResponse {
	if u == nil {
		return nil
	}
	return &dto.UserResponse{
		ID:          u.ID,
		Email:       u.Email,
		DisplayName: u.DisplayName,
		Role:        string(u.Role),
		Diretor:     u.Diretor,
		CreatedAt:   u.CreatedAt,
		UpdatedAt:   u.UpdatedAt,
	}
}
