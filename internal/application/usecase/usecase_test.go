package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/clube-api/internal/application/dto"
	"github.com/jhoicas/clube-api/internal/application/usecase"
	"github.com/jhoicas/clube-api/internal/domain"
	"github.com/jhoicas/clube-api/internal/domain/access"
	"github.com/jhoicas/clube-api/internal/domain/entity"
	"github.com/jhoicas/clube-api/internal/infrastructure/memory"
)

func seedUsers() *memory.UserRepo {
	return memory.NewUserRepository(
		&entity.User{ID: "admin", Email: "admin@clube.br", DisplayName: "Admin", Role: entity.RoleAdmin},
		&entity.User{ID: "socio", Email: "socio@clube.br", DisplayName: "Sócio", Role: entity.RoleSocio},
		&entity.User{ID: "user", Email: "user@clube.br", DisplayName: "Torcedor", Role: entity.RoleUsuario},
	)
}

// ── SessionResolver ───────────────────────────────────────────────────────────

type failingModerators struct{}

func (failingModerators) IsModerator(context.Context, string) (bool, error) {
	return false, errors.New("conexão recusada")
}

func TestSessionResolver_Resolve(t *testing.T) {
	r := usecase.NewSessionResolver(seedUsers(), memory.NewModeratorRepository("user"))
	ctx := context.Background()

	s, err := r.Resolve(ctx, "user")
	require.NoError(t, err)
	require.True(t, s.Authenticated())
	assert.Equal(t, entity.RoleUsuario, s.User.Role)
	assert.True(t, s.CashFlowModerator)

	s, err = r.Resolve(ctx, "socio")
	require.NoError(t, err)
	assert.False(t, s.CashFlowModerator)

	s, err = r.Resolve(ctx, "desconhecido")
	require.NoError(t, err)
	assert.False(t, s.Authenticated(), "usuário inexistente vira visitante")

	s, err = r.Resolve(ctx, "")
	require.NoError(t, err)
	assert.False(t, s.Authenticated())
}

func TestSessionResolver_FalhaDeInfraestrutura(t *testing.T) {
	r := usecase.NewSessionResolver(seedUsers(), failingModerators{})
	_, err := r.Resolve(context.Background(), "admin")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "conexão recusada")
}

// ── MemberUseCase ─────────────────────────────────────────────────────────────

func sessionOf(t *testing.T, repo *memory.UserRepo, id string) access.Session {
	t.Helper()
	s, err := usecase.NewSessionResolver(repo, memory.NewModeratorRepository()).Resolve(context.Background(), id)
	require.NoError(t, err)
	return s
}

func TestMember_ChangeRole(t *testing.T) {
	repo := seedUsers()
	uc := usecase.NewMemberUseCase(repo, nil)
	ctx := context.Background()

	out, err := uc.ChangeRole(ctx, sessionOf(t, repo, "admin"), "user", dto.ChangeRoleRequest{Role: "socio"})
	require.NoError(t, err)
	assert.Equal(t, "socio", out.Role)

	// a promoção passa a valer na próxima sessão resolvida
	ok, _ := access.Evaluate(sessionOf(t, repo, "user"), access.ApplyMemberDiscount)
	assert.True(t, ok)
}

func TestMember_ChangeRole_SomenteAdmin(t *testing.T) {
	repo := seedUsers()
	uc := usecase.NewMemberUseCase(repo, nil)

	_, err := uc.ChangeRole(context.Background(), sessionOf(t, repo, "socio"), "socio", dto.ChangeRoleRequest{Role: "admin"})
	assert.ErrorIs(t, err, domain.ErrForbidden)

	u, _ := repo.GetByID(context.Background(), "socio")
	assert.Equal(t, entity.RoleSocio, u.Role)
}

func TestMember_ChangeRole_Invalido(t *testing.T) {
	repo := seedUsers()
	uc := usecase.NewMemberUseCase(repo, nil)
	admin := sessionOf(t, repo, "admin")

	_, err := uc.ChangeRole(context.Background(), admin, "user", dto.ChangeRoleRequest{Role: "presidente"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.ChangeRole(context.Background(), admin, "fantasma", dto.ChangeRoleRequest{Role: "socio"})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestMember_SetDirector(t *testing.T) {
	repo := seedUsers()
	uc := usecase.NewMemberUseCase(repo, nil)
	yes := true

	out, err := uc.SetDirector(context.Background(), sessionOf(t, repo, "admin"), "socio", dto.SetDirectorRequest{Diretor: &yes})
	require.NoError(t, err)
	assert.True(t, out.Diretor)
	assert.Equal(t, "socio", out.Role, "diretoria não muda o papel")

	ok, _ := access.Evaluate(sessionOf(t, repo, "socio"), access.ViewDirectorMinutes)
	assert.True(t, ok)

	_, err = uc.SetDirector(context.Background(), sessionOf(t, repo, "socio"), "user", dto.SetDirectorRequest{Diretor: &yes})
	assert.ErrorIs(t, err, domain.ErrForbidden)

	_, err = uc.SetDirector(context.Background(), sessionOf(t, repo, "admin"), "user", dto.SetDirectorRequest{})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestMember_UpdateProfile_NaoAlteraPapel(t *testing.T) {
	repo := seedUsers()
	uc := usecase.NewMemberUseCase(repo, nil)

	out, err := uc.UpdateProfile(context.Background(), sessionOf(t, repo, "user"), dto.UpdateProfileRequest{DisplayName: "  Novo Nome "})
	require.NoError(t, err)
	assert.Equal(t, "Novo Nome", out.DisplayName)
	assert.Equal(t, "usuario", out.Role)

	_, err = uc.UpdateProfile(context.Background(), access.Anonymous(), dto.UpdateProfileRequest{DisplayName: "x"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)

	_, err = uc.UpdateProfile(context.Background(), sessionOf(t, repo, "user"), dto.UpdateProfileRequest{DisplayName: "   "})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestMember_Capabilities(t *testing.T) {
	repo := seedUsers()
	uc := usecase.NewMemberUseCase(repo, nil)

	out := uc.Capabilities(sessionOf(t, repo, "socio"))
	assert.Equal(t, "socio", out.UserID)
	assert.Len(t, out.Capabilities, len(access.All))
	assert.True(t, out.Capabilities["comment_news"])
	assert.False(t, out.Capabilities["view_cashflow"])

	anon := uc.Capabilities(access.Anonymous())
	assert.Empty(t, anon.UserID)
	for name, ok := range anon.Capabilities {
		assert.False(t, ok, name)
	}
}

// ── ProductUseCase ────────────────────────────────────────────────────────────

func pct(v int) *int { return &v }

func seedProducts() *memory.ProductRepo {
	return memory.NewProductRepository(
		&entity.Product{ID: "camisa", Nome: "Camisa oficial", Preco: decimal.RequireFromString("100.00"), TemDescontoSocio: true, DescontoSocio: pct(10)},
		&entity.Product{ID: "bone", Nome: "Boné", Preco: decimal.RequireFromString("59.90"), TemDescontoSocio: true, DescontoSocio: pct(15)},
		&entity.Product{ID: "caneca", Nome: "Caneca", Preco: decimal.RequireFromString("35.00")},
	)
}

func TestProduct_Quote(t *testing.T) {
	users := seedUsers()
	uc := usecase.NewProductUseCase(seedProducts())
	ctx := context.Background()

	q, err := uc.Quote(ctx, sessionOf(t, users, "socio"), "camisa")
	require.NoError(t, err)
	assert.Equal(t, "90.00", q.PrecoFinal.StringFixed(2))
	assert.Equal(t, "10.00", q.DescontoAplicado.StringFixed(2))

	q, err = uc.Quote(ctx, sessionOf(t, users, "user"), "camisa")
	require.NoError(t, err)
	assert.Equal(t, "100.00", q.PrecoFinal.StringFixed(2))

	q, err = uc.Quote(ctx, access.Anonymous(), "camisa")
	require.NoError(t, err)
	assert.Equal(t, "100.00", q.PrecoFinal.StringFixed(2))

	_, err = uc.Quote(ctx, access.Anonymous(), "nao-existe")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestProduct_List(t *testing.T) {
	users := seedUsers()
	uc := usecase.NewProductUseCase(seedProducts())

	out, err := uc.List(context.Background(), sessionOf(t, users, "socio"), dto.PageRequest{})
	require.NoError(t, err)
	require.Len(t, out.Items, 3)
	assert.Equal(t, 20, out.Page.Limit)

	byID := map[string]dto.ProductPriceResponse{}
	for _, p := range out.Items {
		byID[p.ID] = p
	}
	assert.Equal(t, "50.91", byID["bone"].PrecoFinal.StringFixed(2))
	assert.Equal(t, "35.00", byID["caneca"].PrecoFinal.StringFixed(2))

	out, err = uc.List(context.Background(), access.Anonymous(), dto.PageRequest{Limit: 1, Offset: 1})
	require.NoError(t, err)
	require.Len(t, out.Items, 1)
	assert.Equal(t, "Camisa oficial", out.Items[0].Nome)
}
