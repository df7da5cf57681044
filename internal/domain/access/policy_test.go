package access_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/clube-api/internal/domain"
	"github.com/jhoicas/clube-api/internal/domain/access"
	"github.com/jhoicas/clube-api/internal/domain/entity"
)

func sessionFor(role entity.Role) access.Session {
	return access.ForUser(&entity.User{ID: "u-" + string(role), Role: role}, false)
}

// Tabela esperada papel × capacidade (sem diretoria e sem moderação).
var expected = map[access.Capability]map[entity.Role]bool{
	access.ViewAdminPanel:          {entity.RoleAdmin: true},
	access.ViewCashFlow:            {entity.RoleAdmin: true},
	access.ViewDirectorMinutes:     {entity.RoleAdmin: true},
	access.ViewPlayerDetailedStats: {entity.RoleSocio: true, entity.RoleAdmin: true},
	access.ApplyMemberDiscount:     {entity.RoleSocio: true, entity.RoleJogador: true},
	access.LikeNews:                {entity.RoleUsuario: true, entity.RoleSocio: true, entity.RoleJogador: true},
	access.CommentNews:             {entity.RoleSocio: true, entity.RoleJogador: true},
}

func TestEvaluate_TabelaCompleta(t *testing.T) {
	require.Len(t, expected, len(access.All), "toda capacidade precisa de linha na tabela do teste")
	for _, c := range access.All {
		for _, r := range entity.Roles {
			got, err := access.Evaluate(sessionFor(r), c)
			require.NoError(t, err)
			assert.Equal(t, expected[c][r], got, "capacidade %s, papel %s", c, r)

			again, _ := access.Evaluate(sessionFor(r), c)
			assert.Equal(t, got, again, "avaliação deve ser determinística")
		}
	}
}

func TestEvaluate_VisitanteNegadoEmTudo(t *testing.T) {
	for _, c := range access.All {
		got, err := access.Evaluate(access.Anonymous(), c)
		require.NoError(t, err)
		assert.False(t, got, "visitante não pode ter %s", c)
	}
}

func TestEvaluate_CapacidadeDesconhecida(t *testing.T) {
	_, err := access.Evaluate(sessionFor(entity.RoleAdmin), access.Capability("edit_lineup"))
	assert.True(t, errors.Is(err, domain.ErrConfiguration))

	_, err = access.Evaluate(access.Anonymous(), access.Capability("edit_lineup"))
	assert.True(t, errors.Is(err, domain.ErrConfiguration), "desconhecida falha mesmo para visitante")
}

func TestEvaluate_CenariosConcretos(t *testing.T) {
	ok, err := access.Evaluate(sessionFor(entity.RoleSocio), access.ApplyMemberDiscount)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = access.Evaluate(sessionFor(entity.RoleUsuario), access.ApplyMemberDiscount)
	require.NoError(t, err)
	assert.False(t, ok)

	ok, err = access.Evaluate(sessionFor(entity.RoleUsuario), access.ViewCashFlow)
	require.NoError(t, err)
	assert.False(t, ok, "usuário fora da lista de moderadores não vê o caixa")
}

func TestEvaluate_ModeradorVeCaixa(t *testing.T) {
	s := access.ForUser(&entity.User{ID: "m1", Role: entity.RoleUsuario}, true)
	ok, err := access.Evaluate(s, access.ViewCashFlow)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, _ = access.Evaluate(s, access.ViewAdminPanel)
	assert.False(t, ok, "moderação não concede painel admin")
}

func TestEvaluate_DiretoriaIndependenteDoPapel(t *testing.T) {
	s := access.ForUser(&entity.User{ID: "d1", Role: entity.RoleJogador, Diretor: true}, false)

	ok, _ := access.Evaluate(s, access.ViewDirectorMinutes)
	assert.True(t, ok)
	ok, _ = access.Evaluate(s, access.ApplyMemberDiscount)
	assert.True(t, ok, "o papel jogador continua valendo junto com a diretoria")
	ok, _ = access.Evaluate(s, access.ViewCashFlow)
	assert.False(t, ok)
}

func TestRequire(t *testing.T) {
	assert.NoError(t, access.Require(sessionFor(entity.RoleAdmin), access.ViewAdminPanel))
	assert.ErrorIs(t, access.Require(sessionFor(entity.RoleSocio), access.ViewAdminPanel), domain.ErrForbidden)
	assert.ErrorIs(t, access.Require(sessionFor(entity.RoleSocio), "nope"), domain.ErrConfiguration)
}

func TestParseCapability(t *testing.T) {
	c, err := access.ParseCapability("comment_news")
	require.NoError(t, err)
	assert.Equal(t, access.CommentNews, c)

	_, err = access.ParseCapability("view_lineups")
	assert.ErrorIs(t, err, domain.ErrConfiguration)
}

func TestCapabilities_Jogador(t *testing.T) {
	got := access.Capabilities(sessionFor(entity.RoleJogador))
	assert.Len(t, got, len(access.All))
	assert.True(t, got[access.ApplyMemberDiscount])
	assert.True(t, got[access.LikeNews])
	assert.False(t, got[access.ViewPlayerDetailedStats])
}
