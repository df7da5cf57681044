// Package access implementa a política de visibilidade por papel do portal.
//
// É o único ponto do código que compara papéis: telas e casos de uso perguntam
// por uma Capability, nunca por um Role.
package access

import (
	"github.com/jhoicas/clube-api/internal/domain"
	"github.com/jhoicas/clube-api/internal/domain/entity"
)

// rule recebe sempre uma sessão autenticada.
type rule func(s Session) bool

var policies = map[Capability]rule{
	ViewAdminPanel: func(s Session) bool {
		return hasRole(s, entity.RoleAdmin)
	},
	ViewCashFlow: func(s Session) bool {
		return hasRole(s, entity.RoleAdmin) || s.CashFlowModerator
	},
	ViewDirectorMinutes: func(s Session) bool {
		return hasRole(s, entity.RoleAdmin) || s.User.Diretor
	},
	// jogador não vê as estatísticas detalhadas de outros atletas.
	ViewPlayerDetailedStats: func(s Session) bool {
		return hasRole(s, entity.RoleSocio, entity.RoleAdmin)
	},
	ApplyMemberDiscount: func(s Session) bool {
		return hasRole(s, entity.RoleSocio, entity.RoleJogador)
	},
	LikeNews: func(s Session) bool {
		return hasRole(s, entity.RoleUsuario, entity.RoleSocio, entity.RoleJogador)
	},
	CommentNews: func(s Session) bool {
		return hasRole(s, entity.RoleSocio, entity.RoleJogador)
	},
}

func hasRole(s Session, roles ...entity.Role) bool {
	for _, r := range roles {
		if s.User.Role == r {
			return true
		}
	}
	return false
}

// Evaluate decide se a sessão tem a capacidade. Sem efeitos colaterais.
// Capacidade desconhecida devolve domain.ErrConfiguration; visitante nunca tem permissão.
func Evaluate(s Session, c Capability) (bool, error) {
	allow, ok := policies[c]
	if !ok {
		return false, unknownCapability(c)
	}
	if !s.Authenticated() {
		return false, nil
	}
	return allow(s), nil
}

// Require é Evaluate para casos de uso: nega com domain.ErrForbidden, sem dizer o motivo.
func Require(s Session, c Capability) error {
	ok, err := Evaluate(s, c)
	if err != nil {
		return err
	}
	if !ok {
		return domain.ErrForbidden
	}
	return nil
}

// Capabilities avalia todas as capacidades conhecidas para a sessão.
func Capabilities(s Session) map[Capability]bool {
	out := make(map[Capability]bool, len(All))
	for _, c := range All {
		out[c], _ = Evaluate(s, c)
	}
	return out
}
