package access

import "github.com/jhoicas/clube-api/internal/domain/entity"

// Session é o contexto explícito do ator em cada chamada.
// User nil representa visitante não autenticado.
type Session struct {
	User              *entity.User
	CashFlowModerator bool
}

// Anonymous devolve a sessão de um visitante.
func Anonymous() Session { return Session{} }

// ForUser monta a sessão de um usuário resolvido.
func ForUser(u *entity.User, moderator bool) Session {
	return Session{User: u, CashFlowModerator: moderator}
}

// Authenticated informa se há usuário na sessão.
func (s Session) Authenticated() bool { return s.User != nil }

// UserID devolve o id do ator ou "" para visitantes.
func (s Session) UserID() string {
	if s.User == nil {
		return ""
	}
	return s.User.ID
}
