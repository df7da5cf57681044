package entity

import (
	"fmt"
	"time"

	"github.com/jhoicas/clube-api/internal/domain"
)

// Role é o papel de um usuário no clube. Exatamente um por usuário.
type Role string

// Papéis válidos para User.
const (
	RoleUsuario Role = "usuario" // padrão no auto-cadastro
	RoleSocio   Role = "socio"
	RoleJogador Role = "jogador"
	RoleAdmin   Role = "admin"
)

// Roles lista o conjunto fechado de papéis.
var Roles = []Role{RoleUsuario, RoleSocio, RoleJogador, RoleAdmin}

// ParseRole converte o valor armazenado em Role. Valores fora do conjunto são rejeitados.
func ParseRole(s string) (Role, error) {
	switch r := Role(s); r {
	case RoleUsuario, RoleSocio, RoleJogador, RoleAdmin:
		return r, nil
	}
	return "", fmt.Errorf("%w: papel desconhecido %q", domain.ErrInvalidInput, s)
}

// User representa um usuário do portal. A identidade vem do provedor externo;
// aqui ficam apenas os atributos que a política de acesso consome.
type User struct {
	ID          string
	Email       string
	DisplayName string
	Role        Role
	Diretor     bool // permissão de diretoria, independente do papel
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
