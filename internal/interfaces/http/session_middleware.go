package http

import (
	"context"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/clube-api/internal/application/dto"
	"github.com/jhoicas/clube-api/internal/domain/access"
	"github.com/jhoicas/clube-api/pkg/logger"
)

// sessionResolver é o contrato mínimo do middleware. Implementado por *usecase.SessionResolver.
type sessionResolver interface {
	Resolve(ctx context.Context, userID string) (access.Session, error)
}

// SessionMiddleware monta a access.Session do usuário autenticado e a guarda em c.Locals.
// Deve vir DEPOIS de AuthMiddleware. Sem usuário vira sessão de visitante.
func SessionMiddleware(resolver sessionResolver, log *logger.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		s, err := resolver.Resolve(c.UserContext(), GetUserID(c))
		if err != nil {
			log.Error().Err(err).Str("user_id", GetUserID(c)).Msg("falha ao resolver sessão")
			return c.Status(fiber.StatusServiceUnavailable).JSON(dto.ErrorResponse{
				Code:    "SESSION_UNAVAILABLE",
				Message: "não foi possível verificar o acesso, tente mais tarde",
			})
		}
		c.Locals(LocalSession, s)
		return c.Next()
	}
}

// GetSession devolve a sessão do contexto; visitante quando ausente.
func GetSession(c *fiber.Ctx) access.Session {
	s, ok := c.Locals(LocalSession).(access.Session)
	if !ok {
		return access.Anonymous()
	}
	return s
}

// RequireCapability bloqueia a rota quando a sessão não tem a capacidade.
// Deve vir DEPOIS de SessionMiddleware.
//
//   - 403 → capacidade negada (mensagem genérica).
//   - 500 → capacidade desconhecida (erro de configuração da rota).
func RequireCapability(capability access.Capability, log *logger.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if err := access.Require(GetSession(c), capability); err != nil {
			return writeError(c, log, err)
		}
		return c.Next()
	}
}
