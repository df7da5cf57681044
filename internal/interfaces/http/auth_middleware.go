package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/clube-api/internal/application/dto"
	"github.com/jhoicas/clube-api/pkg/jwt"
)

// Locals keys no Fiber.
const (
	LocalUserID  = "user_id"
	LocalSession = "session"
)

// AuthMiddleware valida o Bearer Token emitido pelo provedor de identidade e guarda o sub em c.Locals.
func AuthMiddleware(jwtSecret, issuer string) fiber.Handler {
	return authMiddleware(jwtSecret, issuer, false)
}

// OptionalAuthMiddleware como AuthMiddleware, mas sem Authorization segue como visitante.
// Token presente e inválido continua sendo 401.
func OptionalAuthMiddleware(jwtSecret, issuer string) fiber.Handler {
	return authMiddleware(jwtSecret, issuer, true)
}

func authMiddleware(jwtSecret, issuer string, optional bool) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			if optional {
				return c.Next()
			}
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_TOKEN", Message: "header Authorization obrigatório"})
		}
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_TOKEN", Message: "formato: Bearer <token>"})
		}
		tokenString := strings.TrimSpace(parts[1])
		if tokenString == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_TOKEN", Message: "token vazio"})
		}
		claims, err := jwt.Parse(jwtSecret, issuer, tokenString)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_TOKEN", Message: "token inválido ou expirado"})
		}
		c.Locals(LocalUserID, claims.Subject)
		return c.Next()
	}
}

// GetUserID devolve o id do usuário do contexto (depois do middleware de auth).
func GetUserID(c *fiber.Ctx) string {
	v := c.Locals(LocalUserID)
	if v == nil {
		return ""
	}
	s, _ := v.(string)
	return s
}
