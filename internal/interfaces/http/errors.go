package http

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/clube-api/internal/application/dto"
	"github.com/jhoicas/clube-api/internal/domain"
	"github.com/jhoicas/clube-api/pkg/logger"
)

// Mensagens expostas ao cliente. Negações de acesso não revelam o motivo.
const (
	msgForbidden = "operação não permitida"
	msgNotFound  = "registro não existe mais"
	msgNoData    = "nada para exportar"
	msgInternal  = "erro interno, tente novamente"
)

var validate = validator.New()

// validateStruct valida o DTO com as tags validate e devolve domain.ErrInvalidInput.
func validateStruct(v any) error {
	if err := validate.Struct(v); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			return &fieldError{field: verrs[0].Field(), tag: verrs[0].Tag()}
		}
		return domain.ErrInvalidInput
	}
	return nil
}

type fieldError struct {
	field, tag string
}

func (e *fieldError) Error() string {
	return "campo " + e.field + " inválido (" + e.tag + ")"
}

func (e *fieldError) Unwrap() error { return domain.ErrInvalidInput }

// writeError traduz os erros de domínio em status HTTP.
func writeError(c *fiber.Ctx, log *logger.Logger, err error) error {
	switch {
	case errors.Is(err, domain.ErrInvalidInput):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	case errors.Is(err, domain.ErrUnauthorized):
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "autenticação requerida"})
	case errors.Is(err, domain.ErrForbidden):
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: msgForbidden})
	case errors.Is(err, domain.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: msgNotFound})
	case errors.Is(err, domain.ErrNoData):
		return c.Status(fiber.StatusUnprocessableEntity).JSON(dto.ErrorResponse{Code: "NO_DATA", Message: msgNoData})
	case errors.Is(err, domain.ErrConfiguration):
		log.Error().Err(err).Str("path", c.Path()).Msg("erro de configuração")
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "CONFIGURATION", Message: msgInternal})
	default:
		log.Error().Err(err).Str("path", c.Path()).Msg("erro interno")
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: msgInternal})
	}
}
