package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/clube-api/internal/application/dto"
	"github.com/jhoicas/clube-api/internal/application/usecase"
	"github.com/jhoicas/clube-api/internal/domain/access"
	"github.com/jhoicas/clube-api/pkg/logger"
)

// MemberHandler rotas do próprio usuário (/api/me) e do painel admin de membros.
type MemberHandler struct {
	uc  *usecase.MemberUseCase
	log *logger.Logger
}

// NewMemberHandler constrói o handler.
func NewMemberHandler(uc *usecase.MemberUseCase, log *logger.Logger) *MemberHandler {
	return &MemberHandler{uc: uc, log: log}
}

// Capabilities godoc
// @Summary      O que a sessão pode ver e fazer
// @Tags         me
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.CapabilitiesResponse
// @Router       /api/me/capabilities [get]
func (h *MemberHandler) Capabilities(c *fiber.Ctx) error {
	return c.JSON(h.uc.Capabilities(GetSession(c)))
}

// Capability godoc
// @Summary      Avaliar uma capacidade
// @Tags         me
// @Security     Bearer
// @Produce      json
// @Param        name  path  string  true  "Capacidade (ex: apply_member_discount)"
// @Success      200   {object}  map[string]bool
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/me/capabilities/{name} [get]
func (h *MemberHandler) Capability(c *fiber.Ctx) error {
	capability, err := access.ParseCapability(c.Params("name"))
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "UNKNOWN_CAPABILITY", Message: "capacidade desconhecida"})
	}
	ok, err := access.Evaluate(GetSession(c), capability)
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(fiber.Map{string(capability): ok})
}

// Me godoc
// @Summary      Dados do usuário autenticado
// @Tags         me
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.UserResponse
// @Router       /api/me [get]
func (h *MemberHandler) Me(c *fiber.Ctx) error {
	out, err := h.uc.Me(c.UserContext(), GetSession(c))
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(out)
}

// UpdateProfile godoc
// @Summary      Atualizar o próprio perfil (não altera papel)
// @Tags         me
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.UpdateProfileRequest  true  "Perfil"
// @Success      200   {object}  dto.UserResponse
// @Router       /api/me/profile [patch]
func (h *MemberHandler) UpdateProfile(c *fiber.Ctx) error {
	var in dto.UpdateProfileRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	if err := validateStruct(in); err != nil {
		return writeError(c, h.log, err)
	}
	out, err := h.uc.UpdateProfile(c.UserContext(), GetSession(c), in)
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(out)
}

// ChangeRole godoc
// @Summary      Alterar papel de um usuário
// @Tags         admin
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string                 true  "ID do usuário"
// @Param        body  body  dto.ChangeRoleRequest  true  "Papel"
// @Success      200   {object}  dto.UserResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Router       /api/admin/users/{id}/role [patch]
func (h *MemberHandler) ChangeRole(c *fiber.Ctx) error {
	var in dto.ChangeRoleRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	if err := validateStruct(in); err != nil {
		return writeError(c, h.log, err)
	}
	out, err := h.uc.ChangeRole(c.UserContext(), GetSession(c), c.Params("id"), in)
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(out)
}

// SetDirector godoc
// @Summary      Conceder ou revogar diretoria
// @Tags         admin
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string                  true  "ID do usuário"
// @Param        body  body  dto.SetDirectorRequest  true  "Diretoria"
// @Success      200   {object}  dto.UserResponse
// @Router       /api/admin/users/{id}/director [patch]
func (h *MemberHandler) SetDirector(c *fiber.Ctx) error {
	var in dto.SetDirectorRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	if err := validateStruct(in); err != nil {
		return writeError(c, h.log, err)
	}
	out, err := h.uc.SetDirector(c.UserContext(), GetSession(c), c.Params("id"), in)
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(out)
}
