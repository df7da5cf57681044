package http

import (
	"fmt"
	"strconv"

	"github.com/gofiber/fiber/v2"

	appcash "github.com/jhoicas/clube-api/internal/application/cashflow"
	"github.com/jhoicas/clube-api/internal/application/dto"
	"github.com/jhoicas/clube-api/internal/domain"
	"github.com/jhoicas/clube-api/internal/domain/cashflow"
	"github.com/jhoicas/clube-api/pkg/logger"
)

// CashFlowHandler trata as requisições do livro-caixa (admin e moderadores).
type CashFlowHandler struct {
	uc  *appcash.UseCase
	log *logger.Logger
}

// NewCashFlowHandler constrói o handler.
func NewCashFlowHandler(uc *appcash.UseCase, log *logger.Logger) *CashFlowHandler {
	return &CashFlowHandler{uc: uc, log: log}
}

// List godoc
// @Summary      Listar lançamentos do período
// @Tags         cashflow
// @Security     Bearer
// @Produce      json
// @Param        year   query  int  false  "Ano"
// @Param        month  query  int  false  "Mês (1-12)"
// @Param        day    query  int  false  "Dia"
// @Success      200    {object}  dto.CashFlowListResponse
// @Failure      400    {object}  dto.ErrorResponse
// @Failure      403    {object}  dto.ErrorResponse
// @Router       /api/cashflow [get]
func (h *CashFlowHandler) List(c *fiber.Ctx) error {
	f, err := parseFilter(c)
	if err != nil {
		return writeError(c, h.log, err)
	}
	out, err := h.uc.ListTransactions(c.UserContext(), GetSession(c), f)
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(out)
}

// Summary godoc
// @Summary      Totais de entradas, saídas e saldo
// @Tags         cashflow
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.CashFlowSummaryResponse
// @Router       /api/cashflow/summary [get]
func (h *CashFlowHandler) Summary(c *fiber.Ctx) error {
	f, err := parseFilter(c)
	if err != nil {
		return writeError(c, h.log, err)
	}
	out, err := h.uc.Summary(c.UserContext(), GetSession(c), f)
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(out)
}

// Create godoc
// @Summary      Registrar lançamento
// @Tags         cashflow
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateCashFlowRequest  true  "Lançamento"
// @Success      201   {object}  dto.CashFlowTransactionResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/cashflow [post]
func (h *CashFlowHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateCashFlowRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	if err := validateStruct(in); err != nil {
		return writeError(c, h.log, err)
	}
	out, err := h.uc.AddTransaction(c.UserContext(), GetSession(c), in)
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Delete godoc
// @Summary      Excluir lançamento
// @Tags         cashflow
// @Security     Bearer
// @Param        id   path  string  true  "ID do lançamento"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/cashflow/{id} [delete]
func (h *CashFlowHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.DeleteTransaction(c.UserContext(), GetSession(c), c.Params("id")); err != nil {
		return writeError(c, h.log, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// Statement godoc
// @Summary      Baixar extrato em PDF
// @Tags         cashflow
// @Security     Bearer
// @Produce      application/pdf
// @Success      200
// @Failure      422  {object}  dto.ErrorResponse
// @Router       /api/cashflow/statement [get]
func (h *CashFlowHandler) Statement(c *fiber.Ctx) error {
	f, err := parseFilter(c)
	if err != nil {
		return writeError(c, h.log, err)
	}
	out, name, err := h.uc.ExportStatement(c.UserContext(), GetSession(c), f)
	if err != nil {
		return writeError(c, h.log, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="%s"`, name))
	return c.Send(out)
}

func parseFilter(c *fiber.Ctx) (cashflow.PeriodFilter, error) {
	var q dto.CashFlowFilterQuery
	var err error
	if q.Year, err = queryInt(c, "year"); err != nil {
		return cashflow.PeriodFilter{}, err
	}
	if q.Month, err = queryInt(c, "month"); err != nil {
		return cashflow.PeriodFilter{}, err
	}
	if q.Day, err = queryInt(c, "day"); err != nil {
		return cashflow.PeriodFilter{}, err
	}
	if err := validateStruct(q); err != nil {
		return cashflow.PeriodFilter{}, err
	}
	return cashflow.PeriodFilter{Year: q.Year, Month: q.Month, Day: q.Day}, nil
}

// queryInt lê um inteiro opcional da query; ausente ou vazio devolve nil.
func queryInt(c *fiber.Ctx, key string) (*int, error) {
	raw := c.Query(key)
	if raw == "" {
		return nil, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return nil, fmt.Errorf("%w: %s deve ser numérico", domain.ErrInvalidInput, key)
	}
	return &n, nil
}
