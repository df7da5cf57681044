package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/clube-api/internal/application/dto"
	"github.com/jhoicas/clube-api/internal/application/usecase"
	"github.com/jhoicas/clube-api/pkg/logger"
)

// ProductHandler rotas da loja. Visitantes veem o preço cheio.
type ProductHandler struct {
	uc  *usecase.ProductUseCase
	log *logger.Logger
}

// NewProductHandler constrói o handler.
func NewProductHandler(uc *usecase.ProductUseCase, log *logger.Logger) *ProductHandler {
	return &ProductHandler{uc: uc, log: log}
}

// List godoc
// @Summary      Listar produtos com preço final
// @Tags         store
// @Produce      json
// @Param        limit   query  int  false  "Limite"  default(20)
// @Param        offset  query  int  false  "Offset"  default(0)
// @Success      200     {object}  dto.ProductListResponse
// @Router       /api/store/products [get]
func (h *ProductHandler) List(c *fiber.Ctx) error {
	page := dto.PageRequest{Limit: c.QueryInt("limit", 20), Offset: c.QueryInt("offset", 0)}
	if page.Limit > 100 {
		page.Limit = 100
	}
	if page.Offset < 0 {
		page.Offset = 0
	}
	out, err := h.uc.List(c.UserContext(), GetSession(c), page)
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(out)
}

// Price godoc
// @Summary      Preço de um produto para quem está vendo
// @Tags         store
// @Produce      json
// @Param        id   path  string  true  "ID do produto"
// @Success      200  {object}  dto.ProductPriceResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/store/products/{id}/price [get]
func (h *ProductHandler) Price(c *fiber.Ctx) error {
	out, err := h.uc.Quote(c.UserContext(), GetSession(c), c.Params("id"))
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(out)
}
