package usecase

import (
	"context"

	"github.com/jhoicas/clube-api/internal/application/dto"
	"github.com/jhoicas/clube-api/internal/domain"
	"github.com/jhoicas/clube-api/internal/domain/access"
	"github.com/jhoicas/clube-api/internal/domain/entity"
	"github.com/jhoicas/clube-api/internal/domain/pricing"
	"github.com/jhoicas/clube-api/internal/domain/repository"
)

// ProductUseCase consulta de produtos da loja com o preço final de quem está vendo.
// O catálogo é mantido fora deste serviço.
type ProductUseCase struct {
	repo repository.ProductRepository
}

// NewProductUseCase constrói o caso de uso.
func NewProductUseCase(repo repository.ProductRepository) *ProductUseCase {
	return &ProductUseCase{repo: repo}
}

// Quote devolve o preço de um produto para a sessão. Produto inexistente: domain.ErrNotFound.
func (uc *ProductUseCase) Quote(ctx context.Context, s access.Session, id string) (*dto.ProductPriceResponse, error) {
	product, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	return quote(s, product)
}

// List lista os produtos com o preço final já aplicado para a sessão.
func (uc *ProductUseCase) List(ctx context.Context, s access.Session, page dto.PageRequest) (*dto.ProductListResponse, error) {
	page.DefaultPage()
	list, err := uc.repo.List(ctx, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ProductPriceResponse, 0, len(list))
	for _, p := range list {
		q, err := quote(s, p)
		if err != nil {
			return nil, err
		}
		items = append(items, *q)
	}
	return &dto.ProductListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: page.Limit, Offset: page.Offset},
	}, nil
}

func quote(s access.Session, p *entity.Product) (*dto.ProductPriceResponse, error) {
	q, err := pricing.FinalPrice(s, p)
	if err != nil {
		return nil, err
	}
	return &dto.ProductPriceResponse{
		ID:               p.ID,
		Nome:             p.Nome,
		Preco:            q.Preco,
		TemDescontoSocio: p.TemDescontoSocio,
		DescontoSocio:    p.DescontoSocio,
		DescontoAplicado: q.DescontoAplicado,
		PrecoFinal:       q.PrecoFinal,
	}, nil
}
