package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/jhoicas/clube-api/internal/domain/entity"
	"github.com/jhoicas/clube-api/internal/domain/repository"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

// ProductRepo catálogo da loja em memória.
type ProductRepo struct {
	mu       sync.RWMutex
	products map[string]entity.Product
}

// NewProductRepository constrói o catálogo com os produtos informados.
func NewProductRepository(products ...*entity.Product) *ProductRepo {
	r := &ProductRepo{products: make(map[string]entity.Product, len(products))}
	for _, p := range products {
		r.products[p.ID] = *p
	}
	return r
}

// GetByID devolve (nil, nil) quando não existe.
func (r *ProductRepo) GetByID(ctx context.Context, id string) (*entity.Product, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	p, ok := r.products[id]
	if !ok {
		return nil, nil
	}
	return &p, nil
}

// List devolve os produtos por nome, paginados.
func (r *ProductRepo) List(ctx context.Context, limit, offset int) ([]*entity.Product, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	list := make([]*entity.Product, 0, len(r.products))
	for _, p := range r.products {
		p := p
		list = append(list, &p)
	}
	r.mu.RUnlock()

	sort.Slice(list, func(i, j int) bool { return list[i].Nome < list[j].Nome })
	if offset >= len(list) {
		return nil, nil
	}
	end := offset + limit
	if end > len(list) {
		end = len(list)
	}
	return list[offset:end], nil
}
