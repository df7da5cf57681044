package repository

import (
	"context"

	"github.com/jhoicas/clube-api/internal/domain/entity"
)

// ProductRepository define o porto de leitura dos produtos da loja.
type ProductRepository interface {
	GetByID(ctx context.Context, id string) (*entity.Product, error)
	List(ctx context.Context, limit, offset int) ([]*entity.Product, error)
}
