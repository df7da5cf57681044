package repository

import (
	"context"
	"time"

	"github.com/jhoicas/clube-api/internal/domain/entity"
	"github.com/shopspring/decimal"
)

// CashFlowRepository define o porto de persistência do livro-caixa.
// As datas de filtro são datas civis e os limites são inclusivos; nil = sem limite.
type CashFlowRepository interface {
	Create(ctx context.Context, tx *entity.CashFlowTransaction) error
	GetByID(ctx context.Context, id string) (*entity.CashFlowTransaction, error)
	// Delete remove o lançamento. Devolve domain.ErrNotFound se o id não existir.
	Delete(ctx context.Context, id string) error
	ListByPeriod(ctx context.Context, from, to *time.Time) ([]*entity.CashFlowTransaction, error)
	// NetBefore soma entradas menos saídas com data_movimento anterior a date.
	NetBefore(ctx context.Context, date time.Time) (decimal.Decimal, error)
}
