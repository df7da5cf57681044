// Package memory implementa os repositórios em memória (testes e modo local sem banco).
package memory

import (
	"context"
	"sync"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/clube-api/internal/domain"
	"github.com/jhoicas/clube-api/internal/domain/entity"
	"github.com/jhoicas/clube-api/internal/domain/repository"
)

var _ repository.CashFlowRepository = (*CashFlowRepo)(nil)

// CashFlowRepo livro-caixa em memória, seguro para uso concorrente.
type CashFlowRepo struct {
	mu   sync.RWMutex
	rows map[string]entity.CashFlowTransaction
}

// NewCashFlowRepository constrói o repositório vazio.
func NewCashFlowRepository() *CashFlowRepo {
	return &CashFlowRepo{rows: make(map[string]entity.CashFlowTransaction)}
}

// Create guarda uma cópia do lançamento.
func (r *CashFlowRepo) Create(ctx context.Context, tx *entity.CashFlowTransaction) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.rows[tx.ID]; ok {
		return domain.ErrInvalidInput
	}
	r.rows[tx.ID] = *tx
	return nil
}

// GetByID devolve (nil, nil) quando não existe.
func (r *CashFlowRepo) GetByID(ctx context.Context, id string) (*entity.CashFlowTransaction, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	t, ok := r.rows[id]
	if !ok {
		return nil, nil
	}
	return &t, nil
}

// Delete remove o lançamento; id inexistente devolve domain.ErrNotFound.
func (r *CashFlowRepo) Delete(ctx context.Context, id string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.rows[id]; !ok {
		return domain.ErrNotFound
	}
	delete(r.rows, id)
	return nil
}

// ListByPeriod filtra por data do movimento com limites inclusivos. Sem ordem garantida.
func (r *CashFlowRepo) ListByPeriod(ctx context.Context, from, to *time.Time) ([]*entity.CashFlowTransaction, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	var list []*entity.CashFlowTransaction
	for _, t := range r.rows {
		if from != nil && t.DataMovimento.Before(*from) {
			continue
		}
		if to != nil && t.DataMovimento.After(*to) {
			continue
		}
		t := t
		list = append(list, &t)
	}
	return list, nil
}

// NetBefore soma entradas menos saídas anteriores à data.
func (r *CashFlowRepo) NetBefore(ctx context.Context, date time.Time) (decimal.Decimal, error) {
	if err := ctx.Err(); err != nil {
		return decimal.Zero, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	net := decimal.Zero
	for _, t := range r.rows {
		if !t.DataMovimento.Before(date) {
			continue
		}
		if t.Tipo == entity.TransactionEntrada {
			net = net.Add(t.Valor)
		} else {
			net = net.Sub(t.Valor)
		}
	}
	return net, nil
}
