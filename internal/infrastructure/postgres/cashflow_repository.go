package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/clube-api/internal/domain"
	"github.com/jhoicas/clube-api/internal/domain/entity"
	"github.com/jhoicas/clube-api/internal/domain/repository"
)

var _ repository.CashFlowRepository = (*CashFlowRepo)(nil)

const cashflowColumns = `id, tipo, categoria, descricao, valor, data_movimento, created_by, created_at`

// CashFlowRepo implementação do livro-caixa sobre PostgreSQL (pool ou tx).
type CashFlowRepo struct {
	q Querier
}

// NewCashFlowRepository constrói o adaptador. Passar pool ou tx (Querier).
func NewCashFlowRepository(q Querier) *CashFlowRepo {
	return &CashFlowRepo{q: q}
}

// Create persiste um lançamento.
func (r *CashFlowRepo) Create(ctx context.Context, t *entity.CashFlowTransaction) error {
	query := `
		INSERT INTO cashflow_transactions (` + cashflowColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(ctx, query,
		t.ID, string(t.Tipo), string(t.Categoria), t.Descricao, t.Valor,
		t.DataMovimento, t.CreatedBy, t.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) || isCheckViolation(err) {
			return fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
		}
		return fmt.Errorf("insert cashflow: %w", err)
	}
	return nil
}

// GetByID obtém um lançamento; (nil, nil) quando não existe.
func (r *CashFlowRepo) GetByID(ctx context.Context, id string) (*entity.CashFlowTransaction, error) {
	query := `SELECT ` + cashflowColumns + ` FROM cashflow_transactions WHERE id::text = $1`
	t, err := scanTransaction(r.q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get cashflow: %w", err)
	}
	return t, nil
}

// Delete remove o lançamento. Nenhuma linha afetada devolve domain.ErrNotFound,
// inclusive quando outra exclusão concorrente chegou antes.
func (r *CashFlowRepo) Delete(ctx context.Context, id string) error {
	tag, err := r.q.Exec(ctx, `DELETE FROM cashflow_transactions WHERE id::text = $1`, id)
	if err != nil {
		return fmt.Errorf("delete cashflow: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// ListByPeriod lista com limites inclusivos; nil deixa o lado aberto.
func (r *CashFlowRepo) ListByPeriod(ctx context.Context, from, to *time.Time) ([]*entity.CashFlowTransaction, error) {
	query := `
		SELECT ` + cashflowColumns + `
		FROM cashflow_transactions
		WHERE ($1::date IS NULL OR data_movimento >= $1::date)
		  AND ($2::date IS NULL OR data_movimento <= $2::date)
		ORDER BY data_movimento DESC, created_at DESC`
	rows, err := r.q.Query(ctx, query, from, to)
	if err != nil {
		return nil, fmt.Errorf("list cashflow: %w", err)
	}
	defer rows.Close()

	var list []*entity.CashFlowTransaction
	for rows.Next() {
		t, err := scanTransaction(rows)
		if err != nil {
			return nil, fmt.Errorf("scan cashflow: %w", err)
		}
		list = append(list, t)
	}
	return list, rows.Err()
}

// NetBefore soma entradas menos saídas com data anterior a date.
func (r *CashFlowRepo) NetBefore(ctx context.Context, date time.Time) (decimal.Decimal, error) {
	query := `
		SELECT COALESCE(SUM(CASE WHEN tipo = 'entrada' THEN valor ELSE -valor END), 0)
		FROM cashflow_transactions
		WHERE data_movimento < $1::date`
	var net decimal.Decimal
	if err := r.q.QueryRow(ctx, query, date).Scan(&net); err != nil {
		return decimal.Zero, fmt.Errorf("net before: %w", err)
	}
	return net, nil
}

func scanTransaction(row pgx.Row) (*entity.CashFlowTransaction, error) {
	var (
		t              entity.CashFlowTransaction
		tipo, category string
	)
	if err := row.Scan(&t.ID, &tipo, &category, &t.Descricao, &t.Valor, &t.DataMovimento, &t.CreatedBy, &t.CreatedAt); err != nil {
		return nil, err
	}
	t.Tipo = entity.TransactionType(tipo)
	t.Categoria = entity.Category(category)
	t.DataMovimento = time.Date(t.DataMovimento.Year(), t.DataMovimento.Month(), t.DataMovimento.Day(), 0, 0, 0, 0, time.UTC)
	return &t, nil
}
