// Package cashflow reúne as regras puras do livro-caixa: validação de lançamentos,
// resolução de períodos, ordenação e totais.
package cashflow

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/clube-api/internal/domain"
	"github.com/jhoicas/clube-api/internal/domain/entity"
)

// NewTransactionInput dados de um lançamento antes da persistência.
type NewTransactionInput struct {
	Tipo          entity.TransactionType
	Categoria     entity.Category
	Descricao     string
	Valor         decimal.Decimal
	DataMovimento time.Time
}

// NewTransaction valida a entrada e monta o lançamento com id e created_at do servidor.
func NewTransaction(id, createdBy string, createdAt time.Time, in NewTransactionInput) (*entity.CashFlowTransaction, error) {
	if !in.Tipo.Valid() {
		return nil, fmt.Errorf("%w: tipo %q", domain.ErrInvalidInput, in.Tipo)
	}
	if !in.Categoria.Valid() {
		return nil, fmt.Errorf("%w: categoria %q", domain.ErrInvalidInput, in.Categoria)
	}
	desc := strings.TrimSpace(in.Descricao)
	if desc == "" {
		return nil, fmt.Errorf("%w: descrição obrigatória", domain.ErrInvalidInput)
	}
	if !in.Valor.IsPositive() {
		return nil, fmt.Errorf("%w: valor deve ser maior que zero", domain.ErrInvalidInput)
	}
	if in.DataMovimento.IsZero() {
		return nil, fmt.Errorf("%w: data do movimento obrigatória", domain.ErrInvalidInput)
	}
	return &entity.CashFlowTransaction{
		ID:            id,
		Tipo:          in.Tipo,
		Categoria:     in.Categoria,
		Descricao:     desc,
		Valor:         in.Valor,
		DataMovimento: DateOf(in.DataMovimento),
		CreatedBy:     createdBy,
		CreatedAt:     createdAt,
	}, nil
}

// Totals são os agregados de um conjunto de lançamentos.
type Totals struct {
	TotalEntradas decimal.Decimal
	TotalSaidas   decimal.Decimal
	Saldo         decimal.Decimal
}

// Aggregate soma entradas e saídas em aritmética decimal exata.
// O resultado não depende da ordem da lista; lista vazia dá zeros.
func Aggregate(txs []*entity.CashFlowTransaction) Totals {
	entradas, saidas := decimal.Zero, decimal.Zero
	for _, t := range txs {
		switch t.Tipo {
		case entity.TransactionEntrada:
			entradas = entradas.Add(t.Valor)
		case entity.TransactionSaida:
			saidas = saidas.Add(t.Valor)
		}
	}
	return Totals{
		TotalEntradas: entradas,
		TotalSaidas:   saidas,
		Saldo:         entradas.Sub(saidas),
	}
}

// SortLedger ordena por data do movimento decrescente e, no mesmo dia,
// pelo registro mais recente primeiro.
func SortLedger(txs []*entity.CashFlowTransaction) {
	sort.SliceStable(txs, func(i, j int) bool {
		a, b := txs[i], txs[j]
		if !a.DataMovimento.Equal(b.DataMovimento) {
			return a.DataMovimento.After(b.DataMovimento)
		}
		return a.CreatedAt.After(b.CreatedAt)
	})
}

// Bounds devolve a menor e a maior data de movimento da lista (não vazia).
func Bounds(txs []*entity.CashFlowTransaction) (first, last time.Time) {
	for i, t := range txs {
		if i == 0 || t.DataMovimento.Before(first) {
			first = t.DataMovimento
		}
		if i == 0 || t.DataMovimento.After(last) {
			last = t.DataMovimento
		}
	}
	return first, last
}
