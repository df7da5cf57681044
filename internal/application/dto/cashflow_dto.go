package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateCashFlowRequest body para POST /api/cashflow.
type CreateCashFlowRequest struct {
	Tipo          string          `json:"tipo" validate:"required,oneof=entrada saida"`
	Categoria     string          `json:"categoria" validate:"required"`
	Descricao     string          `json:"descricao" validate:"required,max=500"`
	Valor         decimal.Decimal `json:"valor"`
	DataMovimento string          `json:"data_movimento" validate:"required,datetime=2006-01-02"`
}

// CashFlowFilterQuery query string de GET /api/cashflow (year, month, day opcionais).
type CashFlowFilterQuery struct {
	Year  *int `query:"year" validate:"omitempty,min=1,max=9999"`
	Month *int `query:"month" validate:"omitempty,min=1,max=12"`
	Day   *int `query:"day" validate:"omitempty,min=1,max=31"`
}

// CashFlowTransactionResponse saída de um lançamento.
type CashFlowTransactionResponse struct {
	ID             string          `json:"id"`
	Tipo           string          `json:"tipo"`
	Categoria      string          `json:"categoria"`
	CategoriaLabel string          `json:"categoria_label"`
	Descricao      string          `json:"descricao"`
	Valor          decimal.Decimal `json:"valor"`
	DataMovimento  string          `json:"data_movimento"`
	CreatedBy      string          `json:"created_by"`
	CreatedAt      time.Time       `json:"created_at"`
}

// CashFlowTotalsResponse agregados de um período.
type CashFlowTotalsResponse struct {
	TotalEntradas decimal.Decimal `json:"total_entradas"`
	TotalSaidas   decimal.Decimal `json:"total_saidas"`
	Saldo         decimal.Decimal `json:"saldo"`
}

// CashFlowListResponse lista de lançamentos do período.
type CashFlowListResponse struct {
	From  *string                       `json:"from,omitempty"`
	To    *string                       `json:"to,omitempty"`
	Items []CashFlowTransactionResponse `json:"items"`
}

// CashFlowSummaryResponse resumo (cards de entradas, saídas e saldo).
type CashFlowSummaryResponse struct {
	From   *string                `json:"from,omitempty"`
	To     *string                `json:"to,omitempty"`
	Count  int                    `json:"count"`
	Totals CashFlowTotalsResponse `json:"totals"`
}
