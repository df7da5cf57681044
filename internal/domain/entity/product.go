package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product representa um produto da loja do clube.
// DescontoSocio é percentual inteiro (0–100) e só existe quando TemDescontoSocio é verdadeiro.
type Product struct {
	ID               string
	Nome             string
	Descricao        string
	Preco            decimal.Decimal
	TemDescontoSocio bool
	DescontoSocio    *int
	CreatedAt        time.Time
}
