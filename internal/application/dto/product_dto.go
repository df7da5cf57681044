package dto

import (
	"github.com/shopspring/decimal"
)

// ProductPriceResponse preço de um produto para quem está vendo.
type ProductPriceResponse struct {
	ID               string          `json:"id"`
	Nome             string          `json:"nome"`
	Preco            decimal.Decimal `json:"preco"`
	TemDescontoSocio bool            `json:"tem_desconto_socio"`
	DescontoSocio    *int            `json:"desconto_socio,omitempty"`
	DescontoAplicado decimal.Decimal `json:"desconto_aplicado"`
	PrecoFinal       decimal.Decimal `json:"preco_final"`
}

// ProductListResponse lista paginada de produtos com preço final.
type ProductListResponse struct {
	Items []ProductPriceResponse `json:"items"`
	Page  PageResponse           `json:"page"`
}
