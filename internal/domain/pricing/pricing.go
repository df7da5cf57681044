// Package pricing calcula o preço final de produtos da loja para quem está vendo.
package pricing

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/clube-api/internal/domain"
	"github.com/jhoicas/clube-api/internal/domain/access"
	"github.com/jhoicas/clube-api/internal/domain/entity"
)

var hundred = decimal.NewFromInt(100)

// Quote é o preço de um produto para uma sessão.
type Quote struct {
	Preco            decimal.Decimal
	DescontoPercent  int
	DescontoAplicado decimal.Decimal
	PrecoFinal       decimal.Decimal
}

// FinalPrice aplica o desconto de sócio quando o produto o oferece e a sessão tem
// access.ApplyMemberDiscount. Percentual ausente ou zero não dá desconto.
func FinalPrice(s access.Session, p *entity.Product) (Quote, error) {
	if p == nil {
		return Quote{}, domain.ErrNotFound
	}
	q := Quote{Preco: p.Preco, DescontoAplicado: decimal.Zero, PrecoFinal: p.Preco.Round(2)}

	if !p.TemDescontoSocio || p.DescontoSocio == nil || *p.DescontoSocio == 0 {
		return q, nil
	}
	pct := *p.DescontoSocio
	if pct < 0 || pct > 100 {
		return Quote{}, fmt.Errorf("%w: desconto de sócio %d%% fora de 0–100", domain.ErrInvalidInput, pct)
	}
	ok, err := access.Evaluate(s, access.ApplyMemberDiscount)
	if err != nil {
		return Quote{}, err
	}
	if !ok {
		return q, nil
	}

	discount := p.Preco.Mul(decimal.NewFromInt(int64(pct))).Div(hundred).Round(2)
	q.DescontoPercent = pct
	q.DescontoAplicado = discount
	q.PrecoFinal = p.Preco.Sub(discount).Round(2)
	return q, nil
}
