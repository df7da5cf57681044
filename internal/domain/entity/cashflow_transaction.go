package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionType indica a direção do movimento de caixa.
type TransactionType string

// Tipos de movimento.
const (
	TransactionEntrada TransactionType = "entrada"
	TransactionSaida   TransactionType = "saida"
)

// Valid informa se o tipo pertence ao conjunto fechado.
func (t TransactionType) Valid() bool {
	return t == TransactionEntrada || t == TransactionSaida
}

// Label devolve o rótulo exibido no extrato.
func (t TransactionType) Label() string {
	if t == TransactionEntrada {
		return "Entrada"
	}
	return "Saída"
}

// Category é a categoria de um movimento (conjunto fechado de 9 rótulos).
type Category string

// Categorias de movimento.
const (
	CategoryMensalidade Category = "mensalidade"
	CategoryPatrocinio  Category = "patrocinio"
	CategoryLoja        Category = "loja"
	CategoryEventos     Category = "eventos"
	CategoryDoacao      Category = "doacao"
	CategoryArbitragem  Category = "arbitragem"
	CategoryMaterial    Category = "material"
	CategoryTransporte  Category = "transporte"
	CategoryOutros      Category = "outros"
)

var categoryLabels = map[Category]string{
	CategoryMensalidade: "Mensalidade",
	CategoryPatrocinio:  "Patrocínio",
	CategoryLoja:        "Vendas da loja",
	CategoryEventos:     "Eventos",
	CategoryDoacao:      "Doação",
	CategoryArbitragem:  "Arbitragem",
	CategoryMaterial:    "Material esportivo",
	CategoryTransporte:  "Transporte",
	CategoryOutros:      "Outros",
}

// Valid informa se a categoria pertence ao conjunto fechado.
func (c Category) Valid() bool {
	_, ok := categoryLabels[c]
	return ok
}

// Label devolve o nome de exibição; categorias desconhecidas aparecem como estão.
func (c Category) Label() string {
	if l, ok := categoryLabels[c]; ok {
		return l
	}
	return string(c)
}

// CashFlowTransaction representa um lançamento do livro-caixa.
// Valor é sempre positivo; a direção vem de Tipo. Imutável depois de criado.
type CashFlowTransaction struct {
	ID            string
	Tipo          TransactionType
	Categoria     Category
	Descricao     string
	Valor         decimal.Decimal
	DataMovimento time.Time // data civil, 00:00 UTC
	CreatedBy     string
	CreatedAt     time.Time
}
