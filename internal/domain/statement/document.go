// Package statement monta o extrato paginado do fluxo de caixa de forma independente
// do renderizador. O PDF é desenhado em infrastructure/pdf a partir de Document.
package statement

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/clube-api/internal/domain"
	"github.com/jhoicas/clube-api/internal/domain/cashflow"
	"github.com/jhoicas/clube-api/internal/domain/entity"
)

// Columns são as colunas fixas da tabela, nesta ordem.
var Columns = [5]string{"Data", "Categoria", "Descrição", "Valor", "Tipo"}

// Layout define as alturas (mm) usadas na paginação.
type Layout struct {
	PageContentHeight float64 // área útil da página, sem margens
	HeaderHeight      float64 // bloco do cabeçalho (só na primeira página)
	BalanceHeight     float64 // linhas de saldo inicial/final
	TableHeaderHeight float64
	RowHeight         float64
	FooterHeight      float64 // resumo + carimbo de geração
	PageMarkerHeight  float64 // "Página x/N" em toda página
	DescriptionWidth  int     // largura máxima da descrição, em colunas
}

// DefaultLayout é o layout A4 usado pelo gerador PDF.
func DefaultLayout() Layout {
	return Layout{
		PageContentHeight: 277,
		HeaderHeight:      30,
		BalanceHeight:     14,
		TableHeaderHeight: 8,
		RowHeight:         7,
		FooterHeight:      18,
		PageMarkerHeight:  6,
		DescriptionWidth:  48,
	}
}

// Input dados do extrato de um período, já filtrados e ordenados pelo chamador.
type Input struct {
	Organization   string
	Title          string
	Transactions   []*entity.CashFlowTransaction
	PeriodStart    time.Time
	PeriodEnd      time.Time
	OpeningBalance decimal.Decimal
	ClosingBalance decimal.Decimal
	GeneratedAt    time.Time
}

// Header bloco de identificação.
type Header struct {
	Organization string
	Title        string
	Period       string // "01/03/2025 a 31/03/2025"
	Reference    string // "Março de 2025" quando o período é um mês inteiro
}

// Row uma linha da tabela, já formatada.
type Row struct {
	Date        string
	Category    string
	Description string
	Amount      string
	Direction   string
	Entrada     bool
}

// Page uma página do extrato. TableHeader indica se a página repete a linha de colunas.
type Page struct {
	Number      int
	TableHeader bool
	Rows        []Row
	Footer      bool
}

// Footer resumo final.
type Footer struct {
	Summary     string
	GeneratedAt string
}

// Document extrato pronto para renderizar.
type Document struct {
	Header         Header
	OpeningBalance string
	ClosingBalance string
	Pages          []Page
	Footer         Footer
	Totals         cashflow.Totals
	Layout         Layout
}

// PageCount número de páginas.
func (d *Document) PageCount() int { return len(d.Pages) }

// Build monta o documento. Lista vazia devolve domain.ErrNoData; as linhas
// saem na ordem recebida.
func Build(in Input, layout Layout) (*Document, error) {
	if len(in.Transactions) == 0 {
		return nil, domain.ErrNoData
	}
	if err := layout.validate(); err != nil {
		return nil, err
	}

	rows := make([]Row, 0, len(in.Transactions))
	for _, t := range in.Transactions {
		rows = append(rows, Row{
			Date:        FormatDate(t.DataMovimento),
			Category:    t.Categoria.Label(),
			Description: Truncate(t.Descricao, layout.DescriptionWidth),
			Amount:      FormatBRL(t.Valor),
			Direction:   t.Tipo.Label(),
			Entrada:     t.Tipo == entity.TransactionEntrada,
		})
	}

	totals := cashflow.Aggregate(in.Transactions)
	doc := &Document{
		Header: Header{
			Organization: in.Organization,
			Title:        in.Title,
			Period:       FormatDate(in.PeriodStart) + " a " + FormatDate(in.PeriodEnd),
			Reference:    reference(in.PeriodStart, in.PeriodEnd),
		},
		OpeningBalance: FormatBRL(in.OpeningBalance),
		ClosingBalance: FormatBRL(in.ClosingBalance),
		Footer: Footer{
			Summary: fmt.Sprintf("Entradas %s - Saídas %s = Saldo %s",
				FormatBRL(totals.TotalEntradas), FormatBRL(totals.TotalSaidas), FormatBRL(totals.Saldo)),
			GeneratedAt: "Gerado em " + FormatDateTime(in.GeneratedAt),
		},
		Totals: totals,
		Layout: layout,
	}
	doc.Pages = paginate(rows, layout)
	return doc, nil
}

// paginate distribui as linhas sem quebrar nenhuma entre páginas. Cada página com
// linhas começa pela linha de colunas; o rodapé vai para uma página nova se não couber.
func paginate(rows []Row, l Layout) []Page {
	var pages []Page
	available := l.PageContentHeight - l.HeaderHeight - l.BalanceHeight - l.PageMarkerHeight

	for len(rows) > 0 {
		fit := int((available - l.TableHeaderHeight) / l.RowHeight)
		if fit > len(rows) {
			fit = len(rows)
		}
		pages = append(pages, Page{Number: len(pages) + 1, TableHeader: true, Rows: rows[:fit]})
		used := l.TableHeaderHeight + float64(fit)*l.RowHeight
		rows = rows[fit:]
		if len(rows) == 0 {
			if available-used >= l.FooterHeight {
				pages[len(pages)-1].Footer = true
				return pages
			}
			break
		}
		available = l.PageContentHeight - l.PageMarkerHeight
	}
	return append(pages, Page{Number: len(pages) + 1, Footer: true})
}

func (l Layout) validate() error {
	first := l.PageContentHeight - l.HeaderHeight - l.BalanceHeight - l.PageMarkerHeight
	if l.RowHeight <= 0 || first-l.TableHeaderHeight < l.RowHeight {
		return fmt.Errorf("%w: layout do extrato não comporta uma linha por página", domain.ErrConfiguration)
	}
	if l.PageContentHeight-l.PageMarkerHeight < l.FooterHeight {
		return fmt.Errorf("%w: rodapé do extrato maior que a página", domain.ErrConfiguration)
	}
	return nil
}

func reference(start, end time.Time) string {
	if start.Day() != 1 || start.Year() != end.Year() || start.Month() != end.Month() {
		return ""
	}
	if end.Day() != cashflow.LastDayOfMonth(end.Year(), end.Month()) {
		return ""
	}
	return MonthReference(start.Year(), start.Month())
}

// FileName nome determinístico do arquivo para o período.
func FileName(start, end time.Time) string {
	return fmt.Sprintf("fluxo-de-caixa_%s_%s.pdf", start.Format("2006-01-02"), end.Format("2006-01-02"))
}
