// Package pdf desenha o extrato do fluxo de caixa em PDF com Maroto v2.
//
// Layout de cada página A4 (altura útil 277 mm):
//
//	┌─────────────────────────────────────────────────────────────┐
//	│                                           Página x/N         │
//	│  CABEÇALHO (só na 1ª): Clube + Título │ Período + Referência │
//	│  SALDOS (só na 1ª): saldo inicial / saldo final              │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABELA: Data | Categoria | Descrição | Valor | Tipo         │
//	│  ─────────────────────────────────────────────────────────  │
//	│  RODAPÉ (última): Entradas - Saídas = Saldo / Gerado em      │
//	└─────────────────────────────────────────────────────────────┘
//
// A divisão em páginas já vem pronta em statement.Document; aqui cada
// statement.Page vira uma página Maroto com as mesmas alturas do Layout.
package pdf

import (
	"context"
	"fmt"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/page"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	appcash "github.com/jhoicas/clube-api/internal/application/cashflow"
	"github.com/jhoicas/clube-api/internal/domain/statement"
)

var _ appcash.StatementGenerator = (*MarotoStatementGenerator)(nil)

// ── Paleta ────────────────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorWhite   = &props.Color{Red: 255, Green: 255, Blue: 255}
	colorIn      = &props.Color{Red: 0, Green: 120, Blue: 60}
	colorOut     = &props.Color{Red: 170, Green: 30, Blue: 30}
)

// larguras das colunas no grid de 12: Data | Categoria | Descrição | Valor | Tipo
var columnSizes = [5]int{2, 2, 4, 2, 2}

// ── Generator ─────────────────────────────────────────────────────────────────

// MarotoStatementGenerator implementa cashflow.StatementGenerator usando Maroto v2.
type MarotoStatementGenerator struct{}

// NewMarotoStatementGenerator constrói o gerador.
func NewMarotoStatementGenerator() *MarotoStatementGenerator { return &MarotoStatementGenerator{} }

// GenerateStatement desenha o documento e devolve os bytes do PDF.
func (g *MarotoStatementGenerator) GenerateStatement(ctx context.Context, doc *statement.Document) ([]byte, error) {
	if doc == nil || doc.PageCount() == 0 {
		return nil, fmt.Errorf("pdf: documento vazio")
	}
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle(doc.Header.Title, true).
		WithAuthor(doc.Header.Organization, true).
		Build()

	m := maroto.New(cfg)
	total := doc.PageCount()
	for _, p := range doc.Pages {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		m.AddPages(renderPage(doc, p, total))
	}

	out, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: gerar documento: %w", err)
	}
	return out.GetBytes(), nil
}

func renderPage(doc *statement.Document, p statement.Page, total int) core.Page {
	l := doc.Layout
	pg := page.New()
	pg.Add(markerRow(l.PageMarkerHeight, p.Number, total))
	if p.Number == 1 {
		pg.Add(headerRow(l.HeaderHeight, doc.Header))
		pg.Add(balanceRows(l.BalanceHeight, doc.OpeningBalance, doc.ClosingBalance)...)
	}
	if p.TableHeader {
		pg.Add(tableHeaderRow(l.TableHeaderHeight))
	}
	for _, r := range p.Rows {
		pg.Add(tableRow(l.RowHeight, r))
	}
	if p.Footer {
		pg.Add(footerRows(l.FooterHeight, doc.Footer)...)
	}
	return pg
}

// ── Seções ────────────────────────────────────────────────────────────────────

func markerRow(height float64, current, total int) core.Row {
	return row.New(height).Add(col.New(12).Add(
		text.New(fmt.Sprintf("Página %d/%d", current, total), props.Text{
			Size: 7, Align: align.Right, Color: colorGray, Top: 1,
		}),
	))
}

// headerRow: clube + título (esq.) e período + referência (dir.).
func headerRow(height float64, h statement.Header) core.Row {
	right := []core.Component{
		text.New("Período", props.Text{
			Style: fontstyle.Bold, Size: 8, Align: align.Right, Color: colorPrimary, Top: 3,
		}),
		text.New(h.Period, props.Text{
			Style: fontstyle.Bold, Size: 10, Align: align.Right, Top: 9,
		}),
	}
	if h.Reference != "" {
		right = append(right, text.New("Referência: "+h.Reference, props.Text{
			Size: 8, Align: align.Right, Color: colorGray, Top: 16,
		}))
	}
	return row.New(height).Add(
		col.New(7).Add(
			text.New(h.Organization, props.Text{
				Style: fontstyle.Bold, Size: 14, Color: colorPrimary, Top: 3,
			}),
			text.New(h.Title, props.Text{
				Size: 11, Top: 12, Color: colorGray,
			}),
		),
		col.New(5).Add(right...),
	)
}

// balanceRows: saldo inicial e final, com a linha divisória da tabela.
func balanceRows(height float64, opening, closing string) []core.Row {
	line1 := height / 2
	return []core.Row{
		row.New(line1 - 1).Add(
			col.New(6).Add(text.New("Saldo inicial: "+opening, props.Text{Size: 9, Top: 1})),
			col.New(6).Add(text.New("Saldo final: "+closing, props.Text{
				Style: fontstyle.Bold, Size: 9, Align: align.Right, Top: 1,
			})),
		),
		row.New(height - line1 - 1),
		line.NewRow(2, props.Line{Color: colorPrimary, Thickness: 0.5}),
	}
}

// tableHeaderRow: linha das colunas com fundo azul.
func tableHeaderRow(height float64) core.Row {
	aligns := [5]align.Type{align.Left, align.Left, align.Left, align.Right, align.Center}
	cols := make([]core.Col, 0, len(statement.Columns))
	for i, label := range statement.Columns {
		cols = append(cols, col.New(columnSizes[i]).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: aligns[i],
			Color: colorWhite, Top: 2, Left: 1, Right: 1,
		})))
	}
	return row.New(height).Add(cols...).WithStyle(&props.Cell{BackgroundColor: colorPrimary})
}

func tableRow(height float64, r statement.Row) core.Row {
	direction := colorOut
	if r.Entrada {
		direction = colorIn
	}
	cell := func(s string, i int, a align.Type, c *props.Color) core.Col {
		return col.New(columnSizes[i]).Add(text.New(s, props.Text{
			Size: 8, Align: a, Top: 1.5, Left: 1, Right: 1, Color: c,
		}))
	}
	return row.New(height).Add(
		cell(r.Date, 0, align.Left, nil),
		cell(r.Category, 1, align.Left, nil),
		cell(r.Description, 2, align.Left, nil),
		cell(r.Amount, 3, align.Right, direction),
		cell(r.Direction, 4, align.Center, direction),
	)
}

// footerRows: resumo final e carimbo de geração.
func footerRows(height float64, f statement.Footer) []core.Row {
	return []core.Row{
		line.NewRow(2, props.Line{Color: colorPrimary, Thickness: 0.3}),
		row.New(height - 2).Add(col.New(12).Add(
			text.New(f.Summary, props.Text{
				Style: fontstyle.Bold, Size: 10, Align: align.Right, Color: colorPrimary, Top: 2,
			}),
			text.New(f.GeneratedAt, props.Text{
				Size: 7, Align: align.Right, Color: colorGray, Top: 10,
			}),
		)),
	}
}
