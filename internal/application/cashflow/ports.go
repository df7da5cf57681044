package cashflow

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/clube-api/internal/domain/statement"
)

// StatementGenerator renderiza o extrato (ex: PDF) e devolve os bytes.
type StatementGenerator interface {
	GenerateStatement(ctx context.Context, doc *statement.Document) ([]byte, error)
}

// Recorder recebe os eventos do livro-caixa para métricas. Pode ser nil.
type Recorder interface {
	TransactionRecorded(tipo string, valor decimal.Decimal)
	TransactionDeleted()
	StatementExported(pages int)
}

type nopRecorder struct{}

func (nopRecorder) TransactionRecorded(string, decimal.Decimal) {}
func (nopRecorder) TransactionDeleted()                        {}
func (nopRecorder) StatementExported(int)                      {}
