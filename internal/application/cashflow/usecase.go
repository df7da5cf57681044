// Package cashflow implementa os casos de uso do livro-caixa do clube:
// lançamentos, listagem por período, resumo e exportação do extrato.
package cashflow

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/clube-api/internal/application/dto"
	"github.com/jhoicas/clube-api/internal/domain"
	"github.com/jhoicas/clube-api/internal/domain/access"
	domcash "github.com/jhoicas/clube-api/internal/domain/cashflow"
	"github.com/jhoicas/clube-api/internal/domain/entity"
	"github.com/jhoicas/clube-api/internal/domain/repository"
	"github.com/jhoicas/clube-api/internal/domain/statement"
	"github.com/jhoicas/clube-api/pkg/logger"
)

const dateLayout = "2006-01-02"

// Config parâmetros do livro-caixa.
type Config struct {
	// FallbackYear é o ano usado quando o filtro traz mês/dia sem ano. 0 = ano corrente.
	FallbackYear   int
	Organization   string
	StatementTitle string
	Layout         statement.Layout
}

// UseCase casos de uso do fluxo de caixa. Toda operação exige access.ViewCashFlow.
type UseCase struct {
	repo      repository.CashFlowRepository
	generator StatementGenerator
	recorder  Recorder
	log       *logger.Logger
	cfg       Config
	now       func() time.Time
}

// Option ajusta o caso de uso na construção.
type Option func(*UseCase)

// WithClock injeta o relógio (testes).
func WithClock(now func() time.Time) Option {
	return func(uc *UseCase) { uc.now = now }
}

// WithRecorder injeta o coletor de métricas.
func WithRecorder(r Recorder) Option {
	return func(uc *UseCase) {
		if r != nil {
			uc.recorder = r
		}
	}
}

// NewUseCase constrói o caso de uso injetando as dependências.
func NewUseCase(repo repository.CashFlowRepository, generator StatementGenerator, log *logger.Logger, cfg Config, opts ...Option) *UseCase {
	if cfg.StatementTitle == "" {
		cfg.StatementTitle = "Extrato do Fluxo de Caixa"
	}
	if cfg.Layout.RowHeight == 0 {
		cfg.Layout = statement.DefaultLayout()
	}
	if log == nil {
		log = logger.Nop()
	}
	uc := &UseCase{
		repo:      repo,
		generator: generator,
		recorder:  nopRecorder{},
		log:       log,
		cfg:       cfg,
		now:       time.Now,
	}
	for _, o := range opts {
		o(uc)
	}
	return uc
}

// AddTransaction registra um lançamento. id e created_at são definidos pelo servidor.
func (uc *UseCase) AddTransaction(ctx context.Context, s access.Session, in dto.CreateCashFlowRequest) (*dto.CashFlowTransactionResponse, error) {
	if err := access.Require(s, access.ViewCashFlow); err != nil {
		return nil, err
	}
	date, err := time.Parse(dateLayout, in.DataMovimento)
	if err != nil {
		return nil, fmt.Errorf("%w: data_movimento deve ser AAAA-MM-DD", domain.ErrInvalidInput)
	}
	tx, err := domcash.NewTransaction(uuid.New().String(), s.UserID(), uc.now().UTC(), domcash.NewTransactionInput{
		Tipo:          entity.TransactionType(in.Tipo),
		Categoria:     entity.Category(in.Categoria),
		Descricao:     in.Descricao,
		Valor:         in.Valor,
		DataMovimento: date,
	})
	if err != nil {
		return nil, err
	}
	if err := uc.repo.Create(ctx, tx); err != nil {
		return nil, fmt.Errorf("cashflow: registrar lançamento: %w", err)
	}
	uc.recorder.TransactionRecorded(string(tx.Tipo), tx.Valor)
	uc.log.Info().
		Str("id", tx.ID).
		Str("tipo", string(tx.Tipo)).
		Str("valor", tx.Valor.StringFixed(2)).
		Str("user_id", tx.CreatedBy).
		Msg("lançamento registrado")
	return ToTransactionResponse(tx), nil
}

// DeleteTransaction remove um lançamento. Não há exclusão lógica.
// Duas exclusões concorrentes do mesmo id: a segunda recebe domain.ErrNotFound.
func (uc *UseCase) DeleteTransaction(ctx context.Context, s access.Session, id string) error {
	if err := access.Require(s, access.ViewCashFlow); err != nil {
		return err
	}
	if id == "" {
		return domain.ErrNotFound
	}
	if err := uc.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.ErrNotFound
		}
		return fmt.Errorf("cashflow: excluir lançamento: %w", err)
	}
	uc.recorder.TransactionDeleted()
	uc.log.Info().Str("id", id).Str("user_id", s.UserID()).Msg("lançamento excluído")
	return nil
}

// ListTransactions lista os lançamentos do período, do mais recente ao mais antigo.
func (uc *UseCase) ListTransactions(ctx context.Context, s access.Session, f domcash.PeriodFilter) (*dto.CashFlowListResponse, error) {
	period, list, err := uc.List(ctx, s, f)
	if err != nil {
		return nil, err
	}
	items := make([]dto.CashFlowTransactionResponse, 0, len(list))
	for _, t := range list {
		items = append(items, *ToTransactionResponse(t))
	}
	from, to := periodStrings(period)
	return &dto.CashFlowListResponse{From: from, To: to, Items: items}, nil
}

// Summary devolve os totais de entradas, saídas e saldo do período.
func (uc *UseCase) Summary(ctx context.Context, s access.Session, f domcash.PeriodFilter) (*dto.CashFlowSummaryResponse, error) {
	period, list, err := uc.List(ctx, s, f)
	if err != nil {
		return nil, err
	}
	from, to := periodStrings(period)
	return &dto.CashFlowSummaryResponse{
		From:   from,
		To:     to,
		Count:  len(list),
		Totals: ToTotalsResponse(domcash.Aggregate(list)),
	}, nil
}

// List resolve o período e devolve os lançamentos já ordenados.
func (uc *UseCase) List(ctx context.Context, s access.Session, f domcash.PeriodFilter) (domcash.Period, []*entity.CashFlowTransaction, error) {
	if err := access.Require(s, access.ViewCashFlow); err != nil {
		return domcash.Period{}, nil, err
	}
	period, err := uc.resolve(f)
	if err != nil {
		return domcash.Period{}, nil, err
	}
	list, err := uc.repo.ListByPeriod(ctx, period.From, period.To)
	if err != nil {
		return domcash.Period{}, nil, fmt.Errorf("cashflow: listar lançamentos: %w", err)
	}
	domcash.SortLedger(list)
	return period, list, nil
}

// ExportStatement gera o extrato do período e devolve (bytes, nome do arquivo).
// Período sem lançamentos devolve domain.ErrNoData.
func (uc *UseCase) ExportStatement(ctx context.Context, s access.Session, f domcash.PeriodFilter) ([]byte, string, error) {
	period, list, err := uc.List(ctx, s, f)
	if err != nil {
		return nil, "", err
	}
	if len(list) == 0 {
		return nil, "", domain.ErrNoData
	}

	start, end := domcash.Bounds(list)
	opening := decimal.Zero
	if period.Bounded() {
		start, end = *period.From, *period.To
		opening, err = uc.repo.NetBefore(ctx, start)
		if err != nil {
			return nil, "", fmt.Errorf("cashflow: saldo anterior: %w", err)
		}
	}
	closing := opening.Add(domcash.Aggregate(list).Saldo)

	doc, err := statement.Build(statement.Input{
		Organization:   uc.cfg.Organization,
		Title:          uc.cfg.StatementTitle,
		Transactions:   list,
		PeriodStart:    start,
		PeriodEnd:      end,
		OpeningBalance: opening,
		ClosingBalance: closing,
		GeneratedAt:    uc.now(),
	}, uc.cfg.Layout)
	if err != nil {
		if errors.Is(err, domain.ErrConfiguration) {
			uc.log.Error().Err(err).Msg("layout do extrato inválido")
		}
		return nil, "", err
	}

	out, err := uc.generator.GenerateStatement(ctx, doc)
	if err != nil {
		return nil, "", fmt.Errorf("cashflow: gerar extrato: %w", err)
	}
	uc.recorder.StatementExported(doc.PageCount())
	uc.log.Info().
		Str("from", start.Format(dateLayout)).
		Str("to", end.Format(dateLayout)).
		Int("rows", len(list)).
		Int("pages", doc.PageCount()).
		Str("user_id", s.UserID()).
		Msg("extrato gerado")
	return out, statement.FileName(start, end), nil
}

func (uc *UseCase) resolve(f domcash.PeriodFilter) (domcash.Period, error) {
	year := uc.cfg.FallbackYear
	if f.NeedsFallbackYear() {
		if year == 0 {
			year = uc.now().Year()
		}
		// comportamento a confirmar com o clube: mês/dia sem ano
		uc.log.Warn().Int("fallback_year", year).Msg("filtro sem ano, usando ano de fallback")
	}
	return f.Resolve(year)
}

// ToTransactionResponse converte a entidade no DTO de saída.
func ToTransactionResponse(t *entity.CashFlowTransaction) *dto.CashFlowTransactionResponse {
	if t == nil {
		return nil
	}
	return &dto.CashFlowTransactionResponse{
		ID:             t.ID,
		Tipo:           string(t.Tipo),
		Categoria:      string(t.Categoria),
		CategoriaLabel: t.Categoria.Label(),
		Descricao:      t.Descricao,
		Valor:          t.Valor,
		DataMovimento:  t.DataMovimento.Format(dateLayout),
		CreatedBy:      t.CreatedBy,
		CreatedAt:      t.CreatedAt,
	}
}

// ToTotalsResponse converte os totais no DTO de saída.
func ToTotalsResponse(t domcash.Totals) dto.CashFlowTotalsResponse {
	return dto.CashFlowTotalsResponse{
		TotalEntradas: t.TotalEntradas,
		TotalSaidas:   t.TotalSaidas,
		Saldo:         t.Saldo,
	}
}

func periodStrings(p domcash.Period) (from, to *string) {
	if p.From != nil {
		s := p.From.Format(dateLayout)
		from = &s
	}
	if p.To != nil {
		s := p.To.Format(dateLayout)
		to = &s
	}
	return from, to
}
