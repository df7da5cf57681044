// Package app monta as dependências compartilhadas pelos executáveis (API e CLI).
package app

import (
	"context"
	"fmt"

	appcash "github.com/jhoicas/clube-api/internal/application/cashflow"
	"github.com/jhoicas/clube-api/internal/domain/repository"
	"github.com/jhoicas/clube-api/internal/domain/statement"
	"github.com/jhoicas/clube-api/internal/infrastructure/memory"
	infrapdf "github.com/jhoicas/clube-api/internal/infrastructure/pdf"
	"github.com/jhoicas/clube-api/internal/infrastructure/postgres"
	"github.com/jhoicas/clube-api/pkg/config"
	"github.com/jhoicas/clube-api/pkg/logger"
)

// Stores repositórios usados pelos casos de uso.
type Stores struct {
	Users      repository.UserRepository
	Moderators repository.ModeratorRepository
	Products   repository.ProductRepository
	CashFlow   repository.CashFlowRepository
	Backend    string // "postgres" ou "memory"
	close      func()
}

// Close libera as conexões.
func (s *Stores) Close() {
	if s.close != nil {
		s.close()
	}
}

// OpenStores conecta ao PostgreSQL quando há banco configurado; senão usa memória.
// Com DB_MIGRATE=true aplica as migrações embutidas antes de devolver.
func OpenStores(ctx context.Context, cfg config.DBConfig, log *logger.Logger) (*Stores, error) {
	if !cfg.Enabled() {
		log.Warn().Msg("banco não configurado, usando repositórios em memória")
		return &Stores{
			Users:      memory.NewUserRepository(),
			Moderators: memory.NewModeratorRepository(),
			Products:   memory.NewProductRepository(),
			CashFlow:   memory.NewCashFlowRepository(),
			Backend:    "memory",
		}, nil
	}

	pool, err := postgres.NewPool(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("conexão a PostgreSQL: %w", err)
	}
	if cfg.Migrate {
		if err := postgres.Migrate(pool); err != nil {
			pool.Close()
			return nil, err
		}
		log.Info().Msg("migrações aplicadas")
	}
	return &Stores{
		Users:      postgres.NewUserRepository(pool),
		Moderators: postgres.NewModeratorRepository(pool),
		Products:   postgres.NewProductRepository(pool),
		CashFlow:   postgres.NewCashFlowRepository(pool),
		Backend:    "postgres",
		close:      pool.Close,
	}, nil
}

// NewCashFlowUseCase monta o livro-caixa com o gerador PDF e a configuração da aplicação.
func NewCashFlowUseCase(cfg *config.Config, repo repository.CashFlowRepository, log *logger.Logger, opts ...appcash.Option) *appcash.UseCase {
	layout := statement.DefaultLayout()
	layout.DescriptionWidth = cfg.CashFlow.DescriptionWidth
	return appcash.NewUseCase(repo, infrapdf.NewMarotoStatementGenerator(), log.Named("cashflow"), appcash.Config{
		FallbackYear: cfg.CashFlow.FallbackYear,
		Organization: cfg.App.ClubName,
		Layout:       layout,
	}, opts...)
}
