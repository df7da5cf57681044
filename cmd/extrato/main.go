// Command extrato gera o extrato do fluxo de caixa em PDF direto no disco.
//
//	extrato -user <id> -year 2025 -month 3 -out ./extratos
//
// O usuário precisa ter acesso ao caixa (admin ou moderador), como na API.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/jhoicas/clube-api/internal/app"
	"github.com/jhoicas/clube-api/internal/application/usecase"
	"github.com/jhoicas/clube-api/internal/domain/cashflow"
	"github.com/jhoicas/clube-api/pkg/config"
	"github.com/jhoicas/clube-api/pkg/logger"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "extrato:", err)
		os.Exit(1)
	}
}

func run() error {
	var (
		userID = flag.String("user", "", "id do usuário que exporta (obrigatório)")
		year   = flag.Int("year", 0, "ano (0 = sem filtro)")
		month  = flag.Int("month", 0, "mês 1-12 (0 = sem filtro)")
		day    = flag.Int("day", 0, "dia (0 = sem filtro)")
		out    = flag.String("out", ".", "diretório de saída")
	)
	flag.Parse()
	if *userID == "" {
		flag.Usage()
		return fmt.Errorf("-user obrigatório")
	}

	cfg, err := config.Load()
	if err != nil {
		return err
	}
	log := logger.New(logger.Config{Env: "development", Level: cfg.Log.Level})

	ctx := context.Background()
	stores, err := app.OpenStores(ctx, cfg.DB, log)
	if err != nil {
		return err
	}
	defer stores.Close()

	session, err := usecase.NewSessionResolver(stores.Users, stores.Moderators).Resolve(ctx, *userID)
	if err != nil {
		return err
	}

	uc := app.NewCashFlowUseCase(cfg, stores.CashFlow, log)
	data, name, err := uc.ExportStatement(ctx, session, cashflow.PeriodFilter{
		Year:  optional(*year),
		Month: optional(*month),
		Day:   optional(*day),
	})
	if err != nil {
		return err
	}

	if err := os.MkdirAll(*out, 0o755); err != nil {
		return err
	}
	path := filepath.Join(*out, name)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return err
	}
	log.Info().Str("arquivo", path).Int("bytes", len(data)).Msg("extrato salvo")
	return nil
}

func optional(v int) *int {
	if v == 0 {
		return nil
	}
	return &v
}
