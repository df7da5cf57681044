package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"github.com/jhoicas/clube-api/internal/app"
	appcash "github.com/jhoicas/clube-api/internal/application/cashflow"
	"github.com/jhoicas/clube-api/internal/application/usecase"
	"github.com/jhoicas/clube-api/internal/infrastructure/metrics"
	httpRouter "github.com/jhoicas/clube-api/internal/interfaces/http"
	"github.com/jhoicas/clube-api/pkg/config"
	"github.com/jhoicas/clube-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("carregar configuração: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.Log.Level,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicação")

	if cfg.JWT.Secret == "" {
		log.Fatal().Msg("JWT_SECRET obrigatório")
	}

	ctx := context.Background()
	stores, err := app.OpenStores(ctx, cfg.DB, log)
	if err != nil {
		log.Fatal().Err(err).Msg("abrir repositórios")
	}
	defer stores.Close()

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	m := metrics.New(reg)

	cashflowUC := app.NewCashFlowUseCase(cfg, stores.CashFlow, log, appcash.WithRecorder(m))
	memberUC := usecase.NewMemberUseCase(stores.Users, log.Named("members"))
	productUC := usecase.NewProductUseCase(stores.Products)
	sessions := usecase.NewSessionResolver(stores.Users, stores.Moderators)

	srv := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 30, // extratos grandes
		IdleTimeout:  time.Second * 60,
	})
	srv.Use(recover.New())
	srv.Use(m.Middleware())

	srv.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name, "store": stores.Backend})
	})
	srv.Get("/metrics", metrics.Handler(reg))

	httpRouter.Router(srv, httpRouter.RouterDeps{
		CashFlowUC: cashflowUC,
		MemberUC:   memberUC,
		ProductUC:  productUC,
		Sessions:   sessions,
		JWTSecret:  cfg.JWT.Secret,
		JWTIssuer:  cfg.JWT.Issuer,
		Logger:     log.Named("http"),
	})

	go func() {
		if err := srv.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("sinal de desligamento recebido, encerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("desligamento do servidor")
	}

	log.Info().Msg("aplicação encerrada")
}
