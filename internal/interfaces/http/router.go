package http

import (
	"github.com/gofiber/fiber/v2"

	appcash "github.com/jhoicas/clube-api/internal/application/cashflow"
	"github.com/jhoicas/clube-api/internal/application/usecase"
	"github.com/jhoicas/clube-api/internal/domain/access"
	"github.com/jhoicas/clube-api/pkg/logger"
)

// RouterDeps dependências do router.
type RouterDeps struct {
	CashFlowUC *appcash.UseCase
	MemberUC   *usecase.MemberUseCase
	ProductUC  *usecase.ProductUseCase
	Sessions   *usecase.SessionResolver
	JWTSecret  string
	JWTIssuer  string
	Logger     *logger.Logger
}

// Router registra as rotas da API.
func Router(app *fiber.App, deps RouterDeps) {
	log := deps.Logger
	if log == nil {
		log = logger.Nop()
	}
	auth := AuthMiddleware(deps.JWTSecret, deps.JWTIssuer)
	session := SessionMiddleware(deps.Sessions, log)

	api := app.Group("/api")

	// Loja (visitante vê preço cheio; sócio/jogador com desconto)
	store := api.Group("/store", OptionalAuthMiddleware(deps.JWTSecret, deps.JWTIssuer), session)
	productHandler := NewProductHandler(deps.ProductUC, log)
	store.Get("/products", productHandler.List)
	store.Get("/products/:id/price", productHandler.Price)

	// Próprio usuário
	me := api.Group("/me", auth, session)
	memberHandler := NewMemberHandler(deps.MemberUC, log)
	me.Get("/", memberHandler.Me)
	me.Get("/capabilities", memberHandler.Capabilities)
	me.Get("/capabilities/:name", memberHandler.Capability)
	me.Patch("/profile", memberHandler.UpdateProfile)

	// Fluxo de caixa (admin ou moderador)
	cash := api.Group("/cashflow", auth, session, RequireCapability(access.ViewCashFlow, log))
	cashHandler := NewCashFlowHandler(deps.CashFlowUC, log)
	cash.Get("/", cashHandler.List)
	cash.Get("/summary", cashHandler.Summary)
	cash.Get("/statement", cashHandler.Statement)
	cash.Post("/", cashHandler.Create)
	cash.Delete("/:id", cashHandler.Delete)

	// Painel admin
	admin := api.Group("/admin", auth, session, RequireCapability(access.ViewAdminPanel, log))
	admin.Patch("/users/:id/role", memberHandler.ChangeRole)
	admin.Patch("/users/:id/director", memberHandler.SetDirector)
}
