//go:build integration

package postgres_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/jhoicas/clube-api/internal/domain"
	"github.com/jhoicas/clube-api/internal/domain/entity"
	"github.com/jhoicas/clube-api/internal/infrastructure/postgres"
	"github.com/jhoicas/clube-api/pkg/config"
)

func newPool(t *testing.T) *pgxpool.Pool {
	t.Helper()
	ctx := context.Background()

	container, err := tcpostgres.Run(ctx,
		"postgres:16-alpine",
		tcpostgres.WithDatabase("clube"),
		tcpostgres.WithUsername("clube"),
		tcpostgres.WithPassword("clube"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	require.NoError(t, err)
	t.Cleanup(func() { _ = container.Terminate(ctx) })

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	pool, err := postgres.NewPool(ctx, config.DBConfig{DatabaseURL: dsn})
	require.NoError(t, err)
	t.Cleanup(pool.Close)

	require.NoError(t, postgres.Migrate(pool))
	require.NoError(t, postgres.Migrate(pool), "segunda execução sem mudanças")
	return pool
}

func TestPostgres_Repositories(t *testing.T) {
	pool := newPool(t)
	ctx := context.Background()

	_, err := pool.Exec(ctx, `
		INSERT INTO users (id, email, display_name, role) VALUES
			('u-admin', 'admin@clube.br', 'Admin', 'admin'),
			('u-mod', 'mod@clube.br', 'Moderador', 'usuario');
		INSERT INTO cashflow_moderators (user_id) VALUES ('u-mod');
		INSERT INTO produtos (id, nome, preco, tem_desconto_socio, desconto_socio) VALUES
			('camisa', 'Camisa oficial', 100.00, TRUE, 10),
			('caneca', 'Caneca', 35.00, FALSE, NULL);`)
	require.NoError(t, err)

	t.Run("users", func(t *testing.T) {
		users := postgres.NewUserRepository(pool)
		u, err := users.GetByID(ctx, "u-admin")
		require.NoError(t, err)
		require.NotNil(t, u)
		assert.Equal(t, entity.RoleAdmin, u.Role)

		require.NoError(t, users.UpdateRole(ctx, "u-mod", entity.RoleSocio))
		require.NoError(t, users.UpdateDirector(ctx, "u-mod", true))
		u, err = users.GetByID(ctx, "u-mod")
		require.NoError(t, err)
		assert.Equal(t, entity.RoleSocio, u.Role)
		assert.True(t, u.Diretor)

		assert.ErrorIs(t, users.UpdateProfile(ctx, "nao-existe", "x"), domain.ErrNotFound)

		u, err = users.GetByID(ctx, "nao-existe")
		require.NoError(t, err)
		assert.Nil(t, u)
	})

	t.Run("moderators", func(t *testing.T) {
		mods := postgres.NewModeratorRepository(pool)
		ok, err := mods.IsModerator(ctx, "u-mod")
		require.NoError(t, err)
		assert.True(t, ok)
		ok, err = mods.IsModerator(ctx, "u-admin")
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("products", func(t *testing.T) {
		products := postgres.NewProductRepository(pool)
		p, err := products.GetByID(ctx, "camisa")
		require.NoError(t, err)
		require.NotNil(t, p)
		require.NotNil(t, p.DescontoSocio)
		assert.Equal(t, 10, *p.DescontoSocio)
		assert.True(t, p.Preco.Equal(decimal.NewFromInt(100)))

		list, err := products.List(ctx, 10, 0)
		require.NoError(t, err)
		require.Len(t, list, 2)
		assert.Equal(t, "Camisa oficial", list[0].Nome)
		assert.Nil(t, list[1].DescontoSocio)
	})
}

func TestPostgres_CashFlow(t *testing.T) {
	pool := newPool(t)
	ctx := context.Background()
	repo := postgres.NewCashFlowRepository(pool)

	created := time.Date(2025, 3, 20, 12, 0, 0, 0, time.UTC)
	rows := []entity.CashFlowTransaction{
		{ID: "6f1c5a8e-0000-4000-8000-000000000001", Tipo: entity.TransactionEntrada, Categoria: entity.CategoryMensalidade, Descricao: "Fev", Valor: decimal.NewFromInt(1000), DataMovimento: time.Date(2025, 2, 15, 0, 0, 0, 0, time.UTC), CreatedBy: "u-admin", CreatedAt: created},
		{ID: "6f1c5a8e-0000-4000-8000-000000000002", Tipo: entity.TransactionEntrada, Categoria: entity.CategoryPatrocinio, Descricao: "Patrocínio", Valor: decimal.RequireFromString("500.00"), DataMovimento: time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC), CreatedBy: "u-admin", CreatedAt: created},
		{ID: "6f1c5a8e-0000-4000-8000-000000000003", Tipo: entity.TransactionSaida, Categoria: entity.CategoryArbitragem, Descricao: "Árbitro", Valor: decimal.RequireFromString("120.00"), DataMovimento: time.Date(2025, 3, 12, 0, 0, 0, 0, time.UTC), CreatedBy: "u-admin", CreatedAt: created},
	}
	for i := range rows {
		require.NoError(t, repo.Create(ctx, &rows[i]))
	}

	from := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2025, 3, 31, 0, 0, 0, 0, time.UTC)
	list, err := repo.ListByPeriod(ctx, &from, &to)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "Árbitro", list[0].Descricao)
	assert.Equal(t, to.Location(), list[0].DataMovimento.Location())

	all, err := repo.ListByPeriod(ctx, nil, nil)
	require.NoError(t, err)
	assert.Len(t, all, 3)

	net, err := repo.NetBefore(ctx, from)
	require.NoError(t, err)
	assert.True(t, net.Equal(decimal.NewFromInt(1000)), net.String())

	bad := rows[0]
	bad.ID = "6f1c5a8e-0000-4000-8000-000000000009"
	bad.Valor = decimal.Zero
	assert.ErrorIs(t, repo.Create(ctx, &bad), domain.ErrInvalidInput)

	// exclusões concorrentes do mesmo id: exatamente uma vence
	var (
		wg       sync.WaitGroup
		mu       sync.Mutex
		ok, miss int
	)
	for i := 0; i < 4; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			err := repo.Delete(ctx, rows[1].ID)
			mu.Lock()
			defer mu.Unlock()
			switch {
			case err == nil:
				ok++
			case assert.ErrorIs(t, err, domain.ErrNotFound):
				miss++
			}
		}()
	}
	wg.Wait()
	assert.Equal(t, 1, ok)
	assert.Equal(t, 3, miss)

	got, err := repo.GetByID(ctx, rows[1].ID)
	require.NoError(t, err)
	assert.Nil(t, got)
}
