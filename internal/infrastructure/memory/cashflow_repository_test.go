package memory_test

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/clube-api/internal/domain"
	"github.com/jhoicas/clube-api/internal/domain/entity"
	"github.com/jhoicas/clube-api/internal/infrastructure/memory"
)

func day(y int, m time.Month, d int) time.Time { return time.Date(y, m, d, 0, 0, 0, 0, time.UTC) }

func TestCashFlowRepo_ExclusaoConcorrente(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewCashFlowRepository()
	require.NoError(t, repo.Create(ctx, &entity.CashFlowTransaction{
		ID: "t1", Tipo: entity.TransactionEntrada, Valor: decimal.NewFromInt(10), DataMovimento: day(2025, 3, 1),
	}))

	var ok, notFound int32
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			err := repo.Delete(ctx, "t1")
			switch {
			case err == nil:
				atomic.AddInt32(&ok, 1)
			case errors.Is(err, domain.ErrNotFound):
				atomic.AddInt32(&notFound, 1)
			}
		}()
	}
	wg.Wait()
	assert.Equal(t, int32(1), ok)
	assert.Equal(t, int32(7), notFound)
}

func TestCashFlowRepo_ListaENetBefore(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewCashFlowRepository()
	for _, tx := range []*entity.CashFlowTransaction{
		{ID: "a", Tipo: entity.TransactionEntrada, Valor: decimal.NewFromInt(100), DataMovimento: day(2025, 2, 28)},
		{ID: "b", Tipo: entity.TransactionSaida, Valor: decimal.NewFromInt(30), DataMovimento: day(2025, 2, 10)},
		{ID: "c", Tipo: entity.TransactionEntrada, Valor: decimal.NewFromInt(7), DataMovimento: day(2025, 3, 1)},
	} {
		require.NoError(t, repo.Create(ctx, tx))
	}

	from, to := day(2025, 3, 1), day(2025, 3, 31)
	list, err := repo.ListByPeriod(ctx, &from, &to)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "c", list[0].ID)

	all, err := repo.ListByPeriod(ctx, nil, nil)
	require.NoError(t, err)
	assert.Len(t, all, 3)

	net, err := repo.NetBefore(ctx, from)
	require.NoError(t, err)
	assert.True(t, net.Equal(decimal.NewFromInt(70)))

	got, err := repo.GetByID(ctx, "zzz")
	require.NoError(t, err)
	assert.Nil(t, got)
}
