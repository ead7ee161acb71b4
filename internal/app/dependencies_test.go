package app

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/MOWLI17/luxora-sub001/internal/catalog"
	"github.com/MOWLI17/luxora-sub001/internal/domain"
)

func TestNewDependencies_InMemoryFallback(t *testing.T) {
	ctx := context.Background()
	deps := NewDependencies(ctx, DefaultConfig(), nil)
	defer deps.Close()

	require.NotNil(t, deps.BlobStore)
	require.NotNil(t, deps.ProductSource)
	require.NotNil(t, deps.Ledger)
	require.NotNil(t, deps.Engine)
	require.NotNil(t, deps.Health)
}

func TestNewDependencies_EndToEnd(t *testing.T) {
	ctx := context.Background()
	deps := NewDependencies(ctx, DefaultConfig(), nil)
	defer deps.Close()

	// Демо-каталог отвечает на запросы движка.
	result, err := deps.Engine.Query(ctx, catalog.DefaultFilter())
	require.NoError(t, err)
	require.NotZero(t, result.Total)

	// Реестр заказов работает поверх in-memory блоба.
	order, err := deps.Ledger.Create(ctx, []domain.CartItem{
		{ID: "p-1001", Name: "Smartphone Pro", Price: 699.99, Quantity: 1},
	}, nil)
	require.NoError(t, err)
	require.NotEmpty(t, order.ID)
	require.Len(t, deps.Ledger.List(ctx), 1)
}

func TestNewDependencies_UnreachableBackendsDegrade(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Redis.Addr = "127.0.0.1:1"       // закрытый порт
	cfg.Postgres.DSN = "postgres://127.0.0.1:1/nope?connect_timeout=1"

	ctx := context.Background()
	deps := NewDependencies(ctx, cfg, nil)
	defer deps.Close()

	// Оба бэкенда недоступны, но приложение остаётся работоспособным.
	order, err := deps.Ledger.Create(ctx, []domain.CartItem{
		{ID: "p-1", Name: "Item", Price: 5.00, Quantity: 2},
	}, nil)
	require.NoError(t, err)
	require.Equal(t, 10.00, order.Subtotal)
}
