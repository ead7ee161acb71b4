package postgres

import (
	"context"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/MOWLI17/luxora-sub001/internal/domain"
)

// Интеграционные тесты каталога требуют реального PostgreSQL; DSN берётся
// из LUXORA_POSTGRES_TEST_DSN, иначе тест пропускается.
func openPostgresStoreForIntegrationTest(t *testing.T) *Store {
	t.Helper()

	dsn := strings.TrimSpace(os.Getenv("LUXORA_POSTGRES_TEST_DSN"))
	if dsn == "" {
		t.Skip("LUXORA_POSTGRES_TEST_DSN is not set, skipping postgres integration test")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	store, err := Open(ctx, dsn)
	if err != nil {
		t.Skipf("postgres is not reachable: %v", err)
	}
	t.Cleanup(func() {
		_ = store.Close()
	})

	if err := store.MigrateUp(ctx, 0); err != nil {
		t.Fatalf("migrate up: %v", err)
	}
	if _, err := store.DB().ExecContext(ctx, `TRUNCATE TABLE products`); err != nil {
		t.Fatalf("truncate products: %v", err)
	}

	return store
}

func TestProductRepository_SeedAndList(t *testing.T) {
	store := openPostgresStoreForIntegrationTest(t)
	repo := NewProductRepository(store)
	ctx := context.Background()

	seed := []domain.Product{
		{ID: "p-2", Name: "Budget Earbuds", Price: 9.99, Rating: 3.8},
		{
			ID: "p-1", Name: "Smartphone Pro", Price: 45.00, Rating: 4.5,
			Extra: map[string]any{"category": "electronics", "stock": float64(12)},
		},
	}
	if err := repo.Seed(ctx, seed); err != nil {
		t.Fatalf("seed failed: %v", err)
	}

	// Повторный сев не должен дублировать записи.
	if err := repo.Seed(ctx, seed); err != nil {
		t.Fatalf("second seed failed: %v", err)
	}

	products, err := repo.List(ctx)
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(products) != 2 {
		t.Fatalf("expected 2 products, got %d", len(products))
	}

	// Порядок стабильный: по имени.
	if products[0].Name != "Budget Earbuds" || products[1].Name != "Smartphone Pro" {
		t.Fatalf("unexpected order: %+v", products)
	}

	if products[1].Extra["category"] != "electronics" {
		t.Fatalf("extra attrs not round-tripped: %+v", products[1].Extra)
	}
}
