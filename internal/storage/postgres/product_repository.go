package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/MOWLI17/luxora-sub001/internal/domain"
)

const opTimeout = 5 * time.Second

// ProductRepository — PostgreSQL-реализация источника каталога.
type ProductRepository struct {
	db *sql.DB
}

// NewProductRepository создаёт репозиторий каталога поверх Store.
func NewProductRepository(store *Store) *ProductRepository {
	return &ProductRepository{db: store.DB()}
}

// NewProductSource создаёт каталожный источник поверх Store.
func NewProductSource(store *Store) domain.ProductSource {
	return NewProductRepository(store)
}

// List возвращает каталог в стабильном порядке (по имени, затем id).
// Нетипизированные атрибуты записи приходят JSONB-колонкой attrs и
// проносятся в Product.Extra как есть.
func (r *ProductRepository) List(ctx context.Context) ([]domain.Product, error) {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	rows, err := r.db.QueryContext(ctx, `
		SELECT id, name, price, rating, attrs
		FROM products
		ORDER BY name ASC, id ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	defer rows.Close()

	products := make([]domain.Product, 0)
	for rows.Next() {
		var (
			p        domain.Product
			attrsRaw []byte
		)
		if err := rows.Scan(&p.ID, &p.Name, &p.Price, &p.Rating, &attrsRaw); err != nil {
			return nil, fmt.Errorf("scan product row: %w", err)
		}
		if len(attrsRaw) > 0 {
			if err := json.Unmarshal(attrsRaw, &p.Extra); err != nil {
				return nil, fmt.Errorf("decode product attrs for %s: %w", p.ID, err)
			}
		}
		products = append(products, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate product rows: %w", err)
	}

	return products, nil
}

// Seed наполняет пустой каталог стартовыми записями; непустой каталог
// остаётся нетронутым.
func (r *ProductRepository) Seed(ctx context.Context, products []domain.Product) error {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	var count int
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM products`).Scan(&count); err != nil {
		return fmt.Errorf("count products: %w", err)
	}
	if count > 0 {
		return nil
	}

	for _, p := range products {
		attrs, err := json.Marshal(p.Extra)
		if err != nil {
			return fmt.Errorf("encode product attrs for %s: %w", p.ID, err)
		}
		if p.Extra == nil {
			attrs = []byte(`{}`)
		}
		if _, err := r.db.ExecContext(ctx, `
			INSERT INTO products (id, name, price, rating, attrs)
			VALUES ($1, $2, $3, $4, $5)
		`, p.ID, p.Name, p.Price, p.Rating, attrs); err != nil {
			return fmt.Errorf("seed product %s: %w", p.ID, err)
		}
	}
	return nil
}

var _ domain.ProductSource = (*ProductRepository)(nil)
