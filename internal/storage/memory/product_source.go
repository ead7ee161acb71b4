package memory

import (
	"context"

	"github.com/MOWLI17/luxora-sub001/internal/domain"
)

// productSourceInMemory отдаёт зафиксированный при создании срез каталога.
// Порядок записей сохраняется: движок фильтрации на него опирается.
type productSourceInMemory struct {
	products []domain.Product
}

// NewProductSource возвращает in-memory источник каталога.
func NewProductSource(products []domain.Product) domain.ProductSource {
	stored := make([]domain.Product, len(products))
	copy(stored, products)
	return &productSourceInMemory{products: stored}
}

// List возвращает копию каталога в исходном порядке.
func (s *productSourceInMemory) List(_ context.Context) ([]domain.Product, error) {
	out := make([]domain.Product, len(s.products))
	copy(out, s.products)
	return out, nil
}

var _ domain.ProductSource = (*productSourceInMemory)(nil)
