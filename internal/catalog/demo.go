package catalog

import "github.com/MOWLI17/luxora-sub001/internal/domain"

// DemoProducts возвращает стартовый каталог для запуска без PostgreSQL
// и для первичного наполнения пустой базы.
func DemoProducts() []domain.Product {
	return []domain.Product{
		{ID: "p-1001", Name: "Smartphone Pro", Price: 699.99, Rating: 4.6, Extra: map[string]any{"category": "electronics"}},
		{ID: "p-1002", Name: "Wireless Headphones", Price: 129.50, Rating: 4.2, Extra: map[string]any{"category": "electronics"}},
		{ID: "p-1003", Name: "Phone Case", Price: 12.50, Rating: 3.9, Extra: map[string]any{"category": "accessories"}},
		{ID: "p-1004", Name: "Desk Lamp", Price: 34.90, Rating: 4.0, Extra: map[string]any{"category": "home"}},
		{ID: "p-1005", Name: "Coffee Grinder", Price: 58.00, Rating: 4.8, Extra: map[string]any{"category": "kitchen"}},
	}
}
