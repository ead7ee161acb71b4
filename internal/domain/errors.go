package domain

import "errors"

var (
	// ErrEmptyCart — попытка оформить заказ из пустой корзины.
	ErrEmptyCart = errors.New("cart must contain at least one item")
	// ErrItemQtyInvalid — некорректное количество в позиции корзины (<= 0).
	ErrItemQtyInvalid = errors.New("cart item quantity must be greater than zero")
	// ErrItemPriceInvalid — отрицательная цена позиции корзины.
	ErrItemPriceInvalid = errors.New("cart item price must be non-negative")
	// ErrOrderNotFound возвращается презентационным слоем, если заказ не найден.
	ErrOrderNotFound = errors.New("order not found")
	// ErrPersistence сигнализирует об отказе записи в поверхность хранения.
	// Чтение, напротив, всегда деградирует мягко до пустой коллекции.
	ErrPersistence = errors.New("order ledger persistence failed")
)

// IsPersistence проверяет, является ли ошибка отказом хранилища.
func IsPersistence(err error) bool {
	return errors.Is(err, ErrPersistence)
}
