package domain

// CartItem — эфемерная позиция корзины, вход операции оформления заказа.
type CartItem struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Price       float64 `json:"price"`
	Quantity    int     `json:"quantity"`
	Image       string  `json:"image,omitempty"`
	Description string  `json:"description,omitempty"`
}

// ValidateCart проверяет инварианты корзины и возвращает список замечаний.
func ValidateCart(items []CartItem) []error {
	var errs []error

	if len(items) == 0 {
		errs = append(errs, ErrEmptyCart)
		return errs
	}

	for _, item := range items {
		if item.Quantity <= 0 {
			errs = append(errs, ErrItemQtyInvalid)
		}
		if item.Price < 0 {
			errs = append(errs, ErrItemPriceInvalid)
		}
	}

	return errs
}
