package domain_test

import (
	"errors"
	"testing"

	"github.com/MOWLI17/luxora-sub001/internal/domain"
)

// helper для корзины с одной валидной позицией.
func makeCart() []domain.CartItem {
	return []domain.CartItem{
		{ID: "p-1", Name: "Smartphone Pro", Price: 19.99, Quantity: 2},
	}
}

func TestValidateCart_Ok(t *testing.T) {
	if errs := domain.ValidateCart(makeCart()); len(errs) != 0 {
		t.Fatalf("expected no validation errors, got %v", errs)
	}
}

func TestValidateCart_Empty(t *testing.T) {
	for _, cart := range [][]domain.CartItem{nil, {}} {
		errs := domain.ValidateCart(cart)
		if len(errs) != 1 || !errors.Is(errs[0], domain.ErrEmptyCart) {
			t.Fatalf("expected ErrEmptyCart, got %v", errs)
		}
	}
}

func TestValidateCart_Errors(t *testing.T) {
	cases := []struct {
		name string
		mut  func(items []domain.CartItem)
		want error
	}{
		{
			name: "zero quantity",
			mut: func(items []domain.CartItem) {
				items[0].Quantity = 0
			},
			want: domain.ErrItemQtyInvalid,
		},
		{
			name: "negative quantity",
			mut: func(items []domain.CartItem) {
				items[0].Quantity = -2
			},
			want: domain.ErrItemQtyInvalid,
		},
		{
			name: "negative price",
			mut: func(items []domain.CartItem) {
				items[0].Price = -0.01
			},
			want: domain.ErrItemPriceInvalid,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cart := makeCart()
			tc.mut(cart)

			errs := domain.ValidateCart(cart)
			if len(errs) == 0 {
				t.Fatalf("expected validation errors for case %s", tc.name)
			}
			if !errors.Is(errs[0], tc.want) {
				t.Fatalf("expected %v, got %v", tc.want, errs[0])
			}
		})
	}
}
