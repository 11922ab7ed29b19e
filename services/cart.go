package services

import (
	"strconv"
	"strings"

	apperrors "storefront-service/errors"
	"storefront-service/models"
)

// AddToCart increments the quantity of an existing line or appends a new
// line with quantity 1. The input cart is not modified.
func AddToCart(cart models.Cart, p models.Product) models.Cart {
	next := make(models.Cart, len(cart), len(cart)+1)
	copy(next, cart)
	for i := range next {
		if next[i].Name == p.Name {
			next[i].Quantity++
			return next
		}
	}
	return append(next, models.CartItem{Name: p.Name, Price: p.Price, Img: p.Img, Quantity: 1})
}

// ParseQuantity accepts only a plain decimal integer of at least 1.
func ParseQuantity(raw string) (int, error) {
	q, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0, apperrors.ErrInvalidQuantity.Wrap(err)
	}
	if q < 1 {
		return 0, apperrors.ErrInvalidQuantity
	}
	return q, nil
}

// SetQuantity replaces the quantity of the named line. Quantities below 1
// are rejected and the cart is returned unchanged. An absent name is a no-op.
func SetQuantity(cart models.Cart, name string, qty int) (models.Cart, error) {
	if qty < 1 {
		return cart, apperrors.ErrInvalidQuantity
	}
	next := make(models.Cart, len(cart))
	copy(next, cart)
	for i := range next {
		if next[i].Name == name {
			next[i].Quantity = qty
			break
		}
	}
	return next, nil
}

// RemoveFromCart drops the named line, if present.
func RemoveFromCart(cart models.Cart, name string) models.Cart {
	next := make(models.Cart, 0, len(cart))
	for _, item := range cart {
		if item.Name != name {
			next = append(next, item)
		}
	}
	return next
}

// FindCartItem returns the named line and whether it exists.
func FindCartItem(cart models.Cart, name string) (models.CartItem, bool) {
	for _, item := range cart {
		if item.Name == name {
			return item, true
		}
	}
	return models.CartItem{}, false
}

// CartCount is the total quantity across all lines.
func CartCount(cart models.Cart) int {
	n := 0
	for _, item := range cart {
		n += item.Quantity
	}
	return n
}
