package services

import (
	"fmt"
	"strconv"

	"storefront-service/models"
)

// ShippingFee is flat and currently free.
const ShippingFee = 0.0

type Totals struct {
	Subtotal   float64
	Shipping   float64
	GrandTotal float64
}

func Subtotal(cart models.Cart) float64 {
	sum := 0.0
	for _, item := range cart {
		sum += item.Price * float64(item.Quantity)
	}
	return sum
}

func ComputeTotals(cart models.Cart) Totals {
	sub := Subtotal(cart)
	return Totals{Subtotal: sub, Shipping: ShippingFee, GrandTotal: sub + ShippingFee}
}

// FormatMoney renders an amount the way every view shows prices.
func FormatMoney(amount float64) string {
	return fmt.Sprintf("$%.2f", amount)
}

// BadgeLabel returns the header badge text for count and whether the badge
// is shown at all.
func BadgeLabel(count int) (string, bool) {
	if count <= 0 {
		return "0", false
	}
	if count > 99 {
		return "99+", true
	}
	return strconv.Itoa(count), true
}
