package services

import (
	"time"

	apperrors "storefront-service/errors"
	"storefront-service/models"

	"github.com/google/uuid"
)

// OrderPlacedEventName tags order events on the wire.
const OrderPlacedEventName = "order.placed"

// Checkout turns a non-empty cart into an order event. Clearing the cart is
// left to the caller.
func Checkout(profileID string, session models.SessionStatus, cart models.Cart, now time.Time) (models.OrderPlacedEvent, error) {
	if len(cart) == 0 {
		return models.OrderPlacedEvent{}, apperrors.ErrEmptyCart
	}
	totals := ComputeTotals(cart)
	items := make(models.Cart, len(cart))
	copy(items, cart)

	evt := models.OrderPlacedEvent{
		Event:      OrderPlacedEventName,
		OrderID:    uuid.NewString(),
		ProfileID:  profileID,
		Items:      items,
		Subtotal:   totals.Subtotal,
		Shipping:   totals.Shipping,
		GrandTotal: totals.GrandTotal,
		Timestamp:  now.UTC(),
	}
	if session.IsLoggedIn {
		evt.Email = session.Email
	}
	return evt, nil
}
