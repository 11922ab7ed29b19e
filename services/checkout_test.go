package services

import (
	"testing"
	"time"

	apperrors "storefront-service/errors"
	"storefront-service/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckout(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.FixedZone("CET", 3600))
	cart := models.Cart{{Name: "Lens", Price: 25, Img: "a", Quantity: 2}, {Name: "Frame", Price: 80, Img: "b", Quantity: 1}}

	t.Run("Logged In", func(t *testing.T) {
		session := models.SessionStatus{IsLoggedIn: true, Name: "Jane", Email: "jane@x.com"}
		evt, err := Checkout("profile-1", session, cart, now)

		require.NoError(t, err)
		assert.Equal(t, OrderPlacedEventName, evt.Event)
		assert.NoError(t, uuid.Validate(evt.OrderID))
		assert.Equal(t, "profile-1", evt.ProfileID)
		assert.Equal(t, "jane@x.com", evt.Email)
		assert.Equal(t, cart, evt.Items)
		assert.Equal(t, 130.0, evt.Subtotal)
		assert.Equal(t, 130.0, evt.GrandTotal)
		assert.Equal(t, time.UTC, evt.Timestamp.Location())
	})

	t.Run("Guest", func(t *testing.T) {
		evt, err := Checkout("profile-1", models.GuestSession(), cart, now)
		require.NoError(t, err)
		assert.Empty(t, evt.Email)
	})

	t.Run("Empty Cart", func(t *testing.T) {
		_, err := Checkout("profile-1", models.GuestSession(), models.Cart{}, now)
		assert.ErrorIs(t, err, apperrors.ErrEmptyCart)
	})
}
