package services

import (
	"math/rand"
	"testing"

	"storefront-service/models"

	"github.com/stretchr/testify/assert"
)

func TestSubtotal(t *testing.T) {
	assert.Equal(t, 0.0, Subtotal(models.Cart{}))
	assert.Equal(t, 0.0, Subtotal(nil))

	r := rand.New(rand.NewSource(4))
	for i := 0; i < 100; i++ {
		cart := randomCart(r)
		want := 0.0
		for _, item := range cart {
			want += item.Price * float64(item.Quantity)
		}
		assert.InDelta(t, want, Subtotal(cart), 1e-9)
	}
}

func TestComputeTotals(t *testing.T) {
	totals := ComputeTotals(models.Cart{{Name: "Lens", Price: 25, Img: "a", Quantity: 2}})
	assert.Equal(t, Totals{Subtotal: 50, Shipping: 0, GrandTotal: 50}, totals)
}

func TestBadgeLabel(t *testing.T) {
	cases := []struct {
		count   int
		label   string
		visible bool
	}{
		{0, "0", false},
		{1, "1", true},
		{99, "99", true},
		{100, "99+", true},
		{150, "99+", true},
	}
	for _, tc := range cases {
		label, visible := BadgeLabel(tc.count)
		assert.Equal(t, tc.label, label, tc.count)
		assert.Equal(t, tc.visible, visible, tc.count)
	}
}

func TestFormatMoney(t *testing.T) {
	assert.Equal(t, "$0.00", FormatMoney(0))
	assert.Equal(t, "$35.50", FormatMoney(35.5))
}
