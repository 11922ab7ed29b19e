package models

type WishlistItem struct {
	Name  string  `json:"name" validate:"required"`
	Price float64 `json:"price" validate:"gte=0"`
	Img   string  `json:"img"`
}

type Wishlist []WishlistItem

// WishlistOutcome reports which way a toggle went.
type WishlistOutcome string

const (
	WishlistAdded   WishlistOutcome = "added"
	WishlistRemoved WishlistOutcome = "removed"
)
