package models

// CartItem is one line of the cart. Name is the unique key within a cart.
type CartItem struct {
	Name     string  `json:"name" validate:"required"`
	Price    float64 `json:"price" validate:"gte=0"`
	Img      string  `json:"img"`
	Quantity int     `json:"quantity" validate:"gte=1"`
}

// Cart keeps insertion order, which is also display order.
type Cart []CartItem

// Product is the opaque product reference read from catalog attributes.
type Product struct {
	Name  string  `json:"name"`
	Price float64 `json:"price"`
	Img   string  `json:"img"`
}
