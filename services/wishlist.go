package services

import "storefront-service/models"

// ToggleWishlist removes the product when listed, otherwise appends it.
func ToggleWishlist(wishlist models.Wishlist, p models.Product) (models.Wishlist, models.WishlistOutcome) {
	if InWishlist(wishlist, p.Name) {
		return RemoveFromWishlist(wishlist, p.Name), models.WishlistRemoved
	}
	next := make(models.Wishlist, len(wishlist), len(wishlist)+1)
	copy(next, wishlist)
	return append(next, models.WishlistItem{Name: p.Name, Price: p.Price, Img: p.Img}), models.WishlistAdded
}

func RemoveFromWishlist(wishlist models.Wishlist, name string) models.Wishlist {
	next := make(models.Wishlist, 0, len(wishlist))
	for _, item := range wishlist {
		if item.Name != name {
			next = append(next, item)
		}
	}
	return next
}

func InWishlist(wishlist models.Wishlist, name string) bool {
	for _, item := range wishlist {
		if item.Name == name {
			return true
		}
	}
	return false
}

// MoveToCart adds the named wishlist item to the cart and drops it from the
// wishlist. moved is false, and both inputs are returned as-is, when the
// name is not on the wishlist.
func MoveToCart(cart models.Cart, wishlist models.Wishlist, name string) (models.Cart, models.Wishlist, bool) {
	for _, item := range wishlist {
		if item.Name == name {
			p := models.Product{Name: item.Name, Price: item.Price, Img: item.Img}
			return AddToCart(cart, p), RemoveFromWishlist(wishlist, name), true
		}
	}
	return cart, wishlist, false
}
