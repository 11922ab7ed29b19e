package models

import "strings"

// Page is a routing constant of the storefront.
type Page string

const (
	PageHome     Page = "home"
	PageProducts Page = "products"
	PageCart     Page = "cart"
	PageCheckout Page = "checkout"
	PageWishlist Page = "wishlist"
	PageAccount  Page = "myaccount"
	PageLogin    Page = "login"
	PageRegister Page = "register"
)

// PageFromPath resolves the last path segment, with an optional .html
// suffix, to a Page. Unknown segments are returned as-is.
func PageFromPath(path string) Page {
	if i := strings.IndexAny(path, "?#"); i >= 0 {
		path = path[:i]
	}
	path = strings.TrimRight(path, "/")
	if i := strings.LastIndex(path, "/"); i >= 0 {
		path = path[i+1:]
	}
	path = strings.TrimSuffix(path, ".html")
	if path == "" || path == "index" {
		return PageHome
	}
	return Page(path)
}
