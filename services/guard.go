package services

import "storefront-service/models"

var restrictedPages = map[models.Page]bool{
	models.PageAccount:  true,
	models.PageWishlist: true,
}

// Guard decides whether the page at path must send a logged-out visitor to
// the login page.
func Guard(path string, isLoggedIn bool) (models.Page, bool) {
	if isLoggedIn {
		return "", false
	}
	page := models.PageFromPath(path)
	if page == models.PageLogin || page == models.PageRegister {
		return "", false
	}
	if restrictedPages[page] {
		return models.PageLogin, true
	}
	return "", false
}
