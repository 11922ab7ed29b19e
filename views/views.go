package views

import (
	"bytes"
	"fmt"
	"html/template"

	"storefront-service/models"
	"storefront-service/services"

	"go.uber.org/zap"
)

// Region names, matching the element ids of the page containers.
const (
	RegionHeader           = "header"
	RegionProductGrid      = "product-grid"
	RegionCartItems        = "cart-items"
	RegionCartTotals       = "cart-totals"
	RegionOrderSummary     = "order-summary"
	RegionCheckoutTotals   = "checkout-totals"
	RegionWishlist         = "wishlist"
	RegionAccountDashboard = "account-dashboard"
)

// Static dashboard counters; they are not backed by any record.
const (
	mockTotalOrders      = 12
	mockOrdersProcessing = 2
	mockProductsReviewed = 3
	mockSavedAddresses   = 2
)

// view renders one named template from a projection of the state.
type view struct {
	region  string
	project func(models.State) any
	logger  *zap.Logger
}

func (v view) Region() string { return v.region }

// Render replaces the whole region, so stale nodes never accumulate.
func (v view) Render(state models.State) template.HTML {
	var buf bytes.Buffer
	if err := templates.ExecuteTemplate(&buf, v.region, v.project(state)); err != nil {
		v.logger.Error("view render failed", zap.String("region", v.region), zap.Error(err))
		return ""
	}
	return template.HTML(buf.String())
}

func Header(logger *zap.Logger) services.View {
	return view{RegionHeader, projectHeader, logger}
}

func ProductGrid(logger *zap.Logger) services.View {
	return view{RegionProductGrid, projectProductGrid, logger}
}

func CartItems(logger *zap.Logger) services.View {
	return view{RegionCartItems, projectCartItems, logger}
}

func CartTotals(logger *zap.Logger) services.View {
	return view{RegionCartTotals, projectTotals, logger}
}

func OrderSummary(logger *zap.Logger) services.View {
	return view{RegionOrderSummary, projectOrderSummary, logger}
}

func CheckoutTotals(logger *zap.Logger) services.View {
	return view{RegionCheckoutTotals, projectTotals, logger}
}

func Wishlist(logger *zap.Logger) services.View {
	return view{RegionWishlist, projectWishlist, logger}
}

func AccountDashboard(logger *zap.Logger) services.View {
	return view{RegionAccountDashboard, projectDashboard, logger}
}

// ForPage returns the ViewSet listing the views present on each page. Every
// page carries the header.
func ForPage(logger *zap.Logger) services.ViewSet {
	return func(page models.Page) []services.View {
		out := []services.View{Header(logger)}
		switch page {
		case models.PageHome, models.PageProducts:
			out = append(out, ProductGrid(logger))
		case models.PageCart:
			out = append(out, CartItems(logger), CartTotals(logger))
		case models.PageCheckout:
			out = append(out, OrderSummary(logger), CheckoutTotals(logger))
		case models.PageWishlist:
			out = append(out, Wishlist(logger))
		case models.PageAccount:
			out = append(out, AccountDashboard(logger))
		}
		return out
	}
}

type headerData struct {
	UserLink        string
	CartLabel       string
	CartDisplay     string
	WishlistLabel   string
	WishlistDisplay string
}

func display(visible bool) string {
	if visible {
		return "inline-block"
	}
	return "none"
}

func pageLink(p models.Page) string { return string(p) + ".html" }

func projectHeader(s models.State) any {
	cartLabel, cartVisible := services.BadgeLabel(services.CartCount(s.Cart))
	wishLabel, wishVisible := services.BadgeLabel(len(s.Wishlist))
	link := pageLink(models.PageLogin)
	if s.Session.IsLoggedIn {
		link = pageLink(models.PageAccount)
	}
	return headerData{
		UserLink:        link,
		CartLabel:       cartLabel,
		CartDisplay:     display(cartVisible),
		WishlistLabel:   wishLabel,
		WishlistDisplay: display(wishVisible),
	}
}

type productData struct {
	Name       string
	Price      string
	PriceLabel string
	Img        string
	Icon       string
}

func priceAttr(price float64) string { return fmt.Sprintf("%.2f", price) }

// projectProductGrid marks catalog entries already on the wishlist with the
// solid heart icon.
func projectProductGrid(s models.State) any {
	out := make([]productData, 0, len(s.Catalog))
	for _, p := range s.Catalog {
		icon := "far"
		if services.InWishlist(s.Wishlist, p.Name) {
			icon = "fas"
		}
		out = append(out, productData{
			Name:       p.Name,
			Price:      priceAttr(p.Price),
			PriceLabel: services.FormatMoney(p.Price),
			Img:        p.Img,
			Icon:       icon,
		})
	}
	return out
}

type cartLine struct {
	Name       string
	Img        string
	PriceLabel string
	Quantity   int
	LineTotal  string
}

func cartLines(cart models.Cart) []cartLine {
	out := make([]cartLine, 0, len(cart))
	for _, item := range cart {
		out = append(out, cartLine{
			Name:       item.Name,
			Img:        item.Img,
			PriceLabel: services.FormatMoney(item.Price),
			Quantity:   item.Quantity,
			LineTotal:  services.FormatMoney(item.Price * float64(item.Quantity)),
		})
	}
	return out
}

func projectCartItems(s models.State) any    { return cartLines(s.Cart) }
func projectOrderSummary(s models.State) any { return cartLines(s.Cart) }

type totalsData struct {
	Subtotal   string
	Shipping   string
	GrandTotal string
}

func projectTotals(s models.State) any {
	t := services.ComputeTotals(s.Cart)
	return totalsData{
		Subtotal:   services.FormatMoney(t.Subtotal),
		Shipping:   services.FormatMoney(t.Shipping),
		GrandTotal: services.FormatMoney(t.GrandTotal),
	}
}

func projectWishlist(s models.State) any {
	out := make([]productData, 0, len(s.Wishlist))
	for _, item := range s.Wishlist {
		out = append(out, productData{
			Name:       item.Name,
			Price:      priceAttr(item.Price),
			PriceLabel: services.FormatMoney(item.Price),
			Img:        item.Img,
		})
	}
	return out
}

type dashboardData struct {
	LoggedIn         bool
	Name             string
	Email            string
	TotalOrders      int
	OrdersProcessing int
	ProductsReviewed int
	SavedAddresses   int
	WishlistCount    int
}

func projectDashboard(s models.State) any {
	return dashboardData{
		LoggedIn:         s.Session.IsLoggedIn,
		Name:             s.Session.Name,
		Email:            s.Session.Email,
		TotalOrders:      mockTotalOrders,
		OrdersProcessing: mockOrdersProcessing,
		ProductsReviewed: mockProductsReviewed,
		SavedAddresses:   mockSavedAddresses,
		WishlistCount:    len(s.Wishlist),
	}
}
