package views

import "html/template"

var templates = template.Must(template.New("views").Parse(`
{{define "header"}}<a id="user-icon-link" class="fas fa-user" href="{{.UserLink}}"></a>
<a href="wishlist.html" class="fas fa-heart"><span id="wishlist-count" class="badge" style="display: {{.WishlistDisplay}}">{{.WishlistLabel}}</span></a>
<a href="cart.html" class="fas fa-shopping-cart"><span id="cart-count" class="badge" style="display: {{.CartDisplay}}">{{.CartLabel}}</span></a>{{end}}

{{define "product-grid"}}<div class="box-container">{{range .}}
<div class="box" data-name="{{.Name}}" data-price="{{.Price}}" data-img="{{.Img}}">
	<i class="{{.Icon}} fa-heart add-to-wishlist-btn"></i>
	<img src="{{.Img}}" alt="{{.Name}}">
	<div class="content">
		<h3>{{.Name}}</h3>
		<div class="price">{{.PriceLabel}}</div>
		<a href="#" class="btn add-to-cart-btn">add to cart</a>
	</div>
</div>{{end}}
</div>{{end}}

{{define "cart-items"}}{{if not .}}<p class="empty-message">Your cart is empty.</p>{{else}}{{range .}}
<div class="box" data-name="{{.Name}}">
	<i class="fas fa-times remove-cart-item" data-name="{{.Name}}"></i>
	<img src="{{.Img}}" alt="{{.Name}}">
	<div class="content">
		<h3>{{.Name}}</h3>
		<span class="price">{{.PriceLabel}}</span>
		<span class="quantity">qty: <input type="number" min="1" value="{{.Quantity}}" class="qty-input" data-name="{{.Name}}"></span>
	</div>
</div>{{end}}{{end}}{{end}}

{{define "cart-totals"}}<span id="cart-subtotal">{{.Subtotal}}</span>{{end}}

{{define "order-summary"}}{{if not .}}<p class="empty-message">Your cart is empty. Please return to the products page.</p>{{else}}{{range .}}
<div class="summary-item-line">
	<span class="summary-name">{{.Name}} <span class="summary-qty">x {{.Quantity}}</span></span>
	<span class="summary-price">{{.LineTotal}}</span>
</div>{{end}}{{end}}{{end}}

{{define "checkout-totals"}}<span id="checkout-subtotal">{{.Subtotal}}</span>
<span id="checkout-shipping">{{.Shipping}}</span>
<span id="checkout-total">{{.GrandTotal}}</span>{{end}}

{{define "wishlist"}}{{if not .}}<p class="empty-message">Your wishlist is empty. Start adding some favorites!</p>{{else}}{{range .}}
<div class="box" data-name="{{.Name}}" data-price="{{.Price}}" data-img="{{.Img}}">
	<i class="fas fa-times remove-wishlist-item" data-name="{{.Name}}"></i>
	<img src="{{.Img}}" alt="{{.Name}}">
	<div class="content">
		<h3>{{.Name}}</h3>
		<div class="price">{{.PriceLabel}}</div>
		<a href="#" class="btn move-to-cart-btn" data-name="{{.Name}}">add to cart</a>
	</div>
</div>{{end}}{{end}}{{end}}

{{define "account-dashboard"}}{{if .LoggedIn}}<h3 id="profile-username">Welcome, {{.Name}}!</h3>
<p id="profile-email">{{.Email}}</p>
<div class="status-cards">
	<span id="total-orders">{{.TotalOrders}}</span>
	<span id="orders-processing">{{.OrdersProcessing}}</span>
	<span id="products-reviewed">{{.ProductsReviewed}}</span>
	<span id="saved-addresses">{{.SavedAddresses}}</span>
	<span id="items-in-wishlist">{{.WishlistCount}}</span>
</div>
<a href="#" id="logout-btn" class="btn" style="display: inline-block">logout</a>{{else}}<h3 id="profile-username">Welcome, Guest!</h3>
<p id="profile-email">Please log in to view your details.</p>
<a href="#" id="logout-btn" class="btn" style="display: none">logout</a>{{end}}{{end}}
`))
