package models

import "time"

// Action is the tag of an interaction event.
type Action string

const (
	ActionAddToCart          Action = "add_to_cart"
	ActionToggleWishlist     Action = "toggle_wishlist"
	ActionRemoveCartItem     Action = "remove_cart_item"
	ActionSetQuantity        Action = "set_quantity"
	ActionRemoveWishlistItem Action = "remove_wishlist_item"
	ActionMoveToCart         Action = "move_to_cart"
	ActionLogin              Action = "login"
	ActionRegister           Action = "register"
	ActionLogout             Action = "logout"
	ActionPlaceOrder         Action = "place_order"
)

// Target carries the raw attributes of the element the user interacted
// with. Values are passed through as strings and parsed by the handler.
type Target struct {
	Name     string `json:"name"`
	Price    string `json:"price"`
	Img      string `json:"img"`
	Quantity string `json:"quantity"`
}

// Event is the structured payload posted for every interaction.
type Event struct {
	Action       Action        `json:"action" binding:"required"`
	Page         string        `json:"page"`
	Target       Target        `json:"target"`
	Credentials  *Credentials  `json:"credentials,omitempty"`
	Registration *RegisterForm `json:"registration,omitempty"`
}

// EventResult is returned for every dispatched event, including rejected
// ones, so the page can always re-render.
type EventResult struct {
	Action        Action         `json:"action"`
	Outcome       string         `json:"outcome"`
	Message       string         `json:"message,omitempty"`
	Error         string         `json:"error,omitempty"`
	ErrorKind     string         `json:"error_kind,omitempty"`
	Revert        *int           `json:"revert,omitempty"`
	ClearPassword bool           `json:"clear_password,omitempty"`
	Redirect      Page           `json:"redirect,omitempty"`
	Refresh       *RefreshResult `json:"refresh,omitempty"`
}

// Outcomes reported in EventResult.
const (
	OutcomeAdded    = "added"
	OutcomeRemoved  = "removed"
	OutcomeUpdated  = "updated"
	OutcomeMoved    = "moved"
	OutcomeRejected = "rejected"
	OutcomeAborted  = "aborted"
	OutcomeNoop     = "noop"
	OutcomeOK       = "ok"
)

// OrderPlacedEvent is published after a successful checkout.
type OrderPlacedEvent struct {
	Event      string    `json:"event"`
	OrderID    string    `json:"order_id"`
	ProfileID  string    `json:"profile_id"`
	Email      string    `json:"email,omitempty"`
	Items      Cart      `json:"items"`
	Subtotal   float64   `json:"subtotal"`
	Shipping   float64   `json:"shipping"`
	GrandTotal float64   `json:"grand_total"`
	Timestamp  time.Time `json:"timestamp"`
}
