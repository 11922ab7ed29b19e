package models

const GuestName = "Guest"

// SessionStatus is the single per-profile login record. The counts are
// snapshots taken at login time; views always recompute live counts.
type SessionStatus struct {
	IsLoggedIn    bool   `json:"isLoggedIn"`
	Name          string `json:"name"`
	Email         string `json:"email"`
	WishlistCount int    `json:"wishlistCount,omitempty" validate:"gte=0"`
	CartCount     int    `json:"cartCount,omitempty" validate:"gte=0"`
}

// GuestSession returns the logged-out default.
func GuestSession() SessionStatus {
	return SessionStatus{IsLoggedIn: false, Name: GuestName, Email: ""}
}
