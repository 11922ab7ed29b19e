package models

// RecordKind names one of the four independently persisted records. The
// values are the logical storage keys.
type RecordKind string

const (
	RecordCart     RecordKind = "cartItems"
	RecordUsers    RecordKind = "registeredUsers"
	RecordSession  RecordKind = "userStatus"
	RecordWishlist RecordKind = "wishlistItems"
)
