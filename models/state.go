package models

import "html/template"

// State is one profile's snapshot handed to every view on refresh.
type State struct {
	Page     Page
	Cart     Cart
	Wishlist Wishlist
	Users    RegisteredUsers
	Session  SessionStatus
	Catalog  []Product
}

// RefreshResult is the output of one unified refresh.
type RefreshResult struct {
	Page     Page                     `json:"page"`
	Regions  map[string]template.HTML `json:"regions"`
	Redirect Page                     `json:"redirect,omitempty"`
}
