package services

import (
	"strings"
	"unicode"
	"unicode/utf8"

	apperrors "storefront-service/errors"
	"storefront-service/models"
)

// MinPasswordLength is counted in characters, not bytes.
const MinPasswordLength = 6

// DisplayName derives a user's name from the local part of the email with
// its first letter upper-cased. An empty local part falls back to the full
// email.
func DisplayName(email string) string {
	local, _, _ := strings.Cut(email, "@")
	if local == "" {
		local = email
	}
	r, size := utf8.DecodeRuneInString(local)
	if r == utf8.RuneError {
		return local
	}
	return string(unicode.ToUpper(r)) + local[size:]
}

// Login resolves credentials to a logged-in session. In mock mode any
// non-blank pair is accepted; otherwise a registered user must match email
// and password exactly. The session snapshots the current cart and wishlist
// counts.
func Login(creds models.Credentials, users models.RegisteredUsers, mockMode bool, cart models.Cart, wishlist models.Wishlist) (models.SessionStatus, error) {
	var name string

	if mockMode {
		if strings.TrimSpace(creds.Email) == "" || strings.TrimSpace(creds.Password) == "" {
			return models.GuestSession(), apperrors.ErrMissingCredentials
		}
		name = DisplayName(creds.Email)
	} else {
		found := false
		for _, u := range users {
			if u.Email == creds.Email && u.Password == creds.Password {
				name = u.Name
				found = true
				break
			}
		}
		if !found || creds.Email == "" {
			return models.GuestSession(), apperrors.ErrInvalidCredentials
		}
		if name == "" {
			name = DisplayName(creds.Email)
		}
	}

	return models.SessionStatus{
		IsLoggedIn:    true,
		Name:          name,
		Email:         creds.Email,
		WishlistCount: len(wishlist),
		CartCount:     CartCount(cart),
	}, nil
}

// Register validates the form and appends a new user. The input slice is
// not modified.
func Register(form models.RegisterForm, users models.RegisteredUsers) (models.RegisteredUsers, error) {
	if strings.TrimSpace(form.Email) == "" {
		return users, apperrors.ErrEmailRequired
	}
	if form.Password != form.ConfirmPassword {
		return users, apperrors.ErrPasswordMismatch
	}
	if utf8.RuneCountInString(form.Password) < MinPasswordLength {
		return users, apperrors.ErrPasswordTooShort
	}
	for _, u := range users {
		if u.Email == form.Email {
			return users, apperrors.ErrEmailAlreadyRegistered
		}
	}

	next := make(models.RegisteredUsers, len(users), len(users)+1)
	copy(next, users)
	return append(next, models.RegisteredUser{
		Email:    form.Email,
		Password: form.Password,
		Name:     DisplayName(form.Email),
	}), nil
}

// Logout returns the logged-out default session.
func Logout() models.SessionStatus {
	return models.GuestSession()
}
