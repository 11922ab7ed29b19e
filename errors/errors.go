package errors

import (
	"encoding/json"
	stderrors "errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
)

// Error represents an application error
type Error struct {
	Code    int    `json:"code"`
	Kind    string `json:"kind"`
	Message string `json:"message"`
	Err     error  `json:"-"`
}

// Error implements the error interface
func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap returns the wrapped error
func (e *Error) Unwrap() error {
	return e.Err
}

// Is matches application errors by kind so wrapped copies still compare equal
// to their sentinel.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return e.Kind != "" && e.Kind == t.Kind
}

// JSON returns the error as a JSON string
func (e *Error) JSON() string {
	b, _ := json.Marshal(e)
	return string(b)
}

// Wrap returns a copy of e carrying err as its cause.
func (e *Error) Wrap(err error) *Error {
	return &Error{Code: e.Code, Kind: e.Kind, Message: e.Message, Err: err}
}

// New creates a new Error
func New(code int, kind, message string, err error) *Error {
	return &Error{
		Code:    code,
		Kind:    kind,
		Message: message,
		Err:     err,
	}
}

// Common error types
var (
	ErrBadRequest       = New(http.StatusBadRequest, "BadRequest", "Bad request", nil)
	ErrUnknownAction    = New(http.StatusBadRequest, "UnknownAction", "Unknown action", nil)
	ErrInternalServer   = New(http.StatusInternalServerError, "InternalServer", "Internal server error", nil)
	ErrStoreUnavailable = New(http.StatusServiceUnavailable, "StoreUnavailable", "Storage unavailable", nil)
)

// Record and interaction errors. MalformedStoredRecord and
// MissingProductAttributes are diagnostics only and never reach the user.
var (
	ErrMalformedStoredRecord    = New(http.StatusOK, "MalformedStoredRecord", "Stored record is malformed", nil)
	ErrMissingProductAttributes = New(http.StatusOK, "MissingProductAttributes", "Missing product data attributes", nil)
	ErrInvalidQuantity          = New(http.StatusUnprocessableEntity, "InvalidQuantity", "Quantity must be a whole number of at least 1", nil)
	ErrEmptyCart                = New(http.StatusUnprocessableEntity, "EmptyCart", "Your cart is empty. Please add items before placing an order.", nil)
)

// Authentication error types
var (
	ErrMissingCredentials     = New(http.StatusBadRequest, "MissingCredentials", "Please enter both email and password.", nil)
	ErrInvalidCredentials     = New(http.StatusUnauthorized, "InvalidCredentials", "Login failed. Invalid email or password.", nil)
	ErrEmailRequired          = New(http.StatusBadRequest, "EmailRequired", "Please enter an email address.", nil)
	ErrPasswordMismatch       = New(http.StatusBadRequest, "PasswordMismatch", "Password and Confirm Password do not match!", nil)
	ErrPasswordTooShort       = New(http.StatusBadRequest, "PasswordTooShort", "Password must be at least 6 characters long.", nil)
	ErrEmailAlreadyRegistered = New(http.StatusConflict, "EmailAlreadyRegistered", "Registration failed. This email is already registered.", nil)
)

// As returns the application error in err's chain, or ErrInternalServer
// wrapping err when there is none.
func As(err error) *Error {
	var appErr *Error
	if stderrors.As(err, &appErr) {
		return appErr
	}
	return ErrInternalServer.Wrap(err)
}

// Error middleware for Gin
func ErrorMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) > 0 && !c.Writer.Written() {
			appErr := As(c.Errors.Last().Err)
			c.JSON(appErr.Code, appErr)
			c.Abort()
		}
	}
}
