package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	// ProfileCookie identifies the visitor's profile across requests.
	ProfileCookie = "profile_id"
	// ProfileIDKey is the gin context key holding the resolved profile ID.
	ProfileIDKey = "profileID"

	profileCookieMaxAge = 365 * 24 * 60 * 60
)

// ProfileMiddleware resolves the visitor's profile from its cookie, issuing
// a fresh one when the cookie is missing or not a UUID.
func ProfileMiddleware(secure bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := c.Cookie(ProfileCookie)
		if err != nil || uuid.Validate(id) != nil {
			id = uuid.NewString()
			c.SetSameSite(http.SameSiteLaxMode)
			c.SetCookie(ProfileCookie, id, profileCookieMaxAge, "/", "", secure, true)
		}
		c.Set(ProfileIDKey, id)
		c.Next()
	}
}

// GetProfileID returns the profile ID set by ProfileMiddleware.
func GetProfileID(c *gin.Context) (string, bool) {
	id := c.GetString(ProfileIDKey)
	return id, id != ""
}
