package routes

import (
	"storefront-service/controllers"
	"storefront-service/middleware"

	"github.com/gin-gonic/gin"
)

// RegisterStorefrontRoutes sets up the page and event routes, all scoped to
// the visitor's profile cookie.
func RegisterStorefrontRoutes(r *gin.Engine, sc *controllers.StorefrontController, secureCookie bool) {
	storefront := r.Group("")
	storefront.Use(middleware.ProfileMiddleware(secureCookie))

	storefront.GET("/pages/:page", sc.RenderPage)
	storefront.POST("/events", sc.HandleEvent)
}
