package controllers

import (
	"errors"
	"net/http"

	apperrors "storefront-service/errors"
	"storefront-service/logger"
	"storefront-service/middleware"
	"storefront-service/models"
	"storefront-service/services"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

var errProfileNotResolved = errors.New("profile not resolved")

// StorefrontController handles page renders and interaction events.
// Failures without a result are left to apperrors.ErrorMiddleware.
type StorefrontController struct {
	storefrontService services.StorefrontService
}

// NewStorefrontController creates a new StorefrontController.
func NewStorefrontController(storefrontService services.StorefrontService) *StorefrontController {
	return &StorefrontController{storefrontService: storefrontService}
}

// RenderPage handles GET /pages/:page.
func (sc *StorefrontController) RenderPage(ctx *gin.Context) {
	profileID, ok := middleware.GetProfileID(ctx)
	if !ok {
		fail(ctx, apperrors.ErrBadRequest.Wrap(errProfileNotResolved))
		return
	}

	result, err := sc.storefrontService.RenderPage(ctx.Request.Context(), profileID, "/pages/"+ctx.Param("page"))
	if err != nil {
		fail(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, result)
}

// HandleEvent handles POST /events. Rejected interactions still carry the
// refreshed regions so the page can re-render.
func (sc *StorefrontController) HandleEvent(ctx *gin.Context) {
	profileID, ok := middleware.GetProfileID(ctx)
	if !ok {
		fail(ctx, apperrors.ErrBadRequest.Wrap(errProfileNotResolved))
		return
	}

	var evt models.Event
	if err := ctx.ShouldBindJSON(&evt); err != nil {
		fail(ctx, apperrors.ErrBadRequest.Wrap(err))
		return
	}

	result, err := sc.storefrontService.Dispatch(ctx.Request.Context(), profileID, evt)
	if err != nil && result == nil {
		fail(ctx, err)
		return
	}
	if err != nil {
		ctx.JSON(apperrors.As(err).Code, result)
		return
	}

	ctx.JSON(http.StatusOK, result)
}

// fail records err for the error middleware, logging server-side faults.
func fail(ctx *gin.Context, err error) {
	if appErr := apperrors.As(err); appErr.Code >= http.StatusInternalServerError {
		logger.With(ctx, logger.Log).Error("storefront request failed",
			zap.String("kind", appErr.Kind),
			zap.Error(err),
		)
	}
	_ = ctx.Error(err)
}
