package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/Kariqs/hanythrift-api/middlewares"
	"github.com/Kariqs/hanythrift-api/services"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Standard response messages
const (
	msgInvalidCredentials  = "Incorrect email or password"
	msgInvalidToken        = "Could not validate credentials"
	msgEmailTaken          = "Email already registered"
	msgNotEnoughRights     = "Not enough permissions"
	msgProductNotFound     = "Product not found"
	msgCartItemNotFound    = "Cart item not found"
	msgImageStoreMissing   = "Image storage is not configured"
	msgInternalServerError = "Internal server error"
)

func sendJSONResponse(ctx *gin.Context, status int, data any) {
	ctx.JSON(status, data)
}

func sendErrorResponse(ctx *gin.Context, status int, message string) {
	if status == http.StatusUnauthorized {
		middlewares.AbortUnauthorized(ctx, message)
		return
	}
	ctx.AbortWithStatusJSON(status, gin.H{"detail": message})
}

// respondWithError maps service errors onto HTTP statuses. notFound is the
// message used for ErrNotFound on this endpoint.
func respondWithError(ctx *gin.Context, err error, notFound string) {
	switch {
	case errors.Is(err, services.ErrUnauthorized), errors.Is(err, services.ErrInvalidToken):
		sendErrorResponse(ctx, http.StatusUnauthorized, msgInvalidToken)
	case errors.Is(err, services.ErrForbidden):
		sendErrorResponse(ctx, http.StatusForbidden, msgNotEnoughRights)
	case errors.Is(err, services.ErrNotFound):
		sendErrorResponse(ctx, http.StatusNotFound, notFound)
	case errors.Is(err, services.ErrConflict):
		sendErrorResponse(ctx, http.StatusBadRequest, msgEmailTaken)
	case errors.Is(err, services.ErrInvalidInput):
		sendErrorResponse(ctx, http.StatusUnprocessableEntity, err.Error())
	case errors.Is(err, services.ErrUnavailable):
		sendErrorResponse(ctx, http.StatusServiceUnavailable, msgImageStoreMissing)
	default:
		middlewares.Logger(ctx).Error("request failed", zap.Error(err))
		sendErrorResponse(ctx, http.StatusInternalServerError, msgInternalServerError)
	}
}

// respondWithBindError reports a request that failed binding or validation.
func respondWithBindError(ctx *gin.Context, err error) {
	sendErrorResponse(ctx, http.StatusUnprocessableEntity, err.Error())
}

func idParam(ctx *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(ctx.Param(name), 10, 0)
	if err != nil {
		sendErrorResponse(ctx, http.StatusUnprocessableEntity, "invalid "+name)
		return 0, false
	}
	return uint(id), true
}
