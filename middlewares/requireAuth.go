package middlewares

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/Kariqs/hanythrift-api/models"
	"github.com/Kariqs/hanythrift-api/services"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const userKey = "user"

const (
	msgNotAuthenticated  = "Not authenticated"
	msgInvalidCredential = "Could not validate credentials"
)

type Authenticator interface {
	Authenticate(ctx context.Context, accessToken string) (*models.User, error)
}

// RequireAuth resolves the bearer token to an active user and stores it on
// the context.
func RequireAuth(auth Authenticator) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		token, ok := bearerToken(ctx.GetHeader("Authorization"))
		if !ok {
			AbortUnauthorized(ctx, msgNotAuthenticated)
			return
		}

		user, err := auth.Authenticate(ctx.Request.Context(), token)
		if err != nil {
			if errors.Is(err, services.ErrUnauthorized) {
				AbortUnauthorized(ctx, msgInvalidCredential)
				return
			}
			Logger(ctx).Error("authenticate request", zap.Error(err))
			ctx.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"detail": "Internal server error"})
			return
		}

		ctx.Set(userKey, user)
		ctx.Next()
	}
}

// AbortUnauthorized writes a 401 with the bearer challenge header.
func AbortUnauthorized(ctx *gin.Context, message string) {
	ctx.Header("WWW-Authenticate", "Bearer")
	ctx.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"detail": message})
}

// CurrentUser returns the user set by RequireAuth, or nil.
func CurrentUser(ctx *gin.Context) *models.User {
	v, ok := ctx.Get(userKey)
	if !ok {
		return nil
	}
	user, _ := v.(*models.User)
	return user
}

func bearerToken(header string) (string, bool) {
	scheme, token, found := strings.Cut(strings.TrimSpace(header), " ")
	if !found || !strings.EqualFold(scheme, "bearer") {
		return "", false
	}
	token = strings.TrimSpace(token)
	return token, token != ""
}
