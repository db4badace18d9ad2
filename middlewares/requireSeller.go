package middlewares

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// RequireSeller must run after RequireAuth. Non-sellers get a 403 with detail
// as the message.
func RequireSeller(detail string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		user := CurrentUser(ctx)
		if user == nil {
			AbortUnauthorized(ctx, msgNotAuthenticated)
			return
		}

		if !user.IsSeller {
			ctx.AbortWithStatusJSON(http.StatusForbidden, gin.H{"detail": detail})
			return
		}

		ctx.Next()
	}
}
