package v1

import (
	"net/http"
	"strings"

	"github.com/mahamudh472/GlobalCreoleSociety/internal/pkg/auth"

	"github.com/gin-gonic/gin"
)

// Cookie names used alongside the Authorization header.
const (
	AccessTokenCookie  = "access_token"
	RefreshTokenCookie = "refresh_token"
)

const userIDKey = "userID"

// RequireAuth authenticates the request from a Bearer token or, failing
// that, the access token cookie, and stores the user ID in the context.
func RequireAuth(tokenManager *auth.TokenManager) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		token := bearerToken(ctx)
		if token == "" {
			token, _ = ctx.Cookie(AccessTokenCookie)
		}
		if token == "" {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, ErrorResponse{Message: "authentication required"})
			return
		}

		userID, err := tokenManager.VerifyAccess(token)
		if err != nil {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, ErrorResponse{Message: "invalid or expired token"})
			return
		}

		ctx.Set(userIDKey, userID)
		ctx.Next()
	}
}

func bearerToken(ctx *gin.Context) string {
	header := ctx.GetHeader("Authorization")
	if strings.HasPrefix(header, "Bearer ") {
		return strings.TrimPrefix(header, "Bearer ")
	}
	return ""
}

// CurrentUserID returns the authenticated user ID set by RequireAuth.
func CurrentUserID(ctx *gin.Context) string {
	return ctx.GetString(userIDKey)
}
