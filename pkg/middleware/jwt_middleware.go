package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/LaithTanirah/football/pkg/jwt"
	"github.com/LaithTanirah/football/pkg/util"
	"github.com/gin-gonic/gin"
)

// AccessTokenCookie is read when no Authorization header is present.
const AccessTokenCookie = "access_token"

// AuthMiddleware returns a Gin middleware that validates JWT tokens and injects the caller identity into the request.
func AuthMiddleware(tokenManager jwt.TokenManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString, ok := bearerToken(c)
		if !ok {
			abortUnauthorized(c, "missing or invalid Authorization header")
			return
		}
		claims, err := tokenManager.ValidateAccessToken(c.Request.Context(), tokenString)
		if err != nil {
			switch {
			case errors.Is(err, jwt.ErrTokenExpired):
				abortUnauthorized(c, "access token expired")
			case errors.Is(err, jwt.ErrTokenRevoked):
				abortUnauthorized(c, "access token revoked")
			default:
				abortUnauthorized(c, "invalid access token")
			}
			return
		}
		c.Set(util.UserIDKey, claims.UserID)
		c.Set(util.UsernameKey, claims.Username)
		c.Request.Header.Set(util.UserIDHeader, claims.UserID)
		c.Request.Header.Set(util.UsernameHeader, claims.Username)
		c.Next()
	}
}

func bearerToken(c *gin.Context) (string, bool) {
	if header := c.GetHeader("Authorization"); header != "" {
		if !strings.HasPrefix(header, "Bearer ") {
			return "", false
		}
		token := strings.TrimSpace(strings.TrimPrefix(header, "Bearer "))
		return token, token != ""
	}
	if cookie, err := c.Cookie(AccessTokenCookie); err == nil && cookie != "" {
		return cookie, true
	}
	return "", false
}

func abortUnauthorized(c *gin.Context, message string) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": message, "code": "UNAUTHORIZED"})
}
