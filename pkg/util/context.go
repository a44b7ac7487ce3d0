package util

import (
	"github.com/gin-gonic/gin"
)

const (
	// UserIDKey is the gin context key holding the authenticated caller id.
	UserIDKey = "user_id"
	// UsernameKey is the gin context key holding the authenticated username.
	UsernameKey = "username"

	UserIDHeader   = "X-User-Id"
	UsernameHeader = "X-Username"
)

// GetUserID returns the caller id set by the auth middleware, falling back to the X-User-Id header.
func GetUserID(c *gin.Context) (string, bool) {
	if v := c.GetString(UserIDKey); v != "" {
		return v, true
	}
	if v := c.GetHeader(UserIDHeader); v != "" {
		return v, true
	}
	return "", false
}

// GetUsername extracts username from the context or the X-Username header.
func GetUsername(c *gin.Context) (string, bool) {
	if v := c.GetString(UsernameKey); v != "" {
		return v, true
	}
	if v := c.GetHeader(UsernameHeader); v != "" {
		return v, true
	}
	return "", false
}
