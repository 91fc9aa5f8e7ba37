package middleware

import (
	"github.com/gin-gonic/gin"

	"kioku/src/app/http/response"
)

const (
	userIDHeader    = "X-User-Id"
	userEmailHeader = "X-User-Email"

	// UserIDKey and UserEmailKey are the context keys the identity is
	// stored under for handlers to read.
	UserIDKey    = "user_id"
	UserEmailKey = "user_email"
)

// Identity reads the identity headers set by the upstream auth proxy and
// stores them in the request context. If required is true, requests without
// an identity are rejected with 401; otherwise the headers are optional and
// stored when present.
func Identity(required bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := GetRequestID(c)

		userID := c.GetHeader(userIDHeader)
		email := c.GetHeader(userEmailHeader)

		if required && userID == "" {
			response.Unauthorized(c, "missing X-User-Id header", requestID)
			c.Abort()
			return
		}

		if userID != "" {
			c.Set(UserIDKey, userID)
		}
		if email != "" {
			c.Set(UserEmailKey, email)
		}
		c.Next()
	}
}

// GetUserID retrieves the authenticated user id from the Gin context.
// Returns empty string if the request carried no identity.
func GetUserID(c *gin.Context) string {
	return c.GetString(UserIDKey)
}

// GetUserEmail retrieves the authenticated user email from the Gin context.
func GetUserEmail(c *gin.Context) string {
	return c.GetString(UserEmailKey)
}
