package middleware

import (
	"nabrasa-storefront/internal/pkg/config"
	"nabrasa-storefront/internal/pkg/cookie"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	SessionHeader     = "X-Session-ID"
	sessionContextKey = "session_id"
)

// Session resolves the cart session from the cookie, then the header, and
// issues a new id when neither carries a valid one.
func Session(cfg config.SessionConfig) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := cookie.GetSessionID(c, cfg)
		if !validSessionID(id) {
			id = c.GetHeader(SessionHeader)
		}
		if !validSessionID(id) {
			id = uuid.NewString()
		}

		cookie.SetSessionCookie(c, cfg, id)
		c.Header(SessionHeader, id)
		c.Set(sessionContextKey, id)
		c.Next()
	}
}

func GetSessionID(c *gin.Context) string {
	return c.GetString(sessionContextKey)
}

func validSessionID(id string) bool {
	if id == "" {
		return false
	}
	_, err := uuid.Parse(id)
	return err == nil
}
