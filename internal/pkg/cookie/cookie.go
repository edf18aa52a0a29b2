package cookie

import (
	"net/http"

	"nabrasa-storefront/internal/pkg/config"

	"github.com/gin-gonic/gin"
)

func SetSessionCookie(c *gin.Context, cfg config.SessionConfig, sessionID string) {
	c.SetSameSite(getSameSite(cfg.SameSite))

	c.SetCookie(
		cfg.CookieName,
		sessionID,
		int(cfg.TTL.Seconds()),
		"/",
		cfg.Domain,
		cfg.Secure,
		true, // HttpOnly
	)
}

func GetSessionID(c *gin.Context, cfg config.SessionConfig) string {
	id, _ := c.Cookie(cfg.CookieName)
	return id
}

func getSameSite(sameSite string) http.SameSite {
	switch sameSite {
	case "Strict":
		return http.SameSiteStrictMode
	case "None":
		return http.SameSiteNoneMode
	default:
		return http.SameSiteLaxMode
	}
}
