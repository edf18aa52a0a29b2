package middleware

import (
	"log/slog"
	"net/http"
	"slices"

	"nabrasa-storefront/internal/pkg/config"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// NewCORSMiddleware always lets the session header through so a storefront on
// another origin can keep its cart without cookies.
func NewCORSMiddleware(cfg config.CORSConfig) gin.HandlerFunc {
	corsCfg := cors.Config{
		AllowMethods:     cfg.AllowMethods,
		AllowHeaders:     withHeader(cfg.AllowHeaders, SessionHeader),
		ExposeHeaders:    withHeader(cfg.ExposeHeaders, SessionHeader),
		AllowCredentials: cfg.AllowCredentials,
		MaxAge:           cfg.MaxAge,
	}

	// browsers reject a wildcard origin on credentialed requests
	if slices.Contains(cfg.AllowOrigins, "*") {
		corsCfg.AllowAllOrigins = true
		if corsCfg.AllowCredentials {
			slog.Warn("CORS wildcard origin configured, disabling credentials")
			corsCfg.AllowCredentials = false
		}
	} else {
		corsCfg.AllowOrigins = cfg.AllowOrigins
	}

	slog.Info("CORS middleware initialized",
		"allow_origins", cfg.AllowOrigins,
		"allow_credentials", corsCfg.AllowCredentials)
	return cors.New(corsCfg)
}

func withHeader(headers []string, h string) []string {
	for _, existing := range headers {
		if http.CanonicalHeaderKey(existing) == http.CanonicalHeaderKey(h) {
			return headers
		}
	}
	return append(slices.Clone(headers), h)
}
