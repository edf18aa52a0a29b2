package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"nabrasa-storefront/internal/handler/api"
	"nabrasa-storefront/internal/handler/middleware"
	"nabrasa-storefront/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

type Handlers struct {
	Catalog  *api.CatalogHandler
	Cart     *api.CartHandler
	Checkout *api.CheckoutHandler
}

func NewRouter(engine *gin.Engine, cfg config.Config, logger *middleware.Logger, h Handlers) {
	setupMiddleware(engine, cfg, logger)
	setupRoutes(engine, h)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config, logger *middleware.Logger) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.Session(cfg.Session))
	engine.Use(logger.LoggingMiddleware())
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, h Handlers) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	{
		addRoutes(apiGroup, []route{
			{Method: http.MethodGet, Path: "/catalog", Handler: h.Catalog.GetCatalog},
			{Method: http.MethodGet, Path: "/products/:id", Handler: h.Catalog.GetProduct},
			{Method: http.MethodPost, Path: "/products/:id/preview", Handler: h.Catalog.PreviewProduct},
		})

		cartGroup := apiGroup.Group("/cart")
		addRoutes(cartGroup, []route{
			{Method: http.MethodGet, Path: "", Handler: h.Cart.Get},
			{Method: http.MethodDelete, Path: "", Handler: h.Cart.Clear},
			{Method: http.MethodPost, Path: "/lines", Handler: h.Cart.AddLine},
			{Method: http.MethodPatch, Path: "/lines/:index", Handler: h.Cart.UpdateLine},
			{Method: http.MethodDelete, Path: "/lines/:index", Handler: h.Cart.RemoveLine},
			{Method: http.MethodPut, Path: "/delivery", Handler: h.Cart.SetDelivery},
			{Method: http.MethodPost, Path: "/coupon", Handler: h.Cart.ApplyCoupon},
			{Method: http.MethodPost, Path: "/checkout", Handler: h.Checkout.Checkout, Mw: []gin.HandlerFunc{middleware.NoStore()}},
		})
	}
}

// @Summary Health check
// @Description Check if the service is healthy
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Service is healthy",
	})
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		h := r.Handler
		if len(r.Mw) > 0 {
			h = chainHandlers(append(r.Mw, r.Handler)...)
		}
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, h)
		case http.MethodPost:
			g.POST(r.Path, h)
		case http.MethodPut:
			g.PUT(r.Path, h)
		case http.MethodPatch:
			g.PATCH(r.Path, h)
		case http.MethodDelete:
			g.DELETE(r.Path, h)
		default:
			g.Any(r.Path, h)
		}
	}
}

func chainHandlers(hs ...gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		for _, h := range hs {
			h(c)
			if c.IsAborted() {
				return
			}
		}
	}
}
