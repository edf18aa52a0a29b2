package api

import (
	"net/http"

	reqdto "nabrasa-storefront/internal/handler/dto/request"
	resdto "nabrasa-storefront/internal/handler/dto/response"
	"nabrasa-storefront/internal/handler/httperr"
	"nabrasa-storefront/internal/usecase/commands"
	"nabrasa-storefront/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type CatalogHandler struct {
	q    queries.CatalogQueries
	cmds commands.CartCommands
}

func NewCatalogHandler(q queries.CatalogQueries, cmds commands.CartCommands) *CatalogHandler {
	return &CatalogHandler{q: q, cmds: cmds}
}

// @Summary Get catalog
// @Description Versioned menu with size groups and trio drink options
// @Tags catalog
// @Produce json
// @Success 200 {object} resdto.CatalogResponse
// @Router /api/catalog [get]
func (h *CatalogHandler) GetCatalog(c *gin.Context) {
	view, err := h.q.Catalog(c.Request.Context())
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromCatalogView(view))
}

// @Summary Get product
// @Tags catalog
// @Produce json
// @Param id path string true "Product ID"
// @Success 200 {object} resdto.ProductResponse
// @Failure 404 {object} httperr.Response
// @Router /api/products/{id} [get]
func (h *CatalogHandler) GetProduct(c *gin.Context) {
	view, err := h.q.Product(c.Request.Context(), c.Param("id"))
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromProductView(view))
}

// @Summary Preview a product configuration
// @Description Live price and missing choices of a configuration, without adding it to the cart
// @Tags catalog
// @Accept json
// @Produce json
// @Param id path string true "Product ID"
// @Param request body reqdto.PreviewLineRequest true "Choices"
// @Success 200 {object} resdto.PreviewResponse
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /api/products/{id}/preview [post]
func (h *CatalogHandler) PreviewProduct(c *gin.Context) {
	var req reqdto.PreviewLineRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Requisição inválida", nil)
		return
	}
	view, err := h.cmds.PreviewLine(c.Request.Context(), req.ToCommand(c.Param("id")))
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromPreviewView(view))
}
