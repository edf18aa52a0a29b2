package api

import (
	"net/http"

	reqdto "nabrasa-storefront/internal/handler/dto/request"
	resdto "nabrasa-storefront/internal/handler/dto/response"
	"nabrasa-storefront/internal/handler/httperr"
	"nabrasa-storefront/internal/handler/middleware"
	"nabrasa-storefront/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

type CheckoutHandler struct {
	cmds commands.CheckoutCommands
}

func NewCheckoutHandler(cmds commands.CheckoutCommands) *CheckoutHandler {
	return &CheckoutHandler{cmds: cmds}
}

// @Summary Checkout
// @Description Builds the chat message and deep link and empties the cart. With redirect=true the answer is a 303 to the deep link.
// @Tags checkout
// @Accept json
// @Produce json
// @Param redirect query bool false "Answer with a redirect to the deep link"
// @Param request body reqdto.CheckoutRequest true "Checkout details"
// @Success 200 {object} resdto.CheckoutResponse
// @Success 303 "See Other"
// @Failure 409 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /api/cart/checkout [post]
func (h *CheckoutHandler) Checkout(c *gin.Context) {
	var req reqdto.CheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, msgBadRequest, nil)
		return
	}
	res, err := h.cmds.Checkout(c.Request.Context(), middleware.GetSessionID(c), req.ToCommand())
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	if c.Query("redirect") == "true" {
		c.Redirect(http.StatusSeeOther, res.DeepLink)
		return
	}
	c.JSON(http.StatusOK, resdto.FromCheckoutResult(res))
}
