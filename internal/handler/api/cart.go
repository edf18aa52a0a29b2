package api

import (
	"net/http"
	"strconv"

	reqdto "nabrasa-storefront/internal/handler/dto/request"
	resdto "nabrasa-storefront/internal/handler/dto/response"
	"nabrasa-storefront/internal/handler/httperr"
	"nabrasa-storefront/internal/handler/middleware"
	"nabrasa-storefront/internal/usecase/commands"
	"nabrasa-storefront/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

const msgBadRequest = "Requisição inválida"

type CartHandler struct {
	cmds commands.CartCommands
	q    queries.CartQueries
}

func NewCartHandler(cmds commands.CartCommands, q queries.CartQueries) *CartHandler {
	return &CartHandler{cmds: cmds, q: q}
}

// @Summary Get cart
// @Description Current cart with totals. Pending notices are returned once.
// @Tags cart
// @Produce json
// @Success 200 {object} resdto.CartResponse
// @Router /api/cart [get]
func (h *CartHandler) Get(c *gin.Context) {
	view, err := h.q.ViewAndDrain(c.Request.Context(), middleware.GetSessionID(c))
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromCartView(view))
}

// @Summary Add line
// @Description Configure a product and add it to the cart as a new line
// @Tags cart
// @Accept json
// @Produce json
// @Param request body reqdto.AddLineRequest true "Line"
// @Success 201 {object} resdto.AddLineResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /api/cart/lines [post]
func (h *CartHandler) AddLine(c *gin.Context) {
	var req reqdto.AddLineRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, msgBadRequest, nil)
		return
	}
	res, err := h.cmds.AddLine(c.Request.Context(), middleware.GetSessionID(c), req.ToCommand())
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resdto.FromAddLineResult(res))
}

// @Summary Set line quantity
// @Description Quantities below one leave the line unchanged
// @Tags cart
// @Accept json
// @Produce json
// @Param index path int true "Line index"
// @Param request body reqdto.UpdateLineRequest true "Quantity"
// @Success 200 {object} resdto.CartResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/cart/lines/{index} [patch]
func (h *CartHandler) UpdateLine(c *gin.Context) {
	index, ok := lineIndex(c)
	if !ok {
		return
	}
	var req reqdto.UpdateLineRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, msgBadRequest, nil)
		return
	}
	view, err := h.cmds.SetQuantity(c.Request.Context(), middleware.GetSessionID(c), index, *req.Quantity)
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromCartView(view))
}

// @Summary Remove line
// @Tags cart
// @Produce json
// @Param index path int true "Line index"
// @Success 200 {object} resdto.CartResponse
// @Failure 404 {object} httperr.Response
// @Router /api/cart/lines/{index} [delete]
func (h *CartHandler) RemoveLine(c *gin.Context) {
	index, ok := lineIndex(c)
	if !ok {
		return
	}
	view, err := h.cmds.RemoveLine(c.Request.Context(), middleware.GetSessionID(c), index)
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromCartView(view))
}

// @Summary Clear cart
// @Tags cart
// @Produce json
// @Success 200 {object} resdto.CartResponse
// @Router /api/cart [delete]
func (h *CartHandler) Clear(c *gin.Context) {
	view, err := h.cmds.Clear(c.Request.Context(), middleware.GetSessionID(c))
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromCartView(view))
}

// @Summary Set delivery type
// @Tags cart
// @Accept json
// @Produce json
// @Param request body reqdto.DeliveryRequest true "pickup or delivery"
// @Success 200 {object} resdto.CartResponse
// @Failure 400 {object} httperr.Response
// @Router /api/cart/delivery [put]
func (h *CartHandler) SetDelivery(c *gin.Context) {
	var req reqdto.DeliveryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, msgBadRequest, nil)
		return
	}
	view, err := h.cmds.SetDelivery(c.Request.Context(), middleware.GetSessionID(c), req.Delivery)
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromCartView(view))
}

// @Summary Apply coupon
// @Description A rejected coupon answers 200 with valid=false and clears the previous discount
// @Tags cart
// @Accept json
// @Produce json
// @Param request body reqdto.CouponRequest true "Coupon code"
// @Success 200 {object} resdto.CouponResponse
// @Failure 422 {object} httperr.Response
// @Router /api/cart/coupon [post]
func (h *CartHandler) ApplyCoupon(c *gin.Context) {
	var req reqdto.CouponRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, msgBadRequest, nil)
		return
	}
	res, err := h.cmds.ApplyCoupon(c.Request.Context(), middleware.GetSessionID(c), req.Code)
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromCouponResult(res))
}

func lineIndex(c *gin.Context) (int, bool) {
	index, err := strconv.Atoi(c.Param("index"))
	if err != nil || index < 0 {
		if err == nil {
			err = strconv.ErrRange
		}
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Índice de item inválido", nil)
		return 0, false
	}
	return index, true
}
