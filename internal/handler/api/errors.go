package api

import (
	"net/http"

	"nabrasa-storefront/internal/handler/httperr"
	"nabrasa-storefront/internal/pkg/errs"

	"github.com/gin-gonic/gin"
)

// abortWithUseCaseError maps the sentinel a use case marked its error with to a
// status. The body carries the customer-facing text when one was attached.
func abortWithUseCaseError(c *gin.Context, err error) {
	status := statusFor(err)
	httperr.AbortWithError(c, status, err, errs.UserMessage(err), nil)
}

func statusFor(err error) int {
	switch {
	case errs.Is(err, errs.ErrProductNotFound), errs.Is(err, errs.ErrLineNotFound):
		return http.StatusNotFound
	case errs.Is(err, errs.ErrUnavailable), errs.Is(err, errs.ErrCouponRejected):
		return http.StatusConflict
	case errs.Is(err, errs.ErrDomainValidation),
		errs.Is(err, errs.ErrCapacityExceeded),
		errs.Is(err, errs.ErrEmptyCart):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}
