package errs

import "errors"

// Sentinel errors the usecase layer marks failures with
var (
	// Catalog errors
	ErrProductNotFound = errors.New("product not found")

	// Cart errors
	ErrLineNotFound = errors.New("cart line not found")
	ErrEmptyCart    = errors.New("cart is empty")

	// Coupon errors
	ErrCouponRejected = errors.New("coupon rejected")

	// Validation errors
	ErrDomainValidation = errors.New("domain validation error")
	ErrCapacityExceeded = errors.New("capacity exceeded")
	ErrUnavailable      = errors.New("option unavailable")

	// Operation errors
	ErrStoreOperationFailed = errors.New("store operation failed")
	ErrDispatchQueueFull    = errors.New("dispatch queue full")
)
