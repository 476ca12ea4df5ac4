package service

import "errors"

var (
	ErrSessionRequired       = errors.New("session id is required")
	ErrSessionInvalid        = errors.New("session token is invalid")
	ErrProductNotFound       = errors.New("product not found")
	ErrProductInvalid        = errors.New("product data is invalid")
	ErrProductOutOfStock     = errors.New("product is out of stock")
	ErrQuantityInvalid       = errors.New("quantity is invalid")
	ErrCartEmpty             = errors.New("cart is empty")
	ErrPromoCodeInvalid      = errors.New("promo code is invalid")
	ErrShippingMethodInvalid = errors.New("shipping method is invalid")
	ErrShippingInfoInvalid   = errors.New("shipping info is invalid")
	ErrEmailInvalid          = errors.New("email is invalid")
	ErrPaymentInvalid        = errors.New("payment info is invalid")
	ErrOrderNotFound         = errors.New("order not found")
	ErrReviewInvalid         = errors.New("review is invalid")
)

// ValidationError 携带出错字段的校验错误，可通过 errors.Is 匹配到具体哨兵错误
type ValidationError struct {
	Field string
	Err   error
}

func (e *ValidationError) Error() string {
	return e.Err.Error() + ": " + e.Field
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

func invalidField(err error, field string) error {
	return &ValidationError{Field: field, Err: err}
}
