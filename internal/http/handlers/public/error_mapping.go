package public

import (
	"context"
	"errors"

	"github.com/minishop-next/internal/cache"
	handlershared "github.com/minishop-next/internal/http/handlers/shared"
	"github.com/minishop-next/internal/http/response"
	"github.com/minishop-next/internal/service"

	"github.com/gin-gonic/gin"
)

// mappedHandlerError 定义业务错误到接口错误响应的映射关系。
type mappedHandlerError struct {
	target error
	code   int
	key    string
}

func respondWithMappedError(c *gin.Context, err error, rules []mappedHandlerError, fallbackCode int, fallbackKey string) {
	for _, rule := range rules {
		if errors.Is(err, rule.target) {
			handlershared.RespondMappedError(c, rule.code, rule.key, err)
			return
		}
	}
	respondError(c, fallbackCode, fallbackKey, err)
}

func concatMappedHandlerErrors(groups ...[]mappedHandlerError) []mappedHandlerError {
	total := 0
	for _, group := range groups {
		total += len(group)
	}
	result := make([]mappedHandlerError, 0, total)
	for _, group := range groups {
		result = append(result, group...)
	}
	return result
}

var sessionErrorRules = []mappedHandlerError{
	{target: service.ErrSessionRequired, code: response.CodeUnauthorized, key: "error.session_required"},
	{target: service.ErrSessionInvalid, code: response.CodeUnauthorized, key: "error.session_invalid"},
}

var cartErrorRules = concatMappedHandlerErrors(sessionErrorRules, []mappedHandlerError{
	{target: service.ErrProductNotFound, code: response.CodeNotFound, key: "error.product_not_found"},
	{target: service.ErrProductOutOfStock, code: response.CodeBadRequest, key: "error.product_out_of_stock"},
	{target: service.ErrQuantityInvalid, code: response.CodeBadRequest, key: "error.quantity_invalid"},
	{target: cache.ErrAtomicConflict, code: response.CodeConflict, key: "error.cart_update_failed"},
})

var checkoutPricingErrorRules = []mappedHandlerError{
	{target: service.ErrPromoCodeInvalid, code: response.CodeBadRequest, key: "error.promo_code_invalid"},
	{target: service.ErrShippingMethodInvalid, code: response.CodeBadRequest, key: "error.shipping_method_invalid"},
}

var checkoutErrorRules = concatMappedHandlerErrors(sessionErrorRules, checkoutPricingErrorRules, []mappedHandlerError{
	{target: service.ErrCartEmpty, code: response.CodeBadRequest, key: "error.cart_empty"},
	{target: service.ErrShippingInfoInvalid, code: response.CodeBadRequest, key: "error.shipping_info_invalid"},
	{target: service.ErrEmailInvalid, code: response.CodeBadRequest, key: "error.email_invalid"},
	{target: service.ErrPaymentInvalid, code: response.CodeBadRequest, key: "error.payment_invalid"},
	{target: context.Canceled, code: response.CodeBadRequest, key: "error.checkout_canceled"},
	{target: context.DeadlineExceeded, code: response.CodeBadRequest, key: "error.checkout_canceled"},
	{target: cache.ErrAtomicConflict, code: response.CodeConflict, key: "error.checkout_conflict"},
})

var orderErrorRules = concatMappedHandlerErrors(sessionErrorRules, []mappedHandlerError{
	{target: service.ErrOrderNotFound, code: response.CodeNotFound, key: "error.order_not_found"},
})

var wishlistErrorRules = concatMappedHandlerErrors(sessionErrorRules, []mappedHandlerError{
	{target: service.ErrProductNotFound, code: response.CodeNotFound, key: "error.product_not_found"},
	{target: service.ErrProductOutOfStock, code: response.CodeBadRequest, key: "error.product_out_of_stock"},
	{target: cache.ErrAtomicConflict, code: response.CodeConflict, key: "error.wishlist_update_failed"},
})

var reviewErrorRules = []mappedHandlerError{
	{target: service.ErrProductNotFound, code: response.CodeNotFound, key: "error.product_not_found"},
	{target: service.ErrReviewInvalid, code: response.CodeBadRequest, key: "error.review_invalid"},
	{target: service.ErrProductInvalid, code: response.CodeBadRequest, key: "error.product_invalid"},
	{target: cache.ErrAtomicConflict, code: response.CodeConflict, key: "error.review_save_failed"},
}

var recentViewErrorRules = concatMappedHandlerErrors(sessionErrorRules, []mappedHandlerError{
	{target: service.ErrProductNotFound, code: response.CodeNotFound, key: "error.product_not_found"},
})
