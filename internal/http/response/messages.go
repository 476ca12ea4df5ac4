package response

// messages 错误键对应的提示文案，未登记的键原样返回
var messages = map[string]string{
	"error.bad_request":             "Invalid request",
	"error.unauthorized":            "Unauthorized",
	"error.forbidden":               "Forbidden",
	"error.not_found":               "Not found",
	"error.too_many_requests":       "Too many requests, please try again later",
	"error.rate_limit_unavailable":  "Rate limiter is unavailable",
	"error.internal":                "Internal server error",
	"error.session_required":        "Shopping session is required",
	"error.session_invalid":         "Shopping session is invalid or expired",
	"error.admin_key_invalid":       "Admin key is missing or invalid",
	"error.product_id_invalid":      "Product id is invalid",
	"error.product_not_found":       "Product not found",
	"error.product_invalid":         "Product data is invalid",
	"error.product_out_of_stock":    "Product is out of stock",
	"error.product_fetch_failed":    "Failed to load products",
	"error.product_save_failed":     "Failed to save product",
	"error.catalog_reset_failed":    "Failed to reset catalog",
	"error.quantity_invalid":        "Quantity is invalid",
	"error.cart_empty":              "Cart is empty",
	"error.cart_fetch_failed":       "Failed to load cart",
	"error.cart_update_failed":      "Failed to update cart",
	"error.promo_code_invalid":      "Invalid promo code",
	"error.shipping_method_invalid": "Shipping method is invalid",
	"error.shipping_info_invalid":   "Shipping information is incomplete",
	"error.email_invalid":           "Email address is invalid",
	"error.payment_invalid":         "Payment information is invalid",
	"error.checkout_canceled":       "Checkout was canceled",
	"error.checkout_conflict":       "Cart changed during checkout, please retry",
	"error.checkout_failed":         "Failed to place order",
	"error.order_id_invalid":        "Order id is invalid",
	"error.order_not_found":         "Order not found",
	"error.order_fetch_failed":      "Failed to load orders",
	"error.wishlist_fetch_failed":   "Failed to load wishlist",
	"error.wishlist_update_failed":  "Failed to update wishlist",
	"error.review_invalid":          "Review is incomplete or rating is out of range",
	"error.review_fetch_failed":     "Failed to load reviews",
	"error.review_save_failed":      "Failed to save review",
	"error.recent_view_failed":      "Failed to update recently viewed products",
}

// Message 返回错误键对应的提示文案
func Message(key string) string {
	if msg, ok := messages[key]; ok {
		return msg
	}
	return key
}
