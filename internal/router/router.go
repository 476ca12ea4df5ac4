package router

import (
	"fmt"
	"strings"

	"github.com/minishop-next/internal/cache"
	"github.com/minishop-next/internal/config"
	adminhandlers "github.com/minishop-next/internal/http/handlers/admin"
	publichandlers "github.com/minishop-next/internal/http/handlers/public"
	"github.com/minishop-next/internal/http/response"
	"github.com/minishop-next/internal/logger"
	"github.com/minishop-next/internal/provider"

	"github.com/gin-gonic/gin"
)

// SetupRouter 初始化路由
func SetupRouter(cfg *config.Config, c *provider.Container) *gin.Engine {
	log := logger.L
	if log == nil {
		log = logger.Init(cfg.Server.Mode, cfg.Log.ToLoggerOptions())
	}
	r := gin.New()

	// 初始化 Handler（按前台/后台分组）
	publicHandler := publichandlers.New(c)
	adminHandler := adminhandlers.New(c)
	redisPrefix := strings.TrimSpace(cfg.Redis.Prefix)
	if redisPrefix == "" {
		redisPrefix = "ms"
	}
	checkoutRule := RateLimitRule{
		Prefix:        fmt.Sprintf("%s:rate:checkout", redisPrefix),
		WindowSeconds: cfg.Checkout.RateLimit.WindowSeconds,
		MaxRequests:   cfg.Checkout.RateLimit.MaxRequests,
		MessageKey:    "error.too_many_requests",
	}
	reviewRule := RateLimitRule{
		Prefix:        fmt.Sprintf("%s:rate:review", redisPrefix),
		WindowSeconds: cfg.Catalog.ReviewRateLimit.WindowSeconds,
		MaxRequests:   cfg.Catalog.ReviewRateLimit.MaxRequests,
		MessageKey:    "error.too_many_requests",
	}

	// 中间件
	r.Use(gin.Recovery())
	r.Use(RequestIDMiddleware())
	r.Use(LoggerMiddleware(log))
	r.Use(CORSMiddleware(cfg.CORS))

	apiV1 := r.Group("/api/v1")
	{
		apiV1.GET("/healthz", func(ctx *gin.Context) {
			response.Success(ctx, gin.H{"status": "ok"})
		})

		// 商品目录（无需会话）
		catalog := apiV1.Group("/catalog")
		{
			catalog.GET("/products", publicHandler.ListProducts)
			catalog.GET("/products/:id", publicHandler.GetProduct)
			catalog.GET("/products/:id/reviews", publicHandler.ListProductReviews)
			catalog.POST("/products/:id/reviews", RateLimitMiddleware(cache.Client(), reviewRule, KeyByIP), publicHandler.SubmitProductReview)
			catalog.GET("/categories", publicHandler.ListCategories)
			catalog.GET("/events", publicHandler.StreamCatalogEvents)
		}

		apiV1.GET("/checkout/shipping-options", publicHandler.ListShippingOptions)

		// 商品管理
		admin := apiV1.Group("/admin")
		admin.Use(AdminKeyMiddleware(cfg.Admin, c.AuthzService))
		{
			admin.GET("/catalog/products", adminHandler.GetAdminProducts)
			admin.POST("/catalog/products", adminHandler.CreateProduct)
			admin.PATCH("/catalog/products/:id", adminHandler.UpdateProduct)
			admin.DELETE("/catalog/products/:id", adminHandler.DeleteProduct)
			admin.POST("/catalog/reset", adminHandler.ResetCatalog)
		}

		// 购物会话范围内的接口
		shop := apiV1.Group("")
		shop.Use(SessionMiddleware(c.SessionService))
		{
			shop.GET("/session", publicHandler.GetSession)

			shop.GET("/cart", publicHandler.GetCart)
			shop.DELETE("/cart", publicHandler.ClearCart)
			shop.POST("/cart/items", publicHandler.AddCartItem)
			shop.PUT("/cart/items/:product_id", publicHandler.SetCartItemQuantity)
			shop.DELETE("/cart/items/:product_id", publicHandler.RemoveCartItem)

			shop.POST("/checkout/promo", publicHandler.ValidatePromo)
			shop.POST("/checkout/preview", publicHandler.PreviewCheckout)
			shop.POST("/checkout", RateLimitMiddleware(cache.Client(), checkoutRule, KeyBySession), publicHandler.PlaceOrder)

			shop.GET("/orders", publicHandler.ListOrders)
			shop.GET("/orders/:id", publicHandler.GetOrder)

			shop.GET("/wishlist", publicHandler.GetWishlist)
			shop.DELETE("/wishlist", publicHandler.ClearWishlist)
			shop.POST("/wishlist/items", publicHandler.AddWishlistItem)
			shop.DELETE("/wishlist/items/:product_id", publicHandler.RemoveWishlistItem)
			shop.POST("/wishlist/items/:product_id/move-to-cart", publicHandler.MoveWishlistItemToCart)

			shop.GET("/recently-viewed", publicHandler.ListRecentlyViewed)
			shop.POST("/recently-viewed/:product_id", publicHandler.RecordRecentlyViewed)
		}
	}

	return r
}
