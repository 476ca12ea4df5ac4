package constants

// 订单状态常量（当前只会产生 pending）
const (
	OrderStatusPending   = "pending"
	OrderStatusShipped   = "shipped"
	OrderStatusDelivered = "delivered"
)

// 配送方式常量
const (
	ShippingMethodStandard  = "standard"
	ShippingMethodExpress   = "express"
	ShippingMethodOvernight = "overnight"
	ShippingMethodFree      = "free"
)

// 支付方式常量
const (
	PaymentMethodCard      = "card"
	PaymentMethodPayPal    = "paypal"
	PaymentMethodApplePay  = "applepay"
	PaymentMethodGooglePay = "googlepay"
)

// 商品排序方式常量
const (
	ProductSortDefault   = "default"
	ProductSortPriceLow  = "price-low"
	ProductSortPriceHigh = "price-high"
	ProductSortNewest    = "newest"
	ProductSortRating    = "rating"
)

// 评价排序方式常量
const (
	ReviewSortNewest  = "newest"
	ReviewSortOldest  = "oldest"
	ReviewSortHighest = "highest"
	ReviewSortLowest  = "lowest"
)

// RecentlyViewedLimit 最近浏览保留条数
const RecentlyViewedLimit = 5

// ProductCategoryAll 不限分类
const ProductCategoryAll = "all"

// 存储命名空间与键
const (
	NamespaceCatalog  = "catalog"
	NamespaceCart     = "cart"
	NamespaceOrders   = "orders"
	NamespaceWishlist = "wishlist"
	NamespaceReviews  = "reviews"
	NamespaceRecent   = "recent"

	CatalogProductsKey = "products"
	CatalogVersionKey  = "products_version"
	CatalogListCache   = "catalog:list"
)

// 存储后端
const (
	StorageBackendGorm  = "gorm"
	StorageBackendRedis = "redis"
)

// 事件类型
const (
	EventCatalogChanged = "catalog_changed"
)

// 目录变更动作
const (
	CatalogActionAdded   = "added"
	CatalogActionUpdated = "updated"
	CatalogActionDeleted = "deleted"
	CatalogActionReset   = "reset"
)

// 异步任务类型
const (
	TaskOrderPlaced = "order:placed"
)

// 队列名称
const (
	QueueDefault  = "default"
	QueueCritical = "critical"
)

// 会话相关请求头与上下文键
const (
	SessionTokenHeader = "X-Session-Token"
	SessionIDKey       = "session_id"
	SessionTokenKey    = "session_token"
	AdminKeyHeader     = "X-Admin-Key"
)

// 管理密钥名称，对应授权主体
const (
	AdminKeyNameEditor = "editor"
	AdminKeyNameViewer = "viewer"
)
