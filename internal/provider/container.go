package provider

import (
	"strings"
	"time"

	"github.com/minishop-next/internal/authz"
	"github.com/minishop-next/internal/cache"
	"github.com/minishop-next/internal/config"
	"github.com/minishop-next/internal/constants"
	"github.com/minishop-next/internal/events"
	"github.com/minishop-next/internal/logger"
	"github.com/minishop-next/internal/models"
	"github.com/minishop-next/internal/queue"
	"github.com/minishop-next/internal/repository"
	"github.com/minishop-next/internal/service"
)

// Container 依赖注入容器
type Container struct {
	Config      *config.Config
	QueueClient *queue.Client

	// Storage
	Store      repository.KVStore
	EventBus   events.Bus
	EventRelay *events.RedisBus // 未启用 Redis 时为 nil

	// Repositories
	CatalogRepo    repository.CatalogRepository
	CartRepo       repository.CartRepository
	OrderRepo      repository.OrderRepository
	WishlistRepo   repository.WishlistRepository
	ReviewRepo     repository.ReviewRepository
	RecentViewRepo repository.RecentViewRepository

	// Services
	AuthzService      *authz.Service // 初始化失败时为 nil，管理接口将全部拒绝
	SessionService    *service.SessionService
	CatalogService    *service.CatalogService
	CartService       *service.CartService
	CheckoutService   *service.CheckoutService
	OrderService      *service.OrderService
	WishlistService   *service.WishlistService
	ReviewService     *service.ReviewService
	RecentViewService *service.RecentViewService
}

// NewContainer 初始化容器
func NewContainer(cfg *config.Config) *Container {
	// 初始化缓存
	if err := cache.InitRedis(&cfg.Redis); err != nil {
		logger.Warnw("provider_init_redis_failed", "error", err)
		cache.Use(nil, cfg.Redis.Prefix)
	}

	// 初始化队列客户端
	var queueClient *queue.Client
	if cfg.Queue.Enabled {
		qc, err := queue.NewClient(&cfg.Queue)
		if err != nil {
			logger.Errorw("provider_init_queue_client_failed", "error", err)
		} else {
			queueClient = qc
		}
	}

	c := &Container{
		Config:      cfg,
		QueueClient: queueClient,
	}

	// 1. 初始化存储与事件总线
	c.initStorage()

	// 2. 初始化 Repositories
	c.initRepositories()

	// 3. 初始化 Services
	c.initServices()

	return c
}

// NewContainerWithStore 使用指定存储构建容器（不初始化 Redis 与队列）
func NewContainerWithStore(cfg *config.Config, store repository.KVStore, bus events.Bus) *Container {
	if bus == nil {
		bus = events.NewLocalBus()
	}
	c := &Container{
		Config:   cfg,
		Store:    store,
		EventBus: bus,
	}
	c.initRepositories()
	c.initServices()
	return c
}

func (c *Container) initStorage() {
	backend := strings.ToLower(strings.TrimSpace(c.Config.Storage.Backend))
	switch {
	case backend == constants.StorageBackendRedis && cache.Enabled():
		c.Store = cache.NewRedisKVStore(cache.Client(), cache.Prefix())
	case backend == constants.StorageBackendRedis:
		logger.Warnw("provider_storage_fallback_gorm", "backend", backend, "reason", "redis disabled")
		c.Store = repository.NewGormKVStore(models.DB)
	default:
		c.Store = repository.NewGormKVStore(models.DB)
	}

	local := events.NewLocalBus()
	if cache.Enabled() {
		c.EventRelay = events.NewRedisBus(local, cache.Client(), cache.Prefix())
		c.EventBus = c.EventRelay
	} else {
		c.EventBus = local
	}
	logger.Infow("provider_storage_ready", "backend", backend, "event_relay", c.EventRelay != nil)
}

func (c *Container) initRepositories() {
	c.CatalogRepo = repository.NewCatalogRepository(c.Store)
	c.CartRepo = repository.NewCartRepository(c.Store)
	c.OrderRepo = repository.NewOrderRepository(c.Store)
	c.WishlistRepo = repository.NewWishlistRepository(c.Store)
	c.ReviewRepo = repository.NewReviewRepository(c.Store)
	c.RecentViewRepo = repository.NewRecentViewRepository(c.Store)
}

func (c *Container) initServices() {
	c.SessionService = service.NewSessionService(c.Config.Session)
	c.initAuthz()

	cacheTTL := time.Duration(c.Config.Catalog.CacheTTLSeconds) * time.Second
	c.CatalogService = service.NewCatalogService(c.Store, c.CatalogRepo, c.EventBus, cacheTTL)
	c.CatalogService.RegisterCacheInvalidation()

	c.CartService = service.NewCartService(c.Store, c.CartRepo, c.CatalogService)
	c.CheckoutService = service.NewCheckoutService(c.Store, c.CartRepo, c.OrderRepo, c.QueueClient, c.Config.Checkout.CommitDelay())
	c.OrderService = service.NewOrderService(c.OrderRepo)
	c.WishlistService = service.NewWishlistService(c.Store, c.WishlistRepo, c.CatalogService, c.CartService)
	c.ReviewService = service.NewReviewService(c.Store, c.ReviewRepo, c.CatalogService)
	c.RecentViewService = service.NewRecentViewService(c.Store, c.RecentViewRepo, c.CatalogService)
}

func (c *Container) initAuthz() {
	svc, err := authz.NewService()
	if err != nil {
		logger.Errorw("provider_init_authz_failed", "error", err)
		return
	}
	keys := []struct {
		name string
		key  string
		role string
	}{
		{constants.AdminKeyNameEditor, c.Config.Admin.APIKey, authz.RoleCatalogEditor},
		{constants.AdminKeyNameViewer, c.Config.Admin.ViewerKey, authz.RoleCatalogViewer},
	}
	for _, k := range keys {
		if strings.TrimSpace(k.key) == "" {
			continue
		}
		if err := svc.AssignKeyRole(k.name, k.role); err != nil {
			logger.Errorw("provider_assign_admin_key_role_failed", "key", k.name, "role", k.role, "error", err)
			return
		}
	}
	c.AuthzService = svc
}
