package main

import (
	"context"
	"flag"
	"time"

	"github.com/minishop-next/internal/config"
	"github.com/minishop-next/internal/logger"
	"github.com/minishop-next/internal/models"
	"github.com/minishop-next/internal/provider"
)

func main() {
	var force bool
	flag.BoolVar(&force, "force", false, "无条件覆盖为默认商品目录")
	flag.Parse()

	cfg := config.Load()
	logger.Init(cfg.Server.Mode, cfg.Log.ToLoggerOptions())
	defer logger.Sync()
	stdLog := logger.StdLogger()

	// 连接数据库
	if err := models.InitDB(cfg.Database.Driver, cfg.Database.DSN, models.DBPoolConfig{
		MaxOpenConns:           cfg.Database.Pool.MaxOpenConns,
		MaxIdleConns:           cfg.Database.Pool.MaxIdleConns,
		ConnMaxLifetimeSeconds: cfg.Database.Pool.ConnMaxLifetimeSeconds,
		ConnMaxIdleTimeSeconds: cfg.Database.Pool.ConnMaxIdleTimeSeconds,
	}); err != nil {
		stdLog.Fatalf("Failed to connect database: %v", err)
	}

	// 自动迁移
	if err := models.AutoMigrate(nil); err != nil {
		stdLog.Fatalf("Failed to migrate database: %v", err)
	}

	container := provider.NewContainer(cfg)
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if force {
		if err := container.CatalogService.Reset(ctx); err != nil {
			stdLog.Fatalf("Failed to reset catalog: %v", err)
		}
	}

	// 读取时会在缺失或过期时自动写入默认目录
	products, err := container.CatalogService.List(ctx)
	if err != nil {
		stdLog.Fatalf("Failed to load catalog: %v", err)
	}
	categories, err := container.CatalogService.Categories(ctx)
	if err != nil {
		stdLog.Fatalf("Failed to load categories: %v", err)
	}
	stdLog.Printf("Catalog ready: version=%s products=%d categories=%d storage=%s force=%v",
		models.CatalogVersion, len(products), len(categories), cfg.Storage.Backend, force)
}
