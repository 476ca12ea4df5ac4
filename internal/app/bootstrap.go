package app

import (
	"errors"

	"github.com/minishop-next/internal/config"
	"github.com/minishop-next/internal/logger"
	"github.com/minishop-next/internal/provider"
	"github.com/minishop-next/internal/router"
	"github.com/minishop-next/internal/worker"
)

// BuildRunner 构建服务运行器
func BuildRunner(cfg *config.Config, mode string) (*Runner, error) {
	if cfg == nil {
		return nil, errors.New("config is nil")
	}
	if !isValidMode(mode) {
		return nil, errors.New("unknown mode: " + mode)
	}

	container := provider.NewContainer(cfg)

	var services []Service

	// 初始化 HTTP 服务
	if mode == ModeAll || mode == ModeAPI {
		engine := router.SetupRouter(cfg, container)
		services = append(services, NewHTTPService(cfg.Server.Addr(), engine))
	}

	// 跨实例目录事件转发，仅在启用 Redis 时存在
	if container.EventRelay != nil && (mode == ModeAll || mode == ModeAPI) {
		services = append(services, container.EventRelay)
	}

	// 初始化 Worker 服务；all 模式下未启用队列时跳过
	if mode == ModeAll || mode == ModeWorker {
		consumer := worker.NewConsumer(container)
		workerService, err := worker.NewService(&cfg.Queue, consumer)
		switch {
		case errors.Is(err, worker.ErrQueueDisabled) && mode == ModeAll:
			logger.Infow("app_worker_skipped", "reason", "queue disabled")
		case err != nil:
			return nil, err
		default:
			services = append(services, workerService)
		}
	}

	if len(services) == 0 {
		return nil, errors.New("no services initialized (check mode and config)")
	}

	return NewRunner(services...), nil
}

// Run 应用启动入口
func Run(opts Options) error {
	opts = normalizeOptions(opts)
	if opts.Config == nil {
		return errors.New("config is nil")
	}

	runner, err := BuildRunner(opts.Config, opts.Mode)
	if err != nil {
		return err
	}

	opts.Logger.Infow("app_start",
		"addr", opts.Config.Server.Addr(),
		"mode", opts.Mode,
		"storage", opts.Config.Storage.Backend,
		"services", runner.Names(),
	)
	return runWithSignals(runner, opts)
}
