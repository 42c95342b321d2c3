package main

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"supercut/config"
	"supercut/internal/deps"
	"supercut/internal/handler"
	"supercut/internal/queue"
	"supercut/internal/router"
	"supercut/internal/service"
	"supercut/internal/storage"
	"supercut/internal/taskrunner"
	"supercut/log"
)

func main() {
	log.InitLogger()
	defer func() {
		_ = log.GetLogger().Sync()
	}()

	created, err := config.LoadOrCreateConfig()
	if err != nil {
		log.GetLogger().Fatal("failed to load config", zap.Error(err))
	}
	if created {
		log.GetLogger().Info("wrote default config file, edit it to point at your library")
	}
	if err := config.CheckConfig(); err != nil {
		log.GetLogger().Fatal("invalid config", zap.Error(err))
	}

	storage.InitDB()
	if stale, err := storage.MarkStaleTasks(); err != nil {
		log.GetLogger().Warn("failed to mark stale tasks", zap.Error(err))
	} else if stale > 0 {
		log.GetLogger().Info("marked interrupted tasks as failed", zap.Int64("count", stale))
	}

	if err := deps.CheckDependency(); err != nil {
		log.GetLogger().Fatal("missing dependency", zap.Error(err))
	}

	catalog, err := storage.OpenCatalog(config.Conf.Library.CatalogFile)
	if err != nil {
		log.GetLogger().Fatal("failed to open movie catalog", zap.Error(err))
	}
	neighbors := storage.NewNeighborIndex(config.Conf.Library.NeighborsDir)

	svc := service.NewService()

	var submitter taskrunner.Submitter
	if config.Conf.Queue.Enabled {
		q := queue.NewQueue()
		defer q.Close()
		worker := queue.StartWorker(svc)
		defer worker.Shutdown()
		submitter = q
		log.GetLogger().Info("using redis task queue", zap.String("addr", config.Conf.Queue.RedisAddr))
	} else {
		runner := taskrunner.New(svc, config.Conf.Compile.Concurrency, 64)
		defer runner.Close()
		submitter = runner
	}

	gin.SetMode(gin.ReleaseMode)
	engine := gin.Default()
	router.SetupRouter(engine, handler.NewHandler(svc, submitter, catalog, neighbors))

	addr := fmt.Sprintf("%s:%d", config.Conf.Server.Host, config.Conf.Server.Port)
	log.GetLogger().Info("server listening", zap.String("addr", addr))
	if err := engine.Run(addr); err != nil {
		log.GetLogger().Fatal("server stopped", zap.Error(err))
	}
}
