package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/yessenovuniversity/canvas-db/config"
	"github.com/yessenovuniversity/canvas-db/internal/api/handler"
	"github.com/yessenovuniversity/canvas-db/internal/api/router"
	"github.com/yessenovuniversity/canvas-db/internal/model"
	"github.com/yessenovuniversity/canvas-db/internal/repository"
	"github.com/yessenovuniversity/canvas-db/internal/service"
	"github.com/yessenovuniversity/canvas-db/pkg/database"
	applogger "github.com/yessenovuniversity/canvas-db/pkg/logger"
)

func main() {
	// 1. 加载配置
	cfg, err := config.Load("")
	if err != nil {
		fmt.Fprintf(os.Stderr, "加载配置失败: %v\n", err)
		os.Exit(1)
	}

	// 2. 初始化日志
	logger, err := applogger.NewLogger(&cfg.Log)
	if err != nil {
		fmt.Fprintf(os.Stderr, "初始化日志失败: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Info("应用启动中...",
		zap.Int("port", cfg.Server.Port),
		zap.String("log_level", cfg.Log.Level),
	)

	// 3. 连接数据库
	db, err := database.NewDB(&cfg.Database, cfg.Log.Level, logger)
	if err != nil {
		logger.Fatal("数据库连接失败", zap.Error(err))
	}

	// 3.1 开发环境创建镜像表结构
	if cfg.Database.ApplyMirrorSchema {
		sqlDB, err := db.DB()
		if err != nil {
			logger.Fatal("获取底层 sql.DB 失败", zap.Error(err))
		}
		if err := database.ApplyMirrorSchema(sqlDB, logger); err != nil {
			logger.Fatal("创建镜像表结构失败", zap.Error(err))
		}
	}

	// 3.2 结构校验：不匹配时拒绝启动
	if cfg.Database.VerifySchema {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		err := database.VerifySchema(ctx, db, model.All(), logger)
		cancel()
		if err != nil {
			logger.Fatal("数据库结构校验失败", zap.Error(err))
		}
	}

	// 4. 依赖注入: Repository → Service → Relations → Handler
	repo := repository.NewRepository(db)
	svc := service.NewService(repo, logger)
	relations := service.NewRelations(svc, service.NewDefaultRegistry(svc))
	ping := func(ctx context.Context) error { return database.Ping(ctx, db) }
	h := handler.NewHandler(relations, ping, logger)

	// 5. 初始化路由
	engine := router.Setup(cfg, h, logger)

	// 6. 启动 HTTP 服务器（优雅关闭）
	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      engine,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("HTTP 服务器已启动", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("HTTP 服务器异常", zap.Error(err))
		}
	}()

	// 7. 监听系统信号，优雅关闭
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit

	logger.Info("收到关闭信号，开始优雅关闭...", zap.String("signal", sig.String()))

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("服务器关闭异常", zap.Error(err))
	}

	// 关闭数据库连接
	if err := database.Close(db); err != nil {
		logger.Error("关闭数据库连接失败", zap.Error(err))
	}

	logger.Info("服务器已关闭")
}
