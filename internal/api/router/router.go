package router

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/yessenovuniversity/canvas-db/config"
	"github.com/yessenovuniversity/canvas-db/internal/api/handler"
	"github.com/yessenovuniversity/canvas-db/internal/api/middleware"
)

// Setup 初始化并返回 Gin 路由引擎
// 所有路由只读，不注册任何写方法。
func Setup(cfg *config.Config, h *handler.Handler, logger *zap.Logger) *gin.Engine {
	if cfg.Server.Mode != "" {
		gin.SetMode(cfg.Server.Mode)
	}

	r := gin.New()

	// ── 全局中间件 ──
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger(logger))
	r.Use(middleware.SecurityHeaders())
	r.Use(middleware.CORS(cfg.Server.CORS.AllowOrigins))

	// ── 健康检查 ──
	r.GET("/health", h.Health.Check)

	// ── 实体目录 ──
	r.GET("/api/catalog", h.Entity.ListEntities)

	// ── API v1 ──
	v1 := r.Group("/api/v1")
	{
		v1.GET("/:entity/:id", h.Entity.GetEntity)
		v1.GET("/:entity/:id/:relation", h.Entity.FollowRelation)
	}

	return r
}
