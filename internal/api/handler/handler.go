package handler

import (
	"context"

	"go.uber.org/zap"

	"github.com/yessenovuniversity/canvas-db/internal/model"
)

// Navigator 按表名加载实体并沿命名关联导航
// service.Relations 实现该接口。
type Navigator interface {
	Entities() []string
	Edges(entity string) ([]string, error)
	Get(ctx context.Context, entity string, id int64) (model.Entity, error)
	Follow(ctx context.Context, entity string, id int64, relation string) (model.Entity, error)
}

// Pinger 检查存储可用性
type Pinger func(ctx context.Context) error

// Handler 所有 Handler 的聚合入口
type Handler struct {
	Entity *EntityHandler
	Health *HealthHandler
}

// NewHandler 创建 Handler 聚合
func NewHandler(nav Navigator, ping Pinger, logger *zap.Logger) *Handler {
	return &Handler{
		Entity: NewEntityHandler(nav, logger),
		Health: NewHealthHandler(ping),
	}
}
