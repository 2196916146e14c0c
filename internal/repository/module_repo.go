package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/yessenovuniversity/canvas-db/internal/model"
	pkgerrors "github.com/yessenovuniversity/canvas-db/pkg/errors"
)

// ContextModuleRepository 课程模块数据访问接口
type ContextModuleRepository interface {
	GetByID(ctx context.Context, id int64) (*model.ContextModule, error)
	ListByContext(ctx context.Context, contextType string, contextID int64) ([]model.ContextModule, error)
}

// ContentTagRepository 内容标签数据访问接口
type ContentTagRepository interface {
	GetByID(ctx context.Context, id int64) (*model.ContentTag, error)
	ListByContextModule(ctx context.Context, moduleID int64) ([]model.ContentTag, error)
}

// ── ContextModule ──

type contextModuleRepo struct {
	db *gorm.DB
}

// NewContextModuleRepo 创建 ContextModuleRepository 实例
func NewContextModuleRepo(db *gorm.DB) ContextModuleRepository {
	return &contextModuleRepo{db: db}
}

func (r *contextModuleRepo) GetByID(ctx context.Context, id int64) (*model.ContextModule, error) {
	return first[model.ContextModule](ctx, r.db, "id", id)
}

// ListByContext 多态外键必须同时按类型和 ID 过滤
func (r *contextModuleRepo) ListByContext(ctx context.Context, contextType string, contextID int64) ([]model.ContextModule, error) {
	var modules []model.ContextModule
	err := r.db.WithContext(ctx).
		Where("context_type = ? AND context_id = ?", contextType, contextID).
		Order("position ASC, id ASC").
		Find(&modules).Error
	if err != nil {
		return nil, pkgerrors.Classify(err)
	}
	return modules, nil
}

// ── ContentTag ──

type contentTagRepo struct {
	db *gorm.DB
}

// NewContentTagRepo 创建 ContentTagRepository 实例
func NewContentTagRepo(db *gorm.DB) ContentTagRepository {
	return &contentTagRepo{db: db}
}

func (r *contentTagRepo) GetByID(ctx context.Context, id int64) (*model.ContentTag, error) {
	return first[model.ContentTag](ctx, r.db, "id", id)
}

func (r *contentTagRepo) ListByContextModule(ctx context.Context, moduleID int64) ([]model.ContentTag, error) {
	return findBy[model.ContentTag](ctx, r.db, "context_module_id", moduleID, "id ASC")
}
