package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/yessenovuniversity/canvas-db/internal/model"
	"github.com/yessenovuniversity/canvas-db/internal/repository"
)

// ModuleService 课程模块与模块条目的加载及导航接口
// 多态边（模块上下文、条目内容）通过调用方提供的 Registry 解析。
type ModuleService interface {
	GetModule(ctx context.Context, id int64) (*model.ContextModule, error)
	Context(ctx context.Context, m *model.ContextModule, reg *Registry) (model.Entity, error)

	GetContentTag(ctx context.Context, id int64) (*model.ContentTag, error)
	TagModule(ctx context.Context, t *model.ContentTag) (*model.ContextModule, error)
	TagContent(ctx context.Context, t *model.ContentTag, reg *Registry) (model.Entity, error)
}

type moduleService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewModuleService 创建 ModuleService 实例
func NewModuleService(repo *repository.Repository, logger *zap.Logger) ModuleService {
	return &moduleService{repo: repo, logger: logger}
}

func (s *moduleService) GetModule(ctx context.Context, id int64) (*model.ContextModule, error) {
	return load(ctx, s.logger, "context_modules", id, s.repo.ContextModule.GetByID)
}

func (s *moduleService) Context(ctx context.Context, m *model.ContextModule, reg *Registry) (model.Entity, error) {
	return resolve(ctx, s.logger, "context_modules.context", reg, m.Context())
}

func (s *moduleService) GetContentTag(ctx context.Context, id int64) (*model.ContentTag, error) {
	return load(ctx, s.logger, "content_tags", id, s.repo.ContentTag.GetByID)
}

func (s *moduleService) TagModule(ctx context.Context, t *model.ContentTag) (*model.ContextModule, error) {
	return follow(ctx, s.logger, "content_tags.context_module", t.ContextModuleID, s.repo.ContextModule.GetByID)
}

func (s *moduleService) TagContent(ctx context.Context, t *model.ContentTag, reg *Registry) (model.Entity, error) {
	return resolve(ctx, s.logger, "content_tags.content", reg, t.Content())
}
