package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/yessenovuniversity/canvas-db/internal/repository"
)

// Service 所有 Service 的聚合入口
type Service struct {
	Org        OrgService
	User       UserService
	Course     CourseService
	Module     ModuleService
	Assignment AssignmentService
	Enrollment EnrollmentService
}

// NewService 创建 Service 聚合
func NewService(repo *repository.Repository, logger *zap.Logger) *Service {
	return &Service{
		Org:        NewOrgService(repo, logger),
		User:       NewUserService(repo, logger),
		Course:     NewCourseService(repo, logger),
		Module:     NewModuleService(repo, logger),
		Assignment: NewAssignmentService(repo, logger),
		Enrollment: NewEnrollmentService(repo, logger),
	}
}

// ── 内部辅助方法 ──

// load 按主键加载；不存在返回 (nil, nil)，存储错误记录日志后原样上抛
func load[T any](ctx context.Context, logger *zap.Logger, table string, id int64, get func(context.Context, int64) (*T, error)) (*T, error) {
	row, err := get(ctx, id)
	if err != nil {
		logger.Error("加载记录失败", zap.String("table", table), zap.Int64("id", id), zap.Error(err))
		return nil, err
	}
	return row, nil
}

// follow 沿外键加载被引用行；外键为 NULL 时不访问数据库，直接返回 (nil, nil)
func follow[T any](ctx context.Context, logger *zap.Logger, edge string, fk *int64, get func(context.Context, int64) (*T, error)) (*T, error) {
	if fk == nil {
		return nil, nil
	}
	row, err := get(ctx, *fk)
	if err != nil {
		logger.Error("关联加载失败", zap.String("edge", edge), zap.Int64("fk", *fk), zap.Error(err))
		return nil, err
	}
	return row, nil
}
