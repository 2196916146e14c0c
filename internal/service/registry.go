package service

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"go.uber.org/zap"

	"github.com/yessenovuniversity/canvas-db/internal/model"
)

// ErrUnknownPolymorphicType 多态引用的类型未在 Registry 中注册
var ErrUnknownPolymorphicType = errors.New("未注册的多态类型")

// Resolver 按主键加载某一类型的实体；不存在返回 (nil, nil)
type Resolver func(ctx context.Context, id int64) (model.Entity, error)

// Registry 多态类型字符串到加载函数的映射
// 构建完成后只读，可被并发使用。
type Registry struct {
	resolvers map[string]Resolver
}

// NewRegistry 创建空的 Registry
func NewRegistry() *Registry {
	return &Registry{resolvers: make(map[string]Resolver)}
}

// Register 注册类型对应的加载函数，重复注册时覆盖
func (r *Registry) Register(typeName string, fn Resolver) *Registry {
	r.resolvers[typeName] = fn
	return r
}

// Types 已注册的类型（排序后）
func (r *Registry) Types() []string {
	types := make([]string, 0, len(r.resolvers))
	for t := range r.resolvers {
		types = append(types, t)
	}
	sort.Strings(types)
	return types
}

// Resolve 解析多态引用
// ID 为 NULL（如 ADHOC 覆盖规则）时返回 (nil, nil)，不访问数据库。
func (r *Registry) Resolve(ctx context.Context, ref model.PolymorphicRef) (model.Entity, error) {
	if ref.ID == nil {
		return nil, nil
	}
	if r == nil {
		return nil, fmt.Errorf("%w: %q", ErrUnknownPolymorphicType, ref.Type)
	}
	fn, ok := r.resolvers[ref.Type]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownPolymorphicType, ref.Type)
	}
	return fn(ctx, *ref.ID)
}

// NewDefaultRegistry 为已建模的表构建 Registry
// Quiz 同时注册旧类型名 "Quiz" 与新引擎的 "Quizzes::Quiz"。
func NewDefaultRegistry(svc *Service) *Registry {
	quiz := entityOf(svc.Assignment.GetQuiz)
	return NewRegistry().
		Register(model.ContextTypeCourse, entityOf(svc.Course.GetCourse)).
		Register(model.SetTypeCourseSection, entityOf(svc.Course.GetSection)).
		Register(model.ContentTypeAssignment, entityOf(svc.Assignment.GetAssignment)).
		Register("Quiz", quiz).
		Register(model.ContentTypeQuiz, quiz).
		Register("User", entityOf(svc.User.GetUser)).
		Register(model.ContentTypeContextModule, entityOf(svc.Module.GetModule))
}

// ── 内部辅助方法 ──

// resolve 解析多态边，失败时记录日志
func resolve(ctx context.Context, logger *zap.Logger, edge string, reg *Registry, ref model.PolymorphicRef) (model.Entity, error) {
	row, err := reg.Resolve(ctx, ref)
	if err != nil {
		logger.Error("多态关联解析失败", zap.String("edge", edge), zap.Stringer("ref", ref), zap.Error(err))
		return nil, err
	}
	return row, nil
}

// asEntity 把具体类型的加载结果转为 model.Entity
// 具体类型的 nil 指针必须转成 nil 接口，否则调用方无法判断“不存在”。
func asEntity[E interface {
	comparable
	model.Entity
}](row E, err error) (model.Entity, error) {
	var zero E
	if err != nil || row == zero {
		return nil, err
	}
	return row, nil
}

// entityOf 把具体类型的加载函数包装为 Resolver
func entityOf[E interface {
	comparable
	model.Entity
}](get func(context.Context, int64) (E, error)) Resolver {
	return func(ctx context.Context, id int64) (model.Entity, error) {
		return asEntity(get(ctx, id))
	}
}
