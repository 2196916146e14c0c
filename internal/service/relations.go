package service

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/yessenovuniversity/canvas-db/internal/model"
	pkgerrors "github.com/yessenovuniversity/canvas-db/pkg/errors"
)

var (
	// ErrUnknownEntity 表名未在 Relations 中登记
	ErrUnknownEntity = errors.New("未知实体")
	// ErrUnknownRelation 实体上不存在该关联名
	ErrUnknownRelation = errors.New("未知关联")
)

// Edge 从源实体主键出发沿一条命名关联加载目标实体
type Edge func(ctx context.Context, id int64) (model.Entity, error)

type entityDef struct {
	get   Resolver
	edges map[string]Edge
}

// Relations 按表名索引的实体加载函数与命名关联表
// 供 HTTP API 与 canvasctl 以 <entity>/<id>/<relation> 的形式通用访问，底层复用类型化的导航方法。
type Relations struct {
	entities map[string]entityDef
}

// NewRelations 基于 Service 与多态 Registry 构建关联表
func NewRelations(svc *Service, reg *Registry) *Relations {
	org, usr, crs := svc.Org, svc.User, svc.Course
	mod, asg, enr := svc.Module, svc.Assignment, svc.Enrollment

	return &Relations{entities: map[string]entityDef{
		"accounts":    {get: entityOf(org.GetAccount)},
		"wikis":       {get: entityOf(org.GetWiki)},
		"sis_batches": {get: entityOf(org.GetSisBatch)},
		"roles":       {get: entityOf(org.GetRole)},
		"users":       {get: entityOf(usr.GetUser)},
		"enrollment_terms": {
			get: entityOf(org.GetEnrollmentTerm),
			edges: map[string]Edge{
				"root_account": edge(org.GetEnrollmentTerm, org.TermRootAccount),
			},
		},
		"pseudonyms": {
			get: entityOf(usr.GetPseudonym),
			edges: map[string]Edge{
				"user": edge(usr.GetPseudonym, usr.PseudonymUser),
			},
		},
		"courses": {
			get: entityOf(crs.GetCourse),
			edges: map[string]Edge{
				"account":         edge(crs.GetCourse, crs.Account),
				"root_account":    edge(crs.GetCourse, crs.RootAccount),
				"wiki":            edge(crs.GetCourse, crs.Wiki),
				"enrollment_term": edge(crs.GetCourse, crs.EnrollmentTerm),
				"sis_batch":       edge(crs.GetCourse, crs.SisBatch),
			},
		},
		"course_sections": {
			get: entityOf(crs.GetSection),
			edges: map[string]Edge{
				"course":          edge(crs.GetSection, crs.SectionCourse),
				"sis_batch":       edge(crs.GetSection, crs.SectionSisBatch),
				"root_account":    edge(crs.GetSection, crs.SectionRootAccount),
				"enrollment_term": edge(crs.GetSection, crs.SectionEnrollmentTerm),
			},
		},
		"context_modules": {
			get: entityOf(mod.GetModule),
			edges: map[string]Edge{
				"context": edge(mod.GetModule, func(ctx context.Context, m *model.ContextModule) (model.Entity, error) {
					return mod.Context(ctx, m, reg)
				}),
			},
		},
		"content_tags": {
			get: entityOf(mod.GetContentTag),
			edges: map[string]Edge{
				"context_module": edge(mod.GetContentTag, mod.TagModule),
				"content": edge(mod.GetContentTag, func(ctx context.Context, t *model.ContentTag) (model.Entity, error) {
					return mod.TagContent(ctx, t, reg)
				}),
			},
		},
		"assignments": {get: entityOf(asg.GetAssignment)},
		"quizzes": {
			get: entityOf(asg.GetQuiz),
			edges: map[string]Edge{
				"assignment": edge(asg.GetQuiz, asg.QuizAssignment),
			},
		},
		"assignment_overrides": {
			get: entityOf(asg.GetOverride),
			edges: map[string]Edge{
				"assignment": edge(asg.GetOverride, asg.OverrideAssignment),
				"quiz":       edge(asg.GetOverride, asg.OverrideQuiz),
				"set": edge(asg.GetOverride, func(ctx context.Context, o *model.Override) (model.Entity, error) {
					return asg.OverrideSet(ctx, o, reg)
				}),
			},
		},
		"assignment_override_students": {
			get: entityOf(asg.GetOverrideStudent),
			edges: map[string]Edge{
				"assignment": edge(asg.GetOverrideStudent, asg.StudentAssignment),
				"override":   edge(asg.GetOverrideStudent, asg.StudentOverride),
				"quiz":       edge(asg.GetOverrideStudent, asg.StudentQuiz),
				"user":       edge(asg.GetOverrideStudent, asg.StudentUser),
			},
		},
		"submissions": {
			get: entityOf(asg.GetSubmission),
			edges: map[string]Edge{
				"assignment": edge(asg.GetSubmission, asg.SubmissionAssignment),
				"user":       edge(asg.GetSubmission, asg.SubmissionUser),
			},
		},
		"enrollments": {
			get: entityOf(enr.GetEnrollment),
			edges: map[string]Edge{
				"user":            edge(enr.GetEnrollment, enr.User),
				"associated_user": edge(enr.GetEnrollment, enr.AssociatedUser),
				"course":          edge(enr.GetEnrollment, enr.Course),
				"course_section":  edge(enr.GetEnrollment, enr.CourseSection),
				"role":            edge(enr.GetEnrollment, enr.Role),
				"sis_pseudonym":   edge(enr.GetEnrollment, enr.SisPseudonym),
				"root_account":    edge(enr.GetEnrollment, enr.RootAccount),
				"sis_batch":       edge(enr.GetEnrollment, enr.SisBatch),
				"state":           edge(enr.GetEnrollment, enr.State),
			},
		},
		"enrollment_states": {
			get: entityOf(enr.GetState),
			edges: map[string]Edge{
				"enrollment": edge(enr.GetState, enr.StateEnrollment),
			},
		},
		"scores": {
			get: entityOf(enr.GetScore),
			edges: map[string]Edge{
				"enrollment": edge(enr.GetScore, enr.ScoreEnrollment),
			},
		},
	}}
}

// Entities 已登记的表名（排序后）
func (r *Relations) Entities() []string {
	names := make([]string, 0, len(r.entities))
	for name := range r.entities {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Edges 某实体上的关联名（排序后）
func (r *Relations) Edges(entity string) ([]string, error) {
	def, ok := r.entities[entity]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownEntity, entity)
	}
	names := make([]string, 0, len(def.edges))
	for name := range def.edges {
		names = append(names, name)
	}
	sort.Strings(names)
	return names, nil
}

// Get 按表名与主键加载实体；不存在返回 (nil, nil)
func (r *Relations) Get(ctx context.Context, entity string, id int64) (model.Entity, error) {
	def, ok := r.entities[entity]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownEntity, entity)
	}
	return def.get(ctx, id)
}

// Follow 加载源实体并沿命名关联加载目标
// 源实体不存在返回 ErrNotFound；目标不存在（含外键为 NULL）返回 (nil, nil)。
func (r *Relations) Follow(ctx context.Context, entity string, id int64, relation string) (model.Entity, error) {
	def, ok := r.entities[entity]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownEntity, entity)
	}
	fn, ok := def.edges[relation]
	if !ok {
		return nil, fmt.Errorf("%w: %s.%s", ErrUnknownRelation, entity, relation)
	}
	return fn(ctx, id)
}

// edge 组合“加载源实体”与“沿外键导航”为一条 Edge
func edge[S any, E interface {
	comparable
	model.Entity
}](get func(context.Context, int64) (*S, error), nav func(context.Context, *S) (E, error)) Edge {
	return func(ctx context.Context, id int64) (model.Entity, error) {
		src, err := get(ctx, id)
		if err != nil {
			return nil, err
		}
		if src == nil {
			return nil, fmt.Errorf("%w: 源记录 id=%d", pkgerrors.ErrNotFound, id)
		}
		return asEntity(nav(ctx, src))
	}
}
