package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/yessenovuniversity/canvas-db/internal/model"
)

// CourseRepository 课程数据访问接口
type CourseRepository interface {
	GetByID(ctx context.Context, id int64) (*model.Course, error)
	GetBySisSourceID(ctx context.Context, sisSourceID string) (*model.Course, error)
	ListByAccount(ctx context.Context, accountID int64) ([]model.Course, error)
	ListByRootAccount(ctx context.Context, rootAccountID int64) ([]model.Course, error)
	ListByEnrollmentTerm(ctx context.Context, termID int64) ([]model.Course, error)
}

// CourseSectionRepository 课程分组数据访问接口
type CourseSectionRepository interface {
	GetByID(ctx context.Context, id int64) (*model.CourseSection, error)
	ListByCourse(ctx context.Context, courseID int64) ([]model.CourseSection, error)
}

// ── Course ──

type courseRepo struct {
	db *gorm.DB
}

// NewCourseRepo 创建 CourseRepository 实例
func NewCourseRepo(db *gorm.DB) CourseRepository {
	return &courseRepo{db: db}
}

func (r *courseRepo) GetByID(ctx context.Context, id int64) (*model.Course, error) {
	return first[model.Course](ctx, r.db, "id", id)
}

// GetBySisSourceID 按 SIS 标识查询；SIS 标识由外部导入，不保证唯一，取主键最小的一行
func (r *courseRepo) GetBySisSourceID(ctx context.Context, sisSourceID string) (*model.Course, error) {
	return first[model.Course](ctx, r.db, "sis_source_id", sisSourceID)
}

func (r *courseRepo) ListByAccount(ctx context.Context, accountID int64) ([]model.Course, error) {
	return findBy[model.Course](ctx, r.db, "account_id", accountID, "id ASC")
}

func (r *courseRepo) ListByRootAccount(ctx context.Context, rootAccountID int64) ([]model.Course, error) {
	return findBy[model.Course](ctx, r.db, "root_account_id", rootAccountID, "id ASC")
}

func (r *courseRepo) ListByEnrollmentTerm(ctx context.Context, termID int64) ([]model.Course, error) {
	return findBy[model.Course](ctx, r.db, "enrollment_term_id", termID, "id ASC")
}

// ── CourseSection ──

type courseSectionRepo struct {
	db *gorm.DB
}

// NewCourseSectionRepo 创建 CourseSectionRepository 实例
func NewCourseSectionRepo(db *gorm.DB) CourseSectionRepository {
	return &courseSectionRepo{db: db}
}

func (r *courseSectionRepo) GetByID(ctx context.Context, id int64) (*model.CourseSection, error) {
	return first[model.CourseSection](ctx, r.db, "id", id)
}

// ListByCourse 默认分组排在最前
func (r *courseSectionRepo) ListByCourse(ctx context.Context, courseID int64) ([]model.CourseSection, error) {
	return findBy[model.CourseSection](ctx, r.db, "course_id", courseID, "default_section DESC, id ASC")
}
