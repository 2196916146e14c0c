package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/yessenovuniversity/canvas-db/internal/model"
)

// EnrollmentRepository 选课数据访问接口
type EnrollmentRepository interface {
	GetByID(ctx context.Context, id int64) (*model.Enrollment, error)
	ListByCourse(ctx context.Context, courseID int64) ([]model.Enrollment, error)
	ListByCourseSection(ctx context.Context, sectionID int64) ([]model.Enrollment, error)
	ListByUser(ctx context.Context, userID int64) ([]model.Enrollment, error)
}

// EnrollmentStateRepository 选课状态数据访问接口
// 主键即 enrollment_id，因此只有单行查询。
type EnrollmentStateRepository interface {
	GetByEnrollmentID(ctx context.Context, enrollmentID int64) (*model.EnrollmentState, error)
}

// ScoreRepository 成绩数据访问接口
type ScoreRepository interface {
	GetByID(ctx context.Context, id int64) (*model.Score, error)
	ListByEnrollment(ctx context.Context, enrollmentID int64) ([]model.Score, error)
}

// ── Enrollment ──

type enrollmentRepo struct {
	db *gorm.DB
}

// NewEnrollmentRepo 创建 EnrollmentRepository 实例
func NewEnrollmentRepo(db *gorm.DB) EnrollmentRepository {
	return &enrollmentRepo{db: db}
}

func (r *enrollmentRepo) GetByID(ctx context.Context, id int64) (*model.Enrollment, error) {
	return first[model.Enrollment](ctx, r.db, "id", id)
}

func (r *enrollmentRepo) ListByCourse(ctx context.Context, courseID int64) ([]model.Enrollment, error) {
	return findBy[model.Enrollment](ctx, r.db, "course_id", courseID, "id ASC")
}

func (r *enrollmentRepo) ListByCourseSection(ctx context.Context, sectionID int64) ([]model.Enrollment, error) {
	return findBy[model.Enrollment](ctx, r.db, "course_section_id", sectionID, "id ASC")
}

func (r *enrollmentRepo) ListByUser(ctx context.Context, userID int64) ([]model.Enrollment, error) {
	return findBy[model.Enrollment](ctx, r.db, "user_id", userID, "id ASC")
}

// ── EnrollmentState ──

type enrollmentStateRepo struct {
	db *gorm.DB
}

// NewEnrollmentStateRepo 创建 EnrollmentStateRepository 实例
func NewEnrollmentStateRepo(db *gorm.DB) EnrollmentStateRepository {
	return &enrollmentStateRepo{db: db}
}

func (r *enrollmentStateRepo) GetByEnrollmentID(ctx context.Context, enrollmentID int64) (*model.EnrollmentState, error) {
	return first[model.EnrollmentState](ctx, r.db, "enrollment_id", enrollmentID)
}

// ── Score ──

type scoreRepo struct {
	db *gorm.DB
}

// NewScoreRepo 创建 ScoreRepository 实例
func NewScoreRepo(db *gorm.DB) ScoreRepository {
	return &scoreRepo{db: db}
}

func (r *scoreRepo) GetByID(ctx context.Context, id int64) (*model.Score, error) {
	return first[model.Score](ctx, r.db, "id", id)
}

func (r *scoreRepo) ListByEnrollment(ctx context.Context, enrollmentID int64) ([]model.Score, error) {
	return findBy[model.Score](ctx, r.db, "enrollment_id", enrollmentID, "id ASC")
}
