package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/yessenovuniversity/canvas-db/internal/model"
)

// OverrideRepository 截止时间例外数据访问接口
type OverrideRepository interface {
	GetByID(ctx context.Context, id int64) (*model.Override, error)
	ListByAssignment(ctx context.Context, assignmentID int64) ([]model.Override, error)
	ListByQuiz(ctx context.Context, quizID int64) ([]model.Override, error)
}

// OverrideStudentRepository 例外-学生关联数据访问接口
type OverrideStudentRepository interface {
	GetByID(ctx context.Context, id int64) (*model.OverrideStudent, error)
	ListByOverride(ctx context.Context, overrideID int64) ([]model.OverrideStudent, error)
	ListByUser(ctx context.Context, userID int64) ([]model.OverrideStudent, error)
}

// ── Override ──

type overrideRepo struct {
	db *gorm.DB
}

// NewOverrideRepo 创建 OverrideRepository 实例
func NewOverrideRepo(db *gorm.DB) OverrideRepository {
	return &overrideRepo{db: db}
}

func (r *overrideRepo) GetByID(ctx context.Context, id int64) (*model.Override, error) {
	return first[model.Override](ctx, r.db, "id", id)
}

func (r *overrideRepo) ListByAssignment(ctx context.Context, assignmentID int64) ([]model.Override, error) {
	return findBy[model.Override](ctx, r.db, "assignment_id", assignmentID, "id ASC")
}

func (r *overrideRepo) ListByQuiz(ctx context.Context, quizID int64) ([]model.Override, error) {
	return findBy[model.Override](ctx, r.db, "quiz_id", quizID, "id ASC")
}

// ── OverrideStudent ──

type overrideStudentRepo struct {
	db *gorm.DB
}

// NewOverrideStudentRepo 创建 OverrideStudentRepository 实例
func NewOverrideStudentRepo(db *gorm.DB) OverrideStudentRepository {
	return &overrideStudentRepo{db: db}
}

func (r *overrideStudentRepo) GetByID(ctx context.Context, id int64) (*model.OverrideStudent, error) {
	return first[model.OverrideStudent](ctx, r.db, "id", id)
}

// ListByOverride 注意存储列名为 assignment_override_id
func (r *overrideStudentRepo) ListByOverride(ctx context.Context, overrideID int64) ([]model.OverrideStudent, error) {
	return findBy[model.OverrideStudent](ctx, r.db, "assignment_override_id", overrideID, "id ASC")
}

func (r *overrideStudentRepo) ListByUser(ctx context.Context, userID int64) ([]model.OverrideStudent, error) {
	return findBy[model.OverrideStudent](ctx, r.db, "user_id", userID, "id ASC")
}
