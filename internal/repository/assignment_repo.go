package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/yessenovuniversity/canvas-db/internal/model"
)

// AssignmentRepository 作业数据访问接口
type AssignmentRepository interface {
	GetByID(ctx context.Context, id int64) (*model.Assignment, error)
}

// QuizRepository 测验数据访问接口
type QuizRepository interface {
	GetByID(ctx context.Context, id int64) (*model.Quiz, error)
	GetByAssignmentID(ctx context.Context, assignmentID int64) (*model.Quiz, error)
}

// SubmissionRepository 提交数据访问接口
type SubmissionRepository interface {
	GetByID(ctx context.Context, id int64) (*model.Submission, error)
	ListByAssignment(ctx context.Context, assignmentID int64) ([]model.Submission, error)
	ListByUser(ctx context.Context, userID int64) ([]model.Submission, error)
}

// ── Assignment ──

type assignmentRepo struct {
	db *gorm.DB
}

// NewAssignmentRepo 创建 AssignmentRepository 实例
func NewAssignmentRepo(db *gorm.DB) AssignmentRepository {
	return &assignmentRepo{db: db}
}

func (r *assignmentRepo) GetByID(ctx context.Context, id int64) (*model.Assignment, error) {
	return first[model.Assignment](ctx, r.db, "id", id)
}

// ── Quiz ──

type quizRepo struct {
	db *gorm.DB
}

// NewQuizRepo 创建 QuizRepository 实例
func NewQuizRepo(db *gorm.DB) QuizRepository {
	return &quizRepo{db: db}
}

func (r *quizRepo) GetByID(ctx context.Context, id int64) (*model.Quiz, error) {
	return first[model.Quiz](ctx, r.db, "id", id)
}

// GetByAssignmentID 测验是作业的一对一扩展
func (r *quizRepo) GetByAssignmentID(ctx context.Context, assignmentID int64) (*model.Quiz, error) {
	return first[model.Quiz](ctx, r.db, "assignment_id", assignmentID)
}

// ── Submission ──

type submissionRepo struct {
	db *gorm.DB
}

// NewSubmissionRepo 创建 SubmissionRepository 实例
func NewSubmissionRepo(db *gorm.DB) SubmissionRepository {
	return &submissionRepo{db: db}
}

func (r *submissionRepo) GetByID(ctx context.Context, id int64) (*model.Submission, error) {
	return first[model.Submission](ctx, r.db, "id", id)
}

func (r *submissionRepo) ListByAssignment(ctx context.Context, assignmentID int64) ([]model.Submission, error) {
	return findBy[model.Submission](ctx, r.db, "assignment_id", assignmentID, "id ASC")
}

func (r *submissionRepo) ListByUser(ctx context.Context, userID int64) ([]model.Submission, error) {
	return findBy[model.Submission](ctx, r.db, "user_id", userID, "id ASC")
}
