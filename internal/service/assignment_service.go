package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/yessenovuniversity/canvas-db/internal/model"
	"github.com/yessenovuniversity/canvas-db/internal/repository"
)

// AssignmentService 作业、测验、覆盖规则与提交的加载及导航接口
type AssignmentService interface {
	GetAssignment(ctx context.Context, id int64) (*model.Assignment, error)

	GetQuiz(ctx context.Context, id int64) (*model.Quiz, error)
	QuizAssignment(ctx context.Context, q *model.Quiz) (*model.Assignment, error)

	GetOverride(ctx context.Context, id int64) (*model.Override, error)
	OverrideAssignment(ctx context.Context, o *model.Override) (*model.Assignment, error)
	OverrideQuiz(ctx context.Context, o *model.Override) (*model.Quiz, error)
	OverrideSet(ctx context.Context, o *model.Override, reg *Registry) (model.Entity, error)

	GetOverrideStudent(ctx context.Context, id int64) (*model.OverrideStudent, error)
	StudentAssignment(ctx context.Context, st *model.OverrideStudent) (*model.Assignment, error)
	StudentOverride(ctx context.Context, st *model.OverrideStudent) (*model.Override, error)
	StudentQuiz(ctx context.Context, st *model.OverrideStudent) (*model.Quiz, error)
	StudentUser(ctx context.Context, st *model.OverrideStudent) (*model.User, error)

	GetSubmission(ctx context.Context, id int64) (*model.Submission, error)
	SubmissionAssignment(ctx context.Context, sub *model.Submission) (*model.Assignment, error)
	SubmissionUser(ctx context.Context, sub *model.Submission) (*model.User, error)
}

type assignmentService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewAssignmentService 创建 AssignmentService 实例
func NewAssignmentService(repo *repository.Repository, logger *zap.Logger) AssignmentService {
	return &assignmentService{repo: repo, logger: logger}
}

func (s *assignmentService) GetAssignment(ctx context.Context, id int64) (*model.Assignment, error) {
	return load(ctx, s.logger, "assignments", id, s.repo.Assignment.GetByID)
}

// ────────────────────── Quiz ──────────────────────

func (s *assignmentService) GetQuiz(ctx context.Context, id int64) (*model.Quiz, error) {
	return load(ctx, s.logger, "quizzes", id, s.repo.Quiz.GetByID)
}

func (s *assignmentService) QuizAssignment(ctx context.Context, q *model.Quiz) (*model.Assignment, error) {
	return follow(ctx, s.logger, "quizzes.assignment", q.AssignmentID, s.repo.Assignment.GetByID)
}

// ────────────────────── Override ──────────────────────

func (s *assignmentService) GetOverride(ctx context.Context, id int64) (*model.Override, error) {
	return load(ctx, s.logger, "assignment_overrides", id, s.repo.Override.GetByID)
}

func (s *assignmentService) OverrideAssignment(ctx context.Context, o *model.Override) (*model.Assignment, error) {
	return follow(ctx, s.logger, "assignment_overrides.assignment", o.AssignmentID, s.repo.Assignment.GetByID)
}

func (s *assignmentService) OverrideQuiz(ctx context.Context, o *model.Override) (*model.Quiz, error) {
	return follow(ctx, s.logger, "assignment_overrides.quiz", o.QuizID, s.repo.Quiz.GetByID)
}

func (s *assignmentService) OverrideSet(ctx context.Context, o *model.Override, reg *Registry) (model.Entity, error) {
	return resolve(ctx, s.logger, "assignment_overrides.set", reg, o.Set())
}

// ────────────────────── OverrideStudent ──────────────────────

func (s *assignmentService) GetOverrideStudent(ctx context.Context, id int64) (*model.OverrideStudent, error) {
	return load(ctx, s.logger, "assignment_override_students", id, s.repo.OverrideStudent.GetByID)
}

func (s *assignmentService) StudentAssignment(ctx context.Context, st *model.OverrideStudent) (*model.Assignment, error) {
	return follow(ctx, s.logger, "assignment_override_students.assignment", st.AssignmentID, s.repo.Assignment.GetByID)
}

func (s *assignmentService) StudentOverride(ctx context.Context, st *model.OverrideStudent) (*model.Override, error) {
	return follow(ctx, s.logger, "assignment_override_students.override", st.OverrideID, s.repo.Override.GetByID)
}

func (s *assignmentService) StudentQuiz(ctx context.Context, st *model.OverrideStudent) (*model.Quiz, error) {
	return follow(ctx, s.logger, "assignment_override_students.quiz", st.QuizID, s.repo.Quiz.GetByID)
}

func (s *assignmentService) StudentUser(ctx context.Context, st *model.OverrideStudent) (*model.User, error) {
	return follow(ctx, s.logger, "assignment_override_students.user", st.UserID, s.repo.User.GetByID)
}

// ────────────────────── Submission ──────────────────────

func (s *assignmentService) GetSubmission(ctx context.Context, id int64) (*model.Submission, error) {
	return load(ctx, s.logger, "submissions", id, s.repo.Submission.GetByID)
}

func (s *assignmentService) SubmissionAssignment(ctx context.Context, sub *model.Submission) (*model.Assignment, error) {
	return follow(ctx, s.logger, "submissions.assignment", sub.AssignmentID, s.repo.Assignment.GetByID)
}

func (s *assignmentService) SubmissionUser(ctx context.Context, sub *model.Submission) (*model.User, error) {
	return follow(ctx, s.logger, "submissions.user", sub.UserID, s.repo.User.GetByID)
}
