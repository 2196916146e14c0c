package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/yessenovuniversity/canvas-db/internal/model"
	"github.com/yessenovuniversity/canvas-db/internal/repository"
)

// EnrollmentService 选课记录、选课状态与成绩的加载及导航接口
// User 与 AssociatedUser 是两条独立的边，互不回退。
type EnrollmentService interface {
	GetEnrollment(ctx context.Context, id int64) (*model.Enrollment, error)
	User(ctx context.Context, e *model.Enrollment) (*model.User, error)
	AssociatedUser(ctx context.Context, e *model.Enrollment) (*model.User, error)
	Course(ctx context.Context, e *model.Enrollment) (*model.Course, error)
	CourseSection(ctx context.Context, e *model.Enrollment) (*model.CourseSection, error)
	Role(ctx context.Context, e *model.Enrollment) (*model.Role, error)
	SisPseudonym(ctx context.Context, e *model.Enrollment) (*model.Pseudonym, error)
	RootAccount(ctx context.Context, e *model.Enrollment) (*model.Account, error)
	SisBatch(ctx context.Context, e *model.Enrollment) (*model.SisBatch, error)
	State(ctx context.Context, e *model.Enrollment) (*model.EnrollmentState, error)

	GetState(ctx context.Context, enrollmentID int64) (*model.EnrollmentState, error)
	StateEnrollment(ctx context.Context, st *model.EnrollmentState) (*model.Enrollment, error)

	GetScore(ctx context.Context, id int64) (*model.Score, error)
	ScoreEnrollment(ctx context.Context, sc *model.Score) (*model.Enrollment, error)
}

type enrollmentService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewEnrollmentService 创建 EnrollmentService 实例
func NewEnrollmentService(repo *repository.Repository, logger *zap.Logger) EnrollmentService {
	return &enrollmentService{repo: repo, logger: logger}
}

func (s *enrollmentService) GetEnrollment(ctx context.Context, id int64) (*model.Enrollment, error) {
	return load(ctx, s.logger, "enrollments", id, s.repo.Enrollment.GetByID)
}

func (s *enrollmentService) User(ctx context.Context, e *model.Enrollment) (*model.User, error) {
	return follow(ctx, s.logger, "enrollments.user", e.UserID, s.repo.User.GetByID)
}

func (s *enrollmentService) AssociatedUser(ctx context.Context, e *model.Enrollment) (*model.User, error) {
	return follow(ctx, s.logger, "enrollments.associated_user", e.AssociatedUserID, s.repo.User.GetByID)
}

func (s *enrollmentService) Course(ctx context.Context, e *model.Enrollment) (*model.Course, error) {
	return follow(ctx, s.logger, "enrollments.course", e.CourseID, s.repo.Course.GetByID)
}

func (s *enrollmentService) CourseSection(ctx context.Context, e *model.Enrollment) (*model.CourseSection, error) {
	return follow(ctx, s.logger, "enrollments.course_section", e.CourseSectionID, s.repo.CourseSection.GetByID)
}

func (s *enrollmentService) Role(ctx context.Context, e *model.Enrollment) (*model.Role, error) {
	return follow(ctx, s.logger, "enrollments.role", e.RoleID, s.repo.Role.GetByID)
}

func (s *enrollmentService) SisPseudonym(ctx context.Context, e *model.Enrollment) (*model.Pseudonym, error) {
	return follow(ctx, s.logger, "enrollments.sis_pseudonym", e.SisPseudonymID, s.repo.Pseudonym.GetByID)
}

func (s *enrollmentService) RootAccount(ctx context.Context, e *model.Enrollment) (*model.Account, error) {
	return follow(ctx, s.logger, "enrollments.root_account", e.RootAccountID, s.repo.Account.GetByID)
}

func (s *enrollmentService) SisBatch(ctx context.Context, e *model.Enrollment) (*model.SisBatch, error) {
	return follow(ctx, s.logger, "enrollments.sis_batch", e.SisBatchID, s.repo.SisBatch.GetByID)
}

// State 选课状态以 enrollment_id 为主键，与选课一一对应
func (s *enrollmentService) State(ctx context.Context, e *model.Enrollment) (*model.EnrollmentState, error) {
	id := e.ID
	return follow(ctx, s.logger, "enrollments.state", &id, s.repo.EnrollmentState.GetByEnrollmentID)
}

// ────────────────────── EnrollmentState ──────────────────────

func (s *enrollmentService) GetState(ctx context.Context, enrollmentID int64) (*model.EnrollmentState, error) {
	return load(ctx, s.logger, "enrollment_states", enrollmentID, s.repo.EnrollmentState.GetByEnrollmentID)
}

func (s *enrollmentService) StateEnrollment(ctx context.Context, st *model.EnrollmentState) (*model.Enrollment, error) {
	id := st.EnrollmentID
	return follow(ctx, s.logger, "enrollment_states.enrollment", &id, s.repo.Enrollment.GetByID)
}

// ────────────────────── Score ──────────────────────

func (s *enrollmentService) GetScore(ctx context.Context, id int64) (*model.Score, error) {
	return load(ctx, s.logger, "scores", id, s.repo.Score.GetByID)
}

func (s *enrollmentService) ScoreEnrollment(ctx context.Context, sc *model.Score) (*model.Enrollment, error) {
	return follow(ctx, s.logger, "scores.enrollment", sc.EnrollmentID, s.repo.Enrollment.GetByID)
}
