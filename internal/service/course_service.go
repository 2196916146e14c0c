package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/yessenovuniversity/canvas-db/internal/model"
	"github.com/yessenovuniversity/canvas-db/internal/repository"
)

// CourseService 课程与课程分组的加载及关联导航接口
// Account 与 RootAccount 是两条独立的边，分别读取 account_id / root_account_id。
type CourseService interface {
	GetCourse(ctx context.Context, id int64) (*model.Course, error)
	Account(ctx context.Context, c *model.Course) (*model.Account, error)
	RootAccount(ctx context.Context, c *model.Course) (*model.Account, error)
	Wiki(ctx context.Context, c *model.Course) (*model.Wiki, error)
	EnrollmentTerm(ctx context.Context, c *model.Course) (*model.EnrollmentTerm, error)
	SisBatch(ctx context.Context, c *model.Course) (*model.SisBatch, error)

	GetSection(ctx context.Context, id int64) (*model.CourseSection, error)
	SectionCourse(ctx context.Context, sec *model.CourseSection) (*model.Course, error)
	SectionSisBatch(ctx context.Context, sec *model.CourseSection) (*model.SisBatch, error)
	SectionRootAccount(ctx context.Context, sec *model.CourseSection) (*model.Account, error)
	SectionEnrollmentTerm(ctx context.Context, sec *model.CourseSection) (*model.EnrollmentTerm, error)
}

type courseService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewCourseService 创建 CourseService 实例
func NewCourseService(repo *repository.Repository, logger *zap.Logger) CourseService {
	return &courseService{repo: repo, logger: logger}
}

// ────────────────────── Course ──────────────────────

func (s *courseService) GetCourse(ctx context.Context, id int64) (*model.Course, error) {
	return load(ctx, s.logger, "courses", id, s.repo.Course.GetByID)
}

func (s *courseService) Account(ctx context.Context, c *model.Course) (*model.Account, error) {
	return follow(ctx, s.logger, "courses.account", c.AccountID, s.repo.Account.GetByID)
}

func (s *courseService) RootAccount(ctx context.Context, c *model.Course) (*model.Account, error) {
	return follow(ctx, s.logger, "courses.root_account", c.RootAccountID, s.repo.Account.GetByID)
}

func (s *courseService) Wiki(ctx context.Context, c *model.Course) (*model.Wiki, error) {
	return follow(ctx, s.logger, "courses.wiki", c.WikiID, s.repo.Wiki.GetByID)
}

func (s *courseService) EnrollmentTerm(ctx context.Context, c *model.Course) (*model.EnrollmentTerm, error) {
	return follow(ctx, s.logger, "courses.enrollment_term", c.EnrollmentTermID, s.repo.EnrollmentTerm.GetByID)
}

func (s *courseService) SisBatch(ctx context.Context, c *model.Course) (*model.SisBatch, error) {
	return follow(ctx, s.logger, "courses.sis_batch", c.SisBatchID, s.repo.SisBatch.GetByID)
}

// ────────────────────── CourseSection ──────────────────────

func (s *courseService) GetSection(ctx context.Context, id int64) (*model.CourseSection, error) {
	return load(ctx, s.logger, "course_sections", id, s.repo.CourseSection.GetByID)
}

func (s *courseService) SectionCourse(ctx context.Context, sec *model.CourseSection) (*model.Course, error) {
	return follow(ctx, s.logger, "course_sections.course", sec.CourseID, s.repo.Course.GetByID)
}

func (s *courseService) SectionSisBatch(ctx context.Context, sec *model.CourseSection) (*model.SisBatch, error) {
	return follow(ctx, s.logger, "course_sections.sis_batch", sec.SisBatchID, s.repo.SisBatch.GetByID)
}

func (s *courseService) SectionRootAccount(ctx context.Context, sec *model.CourseSection) (*model.Account, error) {
	return follow(ctx, s.logger, "course_sections.root_account", sec.RootAccountID, s.repo.Account.GetByID)
}

func (s *courseService) SectionEnrollmentTerm(ctx context.Context, sec *model.CourseSection) (*model.EnrollmentTerm, error) {
	return follow(ctx, s.logger, "course_sections.enrollment_term", sec.EnrollmentTermID, s.repo.EnrollmentTerm.GetByID)
}
