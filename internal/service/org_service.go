package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/yessenovuniversity/canvas-db/internal/model"
	"github.com/yessenovuniversity/canvas-db/internal/repository"
)

// OrgService 组织层级（账户、学期、Wiki、SIS 批次、角色）加载接口
type OrgService interface {
	GetAccount(ctx context.Context, id int64) (*model.Account, error)
	GetWiki(ctx context.Context, id int64) (*model.Wiki, error)
	GetSisBatch(ctx context.Context, id int64) (*model.SisBatch, error)
	GetRole(ctx context.Context, id int64) (*model.Role, error)
	GetEnrollmentTerm(ctx context.Context, id int64) (*model.EnrollmentTerm, error)
	TermRootAccount(ctx context.Context, term *model.EnrollmentTerm) (*model.Account, error)
}

type orgService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewOrgService 创建 OrgService 实例
func NewOrgService(repo *repository.Repository, logger *zap.Logger) OrgService {
	return &orgService{repo: repo, logger: logger}
}

func (s *orgService) GetAccount(ctx context.Context, id int64) (*model.Account, error) {
	return load(ctx, s.logger, "accounts", id, s.repo.Account.GetByID)
}

func (s *orgService) GetWiki(ctx context.Context, id int64) (*model.Wiki, error) {
	return load(ctx, s.logger, "wikis", id, s.repo.Wiki.GetByID)
}

func (s *orgService) GetSisBatch(ctx context.Context, id int64) (*model.SisBatch, error) {
	return load(ctx, s.logger, "sis_batches", id, s.repo.SisBatch.GetByID)
}

func (s *orgService) GetRole(ctx context.Context, id int64) (*model.Role, error) {
	return load(ctx, s.logger, "roles", id, s.repo.Role.GetByID)
}

func (s *orgService) GetEnrollmentTerm(ctx context.Context, id int64) (*model.EnrollmentTerm, error) {
	return load(ctx, s.logger, "enrollment_terms", id, s.repo.EnrollmentTerm.GetByID)
}

func (s *orgService) TermRootAccount(ctx context.Context, term *model.EnrollmentTerm) (*model.Account, error) {
	return follow(ctx, s.logger, "enrollment_terms.root_account", term.RootAccountID, s.repo.Account.GetByID)
}
