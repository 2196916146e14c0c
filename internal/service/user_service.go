package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/yessenovuniversity/canvas-db/internal/model"
	"github.com/yessenovuniversity/canvas-db/internal/repository"
)

// UserService 用户与登录身份加载接口
type UserService interface {
	GetUser(ctx context.Context, id int64) (*model.User, error)
	GetPseudonym(ctx context.Context, id int64) (*model.Pseudonym, error)
	PseudonymUser(ctx context.Context, p *model.Pseudonym) (*model.User, error)
}

type userService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewUserService 创建 UserService 实例
func NewUserService(repo *repository.Repository, logger *zap.Logger) UserService {
	return &userService{repo: repo, logger: logger}
}

func (s *userService) GetUser(ctx context.Context, id int64) (*model.User, error) {
	return load(ctx, s.logger, "users", id, s.repo.User.GetByID)
}

func (s *userService) GetPseudonym(ctx context.Context, id int64) (*model.Pseudonym, error) {
	return load(ctx, s.logger, "pseudonyms", id, s.repo.Pseudonym.GetByID)
}

func (s *userService) PseudonymUser(ctx context.Context, p *model.Pseudonym) (*model.User, error) {
	return follow(ctx, s.logger, "pseudonyms.user", p.UserID, s.repo.User.GetByID)
}
