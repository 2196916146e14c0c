package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/yessenovuniversity/canvas-db/internal/model"
)

// UserRepository 用户数据访问接口
type UserRepository interface {
	GetByID(ctx context.Context, id int64) (*model.User, error)
}

// PseudonymRepository 登录身份数据访问接口
type PseudonymRepository interface {
	GetByID(ctx context.Context, id int64) (*model.Pseudonym, error)
	GetBySisUserID(ctx context.Context, sisUserID string) (*model.Pseudonym, error)
	ListByUser(ctx context.Context, userID int64) ([]model.Pseudonym, error)
}

// ── User ──

type userRepo struct {
	db *gorm.DB
}

// NewUserRepo 创建 UserRepository 实例
func NewUserRepo(db *gorm.DB) UserRepository {
	return &userRepo{db: db}
}

func (r *userRepo) GetByID(ctx context.Context, id int64) (*model.User, error) {
	return first[model.User](ctx, r.db, "id", id)
}

// ── Pseudonym ──

type pseudonymRepo struct {
	db *gorm.DB
}

// NewPseudonymRepo 创建 PseudonymRepository 实例
func NewPseudonymRepo(db *gorm.DB) PseudonymRepository {
	return &pseudonymRepo{db: db}
}

func (r *pseudonymRepo) GetByID(ctx context.Context, id int64) (*model.Pseudonym, error) {
	return first[model.Pseudonym](ctx, r.db, "id", id)
}

func (r *pseudonymRepo) GetBySisUserID(ctx context.Context, sisUserID string) (*model.Pseudonym, error) {
	return first[model.Pseudonym](ctx, r.db, "sis_user_id", sisUserID)
}

// ListByUser 按 position 排序，首个即主登录身份
func (r *pseudonymRepo) ListByUser(ctx context.Context, userID int64) ([]model.Pseudonym, error) {
	return findBy[model.Pseudonym](ctx, r.db, "user_id", userID, "position ASC, id ASC")
}
