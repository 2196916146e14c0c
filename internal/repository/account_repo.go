package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/yessenovuniversity/canvas-db/internal/model"
)

// AccountRepository 账户数据访问接口
type AccountRepository interface {
	GetByID(ctx context.Context, id int64) (*model.Account, error)
}

// WikiRepository Wiki 数据访问接口
type WikiRepository interface {
	GetByID(ctx context.Context, id int64) (*model.Wiki, error)
}

// SisBatchRepository SIS 批次数据访问接口
type SisBatchRepository interface {
	GetByID(ctx context.Context, id int64) (*model.SisBatch, error)
}

// RoleRepository 角色数据访问接口
type RoleRepository interface {
	GetByID(ctx context.Context, id int64) (*model.Role, error)
}

// EnrollmentTermRepository 学期数据访问接口
type EnrollmentTermRepository interface {
	GetByID(ctx context.Context, id int64) (*model.EnrollmentTerm, error)
	ListByRootAccount(ctx context.Context, rootAccountID int64) ([]model.EnrollmentTerm, error)
}

// ── Account ──

type accountRepo struct {
	db *gorm.DB
}

// NewAccountRepo 创建 AccountRepository 实例
func NewAccountRepo(db *gorm.DB) AccountRepository {
	return &accountRepo{db: db}
}

func (r *accountRepo) GetByID(ctx context.Context, id int64) (*model.Account, error) {
	return first[model.Account](ctx, r.db, "id", id)
}

// ── Wiki ──

type wikiRepo struct {
	db *gorm.DB
}

func NewWikiRepo(db *gorm.DB) WikiRepository {
	return &wikiRepo{db: db}
}

func (r *wikiRepo) GetByID(ctx context.Context, id int64) (*model.Wiki, error) {
	return first[model.Wiki](ctx, r.db, "id", id)
}

// ── SisBatch ──

type sisBatchRepo struct {
	db *gorm.DB
}

func NewSisBatchRepo(db *gorm.DB) SisBatchRepository {
	return &sisBatchRepo{db: db}
}

func (r *sisBatchRepo) GetByID(ctx context.Context, id int64) (*model.SisBatch, error) {
	return first[model.SisBatch](ctx, r.db, "id", id)
}

// ── Role ──

type roleRepo struct {
	db *gorm.DB
}

func NewRoleRepo(db *gorm.DB) RoleRepository {
	return &roleRepo{db: db}
}

func (r *roleRepo) GetByID(ctx context.Context, id int64) (*model.Role, error) {
	return first[model.Role](ctx, r.db, "id", id)
}

// ── EnrollmentTerm ──

type enrollmentTermRepo struct {
	db *gorm.DB
}

// NewEnrollmentTermRepo 创建 EnrollmentTermRepository 实例
func NewEnrollmentTermRepo(db *gorm.DB) EnrollmentTermRepository {
	return &enrollmentTermRepo{db: db}
}

func (r *enrollmentTermRepo) GetByID(ctx context.Context, id int64) (*model.EnrollmentTerm, error) {
	return first[model.EnrollmentTerm](ctx, r.db, "id", id)
}

func (r *enrollmentTermRepo) ListByRootAccount(ctx context.Context, rootAccountID int64) ([]model.EnrollmentTerm, error) {
	return findBy[model.EnrollmentTerm](ctx, r.db, "root_account_id", rootAccountID, "id ASC")
}
