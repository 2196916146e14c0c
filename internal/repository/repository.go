package repository

import (
	"context"

	"gorm.io/gorm"

	pkgerrors "github.com/yessenovuniversity/canvas-db/pkg/errors"
)

// Repository 所有 Repository 的聚合入口（只读）
type Repository struct {
	Account         AccountRepository
	Wiki            WikiRepository
	EnrollmentTerm  EnrollmentTermRepository
	SisBatch        SisBatchRepository
	Role            RoleRepository
	Course          CourseRepository
	CourseSection   CourseSectionRepository
	ContextModule   ContextModuleRepository
	ContentTag      ContentTagRepository
	Assignment      AssignmentRepository
	Quiz            QuizRepository
	Override        OverrideRepository
	OverrideStudent OverrideStudentRepository
	User            UserRepository
	Pseudonym       PseudonymRepository
	Enrollment      EnrollmentRepository
	EnrollmentState EnrollmentStateRepository
	Score           ScoreRepository
	Submission      SubmissionRepository
}

// NewRepository 创建 Repository 聚合
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{
		Account:         NewAccountRepo(db),
		Wiki:            NewWikiRepo(db),
		EnrollmentTerm:  NewEnrollmentTermRepo(db),
		SisBatch:        NewSisBatchRepo(db),
		Role:            NewRoleRepo(db),
		Course:          NewCourseRepo(db),
		CourseSection:   NewCourseSectionRepo(db),
		ContextModule:   NewContextModuleRepo(db),
		ContentTag:      NewContentTagRepo(db),
		Assignment:      NewAssignmentRepo(db),
		Quiz:            NewQuizRepo(db),
		Override:        NewOverrideRepo(db),
		OverrideStudent: NewOverrideStudentRepo(db),
		User:            NewUserRepo(db),
		Pseudonym:       NewPseudonymRepo(db),
		Enrollment:      NewEnrollmentRepo(db),
		EnrollmentState: NewEnrollmentStateRepo(db),
		Score:           NewScoreRepo(db),
		Submission:      NewSubmissionRepo(db),
	}
}

// ── 通用查询 ──

// first 按列等值查询单行；不存在时返回 (nil, nil)，其余错误经 Classify 归类
func first[T any](ctx context.Context, db *gorm.DB, column string, value any) (*T, error) {
	var row T
	err := db.WithContext(ctx).
		Where(column+" = ?", value).
		First(&row).Error
	if err != nil {
		if pkgerrors.IsNotFound(err) {
			return nil, nil
		}
		return nil, pkgerrors.Classify(err)
	}
	return &row, nil
}

// findBy 按外键列查询全部行
func findBy[T any](ctx context.Context, db *gorm.DB, column string, value int64, order string) ([]T, error) {
	var rows []T
	err := db.WithContext(ctx).
		Where(column+" = ?", value).
		Order(order).
		Find(&rows).Error
	if err != nil {
		return nil, pkgerrors.Classify(err)
	}
	return rows, nil
}
