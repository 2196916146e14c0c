package service

import (
	"context"
	"sort"

	"go.uber.org/zap"

	"github.com/yessenovuniversity/canvas-db/internal/model"
	"github.com/yessenovuniversity/canvas-db/internal/repository"
)

// ── Mock Repositories ──

// table 以主键为索引的内存表，所有表共享一个查询计数器
type table[T any] struct {
	rows    map[int64]*T
	queries *int
	err     error
}

func newTable[T any](queries *int) *table[T] {
	return &table[T]{rows: make(map[int64]*T), queries: queries}
}

func (t *table[T]) put(id int64, row *T) {
	t.rows[id] = row
}

func (t *table[T]) GetByID(_ context.Context, id int64) (*T, error) {
	*t.queries++
	if t.err != nil {
		return nil, t.err
	}
	return t.rows[id], nil
}

func (t *table[T]) where(match func(*T) bool) ([]T, error) {
	*t.queries++
	if t.err != nil {
		return nil, t.err
	}
	ids := make([]int64, 0, len(t.rows))
	for id := range t.rows {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	var out []T
	for _, id := range ids {
		if match(t.rows[id]) {
			out = append(out, *t.rows[id])
		}
	}
	return out, nil
}

func eq(p *int64, v int64) bool { return p != nil && *p == v }

func strEq(p *string, v string) bool { return p != nil && *p == v }

type mockEnrollmentTermRepo struct{ *table[model.EnrollmentTerm] }

func (m mockEnrollmentTermRepo) ListByRootAccount(_ context.Context, id int64) ([]model.EnrollmentTerm, error) {
	return m.where(func(t *model.EnrollmentTerm) bool { return eq(t.RootAccountID, id) })
}

type mockCourseRepo struct{ *table[model.Course] }

func (m mockCourseRepo) GetBySisSourceID(_ context.Context, sis string) (*model.Course, error) {
	rows, err := m.where(func(c *model.Course) bool { return strEq(c.SisSourceID, sis) })
	if err != nil || len(rows) == 0 {
		return nil, err
	}
	return &rows[0], nil
}

func (m mockCourseRepo) ListByAccount(_ context.Context, id int64) ([]model.Course, error) {
	return m.where(func(c *model.Course) bool { return eq(c.AccountID, id) })
}

func (m mockCourseRepo) ListByRootAccount(_ context.Context, id int64) ([]model.Course, error) {
	return m.where(func(c *model.Course) bool { return eq(c.RootAccountID, id) })
}

func (m mockCourseRepo) ListByEnrollmentTerm(_ context.Context, id int64) ([]model.Course, error) {
	return m.where(func(c *model.Course) bool { return eq(c.EnrollmentTermID, id) })
}

type mockCourseSectionRepo struct{ *table[model.CourseSection] }

func (m mockCourseSectionRepo) ListByCourse(_ context.Context, id int64) ([]model.CourseSection, error) {
	return m.where(func(s *model.CourseSection) bool { return eq(s.CourseID, id) })
}

type mockContextModuleRepo struct{ *table[model.ContextModule] }

func (m mockContextModuleRepo) ListByContext(_ context.Context, typ string, id int64) ([]model.ContextModule, error) {
	return m.where(func(cm *model.ContextModule) bool { return cm.ContextType == typ && eq(cm.ContextID, id) })
}

type mockContentTagRepo struct{ *table[model.ContentTag] }

func (m mockContentTagRepo) ListByContextModule(_ context.Context, id int64) ([]model.ContentTag, error) {
	return m.where(func(t *model.ContentTag) bool { return eq(t.ContextModuleID, id) })
}

type mockQuizRepo struct{ *table[model.Quiz] }

func (m mockQuizRepo) GetByAssignmentID(_ context.Context, id int64) (*model.Quiz, error) {
	rows, err := m.where(func(q *model.Quiz) bool { return eq(q.AssignmentID, id) })
	if err != nil || len(rows) == 0 {
		return nil, err
	}
	return &rows[0], nil
}

type mockSubmissionRepo struct{ *table[model.Submission] }

func (m mockSubmissionRepo) ListByAssignment(_ context.Context, id int64) ([]model.Submission, error) {
	return m.where(func(s *model.Submission) bool { return eq(s.AssignmentID, id) })
}

func (m mockSubmissionRepo) ListByUser(_ context.Context, id int64) ([]model.Submission, error) {
	return m.where(func(s *model.Submission) bool { return eq(s.UserID, id) })
}

type mockOverrideRepo struct{ *table[model.Override] }

func (m mockOverrideRepo) ListByAssignment(_ context.Context, id int64) ([]model.Override, error) {
	return m.where(func(o *model.Override) bool { return eq(o.AssignmentID, id) })
}

func (m mockOverrideRepo) ListByQuiz(_ context.Context, id int64) ([]model.Override, error) {
	return m.where(func(o *model.Override) bool { return eq(o.QuizID, id) })
}

type mockOverrideStudentRepo struct{ *table[model.OverrideStudent] }

func (m mockOverrideStudentRepo) ListByOverride(_ context.Context, id int64) ([]model.OverrideStudent, error) {
	return m.where(func(s *model.OverrideStudent) bool { return eq(s.OverrideID, id) })
}

func (m mockOverrideStudentRepo) ListByUser(_ context.Context, id int64) ([]model.OverrideStudent, error) {
	return m.where(func(s *model.OverrideStudent) bool { return eq(s.UserID, id) })
}

type mockPseudonymRepo struct{ *table[model.Pseudonym] }

func (m mockPseudonymRepo) GetBySisUserID(_ context.Context, sis string) (*model.Pseudonym, error) {
	rows, err := m.where(func(p *model.Pseudonym) bool { return strEq(p.SisUserID, sis) })
	if err != nil || len(rows) == 0 {
		return nil, err
	}
	return &rows[0], nil
}

func (m mockPseudonymRepo) ListByUser(_ context.Context, id int64) ([]model.Pseudonym, error) {
	return m.where(func(p *model.Pseudonym) bool { return eq(p.UserID, id) })
}

type mockEnrollmentRepo struct{ *table[model.Enrollment] }

func (m mockEnrollmentRepo) ListByCourse(_ context.Context, id int64) ([]model.Enrollment, error) {
	return m.where(func(e *model.Enrollment) bool { return eq(e.CourseID, id) })
}

func (m mockEnrollmentRepo) ListByCourseSection(_ context.Context, id int64) ([]model.Enrollment, error) {
	return m.where(func(e *model.Enrollment) bool { return eq(e.CourseSectionID, id) })
}

func (m mockEnrollmentRepo) ListByUser(_ context.Context, id int64) ([]model.Enrollment, error) {
	return m.where(func(e *model.Enrollment) bool { return eq(e.UserID, id) })
}

type mockEnrollmentStateRepo struct{ *table[model.EnrollmentState] }

func (m mockEnrollmentStateRepo) GetByEnrollmentID(ctx context.Context, id int64) (*model.EnrollmentState, error) {
	return m.GetByID(ctx, id)
}

type mockScoreRepo struct{ *table[model.Score] }

func (m mockScoreRepo) ListByEnrollment(_ context.Context, id int64) ([]model.Score, error) {
	return m.where(func(s *model.Score) bool { return eq(s.EnrollmentID, id) })
}

// mockStore 测试用的内存数据库
type mockStore struct {
	queries int

	accounts         *table[model.Account]
	wikis            *table[model.Wiki]
	terms            *table[model.EnrollmentTerm]
	sisBatches       *table[model.SisBatch]
	roles            *table[model.Role]
	courses          *table[model.Course]
	sections         *table[model.CourseSection]
	modules          *table[model.ContextModule]
	tags             *table[model.ContentTag]
	assignments      *table[model.Assignment]
	quizzes          *table[model.Quiz]
	overrides        *table[model.Override]
	overrideStudents *table[model.OverrideStudent]
	users            *table[model.User]
	pseudonyms       *table[model.Pseudonym]
	enrollments      *table[model.Enrollment]
	states           *table[model.EnrollmentState]
	scores           *table[model.Score]
	submissions      *table[model.Submission]
}

func newMockStore() *mockStore {
	s := &mockStore{}
	q := &s.queries
	s.accounts = newTable[model.Account](q)
	s.wikis = newTable[model.Wiki](q)
	s.terms = newTable[model.EnrollmentTerm](q)
	s.sisBatches = newTable[model.SisBatch](q)
	s.roles = newTable[model.Role](q)
	s.courses = newTable[model.Course](q)
	s.sections = newTable[model.CourseSection](q)
	s.modules = newTable[model.ContextModule](q)
	s.tags = newTable[model.ContentTag](q)
	s.assignments = newTable[model.Assignment](q)
	s.quizzes = newTable[model.Quiz](q)
	s.overrides = newTable[model.Override](q)
	s.overrideStudents = newTable[model.OverrideStudent](q)
	s.users = newTable[model.User](q)
	s.pseudonyms = newTable[model.Pseudonym](q)
	s.enrollments = newTable[model.Enrollment](q)
	s.states = newTable[model.EnrollmentState](q)
	s.scores = newTable[model.Score](q)
	s.submissions = newTable[model.Submission](q)
	return s
}

func (s *mockStore) repository() *repository.Repository {
	return &repository.Repository{
		Account:         s.accounts,
		Wiki:            s.wikis,
		EnrollmentTerm:  mockEnrollmentTermRepo{s.terms},
		SisBatch:        s.sisBatches,
		Role:            s.roles,
		Course:          mockCourseRepo{s.courses},
		CourseSection:   mockCourseSectionRepo{s.sections},
		ContextModule:   mockContextModuleRepo{s.modules},
		ContentTag:      mockContentTagRepo{s.tags},
		Assignment:      s.assignments,
		Quiz:            mockQuizRepo{s.quizzes},
		Override:        mockOverrideRepo{s.overrides},
		OverrideStudent: mockOverrideStudentRepo{s.overrideStudents},
		User:            s.users,
		Pseudonym:       mockPseudonymRepo{s.pseudonyms},
		Enrollment:      mockEnrollmentRepo{s.enrollments},
		EnrollmentState: mockEnrollmentStateRepo{s.states},
		Score:           mockScoreRepo{s.scores},
		Submission:      mockSubmissionRepo{s.submissions},
	}
}

func (s *mockStore) service() *Service {
	return NewService(s.repository(), zap.NewNop())
}

// ── 测试数据辅助 ──

func ptr[T any](v T) *T { return &v }
