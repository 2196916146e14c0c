package service

import (
	"context"
	"testing"

	"github.com/yessenovuniversity/canvas-db/internal/model"
)

func seedEnrollment(s *mockStore) {
	seedDeptCourse(s)
	s.users.put(100, &model.User{ID: 100, Name: ptr("Student")})
	s.users.put(200, &model.User{ID: 200, Name: ptr("Observer")})
	s.roles.put(5, &model.Role{ID: 5, Name: ptr("StudentEnrollment")})
	s.pseudonyms.put(7, &model.Pseudonym{ID: 7, UserID: ptr[int64](100), SisUserID: ptr("S-100")})
	s.enrollments.put(50, &model.Enrollment{
		ID:               50,
		UserID:           ptr[int64](100),
		AssociatedUserID: ptr[int64](200),
		CourseID:         ptr[int64](10),
		RoleID:           ptr[int64](5),
		SisPseudonymID:   ptr[int64](7),
		RootAccountID:    ptr[int64](2),
		Type:             model.ObserverEnrollment,
	})
	s.states.put(50, &model.EnrollmentState{EnrollmentID: 50, State: model.StateActive})
	s.scores.put(60, &model.Score{ID: 60, EnrollmentID: ptr[int64](50), CurrentScore: ptr(91.5)})
}

func TestEnrollmentService_UserAndAssociatedUserIndependent(t *testing.T) {
	store := newMockStore()
	seedEnrollment(store)
	svc := store.service().Enrollment
	ctx := context.Background()

	e, _ := svc.GetEnrollment(ctx, 50)
	if e == nil {
		t.Fatal("期望加载到选课记录")
	}
	user, _ := svc.User(ctx, e)
	observed, _ := svc.AssociatedUser(ctx, e)
	if user == nil || user.ID != 100 {
		t.Errorf("user 边期望 100，实际 %v", user)
	}
	if observed == nil || observed.ID != 200 {
		t.Errorf("associated_user 边期望 200，实际 %v", observed)
	}

	e.AssociatedUserID = nil
	observed, err := svc.AssociatedUser(ctx, e)
	if err != nil || observed != nil {
		t.Errorf("associated_user_id 为 NULL 时不应回退到 user_id，实际 %v, %v", observed, err)
	}
}

func TestEnrollmentService_Edges(t *testing.T) {
	store := newMockStore()
	seedEnrollment(store)
	svc := store.service().Enrollment
	ctx := context.Background()

	e, _ := svc.GetEnrollment(ctx, 50)

	course, _ := svc.Course(ctx, e)
	if course == nil || course.ID != 10 {
		t.Errorf("期望课程 10，实际 %v", course)
	}
	role, _ := svc.Role(ctx, e)
	if role == nil || role.Label() != "StudentEnrollment" {
		t.Errorf("期望角色 StudentEnrollment，实际 %v", role)
	}
	p, _ := svc.SisPseudonym(ctx, e)
	if p == nil || p.Label() != "user 100" {
		t.Errorf("期望登录身份 user 100，实际 %v", p)
	}
	root, _ := svc.RootAccount(ctx, e)
	if root == nil || root.ID != 2 {
		t.Errorf("期望根账户 2，实际 %v", root)
	}
	sec, err := svc.CourseSection(ctx, e)
	if err != nil || sec != nil {
		t.Errorf("course_section_id 为 NULL 时应返回 (nil, nil)，实际 %v, %v", sec, err)
	}
}

func TestEnrollmentService_StateSharesPrimaryKey(t *testing.T) {
	store := newMockStore()
	seedEnrollment(store)
	svc := store.service().Enrollment
	ctx := context.Background()

	e, _ := svc.GetEnrollment(ctx, 50)
	state, err := svc.State(ctx, e)
	if err != nil || state == nil {
		t.Fatalf("加载选课状态失败: %v", err)
	}
	if state.Label() != "active" {
		t.Errorf("期望状态 active，实际 %q", state.Label())
	}

	back, _ := svc.StateEnrollment(ctx, state)
	if back == nil || back.ID != 50 {
		t.Errorf("期望回到选课 50，实际 %v", back)
	}

	store.enrollments.put(51, &model.Enrollment{ID: 51})
	orphan, _ := svc.GetEnrollment(ctx, 51)
	state, err = svc.State(ctx, orphan)
	if err != nil || state != nil {
		t.Errorf("没有状态行时应返回 (nil, nil)，实际 %v, %v", state, err)
	}
}

func TestEnrollmentService_ScoreEnrollment(t *testing.T) {
	store := newMockStore()
	seedEnrollment(store)
	svc := store.service().Enrollment
	ctx := context.Background()

	sc, _ := svc.GetScore(ctx, 60)
	if sc == nil || sc.Label() != "91.5" {
		t.Fatalf("期望成绩 91.5，实际 %v", sc)
	}
	e, _ := svc.ScoreEnrollment(ctx, sc)
	if e == nil || e.ID != 50 {
		t.Errorf("期望选课 50，实际 %v", e)
	}
}

func TestUserService_PseudonymUser(t *testing.T) {
	store := newMockStore()
	seedEnrollment(store)
	svc := store.service().User
	ctx := context.Background()

	p, _ := svc.GetPseudonym(ctx, 7)
	u, err := svc.PseudonymUser(ctx, p)
	if err != nil || u == nil || u.Label() != "Student" {
		t.Errorf("期望用户 Student，实际 %v, %v", u, err)
	}
}
