package model

// ── workflow_state 枚举 ──
// 取值来自外部系统，为开放枚举：未知值原样保留，不做校验。

// CourseWorkflowState 课程状态
type CourseWorkflowState string

const (
	CourseCreated   CourseWorkflowState = "created"
	CourseClaimed   CourseWorkflowState = "claimed"
	CourseAvailable CourseWorkflowState = "available"
	CourseCompleted CourseWorkflowState = "completed"
	CourseDeleted   CourseWorkflowState = "deleted"
)

// SectionWorkflowState 课程分组状态
type SectionWorkflowState string

const (
	SectionActive  SectionWorkflowState = "active"
	SectionDeleted SectionWorkflowState = "deleted"
)

// EnrollmentWorkflowState 选课状态
type EnrollmentWorkflowState string

const (
	EnrollmentActive    EnrollmentWorkflowState = "active"
	EnrollmentInvited   EnrollmentWorkflowState = "invited"
	EnrollmentCreation  EnrollmentWorkflowState = "creation_pending"
	EnrollmentInactive  EnrollmentWorkflowState = "inactive"
	EnrollmentCompleted EnrollmentWorkflowState = "completed"
	EnrollmentRejected  EnrollmentWorkflowState = "rejected"
	EnrollmentDeleted   EnrollmentWorkflowState = "deleted"
)

// EnrollmentType 选课类型
type EnrollmentType string

const (
	StudentEnrollment     EnrollmentType = "StudentEnrollment"
	TeacherEnrollment     EnrollmentType = "TeacherEnrollment"
	TaEnrollment          EnrollmentType = "TaEnrollment"
	DesignerEnrollment    EnrollmentType = "DesignerEnrollment"
	ObserverEnrollment    EnrollmentType = "ObserverEnrollment"
	StudentViewEnrollment EnrollmentType = "StudentViewEnrollment"
)

// AssignmentWorkflowState 作业状态
type AssignmentWorkflowState string

const (
	AssignmentPublished   AssignmentWorkflowState = "published"
	AssignmentUnpublished AssignmentWorkflowState = "unpublished"
	AssignmentDuplicating AssignmentWorkflowState = "duplicating"
	AssignmentDeleted     AssignmentWorkflowState = "deleted"
)

// SubmissionWorkflowState 提交状态
type SubmissionWorkflowState string

const (
	SubmissionUnsubmitted   SubmissionWorkflowState = "unsubmitted"
	SubmissionSubmitted     SubmissionWorkflowState = "submitted"
	SubmissionPendingReview SubmissionWorkflowState = "pending_review"
	SubmissionGraded        SubmissionWorkflowState = "graded"
	SubmissionDeleted       SubmissionWorkflowState = "deleted"
)

// ModuleWorkflowState 模块 / 内容标签 / 例外设置 / 角色 / 成绩共用的 active|deleted 状态
type ModuleWorkflowState string

const (
	ModuleActive      ModuleWorkflowState = "active"
	ModuleUnpublished ModuleWorkflowState = "unpublished"
	ModuleDeleted     ModuleWorkflowState = "deleted"
)

// OverrideWorkflowState 截止时间例外状态
type OverrideWorkflowState string

const (
	OverrideActive  OverrideWorkflowState = "active"
	OverrideDeleted OverrideWorkflowState = "deleted"
)

// RoleWorkflowState 角色状态
type RoleWorkflowState string

const (
	RoleActive   RoleWorkflowState = "active"
	RoleInactive RoleWorkflowState = "inactive"
	RoleBuiltIn  RoleWorkflowState = "built_in"
	RoleDeleted  RoleWorkflowState = "deleted"
)

// ScoreWorkflowState 成绩状态
type ScoreWorkflowState string

const (
	ScoreActive  ScoreWorkflowState = "active"
	ScoreDeleted ScoreWorkflowState = "deleted"
)

// EnrollmentStateValue enrollment_states.state 取值
type EnrollmentStateValue string

const (
	StateActive         EnrollmentStateValue = "active"
	StateInvited        EnrollmentStateValue = "invited"
	StatePendingActive  EnrollmentStateValue = "pending_active"
	StatePendingInvited EnrollmentStateValue = "pending_invited"
	StateInactive       EnrollmentStateValue = "inactive"
	StateCompleted      EnrollmentStateValue = "completed"
	StateRejected       EnrollmentStateValue = "rejected"
	StateDeleted        EnrollmentStateValue = "deleted"
)

// ── 多态类型名 ──

const (
	ContextTypeCourse        = "Course"
	SetTypeAdhoc             = "ADHOC"
	SetTypeCourseSection     = "CourseSection"
	SetTypeGroup             = "Group"
	SetTypeNoop              = "Noop"
	ContentTypeAssignment    = "Assignment"
	ContentTypeQuiz          = "Quizzes::Quiz"
	ContentTypeContextModule = "ContextModule"
)
