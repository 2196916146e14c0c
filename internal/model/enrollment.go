package model

import "time"

// Enrollment 选课表，对应 enrollments
// user_id 与 associated_user_id 是指向 users 的两条独立外键（如旁听者 → 被旁听学生）。
type Enrollment struct {
	ID                int64                   `gorm:"column:id;primaryKey" json:"id"`
	UserID            *int64                  `gorm:"column:user_id;index" json:"user_id,omitempty"`
	AssociatedUserID  *int64                  `gorm:"column:associated_user_id" json:"associated_user_id,omitempty"`
	CourseID          *int64                  `gorm:"column:course_id;index" json:"course_id,omitempty"`
	CourseSectionID   *int64                  `gorm:"column:course_section_id;index" json:"course_section_id,omitempty"`
	RoleID            *int64                  `gorm:"column:role_id" json:"role_id,omitempty"`
	SisPseudonymID    *int64                  `gorm:"column:sis_pseudonym_id" json:"sis_pseudonym_id,omitempty"`
	RootAccountID     *int64                  `gorm:"column:root_account_id;index" json:"root_account_id,omitempty"`
	SisBatchID        *int64                  `gorm:"column:sis_batch_id" json:"sis_batch_id,omitempty"`
	Type              EnrollmentType          `gorm:"column:type;type:varchar(255)" json:"type"`
	WorkflowState     EnrollmentWorkflowState `gorm:"column:workflow_state;type:varchar(255)" json:"workflow_state"`
	StartAt           *time.Time              `gorm:"column:start_at" json:"start_at,omitempty"`
	EndAt             *time.Time              `gorm:"column:end_at" json:"end_at,omitempty"`
	CompletedAt       *time.Time              `gorm:"column:completed_at" json:"completed_at,omitempty"`
	LastActivityAt    *time.Time              `gorm:"column:last_activity_at" json:"last_activity_at,omitempty"`
	TotalActivityTime *int64                  `gorm:"column:total_activity_time" json:"total_activity_time,omitempty"` // 秒
	Timestamps
}

// TableName 指定表名
func (Enrollment) TableName() string { return "enrollments" }

func (e Enrollment) PrimaryKey() int64 { return e.ID }

func (e Enrollment) Label() string { return refLabelOr("user", e.UserID, e.ID) }

func (e Enrollment) String() string { return describe("Enrollment", e) }
