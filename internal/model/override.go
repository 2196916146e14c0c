package model

import "time"

// Override 截止时间例外，对应 assignment_overrides
// (set_type, set_id) 为多态目标：CourseSection / Group / ADHOC（学生名单见 OverrideStudent）。
// 每个时间字段都配有 *_overridden 标记，未覆盖时沿用作业默认值。
type Override struct {
	ID                 int64                 `gorm:"column:id;primaryKey" json:"id"`
	AssignmentID       *int64                `gorm:"column:assignment_id;index" json:"assignment_id,omitempty"`
	AssignmentVersion  *int64                `gorm:"column:assignment_version" json:"assignment_version,omitempty"`
	QuizID             *int64                `gorm:"column:quiz_id;index" json:"quiz_id,omitempty"`
	QuizVersion        *int64                `gorm:"column:quiz_version" json:"quiz_version,omitempty"`
	SetType            string                `gorm:"column:set_type;type:varchar(255)" json:"set_type"`
	SetID              *int64                `gorm:"column:set_id" json:"set_id,omitempty"`
	Title              *string               `gorm:"column:title;type:varchar(255)" json:"title,omitempty"`
	WorkflowState      OverrideWorkflowState `gorm:"column:workflow_state;type:varchar(255)" json:"workflow_state"`
	DueAtOverridden    bool                  `gorm:"column:due_at_overridden" json:"due_at_overridden"`
	DueAt              *time.Time            `gorm:"column:due_at" json:"due_at,omitempty"`
	AllDay             bool                  `gorm:"column:all_day" json:"all_day"`
	AllDayDate         *time.Time            `gorm:"column:all_day_date" json:"all_day_date,omitempty"`
	UnlockAtOverridden bool                  `gorm:"column:unlock_at_overridden" json:"unlock_at_overridden"`
	UnlockAt           *time.Time            `gorm:"column:unlock_at" json:"unlock_at,omitempty"`
	LockAtOverridden   bool                  `gorm:"column:lock_at_overridden" json:"lock_at_overridden"`
	LockAt             *time.Time            `gorm:"column:lock_at" json:"lock_at,omitempty"`
	Timestamps
}

// TableName 指定表名
func (Override) TableName() string { return "assignment_overrides" }

func (o Override) PrimaryKey() int64 { return o.ID }

func (o Override) Label() string { return labelOr(o.Title, o.ID) }

func (o Override) String() string { return describe("Override", o) }

// Set 例外作用的目标集合
func (o Override) Set() PolymorphicRef {
	return PolymorphicRef{Type: o.SetType, ID: o.SetID}
}

// EffectiveDueAt 仅在 due_at 被覆盖时返回例外值
func (o Override) EffectiveDueAt() (*time.Time, bool) {
	if !o.DueAtOverridden {
		return nil, false
	}
	return o.DueAt, true
}

// EffectiveUnlockAt 仅在 unlock_at 被覆盖时返回例外值
func (o Override) EffectiveUnlockAt() (*time.Time, bool) {
	if !o.UnlockAtOverridden {
		return nil, false
	}
	return o.UnlockAt, true
}

// EffectiveLockAt 仅在 lock_at 被覆盖时返回例外值
func (o Override) EffectiveLockAt() (*time.Time, bool) {
	if !o.LockAtOverridden {
		return nil, false
	}
	return o.LockAt, true
}

// OverrideStudent 例外-学生关联，对应 assignment_override_students
// 存储列名为 assignment_override_id，对外字段为 OverrideID。
type OverrideStudent struct {
	ID            int64                 `gorm:"column:id;primaryKey" json:"id"`
	AssignmentID  *int64                `gorm:"column:assignment_id;index" json:"assignment_id,omitempty"`
	OverrideID    *int64                `gorm:"column:assignment_override_id;index" json:"override_id,omitempty"`
	QuizID        *int64                `gorm:"column:quiz_id;index" json:"quiz_id,omitempty"`
	UserID        *int64                `gorm:"column:user_id;index" json:"user_id,omitempty"`
	WorkflowState OverrideWorkflowState `gorm:"column:workflow_state;type:varchar(255)" json:"workflow_state"`
	Timestamps
}

// TableName 指定表名
func (OverrideStudent) TableName() string { return "assignment_override_students" }

func (s OverrideStudent) PrimaryKey() int64 { return s.ID }

func (s OverrideStudent) Label() string { return refLabelOr("user", s.UserID, s.ID) }

func (s OverrideStudent) String() string { return describe("OverrideStudent", s) }
