package model

import (
	"strconv"
	"time"
)

// EnrollmentState 选课状态扩展表，对应 enrollment_states
// 主键即 enrollment_id，每个 Enrollment 至多一行。
type EnrollmentState struct {
	EnrollmentID     int64                `gorm:"column:enrollment_id;primaryKey;autoIncrement:false" json:"enrollment_id"`
	State            EnrollmentStateValue `gorm:"column:state;type:varchar(255)" json:"state"`
	StateIsCurrent   bool                 `gorm:"column:state_is_current" json:"state_is_current"`
	StateStartedAt   *time.Time           `gorm:"column:state_started_at" json:"state_started_at,omitempty"`
	StateValidUntil  *time.Time           `gorm:"column:state_valid_until" json:"state_valid_until,omitempty"`
	RestrictedAccess bool                 `gorm:"column:restricted_access" json:"restricted_access"`
	AccessIsCurrent  bool                 `gorm:"column:access_is_current" json:"access_is_current"`
	LockVersion      int64                `gorm:"column:lock_version" json:"lock_version"` // 外部系统的乐观锁版本，本层只读
	UpdatedAt        *time.Time           `gorm:"column:updated_at" json:"updated_at,omitempty"`
}

// TableName 指定表名
func (EnrollmentState) TableName() string { return "enrollment_states" }

func (s EnrollmentState) PrimaryKey() int64 { return s.EnrollmentID }

// Label 状态值，为空时回退到 enrollment_id
func (s EnrollmentState) Label() string {
	if s.State == "" {
		return strconv.FormatInt(s.EnrollmentID, 10)
	}
	return string(s.State)
}

func (s EnrollmentState) String() string { return describe("EnrollmentState", s) }
