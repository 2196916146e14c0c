package model

import "time"

// CourseSection 课程分组，对应 course_sections
type CourseSection struct {
	ID                                int64                `gorm:"column:id;primaryKey" json:"id"`
	CourseID                          *int64               `gorm:"column:course_id;index" json:"course_id,omitempty"`
	SisBatchID                        *int64               `gorm:"column:sis_batch_id" json:"sis_batch_id,omitempty"`
	RootAccountID                     *int64               `gorm:"column:root_account_id;index" json:"root_account_id,omitempty"`
	EnrollmentTermID                  *int64               `gorm:"column:enrollment_term_id;index" json:"enrollment_term_id,omitempty"`
	SisSourceID                       *string              `gorm:"column:sis_source_id;type:varchar(255)" json:"sis_source_id,omitempty"`
	IntegrationID                     *string              `gorm:"column:integration_id;type:varchar(255)" json:"integration_id,omitempty"`
	Name                              *string              `gorm:"column:name;type:varchar(255)" json:"name,omitempty"`
	WorkflowState                     SectionWorkflowState `gorm:"column:workflow_state;type:varchar(255)" json:"workflow_state"`
	DefaultSection                    bool                 `gorm:"column:default_section" json:"default_section"`
	StartAt                           *time.Time           `gorm:"column:start_at" json:"start_at,omitempty"`
	EndAt                             *time.Time           `gorm:"column:end_at" json:"end_at,omitempty"`
	RestrictEnrollmentsToSectionDates bool                 `gorm:"column:restrict_enrollments_to_section_dates" json:"restrict_enrollments_to_section_dates"`
	Timestamps
}

// TableName 指定表名
func (CourseSection) TableName() string { return "course_sections" }

func (s CourseSection) PrimaryKey() int64 { return s.ID }

func (s CourseSection) Label() string { return labelOr(s.Name, s.ID) }

func (s CourseSection) String() string { return describe("CourseSection", s) }
