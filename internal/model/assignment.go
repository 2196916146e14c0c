package model

// Assignment 作业表，对应 assignments
type Assignment struct {
	ID              int64                   `gorm:"column:id;primaryKey" json:"id"`
	Title           *string                 `gorm:"column:title;type:varchar(255)" json:"title,omitempty"`
	PointsPossible  *float64                `gorm:"column:points_possible" json:"points_possible,omitempty"`
	SubmissionTypes *string                 `gorm:"column:submission_types;type:varchar(255)" json:"submission_types,omitempty"` // 逗号分隔
	WorkflowState   AssignmentWorkflowState `gorm:"column:workflow_state;type:varchar(255)" json:"workflow_state"`
}

// TableName 指定表名
func (Assignment) TableName() string { return "assignments" }

func (a Assignment) PrimaryKey() int64 { return a.ID }

func (a Assignment) Label() string { return labelOr(a.Title, a.ID) }

func (a Assignment) String() string { return describe("Assignment", a) }
