package model

// Submission 作业提交，对应 submissions
type Submission struct {
	ID            int64                   `gorm:"column:id;primaryKey" json:"id"`
	AssignmentID  *int64                  `gorm:"column:assignment_id;index" json:"assignment_id,omitempty"`
	UserID        *int64                  `gorm:"column:user_id;index" json:"user_id,omitempty"`
	Score         *float64                `gorm:"column:score" json:"score,omitempty"`
	WorkflowState SubmissionWorkflowState `gorm:"column:workflow_state;type:varchar(255)" json:"workflow_state"`
	Timestamps
}

// TableName 指定表名
func (Submission) TableName() string { return "submissions" }

func (s Submission) PrimaryKey() int64 { return s.ID }

func (s Submission) Label() string { return floatLabelOr(s.Score, s.ID) }

func (s Submission) String() string { return describe("Submission", s) }
