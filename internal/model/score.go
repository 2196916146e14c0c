package model

// Score 成绩表，对应 scores
type Score struct {
	ID            int64              `gorm:"column:id;primaryKey" json:"id"`
	EnrollmentID  *int64             `gorm:"column:enrollment_id;index" json:"enrollment_id,omitempty"`
	CurrentScore  *float64           `gorm:"column:current_score" json:"current_score,omitempty"`
	FinalScore    *float64           `gorm:"column:final_score" json:"final_score,omitempty"`
	WorkflowState ScoreWorkflowState `gorm:"column:workflow_state;type:varchar(255)" json:"workflow_state"`
	Timestamps
}

// TableName 指定表名
func (Score) TableName() string { return "scores" }

func (s Score) PrimaryKey() int64 { return s.ID }

// Label 当前成绩的文本形式
func (s Score) Label() string { return floatLabelOr(s.CurrentScore, s.ID) }

func (s Score) String() string { return describe("Score", s) }
