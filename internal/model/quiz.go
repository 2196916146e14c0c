package model

// Quiz 测验表，对应 quizzes（作业的一对一扩展）
type Quiz struct {
	ID           int64   `gorm:"column:id;primaryKey" json:"id"`
	Title        *string `gorm:"column:title;type:varchar(255)" json:"title,omitempty"`
	AssignmentID *int64  `gorm:"column:assignment_id;index" json:"assignment_id,omitempty"`
}

// TableName 指定表名
func (Quiz) TableName() string { return "quizzes" }

func (q Quiz) PrimaryKey() int64 { return q.ID }

func (q Quiz) Label() string { return labelOr(q.Title, q.ID) }

func (q Quiz) String() string { return describe("Quiz", q) }
