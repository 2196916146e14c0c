package model

// EnrollmentTerm 学期表，对应 enrollment_terms
type EnrollmentTerm struct {
	ID            int64   `gorm:"column:id;primaryKey"             json:"id"`
	RootAccountID *int64  `gorm:"column:root_account_id;index"     json:"root_account_id,omitempty"`
	Name          *string `gorm:"column:name;type:varchar(255)"    json:"name,omitempty"`
}

// TableName 指定表名
func (EnrollmentTerm) TableName() string { return "enrollment_terms" }

func (t EnrollmentTerm) PrimaryKey() int64 { return t.ID }

func (t EnrollmentTerm) Label() string { return labelOr(t.Name, t.ID) }

func (t EnrollmentTerm) String() string { return describe("EnrollmentTerm", t) }
