package model

// Account 账户表，对应 accounts（组织层级的根）
type Account struct {
	ID   int64   `gorm:"column:id;primaryKey" json:"id"`
	Name *string `gorm:"column:name;type:text" json:"name,omitempty"`
}

// TableName 指定表名
func (Account) TableName() string { return "accounts" }

func (a Account) PrimaryKey() int64 { return a.ID }

// Label 名称，为空时回退到 ID
func (a Account) Label() string { return labelOr(a.Name, a.ID) }

func (a Account) String() string { return describe("Account", a) }
