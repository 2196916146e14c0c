package model

// User 用户表，对应 users
type User struct {
	ID   int64   `gorm:"column:id;primaryKey"           json:"id"`
	Name *string `gorm:"column:name;type:varchar(255)"  json:"name,omitempty"`
}

// TableName 指定表名
func (User) TableName() string { return "users" }

func (u User) PrimaryKey() int64 { return u.ID }

func (u User) Label() string { return labelOr(u.Name, u.ID) }

func (u User) String() string { return describe("User", u) }
