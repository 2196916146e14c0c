package model

// Pseudonym 登录身份，对应 pseudonyms（一个用户可有多个）
type Pseudonym struct {
	ID        int64   `gorm:"column:id;primaryKey"                  json:"id"`
	UserID    *int64  `gorm:"column:user_id;index"                  json:"user_id,omitempty"`
	Position  *int64  `gorm:"column:position"                       json:"position,omitempty"`
	SisUserID *string `gorm:"column:sis_user_id;type:varchar(255)"  json:"sis_user_id,omitempty"`
}

// TableName 指定表名
func (Pseudonym) TableName() string { return "pseudonyms" }

func (p Pseudonym) PrimaryKey() int64 { return p.ID }

// Label 以所属用户 ID 展示
func (p Pseudonym) Label() string { return refLabelOr("user", p.UserID, p.ID) }

func (p Pseudonym) String() string { return describe("Pseudonym", p) }
