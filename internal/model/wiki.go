package model

// Wiki Wiki 表，对应 wikis（与课程一对一）
type Wiki struct {
	ID    int64   `gorm:"column:id;primaryKey"              json:"id"`
	Title *string `gorm:"column:title;type:varchar(255)"    json:"title,omitempty"`
}

// TableName 指定表名
func (Wiki) TableName() string { return "wikis" }

func (w Wiki) PrimaryKey() int64 { return w.ID }

func (w Wiki) Label() string { return labelOr(w.Title, w.ID) }

func (w Wiki) String() string { return describe("Wiki", w) }
