package model

// ContentTag 模块内容标签，对应 content_tags
type ContentTag struct {
	ID              int64               `gorm:"column:id;primaryKey" json:"id"`
	ContentID       *int64              `gorm:"column:content_id" json:"content_id,omitempty"`
	ContentType     string              `gorm:"column:content_type;type:varchar(255)" json:"content_type"`
	ContextModuleID *int64              `gorm:"column:context_module_id;index" json:"context_module_id,omitempty"`
	Title           *string             `gorm:"column:title;type:text" json:"title,omitempty"`
	WorkflowState   ModuleWorkflowState `gorm:"column:workflow_state;type:varchar(255)" json:"workflow_state"`
}

// TableName 指定表名
func (ContentTag) TableName() string { return "content_tags" }

func (t ContentTag) PrimaryKey() int64 { return t.ID }

func (t ContentTag) Label() string { return labelOr(t.Title, t.ID) }

func (t ContentTag) String() string { return describe("ContentTag", t) }

// Content 标签指向的内容（Assignment、Quizzes::Quiz 等）
func (t ContentTag) Content() PolymorphicRef {
	return PolymorphicRef{Type: t.ContentType, ID: t.ContentID}
}
