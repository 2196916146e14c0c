package model

// ContextModule 课程模块，对应 context_modules
// (context_type, context_id) 为多态引用，非真实外键。
type ContextModule struct {
	ID            int64               `gorm:"column:id;primaryKey" json:"id"`
	ContextID     *int64              `gorm:"column:context_id" json:"context_id,omitempty"`
	ContextType   string              `gorm:"column:context_type;type:varchar(255)" json:"context_type"`
	Name          *string             `gorm:"column:name;type:text" json:"name,omitempty"`
	Position      *int64              `gorm:"column:position" json:"position,omitempty"`
	WorkflowState ModuleWorkflowState `gorm:"column:workflow_state;type:varchar(255)" json:"workflow_state"`
}

// TableName 指定表名
func (ContextModule) TableName() string { return "context_modules" }

func (m ContextModule) PrimaryKey() int64 { return m.ID }

func (m ContextModule) Label() string { return labelOr(m.Name, m.ID) }

func (m ContextModule) String() string { return describe("ContextModule", m) }

// Context 所属上下文（通常为 Course）
func (m ContextModule) Context() PolymorphicRef {
	return PolymorphicRef{Type: m.ContextType, ID: m.ContextID}
}
