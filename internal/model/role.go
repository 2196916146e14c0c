package model

// Role 角色表，对应 roles
type Role struct {
	ID            int64             `gorm:"column:id;primaryKey"                     json:"id"`
	Name          *string           `gorm:"column:name;type:varchar(255)"            json:"name,omitempty"`
	WorkflowState RoleWorkflowState `gorm:"column:workflow_state;type:varchar(255)"  json:"workflow_state"`
}

// TableName 指定表名
func (Role) TableName() string { return "roles" }

func (r Role) PrimaryKey() int64 { return r.ID }

func (r Role) Label() string { return labelOr(r.Name, r.ID) }

func (r Role) String() string { return describe("Role", r) }
