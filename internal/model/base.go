package model

import (
	"fmt"
	"strconv"
	"time"
)

// Entity 所有映射实体的公共契约
// 行数据由外部系统写入，本层只读。
type Entity interface {
	TableName() string
	PrimaryKey() int64
	Label() string
	String() string
}

// Timestamps 通用审计字段（由外部系统维护，可能为 NULL）
type Timestamps struct {
	CreatedAt *time.Time `gorm:"column:created_at" json:"created_at,omitempty"`
	UpdatedAt *time.Time `gorm:"column:updated_at" json:"updated_at,omitempty"`
}

// ── 多态引用 ──

// PolymorphicRef 多态引用：Type 指明目标表，ID 为该表主键
// 数据库中不存在对应外键约束，只能按 Type 查表解析。
type PolymorphicRef struct {
	Type string `json:"type"`
	ID   *int64 `json:"id,omitempty"`
}

// IsZero 引用为空（类型或 ID 缺失）
func (r PolymorphicRef) IsZero() bool {
	return r.Type == "" || r.ID == nil
}

func (r PolymorphicRef) String() string {
	if r.ID == nil {
		return r.Type + "#<nil>"
	}
	return r.Type + "#" + strconv.FormatInt(*r.ID, 10)
}

// ── 标签渲染 ──

// labelOr 返回文本标签，为 NULL 或空串时回退到主键
func labelOr(label *string, id int64) string {
	if label == nil || *label == "" {
		return strconv.FormatInt(id, 10)
	}
	return *label
}

// floatLabelOr 数值标签统一格式化为文本
func floatLabelOr(v *float64, id int64) string {
	if v == nil {
		return strconv.FormatInt(id, 10)
	}
	return strconv.FormatFloat(*v, 'f', -1, 64)
}

// refLabelOr 以关联用户 ID 作为标签（不做隐式加载）
func refLabelOr(prefix string, ref *int64, id int64) string {
	if ref == nil {
		return strconv.FormatInt(id, 10)
	}
	return prefix + " " + strconv.FormatInt(*ref, 10)
}

// describe 稳定的调试输出，形如 <Course Intro (id=10)>
func describe(kind string, e Entity) string {
	return fmt.Sprintf("<%s %s (id=%d)>", kind, e.Label(), e.PrimaryKey())
}

// All 返回每个实体的零值，顺序即外键依赖顺序
func All() []Entity {
	return []Entity{
		&Account{},
		&Wiki{},
		&EnrollmentTerm{},
		&SisBatch{},
		&Role{},
		&Course{},
		&CourseSection{},
		&ContextModule{},
		&ContentTag{},
		&Assignment{},
		&Quiz{},
		&Override{},
		&User{},
		&OverrideStudent{},
		&Pseudonym{},
		&Enrollment{},
		&EnrollmentState{},
		&Score{},
		&Submission{},
	}
}
