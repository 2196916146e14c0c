package model

import "strconv"

// SisBatch SIS 导入批次，对应 sis_batches（仅作为批次标记）
type SisBatch struct {
	ID int64 `gorm:"column:id;primaryKey" json:"id"`
}

// TableName 指定表名
func (SisBatch) TableName() string { return "sis_batches" }

func (b SisBatch) PrimaryKey() int64 { return b.ID }

// Label 批次没有自然名称，始终以 ID 的文本形式展示
func (b SisBatch) Label() string { return strconv.FormatInt(b.ID, 10) }

func (b SisBatch) String() string { return describe("SisBatch", b) }
