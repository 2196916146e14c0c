package dto

import "github.com/yessenovuniversity/canvas-db/internal/model"

// ── 实体查询响应 ──

// EntityResponse 单个实体
// Label 恒为文本；Data 为完整行。
type EntityResponse struct {
	Entity  string       `json:"entity"`
	ID      int64        `json:"id"`
	Label   string       `json:"label"`
	Display string       `json:"display"`
	Data    model.Entity `json:"data"`
}

// NewEntityResponse 由已加载的实体构造响应
func NewEntityResponse(e model.Entity) *EntityResponse {
	return &EntityResponse{
		Entity:  e.TableName(),
		ID:      e.PrimaryKey(),
		Label:   e.Label(),
		Display: e.String(),
		Data:    e,
	}
}

// RelationResponse 沿命名关联导航的结果
type RelationResponse struct {
	Entity   string          `json:"entity"`
	ID       int64           `json:"id"`
	Relation string          `json:"relation"`
	Target   *EntityResponse `json:"target"`
}

// EntityCatalogItem 可查询实体及其关联名
type EntityCatalogItem struct {
	Entity    string   `json:"entity"`
	Relations []string `json:"relations"`
}
