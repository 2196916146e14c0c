package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/yessenovuniversity/canvas-db/internal/dto"
	"github.com/yessenovuniversity/canvas-db/internal/service"
	pkgerrors "github.com/yessenovuniversity/canvas-db/pkg/errors"
	"github.com/yessenovuniversity/canvas-db/pkg/response"
)

// EntityHandler 只读实体查询 HTTP 处理器
type EntityHandler struct {
	nav    Navigator
	logger *zap.Logger
}

// NewEntityHandler 创建 EntityHandler
func NewEntityHandler(nav Navigator, logger *zap.Logger) *EntityHandler {
	return &EntityHandler{nav: nav, logger: logger}
}

// ListEntities 列出可查询的实体及其关联名
// GET /api/catalog
func (h *EntityHandler) ListEntities(c *gin.Context) {
	names := h.nav.Entities()
	items := make([]dto.EntityCatalogItem, 0, len(names))
	for _, name := range names {
		edges, _ := h.nav.Edges(name)
		items = append(items, dto.EntityCatalogItem{Entity: name, Relations: edges})
	}
	response.OK(c, gin.H{"list": items})
}

// GetEntity 按主键加载实体
// GET /api/v1/:entity/:id
func (h *EntityHandler) GetEntity(c *gin.Context) {
	entity := c.Param("entity")
	id, ok := parseID(c)
	if !ok {
		return
	}

	row, err := h.nav.Get(c.Request.Context(), entity, id)
	if err != nil {
		h.handleEntityError(c, err)
		return
	}
	if row == nil {
		response.NotFound(c, response.CodeNotFound, "记录不存在")
		return
	}

	response.OK(c, dto.NewEntityResponse(row))
}

// FollowRelation 沿命名关联加载目标实体
// GET /api/v1/:entity/:id/:relation
func (h *EntityHandler) FollowRelation(c *gin.Context) {
	entity := c.Param("entity")
	relation := c.Param("relation")
	id, ok := parseID(c)
	if !ok {
		return
	}

	target, err := h.nav.Follow(c.Request.Context(), entity, id, relation)
	if err != nil {
		h.handleEntityError(c, err)
		return
	}
	if target == nil {
		response.NotFound(c, response.CodeNotFound, "关联记录不存在")
		return
	}

	response.OK(c, dto.RelationResponse{
		Entity:   entity,
		ID:       id,
		Relation: relation,
		Target:   dto.NewEntityResponse(target),
	})
}

// ── 内部辅助方法 ──

func parseID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		response.BadRequest(c, response.CodeInvalidParam, "ID 必须为正整数")
		return 0, false
	}
	return id, true
}

// handleEntityError 错误类别到 HTTP 状态码的映射
func (h *EntityHandler) handleEntityError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrUnknownEntity):
		response.BadRequest(c, response.CodeInvalidParam, "未知实体")
	case errors.Is(err, service.ErrUnknownRelation):
		response.BadRequest(c, response.CodeInvalidParam, "未知关联")
	case errors.Is(err, pkgerrors.ErrNotFound):
		response.NotFound(c, response.CodeNotFound, "记录不存在")
	case errors.Is(err, service.ErrUnknownPolymorphicType):
		response.Error(c, http.StatusUnprocessableEntity, response.CodeUnresolvableRef, "多态引用类型无法解析")
	case errors.Is(err, pkgerrors.ErrStorageUnavailable):
		response.ServiceUnavailable(c)
	case errors.Is(err, pkgerrors.ErrSchemaMismatch):
		h.logger.Error("数据库结构不匹配", zap.Error(err))
		response.Error(c, http.StatusInternalServerError, response.CodeSchemaMismatch, "数据库结构不匹配")
	default:
		h.logger.Error("查询失败", zap.Error(err))
		response.InternalError(c)
	}
}
