package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yessenovuniversity/canvas-db/pkg/response"
)

// HealthHandler 健康检查
type HealthHandler struct {
	ping Pinger
}

// NewHealthHandler 创建 HealthHandler
func NewHealthHandler(ping Pinger) *HealthHandler {
	return &HealthHandler{ping: ping}
}

// Check 检查数据库连接池
// GET /health
func (h *HealthHandler) Check(c *gin.Context) {
	if err := h.ping(c.Request.Context()); err != nil {
		response.ErrorWithDetails(c, http.StatusServiceUnavailable, response.CodeStorageUnavailable, "数据库暂不可用", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
