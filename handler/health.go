package handler

import (
	"net/http"
	"time"

	"Shelf/types"

	"github.com/gin-gonic/gin"
)

type Health struct{}

func (h *Health) RegisterRouter(r gin.IRouter) {
	r.GET("/health-check", h.Check)
}

// Check 存活探针，不走统一响应包装
func (h *Health) Check(c *gin.Context) {
	c.JSON(http.StatusOK, types.HealthResponse{
		Status:    "ok",
		Timestamp: time.Now().UTC().Format(time.RFC3339Nano),
	})
}
