package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/coopsight/coopsight-backend/internal/response"
	"github.com/coopsight/coopsight-backend/internal/service"
)

type SystemHandler struct {
	systemService service.SystemService
}

func NewSystemHandler(systemService service.SystemService) *SystemHandler {
	return &SystemHandler{systemService: systemService}
}

// Reset clears every store. Meant for test isolation and administrative
// maintenance windows, never for concurrent use with live traffic.
func (h *SystemHandler) Reset(c *gin.Context) {
	h.systemService.ResetAll()
	response.Message(c, "All stores cleared.")
}
