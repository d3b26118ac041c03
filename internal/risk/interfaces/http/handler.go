// Package http 负责处理风险度量的 HTTP 请求
package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/wyfcoding/optionpricing/internal/risk/application"
	"github.com/wyfcoding/optionpricing/pkg/response"
)

// RiskHandler HTTP 处理器
type RiskHandler struct {
	svc *application.RiskService
}

// NewRiskHandler 创建 HTTP 处理器实例
func NewRiskHandler(svc *application.RiskService) *RiskHandler {
	return &RiskHandler{svc: svc}
}

// RegisterRoutes 将处理器方法绑定到 Gin 路由引擎
func (h *RiskHandler) RegisterRoutes(router *gin.Engine) {
	api := router.Group("/api/v1/risk")
	{
		api.POST("/var", h.CalculateVaR)
	}
}

// CalculateVaR 计算 VaR 和 Expected Shortfall
func (h *RiskHandler) CalculateVaR(c *gin.Context) {
	var cmd application.CalculateVaRCommand
	if err := c.ShouldBindJSON(&cmd); err != nil {
		response.ErrorWithStatus(c, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	result, err := h.svc.CalculateVaR(c.Request.Context(), cmd)
	if err != nil {
		response.ErrorWithStatus(c, http.StatusInternalServerError, "failed to calculate VaR", err.Error())
		return
	}

	response.Success(c, result)
}
