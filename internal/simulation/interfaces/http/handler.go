// Package http 负责处理蒙特卡洛模拟定价的 HTTP 请求
package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	pricing "github.com/wyfcoding/optionpricing/internal/pricing/domain"
	"github.com/wyfcoding/optionpricing/internal/simulation/application"
	"github.com/wyfcoding/optionpricing/pkg/response"
)

// SimulationHandler HTTP 处理器
type SimulationHandler struct {
	svc *application.SimulationService
}

// NewSimulationHandler 创建 HTTP 处理器实例
func NewSimulationHandler(svc *application.SimulationService) *SimulationHandler {
	return &SimulationHandler{svc: svc}
}

// RegisterRoutes 将处理器方法绑定到 Gin 路由引擎
func (h *SimulationHandler) RegisterRoutes(router *gin.Engine) {
	api := router.Group("/api/v1/simulation")
	{
		api.POST("/option/price", h.SimulatePrice)
	}
}

// SimulatePrice 蒙特卡洛估价
func (h *SimulationHandler) SimulatePrice(c *gin.Context) {
	var cmd application.SimulateCommand
	if err := c.ShouldBindJSON(&cmd); err != nil {
		response.ErrorWithStatus(c, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	estimate, err := h.svc.SimulateOptionPrice(c.Request.Context(), cmd)
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, pricing.ErrInvalidOptionType) {
			status = http.StatusBadRequest
		}
		response.ErrorWithStatus(c, status, "failed to simulate option price", err.Error())
		return
	}

	response.Success(c, estimate)
}
