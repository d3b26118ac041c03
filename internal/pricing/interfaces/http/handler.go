// Package http 负责处理与定价相关的 HTTP 请求
package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/wyfcoding/optionpricing/internal/pricing/application"
	"github.com/wyfcoding/optionpricing/internal/pricing/domain"
	"github.com/wyfcoding/optionpricing/pkg/response"
)

// PricingHandler HTTP 处理器
type PricingHandler struct {
	svc *application.PricingService
}

// NewPricingHandler 创建 HTTP 处理器实例
func NewPricingHandler(svc *application.PricingService) *PricingHandler {
	return &PricingHandler{svc: svc}
}

// RegisterRoutes 将处理器方法绑定到 Gin 路由引擎
func (h *PricingHandler) RegisterRoutes(router *gin.Engine) {
	api := router.Group("/api/v1/pricing")
	{
		api.POST("/option/price", h.PriceOption)
		api.POST("/option/batch", h.PriceBatch)
		api.POST("/option/greeks", h.GetGreeks)
	}
}

// PriceOption 单合约定价
func (h *PricingHandler) PriceOption(c *gin.Context) {
	var cmd application.PriceOptionCommand
	if err := c.ShouldBindJSON(&cmd); err != nil {
		response.ErrorWithStatus(c, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	result, err := h.svc.PriceOption(c.Request.Context(), cmd)
	if err != nil {
		response.ErrorWithStatus(c, statusFor(err), "failed to price option", err.Error())
		return
	}

	response.Success(c, result)
}

// PriceBatch 批量定价
func (h *PricingHandler) PriceBatch(c *gin.Context) {
	var cmd application.PriceBatchCommand
	if err := c.ShouldBindJSON(&cmd); err != nil {
		response.ErrorWithStatus(c, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	result, err := h.svc.PriceBatch(c.Request.Context(), cmd)
	if err != nil {
		response.ErrorWithStatus(c, statusFor(err), "failed to price batch", err.Error())
		return
	}

	response.Success(c, result)
}

// GetGreeks 只返回希腊字母视图，复用同一份计算结果
func (h *PricingHandler) GetGreeks(c *gin.Context) {
	var cmd application.PriceOptionCommand
	if err := c.ShouldBindJSON(&cmd); err != nil {
		response.ErrorWithStatus(c, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	result, err := h.svc.PriceOption(c.Request.Context(), cmd)
	if err != nil {
		response.ErrorWithStatus(c, statusFor(err), "failed to calculate Greeks", err.Error())
		return
	}

	response.Success(c, gin.H{
		"symbol": result.Symbol,
		"delta":  result.Delta,
		"gamma":  result.Gamma,
		"vega":   result.Vega,
		"theta":  result.Theta,
		"rho":    result.Rho,
	})
}

// statusFor 输入类错误映射为 400，其余为 500
func statusFor(err error) int {
	if errors.Is(err, domain.ErrInvalidOptionType) || errors.Is(err, domain.ErrShapeMismatch) {
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}
