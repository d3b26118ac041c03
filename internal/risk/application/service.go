package application

import (
	"context"
	"log/slog"
	"time"

	"github.com/wyfcoding/optionpricing/internal/risk/domain"
	"github.com/wyfcoding/optionpricing/pkg/metrics"
)

// CalculateVaRCommand VaR 计算命令
type CalculateVaRCommand struct {
	SpotPrice      float64 `json:"spot_price"`
	ExpectedReturn float64 `json:"expected_return"`
	Volatility     float64 `json:"volatility"`
	TimeHorizon    float64 `json:"time_horizon"`
	Iterations     int     `json:"iterations"`
	Steps          int     `json:"steps"`
	Seed           int64   `json:"seed"`
}

// RiskService 风险度量应用服务
type RiskService struct {
	logger  *slog.Logger
	metrics *metrics.Metrics
}

// NewRiskService 创建风险应用服务
func NewRiskService(logger *slog.Logger, m *metrics.Metrics) *RiskService {
	return &RiskService{logger: logger, metrics: m}
}

// CalculateVaR 计算 VaR 和 Expected Shortfall
func (s *RiskService) CalculateVaR(ctx context.Context, cmd CalculateVaRCommand) (*domain.MonteCarloResult, error) {
	start := time.Now()

	iterations := cmd.Iterations
	if iterations == 0 {
		iterations = 10000
	}
	steps := cmd.Steps
	if steps == 0 {
		steps = 252
	}

	result, err := domain.CalculateVaR(domain.MonteCarloInput{
		S:          cmd.SpotPrice,
		Mu:         cmd.ExpectedReturn,
		Sigma:      cmd.Volatility,
		T:          cmd.TimeHorizon,
		Iterations: iterations,
		Steps:      steps,
		Seed:       cmd.Seed,
	})
	if err != nil {
		return nil, err
	}

	s.metrics.RiskCalculationsTotal.Inc()
	s.metrics.RiskCalculationDuration.Observe(time.Since(start).Seconds())
	s.logger.InfoContext(ctx, "VaR calculated",
		"iterations", iterations,
		"var95", result.VaR95,
		"var99", result.VaR99,
	)

	return result, nil
}
