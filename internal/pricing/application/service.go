package application

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/shopspring/decimal"

	"github.com/wyfcoding/optionpricing/internal/pricing/domain"
	"github.com/wyfcoding/optionpricing/pkg/metrics"
)

// PricingService 期权定价应用服务
// 只做输入转换和编排，数值逻辑全部在领域层
type PricingService struct {
	logger  *slog.Logger
	metrics *metrics.Metrics
}

// NewPricingService 创建定价应用服务
func NewPricingService(logger *slog.Logger, m *metrics.Metrics) *PricingService {
	return &PricingService{logger: logger, metrics: m}
}

// PriceOption 单合约定价，返回价格和全部希腊字母
// 合约路径要求 S/K/sigma 为正，保证结果有限后再落入 decimal 实体
func (s *PricingService) PriceOption(ctx context.Context, cmd PriceOptionCommand) (*domain.PricingResult, error) {
	start := time.Now()

	optionType, err := domain.ParseOptionType(cmd.OptionType)
	if err != nil {
		return nil, err
	}
	if cmd.UnderlyingPrice <= 0 || cmd.StrikePrice <= 0 || cmd.Volatility <= 0 {
		return nil, fmt.Errorf("invalid input parameters: S=%v K=%v sigma=%v",
			cmd.UnderlyingPrice, cmd.StrikePrice, cmd.Volatility)
	}

	timeToExpiry := cmd.TimeToExpiry
	if cmd.ExpiryDate > 0 {
		contract := domain.OptionContract{
			Symbol:      cmd.Symbol,
			Type:        optionType,
			StrikePrice: decimal.NewFromFloat(cmd.StrikePrice),
			ExpiryDate:  cmd.ExpiryDate,
		}
		timeToExpiry = contract.TimeToExpiry(time.Now())
	}

	result, err := domain.CalculateBlackScholes(optionType, domain.BlackScholesInput{
		S:     domain.Scalar(cmd.UnderlyingPrice),
		K:     domain.Scalar(cmd.StrikePrice),
		T:     domain.Scalar(timeToExpiry),
		Sigma: domain.Scalar(cmd.Volatility),
		R:     cmd.RiskFreeRate,
		Q:     cmd.DividendYield,
	})
	if err != nil {
		return nil, err
	}

	s.metrics.AnalyticPricingsTotal.Inc()
	s.metrics.AnalyticPricingDuration.Observe(time.Since(start).Seconds())
	s.logger.InfoContext(ctx, "option priced",
		"symbol", cmd.Symbol,
		"option_type", optionType,
		"price", result.Price[0],
	)

	return &domain.PricingResult{
		Symbol:          cmd.Symbol,
		OptionPrice:     decimal.NewFromFloat(result.Price[0]),
		UnderlyingPrice: decimal.NewFromFloat(cmd.UnderlyingPrice),
		Delta:           decimal.NewFromFloat(result.Delta[0]),
		Gamma:           decimal.NewFromFloat(result.Gamma[0]),
		Theta:           decimal.NewFromFloat(result.Theta[0]),
		Vega:            decimal.NewFromFloat(result.Vega[0]),
		Rho:             decimal.NewFromFloat(result.Rho[0]),
		CalculatedAt:    time.Now().Unix(),
		PricingModel:    "BlackScholes",
	}, nil
}

// PriceBatch 批量定价，保留核心的浮点语义：退化输入产生的 Inf/NaN 原样返回
func (s *PricingService) PriceBatch(ctx context.Context, cmd PriceBatchCommand) (*BatchPricingDTO, error) {
	start := time.Now()

	optionType, err := domain.ParseOptionType(cmd.OptionType)
	if err != nil {
		return nil, err
	}

	result, err := domain.CalculateBlackScholes(optionType, domain.BlackScholesInput{
		S:     domain.Vector(cmd.Spot),
		K:     domain.Vector(cmd.Strike),
		T:     domain.Vector(cmd.TimeToExpiry),
		Sigma: domain.Vector(cmd.Volatility),
		R:     cmd.RiskFreeRate,
		Q:     cmd.DividendYield,
	})
	if err != nil {
		return nil, err
	}

	s.metrics.AnalyticPricingsTotal.Inc()
	s.metrics.AnalyticPricingDuration.Observe(time.Since(start).Seconds())
	s.logger.InfoContext(ctx, "option batch priced",
		"option_type", optionType,
		"batch_size", len(result.Price),
	)

	return &BatchPricingDTO{
		Price: result.Price,
		Delta: result.Delta,
		Gamma: result.Gamma,
		Vega:  result.Vega,
		Theta: result.Theta,
		Rho:   result.Rho,
	}, nil
}
