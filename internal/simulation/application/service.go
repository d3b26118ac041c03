package application

import (
	"context"
	"log/slog"
	"time"

	pricing "github.com/wyfcoding/optionpricing/internal/pricing/domain"
	"github.com/wyfcoding/optionpricing/internal/simulation/domain"
	"github.com/wyfcoding/optionpricing/pkg/config"
	"github.com/wyfcoding/optionpricing/pkg/metrics"
)

// SimulateCommand 蒙特卡洛定价命令
// Paths/Steps/Seed 为零时使用服务配置的默认值
type SimulateCommand struct {
	OptionType   string  `json:"option_type"`
	SpotPrice    float64 `json:"spot_price"`
	StrikePrice  float64 `json:"strike_price"`
	TimeHorizon  float64 `json:"time_horizon"`
	RiskFreeRate float64 `json:"risk_free_rate"`
	Volatility   float64 `json:"volatility"`
	Paths        int     `json:"paths"`
	Steps        int     `json:"steps"`
	Seed         int64   `json:"seed"`
}

// EstimateDTO 模拟估价结果
type EstimateDTO struct {
	Price    float64 `json:"price"`
	StdError float64 `json:"std_error"`
	Paths    int     `json:"paths"`
	Steps    int     `json:"steps"`
	Seed     int64   `json:"seed"`
}

// SimulationService 蒙特卡洛定价应用服务
type SimulationService struct {
	logger   *slog.Logger
	metrics  *metrics.Metrics
	defaults config.SimulationConfig
}

// NewSimulationService 创建模拟定价应用服务
func NewSimulationService(logger *slog.Logger, m *metrics.Metrics, defaults config.SimulationConfig) *SimulationService {
	return &SimulationService{logger: logger, metrics: m, defaults: defaults}
}

// SimulateOptionPrice 模拟估计欧式期权价格
func (s *SimulationService) SimulateOptionPrice(ctx context.Context, cmd SimulateCommand) (*EstimateDTO, error) {
	start := time.Now()

	optionType, err := pricing.ParseOptionType(cmd.OptionType)
	if err != nil {
		return nil, err
	}

	paths := cmd.Paths
	if paths == 0 {
		paths = s.defaults.DefaultPaths
	}
	steps := cmd.Steps
	if steps == 0 {
		steps = s.defaults.DefaultSteps
	}
	seed := cmd.Seed
	if seed == 0 {
		seed = s.defaults.DefaultSeed
	}

	estimate, err := domain.PriceOption(domain.SimulationConfig{
		S0:    cmd.SpotPrice,
		K:     cmd.StrikePrice,
		T:     cmd.TimeHorizon,
		R:     cmd.RiskFreeRate,
		Sigma: cmd.Volatility,
		Type:  optionType,
		Paths: paths,
		Steps: steps,
		Seed:  seed,
	})
	if err != nil {
		return nil, err
	}

	s.metrics.SimulationsTotal.Inc()
	s.metrics.SimulationPathsTotal.Add(float64(paths))
	s.metrics.SimulationDuration.Observe(time.Since(start).Seconds())
	s.logger.InfoContext(ctx, "option price simulated",
		"option_type", optionType,
		"paths", paths,
		"steps", steps,
		"seed", seed,
		"price", estimate.Price,
	)

	return &EstimateDTO{
		Price:    estimate.Price,
		StdError: estimate.StdError,
		Paths:    paths,
		Steps:    steps,
		Seed:     seed,
	}, nil
}
