package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	pricing "github.com/wyfcoding/optionpricing/internal/pricing/domain"
)

func baseConfig() SimulationConfig {
	return SimulationConfig{
		S0:    100,
		K:     110,
		T:     1,
		R:     0.05,
		Sigma: 0.2,
		Type:  pricing.OptionTypeCall,
		Paths: 20000,
		Steps: 32,
		Seed:  42,
	}
}

func TestPriceOption_Deterministic(t *testing.T) {
	cfg := baseConfig()

	first, err := PriceOption(cfg)
	require.NoError(t, err)
	second, err := PriceOption(cfg)
	require.NoError(t, err)

	// 相同种子和参数必须逐位一致
	assert.Equal(t, first.Price, second.Price)
	assert.Equal(t, first.StdError, second.StdError)
}

func TestPriceOption_SeedIndependence(t *testing.T) {
	cfg := baseConfig()
	a, err := PriceOption(cfg)
	require.NoError(t, err)

	cfg.Seed = 43
	b, err := PriceOption(cfg)
	require.NoError(t, err)

	assert.NotEqual(t, a.Price, b.Price)
}

func TestPriceOption_NonNegative(t *testing.T) {
	// 深度虚值看涨：收益几乎全为零，但价格不会为负
	cfg := baseConfig()
	cfg.K = 500
	cfg.Paths = 5000

	estimate, err := PriceOption(cfg)
	require.NoError(t, err)
	assert.GreaterOrEqual(t, estimate.Price, 0.0)
}

func TestPriceOption_ConvergesToAnalyticPrice(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping convergence test in short mode")
	}

	// 解析基准：S0=100, K=110, T=1, r=0.05, sigma=0.2 -> Call ≈ 6.04
	cfg := baseConfig()
	cfg.Paths = 200000
	cfg.Steps = 64

	estimate, err := PriceOption(cfg)
	require.NoError(t, err)

	// 容差覆盖蒙特卡洛抽样误差和离散化偏差
	assert.InDelta(t, 6.04, estimate.Price, 0.30)
	assert.Less(t, estimate.StdError, 0.05)
}

func TestPriceOption_PutEstimate(t *testing.T) {
	cfg := baseConfig()
	cfg.Type = pricing.OptionTypePut
	cfg.Paths = 50000

	estimate, err := PriceOption(cfg)
	require.NoError(t, err)

	// 解析基准：Put ≈ 10.60（平价关系推出），宽容差
	assert.InDelta(t, 10.60, estimate.Price, 0.5)
}

func TestPriceOption_InvalidOptionTypeFailsFast(t *testing.T) {
	cfg := baseConfig()
	cfg.Type = pricing.OptionType("BERMUDAN")
	cfg.Paths = 1 << 30 // 如果没有 fail fast，这个规模会立刻暴露

	estimate, err := PriceOption(cfg)
	require.ErrorIs(t, err, pricing.ErrInvalidOptionType)
	assert.Nil(t, estimate)
}

func TestPriceOption_InvalidSize(t *testing.T) {
	cfg := baseConfig()
	cfg.Paths = 0

	_, err := PriceOption(cfg)
	require.Error(t, err)

	cfg = baseConfig()
	cfg.Steps = 0
	_, err = PriceOption(cfg)
	require.Error(t, err)
}
