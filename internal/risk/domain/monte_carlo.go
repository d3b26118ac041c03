// Package domain 包含风险度量的领域模型
package domain

import (
	"fmt"
	"math"
	"math/rand"
	"sort"

	"github.com/shopspring/decimal"
)

// MonteCarloInput 蒙特卡洛模拟输入参数
// 用于计算 VaR 和 ES，种子显式传入以保证可复现
type MonteCarloInput struct {
	S          float64 // 当前价格
	Mu         float64 // 预期年化收益率
	Sigma      float64 // 年化波动率
	T          float64 // 时间跨度 (年)
	Iterations int     // 模拟次数 (例如 10000)
	Steps      int     // 时间步数 (例如 252)
	Seed       int64   // 随机种子
}

// MonteCarloResult 蒙特卡洛模拟输出结果
type MonteCarloResult struct {
	VaR95 decimal.Decimal // 95% 置信度 VaR
	VaR99 decimal.Decimal // 99% 置信度 VaR
	ES95  decimal.Decimal // 95% 置信度预期亏损
	ES99  decimal.Decimal // 99% 置信度预期亏损
}

// CalculateVaR 使用蒙特卡洛模拟计算 VaR 和 Expected Shortfall
func CalculateVaR(input MonteCarloInput) (*MonteCarloResult, error) {
	// 分位数下标必须非零，否则 ES 无定义
	if input.Iterations < 100 {
		return nil, fmt.Errorf("iterations must be at least 100, got %d", input.Iterations)
	}
	if input.Steps < 1 {
		return nil, fmt.Errorf("steps must be at least 1, got %d", input.Steps)
	}

	r := rand.New(rand.NewSource(input.Seed))

	dt := input.T / float64(input.Steps)
	drift := (input.Mu - 0.5*input.Sigma*input.Sigma) * dt
	vol := input.Sigma * math.Sqrt(dt)

	// 几何布朗运动终值的损益分布
	pnl := make([]float64, input.Iterations)
	for i := 0; i < input.Iterations; i++ {
		price := input.S
		for j := 0; j < input.Steps; j++ {
			price *= math.Exp(drift + vol*r.NormFloat64())
		}
		pnl[i] = price - input.S
	}

	sort.Float64s(pnl)

	// VaR 取分位数，表示为正的损失金额
	idx95 := int(float64(input.Iterations) * 0.05)
	idx99 := int(float64(input.Iterations) * 0.01)

	var95 := -pnl[idx95]
	var99 := -pnl[idx99]

	// ES 是超过 VaR 的损失的平均值
	var sumTail95, sumTail99 float64
	for i := 0; i < idx95; i++ {
		sumTail95 += pnl[i]
	}
	for i := 0; i < idx99; i++ {
		sumTail99 += pnl[i]
	}

	es95 := -sumTail95 / float64(idx95)
	es99 := -sumTail99 / float64(idx99)

	return &MonteCarloResult{
		VaR95: decimal.NewFromFloat(var95),
		VaR99: decimal.NewFromFloat(var99),
		ES95:  decimal.NewFromFloat(es95),
		ES99:  decimal.NewFromFloat(es99),
	}, nil
}
