package domain

import (
	"math"
)

// BlackScholesInput Black-Scholes-Merton 模型输入
// S/K/T/Sigma 支持标量或数组，按广播语义对齐到公共长度
type BlackScholesInput struct {
	S     Vector  // 标的资产价格
	K     Vector  // 执行价格
	T     Vector  // 到期时间 (年)
	Sigma Vector  // 波动率
	R     float64 // 无风险利率
	Q     float64 // 连续股息收益率
}

// BlackScholesResult Black-Scholes-Merton 模型输出
// 六个字段共享输入的广播形状，要么全部返回要么整体失败
type BlackScholesResult struct {
	Price Vector
	Delta Vector
	Gamma Vector
	Vega  Vector
	Theta Vector
	Rho   Vector
}

// CalculateBlackScholes 计算欧式期权的闭式价格和希腊字母
//
// 边界规则：只要 T 中存在 <= 0 的元素，整个批次按到期处理，
// 返回内在价值且所有希腊字母为零（整批短路，不做逐元素判断）。
// sigma = 0 或 S/K <= 0 不做防御，Inf/NaN 按浮点语义向上传播。
func CalculateBlackScholes(optionType OptionType, input BlackScholesInput) (*BlackScholesResult, error) {
	if !optionType.Valid() {
		return nil, ErrInvalidOptionType
	}

	n, err := BroadcastLen(input.S, input.K, input.T, input.Sigma)
	if err != nil {
		return nil, err
	}

	for i := 0; i < n; i++ {
		if input.T.At(i) <= 0 {
			return intrinsicResult(optionType, input, n), nil
		}
	}

	result := newResult(n)
	for i := 0; i < n; i++ {
		s := input.S.At(i)
		k := input.K.At(i)
		t := input.T.At(i)
		sigma := input.Sigma.At(i)
		r := input.R
		q := input.Q

		sqrtT := math.Sqrt(t)
		d1 := (math.Log(s/k) + (r-q+0.5*sigma*sigma)*t) / (sigma * sqrtT)
		d2 := d1 - sigma*sqrtT

		discQ := math.Exp(-q * t)
		discR := math.Exp(-r * t)
		nd1 := normCdf(d1)
		nd2 := normCdf(d2)
		np1 := normPdf(d1)

		result.Gamma[i] = discQ * np1 / (s * sigma * sqrtT)
		result.Vega[i] = s * sqrtT * discQ * np1

		if optionType == OptionTypeCall {
			result.Price[i] = s*discQ*nd1 - k*discR*nd2
			result.Delta[i] = discQ * nd1
			result.Theta[i] = -s*sigma*discQ*np1/(2*sqrtT) - r*k*discR*nd2 + q*s*discQ*nd1
			result.Rho[i] = k * t * discR * nd2
		} else {
			result.Price[i] = k*discR*normCdf(-d2) - s*discQ*normCdf(-d1)
			result.Delta[i] = discQ * (nd1 - 1)
			result.Theta[i] = -s*sigma*discQ*np1/(2*sqrtT) + r*k*discR*normCdf(-d2) - q*s*discQ*normCdf(-d1)
			result.Rho[i] = -k * t * discR * normCdf(-d2)
		}
	}

	return result, nil
}

// intrinsicResult 到期分支：内在价值 + 全零希腊字母
func intrinsicResult(optionType OptionType, input BlackScholesInput, n int) *BlackScholesResult {
	result := newResult(n)
	for i := 0; i < n; i++ {
		s := input.S.At(i)
		k := input.K.At(i)
		if optionType == OptionTypeCall {
			result.Price[i] = math.Max(s-k, 0)
		} else {
			result.Price[i] = math.Max(k-s, 0)
		}
	}
	return result
}

func newResult(n int) *BlackScholesResult {
	return &BlackScholesResult{
		Price: make(Vector, n),
		Delta: make(Vector, n),
		Gamma: make(Vector, n),
		Vega:  make(Vector, n),
		Theta: make(Vector, n),
		Rho:   make(Vector, n),
	}
}

// normCdf 标准正态分布累积分布函数
func normCdf(x float64) float64 {
	return 0.5 * (1 + math.Erf(x/math.Sqrt2))
}

// normPdf 标准正态分布概率密度函数
func normPdf(x float64) float64 {
	return math.Exp(-x*x/2) / math.Sqrt(2*math.Pi)
}
