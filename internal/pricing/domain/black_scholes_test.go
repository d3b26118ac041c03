package domain

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCalculateBlackScholes_ReferenceCase(t *testing.T) {
	// 经典参数：S=100, K=100, r=0.05, sigma=0.2, T=1, q=0
	// 回归基准：Call≈10.4505835722, Put≈5.5735260223
	input := BlackScholesInput{
		S:     Scalar(100),
		K:     Scalar(100),
		T:     Scalar(1),
		Sigma: Scalar(0.2),
		R:     0.05,
	}

	call, err := CalculateBlackScholes(OptionTypeCall, input)
	require.NoError(t, err)
	put, err := CalculateBlackScholes(OptionTypePut, input)
	require.NoError(t, err)

	require.Len(t, call.Price, 1)
	assert.InDelta(t, 10.450583572185565, call.Price[0], 1e-9)
	assert.InDelta(t, 5.573526022256971, put.Price[0], 1e-9)

	assert.InDelta(t, 0.6368307, call.Delta[0], 1e-3)
	assert.InDelta(t, -0.3631693, put.Delta[0], 1e-3)
	assert.InDelta(t, 0.0187620, call.Gamma[0], 1e-4)
	assert.InDelta(t, 37.524035, call.Vega[0], 1e-2)
	assert.InDelta(t, -6.414028, call.Theta[0], 1e-2)
	assert.InDelta(t, -1.657910, put.Theta[0], 1e-2)
	assert.InDelta(t, 53.232482, call.Rho[0], 1e-2)
	assert.InDelta(t, -41.890460, put.Rho[0], 1e-2)
}

func TestCalculateBlackScholes_DividendVectorScenario(t *testing.T) {
	// 含股息的批量场景：S=[100,105,110], K=110, r=0.05, t=1, sigma=0.2, q=0.02
	input := BlackScholesInput{
		S:     Vector{100, 105, 110},
		K:     Scalar(110),
		T:     Scalar(1),
		Sigma: Scalar(0.2),
		R:     0.05,
		Q:     0.02,
	}

	call, err := CalculateBlackScholes(OptionTypeCall, input)
	require.NoError(t, err)
	put, err := CalculateBlackScholes(OptionTypePut, input)
	require.NoError(t, err)

	require.Len(t, call.Price, 3)
	require.Len(t, put.Price, 3)

	wantCall := []float64{5.1866, 7.4374, 10.1496}
	wantGamma := []float64{0.019056, 0.018618, 0.017229}
	wantVega := []float64{38.113, 41.053, 41.691}

	for i := 0; i < 3; i++ {
		assert.InDelta(t, wantCall[i], call.Price[i], 5e-3, "call price %d", i)
		assert.InDelta(t, wantGamma[i], call.Gamma[i], 5e-4, "gamma %d", i)
		assert.InDelta(t, wantVega[i], call.Vega[i], 5e-2, "vega %d", i)

		// Gamma 和 Vega 与方向无关
		assert.InDelta(t, call.Gamma[i], put.Gamma[i], 1e-12)
		assert.InDelta(t, call.Vega[i], put.Vega[i], 1e-12)
	}
}

func TestCalculateBlackScholes_PutCallParity(t *testing.T) {
	// C - P = S*e^{-qt} - K*e^{-rt}
	input := BlackScholesInput{
		S:     Vector{80, 100, 105, 110, 140},
		K:     Scalar(110),
		T:     Scalar(1.5),
		Sigma: Scalar(0.25),
		R:     0.04,
		Q:     0.015,
	}

	call, err := CalculateBlackScholes(OptionTypeCall, input)
	require.NoError(t, err)
	put, err := CalculateBlackScholes(OptionTypePut, input)
	require.NoError(t, err)

	for i := range call.Price {
		s := input.S.At(i)
		k := input.K.At(i)
		tt := input.T.At(i)
		want := s*math.Exp(-input.Q*tt) - k*math.Exp(-input.R*tt)
		assert.InDelta(t, want, call.Price[i]-put.Price[i], 1e-9, "parity %d", i)

		// delta(Call) - delta(Put) = e^{-qt}
		assert.InDelta(t, math.Exp(-input.Q*tt), call.Delta[i]-put.Delta[i], 1e-12, "delta symmetry %d", i)
	}
}

func TestCalculateBlackScholes_ExpiredBatchShortCircuit(t *testing.T) {
	// 单个到期元素会让整个批次走内在价值分支
	input := BlackScholesInput{
		S:     Vector{120, 80},
		K:     Scalar(100),
		T:     Vector{1, 0},
		Sigma: Scalar(0.2),
		R:     0.05,
	}

	call, err := CalculateBlackScholes(OptionTypeCall, input)
	require.NoError(t, err)
	put, err := CalculateBlackScholes(OptionTypePut, input)
	require.NoError(t, err)

	// 第一个元素 T=1 未到期，但批次里存在 T=0，整体按到期处理
	assert.Equal(t, Vector{20, 0}, call.Price)
	assert.Equal(t, Vector{0, 20}, put.Price)

	for i := 0; i < 2; i++ {
		assert.Zero(t, call.Delta[i])
		assert.Zero(t, call.Gamma[i])
		assert.Zero(t, call.Vega[i])
		assert.Zero(t, call.Theta[i])
		assert.Zero(t, call.Rho[i])
	}
}

func TestCalculateBlackScholes_NumericDegeneracyPropagates(t *testing.T) {
	// sigma=0 不做防御：gamma 得到 0/0 = NaN
	zeroVol := BlackScholesInput{
		S:     Scalar(100),
		K:     Scalar(90),
		T:     Scalar(1),
		Sigma: Scalar(0),
		R:     0.05,
	}
	result, err := CalculateBlackScholes(OptionTypeCall, zeroVol)
	require.NoError(t, err)
	assert.True(t, math.IsNaN(result.Gamma[0]))

	// 负的标的价格导致 log 定义域错误，NaN 向上传播
	negSpot := BlackScholesInput{
		S:     Scalar(-1),
		K:     Scalar(100),
		T:     Scalar(1),
		Sigma: Scalar(0.2),
		R:     0.05,
	}
	result, err = CalculateBlackScholes(OptionTypePut, negSpot)
	require.NoError(t, err)
	assert.True(t, math.IsNaN(result.Price[0]))
}

func TestCalculateBlackScholes_InvalidOptionType(t *testing.T) {
	input := BlackScholesInput{
		S:     Scalar(100),
		K:     Scalar(100),
		T:     Scalar(1),
		Sigma: Scalar(0.2),
		R:     0.05,
	}

	result, err := CalculateBlackScholes(OptionType("STRADDLE"), input)
	require.ErrorIs(t, err, ErrInvalidOptionType)
	assert.Nil(t, result)
}

func TestCalculateBlackScholes_ShapeMismatch(t *testing.T) {
	input := BlackScholesInput{
		S:     Vector{100, 105, 110},
		K:     Vector{100, 105},
		T:     Scalar(1),
		Sigma: Scalar(0.2),
		R:     0.05,
	}

	result, err := CalculateBlackScholes(OptionTypeCall, input)
	require.ErrorIs(t, err, ErrShapeMismatch)
	assert.Nil(t, result)
}
