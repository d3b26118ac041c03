package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func baseInput() MonteCarloInput {
	return MonteCarloInput{
		S:          100,
		Mu:         0.08,
		Sigma:      0.25,
		T:          1,
		Iterations: 20000,
		Steps:      32,
		Seed:       7,
	}
}

func TestCalculateVaR_Deterministic(t *testing.T) {
	first, err := CalculateVaR(baseInput())
	require.NoError(t, err)
	second, err := CalculateVaR(baseInput())
	require.NoError(t, err)

	assert.True(t, first.VaR95.Equal(second.VaR95))
	assert.True(t, first.ES99.Equal(second.ES99))
}

func TestCalculateVaR_TailOrdering(t *testing.T) {
	result, err := CalculateVaR(baseInput())
	require.NoError(t, err)

	// 更高置信度意味着更极端的损失
	assert.True(t, result.VaR99.GreaterThan(result.VaR95),
		"VaR99 %s should exceed VaR95 %s", result.VaR99, result.VaR95)
	// ES 是尾部均值，不小于对应的 VaR
	assert.True(t, result.ES95.GreaterThanOrEqual(result.VaR95))
	assert.True(t, result.ES99.GreaterThanOrEqual(result.VaR99))
}

func TestCalculateVaR_InvalidInput(t *testing.T) {
	input := baseInput()
	input.Iterations = 50
	_, err := CalculateVaR(input)
	require.Error(t, err)

	input = baseInput()
	input.Steps = 0
	_, err = CalculateVaR(input)
	require.Error(t, err)
}
