package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBroadcastLen(t *testing.T) {
	tests := []struct {
		name    string
		vs      []Vector
		want    int
		wantErr bool
	}{
		{"all scalars", []Vector{Scalar(1), Scalar(2)}, 1, false},
		{"scalar and array", []Vector{Scalar(1), {1, 2, 3}}, 3, false},
		{"equal arrays", []Vector{{1, 2}, {3, 4}}, 2, false},
		{"array then scalar", []Vector{{1, 2, 3}, Scalar(9), {4, 5, 6}}, 3, false},
		{"mismatched arrays", []Vector{{1, 2, 3}, {1, 2}}, 0, true},
		{"empty vector", []Vector{{}, Scalar(1)}, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n, err := BroadcastLen(tt.vs...)
			if tt.wantErr {
				require.ErrorIs(t, err, ErrShapeMismatch)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, n)
		})
	}
}

func TestVectorAt(t *testing.T) {
	scalar := Scalar(7)
	assert.Equal(t, 7.0, scalar.At(0))
	assert.Equal(t, 7.0, scalar.At(5)) // 标量向任意下标广播

	v := Vector{1, 2, 3}
	assert.Equal(t, 2.0, v.At(1))
}

func TestParseOptionType(t *testing.T) {
	got, err := ParseOptionType("call")
	require.NoError(t, err)
	assert.Equal(t, OptionTypeCall, got)

	got, err = ParseOptionType("PUT")
	require.NoError(t, err)
	assert.Equal(t, OptionTypePut, got)

	_, err = ParseOptionType("future")
	require.ErrorIs(t, err, ErrInvalidOptionType)
}
