package domain

import (
	"errors"
	"fmt"
)

// Vector 数值向量，长度为 1 时按标量广播
type Vector []float64

// ErrShapeMismatch 输入形状无法广播到一致长度
var ErrShapeMismatch = errors.New("shape mismatch")

// Scalar 构造单元素向量
func Scalar(x float64) Vector {
	return Vector{x}
}

// At 按广播语义取第 i 个元素
func (v Vector) At(i int) float64 {
	if len(v) == 1 {
		return v[0]
	}
	return v[i]
}

// BroadcastLen 计算一组向量的公共广播长度
// 规则：每个向量长度必须为 1 或等于公共长度，空向量非法
func BroadcastLen(vs ...Vector) (int, error) {
	n := 1
	for _, v := range vs {
		if len(v) == 0 {
			return 0, fmt.Errorf("%w: empty vector", ErrShapeMismatch)
		}
		if len(v) == 1 || len(v) == n {
			continue
		}
		if n == 1 {
			n = len(v)
			continue
		}
		return 0, fmt.Errorf("%w: cannot broadcast length %d with length %d", ErrShapeMismatch, len(v), n)
	}
	return n, nil
}
