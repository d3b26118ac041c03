package domain

import (
	"errors"
	"fmt"
	"strings"
)

// OptionType 期权类型
type OptionType string

const (
	OptionTypeCall OptionType = "CALL" // 看涨期权
	OptionTypePut  OptionType = "PUT"  // 看跌期权
)

// ErrInvalidOptionType 非法期权类型错误
var ErrInvalidOptionType = errors.New("invalid option type")

// ParseOptionType 在边界处解析并校验期权类型，不做默认分支
func ParseOptionType(s string) (OptionType, error) {
	switch OptionType(strings.ToUpper(s)) {
	case OptionTypeCall:
		return OptionTypeCall, nil
	case OptionTypePut:
		return OptionTypePut, nil
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidOptionType, s)
}

// Valid 判断期权类型是否合法
func (t OptionType) Valid() bool {
	return t == OptionTypeCall || t == OptionTypePut
}
