package utils

import (
	"errors"
	"fmt"
	"math/rand"
)

// ErrInvalidRange 随机范围为空时返回
var ErrInvalidRange = errors.New("invalid random range")

// RandomSource 可注入的伪随机源
//
// 闪电生成依赖随机断点和随机偏移，测试时传入固定种子的随机源即可得到确定结果。
type RandomSource interface {
	// Float64 返回 [0, 1) 内的均匀随机数
	Float64() float64
	// Intn 返回 [0, n) 内的均匀随机整数，n 必须为正
	Intn(n int) int
}

// NewRandomSource 创建基于 math/rand 的随机源
func NewRandomSource(seed int64) RandomSource {
	return rand.New(rand.NewSource(seed))
}

// RandomInt 返回 [0, maxExclusive) 内的随机整数
func RandomInt(src RandomSource, maxExclusive int) (int, error) {
	if maxExclusive <= 0 {
		return 0, fmt.Errorf("%w: maxExclusive=%d", ErrInvalidRange, maxExclusive)
	}
	return src.Intn(maxExclusive), nil
}

// RandomRange 返回 [min, max) 内的随机浮点数
func RandomRange(src RandomSource, min, max float64) float64 {
	return min + src.Float64()*(max-min)
}

// RandomIntInclusive 返回 [min, max] 内的随机整数
func RandomIntInclusive(src RandomSource, min, max int) (int, error) {
	if max < min {
		return 0, fmt.Errorf("%w: [%d, %d]", ErrInvalidRange, min, max)
	}
	return min + src.Intn(max-min+1), nil
}

// RandomChoice 从 choices 中等概率取一个
func RandomChoice[T any](src RandomSource, choices []T) (T, error) {
	var zero T
	if len(choices) == 0 {
		return zero, fmt.Errorf("%w: empty choices", ErrInvalidRange)
	}
	return choices[src.Intn(len(choices))], nil
}
