package utils

import (
	"errors"
	"fmt"
	"math"
)

// ErrZeroLength 对零长度向量求单位向量时返回
var ErrZeroLength = errors.New("cannot normalize zero-length vector")

// Vector2 二维点/方向
//
// 所有运算都返回新值，不修改接收者，避免多个持有者共享同一个点时互相影响。
type Vector2 struct {
	X, Y float64
}

// NewVector2 创建向量
func NewVector2(x, y float64) Vector2 {
	return Vector2{X: x, Y: y}
}

// Add 逐分量相加
func (v Vector2) Add(o Vector2) Vector2 {
	return Vector2{X: v.X + o.X, Y: v.Y + o.Y}
}

// AddScalar 两个分量同时加上 s
func (v Vector2) AddScalar(s float64) Vector2 {
	return Vector2{X: v.X + s, Y: v.Y + s}
}

// Sub 逐分量相减
func (v Vector2) Sub(o Vector2) Vector2 {
	return Vector2{X: v.X - o.X, Y: v.Y - o.Y}
}

// SubScalar 两个分量同时减去 s
func (v Vector2) SubScalar(s float64) Vector2 {
	return Vector2{X: v.X - s, Y: v.Y - s}
}

// Mul 逐分量相乘
func (v Vector2) Mul(o Vector2) Vector2 {
	return Vector2{X: v.X * o.X, Y: v.Y * o.Y}
}

// Scale 标量乘法
func (v Vector2) Scale(s float64) Vector2 {
	return Vector2{X: v.X * s, Y: v.Y * s}
}

// Div 逐分量相除
// 除数为 0 的分量保持不变，不产生 Inf/NaN
func (v Vector2) Div(o Vector2) Vector2 {
	r := v
	if o.X != 0 {
		r.X /= o.X
	}
	if o.Y != 0 {
		r.Y /= o.Y
	}
	return r
}

// DivScalar 标量除法，s 为 0 时原样返回
func (v Vector2) DivScalar(s float64) Vector2 {
	if s == 0 {
		return v
	}
	return Vector2{X: v.X / s, Y: v.Y / s}
}

// Negate 取反
func (v Vector2) Negate() Vector2 {
	return Vector2{X: -v.X, Y: -v.Y}
}

// Dot 点积
func (v Vector2) Dot(o Vector2) float64 {
	return v.X*o.X + v.Y*o.Y
}

// Cross 叉积的 z 分量
func (v Vector2) Cross(o Vector2) float64 {
	return v.X*o.Y - v.Y*o.X
}

// Length 欧几里得长度
func (v Vector2) Length() float64 {
	return math.Sqrt(v.Dot(v))
}

// Normalize 返回同方向的单位向量
//
// 零向量返回零向量和 ErrZeroLength。
func (v Vector2) Normalize() (Vector2, error) {
	length := v.Length()
	if length == 0 {
		return Vector2{}, ErrZeroLength
	}
	return Vector2{X: v.X / length, Y: v.Y / length}, nil
}

// Angle 返回向量相对 +X 轴的有符号角度（弧度，屏幕坐标系下 Y 向下为正方向）
func (v Vector2) Angle() float64 {
	return math.Atan2(v.Y, v.X)
}

// TurnLeft 旋转 90°，仅对单位向量有意义
func (v Vector2) TurnLeft() Vector2 {
	return Vector2{X: -v.Y, Y: v.X}
}

// Equals 精确比较
func (v Vector2) Equals(o Vector2) bool {
	return v.X == o.X && v.Y == o.Y
}

// String 实现 fmt.Stringer
func (v Vector2) String() string {
	return fmt.Sprintf("x: %g, y: %g", v.X, v.Y)
}

// Lerp 在 a 和 b 之间线性插值，t=0 返回 a，t=1 返回 b
func Lerp(a, b Vector2, t float64) Vector2 {
	return a.Scale(1 - t).Add(b.Scale(t))
}

// Distance 两点间距离
func Distance(a, b Vector2) float64 {
	return b.Sub(a).Length()
}

// Clamp 将 value 限制在 [min, max]
// min > max 属于调用方错误，直接 panic
func Clamp(value, min, max float64) float64 {
	if min > max {
		panic(fmt.Sprintf("utils.Clamp: min(%v) > max(%v)", min, max))
	}
	if value < min {
		return min
	}
	if value > max {
		return max
	}
	return value
}
