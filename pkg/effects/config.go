package effects

import "fmt"

// BoltConfig 闪电生成和淡出参数
type BoltConfig struct {
	// Sway 垂直偏移的最大幅度（像素）
	Sway float64 `yaml:"sway"`
	// EnvelopeFactor 末端收束系数，越大收束越松
	EnvelopeFactor float64 `yaml:"envelopeFactor"`
	// EnvelopeStart 从路径的哪个比例开始收束
	EnvelopeStart float64 `yaml:"envelopeStart"`
	// JitterDivisor 每隔多少像素放一个随机断点
	JitterDivisor float64 `yaml:"jitterDivisor"`
	// FadeRate 每帧透明度递减量
	FadeRate float64 `yaml:"fadeRate"`
	// ClampDisplacement 是否将偏移限制在 [-Sway, Sway]
	ClampDisplacement bool `yaml:"clampDisplacement"`
}

// DefaultBoltConfig 返回默认参数
func DefaultBoltConfig() BoltConfig {
	return BoltConfig{
		Sway:              60,
		EnvelopeFactor:    20,
		EnvelopeStart:     0.95,
		JitterDivisor:     8,
		FadeRate:          0.04,
		ClampDisplacement: true,
	}
}

// Jaggedness 锯齿系数，由 Sway 推导
func (c BoltConfig) Jaggedness() float64 {
	return 1 / c.Sway
}

// Validate 检查参数范围
func (c BoltConfig) Validate() error {
	if c.Sway <= 0 {
		return fmt.Errorf("sway must be > 0, got %v", c.Sway)
	}
	if c.EnvelopeFactor <= 0 {
		return fmt.Errorf("envelopeFactor must be > 0, got %v", c.EnvelopeFactor)
	}
	if c.EnvelopeStart <= 0 || c.EnvelopeStart >= 1 {
		return fmt.Errorf("envelopeStart must be in (0, 1), got %v", c.EnvelopeStart)
	}
	if c.JitterDivisor <= 0 {
		return fmt.Errorf("jitterDivisor must be > 0, got %v", c.JitterDivisor)
	}
	if c.FadeRate <= 0 || c.FadeRate > 1 {
		return fmt.Errorf("fadeRate must be in (0, 1], got %v", c.FadeRate)
	}
	return nil
}
