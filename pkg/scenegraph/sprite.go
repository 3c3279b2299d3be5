// Package scenegraph 提供最小的保留模式场景树：带纹理的精灵和可整体设置透明度的容器。
package scenegraph

import (
	"errors"
	"fmt"

	"github.com/decker502/thunder/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
)

// ErrMissingParameter 构造时缺少必需参数
var ErrMissingParameter = errors.New("missing parameter")

// Node 场景树中可绘制的节点
type Node interface {
	// Draw 将节点绘制到 dst，alpha 为父级累积透明度
	Draw(dst *ebiten.Image, alpha float64)
}

// Sprite 带纹理的四边形
//
// 变换顺序与常见 2D 引擎一致：先按 Anchor 平移纹理原点，再缩放、旋转，最后移动到 Position。
type Sprite struct {
	Texture  *ebiten.Image
	Position utils.Vector2
	Rotation float64       // 弧度
	Scale    utils.Vector2 // 非等比缩放
	Anchor   utils.Vector2 // 归一化锚点 (0~1)
	Tint     uint32        // 0xRRGGBB
}

// SpriteOption 精灵可选参数
type SpriteOption func(*Sprite)

// WithRotation 设置旋转角度
func WithRotation(rotation float64) SpriteOption {
	return func(s *Sprite) { s.Rotation = rotation }
}

// WithScale 设置非等比缩放
func WithScale(scale utils.Vector2) SpriteOption {
	return func(s *Sprite) { s.Scale = scale }
}

// WithUniformScale 设置等比缩放
func WithUniformScale(scale float64) SpriteOption {
	return func(s *Sprite) { s.Scale = utils.NewVector2(scale, scale) }
}

// WithAnchor 设置锚点
func WithAnchor(x, y float64) SpriteOption {
	return func(s *Sprite) { s.Anchor = utils.NewVector2(x, y) }
}

// WithTint 设置染色
func WithTint(rgb uint32) SpriteOption {
	return func(s *Sprite) { s.Tint = rgb }
}

// NewSprite 创建精灵
//
// texture 为必需参数，nil 时返回 ErrMissingParameter。
// 默认：不旋转、缩放 1、锚点 (0,0)、白色染色。
func NewSprite(texture *ebiten.Image, position utils.Vector2, opts ...SpriteOption) (*Sprite, error) {
	if texture == nil {
		return nil, fmt.Errorf("%w: texture", ErrMissingParameter)
	}

	s := &Sprite{
		Texture:  texture,
		Position: position,
		Scale:    utils.NewVector2(1, 1),
		Tint:     0xFFFFFF,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// GeoM 计算精灵的几何变换
func (s *Sprite) GeoM() ebiten.GeoM {
	bounds := s.Texture.Bounds()
	w, h := float64(bounds.Dx()), float64(bounds.Dy())

	var m ebiten.GeoM
	m.Translate(-s.Anchor.X*w, -s.Anchor.Y*h)
	m.Scale(s.Scale.X, s.Scale.Y)
	m.Rotate(s.Rotation)
	m.Translate(s.Position.X, s.Position.Y)
	return m
}

// Draw 实现 Node
func (s *Sprite) Draw(dst *ebiten.Image, alpha float64) {
	if alpha <= 0 {
		return
	}

	op := &ebiten.DrawImageOptions{}
	op.GeoM = s.GeoM()
	op.ColorScale.ScaleWithColor(utils.ColorFromHex(s.Tint))
	op.ColorScale.ScaleAlpha(float32(alpha))
	op.Filter = ebiten.FilterLinear
	dst.DrawImage(s.Texture, op)
}
