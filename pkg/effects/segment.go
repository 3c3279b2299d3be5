// Package effects 实现闪电的几何生成与淡出动画
package effects

import (
	"fmt"
	"math"

	"github.com/decker502/thunder/pkg/scenegraph"
	"github.com/decker502/thunder/pkg/utils"
)

// Segment 闪电中的一段直线
//
// 绘制为三个精灵：A、B 两端的半圆端帽和中间拉伸的主体。
type Segment struct {
	A, B      utils.Vector2
	Thickness float64

	textures  *scenegraph.TextureSet
	container *scenegraph.Container
}

// NewSegment 创建线段，thickness 非正时使用默认值 1
func NewSegment(a, b utils.Vector2, thickness float64, textures *scenegraph.TextureSet) *Segment {
	if thickness <= 0 {
		thickness = 1
	}
	return &Segment{
		A:         a,
		B:         b,
		Thickness: thickness,
		textures:  textures,
		container: scenegraph.NewContainer(),
	}
}

// Container 线段自己的容器
func (s *Segment) Container() *scenegraph.Container {
	return s.container
}

// Render 用 tint 染色重新生成三个精灵
//
// 每次调用先清空容器，重复调用结果相同。tint 为 0 时使用白色。
func (s *Segment) Render(tint uint32) error {
	if err := s.textures.Validate(); err != nil {
		return fmt.Errorf("segment textures: %w", err)
	}
	if tint == 0 {
		tint = 0xFFFFFF
	}

	s.container.RemoveChildren()

	tangent := s.B.Sub(s.A)
	rotation := tangent.Angle()
	thicknessScale := s.Thickness / scenegraph.ReferenceCapThickness
	bodyWidth := float64(s.textures.Segment.Bounds().Dx())
	bodyScale := utils.NewVector2(tangent.Length()/bodyWidth, thicknessScale)
	midpoint := s.A.Add(s.B).Scale(0.5)

	startCap, err := scenegraph.NewSprite(s.textures.Cap, s.A,
		scenegraph.WithTint(tint),
		scenegraph.WithRotation(rotation),
		scenegraph.WithUniformScale(thicknessScale),
		scenegraph.WithAnchor(1, 0.5),
	)
	if err != nil {
		return err
	}
	endCap, err := scenegraph.NewSprite(s.textures.Cap, s.B,
		scenegraph.WithTint(tint),
		scenegraph.WithRotation(rotation+math.Pi),
		scenegraph.WithUniformScale(thicknessScale),
		scenegraph.WithAnchor(1, 0.5),
	)
	if err != nil {
		return err
	}
	body, err := scenegraph.NewSprite(s.textures.Segment, midpoint,
		scenegraph.WithTint(tint),
		scenegraph.WithRotation(rotation),
		scenegraph.WithScale(bodyScale),
		scenegraph.WithAnchor(0.5, 0.5),
	)
	if err != nil {
		return err
	}

	s.container.AddChild(startCap, endCap, body)
	return nil
}
