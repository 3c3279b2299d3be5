package effects

import (
	"fmt"
	"math"
	"sort"

	"github.com/decker502/thunder/pkg/scenegraph"
	"github.com/decker502/thunder/pkg/utils"
)

// Bolt 两点之间的一道闪电
//
// 生命周期：NewBolt 生成线段链 → Render 绘制 → Update 每帧淡出 →
// SetPosition/Refresh 丢弃旧线段、恢复不透明并重新生成。
// 淡出完成后仍保留在场景树中，直到调用方替换或 Dispose。
type Bolt struct {
	a, b      utils.Vector2
	thickness float64
	segments  []*Segment

	cfg       BoltConfig
	src       utils.RandomSource
	textures  *scenegraph.TextureSet
	container *scenegraph.Container

	fadeTicks int
	rendered  bool
}

// NewBolt 创建闪电并立即生成线段链
//
// textures 可以为 nil（只计算几何，不绘制），此时 Render 返回错误。
func NewBolt(a, b utils.Vector2, thickness float64, textures *scenegraph.TextureSet, cfg BoltConfig, src utils.RandomSource) (*Bolt, error) {
	if src == nil {
		return nil, fmt.Errorf("%w: random source", scenegraph.ErrMissingParameter)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid bolt config: %w", err)
	}

	bolt := &Bolt{
		a:         a,
		b:         b,
		thickness: thickness,
		cfg:       cfg,
		src:       src,
		textures:  textures,
		container: scenegraph.NewContainer(),
	}
	bolt.createBolt()
	return bolt, nil
}

// createBolt 在 A、B 之间生成抖动的线段链
//
// 沿 A→B 随机撒下断点，每个断点沿法线方向偏移；偏移量与上一个断点做低通混合，
// 相邻断点越近，偏移越接近，避免出现尖锐折角。接近 B 时偏移按包络收束。
func (bolt *Bolt) createBolt() {
	cfg := bolt.cfg
	a, b := bolt.a, bolt.b

	tangent := b.Sub(a)
	// A 与 B 重合时没有断点，法线为零向量不会被用到
	normal, _ := tangent.Normalize()
	perpendicular := normal.TurnLeft()
	length := tangent.Length()

	count := int(math.Floor(length / cfg.JitterDivisor))
	positions := make([]float64, 0, count+1)
	positions = append(positions, 0)
	for i := 0; i < count; i++ {
		positions = append(positions, bolt.src.Float64())
	}
	sort.Float64s(positions)

	jaggedness := cfg.Jaggedness()
	segments := make([]*Segment, 0, len(positions))
	prevPoint := a
	prevDisplacement := 0.0

	for i := 1; i < len(positions); i++ {
		scale := (length * jaggedness) * (positions[i] - positions[i-1])

		envelope := 1.0
		if positions[i] > cfg.EnvelopeStart {
			envelope = cfg.EnvelopeFactor * (1 - positions[i])
		}

		displacement := utils.RandomRange(bolt.src, -cfg.Sway, cfg.Sway)
		displacement -= (displacement - prevDisplacement) * (1 - scale)
		displacement *= envelope
		if cfg.ClampDisplacement {
			displacement = utils.Clamp(displacement, -cfg.Sway, cfg.Sway)
		}

		point := a.Add(tangent.Scale(positions[i])).Add(perpendicular.Scale(displacement))
		segments = append(segments, NewSegment(prevPoint, point, bolt.thickness, bolt.textures))
		prevPoint = point
		prevDisplacement = displacement
	}

	// 最后一段总是落在真正的终点上
	segments = append(segments, NewSegment(prevPoint, b, bolt.thickness, bolt.textures))
	bolt.segments = segments
}

// Refresh 丢弃旧线段并按当前端点重新生成
//
// 没有线段时（零值 Bolt 或已 Dispose）什么也不做。
func (bolt *Bolt) Refresh() {
	if len(bolt.segments) == 0 {
		return
	}

	bolt.segments = nil
	bolt.container.RemoveChildren()
	bolt.fadeTicks = 0
	bolt.container.Alpha = 1
	bolt.rendered = false
	bolt.createBolt()
}

// SetPosition 更新端点并重新生成
func (bolt *Bolt) SetPosition(a, b utils.Vector2) {
	bolt.a = a
	bolt.b = b
	bolt.Refresh()
}

// SetThickness 设置线段粗细，下一次生成时生效
func (bolt *Bolt) SetThickness(thickness float64) {
	bolt.thickness = thickness
}

// Render 以 tint 染色绘制全部线段
//
// 已完全透明时不绘制。每次调用先清空容器，重复调用不会叠加几何。
func (bolt *Bolt) Render(tint uint32) error {
	if bolt.Opacity() <= 0 {
		return nil
	}

	bolt.container.RemoveChildren()
	for i, segment := range bolt.segments {
		if err := segment.Render(tint); err != nil {
			return fmt.Errorf("render segment %d: %w", i, err)
		}
		bolt.container.AddChild(segment.Container())
	}
	bolt.rendered = true
	return nil
}

// Update 每帧调用，已绘制过才会淡出
//
// 透明度不做下限截断，可能变为负值。
func (bolt *Bolt) Update() {
	if !bolt.rendered {
		return
	}
	bolt.fadeTicks++
	bolt.container.Alpha = 1 - float64(bolt.fadeTicks)*bolt.cfg.FadeRate
}

// IsComplete 已绘制且完全淡出
func (bolt *Bolt) IsComplete() bool {
	return bolt.rendered && bolt.Opacity() <= 0
}

// Dispose 释放线段和精灵，之后 Refresh 不再重新生成
func (bolt *Bolt) Dispose() {
	bolt.segments = nil
	if bolt.container != nil {
		bolt.container.RemoveChildren()
	}
	bolt.rendered = false
}

// Opacity 当前整体透明度
func (bolt *Bolt) Opacity() float64 {
	if bolt.container == nil {
		return 0
	}
	return bolt.container.Alpha
}

// Rendered 自上次生成以来是否绘制过
func (bolt *Bolt) Rendered() bool {
	return bolt.rendered
}

// Segments 从 A 到 B 排列的线段
func (bolt *Bolt) Segments() []*Segment {
	return bolt.segments
}

// Endpoints 当前端点
func (bolt *Bolt) Endpoints() (utils.Vector2, utils.Vector2) {
	return bolt.a, bolt.b
}

// Thickness 当前线段粗细
func (bolt *Bolt) Thickness() float64 {
	return bolt.thickness
}

// Container 闪电的根容器，加入场景树后由其透明度控制淡出
func (bolt *Bolt) Container() *scenegraph.Container {
	return bolt.container
}

// GetPoint 返回沿 A→B 方向 fraction 处的闪电上的点
//
// 距离按各顶点在 A→B 轴上的投影计算，不是折线的真实弧长。
// 找到第一个远端投影不小于目标距离的线段，在其两端之间线性插值。
func (bolt *Bolt) GetPoint(fraction float64) utils.Vector2 {
	fraction = utils.Clamp(fraction, 0, 1)

	axis := bolt.b.Sub(bolt.a)
	length := axis.Length()
	if length == 0 || len(bolt.segments) == 0 {
		return bolt.a
	}
	unit := axis.DivScalar(length)
	target := fraction * length

	for _, segment := range bolt.segments {
		far := segment.B.Sub(bolt.a).Dot(unit)
		if far < target {
			continue
		}
		near := segment.A.Sub(bolt.a).Dot(unit)
		if far-near <= 0 {
			return segment.A
		}
		t := utils.Clamp((target-near)/(far-near), 0, 1)
		return utils.Lerp(segment.A, segment.B, t)
	}
	return bolt.b
}
