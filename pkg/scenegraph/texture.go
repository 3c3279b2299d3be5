package scenegraph

import (
	"image"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
)

// 闪电贴图的标定尺寸
const (
	// ReferenceCapThickness 端帽贴图高度，也是线段贴图的厚度
	ReferenceCapThickness = 12
	// CapTextureWidth 半圆端帽的宽度
	CapTextureWidth = ReferenceCapThickness / 2
	// SegmentTextureWidth 线段贴图宽度（沿长度方向拉伸）
	SegmentTextureWidth = 1
)

// glowFalloff 将到中心的归一化距离映射为发光强度
func glowFalloff(d float64) float64 {
	if d >= 1 {
		return 0
	}
	// 中心一条亮芯，向外快速衰减
	core := math.Max(0, 1-d*3)
	halo := math.Pow(1-d, 2)
	return math.Min(1, core+halo*0.8)
}

// CapImage 生成端帽图像：右侧是平边，左侧是半圆发光
//
// 端帽以锚点 (1, 0.5) 放置时，平边对齐线段端点，半圆向后延伸。
func CapImage() *image.NRGBA {
	w, h := CapTextureWidth, ReferenceCapThickness
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	r := float64(h) / 2
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			dx := float64(w) - (float64(x) + 0.5)
			dy := (float64(y) + 0.5) - r
			a := glowFalloff(math.Hypot(dx, dy) / r)
			img.SetNRGBA(x, y, color.NRGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: uint8(math.Round(a * 0xFF))})
		}
	}
	return img
}

// SegmentImage 生成线段主体图像：宽 1 像素，纵向对称发光
func SegmentImage() *image.NRGBA {
	w, h := SegmentTextureWidth, ReferenceCapThickness
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	r := float64(h) / 2
	for y := 0; y < h; y++ {
		d := math.Abs((float64(y)+0.5)-r) / r
		a := glowFalloff(d)
		for x := 0; x < w; x++ {
			img.SetNRGBA(x, y, color.NRGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: uint8(math.Round(a * 0xFF))})
		}
	}
	return img
}

// TextureSet 闪电绘制所需的两张贴图
type TextureSet struct {
	Cap     *ebiten.Image
	Segment *ebiten.Image
}

// NewProceduralTextures 用程序生成的发光图像创建贴图
func NewProceduralTextures() *TextureSet {
	return &TextureSet{
		Cap:     ebiten.NewImageFromImage(CapImage()),
		Segment: ebiten.NewImageFromImage(SegmentImage()),
	}
}

// Validate 检查两张贴图是否齐全
func (ts *TextureSet) Validate() error {
	if ts == nil || ts.Cap == nil {
		return ErrMissingParameter
	}
	if ts.Segment == nil {
		return ErrMissingParameter
	}
	return nil
}
