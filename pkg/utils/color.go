package utils

import (
	"errors"
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// ErrInvalidColor CSS 颜色字符串格式错误
var ErrInvalidColor = errors.New("invalid css color")

// ParseCSSHex 将 "#RRGGBB" 转换为 0xRRGGBB
func ParseCSSHex(css string) (uint32, error) {
	if len(css) != 7 || !strings.HasPrefix(css, "#") {
		return 0, fmt.Errorf("%w: %q", ErrInvalidColor, css)
	}
	v, err := strconv.ParseUint(css[1:], 16, 32)
	if err != nil {
		return 0, fmt.Errorf("%w: %q: %v", ErrInvalidColor, css, err)
	}
	return uint32(v), nil
}

// FormatCSSHex 将 0xRRGGBB 格式化为 "#RRGGBB"
func FormatCSSHex(rgb uint32) string {
	return fmt.Sprintf("#%06X", rgb&0xFFFFFF)
}

// MinTint 染色值至少为 1，纯黑 0 会被当作 1 处理
func MinTint(rgb uint32) uint32 {
	if rgb < 1 {
		return 1
	}
	return rgb
}

// ColorFromHex 将 0xRRGGBB 转为不透明的 color.RGBA
func ColorFromHex(rgb uint32) color.RGBA {
	return color.RGBA{
		R: uint8(rgb >> 16),
		G: uint8(rgb >> 8),
		B: uint8(rgb),
		A: 0xFF,
	}
}

// HueTint 按色相生成一个高亮的 "#RRGGBB" 染色
//
// 饱和度偏低，闪电仍以白色为主，只带一点色调。
func HueTint(hue float64) string {
	return colorful.Hsv(hue, 0.45, 1.0).Clamped().Hex()
}
