// Package utils 提供通用工具函数
package utils

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// PointerEvent 一次指针按下事件（鼠标左键或触摸）
type PointerEvent struct {
	// 画布坐标
	Position Vector2
	// 是否来自触摸
	Touch bool
}

// PollPointerDown 检查本帧是否发生了指针按下
// 同时支持鼠标点击和触摸输入，优先检测触摸
func PollPointerDown() (PointerEvent, bool) {
	// 首先检查触摸输入（移动设备）
	touchIDs := inpututil.AppendJustPressedTouchIDs(nil)
	if len(touchIDs) > 0 {
		x, y := ebiten.TouchPosition(touchIDs[0])
		return PointerEvent{Position: NewVector2(float64(x), float64(y)), Touch: true}, true
	}

	// 其次检查鼠标输入（桌面设备）
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		return PointerEvent{Position: NewVector2(float64(x), float64(y))}, true
	}

	return PointerEvent{}, false
}

// GetPointerPosition 获取当前指针位置（触摸或鼠标）
// 优先返回触摸位置，如果没有触摸则返回鼠标位置
func GetPointerPosition() (int, int) {
	touchIDs := ebiten.AppendTouchIDs(nil)
	if len(touchIDs) > 0 {
		return ebiten.TouchPosition(touchIDs[0])
	}
	return ebiten.CursorPosition()
}
