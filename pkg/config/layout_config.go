package config

// 窗口与交互的固定参数

const (
	// GameWindowWidth 逻辑画布宽度
	GameWindowWidth = 800
	// GameWindowHeight 逻辑画布高度
	GameWindowHeight = 600
)

const (
	// MinThickness 可调的最小线段粗细
	MinThickness = 1.0
	// MaxThickness 可调的最大线段粗细
	MaxThickness = 20.0
	// ThicknessStep 每次按键调整的粗细
	ThicknessStep = 1.0
)

// HueStep 按 H 键时色相的旋转角度
const HueStep = 37.0

// HUD 文字位置
const (
	HUDTextX = 8
	HUDTextY = 8
)
