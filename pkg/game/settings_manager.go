package game

import (
	"log"

	"github.com/decker502/thunder/pkg/config"
	"github.com/decker502/thunder/pkg/utils"
)

// Settings 运行时可调的设置
// 只保存在内存中，退出即丢弃
type Settings struct {
	SoundVolume  float64 // 音效音量 0.0 ~ 1.0
	SoundEnabled bool    // 音效开关
	Thickness    float64 // 闪电粗细
	Tint         uint32  // 闪电染色 0xRRGGBB
}

// SettingsManager 设置管理器
type SettingsManager struct {
	settings *Settings
}

// NewSettingsManager 用配置文件中的初始值创建设置管理器
func NewSettingsManager(cfg *config.ThunderConfig) *SettingsManager {
	tint := uint32(0xFFFFFF)
	if tints := cfg.TintValues(); len(tints) > 0 {
		tint = tints[0]
	}
	return &SettingsManager{
		settings: &Settings{
			SoundVolume:  clampVolume(cfg.Sounds.Volume),
			SoundEnabled: cfg.Sounds.Enabled,
			Thickness:    clampThickness(cfg.Bolt.Thickness),
			Tint:         tint,
		},
	}
}

// GetSettings 获取当前设置
func (sm *SettingsManager) GetSettings() *Settings {
	return sm.settings
}

// SetSoundVolume 设置音效音量，限制在 0.0 ~ 1.0
func (sm *SettingsManager) SetSoundVolume(volume float64) {
	sm.settings.SoundVolume = clampVolume(volume)
}

// SetSoundEnabled 设置音效开关
func (sm *SettingsManager) SetSoundEnabled(enabled bool) {
	sm.settings.SoundEnabled = enabled
}

// ToggleSound 切换音效开关，返回切换后的状态
func (sm *SettingsManager) ToggleSound() bool {
	sm.settings.SoundEnabled = !sm.settings.SoundEnabled
	log.Printf("[SettingsManager] Sound enabled: %v", sm.settings.SoundEnabled)
	return sm.settings.SoundEnabled
}

// AdjustThickness 按增量调整粗细，返回调整后的值
func (sm *SettingsManager) AdjustThickness(delta float64) float64 {
	sm.settings.Thickness = clampThickness(sm.settings.Thickness + delta)
	return sm.settings.Thickness
}

// SetTint 设置染色，纯黑按 1 处理
func (sm *SettingsManager) SetTint(rgb uint32) {
	sm.settings.Tint = utils.MinTint(rgb & 0xFFFFFF)
}

// clampVolume 将音量值限制在 0.0 ~ 1.0 范围内
func clampVolume(volume float64) float64 {
	return utils.Clamp(volume, 0, 1)
}

func clampThickness(thickness float64) float64 {
	return utils.Clamp(thickness, config.MinThickness, config.MaxThickness)
}
