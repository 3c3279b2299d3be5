package game

import (
	"fmt"
	"log"

	"github.com/decker502/thunder/pkg/audio/synth"
	"github.com/decker502/thunder/pkg/config"
	"github.com/decker502/thunder/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2/audio"
)

// AudioManager 雷声管理器
// 职责：
//   - 加载配置中的雷声片段，文件缺失时用合成雷声代替
//   - 每次触发等概率随机选一段播放（播放即忘，不等待结束）
//   - 从 SettingsManager 读取音量和开关
type AudioManager struct {
	resourceManager *ResourceManager
	settingsManager *SettingsManager
	clipIDs         []string
}

// NewAudioManager 创建新的音频管理器
//
// 参数：
//   - rm: ResourceManager 实例（用于加载音频）
//   - sm: SettingsManager 实例（可为 nil，使用默认音量）
func NewAudioManager(rm *ResourceManager, sm *SettingsManager) *AudioManager {
	return &AudioManager{
		resourceManager: rm,
		settingsManager: sm,
	}
}

// LoadClips 加载雷声片段
//
// 文件存在则解码文件；否则合成一段雷声，seed 决定合成波形。
// 没有音频上下文时只记录片段 ID，播放时静默失败。
func (am *AudioManager) LoadClips(clips []config.SoundRef, seed int64) error {
	am.clipIDs = am.clipIDs[:0]
	ctx := am.resourceManager.AudioContext()

	for i, clip := range clips {
		am.clipIDs = append(am.clipIDs, clip.ID)
		if ctx == nil {
			continue
		}

		if resourceExists(clip.Path) {
			_, err := am.resourceManager.LoadSoundEffect(clip.ID, clip.Path)
			if err == nil {
				continue
			}
			log.Printf("[AudioManager] Warning: %v, falling back to synthesized thunder", err)
		}

		pcm := synth.Thunder(seed+int64(i), synth.DefaultThunderParams(ctx.SampleRate()))
		if _, err := am.resourceManager.RegisterPCM(clip.ID, pcm); err != nil {
			return fmt.Errorf("register synthesized clip %s: %w", clip.ID, err)
		}
	}

	log.Printf("[AudioManager] Loaded %d thunder clips", len(am.clipIDs))
	return nil
}

// ClipIDs 已加载的片段
func (am *AudioManager) ClipIDs() []string {
	return am.clipIDs
}

// PickClip 等概率选择一个片段 ID
func (am *AudioManager) PickClip(src utils.RandomSource) (string, error) {
	return utils.RandomChoice(src, am.clipIDs)
}

// PlayRandom 随机播放一段雷声
//
// 返回：
//   - bool: 是否成功播放
func (am *AudioManager) PlayRandom(src utils.RandomSource) bool {
	id, err := am.PickClip(src)
	if err != nil {
		log.Printf("[AudioManager] Warning: no thunder clips: %v", err)
		return false
	}
	return am.PlaySound(id)
}

// PlaySound 播放音效
// 音效使用 SoundVolume 设置控制音量，单次播放后停止
func (am *AudioManager) PlaySound(soundID string) bool {
	if am.settingsManager != nil && !am.settingsManager.GetSettings().SoundEnabled {
		return false // 音效已禁用
	}

	player := am.resourceManager.GetAudioPlayer(soundID)
	if player == nil {
		log.Printf("[AudioManager] Warning: Sound not found: %s", soundID)
		return false
	}

	play(player, am.getSoundVolume(), soundID)
	return true
}

func play(player *audio.Player, volume float64, soundID string) {
	player.SetVolume(volume)
	if err := player.Rewind(); err != nil {
		log.Printf("[AudioManager] Warning: Failed to rewind sound %s: %v", soundID, err)
	}
	player.Play()
}

// getSoundVolume 获取音效音量设置
func (am *AudioManager) getSoundVolume() float64 {
	if am.settingsManager != nil {
		return am.settingsManager.GetSettings().SoundVolume
	}
	return 0.5 // 默认值
}
