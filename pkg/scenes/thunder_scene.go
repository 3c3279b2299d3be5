package scenes

import (
	"bytes"
	"fmt"
	"image/color"
	"log"
	"math"

	"github.com/decker502/thunder/pkg/config"
	"github.com/decker502/thunder/pkg/effects"
	"github.com/decker502/thunder/pkg/game"
	"github.com/decker502/thunder/pkg/scenegraph"
	"github.com/decker502/thunder/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"
)

// ThunderScene 点击屏幕落雷的场景
//
// 场景只持有一道闪电：每次点击从随机屏幕边缘向指针位置重新生成并绘制，
// 随后每帧淡出。键盘调整粗细、染色和音效开关。
type ThunderScene struct {
	cfg      *config.ThunderConfig
	settings *game.SettingsManager
	audio    *game.AudioManager
	src      utils.RandomSource

	bolt *effects.Bolt
	root *scenegraph.Container

	tints     []uint32
	tintIndex int
	hue       float64

	promptFace *text.GoTextFace
	background color.Color

	// 输入来源，测试时可替换
	pollPointer func() (utils.PointerEvent, bool)
	keyPressed  func(ebiten.Key) bool
}

// NewThunderScene 创建场景
//
// 参数：
//   - cfg: 应用配置
//   - textures: 闪电贴图（Cap 和 Segment）
//   - settings: 运行时设置
//   - audio: 雷声播放
//   - src: 随机源，同时用于闪电形状、起点和音效选择
func NewThunderScene(cfg *config.ThunderConfig, textures *scenegraph.TextureSet, settings *game.SettingsManager, audio *game.AudioManager, src utils.RandomSource) (*ThunderScene, error) {
	if err := textures.Validate(); err != nil {
		return nil, fmt.Errorf("thunder scene textures: %w", err)
	}

	// 初始闪电两端重合，点击前不会被绘制
	bolt, err := effects.NewBolt(utils.Vector2{}, utils.Vector2{}, settings.GetSettings().Thickness, textures, cfg.Bolt.BoltConfig, src)
	if err != nil {
		return nil, fmt.Errorf("create bolt: %w", err)
	}

	face, err := newPromptFace(cfg.Prompt.Size)
	if err != nil {
		return nil, err
	}

	root := scenegraph.NewContainer()
	root.AddChild(bolt.Container())

	s := &ThunderScene{
		cfg:         cfg,
		settings:    settings,
		audio:       audio,
		src:         src,
		bolt:        bolt,
		root:        root,
		tints:       cfg.TintValues(),
		promptFace:  face,
		background:  color.Black,
		pollPointer: utils.PollPointerDown,
		keyPressed:  inpututil.IsKeyJustPressed,
	}
	log.Printf("[ThunderScene] Created (%dx%d, %d tints)", cfg.Screen.Width, cfg.Screen.Height, len(s.tints))
	return s, nil
}

func newPromptFace(size float64) (*text.GoTextFace, error) {
	source, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		return nil, fmt.Errorf("无法创建提示字体: %w", err)
	}
	return &text.GoTextFace{
		Source:    source,
		Size:      size,
		Direction: text.DirectionLeftToRight,
	}, nil
}

// Update 处理输入并推进淡出
func (s *ThunderScene) Update(deltaTime float64) {
	s.handleKeys()

	if event, ok := s.pollPointer(); ok {
		if err := s.Strike(event.Position); err != nil {
			log.Printf("[ThunderScene] Warning: strike failed: %v", err)
		}
	}

	s.bolt.Update()
}

func (s *ThunderScene) handleKeys() {
	switch {
	case s.keyPressed(ebiten.KeyArrowUp):
		s.settings.AdjustThickness(config.ThicknessStep)
	case s.keyPressed(ebiten.KeyArrowDown):
		s.settings.AdjustThickness(-config.ThicknessStep)
	}
	if s.keyPressed(ebiten.KeyT) {
		s.CycleTint()
	}
	if s.keyPressed(ebiten.KeyH) {
		s.RotateHue()
	}
	if s.keyPressed(ebiten.KeyM) {
		s.settings.ToggleSound()
	}
}

// Strike 从随机屏幕边缘向 target 落雷
//
// 选起点 → 播放随机雷声 → 按当前粗细重新生成 → 按当前染色绘制。
// 音效播放失败不影响闪电。
func (s *ThunderScene) Strike(target utils.Vector2) error {
	origin, err := PickRandomEdgeOrigin(s.cfg.Screen.Width, s.cfg.Screen.Height, s.src)
	if err != nil {
		return err
	}

	if s.audio != nil {
		s.audio.PlayRandom(s.src)
	}

	settings := s.settings.GetSettings()
	s.bolt.SetThickness(settings.Thickness)
	s.bolt.SetPosition(origin, target)
	if err := s.bolt.Render(settings.Tint); err != nil {
		return fmt.Errorf("render bolt: %w", err)
	}

	log.Printf("[ThunderScene] Strike %v -> %v (%d segments, tint %s)",
		origin, target, len(s.bolt.Segments()), utils.FormatCSSHex(settings.Tint))
	return nil
}

// CycleTint 切换到配置中的下一个染色
func (s *ThunderScene) CycleTint() uint32 {
	if len(s.tints) == 0 {
		return s.settings.GetSettings().Tint
	}
	s.tintIndex = (s.tintIndex + 1) % len(s.tints)
	s.settings.SetTint(s.tints[s.tintIndex])
	return s.settings.GetSettings().Tint
}

// RotateHue 色相前进一步，生成新的染色
func (s *ThunderScene) RotateHue() uint32 {
	s.hue = math.Mod(s.hue+config.HueStep, 360)
	tint, err := utils.ParseCSSHex(utils.HueTint(s.hue))
	if err != nil {
		log.Printf("[ThunderScene] Warning: hue tint: %v", err)
		return s.settings.GetSettings().Tint
	}
	s.settings.SetTint(tint)
	return s.settings.GetSettings().Tint
}

// Bolt 场景中的闪电
func (s *ThunderScene) Bolt() *effects.Bolt {
	return s.bolt
}

// Draw 绘制背景、闪电、提示文字和状态栏
func (s *ThunderScene) Draw(screen *ebiten.Image) {
	screen.Fill(s.background)
	s.root.Draw(screen, 1)
	s.drawPrompt(screen)
	s.drawHUD(screen)
}

func (s *ThunderScene) drawPrompt(screen *ebiten.Image) {
	if s.cfg.Prompt.Text == "" {
		return
	}
	op := &text.DrawOptions{}
	op.GeoM.Translate(float64(s.cfg.Screen.Width)/2, s.cfg.Prompt.Y)
	op.PrimaryAlign = text.AlignCenter
	op.SecondaryAlign = text.AlignCenter
	op.ColorScale.ScaleWithColor(color.White)
	text.Draw(screen, s.cfg.Prompt.Text, s.promptFace, op)
}

func (s *ThunderScene) drawHUD(screen *ebiten.Image) {
	settings := s.settings.GetSettings()
	sound := "on"
	if !settings.SoundEnabled {
		sound = "off"
	}
	hud := fmt.Sprintf("thickness %.0f  tint %s  sound %s",
		settings.Thickness, utils.FormatCSSHex(settings.Tint), sound)
	// 移动端没有键盘，不显示按键提示
	if !utils.IsMobile() {
		hud += "  [Up/Down T H M]"
	}
	ebitenutil.DebugPrintAt(screen, hud, config.HUDTextX, config.HUDTextY)
}

// Dispose 释放闪电
func (s *ThunderScene) Dispose() {
	s.bolt.Dispose()
	s.root.RemoveChildren()
}
