// Package app 提供应用的核心包装器
//
// 该包将初始化逻辑从 main 包提取出来：加载配置、创建音频上下文、
// 准备贴图和雷声，然后把 ThunderScene 交给场景管理器。
package app

import (
	"fmt"
	"image/color"
	"io"
	"log"
	"time"

	"github.com/decker502/thunder/pkg/config"
	"github.com/decker502/thunder/pkg/game"
	"github.com/decker502/thunder/pkg/scenes"
	"github.com/decker502/thunder/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Config 定义应用启动配置
type Config struct {
	// Verbose 启用详细日志输出
	Verbose bool
	// ConfigPath 配置文件路径，为空使用 data/thunder.yaml
	ConfigPath string
	// Seed 随机种子，0 表示使用当前时间
	Seed int64
	// Preloaded 非空时直接使用，不读取配置文件（移动端没有磁盘上的 data/）
	Preloaded *config.ThunderConfig
}

// App 是应用的核心包装器，实现 ebiten.Game 接口
type App struct {
	sceneManager             *game.SceneManager
	thunderConfig            *config.ThunderConfig
	verbose                  bool
	pendingWindowSizeReset   bool // 延迟设置窗口大小标志
	windowSizeResetCountdown int  // 延迟帧数
}

// NewApp 创建并初始化应用
//
// 调用此函数前，必须先调用 embedded.Init() 初始化嵌入资源。
func NewApp(cfg Config) (*App, error) {
	// 配置日志输出
	if !cfg.Verbose {
		log.SetOutput(io.Discard)
		log.SetFlags(0)
	}

	thunderConfig, err := loadConfig(cfg)
	if err != nil {
		return nil, err
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	log.Printf("[App] Random seed: %d", seed)
	src := utils.NewRandomSource(seed)

	// 初始化音频上下文
	audioContext := audio.NewContext(48000)

	// 创建资源管理器
	resourceManager := game.NewResourceManager(audioContext)

	textures, err := resourceManager.LoadTextures(thunderConfig.Assets)
	if err != nil {
		return nil, fmt.Errorf("贴图加载失败: %w", err)
	}

	settingsManager := game.NewSettingsManager(thunderConfig)
	audioManager := game.NewAudioManager(resourceManager, settingsManager)
	if err := audioManager.LoadClips(thunderConfig.Sounds.Clips, seed); err != nil {
		return nil, fmt.Errorf("雷声加载失败: %w", err)
	}
	log.Printf("[App] AudioManager initialized")

	scene, err := scenes.NewThunderScene(thunderConfig, textures, settingsManager, audioManager, src)
	if err != nil {
		return nil, fmt.Errorf("场景创建失败: %w", err)
	}

	sceneManager := game.NewSceneManager()
	sceneManager.SwitchTo(scene)

	return &App{
		sceneManager:  sceneManager,
		thunderConfig: thunderConfig,
		verbose:       cfg.Verbose,
	}, nil
}

func loadConfig(cfg Config) (*config.ThunderConfig, error) {
	if cfg.Preloaded != nil {
		if err := cfg.Preloaded.Validate(); err != nil {
			return nil, fmt.Errorf("配置无效: %w", err)
		}
		return cfg.Preloaded, nil
	}

	configPath := cfg.ConfigPath
	if configPath == "" {
		configPath = config.DefaultConfigPath
	}
	thunderConfig, err := config.LoadThunderConfig(configPath)
	if err != nil {
		return nil, fmt.Errorf("配置加载失败: %w", err)
	}
	return thunderConfig, nil
}

// Update 更新逻辑
// 每个 tick 调用一次（通常每秒 60 次）
func (a *App) Update() error {
	// 延迟设置窗口大小（退出全屏后需要等待几帧才能正确设置）
	if a.pendingWindowSizeReset {
		a.windowSizeResetCountdown--
		if a.windowSizeResetCountdown <= 0 {
			ebiten.SetWindowSize(a.screenSize())
			log.Printf("[App] Delayed SetWindowSize(%d, %d)", a.thunderConfig.Screen.Width, a.thunderConfig.Screen.Height)
			a.pendingWindowSizeReset = false
		}
	}

	// F11 切换全屏
	if inpututil.IsKeyJustPressed(ebiten.KeyF11) {
		if ebiten.IsFullscreen() {
			ebiten.SetFullscreen(false)
			if ebiten.IsWindowMaximized() || ebiten.IsWindowMinimized() {
				ebiten.RestoreWindow()
			}
			a.pendingWindowSizeReset = true
			a.windowSizeResetCountdown = 3
			log.Printf("[App] Exit fullscreen, will reset window size in 3 frames")
		} else {
			ebiten.SetFullscreen(true)
		}
	}

	deltaTime := 1.0 / 60.0
	a.sceneManager.Update(deltaTime)
	return nil
}

// Draw 绘制画面
func (a *App) Draw(screen *ebiten.Image) {
	a.sceneManager.Draw(screen)
}

// DrawFinalScreen 实现 FinalScreenDrawer 接口
// 全屏时两侧填充黑色，画面用线性滤波缩放
func (a *App) DrawFinalScreen(screen ebiten.FinalScreen, offscreen *ebiten.Image, geoM ebiten.GeoM) {
	screen.Fill(color.Black)
	op := &ebiten.DrawImageOptions{}
	op.GeoM = geoM
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(offscreen, op)
}

// Layout 返回逻辑画布尺寸
// 此尺寸独立于实际窗口大小，Ebitengine 会自动处理缩放
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	return a.screenSize()
}

func (a *App) screenSize() (int, int) {
	return a.thunderConfig.Screen.Width, a.thunderConfig.Screen.Height
}

// ThunderConfig 返回已加载的配置
func (a *App) ThunderConfig() *config.ThunderConfig {
	return a.thunderConfig
}

// GetSceneManager 返回场景管理器
func (a *App) GetSceneManager() *game.SceneManager {
	return a.sceneManager
}

// IsVerbose 返回是否启用了详细日志
func (a *App) IsVerbose() bool {
	return a.verbose
}
