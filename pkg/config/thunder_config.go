package config

import (
	"fmt"
	"log"
	"os"

	"github.com/decker502/thunder/pkg/effects"
	"github.com/decker502/thunder/pkg/embedded"
	"github.com/decker502/thunder/pkg/utils"
	"gopkg.in/yaml.v3"
)

// DefaultConfigPath 默认配置文件位置
const DefaultConfigPath = "data/thunder.yaml"

// ThunderConfig 应用配置
//
// 配置文件位置: data/thunder.yaml
type ThunderConfig struct {
	Screen ScreenConfig       `yaml:"screen"`
	Bolt   BoltSection        `yaml:"bolt"`
	Tints  []string           `yaml:"tints"` // CSS 颜色（#RRGGBB），按 T 键轮换
	Sounds SoundsConfig       `yaml:"sounds"`
	Prompt PromptConfig       `yaml:"prompt"`
	Assets TextureAssetConfig `yaml:"textures"`
}

// ScreenConfig 窗口配置
type ScreenConfig struct {
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Title  string `yaml:"title"`
}

// BoltSection 闪电参数，内联生成参数并附加默认粗细
type BoltSection struct {
	effects.BoltConfig `yaml:",inline"`

	// Thickness 初始线段粗细
	Thickness float64 `yaml:"thickness"`
}

// SoundsConfig 雷声配置
type SoundsConfig struct {
	Enabled bool       `yaml:"enabled"`
	Volume  float64    `yaml:"volume"`
	Clips   []SoundRef `yaml:"clips"`
}

// SoundRef 单个音效
// Path 为空或文件不存在时使用程序合成的雷声
type SoundRef struct {
	ID   string `yaml:"id"`
	Path string `yaml:"path"`
}

// PromptConfig 屏幕提示文字
type PromptConfig struct {
	Text string  `yaml:"text"`
	Y    float64 `yaml:"y"`
	Size float64 `yaml:"size"`
}

// TextureAssetConfig 可选的贴图文件，留空使用程序生成的贴图
type TextureAssetConfig struct {
	Cap     string `yaml:"cap"`
	Segment string `yaml:"segment"`
}

// DefaultThunderConfig 返回内置默认配置
func DefaultThunderConfig() *ThunderConfig {
	return &ThunderConfig{
		Screen: ScreenConfig{Width: GameWindowWidth, Height: GameWindowHeight, Title: "Thunder"},
		Bolt: BoltSection{
			BoltConfig: effects.DefaultBoltConfig(),
			Thickness:  1,
		},
		Tints: []string{"#FFFFFF"},
		Sounds: SoundsConfig{
			Enabled: true,
			Volume:  0.5,
			Clips: []SoundRef{
				{ID: "Thunder1"},
				{ID: "Thunder2"},
				{ID: "Thunder3"},
			},
		},
		Prompt: PromptConfig{Text: "Tap for thunder ...", Y: 240, Size: 28},
	}
}

// LoadThunderConfig 加载应用配置
//
// 优先从嵌入资源读取，其次读取磁盘文件。缺省字段保持默认值。
//
// 参数:
//   - path: 配置文件路径（如 "data/thunder.yaml"）
//
// 返回:
//   - *ThunderConfig: 加载成功后的配置结构
//   - error: 读取、解析或校验失败
func LoadThunderConfig(path string) (*ThunderConfig, error) {
	data, err := readConfigFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read thunder config: %w", err)
	}

	cfg, err := ParseThunderConfig(data)
	if err != nil {
		return nil, err
	}

	log.Printf("[Config] 加载配置: %s (sway=%.0f, fadeRate=%.2f, %d tints, %d clips)",
		path, cfg.Bolt.Sway, cfg.Bolt.FadeRate, len(cfg.Tints), len(cfg.Sounds.Clips))
	return cfg, nil
}

// ParseThunderConfig 解析 YAML 内容并校验
func ParseThunderConfig(data []byte) (*ThunderConfig, error) {
	cfg := DefaultThunderConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse thunder config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid thunder config: %w", err)
	}
	return cfg, nil
}

func readConfigFile(path string) ([]byte, error) {
	if embedded.IsInitialized() && embedded.Exists(path) {
		return embedded.ReadFile(path)
	}
	return os.ReadFile(path)
}

// Validate 验证配置有效性
func (c *ThunderConfig) Validate() error {
	if c.Screen.Width <= 0 || c.Screen.Height <= 0 {
		return fmt.Errorf("screen size must be positive, got %dx%d", c.Screen.Width, c.Screen.Height)
	}

	if err := c.Bolt.BoltConfig.Validate(); err != nil {
		return fmt.Errorf("bolt: %w", err)
	}
	if c.Bolt.Thickness < MinThickness || c.Bolt.Thickness > MaxThickness {
		return fmt.Errorf("bolt thickness must be in [%v, %v], got %v", MinThickness, MaxThickness, c.Bolt.Thickness)
	}

	if len(c.Tints) == 0 {
		return fmt.Errorf("at least one tint is required")
	}
	for i, tint := range c.Tints {
		if _, err := utils.ParseCSSHex(tint); err != nil {
			return fmt.Errorf("tint %d: %w", i, err)
		}
	}

	if c.Sounds.Volume < 0 || c.Sounds.Volume > 1 {
		return fmt.Errorf("sound volume must be in [0, 1], got %v", c.Sounds.Volume)
	}
	seen := make(map[string]bool, len(c.Sounds.Clips))
	for _, clip := range c.Sounds.Clips {
		if clip.ID == "" {
			return fmt.Errorf("sound clip id is required")
		}
		if seen[clip.ID] {
			return fmt.Errorf("duplicate sound clip id %q", clip.ID)
		}
		seen[clip.ID] = true
	}

	return nil
}

// TintValues 将配置中的 CSS 颜色转换为 0xRRGGBB
func (c *ThunderConfig) TintValues() []uint32 {
	values := make([]uint32, 0, len(c.Tints))
	for _, tint := range c.Tints {
		v, err := utils.ParseCSSHex(tint)
		if err != nil {
			continue
		}
		values = append(values, utils.MinTint(v))
	}
	return values
}

// ClipIDs 所有雷声的 ID
func (c *ThunderConfig) ClipIDs() []string {
	ids := make([]string, 0, len(c.Sounds.Clips))
	for _, clip := range c.Sounds.Clips {
		ids = append(ids, clip.ID)
	}
	return ids
}
