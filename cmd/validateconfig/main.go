// validateconfig 检查闪电配置文件
//
// 用法:
//
//	go run ./cmd/validateconfig data/thunder.yaml
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/decker502/thunder/pkg/config"
)

func main() {
	path := config.DefaultConfigPath
	if len(os.Args) > 1 {
		path = os.Args[1]
	}
	if !report(os.Stdout, path) {
		os.Exit(1)
	}
}

// report 输出检查结果，配置无效时返回 false
func report(w io.Writer, path string) bool {
	cfg, err := config.LoadThunderConfig(path)
	if err != nil {
		fmt.Fprintf(w, "❌ %v\n", err)
		return false
	}

	fmt.Fprintf(w, "✅ YAML 格式正确: %s\n", path)
	fmt.Fprintf(w, "✅ 画布 %dx%d, sway=%.0f, jitterDivisor=%.0f, fadeRate=%.2f\n",
		cfg.Screen.Width, cfg.Screen.Height, cfg.Bolt.Sway, cfg.Bolt.JitterDivisor, cfg.Bolt.FadeRate)
	fmt.Fprintf(w, "✅ 染色数量: %d\n", len(cfg.Tints))

	for _, clip := range cfg.Sounds.Clips {
		if clip.Path == "" {
			fmt.Fprintf(w, "ℹ️  %s: 使用合成雷声\n", clip.ID)
			continue
		}
		if _, err := os.Stat(clip.Path); err != nil {
			fmt.Fprintf(w, "ℹ️  %s: %s 不存在，使用合成雷声\n", clip.ID, clip.Path)
			continue
		}
		fmt.Fprintf(w, "✅ %s: %s\n", clip.ID, clip.Path)
	}
	return true
}
