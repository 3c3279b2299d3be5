package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/decker502/thunder/pkg/app"
	"github.com/decker502/thunder/pkg/config"
	"github.com/decker502/thunder/pkg/embedded"
	"github.com/hajimehoshi/ebiten/v2"
)

var (
	configFlag  = flag.String("config", config.DefaultConfigPath, "Path to the YAML config (embedded data/ is checked first)")
	verboseFlag = flag.Bool("verbose", false, "Enable verbose logging (default off)")
	seedFlag    = flag.Int64("seed", 0, "Random seed, 0 uses the current time")
)

func main() {
	flag.Parse()

	// 初始化嵌入资源
	embedded.Init(dataFS)

	thunderApp, err := app.NewApp(app.Config{
		Verbose:    *verboseFlag,
		ConfigPath: *configFlag,
		Seed:       *seedFlag,
	})
	if err != nil {
		// 非 verbose 模式下 log 输出已被丢弃
		fmt.Fprintf(os.Stderr, "初始化失败: %v\n", err)
		os.Exit(1)
	}

	screen := thunderApp.ThunderConfig().Screen
	ebiten.SetWindowSize(screen.Width, screen.Height)
	ebiten.SetWindowTitle(screen.Title)

	// Start the loop
	// This will call Update() and Draw() repeatedly until the window is closed
	if err := ebiten.RunGame(thunderApp); err != nil {
		log.Fatal(err)
	}
}
