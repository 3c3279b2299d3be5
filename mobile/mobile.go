//go:build mobile

// Package mobile 提供 ebitenmobile 绑定入口
//
// 此文件仅在使用 -tags mobile 构建时编译。移动端不嵌入 data/，
// 使用内置默认配置，贴图和雷声都由程序生成。
//
//	# Android
//	ebitenmobile bind -target android -tags mobile -androidapi 23 -javapkg com.decker.thunder -o build/android/thunder.aar -v ./mobile
//
//	# iOS (仅 macOS)
//	ebitenmobile bind -target ios -tags mobile -o build/ios/Thunder.xcframework -v ./mobile
package mobile

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2/mobile"

	"github.com/decker502/thunder/pkg/app"
	"github.com/decker502/thunder/pkg/config"
)

func init() {
	cfg := app.Config{
		Verbose:   true, // Enable verbose logging for debugging
		Preloaded: config.DefaultThunderConfig(),
	}

	thunderApp, err := app.NewApp(cfg)
	if err != nil {
		log.Fatalf("初始化失败: %v", err)
	}

	// 注册到 ebitenmobile
	mobile.SetGame(thunderApp)
}

// Dummy 是一个空导出函数，确保包被 ebitenmobile 正确识别
func Dummy() {}
