// Package main 是玻璃击碎演示的桌面端入口
//
// 用法:
//
//	go run . [flags]
//
// 参数:
//
//	--verbose         输出详细日志
//	--config <path>   击碎效果配置文件（YAML），默认使用内置配置
//	--demo            自动演示：按固定间隔击碎/复原
//
// 操作:
//
//	鼠标左键 / Space  击碎玻璃
//	鼠标右键 / R      复原玻璃
//	M                 开关音效
//	F11               切换全屏
package main

import (
	"flag"
	"log"

	"github.com/decker502/shatter/pkg/app"
	"github.com/hajimehoshi/ebiten/v2"
)

var (
	verbose    = flag.Bool("verbose", false, "显示详细调试信息")
	configPath = flag.String("config", "", "击碎效果配置文件路径")
	demo       = flag.Bool("demo", false, "自动演示模式")
)

func main() {
	flag.Parse()

	gameApp, err := app.NewApp(app.Config{
		Verbose:    *verbose,
		ConfigPath: *configPath,
		Demo:       *demo,
	})
	if err != nil {
		log.Fatalf("初始化失败: %v", err)
	}

	width, height := gameApp.WindowSize()
	ebiten.SetWindowSize(width, height)
	ebiten.SetWindowTitle("Shatter")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGame(gameApp); err != nil {
		log.Fatal(err)
	}
}
