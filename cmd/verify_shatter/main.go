// Package main 无窗口地回放一段输入脚本，逐帧打印击碎状态
//
// 用法:
//
//	go run ./cmd/verify_shatter [flags]
//
// 参数:
//
//	--script <frames>  逗号分隔的输入脚本（"-" 无输入，"p" 左键，"s" 右键，"ps" 同时）
//	--extra <n>        脚本结束后额外运行的空帧数
//	--config <path>    击碎效果配置文件
//	--verbose          输出系统日志
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/decker502/shatter/pkg/components"
	"github.com/decker502/shatter/pkg/config"
	"github.com/decker502/shatter/pkg/ecs"
	"github.com/decker502/shatter/pkg/input"
	"github.com/decker502/shatter/pkg/scenes"
)

var (
	script     = flag.String("script", "-,p,p,s", "输入脚本")
	extra      = flag.Int("extra", 0, "脚本结束后额外运行的空帧数")
	configPath = flag.String("config", "", "击碎效果配置文件路径")
	verbose    = flag.Bool("verbose", false, "显示详细调试信息")
)

// soundCounter 统计音效播放次数
type soundCounter struct {
	count int
}

func (s *soundCounter) PlaySound(soundID string) bool {
	s.count++
	return true
}

func main() {
	flag.Parse()
	if !*verbose {
		log.SetOutput(io.Discard)
	}

	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "FAIL: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.LoadEffectConfig(*configPath)
	if err != nil {
		return err
	}

	frames, err := input.ParseScript(*script)
	if err != nil {
		return err
	}

	sounds := &soundCounter{}
	scene, err := scenes.NewShatterScene(scenes.ShatterSceneOptions{
		Config: cfg,
		Input:  input.NewScriptedSource(false, frames...),
		Sound:  sounds,
		Seed:   1,
	})
	if err != nil {
		return err
	}

	total := len(frames) + *extra
	fmt.Printf("%-6s %-12s %-10s %s\n", "tick", "input", "state", "shards")
	for i := 0; i < total; i++ {
		scene.Update(1.0 / 60.0)

		label := "-"
		if i < len(frames) {
			label = frameLabel(frames[i])
		}
		state := "Intact"
		if scene.IsShattered() {
			state = "Shattered"
		}
		shards := len(ecs.GetEntitiesWith1[*components.ShardComponent](scene.EntityManager()))
		fmt.Printf("%-6d %-12s %-10s %d\n", i+1, label, state, shards)
	}

	fmt.Printf("\nshatter sounds: %d\n", sounds.count)
	return nil
}

func frameLabel(f input.Frame) string {
	switch {
	case f.Primary && f.Secondary:
		return "primary+sec"
	case f.Primary:
		return "primary"
	case f.Secondary:
		return "secondary"
	default:
		return "-"
	}
}
