// Package app 提供游戏应用的核心包装器
//
// 桌面端通过 main.go 调用 NewApp()，移动端通过 mobile/mobile.go 调用。
package app

import (
	"fmt"
	"image/color"
	"io"
	"log"
	"time"

	"github.com/decker502/shatter/pkg/config"
	"github.com/decker502/shatter/pkg/game"
	"github.com/decker502/shatter/pkg/input"
	"github.com/decker502/shatter/pkg/scenes"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// 应用常量
const (
	// AppName gdata 存储使用的应用名
	AppName = "shatter"
	// SampleRate 音频采样率
	SampleRate = 48000
	// crackDuration 碎裂音效时长
	crackDuration = 600 * time.Millisecond
)

// Config 定义应用启动配置
type Config struct {
	// Verbose 启用详细日志输出
	Verbose bool
	// ConfigPath 击碎效果配置文件路径，为空则使用默认配置
	ConfigPath string
	// Demo 自动演示模式：按固定间隔自动击碎/复原，忽略鼠标
	Demo bool
}

// App 是游戏应用的核心包装器，实现 ebiten.Game 接口
type App struct {
	sceneManager    *game.SceneManager
	settingsManager *game.SettingsManager
	effectConfig    *config.EffectConfig
	verbose         bool
}

// NewApp 创建并初始化游戏应用
func NewApp(cfg Config) (*App, error) {
	if !cfg.Verbose {
		log.SetOutput(io.Discard)
		log.SetFlags(0)
	}

	effectConfig, err := config.LoadEffectConfig(cfg.ConfigPath)
	if err != nil {
		return nil, fmt.Errorf("击碎效果配置加载失败: %w", err)
	}
	log.Printf("[App] 配置: %dx%d 窗口, %d 块碎片", effectConfig.Window.Width, effectConfig.Window.Height, effectConfig.ShardCount())

	// 存储打开失败时以降级模式运行（设置不持久化）
	storage, err := game.OpenStorage(AppName)
	if err != nil {
		log.Printf("[App] Warning: %v (settings will not persist)", err)
	}
	settingsManager := game.NewSettingsManager(storage)

	audioContext := audio.NewContext(SampleRate)
	audioManager := game.NewAudioManager(audioContext, settingsManager)
	audioManager.RegisterSound(game.SoundShatter, game.SynthesizeCrack(SampleRate, crackDuration, time.Now().UnixNano()))
	log.Printf("[App] AudioManager initialized")

	src, err := newInputSource(cfg.Demo, effectConfig)
	if err != nil {
		return nil, err
	}

	opts := scenes.ShatterSceneOptions{
		Config: effectConfig,
		Input:  src,
		Sound:  audioManager,
		Seed:   time.Now().UnixNano(),
	}
	if !cfg.Demo {
		opts.Origin = input.PointerPosition
	}

	scene, err := scenes.NewShatterScene(opts)
	if err != nil {
		return nil, fmt.Errorf("场景创建失败: %w", err)
	}

	sceneManager := game.NewSceneManager()
	sceneManager.SwitchTo(scene)

	if settingsManager.GetSettings().Fullscreen {
		ebiten.SetFullscreen(true)
	}

	return &App{
		sceneManager:    sceneManager,
		settingsManager: settingsManager,
		effectConfig:    effectConfig,
		verbose:         cfg.Verbose,
	}, nil
}

// newInputSource 根据模式选择输入源
func newInputSource(demo bool, cfg *config.EffectConfig) (input.Source, error) {
	if demo {
		log.Printf("[App] Demo mode: toggling every %d ticks", cfg.Demo.Interval)
		return input.DemoScript(cfg.Demo.Interval), nil
	}

	primary, err := input.ParseMouseButton(cfg.Controls.Primary)
	if err != nil {
		return nil, fmt.Errorf("invalid primary control: %w", err)
	}
	secondary, err := input.ParseMouseButton(cfg.Controls.Secondary)
	if err != nil {
		return nil, fmt.Errorf("invalid secondary control: %w", err)
	}

	return input.AnySource{
		input.NewMouseSource(primary, secondary),
		input.NewKeyboardSource(),
	}, nil
}

// Update 更新游戏逻辑
// 每个 tick 调用一次（通常每秒 60 次）
func (a *App) Update() error {
	// F11 切换全屏
	if inpututil.IsKeyJustPressed(ebiten.KeyF11) {
		fullscreen := !ebiten.IsFullscreen()
		ebiten.SetFullscreen(fullscreen)
		a.settingsManager.SetFullscreen(fullscreen)
		a.saveSettings()
	}

	// M 切换音效
	if inpututil.IsKeyJustPressed(ebiten.KeyM) {
		enabled := a.settingsManager.ToggleSound()
		log.Printf("[App] Sound enabled: %v", enabled)
		a.saveSettings()
	}

	a.sceneManager.Update(1.0 / float64(ebiten.TPS()))
	return nil
}

func (a *App) saveSettings() {
	if err := a.settingsManager.Save(); err != nil {
		log.Printf("[App] Warning: %v", err)
	}
}

// Draw 绘制游戏画面
func (a *App) Draw(screen *ebiten.Image) {
	a.sceneManager.Draw(screen)
}

// DrawFinalScreen 实现 FinalScreenDrawer 接口
// 全屏时以黑色填充 letterbox，并使用线性滤波缩放
func (a *App) DrawFinalScreen(screen ebiten.FinalScreen, offscreen *ebiten.Image, geoM ebiten.GeoM) {
	screen.Fill(color.Black)
	op := &ebiten.DrawImageOptions{}
	op.GeoM = geoM
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(offscreen, op)
}

// Layout 返回逻辑屏幕尺寸（由配置决定）
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	return a.effectConfig.Window.Width, a.effectConfig.Window.Height
}

// WindowSize 返回配置的窗口尺寸
func (a *App) WindowSize() (int, int) {
	return a.effectConfig.Window.Width, a.effectConfig.Window.Height
}

// IsVerbose 返回是否启用了详细日志
func (a *App) IsVerbose() bool {
	return a.verbose
}
