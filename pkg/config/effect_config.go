package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// 碎片网格的行列上限
const MaxShardGrid = 64

// EffectConfig 击碎效果配置
//
// 配置文件为 YAML，缺省字段保留 DefaultEffectConfig 中的默认值。
type EffectConfig struct {
	Window   WindowConfig   `yaml:"window"`
	Pane     PaneConfig     `yaml:"pane"`
	Shards   ShardConfig    `yaml:"shards"`
	FloorY   float64        `yaml:"floorY"`
	Controls ControlsConfig `yaml:"controls"`
	Demo     DemoConfig     `yaml:"demo"`
}

// WindowConfig 窗口逻辑尺寸
type WindowConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// PaneConfig 玻璃板位置与尺寸（左上角坐标）
type PaneConfig struct {
	X      float64 `yaml:"x"`
	Y      float64 `yaml:"y"`
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// ShardConfig 碎片参数
type ShardConfig struct {
	Rows     int     `yaml:"rows"`
	Cols     int     `yaml:"cols"`
	Speed    float64 `yaml:"speed"`    // 初始飞散速度（像素/秒）
	Spin     float64 `yaml:"spin"`     // 最大旋转速度（角度/秒）
	Gravity  float64 `yaml:"gravity"`  // 重力加速度（像素/秒²）
	Friction float64 `yaml:"friction"` // 落地时水平速度保留比例 [0,1]
}

// ControlsConfig 鼠标按键绑定
type ControlsConfig struct {
	Primary   string `yaml:"primary"`
	Secondary string `yaml:"secondary"`
}

// DemoConfig 自动演示模式参数
type DemoConfig struct {
	// Interval 每次击碎/复原之间间隔的帧数
	Interval int `yaml:"interval"`
}

// DefaultEffectConfig 返回默认配置
func DefaultEffectConfig() *EffectConfig {
	return &EffectConfig{
		Window: WindowConfig{Width: 800, Height: 600},
		Pane:   PaneConfig{X: 250, Y: 120, Width: 300, Height: 240},
		Shards: ShardConfig{
			Rows:     6,
			Cols:     8,
			Speed:    260,
			Spin:     360,
			Gravity:  900,
			Friction: 0.8,
		},
		FloorY:   560,
		Controls: ControlsConfig{Primary: "left", Secondary: "right"},
		Demo:     DemoConfig{Interval: 90},
	}
}

// LoadEffectConfig 加载击碎效果配置
//
// path 为空时直接返回默认配置。
//
// 参数:
//   - path: 配置文件路径（如 "data/shatter.yaml"）
//
// 返回:
//   - *EffectConfig: 加载并验证后的配置
//   - error: 读取、解析或验证失败时返回错误
func LoadEffectConfig(path string) (*EffectConfig, error) {
	cfg := DefaultEffectConfig()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read effect config: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse effect config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid effect config: %w", err)
	}

	return cfg, nil
}

var knownButtons = map[string]bool{"left": true, "right": true, "middle": true}

// Validate 验证配置有效性
//
// 检查：
//   - 窗口与玻璃板尺寸为正
//   - 碎片行列在 1..MaxShardGrid 之间
//   - 速度、重力非负，摩擦系数在 [0,1]
//   - 主副按键为已知名称且互不相同
func (c *EffectConfig) Validate() error {
	var errs []error

	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		errs = append(errs, fmt.Errorf("window size must be positive: %dx%d", c.Window.Width, c.Window.Height))
	}
	if c.Pane.Width <= 0 || c.Pane.Height <= 0 {
		errs = append(errs, fmt.Errorf("pane size must be positive: %.1fx%.1f", c.Pane.Width, c.Pane.Height))
	}
	if c.Shards.Rows < 1 || c.Shards.Rows > MaxShardGrid {
		errs = append(errs, fmt.Errorf("shards.rows out of range [1,%d]: %d", MaxShardGrid, c.Shards.Rows))
	}
	if c.Shards.Cols < 1 || c.Shards.Cols > MaxShardGrid {
		errs = append(errs, fmt.Errorf("shards.cols out of range [1,%d]: %d", MaxShardGrid, c.Shards.Cols))
	}
	if c.Shards.Speed < 0 || c.Shards.Spin < 0 || c.Shards.Gravity < 0 {
		errs = append(errs, errors.New("shards speed, spin and gravity must not be negative"))
	}
	if c.Shards.Friction < 0 || c.Shards.Friction > 1 {
		errs = append(errs, fmt.Errorf("shards.friction out of range [0,1]: %.2f", c.Shards.Friction))
	}
	if c.Demo.Interval < 1 {
		errs = append(errs, fmt.Errorf("demo.interval must be at least 1: %d", c.Demo.Interval))
	}

	primary := strings.ToLower(strings.TrimSpace(c.Controls.Primary))
	secondary := strings.ToLower(strings.TrimSpace(c.Controls.Secondary))
	if !knownButtons[primary] {
		errs = append(errs, fmt.Errorf("unknown primary button %q", c.Controls.Primary))
	}
	if !knownButtons[secondary] {
		errs = append(errs, fmt.Errorf("unknown secondary button %q", c.Controls.Secondary))
	}
	if primary == secondary {
		errs = append(errs, fmt.Errorf("primary and secondary buttons must differ: %q", primary))
	}

	return errors.Join(errs...)
}

// ShardCount 返回一次击碎生成的碎片数量
func (c *EffectConfig) ShardCount() int {
	return c.Shards.Rows * c.Shards.Cols
}
