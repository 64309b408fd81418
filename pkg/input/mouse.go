package input

import (
	"fmt"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// ParseMouseButton 将配置中的按键名转换为 ebiten.MouseButton
//
// 支持 "left"、"right"、"middle"（不区分大小写）。
func ParseMouseButton(name string) (ebiten.MouseButton, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "left":
		return ebiten.MouseButtonLeft, nil
	case "right":
		return ebiten.MouseButtonRight, nil
	case "middle":
		return ebiten.MouseButtonMiddle, nil
	default:
		return 0, fmt.Errorf("unknown mouse button %q", name)
	}
}

// MouseSource 基于 Ebitengine 的鼠标/触摸输入源
//
// 主键：配置的鼠标键刚按下，或单指新触摸（移动设备）。
// 副键：配置的鼠标键刚按下，或双指触摸中新按下的手指。
// inpututil 本身就是按帧的边沿检测，按住不放不会重复触发。
type MouseSource struct {
	primaryButton   ebiten.MouseButton
	secondaryButton ebiten.MouseButton

	primary   bool
	secondary bool
}

// NewMouseSource 创建鼠标输入源
func NewMouseSource(primary, secondary ebiten.MouseButton) *MouseSource {
	return &MouseSource{
		primaryButton:   primary,
		secondaryButton: secondary,
	}
}

// Poll 采样本帧鼠标和触摸状态
func (m *MouseSource) Poll() {
	m.primary = inpututil.IsMouseButtonJustPressed(m.primaryButton)
	m.secondary = inpututil.IsMouseButtonJustPressed(m.secondaryButton)

	if len(inpututil.AppendJustPressedTouchIDs(nil)) == 0 {
		return
	}
	if len(ebiten.AppendTouchIDs(nil)) >= 2 {
		m.secondary = true
	} else {
		m.primary = true
	}
}

// PrimaryJustPressed 实现 Source
func (m *MouseSource) PrimaryJustPressed() bool { return m.primary }

// SecondaryJustPressed 实现 Source
func (m *MouseSource) SecondaryJustPressed() bool { return m.secondary }

// NewKeyboardSource 创建键盘输入源：Space 为主键，R 为副键
func NewKeyboardSource() *LevelSource {
	return NewLevelSource(
		func() bool { return ebiten.IsKeyPressed(ebiten.KeySpace) },
		func() bool { return ebiten.IsKeyPressed(ebiten.KeyR) },
	)
}

// PointerPosition 返回当前指针位置（优先触摸，其次鼠标）
func PointerPosition() (float64, float64) {
	if touchIDs := ebiten.AppendTouchIDs(nil); len(touchIDs) > 0 {
		x, y := ebiten.TouchPosition(touchIDs[0])
		return float64(x), float64(y)
	}
	x, y := ebiten.CursorPosition()
	return float64(x), float64(y)
}
