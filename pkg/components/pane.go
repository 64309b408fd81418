package components

import "image/color"

// PaneComponent 描述一块完整的玻璃板
//
// 位置由同一实体上的 PositionComponent 给出（左上角）。
type PaneComponent struct {
	Width  float64
	Height float64
	Color  color.RGBA
	// Visible 击碎后为 false，复原后为 true
	Visible bool
}

// ShardComponent 表示玻璃板击碎后的单块碎片
//
// 位置由 PositionComponent 给出（碎片中心）。
type ShardComponent struct {
	Width  float64
	Height float64

	VelocityX float64 // 像素/秒
	VelocityY float64 // 像素/秒

	Rotation      float64 // 角度
	RotationSpeed float64 // 角度/秒

	Color color.RGBA

	// Resting 碎片落地并停止后为 true，物理系统不再更新
	Resting bool
}
