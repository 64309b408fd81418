package components

// PositionComponent 存储实体的世界坐标(像素)
type PositionComponent struct {
	X float64
	Y float64
}
