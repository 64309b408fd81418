// Package input 提供按帧采样的点击边沿信号
//
// 所有 Source 的语义一致：每帧调用一次 Poll，随后 PrimaryJustPressed /
// SecondaryJustPressed 只在按键"刚按下"的那一帧返回 true，按住不放不会重复触发。
package input

// Source 每帧提供主/副按键的按下边沿
type Source interface {
	// Poll 采样本帧输入，每帧调用一次
	Poll()
	// PrimaryJustPressed 主按键（默认鼠标左键）本帧是否刚按下
	PrimaryJustPressed() bool
	// SecondaryJustPressed 副按键（默认鼠标右键）本帧是否刚按下
	SecondaryJustPressed() bool
}

// EdgeDetector 将电平信号（是否按住）转换为按下边沿
type EdgeDetector struct {
	wasDown bool
}

// Update 输入本帧电平，仅在由松开变为按下的那一帧返回 true
func (d *EdgeDetector) Update(down bool) bool {
	edge := down && !d.wasDown
	d.wasDown = down
	return edge
}

// IsDown 返回上一次 Update 时的电平
func (d *EdgeDetector) IsDown() bool {
	return d.wasDown
}

// LevelSource 由两个电平函数构造的 Source
//
// 用于键盘等只能查询"是否按住"的输入。
type LevelSource struct {
	primaryDown   func() bool
	secondaryDown func() bool

	primary   EdgeDetector
	secondary EdgeDetector

	primaryEdge   bool
	secondaryEdge bool
}

// NewLevelSource 创建电平输入源，nil 函数视为永远未按下
func NewLevelSource(primaryDown, secondaryDown func() bool) *LevelSource {
	return &LevelSource{
		primaryDown:   primaryDown,
		secondaryDown: secondaryDown,
	}
}

// Poll 采样两个电平并计算边沿
func (s *LevelSource) Poll() {
	s.primaryEdge = s.primary.Update(sample(s.primaryDown))
	s.secondaryEdge = s.secondary.Update(sample(s.secondaryDown))
}

// PrimaryJustPressed 实现 Source
func (s *LevelSource) PrimaryJustPressed() bool { return s.primaryEdge }

// SecondaryJustPressed 实现 Source
func (s *LevelSource) SecondaryJustPressed() bool { return s.secondaryEdge }

func sample(f func() bool) bool {
	if f == nil {
		return false
	}
	return f()
}

// AnySource 合并多个输入源，任一源产生边沿即视为本帧按下
type AnySource []Source

// Poll 依次采样所有子输入源
func (a AnySource) Poll() {
	for _, s := range a {
		s.Poll()
	}
}

// PrimaryJustPressed 实现 Source
func (a AnySource) PrimaryJustPressed() bool {
	for _, s := range a {
		if s.PrimaryJustPressed() {
			return true
		}
	}
	return false
}

// SecondaryJustPressed 实现 Source
func (a AnySource) SecondaryJustPressed() bool {
	for _, s := range a {
		if s.SecondaryJustPressed() {
			return true
		}
	}
	return false
}
