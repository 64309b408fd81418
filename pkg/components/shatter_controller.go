package components

// ShatterTarget 是可被击碎/复原的协作对象
//
// 控制器只调用这两个方法，不关心击碎效果的具体实现，也不检查任何返回值。
type ShatterTarget interface {
	Shatter()
	Reset()
}

// ShatterControllerComponent 击碎状态控制组件
//
// 两个状态：Intact（Shattered=false）与 Shattered（Shattered=true），初始为 Intact。
// Target 在创建时直接注入，ShatterControlSystem 每帧据此驱动状态转换。
type ShatterControllerComponent struct {
	Target    ShatterTarget
	Shattered bool
}

// StateName 返回当前状态名（用于日志和调试显示）
func (c *ShatterControllerComponent) StateName() string {
	if c.Shattered {
		return "Shattered"
	}
	return "Intact"
}
