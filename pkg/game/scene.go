package game

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// Scene 一个游戏场景
// 每个场景有自己的更新和绘制逻辑
type Scene interface {
	// Update 按帧更新场景逻辑，deltaTime 为距上一帧的秒数
	Update(deltaTime float64)

	// Draw 将场景绘制到 screen
	Draw(screen *ebiten.Image)
}
