package scenes

import (
	"fmt"
	"image/color"

	"github.com/decker502/shatter/pkg/components"
	"github.com/decker502/shatter/pkg/config"
	"github.com/decker502/shatter/pkg/ecs"
	"github.com/decker502/shatter/pkg/entities"
	"github.com/decker502/shatter/pkg/input"
	"github.com/decker502/shatter/pkg/systems"
	"github.com/hajimehoshi/ebiten/v2"
)

var backgroundColor = color.RGBA{R: 32, G: 36, B: 44, A: 255}

// ShatterSceneOptions 场景构建参数
type ShatterSceneOptions struct {
	Config *config.EffectConfig
	Input  input.Source
	// Sound 音效播放器，可为 nil
	Sound entities.SoundPlayer
	// Origin 冲击点来源，nil 时使用玻璃板中心
	Origin entities.OriginFunc
	// Seed 碎片随机数种子
	Seed int64
}

// ShatterScene 玻璃击碎场景
//
// 系统更新顺序：
//  1. ShatterControlSystem - 采样输入并驱动 Intact/Shattered 转换
//  2. ShardPhysicsSystem   - 推进碎片运动
//  3. 清理本帧标记删除的实体（复原时销毁的碎片）
type ShatterScene struct {
	entityManager *ecs.EntityManager
	pane          *entities.Pane

	controlSystem *systems.ShatterControlSystem
	physicsSystem *systems.ShardPhysicsSystem
	renderSystem  *systems.ShatterRenderSystem
}

// NewShatterScene 创建击碎场景
func NewShatterScene(opts ShatterSceneOptions) (*ShatterScene, error) {
	if opts.Config == nil {
		return nil, fmt.Errorf("effect config cannot be nil")
	}
	if opts.Input == nil {
		return nil, fmt.Errorf("input source cannot be nil")
	}

	em := ecs.NewEntityManager()

	pane, err := entities.NewShatterablePane(em, opts.Config, opts.Sound, opts.Seed)
	if err != nil {
		return nil, fmt.Errorf("failed to create pane: %w", err)
	}
	if opts.Origin != nil {
		pane.SetOrigin(opts.Origin)
	}

	return &ShatterScene{
		entityManager: em,
		pane:          pane,
		controlSystem: systems.NewShatterControlSystem(em, opts.Input),
		physicsSystem: systems.NewShardPhysicsSystem(em, opts.Config),
		renderSystem:  systems.NewShatterRenderSystem(em),
	}, nil
}

// Update 更新场景
func (s *ShatterScene) Update(deltaTime float64) {
	s.controlSystem.Update(deltaTime)
	s.physicsSystem.Update(deltaTime)
	s.entityManager.RemoveMarkedEntities()
}

// Draw 绘制场景
func (s *ShatterScene) Draw(screen *ebiten.Image) {
	screen.Fill(backgroundColor)
	s.renderSystem.Draw(screen)
}

// IsShattered 返回玻璃板控制器当前状态
func (s *ShatterScene) IsShattered() bool {
	ctrl, ok := ecs.GetComponent[*components.ShatterControllerComponent](s.entityManager, s.pane.EntityID())
	return ok && ctrl.Shattered
}

// Pane 返回场景中的玻璃板
func (s *ShatterScene) Pane() *entities.Pane {
	return s.pane
}

// EntityManager 返回场景的实体管理器
func (s *ShatterScene) EntityManager() *ecs.EntityManager {
	return s.entityManager
}
