package entities

import (
	"fmt"
	"image/color"
	"log"
	"math"
	"math/rand"

	"github.com/decker502/shatter/pkg/components"
	"github.com/decker502/shatter/pkg/config"
	"github.com/decker502/shatter/pkg/ecs"
	"github.com/decker502/shatter/pkg/game"
)

// 玻璃默认颜色（预乘 alpha）
var paneColor = color.RGBA{R: 150, G: 185, B: 210, A: 210}

// SoundPlayer 播放音效的最小接口（由 game.AudioManager 实现）
type SoundPlayer interface {
	PlaySound(soundID string) bool
}

// OriginFunc 返回击碎的冲击点（世界坐标）
type OriginFunc func() (float64, float64)

// Pane 可击碎的玻璃板，实现 components.ShatterTarget
//
// Shatter 隐藏玻璃板并按 rows×cols 网格生成碎片实体；
// Reset 销毁所有碎片并重新显示玻璃板。
type Pane struct {
	entityManager *ecs.EntityManager
	entityID      ecs.EntityID
	cfg           *config.EffectConfig

	sound  SoundPlayer // 可为 nil
	origin OriginFunc  // 可为 nil，nil 时以玻璃板中心为冲击点
	rng    *rand.Rand

	shards    []ecs.EntityID
	shattered bool
}

// NewShatterablePane 创建玻璃板实体，并在同一实体上挂载 ShatterControllerComponent
//
// 控制组件的 Target 直接指向返回的 Pane，系统无需在运行时按类型查找。
//
// 参数:
//   - em: 实体管理器
//   - cfg: 击碎效果配置（玻璃板位置尺寸与碎片参数）
//   - sound: 音效播放器，可为 nil
//   - seed: 碎片随机数种子
//
// 返回:
//   - *Pane: 玻璃板协作对象
//   - error: 参数无效时返回错误
func NewShatterablePane(em *ecs.EntityManager, cfg *config.EffectConfig, sound SoundPlayer, seed int64) (*Pane, error) {
	if em == nil {
		return nil, fmt.Errorf("entity manager cannot be nil")
	}
	if cfg == nil {
		return nil, fmt.Errorf("effect config cannot be nil")
	}

	entityID := em.CreateEntity()

	ecs.AddComponent(em, entityID, &components.PositionComponent{
		X: cfg.Pane.X,
		Y: cfg.Pane.Y,
	})
	ecs.AddComponent(em, entityID, &components.PaneComponent{
		Width:   cfg.Pane.Width,
		Height:  cfg.Pane.Height,
		Color:   paneColor,
		Visible: true,
	})

	pane := &Pane{
		entityManager: em,
		entityID:      entityID,
		cfg:           cfg,
		sound:         sound,
		rng:           rand.New(rand.NewSource(seed)),
	}

	ecs.AddComponent(em, entityID, &components.ShatterControllerComponent{
		Target: pane,
	})

	log.Printf("[PaneFactory] 创建玻璃板实体 ID=%d (%.0fx%.0f @ %.0f,%.0f)",
		entityID, cfg.Pane.Width, cfg.Pane.Height, cfg.Pane.X, cfg.Pane.Y)

	return pane, nil
}

// SetOrigin 设置冲击点来源（通常为指针位置）
func (p *Pane) SetOrigin(origin OriginFunc) {
	p.origin = origin
}

// EntityID 返回玻璃板实体ID
func (p *Pane) EntityID() ecs.EntityID {
	return p.entityID
}

// Shards 返回当前存在的碎片实体ID
func (p *Pane) Shards() []ecs.EntityID {
	return p.shards
}

// IsShattered 玻璃板当前是否处于碎裂状态
func (p *Pane) IsShattered() bool {
	return p.shattered
}

// Shatter 击碎玻璃板
//
// 已经碎裂时再次调用不产生任何效果。
func (p *Pane) Shatter() {
	if p.shattered {
		return
	}

	pane, ok := ecs.GetComponent[*components.PaneComponent](p.entityManager, p.entityID)
	if !ok {
		log.Printf("[Pane] 警告: 实体 %d 缺少 PaneComponent", p.entityID)
		return
	}
	pos, ok := ecs.GetComponent[*components.PositionComponent](p.entityManager, p.entityID)
	if !ok {
		log.Printf("[Pane] 警告: 实体 %d 缺少 PositionComponent", p.entityID)
		return
	}

	ox, oy := pos.X+pane.Width/2, pos.Y+pane.Height/2
	if p.origin != nil {
		ox, oy = p.origin()
	}

	rows, cols := p.cfg.Shards.Rows, p.cfg.Shards.Cols
	cellW := pane.Width / float64(cols)
	cellH := pane.Height / float64(rows)

	p.shards = p.shards[:0]
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			cx := pos.X + (float64(c)+0.5)*cellW
			cy := pos.Y + (float64(r)+0.5)*cellH
			p.shards = append(p.shards, p.spawnShard(cx, cy, cellW, cellH, ox, oy, pane.Color))
		}
	}

	pane.Visible = false
	p.shattered = true

	if p.sound != nil {
		p.sound.PlaySound(game.SoundShatter)
	}

	log.Printf("[Pane] 玻璃板 %d 击碎，生成 %d 块碎片", p.entityID, len(p.shards))
}

// spawnShard 创建单块碎片，速度方向背离冲击点，越靠近冲击点越快
func (p *Pane) spawnShard(cx, cy, w, h, ox, oy float64, base color.RGBA) ecs.EntityID {
	dx, dy := cx-ox, cy-oy
	dist := math.Hypot(dx, dy)
	if dist < 1e-6 {
		angle := p.rng.Float64() * 2 * math.Pi
		dx, dy, dist = math.Cos(angle), math.Sin(angle), 1
	}

	reach := math.Hypot(p.cfg.Pane.Width, p.cfg.Pane.Height)
	falloff := 1 - math.Min(dist/reach, 1)*0.5
	speed := p.cfg.Shards.Speed * falloff * (0.6 + 0.8*p.rng.Float64())

	// 尺寸轻微随机，避免碎片看起来过于整齐
	scale := 0.85 + 0.15*p.rng.Float64()

	id := p.entityManager.CreateEntity()
	ecs.AddComponent(p.entityManager, id, &components.PositionComponent{X: cx, Y: cy})
	ecs.AddComponent(p.entityManager, id, &components.ShardComponent{
		Width:         w * scale,
		Height:        h * scale,
		VelocityX:     dx / dist * speed,
		VelocityY:     dy / dist * speed,
		RotationSpeed: (p.rng.Float64()*2 - 1) * p.cfg.Shards.Spin,
		Color:         shadeColor(base, 0.85+0.3*p.rng.Float64()),
	})
	return id
}

// Reset 复原玻璃板：销毁所有碎片并重新显示
func (p *Pane) Reset() {
	for _, id := range p.shards {
		p.entityManager.DestroyEntity(id)
	}
	p.shards = p.shards[:0]

	if pane, ok := ecs.GetComponent[*components.PaneComponent](p.entityManager, p.entityID); ok {
		pane.Visible = true
	}
	p.shattered = false

	log.Printf("[Pane] 玻璃板 %d 复原", p.entityID)
}

// shadeColor 按比例调整预乘颜色的亮度（不超过 alpha）
func shadeColor(c color.RGBA, k float64) color.RGBA {
	ch := func(v uint8) uint8 {
		return uint8(math.Min(float64(v)*k, float64(c.A)))
	}
	return color.RGBA{R: ch(c.R), G: ch(c.G), B: ch(c.B), A: c.A}
}
