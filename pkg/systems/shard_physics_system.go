package systems

import (
	"math"

	"github.com/decker502/shatter/pkg/components"
	"github.com/decker502/shatter/pkg/config"
	"github.com/decker502/shatter/pkg/ecs"
)

// 落地反弹参数
const (
	// 低于此竖直速度（像素/秒）的碎片落地后直接静止
	shardRestSpeed = 120.0
	// 反弹时竖直速度保留比例
	shardBounce = 0.3
)

// ShardPhysicsSystem 碎片运动系统
//
// 对每个未静止的碎片施加重力、速度与旋转，并在 FloorY 处处理落地。
// 水平方向不做限制，碎片可以飞出屏幕两侧。
type ShardPhysicsSystem struct {
	entityManager *ecs.EntityManager
	gravity       float64
	friction      float64
	floorY        float64
}

// NewShardPhysicsSystem 创建碎片运动系统
func NewShardPhysicsSystem(em *ecs.EntityManager, cfg *config.EffectConfig) *ShardPhysicsSystem {
	return &ShardPhysicsSystem{
		entityManager: em,
		gravity:       cfg.Shards.Gravity,
		friction:      cfg.Shards.Friction,
		floorY:        cfg.FloorY,
	}
}

// Update 推进所有碎片 deltaTime 秒
func (s *ShardPhysicsSystem) Update(deltaTime float64) {
	entities := ecs.GetEntitiesWith2[*components.ShardComponent, *components.PositionComponent](s.entityManager)

	for _, id := range entities {
		shard, _ := ecs.GetComponent[*components.ShardComponent](s.entityManager, id)
		pos, _ := ecs.GetComponent[*components.PositionComponent](s.entityManager, id)

		if shard.Resting {
			continue
		}

		shard.VelocityY += s.gravity * deltaTime
		pos.X += shard.VelocityX * deltaTime
		pos.Y += shard.VelocityY * deltaTime
		shard.Rotation = math.Mod(shard.Rotation+shard.RotationSpeed*deltaTime, 360)

		// 碎片中心到底边的距离
		bottom := pos.Y + shard.Height/2
		if bottom < s.floorY || shard.VelocityY < 0 {
			continue
		}

		pos.Y = s.floorY - shard.Height/2
		shard.VelocityX *= s.friction
		shard.RotationSpeed *= s.friction

		if shard.VelocityY < shardRestSpeed {
			shard.VelocityX = 0
			shard.VelocityY = 0
			shard.RotationSpeed = 0
			shard.Resting = true
			continue
		}
		shard.VelocityY = -shard.VelocityY * shardBounce
	}
}
