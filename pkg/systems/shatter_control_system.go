package systems

import (
	"log"

	"github.com/decker502/shatter/pkg/components"
	"github.com/decker502/shatter/pkg/ecs"
	"github.com/decker502/shatter/pkg/input"
)

// ShatterControlSystem 击碎状态控制系统
//
// 每帧采样一次输入，然后对每个拥有 ShatterControllerComponent 的实体：
//   - Intact 且主键刚按下：调用 Target.Shatter()，进入 Shattered
//   - Shattered 且副键刚按下：调用 Target.Reset()，回到 Intact
//   - 其他组合：不做任何事
//
// 每个实体每帧最多发生一次状态转换。
type ShatterControlSystem struct {
	entityManager *ecs.EntityManager
	input         input.Source
}

// NewShatterControlSystem 创建击碎状态控制系统
func NewShatterControlSystem(em *ecs.EntityManager, src input.Source) *ShatterControlSystem {
	return &ShatterControlSystem{
		entityManager: em,
		input:         src,
	}
}

// Update 处理本帧的状态转换
func (s *ShatterControlSystem) Update(deltaTime float64) {
	s.input.Poll()
	primary := s.input.PrimaryJustPressed()
	secondary := s.input.SecondaryJustPressed()

	if !primary && !secondary {
		return
	}

	entities := ecs.GetEntitiesWith1[*components.ShatterControllerComponent](s.entityManager)
	for _, id := range entities {
		ctrl, ok := ecs.GetComponent[*components.ShatterControllerComponent](s.entityManager, id)
		if !ok || ctrl.Target == nil {
			continue
		}

		if !ctrl.Shattered {
			if primary {
				ctrl.Target.Shatter()
				ctrl.Shattered = true
				log.Printf("[ShatterControlSystem] entity %d: Intact -> Shattered", id)
			}
			continue
		}

		if secondary {
			ctrl.Target.Reset()
			ctrl.Shattered = false
			log.Printf("[ShatterControlSystem] entity %d: Shattered -> Intact", id)
		}
	}
}
