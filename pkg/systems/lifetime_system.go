package systems

import (
	"github.com/decker502/scorecalc/pkg/components"
	"github.com/decker502/scorecalc/pkg/ecs"
	"github.com/decker502/scorecalc/pkg/game"
)

// LifetimeSystem 管理实体的生命周期
type LifetimeSystem struct {
	entityManager *ecs.EntityManager
	gameState     *game.GameState
}

// NewLifetimeSystem 创建一个新的生命周期系统
func NewLifetimeSystem(em *ecs.EntityManager, gs *game.GameState) *LifetimeSystem {
	return &LifetimeSystem{
		entityManager: em,
		gameState:     gs,
	}
}

// Update 更新所有拥有生命周期组件的实体
// 暂停期间生命周期不推进
func (s *LifetimeSystem) Update(deltaTime float64) {
	if !s.gameState.IsPlaying() {
		return
	}

	entities := ecs.GetEntitiesWith1[*components.LifetimeComponent](s.entityManager)

	for _, id := range entities {
		lifetime, ok := ecs.GetComponent[*components.LifetimeComponent](s.entityManager, id)
		if !ok || lifetime.IsExpired {
			continue
		}

		// 已被拾取的道具由拾取系统删除
		pickup, isPickup := ecs.GetComponent[*components.MultiplierPickupComponent](s.entityManager, id)
		if isPickup && pickup.Consumed {
			continue
		}

		lifetime.CurrentLifetime += deltaTime
		if lifetime.CurrentLifetime < lifetime.MaxLifetime {
			continue
		}

		lifetime.IsExpired = true
		if isPickup {
			// 过期的道具不能再被拾取
			pickup.Consumed = true
		}
		s.entityManager.DestroyEntity(id)
	}
}
