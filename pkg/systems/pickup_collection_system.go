package systems

import (
	"log"

	"github.com/decker502/scorecalc/pkg/components"
	"github.com/decker502/scorecalc/pkg/ecs"
	"github.com/decker502/scorecalc/pkg/game"
)

// PickupCollectionSystem 移动倍率道具并检测拾取
// 道具越过玩家所在的X坐标即视为拾取，为计分器设置倍率并删除实体
type PickupCollectionSystem struct {
	entityManager *ecs.EntityManager
	gameState     *game.GameState
	scoreSystem   *ScoreSystem
	playerX       float64 // 玩家X坐标
}

// NewPickupCollectionSystem 创建一个新的道具拾取系统
func NewPickupCollectionSystem(em *ecs.EntityManager, gs *game.GameState, ss *ScoreSystem, playerX float64) *PickupCollectionSystem {
	return &PickupCollectionSystem{
		entityManager: em,
		gameState:     gs,
		scoreSystem:   ss,
		playerX:       playerX,
	}
}

// Update 移动所有道具并处理拾取
// 暂停和结束阶段道具静止
func (s *PickupCollectionSystem) Update(deltaTime float64) {
	if !s.gameState.IsPlaying() {
		return
	}

	entities := ecs.GetEntitiesWith3[
		*components.MultiplierPickupComponent,
		*components.PositionComponent,
		*components.VelocityComponent,
	](s.entityManager)

	for _, id := range entities {
		pickup, _ := ecs.GetComponent[*components.MultiplierPickupComponent](s.entityManager, id)
		pos, _ := ecs.GetComponent[*components.PositionComponent](s.entityManager, id)
		vel, _ := ecs.GetComponent[*components.VelocityComponent](s.entityManager, id)

		if pickup.Consumed {
			continue
		}

		pos.X += vel.VX * deltaTime
		pos.Y += vel.VY * deltaTime

		if pos.X > s.playerX {
			continue
		}

		pickup.Consumed = true
		s.scoreSystem.ActivateMultiplier(pickup.Value)
		log.Printf("[PickupCollectionSystem] Pickup %d collected (value=%d)", id, pickup.Value)

		s.entityManager.DestroyEntity(id)
	}
}
