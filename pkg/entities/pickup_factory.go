package entities

import (
	"github.com/decker502/scorecalc/pkg/components"
	"github.com/decker502/scorecalc/pkg/ecs"
)

// NewMultiplierPickupEntity 创建一个倍率道具实体
// 参数:
//   - manager: EntityManager 实例
//   - x, y: 起始位置（通常在屏幕右侧外）
//   - speed: 向左移动速度（像素/秒）
//   - lifetime: 未拾取时的存活时间（秒）
//   - value: 拾取后设置的倍率，0 表示默认倍率
//
// 返回: 创建的实体ID
func NewMultiplierPickupEntity(manager *ecs.EntityManager, x, y, speed, lifetime float64, value int) ecs.EntityID {
	id := manager.CreateEntity()

	ecs.AddComponent(manager, id, &components.PositionComponent{
		X: x,
		Y: y,
	})

	// 道具沿跑道向左移动，迎向玩家
	ecs.AddComponent(manager, id, &components.VelocityComponent{
		VX: -speed,
		VY: 0,
	})

	ecs.AddComponent(manager, id, &components.LifetimeComponent{
		MaxLifetime:     lifetime,
		CurrentLifetime: 0,
		IsExpired:       false,
	})

	ecs.AddComponent(manager, id, &components.MultiplierPickupComponent{
		Value: value,
	})

	return id
}
