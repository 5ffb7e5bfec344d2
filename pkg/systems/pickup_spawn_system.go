package systems

import (
	"log"

	"github.com/decker502/scorecalc/pkg/config"
	"github.com/decker502/scorecalc/pkg/ecs"
	"github.com/decker502/scorecalc/pkg/entities"
	"github.com/decker502/scorecalc/pkg/game"
)

// PickupSpawnSystem 管理倍率道具的定时生成
type PickupSpawnSystem struct {
	entityManager *ecs.EntityManager
	gameState     *game.GameState
	pickups       config.PickupConfig
	spawnTimer    float64 // 当前计时器
	nextValue     int     // 下一个道具在 pickups.Values 中的索引
	spawnX        float64 // 生成X坐标（屏幕右侧外）
	laneY         float64 // 跑道Y坐标
	enabled       bool    // 是否启用自动生成
}

// NewPickupSpawnSystem 创建一个新的道具生成系统
// 参数:
//   - em: EntityManager 实例
//   - gs: GameState 实例（仅在 Playing 阶段生成）
//   - pickups: 道具生成配置
//   - spawnX: 生成X坐标
//   - laneY: 跑道Y坐标
func NewPickupSpawnSystem(em *ecs.EntityManager, gs *game.GameState, pickups config.PickupConfig, spawnX, laneY float64) *PickupSpawnSystem {
	log.Printf("[PickupSpawnSystem] Initialized with interval=%.1fs, values=%v", pickups.SpawnInterval, pickups.Values)
	return &PickupSpawnSystem{
		entityManager: em,
		gameState:     gs,
		pickups:       pickups,
		spawnX:        spawnX,
		laneY:         laneY,
		enabled:       true,
	}
}

// Update 更新道具生成计时器
func (s *PickupSpawnSystem) Update(deltaTime float64) {
	if !s.enabled || !s.gameState.IsPlaying() {
		return
	}

	s.spawnTimer += deltaTime
	if s.spawnTimer < s.pickups.SpawnInterval {
		return
	}
	s.spawnTimer = 0

	value := s.pickups.Values[s.nextValue%len(s.pickups.Values)]
	s.nextValue++

	id := entities.NewMultiplierPickupEntity(s.entityManager, s.spawnX, s.laneY,
		s.pickups.Speed, s.pickups.Lifetime, value)
	log.Printf("[PickupSpawnSystem] Spawned pickup %d (value=%d)", id, value)
}

// SetEnabled 启用或禁用自动生成
func (s *PickupSpawnSystem) SetEnabled(enabled bool) {
	s.enabled = enabled
}

// IsEnabled 返回是否启用自动生成
func (s *PickupSpawnSystem) IsEnabled() bool {
	return s.enabled
}

// Reset 重置计时器和倍率序列（重新开始一局时调用）
func (s *PickupSpawnSystem) Reset() {
	s.spawnTimer = 0
	s.nextValue = 0
}
