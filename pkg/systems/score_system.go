package systems

import (
	"log"

	"github.com/decker502/scorecalc/pkg/game"
)

// ScoreSystem 每帧驱动当前这一局的计分器
// 同时作为倍率事件的统一入口（道具拾取、调试按键）
type ScoreSystem struct {
	gameState *game.GameState

	// 上一帧的倍率状态，用于检测倍率到期
	lastHasMultiplier bool
	lastMultiplier    int
}

// NewScoreSystem 创建计分系统
func NewScoreSystem(gs *game.GameState) *ScoreSystem {
	return &ScoreSystem{
		gameState:      gs,
		lastMultiplier: 1,
	}
}

// Update 推进计分器
// 是否累计得分由计分器自身的 active 标记决定（GameState 负责切换）
func (s *ScoreSystem) Update(deltaTime float64) {
	tracker := s.gameState.GetScoreTracker()
	tracker.Update(deltaTime)

	if s.lastHasMultiplier && !tracker.HasMultiplier() {
		log.Printf("[ScoreSystem] Multiplier x%d expired, score=%d", s.lastMultiplier, tracker.Score())
	}
	s.lastHasMultiplier = tracker.HasMultiplier()
	s.lastMultiplier = tracker.Multiplier()
}

// ActivateMultiplier 为计分器设置限时倍率
// value 为 0 时使用默认倍率
func (s *ScoreSystem) ActivateMultiplier(value int) {
	tracker := s.gameState.GetScoreTracker()
	if value == 0 {
		tracker.SetDefaultMultiplier()
	} else {
		tracker.SetMultiplier(value)
	}

	s.lastHasMultiplier = true
	s.lastMultiplier = tracker.Multiplier()
	log.Printf("[ScoreSystem] Multiplier x%d active for %.1fs", tracker.Multiplier(), tracker.MultiplierRemaining())
}

// Reset 清除倍率跟踪状态（重新开始一局时调用）
func (s *ScoreSystem) Reset() {
	s.lastHasMultiplier = false
	s.lastMultiplier = 1
}
