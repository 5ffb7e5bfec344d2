package game

import (
	"log"

	"github.com/decker502/scorecalc/pkg/config"
)

// RunPhase 一局游戏所处的阶段
type RunPhase int

const (
	PhaseReady    RunPhase = iota // 等待开始
	PhasePlaying                  // 进行中，按时间计分
	PhasePaused                   // 暂停，计分和倍率计时冻结
	PhaseGameOver                 // 结束，得分保留供显示
)

// String 返回阶段名称（用于日志和 HUD）
func (p RunPhase) String() string {
	switch p {
	case PhaseReady:
		return "Ready"
	case PhasePlaying:
		return "Playing"
	case PhasePaused:
		return "Paused"
	case PhaseGameOver:
		return "GameOver"
	default:
		return "Unknown"
	}
}

// GameState 存储全局游戏状态
// 这是一个单例，负责一局游戏的阶段切换，并通过 SetActive 控制计分器
type GameState struct {
	phase        RunPhase
	scoreConfig  *config.ScoreConfig
	scoreTracker *ScoreTracker
	bestScore    int // 本次运行中的最高分，仅保存在内存

	settingsManager *SettingsManager
}

// 全局单例实例
var globalGameState *GameState

// GetGameState 返回全局 GameState 单例
// 使用延迟初始化模式，确保整个游戏生命周期只有一个实例
func GetGameState() *GameState {
	if globalGameState == nil {
		globalGameState = NewGameState(config.DefaultScoreConfig())
	}
	return globalGameState
}

// NewGameState 创建处于 Ready 阶段的游戏状态
// 测试和工具程序可以直接创建独立实例，游戏本身使用 GetGameState 单例
func NewGameState(cfg *config.ScoreConfig) *GameState {
	return &GameState{
		phase:        PhaseReady,
		scoreConfig:  cfg,
		scoreTracker: NewScoreTrackerWithConfig(cfg),
	}
}

// SetScoreConfig 设置计分配置
// 新配置在下一次 StartRun 时生效
func (gs *GameState) SetScoreConfig(cfg *config.ScoreConfig) {
	gs.scoreConfig = cfg
}

// GetScoreConfig 返回当前计分配置
func (gs *GameState) GetScoreConfig() *config.ScoreConfig {
	return gs.scoreConfig
}

// GetScoreTracker 返回当前这一局的计分器
func (gs *GameState) GetScoreTracker() *ScoreTracker {
	return gs.scoreTracker
}

// Phase 返回当前阶段
func (gs *GameState) Phase() RunPhase {
	return gs.phase
}

// BestScore 返回本次运行的最高分
func (gs *GameState) BestScore() int {
	return gs.bestScore
}

// StartRun 开始新的一局
// 创建新的计分器并开启计分；任何阶段都可以调用（用于重新开始）
func (gs *GameState) StartRun() {
	gs.scoreTracker = NewScoreTrackerWithConfig(gs.scoreConfig)
	gs.scoreTracker.SetActive(true)
	gs.setPhase(PhasePlaying)
}

// Pause 暂停计分，仅在 Playing 阶段有效
func (gs *GameState) Pause() {
	if gs.phase != PhasePlaying {
		return
	}
	gs.scoreTracker.SetActive(false)
	gs.setPhase(PhasePaused)
}

// Resume 恢复计分，仅在 Paused 阶段有效
func (gs *GameState) Resume() {
	if gs.phase != PhasePaused {
		return
	}
	gs.scoreTracker.SetActive(true)
	gs.setPhase(PhasePlaying)
}

// TogglePause 在 Playing 和 Paused 之间切换
func (gs *GameState) TogglePause() {
	switch gs.phase {
	case PhasePlaying:
		gs.Pause()
	case PhasePaused:
		gs.Resume()
	}
}

// EndRun 结束当前这一局，停止计分并更新最高分
func (gs *GameState) EndRun() {
	if gs.phase != PhasePlaying && gs.phase != PhasePaused {
		return
	}
	gs.scoreTracker.SetActive(false)
	if score := gs.scoreTracker.Score(); score > gs.bestScore {
		gs.bestScore = score
	}
	gs.setPhase(PhaseGameOver)
	log.Printf("[GameState] Run ended: score=%d best=%d", gs.scoreTracker.Score(), gs.bestScore)
}

// IsPlaying 返回是否处于 Playing 阶段
func (gs *GameState) IsPlaying() bool {
	return gs.phase == PhasePlaying
}

// setPhase 切换阶段并记录日志
func (gs *GameState) setPhase(phase RunPhase) {
	if gs.phase == phase {
		return
	}
	log.Printf("[GameState] Phase %s -> %s", gs.phase, phase)
	gs.phase = phase
}

// SetSettingsManager 设置演示设置管理器
func (gs *GameState) SetSettingsManager(sm *SettingsManager) {
	gs.settingsManager = sm
}

// GetSettingsManager 返回演示设置管理器
// 未设置时创建仅内存的管理器（降级模式）
func (gs *GameState) GetSettingsManager() *SettingsManager {
	if gs.settingsManager == nil {
		gs.settingsManager, _ = NewSettingsManager(nil)
	}
	return gs.settingsManager
}
