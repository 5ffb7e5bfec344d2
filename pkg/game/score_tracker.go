package game

import "github.com/decker502/scorecalc/pkg/config"

// ScoreTracker 管理玩家得分和限时倍率
// 游戏运行期间按时间自动加分，拾取道具时设置限时倍率
//
// 与 HUD 显示无关：HUD 只通过 Score()/Multiplier()/Snapshot() 读取状态。
// 所有字段只能通过本类型的方法修改。
// 非并发安全：调用方需保证所有调用来自同一个游戏循环。
type ScoreTracker struct {
	score      int
	multiplier int
	active     bool // 是否按时间累计得分

	hasMultiplier       bool
	multiplierRemaining float64 // 倍率剩余时间（秒），hasMultiplier 为 false 时无意义
	accumulatedTime     float64 // 距离下一次加分已累计的时间（秒）

	secondsPerPoint    float64
	multiplierDuration float64
	defaultMultiplier  int
}

// ScoreSnapshot 某一帧的只读得分快照，供 HUD 使用
type ScoreSnapshot struct {
	Score               int
	Multiplier          int
	Active              bool
	HasMultiplier       bool
	MultiplierRemaining float64
	MultiplierDuration  float64
}

// NewScoreTracker 使用默认参数创建计分器
// 每秒 15 分，倍率持续 5 秒，默认倍率 2
func NewScoreTracker() *ScoreTracker {
	return NewScoreTrackerWithConfig(config.DefaultScoreConfig())
}

// NewScoreTrackerWithConfig 使用指定配置创建计分器
// 初始状态：得分 0，倍率 1，未激活
func NewScoreTrackerWithConfig(cfg *config.ScoreConfig) *ScoreTracker {
	return &ScoreTracker{
		multiplier:         1,
		active:             false,
		secondsPerPoint:    cfg.SecondsPerPoint(),
		multiplierDuration: cfg.MultiplierDuration,
		defaultMultiplier:  cfg.DefaultMultiplier,
	}
}

// AddScore 按当前倍率增加得分
// 不检查 delta 符号，负数会使得分减少
// 不受 active 影响
func (st *ScoreTracker) AddScore(delta int) {
	st.score += delta * st.multiplier
}

// SetActive 开启或关闭按时间累计得分
func (st *ScoreTracker) SetActive(active bool) {
	st.active = active
}

// IsActive 返回是否正在按时间累计得分
func (st *ScoreTracker) IsActive() bool {
	return st.active
}

// Update 每帧调用一次，deltaTime 为本帧经过的秒数
//
// 每次调用最多加 1 分：累计时间超过多个 secondsPerPoint 时，
// 超出部分保留在 accumulatedTime 中，留给后续帧。
//
// 倍率计时先检查后执行：剩余时间 > 0 时递减，
// 剩余时间 <= 0 时在下一次 Update 才重置倍率。
func (st *ScoreTracker) Update(deltaTime float64) {
	if !st.active {
		return
	}

	st.accumulatedTime += deltaTime
	if st.accumulatedTime >= st.secondsPerPoint {
		st.AddScore(1)
		st.accumulatedTime -= st.secondsPerPoint
	}

	st.updateMultiplierTime(deltaTime)
}

// updateMultiplierTime 推进倍率计时器
func (st *ScoreTracker) updateMultiplierTime(deltaTime float64) {
	if !st.hasMultiplier {
		return
	}
	if st.multiplierRemaining > 0 {
		st.multiplierRemaining -= deltaTime
	} else {
		st.ResetMultiplier()
	}
}

// SetMultiplier 设置倍率并重新开始计时
// 无条件覆盖正在生效的倍率及其剩余时间
func (st *ScoreTracker) SetMultiplier(value int) {
	st.multiplier = value
	st.multiplierRemaining = st.multiplierDuration
	st.hasMultiplier = true
}

// SetDefaultMultiplier 设置默认倍率（2x）
func (st *ScoreTracker) SetDefaultMultiplier() {
	st.SetMultiplier(st.defaultMultiplier)
}

// ResetMultiplier 将倍率恢复为 1，可重复调用
func (st *ScoreTracker) ResetMultiplier() {
	st.multiplier = 1
	st.multiplierRemaining = 0
	st.hasMultiplier = false
}

// Score 返回当前得分
func (st *ScoreTracker) Score() int {
	return st.score
}

// Multiplier 返回当前倍率
func (st *ScoreTracker) Multiplier() int {
	return st.multiplier
}

// HasMultiplier 返回是否有限时倍率正在生效
func (st *ScoreTracker) HasMultiplier() bool {
	return st.hasMultiplier
}

// MultiplierRemaining 返回倍率剩余时间（秒）
func (st *ScoreTracker) MultiplierRemaining() float64 {
	return st.multiplierRemaining
}

// AccumulatedTime 返回距离下一次加分已累计的时间（秒）
func (st *ScoreTracker) AccumulatedTime() float64 {
	return st.accumulatedTime
}

// MultiplierDuration 返回倍率持续时间（秒）
func (st *ScoreTracker) MultiplierDuration() float64 {
	return st.multiplierDuration
}

// Snapshot 返回当前状态的只读副本
func (st *ScoreTracker) Snapshot() ScoreSnapshot {
	return ScoreSnapshot{
		Score:               st.score,
		Multiplier:          st.multiplier,
		Active:              st.active,
		HasMultiplier:       st.hasMultiplier,
		MultiplierRemaining: st.multiplierRemaining,
		MultiplierDuration:  st.multiplierDuration,
	}
}
