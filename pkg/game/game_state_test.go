package game

import (
	"testing"

	"github.com/decker502/scorecalc/pkg/config"
)

// TestGameStateSingleton 测试单例模式是否正确实现
func TestGameStateSingleton(t *testing.T) {
	globalGameState = nil
	gs1 := GetGameState()
	gs2 := GetGameState()

	if gs1 != gs2 {
		t.Error("GetGameState() should return the same instance")
	}
}

// TestGameStateInitialValue 测试初始阶段和计分器状态
func TestGameStateInitialValue(t *testing.T) {
	globalGameState = nil
	gs := GetGameState()

	if gs.Phase() != PhaseReady {
		t.Errorf("Expected initial phase Ready, got %s", gs.Phase())
	}
	if gs.GetScoreTracker().IsActive() {
		t.Error("Tracker should be inactive before the run starts")
	}
}

// TestStartRun 测试开始一局会激活计分
func TestStartRun(t *testing.T) {
	gs := NewGameState(config.DefaultScoreConfig())
	gs.StartRun()

	if !gs.IsPlaying() {
		t.Errorf("Expected phase Playing, got %s", gs.Phase())
	}
	if !gs.GetScoreTracker().IsActive() {
		t.Error("Tracker should be active after StartRun")
	}

	gs.GetScoreTracker().Update(1.0 / 15.0)
	if gs.GetScoreTracker().Score() != 1 {
		t.Errorf("Expected score 1, got %d", gs.GetScoreTracker().Score())
	}
}

// TestStartRunResetsTracker 测试重新开始会得到全新的计分器
func TestStartRunResetsTracker(t *testing.T) {
	gs := NewGameState(config.DefaultScoreConfig())
	gs.StartRun()
	gs.GetScoreTracker().AddScore(100)
	gs.GetScoreTracker().SetMultiplier(3)

	gs.StartRun()
	st := gs.GetScoreTracker()
	if st.Score() != 0 || st.Multiplier() != 1 {
		t.Errorf("Expected fresh tracker, got score=%d multiplier=%d", st.Score(), st.Multiplier())
	}
}

// TestPauseResume 测试暂停和恢复
func TestPauseResume(t *testing.T) {
	gs := NewGameState(config.DefaultScoreConfig())

	// Ready 阶段暂停无效
	gs.Pause()
	if gs.Phase() != PhaseReady {
		t.Errorf("Pause in Ready should be ignored, got %s", gs.Phase())
	}

	gs.StartRun()
	gs.Pause()
	if gs.Phase() != PhasePaused {
		t.Errorf("Expected Paused, got %s", gs.Phase())
	}
	if gs.GetScoreTracker().IsActive() {
		t.Error("Tracker should be inactive while paused")
	}

	gs.GetScoreTracker().Update(10.0)
	if gs.GetScoreTracker().Score() != 0 {
		t.Errorf("Paused tracker should not score, got %d", gs.GetScoreTracker().Score())
	}

	gs.Resume()
	if !gs.IsPlaying() || !gs.GetScoreTracker().IsActive() {
		t.Error("Expected Playing with active tracker after Resume")
	}
}

// TestTogglePause 测试切换暂停
func TestTogglePause(t *testing.T) {
	gs := NewGameState(config.DefaultScoreConfig())
	gs.StartRun()

	gs.TogglePause()
	if gs.Phase() != PhasePaused {
		t.Errorf("Expected Paused, got %s", gs.Phase())
	}
	gs.TogglePause()
	if gs.Phase() != PhasePlaying {
		t.Errorf("Expected Playing, got %s", gs.Phase())
	}
}

// TestEndRun 测试结束一局并记录最高分
func TestEndRun(t *testing.T) {
	gs := NewGameState(config.DefaultScoreConfig())

	// Ready 阶段结束无效
	gs.EndRun()
	if gs.Phase() != PhaseReady {
		t.Errorf("EndRun in Ready should be ignored, got %s", gs.Phase())
	}

	gs.StartRun()
	gs.GetScoreTracker().AddScore(42)
	gs.EndRun()

	if gs.Phase() != PhaseGameOver {
		t.Errorf("Expected GameOver, got %s", gs.Phase())
	}
	if gs.GetScoreTracker().IsActive() {
		t.Error("Tracker should be inactive after EndRun")
	}
	if gs.BestScore() != 42 {
		t.Errorf("Expected best score 42, got %d", gs.BestScore())
	}
	// 结束后得分保留供显示
	if gs.GetScoreTracker().Score() != 42 {
		t.Errorf("Expected final score to remain 42, got %d", gs.GetScoreTracker().Score())
	}

	gs.StartRun()
	gs.GetScoreTracker().AddScore(10)
	gs.EndRun()
	if gs.BestScore() != 42 {
		t.Errorf("Lower score should not replace best score, got %d", gs.BestScore())
	}
}

// TestSetScoreConfig 测试新配置在下一局生效
func TestSetScoreConfig(t *testing.T) {
	gs := NewGameState(config.DefaultScoreConfig())
	cfg := config.DefaultScoreConfig()
	cfg.DefaultMultiplier = 5
	gs.SetScoreConfig(cfg)

	gs.StartRun()
	gs.GetScoreTracker().SetDefaultMultiplier()
	if gs.GetScoreTracker().Multiplier() != 5 {
		t.Errorf("Expected multiplier 5, got %d", gs.GetScoreTracker().Multiplier())
	}
}

// TestRunPhaseString 测试阶段名称
func TestRunPhaseString(t *testing.T) {
	tests := []struct {
		phase RunPhase
		want  string
	}{
		{PhaseReady, "Ready"},
		{PhasePlaying, "Playing"},
		{PhasePaused, "Paused"},
		{PhaseGameOver, "GameOver"},
		{RunPhase(99), "Unknown"},
	}
	for _, tt := range tests {
		if got := tt.phase.String(); got != tt.want {
			t.Errorf("RunPhase(%d).String() = %q, want %q", tt.phase, got, tt.want)
		}
	}
}

// TestGetSettingsManagerFallback 测试未设置时返回降级模式的管理器
func TestGetSettingsManagerFallback(t *testing.T) {
	gs := NewGameState(config.DefaultScoreConfig())
	sm := gs.GetSettingsManager()
	if sm == nil {
		t.Fatal("GetSettingsManager() returned nil")
	}
	if sm != gs.GetSettingsManager() {
		t.Error("GetSettingsManager() should return the same instance")
	}
}
