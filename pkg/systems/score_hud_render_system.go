package systems

import (
	"fmt"
	"image/color"

	"github.com/decker502/scorecalc/pkg/config"
	"github.com/decker502/scorecalc/pkg/game"
	"github.com/decker502/scorecalc/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// 倍率时间条颜色
var (
	multiplierBarBackground = color.RGBA{R: 60, G: 60, B: 60, A: 255}
	multiplierBarFill       = color.RGBA{R: 255, G: 200, B: 0, A: 255}
)

// ScoreHUDRenderSystem 绘制得分、倍率和倍率剩余时间
// 只读取计分器快照，不修改任何状态
type ScoreHUDRenderSystem struct {
	gameState *game.GameState
}

// NewScoreHUDRenderSystem 创建 HUD 渲染系统
func NewScoreHUDRenderSystem(gs *game.GameState) *ScoreHUDRenderSystem {
	return &ScoreHUDRenderSystem{
		gameState: gs,
	}
}

// Draw 绘制 HUD
func (s *ScoreHUDRenderSystem) Draw(screen *ebiten.Image) {
	snap := s.gameState.GetScoreTracker().Snapshot()
	lines := FormatHUDLines(snap, s.gameState.Phase(), s.gameState.BestScore())

	for i, line := range lines {
		ebitenutil.DebugPrintAt(screen, line, config.HUDX, config.HUDY+i*config.HUDLineHeight)
	}

	// 倍率剩余时间条
	if !snap.HasMultiplier {
		return
	}
	barY := float32(config.HUDY + len(lines)*config.HUDLineHeight + 4)
	vector.DrawFilledRect(screen, config.HUDX, barY,
		config.MultiplierBarWidth, config.MultiplierBarHeight, multiplierBarBackground, false)
	vector.DrawFilledRect(screen, config.HUDX, barY,
		float32(MultiplierBarFill(snap)), config.MultiplierBarHeight, multiplierBarFill, false)
}

// FormatHUDLines 生成 HUD 文本行
func FormatHUDLines(snap game.ScoreSnapshot, phase game.RunPhase, best int) []string {
	lines := []string{
		fmt.Sprintf("SCORE %d", snap.Score),
	}

	if snap.HasMultiplier {
		remaining := snap.MultiplierRemaining
		if remaining < 0 {
			remaining = 0
		}
		lines = append(lines, fmt.Sprintf("MULTIPLIER x%d (%.1fs)", snap.Multiplier, remaining))
	} else {
		lines = append(lines, fmt.Sprintf("MULTIPLIER x%d", snap.Multiplier))
	}

	lines = append(lines, fmt.Sprintf("BEST %d", best))

	switch phase {
	case game.PhaseReady:
		lines = append(lines, "Press Enter to start")
	case game.PhasePaused:
		lines = append(lines, "PAUSED - Space to resume")
	case game.PhaseGameOver:
		lines = append(lines, "GAME OVER - Enter to restart")
	}

	return lines
}

// MultiplierBarFill 计算倍率时间条的填充宽度（像素）
// 剩余时间按持续时间归一化并限制在 [0, 1]
func MultiplierBarFill(snap game.ScoreSnapshot) float64 {
	if !snap.HasMultiplier || snap.MultiplierDuration <= 0 {
		return 0
	}
	return utils.Clamp01(snap.MultiplierRemaining/snap.MultiplierDuration) * config.MultiplierBarWidth
}
