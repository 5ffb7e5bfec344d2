package scenes

import (
	"image/color"
	"log"

	"github.com/decker502/scorecalc/pkg/config"
	"github.com/decker502/scorecalc/pkg/ecs"
	"github.com/decker502/scorecalc/pkg/game"
	"github.com/decker502/scorecalc/pkg/systems"
	"github.com/decker502/scorecalc/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

var backgroundColor = color.RGBA{R: 24, G: 28, B: 40, A: 255}

// RunScene 跑酷演示场景
// 组合计分、道具生成、拾取和渲染系统，驱动 GameState 中的计分器
//
// 按键：
//   - Enter: 开始 / 重新开始
//   - Space: 暂停 / 继续
//   - M: 手动获得默认倍率
//   - 3: 手动获得 3 倍倍率
//   - G: 结束本局
//   - H: 显示 / 隐藏 HUD
//   - 点击 / 触摸: 开始，或在游戏中暂停 / 继续
type RunScene struct {
	entityManager   *ecs.EntityManager
	gameState       *game.GameState
	settingsManager *game.SettingsManager

	scoreSystem      *systems.ScoreSystem
	spawnSystem      *systems.PickupSpawnSystem
	collectionSystem *systems.PickupCollectionSystem
	lifetimeSystem   *systems.LifetimeSystem
	hudRenderSystem  *systems.ScoreHUDRenderSystem
	pickupRender     *systems.PickupRenderSystem
}

// NewRunScene 创建跑酷演示场景
// 场景创建后处于 Ready 阶段，需要 Start() 或按 Enter 开始
func NewRunScene(gs *game.GameState) *RunScene {
	em := ecs.NewEntityManager()
	cfg := gs.GetScoreConfig()
	scoreSystem := systems.NewScoreSystem(gs)

	s := &RunScene{
		entityManager:    em,
		gameState:        gs,
		settingsManager:  gs.GetSettingsManager(),
		scoreSystem:      scoreSystem,
		spawnSystem:      systems.NewPickupSpawnSystem(em, gs, cfg.Pickups, config.GameWindowWidth+config.PickupSize, config.LaneY),
		collectionSystem: systems.NewPickupCollectionSystem(em, gs, scoreSystem, config.PlayerX),
		lifetimeSystem:   systems.NewLifetimeSystem(em, gs),
		hudRenderSystem:  systems.NewScoreHUDRenderSystem(gs),
		pickupRender:     systems.NewPickupRenderSystem(em, cfg.DefaultMultiplier),
	}
	s.spawnSystem.SetEnabled(s.settingsManager.GetSettings().AutoPickups)

	log.Printf("[RunScene] Created (autoPickups=%v)", s.spawnSystem.IsEnabled())
	return s
}

// Update 处理输入并更新所有系统
func (s *RunScene) Update(deltaTime float64) {
	s.handleInput()
	s.updateSystems(deltaTime)
}

// updateSystems 按固定顺序更新系统
// 先处理道具拾取，使本帧拾取的倍率立即参与计时
func (s *RunScene) updateSystems(deltaTime float64) {
	s.collectionSystem.Update(deltaTime)
	s.lifetimeSystem.Update(deltaTime)
	s.spawnSystem.Update(deltaTime)
	s.scoreSystem.Update(deltaTime)

	s.entityManager.RemoveMarkedEntities()
}

// handleInput 将按键映射到场景操作
func (s *RunScene) handleInput() {
	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyEnter):
		if s.gameState.Phase() == game.PhaseReady || s.gameState.Phase() == game.PhaseGameOver {
			s.Start()
		}
	case inpututil.IsKeyJustPressed(ebiten.KeySpace):
		s.gameState.TogglePause()
	case inpututil.IsKeyJustPressed(ebiten.KeyG):
		s.gameState.EndRun()
	case inpututil.IsKeyJustPressed(ebiten.KeyH):
		show := s.settingsManager.ToggleHUD()
		log.Printf("[RunScene] HUD visible: %v", show)
	case inpututil.IsKeyJustPressed(ebiten.KeyM):
		s.ManualMultiplier(0)
	case inpututil.IsKeyJustPressed(ebiten.KeyDigit3):
		s.ManualMultiplier(3)
	default:
		if clicked, _, _ := utils.IsJustTouchedOrClicked(); clicked {
			s.handleTap()
		}
	}
}

// handleTap 点击 / 触摸：未开始或已结束时开始新的一局，否则切换暂停
func (s *RunScene) handleTap() {
	switch s.gameState.Phase() {
	case game.PhaseReady, game.PhaseGameOver:
		s.Start()
	default:
		s.gameState.TogglePause()
	}
}

// Start 开始新的一局
// 清除场上道具并重置系统状态
func (s *RunScene) Start() {
	s.entityManager.Clear()
	s.spawnSystem.Reset()
	s.scoreSystem.Reset()
	s.gameState.StartRun()
}

// ManualMultiplier 手动获得倍率（调试用），仅在 Playing 阶段有效
// value 为 0 时使用默认倍率
func (s *RunScene) ManualMultiplier(value int) {
	if !s.gameState.IsPlaying() {
		return
	}
	s.scoreSystem.ActivateMultiplier(value)
}

// Draw 绘制场景
func (s *RunScene) Draw(screen *ebiten.Image) {
	screen.Fill(backgroundColor)
	s.pickupRender.Draw(screen)

	if s.settingsManager.GetSettings().ShowHUD {
		s.hudRenderSystem.Draw(screen)
	}
}

// SaveOnExit 实现 game.Saveable 接口，退出时保存演示设置
func (s *RunScene) SaveOnExit() bool {
	if err := s.settingsManager.Save(); err != nil {
		log.Printf("[RunScene] Failed to save settings on exit: %v", err)
		return false
	}
	return true
}
