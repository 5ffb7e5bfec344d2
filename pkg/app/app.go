// Package app 提供演示程序的核心包装器
//
// 该包将初始化逻辑从 main 包提取出来：加载计分配置、打开设置存储、
// 创建跑酷场景，并以固定时间步长驱动场景更新。
package app

import (
	"fmt"
	"image/color"
	"io"
	"log"

	"github.com/decker502/scorecalc/pkg/config"
	"github.com/decker502/scorecalc/pkg/game"
	"github.com/decker502/scorecalc/pkg/scenes"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/quasilyte/gdata/v2"
)

// appName gdata 存储使用的应用名
const appName = "scorecalc"

// Config 定义应用启动配置
type Config struct {
	// Verbose 启用详细日志输出
	Verbose bool
	// ScoreConfigPath 计分配置文件路径，为空则使用嵌入的 data/score.yaml
	ScoreConfigPath string
	// DisableStorage 不打开 gdata 存储（设置仅保存在内存中）
	DisableStorage bool
}

// App 是演示程序的核心包装器，实现 ebiten.Game 接口
type App struct {
	scene   game.Scene
	verbose bool
}

// NewApp 创建并初始化演示程序
//
// 调用此函数前，必须先调用 embedded.Init() 初始化嵌入资源。
func NewApp(cfg Config) (*App, error) {
	// 配置日志输出
	if !cfg.Verbose {
		log.SetOutput(io.Discard)
		log.SetFlags(0)
	}

	path := cfg.ScoreConfigPath
	if path == "" {
		path = config.ScoreConfigPath
	}
	scoreConfig, err := config.LoadScoreConfig(path)
	if err != nil {
		return nil, fmt.Errorf("计分配置加载失败: %w", err)
	}
	log.Printf("[Config] Loaded %s: %d points/s, multiplier %.1fs, default x%d",
		path, scoreConfig.PointsPerSecond, scoreConfig.MultiplierDuration, scoreConfig.DefaultMultiplier)

	gameState := game.GetGameState()
	gameState.SetScoreConfig(scoreConfig)
	gameState.SetSettingsManager(openSettings(cfg.DisableStorage))

	if gameState.GetSettingsManager().GetSettings().Fullscreen {
		ebiten.SetFullscreen(true)
	}

	return &App{
		scene:   scenes.NewRunScene(gameState),
		verbose: cfg.Verbose,
	}, nil
}

// openSettings 打开设置存储
// 存储不可用时退化为仅内存设置
func openSettings(disableStorage bool) *game.SettingsManager {
	var manager *gdata.Manager
	if !disableStorage {
		m, err := gdata.Open(gdata.Config{AppName: appName})
		if err != nil {
			log.Printf("[App] Warning: gdata unavailable: %v (settings will not persist)", err)
		} else {
			manager = m
		}
	}

	sm, _ := game.NewSettingsManager(manager)
	return sm
}

// Update 更新游戏逻辑
// 每个 tick 调用一次（每秒 config.TicksPerSecond 次）
func (a *App) Update() error {
	if ebiten.IsWindowBeingClosed() {
		a.SaveOnExit()
		return ebiten.Termination
	}

	// F11 切换全屏
	if inpututil.IsKeyJustPressed(ebiten.KeyF11) {
		fullscreen := !ebiten.IsFullscreen()
		ebiten.SetFullscreen(fullscreen)
		game.GetGameState().GetSettingsManager().SetFullscreen(fullscreen)
		log.Printf("[App] Fullscreen: %v", fullscreen)
	}

	deltaTime := 1.0 / float64(config.TicksPerSecond)
	a.scene.Update(deltaTime)
	return nil
}

// Draw 绘制游戏画面
func (a *App) Draw(screen *ebiten.Image) {
	a.scene.Draw(screen)
}

// DrawFinalScreen 实现 FinalScreenDrawer 接口
// 全屏时左右两边填充黑色
func (a *App) DrawFinalScreen(screen ebiten.FinalScreen, offscreen *ebiten.Image, geoM ebiten.GeoM) {
	screen.Fill(color.Black)
	op := &ebiten.DrawImageOptions{}
	op.GeoM = geoM
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(offscreen, op)
}

// Layout 返回游戏的逻辑屏幕尺寸
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.GameWindowWidth, config.GameWindowHeight
}

// SaveOnExit 在窗口关闭时保存设置
func (a *App) SaveOnExit() bool {
	if saveable, ok := a.scene.(game.Saveable); ok {
		return saveable.SaveOnExit()
	}
	return true
}

// IsVerbose 返回是否启用了详细日志
func (a *App) IsVerbose() bool {
	return a.verbose
}
