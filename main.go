package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/decker502/scorecalc/pkg/app"
	"github.com/decker502/scorecalc/pkg/config"
	"github.com/decker502/scorecalc/pkg/embedded"
	"github.com/hajimehoshi/ebiten/v2"
)

var (
	verbose    = flag.Bool("verbose", false, "显示详细调试信息")
	configPath = flag.String("config", "", "计分配置文件路径（默认使用内置 data/score.yaml）")
	noStorage  = flag.Bool("no-storage", false, "不保存演示设置")
)

func main() {
	flag.Parse()

	// 初始化嵌入资源（dataFS 在 embed.go 中声明）
	embedded.Init(dataFS)

	a, err := app.NewApp(app.Config{
		Verbose:         *verbose,
		ScoreConfigPath: *configPath,
		DisableStorage:  *noStorage,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "初始化失败: %v\n", err)
		os.Exit(1)
	}

	ebiten.SetWindowSize(config.GameWindowWidth, config.GameWindowHeight)
	ebiten.SetWindowTitle("Score Multiplier Demo")
	ebiten.SetTPS(config.TicksPerSecond)
	// 窗口关闭时由 App.Update 保存设置后退出
	ebiten.SetWindowClosingHandled(true)

	if err := ebiten.RunGame(a); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
