// verify_score 无窗口验证计分与倍率时序
//
// 以固定帧长驱动 ScoreTracker，打印得分和倍率变化，
// 用于核对每秒得分、倍率持续时间和延迟一帧的倍率重置。
//
// 用法：
//
//	go run ./cmd/verify_score -seconds 8 -multiplier-at 1 -value 3
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/decker502/scorecalc/pkg/config"
	"github.com/decker502/scorecalc/pkg/game"
)

var (
	configPath   = flag.String("config", config.ScoreConfigPath, "计分配置文件路径")
	seconds      = flag.Float64("seconds", 8.0, "模拟时长（秒）")
	tps          = flag.Int("tps", config.TicksPerSecond, "每秒帧数")
	multiplierAt = flag.Float64("multiplier-at", 1.0, "获得倍率的时间（秒），负数表示不获得")
	value        = flag.Int("value", 0, "倍率值，0 表示默认倍率")
	everyFrame   = flag.Bool("every-frame", false, "打印每一帧（默认只打印倍率变化）")
)

func main() {
	flag.Parse()

	if *tps <= 0 {
		fmt.Fprintln(os.Stderr, "tps 必须大于 0")
		os.Exit(2)
	}

	// 未调用 embedded.Init，配置从磁盘读取
	cfg, err := config.LoadScoreConfig(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "加载配置失败: %v\n", err)
		os.Exit(1)
	}

	tracker := game.NewScoreTrackerWithConfig(cfg)
	tracker.SetActive(true)

	deltaTime := 1.0 / float64(*tps)
	frames := int(*seconds * float64(*tps))
	granted := *multiplierAt < 0

	fmt.Printf("配置: %d 分/秒, 倍率持续 %.1fs, 默认倍率 x%d, 帧长 %.4fs\n",
		cfg.PointsPerSecond, cfg.MultiplierDuration, cfg.DefaultMultiplier, deltaTime)

	last := tracker.Snapshot()
	for frame := 1; frame <= frames; frame++ {
		now := float64(frame-1) * deltaTime
		if !granted && now >= *multiplierAt {
			granted = true
			if *value == 0 {
				tracker.SetDefaultMultiplier()
			} else {
				tracker.SetMultiplier(*value)
			}
			fmt.Printf("[%6.3fs] 获得倍率 x%d\n", now, tracker.Multiplier())
		}

		tracker.Update(deltaTime)
		snap := tracker.Snapshot()

		if *everyFrame || snap.HasMultiplier != last.HasMultiplier {
			fmt.Printf("[%6.3fs] frame=%d score=%d multiplier=x%d remaining=%.3f\n",
				float64(frame)*deltaTime, frame, snap.Score, snap.Multiplier, snap.MultiplierRemaining)
		}
		last = snap
	}

	fmt.Printf("结束: %.1fs 共 %d 帧, 得分 %d\n", *seconds, frames, tracker.Score())
}
