package config

import (
	"fmt"
	"os"

	"github.com/decker502/scorecalc/pkg/embedded"
	"gopkg.in/yaml.v3"
)

// 计分默认参数
const (
	// DefaultPointsPerSecond 每秒基础得分（每 1/15 秒 1 分）
	DefaultPointsPerSecond = 15

	// DefaultMultiplierDuration 倍率持续时间（秒）
	DefaultMultiplierDuration = 5.0

	// DefaultBonusMultiplier 不指定倍率时使用的倍率（2x）
	DefaultBonusMultiplier = 2

	// ScoreConfigPath 嵌入的计分配置文件路径
	ScoreConfigPath = "data/score.yaml"
)

// PickupConfig 倍率道具生成配置（仅演示场景使用）
type PickupConfig struct {
	SpawnInterval float64 `yaml:"spawnInterval"` // 生成间隔（秒）
	Speed         float64 `yaml:"speed"`         // 向左移动速度（像素/秒）
	Lifetime      float64 `yaml:"lifetime"`      // 未拾取时的存活时间（秒）
	Values        []int   `yaml:"values"`        // 依次循环的倍率，0 表示默认倍率
}

// ScoreConfig 计分配置
type ScoreConfig struct {
	PointsPerSecond    int          `yaml:"pointsPerSecond"`    // 每秒基础得分
	MultiplierDuration float64      `yaml:"multiplierDuration"` // 倍率持续时间（秒）
	DefaultMultiplier  int          `yaml:"defaultMultiplier"`  // 默认倍率
	Pickups            PickupConfig `yaml:"pickups"`            // 演示道具配置
}

// DefaultScoreConfig 返回与内置常量一致的配置
func DefaultScoreConfig() *ScoreConfig {
	return &ScoreConfig{
		PointsPerSecond:    DefaultPointsPerSecond,
		MultiplierDuration: DefaultMultiplierDuration,
		DefaultMultiplier:  DefaultBonusMultiplier,
		Pickups: PickupConfig{
			SpawnInterval: 6.0,
			Speed:         160.0,
			Lifetime:      8.0,
			Values:        []int{0},
		},
	}
}

// SecondsPerPoint 每得 1 分所需的秒数
func (c *ScoreConfig) SecondsPerPoint() float64 {
	return 1 / float64(c.PointsPerSecond)
}

// LoadScoreConfig 加载计分配置
// 优先从嵌入文件系统读取，找不到时按磁盘路径读取（用于 -config 参数）
//
// 返回：
//   - *ScoreConfig: 解析后的配置对象
//   - error: 文件读取、解析或校验失败时返回错误
func LoadScoreConfig(path string) (*ScoreConfig, error) {
	var data []byte
	var err error
	if embedded.Exists(path) {
		data, err = embedded.ReadFile(path)
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read score config file %s: %w", path, err)
	}

	cfg, err := ParseScoreConfig(data)
	if err != nil {
		return nil, fmt.Errorf("invalid score config %s: %w", path, err)
	}
	return cfg, nil
}

// ParseScoreConfig 解析 YAML 数据
// 未出现的字段保留默认值
func ParseScoreConfig(data []byte) (*ScoreConfig, error) {
	cfg := DefaultScoreConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse score config YAML: %w", err)
	}

	if err := validateScoreConfig(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// validateScoreConfig 验证计分配置的合法性
func validateScoreConfig(cfg *ScoreConfig) error {
	if cfg.PointsPerSecond < 1 {
		return fmt.Errorf("pointsPerSecond must be at least 1, got %d", cfg.PointsPerSecond)
	}
	if cfg.MultiplierDuration <= 0 {
		return fmt.Errorf("multiplierDuration must be positive, got %v", cfg.MultiplierDuration)
	}
	if cfg.DefaultMultiplier < 1 {
		return fmt.Errorf("defaultMultiplier must be at least 1, got %d", cfg.DefaultMultiplier)
	}

	p := cfg.Pickups
	if p.SpawnInterval <= 0 {
		return fmt.Errorf("pickups.spawnInterval must be positive, got %v", p.SpawnInterval)
	}
	if p.Speed < 0 {
		return fmt.Errorf("pickups.speed cannot be negative, got %v", p.Speed)
	}
	if p.Lifetime <= 0 {
		return fmt.Errorf("pickups.lifetime must be positive, got %v", p.Lifetime)
	}
	if len(p.Values) == 0 {
		return fmt.Errorf("pickups.values requires at least one entry")
	}
	for i, v := range p.Values {
		if v < 0 {
			return fmt.Errorf("pickups.values[%d] cannot be negative, got %d", i, v)
		}
	}
	return nil
}
