package config

// 布局配置常量
// 本文件定义了演示窗口尺寸和 HUD 元素位置

// 窗口尺寸
const (
	// GameWindowWidth 游戏逻辑屏幕宽度
	GameWindowWidth = 800

	// GameWindowHeight 游戏逻辑屏幕高度
	GameWindowHeight = 600

	// TicksPerSecond 每秒逻辑更新次数（固定时间步长 1/60 秒）
	TicksPerSecond = 60
)

// HUD 布局
const (
	// HUDX HUD 文字左上角X坐标
	HUDX = 16

	// HUDY HUD 文字左上角Y坐标
	HUDY = 16

	// HUDLineHeight 调试字体行高
	HUDLineHeight = 16

	// MultiplierBarWidth 倍率剩余时间条的最大宽度
	MultiplierBarWidth = 160.0

	// MultiplierBarHeight 倍率剩余时间条的高度
	MultiplierBarHeight = 6.0
)

// 跑道布局
const (
	// PlayerX 玩家所在的X坐标，道具越过此线即被拾取
	PlayerX = 120.0

	// LaneY 道具移动的Y坐标
	LaneY = 360.0

	// PickupSize 道具方块边长
	PickupSize = 24.0
)
