package components

// MultiplierPickupComponent 倍率道具
// 玩家拾取后为计分器设置限时倍率
// 注意：遵循 ECS 原则，组件仅存储数据，不包含方法
type MultiplierPickupComponent struct {
	// Value 拾取后设置的倍率
	// 0 表示使用默认倍率（SetDefaultMultiplier）
	Value int

	// Consumed 是否已被拾取或已过期
	// 实体在帧末才被删除，此标记防止同一道具被重复拾取或重复过期
	Consumed bool
}
