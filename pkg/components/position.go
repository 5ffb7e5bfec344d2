package components

// PositionComponent 实体在屏幕上的位置（像素）
type PositionComponent struct {
	X, Y float64
}

// VelocityComponent 实体的移动速度（像素/秒）
type VelocityComponent struct {
	VX, VY float64
}
