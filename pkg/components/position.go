package components

// PositionComponent 实体中心的世界坐标
// 原点位于游戏区域中心，Y 轴向上
type PositionComponent struct {
	X float64
	Y float64
}
