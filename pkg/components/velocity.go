package components

// VelocityComponent 移动方向（不要求是单位向量）
// 实际位移由 MovementSystem 归一化后乘以基础速度和速度系数得到
type VelocityComponent struct {
	VX float64
	VY float64
}

// SpeedFactorComponent 速度系数
// 与全局基础速度相乘，让玩家、敌机、镭射共用同一条位移公式
type SpeedFactorComponent struct {
	Factor float64
}
