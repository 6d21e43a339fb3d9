package types

// SpriteKind 视觉类型
// 渲染端据此选择贴图，核心逻辑据此查询碰撞半尺寸
type SpriteKind int

const (
	SpritePlayer      SpriteKind = iota // 玩家飞船
	SpriteEnemy                         // 敌机
	SpritePlayerLaser                   // 玩家镭射
	SpriteEnemyLaser                    // 敌机镭射
)

// String 返回视觉类型名称（日志用）
func (k SpriteKind) String() string {
	switch k {
	case SpritePlayer:
		return "player"
	case SpriteEnemy:
		return "enemy"
	case SpritePlayerLaser:
		return "player_laser"
	case SpriteEnemyLaser:
		return "enemy_laser"
	default:
		return "unknown"
	}
}

// LaserSprite 返回指定阵营镭射的视觉类型
func LaserSprite(side ProjectileSide) SpriteKind {
	if side == FromPlayer {
		return SpritePlayerLaser
	}
	return SpriteEnemyLaser
}
