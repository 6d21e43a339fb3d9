// Package types 定义共享的基础类型
package types

// ActorKind 定义角色（可被击毁的一方）的类型
type ActorKind int

const (
	ActorPlayer ActorKind = iota // 玩家飞船，任意时刻至多一个
	ActorEnemy                   // 敌机
)

// String 返回角色类型的名称（用于日志）
func (k ActorKind) String() string {
	switch k {
	case ActorPlayer:
		return "player"
	case ActorEnemy:
		return "enemy"
	default:
		return "unknown"
	}
}

// ProjectileSide 标记镭射来自哪一方
// 镭射只会伤害对立一方，创建后不可修改
type ProjectileSide int

const (
	FromPlayer ProjectileSide = iota // 玩家发射，只伤害敌机
	FromEnemy                        // 敌机发射，只伤害玩家
)

// String 返回阵营名称（用于日志）
func (s ProjectileSide) String() string {
	if s == FromPlayer {
		return "from_player"
	}
	return "from_enemy"
}
