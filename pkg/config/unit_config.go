package config

// 单位配置常量
// 本文件定义了游戏单位（玩家、敌机、镭射）的默认尺寸、速度和生成节奏，
// 作为 DefaultGameConfig 的取值来源

// Window Configuration (窗口配置)
const (
	// GameWindowWidth 默认游戏区域宽度（像素）
	GameWindowWidth = 598

	// GameWindowHeight 默认游戏区域高度（像素）
	GameWindowHeight = 676
)

// Sprite Configuration (精灵配置)
const (
	// SpriteScale 所有精灵的缩放比例
	SpriteScale = 0.5

	// PlayerSpriteWidth 玩家精灵原始宽度（像素）
	PlayerSpriteWidth = 144.0
	// PlayerSpriteHeight 玩家精灵原始高度（像素）
	PlayerSpriteHeight = 75.0

	// PlayerLaserSpriteWidth 玩家镭射精灵原始宽度（像素）
	PlayerLaserSpriteWidth = 9.0
	// PlayerLaserSpriteHeight 玩家镭射精灵原始高度（像素）
	PlayerLaserSpriteHeight = 54.0

	// EnemySpriteWidth 敌机精灵原始宽度（像素）
	EnemySpriteWidth = 93.0
	// EnemySpriteHeight 敌机精灵原始高度（像素）
	EnemySpriteHeight = 84.0

	// EnemyLaserSpriteWidth 敌机镭射精灵原始宽度（像素）
	EnemyLaserSpriteWidth = 17.0
	// EnemyLaserSpriteHeight 敌机镭射精灵原始高度（像素）
	EnemyLaserSpriteHeight = 55.0
)

// Movement Configuration (移动配置)
const (
	// BaseMovementSpeed 基础移动速度（像素/秒）
	// 实际速度 = 基础速度 × 速度系数
	BaseMovementSpeed = 500.0

	// PlayerSpeedFactor 玩家速度系数
	PlayerSpeedFactor = 1.0

	// PlayerLaserSpeedFactor 玩家镭射速度系数
	PlayerLaserSpeedFactor = 1.0

	// EnemySpeedFactor 敌机速度系数
	// 敌机明显慢于玩家，给玩家反应时间
	EnemySpeedFactor = 0.3

	// EnemyLaserSpeedFactor 敌机镭射速度系数
	EnemyLaserSpeedFactor = 0.6
)

// Spawn Configuration (生成节奏配置)
const (
	// EnemySpawnInterval 敌机生成间隔（秒）
	EnemySpawnInterval = 2.0

	// EnemyFireInterval 每架敌机的开火间隔（秒）
	EnemyFireInterval = 0.5
)
