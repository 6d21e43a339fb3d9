package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/cespare/xxhash/v2"
	"github.com/gonewx/starlaser/pkg/types"
	"gopkg.in/yaml.v3"
)

// Format 配置文件格式
type Format string

const (
	FormatYAML Format = "yaml"
	FormatTOML Format = "toml"
)

// GameConfig 游戏配置
//
// 配置文件位置: data/game.yaml（也接受 .toml）
// 未出现在文件中的字段保留 DefaultGameConfig 的默认值。
type GameConfig struct {
	Window  WindowConfig  `yaml:"window" toml:"window"`
	Sprites SpriteConfig  `yaml:"sprites" toml:"sprites"`
	Speed   SpeedConfig   `yaml:"speed" toml:"speed"`
	Timers  TimerConfig   `yaml:"timers" toml:"timers"`
	Player  PlayerConfig  `yaml:"player" toml:"player"`
	Logging LoggingConfig `yaml:"logging" toml:"logging"`

	// Seed 随机种子文本，为空表示使用当前时间
	// 同一种子 + 同一输入序列 → 完全相同的对局
	Seed string `yaml:"seed" toml:"seed"`
}

// WindowConfig 窗口（游戏区域）尺寸，启动时读取一次，之后不再变化
type WindowConfig struct {
	Width  float64 `yaml:"width" toml:"width"`
	Height float64 `yaml:"height" toml:"height"`
	Title  string  `yaml:"title" toml:"title"`
}

// SpriteSize 精灵原始尺寸（像素，缩放前）
type SpriteSize struct {
	Width  float64 `yaml:"width" toml:"width"`
	Height float64 `yaml:"height" toml:"height"`
}

// SpriteConfig 精灵缩放比例和各视觉类型的原始尺寸
type SpriteConfig struct {
	Scale       float64    `yaml:"scale" toml:"scale"`
	Player      SpriteSize `yaml:"player" toml:"player"`
	PlayerLaser SpriteSize `yaml:"playerLaser" toml:"playerLaser"`
	Enemy       SpriteSize `yaml:"enemy" toml:"enemy"`
	EnemyLaser  SpriteSize `yaml:"enemyLaser" toml:"enemyLaser"`
}

// SpeedConfig 基础速度和各类实体的速度系数
type SpeedConfig struct {
	Base        float64 `yaml:"base" toml:"base"`
	Player      float64 `yaml:"player" toml:"player"`
	PlayerLaser float64 `yaml:"playerLaser" toml:"playerLaser"`
	Enemy       float64 `yaml:"enemy" toml:"enemy"`
	EnemyLaser  float64 `yaml:"enemyLaser" toml:"enemyLaser"`
}

// TimerConfig 生成计时器周期（秒）
type TimerConfig struct {
	EnemySpawn float64 `yaml:"enemySpawn" toml:"enemySpawn"`
	EnemyFire  float64 `yaml:"enemyFire" toml:"enemyFire"`
}

// PlayerConfig 玩家相关参数
type PlayerConfig struct {
	// LaserOffsetY 玩家镭射生成点相对玩家中心的垂直偏移（像素，向上为正）
	LaserOffsetY float64 `yaml:"laserOffsetY" toml:"laserOffsetY"`
}

// LoggingConfig 日志配置
type LoggingConfig struct {
	Level  string `yaml:"level" toml:"level"`
	Format string `yaml:"format" toml:"format"` // "json" 或 "console"
	// Output 日志输出文件，为空时输出到 stderr
	// 终端版占用整个终端，需要写到文件
	Output string `yaml:"output,omitempty" toml:"output,omitempty"`
}

// PlayArea 游戏区域尺寸
type PlayArea struct {
	Width  float64
	Height float64
}

// HalfWidth 返回半宽
func (p PlayArea) HalfWidth() float64 {
	return p.Width / 2
}

// HalfHeight 返回半高
func (p PlayArea) HalfHeight() float64 {
	return p.Height / 2
}

// DefaultGameConfig 返回默认配置（取值见 unit_config.go）
func DefaultGameConfig() *GameConfig {
	return &GameConfig{
		Window: WindowConfig{
			Width:  GameWindowWidth,
			Height: GameWindowHeight,
			Title:  "Star Laser",
		},
		Sprites: SpriteConfig{
			Scale:       SpriteScale,
			Player:      SpriteSize{Width: PlayerSpriteWidth, Height: PlayerSpriteHeight},
			PlayerLaser: SpriteSize{Width: PlayerLaserSpriteWidth, Height: PlayerLaserSpriteHeight},
			Enemy:       SpriteSize{Width: EnemySpriteWidth, Height: EnemySpriteHeight},
			EnemyLaser:  SpriteSize{Width: EnemyLaserSpriteWidth, Height: EnemyLaserSpriteHeight},
		},
		Speed: SpeedConfig{
			Base:        BaseMovementSpeed,
			Player:      PlayerSpeedFactor,
			PlayerLaser: PlayerLaserSpeedFactor,
			Enemy:       EnemySpeedFactor,
			EnemyLaser:  EnemyLaserSpeedFactor,
		},
		Timers: TimerConfig{
			EnemySpawn: EnemySpawnInterval,
			EnemyFire:  EnemyFireInterval,
		},
		Player: PlayerConfig{
			// 镭射出现在玩家中心上方一个（缩放后）精灵高度处
			LaserOffsetY: PlayerSpriteHeight * SpriteScale,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
	}
}

// LoadGameConfig 加载游戏配置
//
// 根据扩展名选择格式：.toml 使用 TOML，其余按 YAML 解析。
//
// 参数:
//   - path: 配置文件路径（如 "data/game.yaml"）
//
// 返回:
//   - *GameConfig: 加载并校验后的配置
//   - error: 读取、解析或校验失败时返回错误
func LoadGameConfig(path string) (*GameConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read game config %s: %w", path, err)
	}

	format := FormatYAML
	if strings.EqualFold(filepath.Ext(path), ".toml") {
		format = FormatTOML
	}

	cfg, err := ParseGameConfig(data, format)
	if err != nil {
		return nil, fmt.Errorf("game config %s: %w", path, err)
	}
	return cfg, nil
}

// ParseGameConfig 从内存数据解析游戏配置（用于嵌入资源）
func ParseGameConfig(data []byte, format Format) (*GameConfig, error) {
	cfg := DefaultGameConfig()

	switch format {
	case FormatTOML:
		if err := toml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse toml: %w", err)
		}
	case FormatYAML, "":
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse yaml: %w", err)
		}
	default:
		return nil, fmt.Errorf("unsupported config format %q", format)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid game config: %w", err)
	}
	return cfg, nil
}

// Validate 验证配置有效性
//
// 检查：
//   - 窗口宽度非负，窗口高度、精灵尺寸、缩放比例为正
//   - 基础速度和所有速度系数为正
//   - 计时器周期为正（0 或负数会导致无限生成）
//
// 返回:
//   - error: 验证失败时返回错误，成功返回 nil
func (c *GameConfig) Validate() error {
	// 宽度为 0 时敌机只在 X=0 处生成，仍然合法
	// !(x >= 0) 同时拒绝 NaN
	if !(c.Window.Width >= 0) {
		return fmt.Errorf("window.width must be >= 0, got %v", c.Window.Width)
	}

	positive := []struct {
		name  string
		value float64
	}{
		{"window.height", c.Window.Height},
		{"sprites.scale", c.Sprites.Scale},
		{"sprites.player.width", c.Sprites.Player.Width},
		{"sprites.player.height", c.Sprites.Player.Height},
		{"sprites.playerLaser.width", c.Sprites.PlayerLaser.Width},
		{"sprites.playerLaser.height", c.Sprites.PlayerLaser.Height},
		{"sprites.enemy.width", c.Sprites.Enemy.Width},
		{"sprites.enemy.height", c.Sprites.Enemy.Height},
		{"sprites.enemyLaser.width", c.Sprites.EnemyLaser.Width},
		{"sprites.enemyLaser.height", c.Sprites.EnemyLaser.Height},
		{"speed.base", c.Speed.Base},
		{"speed.player", c.Speed.Player},
		{"speed.playerLaser", c.Speed.PlayerLaser},
		{"speed.enemy", c.Speed.Enemy},
		{"speed.enemyLaser", c.Speed.EnemyLaser},
		{"timers.enemySpawn", c.Timers.EnemySpawn},
		{"timers.enemyFire", c.Timers.EnemyFire},
	}

	for _, p := range positive {
		// !(x > 0) 同时拒绝 NaN
		if !(p.value > 0) {
			return fmt.Errorf("%s must be > 0, got %v", p.name, p.value)
		}
	}

	return nil
}

// PlayArea 返回游戏区域尺寸
func (c *GameConfig) PlayArea() PlayArea {
	return PlayArea{Width: c.Window.Width, Height: c.Window.Height}
}

// spriteSize 返回指定视觉类型的原始尺寸
func (c *GameConfig) spriteSize(kind types.SpriteKind) SpriteSize {
	switch kind {
	case types.SpritePlayer:
		return c.Sprites.Player
	case types.SpritePlayerLaser:
		return c.Sprites.PlayerLaser
	case types.SpriteEnemy:
		return c.Sprites.Enemy
	case types.SpriteEnemyLaser:
		return c.Sprites.EnemyLaser
	default:
		return SpriteSize{}
	}
}

// ScaledSize 返回指定视觉类型缩放后的宽高
func (c *GameConfig) ScaledSize(kind types.SpriteKind) (width, height float64) {
	size := c.spriteSize(kind)
	return size.Width * c.Sprites.Scale, size.Height * c.Sprites.Scale
}

// HalfExtents 返回指定视觉类型的碰撞半宽、半高
func (c *GameConfig) HalfExtents(kind types.SpriteKind) (halfWidth, halfHeight float64) {
	w, h := c.ScaledSize(kind)
	return w / 2, h / 2
}

// SpeedFactor 返回指定视觉类型的速度系数
func (c *GameConfig) SpeedFactor(kind types.SpriteKind) float64 {
	switch kind {
	case types.SpritePlayer:
		return c.Speed.Player
	case types.SpritePlayerLaser:
		return c.Speed.PlayerLaser
	case types.SpriteEnemy:
		return c.Speed.Enemy
	case types.SpriteEnemyLaser:
		return c.Speed.EnemyLaser
	default:
		return 0
	}
}

// RandSeed 将文本种子转换为随机数种子
//
// 返回:
//   - seed: xxhash(Seed) 的结果
//   - ok: Seed 为空时返回 false，调用方应改用时间种子
func (c *GameConfig) RandSeed() (seed int64, ok bool) {
	if c.Seed == "" {
		return 0, false
	}
	return int64(xxhash.Sum64String(c.Seed)), true
}
