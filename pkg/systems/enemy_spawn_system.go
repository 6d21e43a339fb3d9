package systems

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/gonewx/starlaser/pkg/components"
	"github.com/gonewx/starlaser/pkg/config"
	"github.com/gonewx/starlaser/pkg/ecs"
	"github.com/gonewx/starlaser/pkg/entities"
	"github.com/gonewx/starlaser/pkg/logger"
	"github.com/gonewx/starlaser/pkg/types"
)

// EnemySpawnTimerName 敌机生成计时器名称
const EnemySpawnTimerName = "enemy_spawn"

// RandomSource 随机数来源，*rand.Rand 满足此接口
type RandomSource interface {
	// Float64 返回 [0, 1) 区间的均匀随机数
	Float64() float64
}

// EnemySpawnSystem 管理敌机的定时生成
// 每个周期在游戏区域上边界之外生成一架敌机，X 坐标在区域宽度内均匀随机
type EnemySpawnSystem struct {
	entityManager *ecs.EntityManager
	config        *config.GameConfig
	rng           RandomSource
	spawnTimer    *components.TimerComponent
	logger        *zap.Logger
	halfWidth     float64 // 生成X范围 [-halfWidth, halfWidth]
	spawnY        float64 // 生成Y坐标：上边界 + 敌机半高
}

// NewEnemySpawnSystem 创建敌机生成系统
//
// 参数:
//   - em: EntityManager 实例
//   - cfg: 游戏配置（生成周期、游戏区域、敌机尺寸）
//   - rng: 随机数来源
//   - log: 日志记录器，可为 nil
//
// 返回:
//   - *EnemySpawnSystem: 生成系统
//   - error: 生成周期非法时返回错误
func NewEnemySpawnSystem(em *ecs.EntityManager, cfg *config.GameConfig, rng RandomSource, log *zap.Logger) (*EnemySpawnSystem, error) {
	timer, err := components.NewRepeatingTimer(EnemySpawnTimerName, cfg.Timers.EnemySpawn)
	if err != nil {
		return nil, fmt.Errorf("enemy spawn system: %w", err)
	}

	area := cfg.PlayArea()
	_, enemyHalfH := cfg.HalfExtents(types.SpriteEnemy)

	s := &EnemySpawnSystem{
		entityManager: em,
		config:        cfg,
		rng:           rng,
		spawnTimer:    timer,
		logger:        logger.OrNop(log).Named("EnemySpawnSystem"),
		halfWidth:     area.HalfWidth(),
		spawnY:        area.HalfHeight() + enemyHalfH,
	}
	s.logger.Debug("initialized",
		zap.Float64("interval", cfg.Timers.EnemySpawn),
		zap.Float64("halfWidth", s.halfWidth),
		zap.Float64("spawnY", s.spawnY))
	return s, nil
}

// Update 更新敌机生成计时器，到期时生成一架敌机
func (s *EnemySpawnSystem) Update(deltaTime float64) {
	if !s.spawnTimer.Tick(deltaTime) {
		return
	}

	x := s.randomX()
	enemyID, err := entities.NewEnemy(s.entityManager, s.config, x, s.spawnY)
	if err != nil {
		s.logger.Warn("failed to spawn enemy", zap.Error(err))
		return
	}
	s.logger.Debug("spawned enemy",
		zap.Uint64("entity", uint64(enemyID)),
		zap.Float64("x", x),
		zap.Float64("y", s.spawnY))
}

// randomX 在 [-halfWidth, halfWidth] 内均匀取值；halfWidth 为 0 时恒为 0
func (s *EnemySpawnSystem) randomX() float64 {
	x := -s.halfWidth + s.rng.Float64()*2*s.halfWidth
	if x > s.halfWidth {
		x = s.halfWidth
	}
	return x
}
