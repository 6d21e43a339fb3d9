package systems

import (
	"go.uber.org/zap"

	"github.com/gonewx/starlaser/pkg/components"
	"github.com/gonewx/starlaser/pkg/config"
	"github.com/gonewx/starlaser/pkg/ecs"
	"github.com/gonewx/starlaser/pkg/entities"
	"github.com/gonewx/starlaser/pkg/logger"
	"github.com/gonewx/starlaser/pkg/types"
)

// EnemyFireSystem 敌机开火
// 每架敌机携带独立的开火计时器，到期时在机头下方生成一道向下的镭射。
// 开火节奏与敌机数量无关：N 架敌机每个周期各开火一次。
type EnemyFireSystem struct {
	entityManager *ecs.EntityManager
	config        *config.GameConfig
	logger        *zap.Logger
	enemyHalfH    float64
}

// NewEnemyFireSystem 创建敌机开火系统
func NewEnemyFireSystem(em *ecs.EntityManager, cfg *config.GameConfig, log *zap.Logger) *EnemyFireSystem {
	_, halfH := cfg.HalfExtents(types.SpriteEnemy)
	return &EnemyFireSystem{
		entityManager: em,
		config:        cfg,
		logger:        logger.OrNop(log).Named("EnemyFireSystem"),
		enemyHalfH:    halfH,
	}
}

// Update 推进所有敌机的开火计时器
func (s *EnemyFireSystem) Update(deltaTime float64) {
	for _, enemyID := range FindEnemies(s.entityManager) {
		timer, ok := ecs.GetComponent[*components.TimerComponent](s.entityManager, enemyID)
		if !ok {
			continue
		}
		pos, ok := ecs.GetComponent[*components.PositionComponent](s.entityManager, enemyID)
		if !ok {
			continue
		}

		if !timer.Tick(deltaTime) {
			continue
		}

		laserID, err := entities.NewLaser(s.entityManager, s.config, types.FromEnemy, pos.X, pos.Y-s.enemyHalfH)
		if err != nil {
			s.logger.Warn("failed to spawn enemy laser", zap.Error(err))
			continue
		}
		s.logger.Debug("enemy fired",
			zap.Uint64("enemy", uint64(enemyID)),
			zap.Uint64("laser", uint64(laserID)))
	}
}
