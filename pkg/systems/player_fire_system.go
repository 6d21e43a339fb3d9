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

// PlayerFireSystem 玩家开火
// 开火键按下的那一帧，在玩家左右两侧（各偏移半个精灵宽度）同时生成两道向上的镭射
type PlayerFireSystem struct {
	entityManager *ecs.EntityManager
	config        *config.GameConfig
	logger        *zap.Logger
}

// NewPlayerFireSystem 创建玩家开火系统
func NewPlayerFireSystem(em *ecs.EntityManager, cfg *config.GameConfig, log *zap.Logger) *PlayerFireSystem {
	return &PlayerFireSystem{
		entityManager: em,
		config:        cfg,
		logger:        logger.OrNop(log).Named("PlayerFireSystem"),
	}
}

// Update 处理开火输入；玩家不存在或本帧没有开火边沿时不做任何事
func (s *PlayerFireSystem) Update(deltaTime float64, input InputSignals) {
	if !input.FireEdge {
		return
	}
	playerID, ok := FindPlayer(s.entityManager)
	if !ok {
		return
	}
	pos, ok := ecs.GetComponent[*components.PositionComponent](s.entityManager, playerID)
	if !ok {
		return
	}

	playerW, _ := s.config.ScaledSize(types.SpritePlayer)
	y := pos.Y + s.config.Player.LaserOffsetY

	for _, x := range []float64{pos.X - playerW/2, pos.X + playerW/2} {
		if _, err := entities.NewLaser(s.entityManager, s.config, types.FromPlayer, x, y); err != nil {
			s.logger.Warn("failed to spawn player laser", zap.Error(err))
		}
	}
	s.logger.Debug("player fired", zap.Float64("x", pos.X), zap.Float64("y", y))
}
