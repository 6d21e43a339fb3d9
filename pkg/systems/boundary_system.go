package systems

import (
	"go.uber.org/zap"

	"github.com/gonewx/starlaser/pkg/components"
	"github.com/gonewx/starlaser/pkg/config"
	"github.com/gonewx/starlaser/pkg/ecs"
	"github.com/gonewx/starlaser/pkg/logger"
)

// BoundarySystem 回收离开游戏区域的实体
//
//   - 敌机：Y < -半高（飞出底部）
//   - 镭射：Y > 半高 或 Y < -半高（飞出顶部或底部）
//
// 比较均为严格不等，恰好位于边界上的实体保留。
// 边界在创建时根据游戏区域计算一次，之后不再变化。
type BoundarySystem struct {
	entityManager *ecs.EntityManager
	logger        *zap.Logger
	top           float64
	bottom        float64
}

// NewBoundarySystem 创建边界回收系统
func NewBoundarySystem(em *ecs.EntityManager, area config.PlayArea, log *zap.Logger) *BoundarySystem {
	return &BoundarySystem{
		entityManager: em,
		logger:        logger.OrNop(log).Named("BoundarySystem"),
		top:           area.HalfHeight(),
		bottom:        -area.HalfHeight(),
	}
}

// Update 检查敌机和镭射的位置，越界即销毁
func (s *BoundarySystem) Update(deltaTime float64) {
	reaped := 0

	for _, id := range FindEnemies(s.entityManager) {
		pos, ok := ecs.GetComponent[*components.PositionComponent](s.entityManager, id)
		if !ok {
			continue
		}
		if pos.Y < s.bottom && s.entityManager.DestroyEntity(id) {
			reaped++
		}
	}

	lasers := ecs.GetEntitiesWith2[*components.ProjectileComponent, *components.PositionComponent](s.entityManager)
	for _, id := range lasers {
		pos, ok := ecs.GetComponent[*components.PositionComponent](s.entityManager, id)
		if !ok {
			continue
		}
		if (pos.Y > s.top || pos.Y < s.bottom) && s.entityManager.DestroyEntity(id) {
			reaped++
		}
	}

	if reaped > 0 {
		s.logger.Debug("reaped out-of-bounds entities", zap.Int("count", reaped))
	}
}
