package systems

import (
	"go.uber.org/zap"

	"github.com/gonewx/starlaser/pkg/components"
	"github.com/gonewx/starlaser/pkg/config"
	"github.com/gonewx/starlaser/pkg/ecs"
	"github.com/gonewx/starlaser/pkg/game"
	"github.com/gonewx/starlaser/pkg/logger"
	"github.com/gonewx/starlaser/pkg/types"
	"github.com/gonewx/starlaser/pkg/utils"
)

// CollisionSystem 处理镭射与角色之间的碰撞检测
//
// 两个独立的检测：
//   - 敌机镭射 vs 玩家：命中时销毁镭射和玩家
//   - 玩家镭射 vs 敌机：命中时销毁镭射和该敌机
//
// 镭射只伤害对立一方。碰撞盒中心对齐实体位置，半尺寸按视觉类型从配置中查询。
type CollisionSystem struct {
	em     *ecs.EntityManager
	config *config.GameConfig
	hits   *game.HitBus
	logger *zap.Logger
}

// NewCollisionSystem 创建碰撞系统
//
// 参数:
//   - em: 实体管理器，用于查询和销毁实体
//   - cfg: 游戏配置，提供各视觉类型的碰撞半尺寸
//   - hits: 命中事件总线，每次命中发布一个事件
//   - log: 日志记录器，可为 nil
func NewCollisionSystem(em *ecs.EntityManager, cfg *config.GameConfig, hits *game.HitBus, log *zap.Logger) *CollisionSystem {
	return &CollisionSystem{
		em:     em,
		config: cfg,
		hits:   hits,
		logger: logger.OrNop(log).Named("CollisionSystem"),
	}
}

// boundsOf 计算实体的AABB
func (cs *CollisionSystem) boundsOf(id ecs.EntityID) (utils.AABB, bool) {
	pos, ok := ecs.GetComponent[*components.PositionComponent](cs.em, id)
	if !ok {
		return utils.AABB{}, false
	}
	sprite, ok := ecs.GetComponent[*components.SpriteComponent](cs.em, id)
	if !ok {
		return utils.AABB{}, false
	}
	halfW, halfH := cs.config.HalfExtents(sprite.Kind)
	return utils.NewAABB(pos.X, pos.Y, halfW, halfH), true
}

// Update 执行两轮碰撞检测
//
// 参数:
//   - deltaTime: 自上一帧以来经过的时间（秒），本系统不使用
func (cs *CollisionSystem) Update(deltaTime float64) {
	cs.enemyLasersVsPlayer()
	cs.playerLasersVsEnemies()
}

// enemyLasersVsPlayer 敌机镭射 vs 玩家
// 玩家的碰撞盒在检测开始时取一次：同一帧多道镭射命中时，
// 每道镭射都被销毁，但只有真正销毁玩家的那道发布命中事件
func (cs *CollisionSystem) enemyLasersVsPlayer() {
	playerID, ok := FindPlayer(cs.em)
	if !ok {
		return
	}
	playerBox, ok := cs.boundsOf(playerID)
	if !ok {
		return
	}

	for _, laserID := range FindLasers(cs.em, types.FromEnemy) {
		laserBox, ok := cs.boundsOf(laserID)
		if !ok {
			continue
		}
		if !laserBox.Intersects(playerBox) {
			continue
		}

		cs.em.DestroyEntity(laserID)
		if !cs.em.DestroyEntity(playerID) {
			continue
		}
		cs.logger.Info("player destroyed",
			zap.Uint64("laser", uint64(laserID)),
			zap.Float64("x", playerBox.Center.X),
			zap.Float64("y", playerBox.Center.Y))

		cs.hits.Publish(game.HitEvent{
			Kind:   game.HitPlayer,
			Laser:  laserID,
			Target: playerID,
			X:      laserBox.Center.X,
			Y:      laserBox.Center.Y,
		})
	}
}

// playerLasersVsEnemies 玩家镭射 vs 敌机
// 一道镭射最多击毁一架敌机；已被击毁的敌机在本帧后续比较中被跳过
func (cs *CollisionSystem) playerLasersVsEnemies() {
	enemies := FindEnemies(cs.em)
	if len(enemies) == 0 {
		return
	}

	for _, laserID := range FindLasers(cs.em, types.FromPlayer) {
		laserBox, ok := cs.boundsOf(laserID)
		if !ok {
			continue
		}

		for _, enemyID := range enemies {
			if !cs.em.IsAlive(enemyID) {
				continue
			}
			enemyBox, ok := cs.boundsOf(enemyID)
			if !ok {
				continue
			}
			if !laserBox.Intersects(enemyBox) {
				continue
			}

			// 碰撞发生：销毁镭射和敌机
			cs.em.DestroyEntity(laserID)
			cs.em.DestroyEntity(enemyID)

			cs.hits.Publish(game.HitEvent{
				Kind:   game.HitEnemy,
				Laser:  laserID,
				Target: enemyID,
				X:      laserBox.Center.X,
				Y:      laserBox.Center.Y,
			})
			cs.logger.Debug("enemy destroyed",
				zap.Uint64("laser", uint64(laserID)),
				zap.Uint64("enemy", uint64(enemyID)))

			// 镭射已销毁，不再与其他敌机比较
			break
		}
	}
}
