package entities

import (
	"fmt"

	"github.com/gonewx/starlaser/pkg/components"
	"github.com/gonewx/starlaser/pkg/config"
	"github.com/gonewx/starlaser/pkg/ecs"
	"github.com/gonewx/starlaser/pkg/types"
)

// NewLaser 创建镭射实体
// 玩家镭射向上飞行，敌机镭射向下飞行；阵营在创建后不再改变
//
// 参数:
//   - em: 实体管理器
//   - cfg: 游戏配置（速度系数）
//   - side: 发射方
//   - x, y: 镭射中心的世界坐标
//
// 返回:
//   - ecs.EntityID: 创建的镭射实体ID，失败返回 0
//   - error: 参数无效时返回错误
func NewLaser(em *ecs.EntityManager, cfg *config.GameConfig, side types.ProjectileSide, x, y float64) (ecs.EntityID, error) {
	if em == nil {
		return 0, fmt.Errorf("entity manager cannot be nil")
	}
	if cfg == nil {
		return 0, fmt.Errorf("game config cannot be nil")
	}

	sprite := types.LaserSprite(side)
	dirY := -1.0
	if side == types.FromPlayer {
		dirY = 1.0
	}

	entityID := em.CreateEntity()

	ecs.AddComponent(em, entityID, &components.ProjectileComponent{Side: side})
	ecs.AddComponent(em, entityID, &components.SpriteComponent{Kind: sprite})
	ecs.AddComponent(em, entityID, &components.PositionComponent{X: x, Y: y})
	ecs.AddComponent(em, entityID, &components.VelocityComponent{VX: 0, VY: dirY})
	ecs.AddComponent(em, entityID, &components.SpeedFactorComponent{
		Factor: cfg.SpeedFactor(sprite),
	})

	return entityID, nil
}
