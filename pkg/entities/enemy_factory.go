package entities

import (
	"fmt"

	"github.com/gonewx/starlaser/pkg/components"
	"github.com/gonewx/starlaser/pkg/config"
	"github.com/gonewx/starlaser/pkg/ecs"
	"github.com/gonewx/starlaser/pkg/types"
)

// EnemyFireTimerName 敌机开火计时器名称
const EnemyFireTimerName = "enemy_fire"

// NewEnemy 创建敌机实体
// 敌机向下飞行，并携带自己的开火计时器（每架敌机独立计时）
//
// 参数:
//   - em: 实体管理器
//   - cfg: 游戏配置（速度系数、开火周期）
//   - x, y: 敌机中心的世界坐标
//
// 返回:
//   - ecs.EntityID: 创建的敌机实体ID，失败返回 0
//   - error: 参数无效或开火周期非法时返回错误
func NewEnemy(em *ecs.EntityManager, cfg *config.GameConfig, x, y float64) (ecs.EntityID, error) {
	if em == nil {
		return 0, fmt.Errorf("entity manager cannot be nil")
	}
	if cfg == nil {
		return 0, fmt.Errorf("game config cannot be nil")
	}

	fireTimer, err := components.NewRepeatingTimer(EnemyFireTimerName, cfg.Timers.EnemyFire)
	if err != nil {
		return 0, fmt.Errorf("failed to create enemy fire timer: %w", err)
	}

	entityID := em.CreateEntity()

	ecs.AddComponent(em, entityID, &components.ActorComponent{Kind: types.ActorEnemy})
	ecs.AddComponent(em, entityID, &components.SpriteComponent{Kind: types.SpriteEnemy})
	ecs.AddComponent(em, entityID, &components.PositionComponent{X: x, Y: y})
	ecs.AddComponent(em, entityID, &components.VelocityComponent{VX: 0, VY: -1})
	ecs.AddComponent(em, entityID, &components.SpeedFactorComponent{
		Factor: cfg.SpeedFactor(types.SpriteEnemy),
	})
	ecs.AddComponent(em, entityID, fireTimer)

	return entityID, nil
}
