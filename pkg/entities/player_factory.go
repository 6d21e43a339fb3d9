package entities

import (
	"fmt"

	"github.com/gonewx/starlaser/pkg/components"
	"github.com/gonewx/starlaser/pkg/config"
	"github.com/gonewx/starlaser/pkg/ecs"
	"github.com/gonewx/starlaser/pkg/types"
)

// NewPlayer 创建玩家飞船实体
// 玩家位于游戏区域底部中央，底边贴住下边界，初始静止
//
// 参数:
//   - em: 实体管理器
//   - cfg: 游戏配置（提供游戏区域和精灵尺寸）
//
// 返回:
//   - ecs.EntityID: 创建的玩家实体ID，失败返回 0
//   - error: 参数无效时返回错误
func NewPlayer(em *ecs.EntityManager, cfg *config.GameConfig) (ecs.EntityID, error) {
	if em == nil {
		return 0, fmt.Errorf("entity manager cannot be nil")
	}
	if cfg == nil {
		return 0, fmt.Errorf("game config cannot be nil")
	}

	_, scaledH := cfg.ScaledSize(types.SpritePlayer)
	bottom := -cfg.PlayArea().HalfHeight()

	return NewPlayerAt(em, cfg, 0, bottom+scaledH/2), nil
}

// NewPlayerAt 在指定位置创建玩家飞船实体（测试和重开局使用）
func NewPlayerAt(em *ecs.EntityManager, cfg *config.GameConfig, x, y float64) ecs.EntityID {
	entityID := em.CreateEntity()

	ecs.AddComponent(em, entityID, &components.ActorComponent{Kind: types.ActorPlayer})
	ecs.AddComponent(em, entityID, &components.SpriteComponent{Kind: types.SpritePlayer})
	ecs.AddComponent(em, entityID, &components.PositionComponent{X: x, Y: y})
	// 速度由 PlayerControlSystem 根据输入设置
	ecs.AddComponent(em, entityID, &components.VelocityComponent{})
	ecs.AddComponent(em, entityID, &components.SpeedFactorComponent{
		Factor: cfg.SpeedFactor(types.SpritePlayer),
	})

	return entityID
}
