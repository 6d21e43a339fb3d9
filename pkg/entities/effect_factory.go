package entities

import (
	"fmt"

	"github.com/gonewx/starlaser/pkg/components"
	"github.com/gonewx/starlaser/pkg/ecs"
	"github.com/gonewx/starlaser/pkg/types"
)

// NewExplosionEffect 创建命中爆炸效果实体
// 爆炸在指定位置从零扩张到 maxRadius，生命周期结束后自动消失
//
// 参数:
//   - em: 实体管理器（渲染端的效果世界）
//   - source: 被击毁的一方
//   - x, y: 爆炸中心的世界坐标（通常为命中时镭射的位置）
//   - maxRadius: 最大半径（像素）
//   - duration: 持续时间（秒）
//
// 返回:
//   - ecs.EntityID: 创建的效果实体ID，如果失败返回 0
//   - error: 如果创建失败返回错误信息
func NewExplosionEffect(em *ecs.EntityManager, source types.ActorKind, x, y, maxRadius, duration float64) (ecs.EntityID, error) {
	if em == nil {
		return 0, fmt.Errorf("entity manager cannot be nil")
	}
	if !(duration > 0) {
		return 0, fmt.Errorf("explosion duration must be > 0, got %v", duration)
	}

	entityID := em.CreateEntity()

	ecs.AddComponent(em, entityID, &components.PositionComponent{X: x, Y: y})
	ecs.AddComponent(em, entityID, &components.ExplosionComponent{
		Source:    source,
		MaxRadius: maxRadius,
	})
	ecs.AddComponent(em, entityID, &components.LifetimeComponent{MaxLifetime: duration})

	return entityID, nil
}
