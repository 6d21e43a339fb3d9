package systems

import (
	"github.com/gonewx/starlaser/pkg/components"
	"github.com/gonewx/starlaser/pkg/ecs"
	"github.com/gonewx/starlaser/pkg/utils"
)

// MovementSystem 按速度推进所有可移动实体的位置
//
// 位移 = 归一化(速度方向) × 基础速度 × 速度系数 × deltaTime
// 方向与速率解耦：VelocityComponent 只决定方向，SpeedFactorComponent 决定快慢
type MovementSystem struct {
	entityManager *ecs.EntityManager
	baseSpeed     float64 // 基础移动速度（像素/秒）
}

// NewMovementSystem 创建移动系统
func NewMovementSystem(em *ecs.EntityManager, baseSpeed float64) *MovementSystem {
	return &MovementSystem{
		entityManager: em,
		baseSpeed:     baseSpeed,
	}
}

// Update 更新所有同时拥有位置、速度、速度系数组件的实体
// 缺少任一组件的实体被跳过
func (s *MovementSystem) Update(deltaTime float64) {
	entities := ecs.GetEntitiesWith3[
		*components.PositionComponent,
		*components.VelocityComponent,
		*components.SpeedFactorComponent,
	](s.entityManager)

	for _, id := range entities {
		pos, ok := ecs.GetComponent[*components.PositionComponent](s.entityManager, id)
		if !ok {
			continue
		}
		vel, ok := ecs.GetComponent[*components.VelocityComponent](s.entityManager, id)
		if !ok {
			continue
		}
		speed, ok := ecs.GetComponent[*components.SpeedFactorComponent](s.entityManager, id)
		if !ok {
			continue
		}

		step := utils.NormalizeOrZero(utils.Vec2{X: vel.VX, Y: vel.VY}).
			Scale(s.baseSpeed * speed.Factor * deltaTime)
		pos.X += step.X
		pos.Y += step.Y
	}
}
