package systems

import (
	"github.com/gonewx/starlaser/pkg/components"
	"github.com/gonewx/starlaser/pkg/ecs"
	"github.com/gonewx/starlaser/pkg/types"
)

// InputSignals 一帧的输入信号（已去抖）
// 由渲染端（Ebiten、终端）采集，核心逻辑从不直接查询设备状态
type InputSignals struct {
	MoveLeft  bool // 左移键按住
	MoveRight bool // 右移键按住
	FireEdge  bool // 开火键在本帧从松开变为按下（按住不连发）
}

// PlayerControlSystem 根据输入设置玩家水平速度
type PlayerControlSystem struct {
	entityManager *ecs.EntityManager
}

// NewPlayerControlSystem 创建玩家控制系统
func NewPlayerControlSystem(em *ecs.EntityManager) *PlayerControlSystem {
	return &PlayerControlSystem{entityManager: em}
}

// Update 设置玩家速度；玩家不存在时不做任何事
// 同时按下左右键时左移优先
func (s *PlayerControlSystem) Update(deltaTime float64, input InputSignals) {
	playerID, ok := FindPlayer(s.entityManager)
	if !ok {
		return
	}
	vel, ok := ecs.GetComponent[*components.VelocityComponent](s.entityManager, playerID)
	if !ok {
		return
	}

	switch {
	case input.MoveLeft:
		vel.VX = -1
	case input.MoveRight:
		vel.VX = 1
	default:
		vel.VX = 0
	}
}

// FindPlayer 查找唯一的玩家实体
//
// 返回:
//   - ecs.EntityID: 玩家实体ID
//   - bool: 玩家不存在（尚未生成或已被击毁）时返回 false
func FindPlayer(em *ecs.EntityManager) (ecs.EntityID, bool) {
	for _, id := range ecs.GetEntitiesWith1[*components.ActorComponent](em) {
		actor, ok := ecs.GetComponent[*components.ActorComponent](em, id)
		if ok && actor.Kind == types.ActorPlayer {
			return id, true
		}
	}
	return 0, false
}

// FindEnemies 返回所有存活敌机（按ID升序）
func FindEnemies(em *ecs.EntityManager) []ecs.EntityID {
	return findActors(em, types.ActorEnemy)
}

func findActors(em *ecs.EntityManager, kind types.ActorKind) []ecs.EntityID {
	result := make([]ecs.EntityID, 0)
	for _, id := range ecs.GetEntitiesWith1[*components.ActorComponent](em) {
		actor, ok := ecs.GetComponent[*components.ActorComponent](em, id)
		if ok && actor.Kind == kind {
			result = append(result, id)
		}
	}
	return result
}

// FindLasers 返回指定阵营的所有存活镭射（按ID升序）
func FindLasers(em *ecs.EntityManager, side types.ProjectileSide) []ecs.EntityID {
	result := make([]ecs.EntityID, 0)
	for _, id := range ecs.GetEntitiesWith1[*components.ProjectileComponent](em) {
		proj, ok := ecs.GetComponent[*components.ProjectileComponent](em, id)
		if ok && proj.Side == side {
			result = append(result, id)
		}
	}
	return result
}
