package ecs

import (
	"reflect"
	"slices"
)

// EntityID 是实体的唯一标识符
// ID 单调递增且永不复用，0 保留为无效 ID
type EntityID uint64

// EntityManager 管理所有实体和组件
//
// 销毁语义：
//   - DestroyEntity 立即让实体"死亡"：查询、GetComponent、IsAlive 都不再看到它
//   - 组件存储在 RemoveMarkedEntities 时才真正释放（每个 tick 结束时调用一次）
//   - 对已销毁或不存在的实体再次调用 DestroyEntity 是空操作
type EntityManager struct {
	nextID uint64
	// 实体-组件映射: EntityID -> ComponentType -> Component实例
	components map[EntityID]map[reflect.Type]interface{}
	// 已销毁但存储尚未释放的实体
	destroyed map[EntityID]struct{}
	// 待释放的实体ID列表（保持销毁顺序）
	entitiesToDestroy []EntityID
}

// NewEntityManager 创建一个新的 EntityManager 实例
func NewEntityManager() *EntityManager {
	return &EntityManager{
		nextID:            1, // ID从1开始,0保留为无效ID
		components:        make(map[EntityID]map[reflect.Type]interface{}),
		destroyed:         make(map[EntityID]struct{}),
		entitiesToDestroy: make([]EntityID, 0),
	}
}

// CreateEntity 创建新实体并返回唯一ID
func (em *EntityManager) CreateEntity() EntityID {
	id := EntityID(em.nextID)
	em.nextID++
	em.components[id] = make(map[reflect.Type]interface{})
	return id
}

// DestroyEntity 销毁实体
// 实体立即对后续系统不可见，存储在 RemoveMarkedEntities 时释放。
//
// 返回:
//   - bool: 本次调用是否真正销毁了一个存活实体（重复销毁返回 false）
func (em *EntityManager) DestroyEntity(id EntityID) bool {
	if !em.IsAlive(id) {
		return false
	}
	em.destroyed[id] = struct{}{}
	em.entitiesToDestroy = append(em.entitiesToDestroy, id)
	return true
}

// IsAlive 检查实体是否存在且未被销毁
func (em *EntityManager) IsAlive(id EntityID) bool {
	if _, exists := em.components[id]; !exists {
		return false
	}
	_, dead := em.destroyed[id]
	return !dead
}

// AddComponent 为实体添加组件
// 对已销毁或不存在的实体无效
func (em *EntityManager) AddComponent(id EntityID, component interface{}) {
	if !em.IsAlive(id) {
		return
	}
	em.components[id][reflect.TypeOf(component)] = component
}

// RemoveComponent 从实体移除指定类型的组件
func (em *EntityManager) RemoveComponent(id EntityID, componentType reflect.Type) {
	if !em.IsAlive(id) {
		return
	}
	delete(em.components[id], componentType)
}

// GetComponent 获取实体的特定类型组件
func (em *EntityManager) GetComponent(id EntityID, componentType reflect.Type) (interface{}, bool) {
	if !em.IsAlive(id) {
		return nil, false
	}
	comp, found := em.components[id][componentType]
	return comp, found
}

// HasComponent 检查实体是否拥有特定类型组件
func (em *EntityManager) HasComponent(id EntityID, componentType reflect.Type) bool {
	_, found := em.GetComponent(id, componentType)
	return found
}

// RemoveMarkedEntities 释放所有已销毁实体的存储
func (em *EntityManager) RemoveMarkedEntities() {
	for _, id := range em.entitiesToDestroy {
		delete(em.components, id)
		delete(em.destroyed, id)
	}
	em.entitiesToDestroy = em.entitiesToDestroy[:0] // 清空切片
}

// PendingRemovals 返回已销毁但尚未释放存储的实体数量
func (em *EntityManager) PendingRemovals() int {
	return len(em.entitiesToDestroy)
}

// Count 返回存活实体数量
func (em *EntityManager) Count() int {
	return len(em.components) - len(em.destroyed)
}

// GetEntitiesWith 查询拥有指定组件类型组合的所有存活实体
// 参数: componentTypes ...reflect.Type - 需要的组件类型列表
// 返回: []EntityID - 满足条件的实体ID列表（按ID升序，保证同一输入下结果可复现）
func (em *EntityManager) GetEntitiesWith(componentTypes ...reflect.Type) []EntityID {
	result := make([]EntityID, 0)

	for id, compMap := range em.components {
		if _, dead := em.destroyed[id]; dead {
			continue
		}
		hasAll := true
		for _, ct := range componentTypes {
			if _, found := compMap[ct]; !found {
				hasAll = false
				break
			}
		}
		if hasAll {
			result = append(result, id)
		}
	}

	slices.Sort(result)
	return result
}
