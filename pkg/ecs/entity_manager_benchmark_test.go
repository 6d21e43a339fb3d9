package ecs

import (
	"reflect"
	"testing"
)

// ========== 测试组件定义 ==========

type benchPosition struct {
	X, Y float64
}

type benchVelocity struct {
	VX, VY float64
}

type benchTag struct {
	Kind int
}

// setupBenchmarkEntities 创建 count 个实体，每三个实体中有一个缺少速度组件
func setupBenchmarkEntities(count int) *EntityManager {
	em := NewEntityManager()
	for i := 0; i < count; i++ {
		id := em.CreateEntity()
		AddComponent(em, id, &benchPosition{X: float64(i), Y: float64(i * 2)})
		AddComponent(em, id, &benchTag{Kind: i % 2})
		if i%3 != 0 {
			AddComponent(em, id, &benchVelocity{VY: -1})
		}
	}
	return em
}

// BenchmarkGetEntitiesWith_Reflection 反射版本查询 1000 实体（3组件）
func BenchmarkGetEntitiesWith_Reflection(b *testing.B) {
	em := setupBenchmarkEntities(1000)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = em.GetEntitiesWith(
			reflect.TypeOf(&benchPosition{}),
			reflect.TypeOf(&benchVelocity{}),
			reflect.TypeOf(&benchTag{}),
		)
	}
}

// BenchmarkGetEntitiesWith_Generic 泛型版本查询 1000 实体（3组件）
func BenchmarkGetEntitiesWith_Generic(b *testing.B) {
	em := setupBenchmarkEntities(1000)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = GetEntitiesWith3[*benchPosition, *benchVelocity, *benchTag](em)
	}
}

// BenchmarkGetComponent_Generic 泛型组件读取
func BenchmarkGetComponent_Generic(b *testing.B) {
	em := setupBenchmarkEntities(1000)
	id := EntityID(500)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		pos, ok := GetComponent[*benchPosition](em, id)
		if !ok || pos == nil {
			b.Fatal("component not found")
		}
	}
}

// BenchmarkMovementTick 模拟一次移动系统更新 + 销毁越界实体 + 清理
func BenchmarkMovementTick(b *testing.B) {
	em := setupBenchmarkEntities(1000)
	const dt = 1.0 / 60.0

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		for _, id := range GetEntitiesWith2[*benchPosition, *benchVelocity](em) {
			pos, _ := GetComponent[*benchPosition](em, id)
			vel, _ := GetComponent[*benchVelocity](em, id)
			pos.X += vel.VX * dt
			pos.Y += vel.VY * dt
			if pos.Y < -1000 {
				em.DestroyEntity(id)
			}
		}
		em.RemoveMarkedEntities()
	}
}
