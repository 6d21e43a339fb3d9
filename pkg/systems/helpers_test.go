package systems

import (
	"github.com/gonewx/starlaser/pkg/components"
	"github.com/gonewx/starlaser/pkg/config"
	"github.com/gonewx/starlaser/pkg/ecs"
)

// fixedRandom 返回固定值的随机数来源
type fixedRandom struct {
	value float64
}

func (r fixedRandom) Float64() float64 {
	return r.value
}

// sequenceRandom 依次返回给定的值，用尽后循环
type sequenceRandom struct {
	values []float64
	next   int
}

func (r *sequenceRandom) Float64() float64 {
	v := r.values[r.next%len(r.values)]
	r.next++
	return v
}

// newTestWorld 创建使用默认配置的实体管理器
func newTestWorld() (*ecs.EntityManager, *config.GameConfig) {
	return ecs.NewEntityManager(), config.DefaultGameConfig()
}

// positionOf 读取实体位置，实体不存在时返回 nil
func positionOf(em *ecs.EntityManager, id ecs.EntityID) *components.PositionComponent {
	pos, _ := ecs.GetComponent[*components.PositionComponent](em, id)
	return pos
}

// tickDuration 标准帧时长（60 FPS）
const tickDuration = 1.0 / 60.0
