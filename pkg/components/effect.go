package components

import "github.com/gonewx/starlaser/pkg/types"

// ExplosionComponent 命中爆炸效果
// 只存在于渲染端的效果世界中，不参与碰撞和边界回收
type ExplosionComponent struct {
	Source    types.ActorKind // 被击毁的一方，决定颜色
	MaxRadius float64         // 生命周期结束时的半径（像素）
}
