package components

import "github.com/gonewx/starlaser/pkg/types"

// SpriteComponent 存储实体的视觉类型
// 核心逻辑不加载图像，只把视觉类型交给渲染端，并据此查询碰撞半尺寸
type SpriteComponent struct {
	Kind types.SpriteKind
}
