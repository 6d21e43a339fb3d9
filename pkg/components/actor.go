package components

import "github.com/gonewx/starlaser/pkg/types"

// ActorComponent 标记实体为玩家或敌机
type ActorComponent struct {
	Kind types.ActorKind
}

// ProjectileComponent 标记实体为镭射，并记录发射方
// Side 在创建时设置，之后不再修改
type ProjectileComponent struct {
	Side types.ProjectileSide
}
