package game

import "github.com/gonewx/starlaser/pkg/ecs"

// HitKind 命中类型
type HitKind int

const (
	HitEnemy  HitKind = iota // 玩家镭射击中敌机
	HitPlayer                // 敌机镭射击中玩家
)

// String 返回命中类型名称（用于日志）
func (k HitKind) String() string {
	if k == HitEnemy {
		return "enemy_hit"
	}
	return "player_hit"
}

// HitEvent 命中通知
// 由碰撞系统发布，单向、无需确认
type HitEvent struct {
	Kind   HitKind
	Laser  ecs.EntityID // 命中的镭射
	Target ecs.EntityID // 被击中的玩家或敌机
	X, Y   float64      // 命中时镭射的位置
}

// HitListener 命中事件订阅者
type HitListener func(HitEvent)

// HitBus 命中事件总线
//
// Publish 时同步通知所有订阅者（如终端版的音效），
// 同时把事件放入队列，由计分系统在本 tick 末尾通过 Drain 取走。
// 只在单个 tick 线程中使用，不加锁。
type HitBus struct {
	listeners []HitListener
	pending   []HitEvent
}

// NewHitBus 创建命中事件总线
func NewHitBus() *HitBus {
	return &HitBus{
		pending: make([]HitEvent, 0, 8),
	}
}

// Subscribe 注册订阅者
func (b *HitBus) Subscribe(listener HitListener) {
	if listener == nil {
		return
	}
	b.listeners = append(b.listeners, listener)
}

// Publish 发布命中事件
func (b *HitBus) Publish(evt HitEvent) {
	b.pending = append(b.pending, evt)
	for _, l := range b.listeners {
		l(evt)
	}
}

// Drain 取走并清空队列中的事件
func (b *HitBus) Drain() []HitEvent {
	if len(b.pending) == 0 {
		return nil
	}
	events := b.pending
	b.pending = make([]HitEvent, 0, cap(events))
	return events
}
