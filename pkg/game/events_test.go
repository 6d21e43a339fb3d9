package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHitBusPublishAndDrain(t *testing.T) {
	bus := NewHitBus()

	var heard []HitKind
	bus.Subscribe(func(evt HitEvent) {
		heard = append(heard, evt.Kind)
	})
	bus.Subscribe(nil) // 忽略 nil 订阅者

	bus.Publish(HitEvent{Kind: HitEnemy, Laser: 3, Target: 2})
	bus.Publish(HitEvent{Kind: HitPlayer, Laser: 5, Target: 1})

	// 订阅者同步收到
	assert.Equal(t, []HitKind{HitEnemy, HitPlayer}, heard)

	events := bus.Drain()
	assert.Len(t, events, 2)
	assert.Equal(t, HitEnemy, events[0].Kind)
	assert.Nil(t, bus.Drain())
}

func TestHitKindString(t *testing.T) {
	assert.Equal(t, "enemy_hit", HitEnemy.String())
	assert.Equal(t, "player_hit", HitPlayer.String())
}
