package systems

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gonewx/starlaser/pkg/components"
	"github.com/gonewx/starlaser/pkg/ecs"
	"github.com/gonewx/starlaser/pkg/entities"
	"github.com/gonewx/starlaser/pkg/types"
)

func TestPlayerControlSystem(t *testing.T) {
	tests := []struct {
		name   string
		input  InputSignals
		wantVX float64
	}{
		{"无输入时停止", InputSignals{}, 0},
		{"左移", InputSignals{MoveLeft: true}, -1},
		{"右移", InputSignals{MoveRight: true}, 1},
		{"左右同时按下时左移优先", InputSignals{MoveLeft: true, MoveRight: true}, -1},
		{"开火不影响速度", InputSignals{FireEdge: true}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			em, cfg := newTestWorld()
			playerID := entities.NewPlayerAt(em, cfg, 0, -300)

			// 先给一个非零速度，确认每帧都会被覆盖
			vel, ok := ecs.GetComponent[*components.VelocityComponent](em, playerID)
			require.True(t, ok)
			vel.VX = 0.5

			NewPlayerControlSystem(em).Update(tickDuration, tt.input)

			assert.Equal(t, tt.wantVX, vel.VX)
			assert.Equal(t, 0.0, vel.VY)
		})
	}
}

func TestPlayerControlSystem_NoPlayer(t *testing.T) {
	em, _ := newTestWorld()
	sys := NewPlayerControlSystem(em)

	assert.NotPanics(t, func() {
		sys.Update(tickDuration, InputSignals{MoveLeft: true, FireEdge: true})
	})
	assert.Equal(t, 0, em.Count())
}

func TestFindHelpers(t *testing.T) {
	em, cfg := newTestWorld()

	_, ok := FindPlayer(em)
	assert.False(t, ok)

	playerID := entities.NewPlayerAt(em, cfg, 0, 0)
	enemyA, err := entities.NewEnemy(em, cfg, -100, 200)
	require.NoError(t, err)
	enemyB, err := entities.NewEnemy(em, cfg, 100, 200)
	require.NoError(t, err)
	up, err := entities.NewLaser(em, cfg, types.FromPlayer, 0, 0)
	require.NoError(t, err)
	down, err := entities.NewLaser(em, cfg, types.FromEnemy, 0, 0)
	require.NoError(t, err)

	got, ok := FindPlayer(em)
	require.True(t, ok)
	assert.Equal(t, playerID, got)

	assert.Equal(t, []ecs.EntityID{enemyA, enemyB}, FindEnemies(em))
	assert.Equal(t, []ecs.EntityID{up}, FindLasers(em, types.FromPlayer))
	assert.Equal(t, []ecs.EntityID{down}, FindLasers(em, types.FromEnemy))

	// 被销毁的玩家立即不可见
	em.DestroyEntity(playerID)
	_, ok = FindPlayer(em)
	assert.False(t, ok)
}
