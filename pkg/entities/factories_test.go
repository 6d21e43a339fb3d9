package entities

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gonewx/starlaser/pkg/components"
	"github.com/gonewx/starlaser/pkg/config"
	"github.com/gonewx/starlaser/pkg/ecs"
	"github.com/gonewx/starlaser/pkg/types"
)

// TestNewPlayer 玩家生成在底部中央，底边贴住下边界
func TestNewPlayer(t *testing.T) {
	em := ecs.NewEntityManager()
	cfg := config.DefaultGameConfig()

	id, err := NewPlayer(em, cfg)
	require.NoError(t, err)
	require.NotZero(t, id)

	pos, ok := ecs.GetComponent[*components.PositionComponent](em, id)
	require.True(t, ok)
	assert.Equal(t, 0.0, pos.X)
	assert.Equal(t, -338.0+37.5/2, pos.Y)

	actor, ok := ecs.GetComponent[*components.ActorComponent](em, id)
	require.True(t, ok)
	assert.Equal(t, types.ActorPlayer, actor.Kind)

	vel, ok := ecs.GetComponent[*components.VelocityComponent](em, id)
	require.True(t, ok)
	assert.Zero(t, vel.VX)
	assert.Zero(t, vel.VY)

	speed, ok := ecs.GetComponent[*components.SpeedFactorComponent](em, id)
	require.True(t, ok)
	assert.Equal(t, config.PlayerSpeedFactor, speed.Factor)
}

func TestNewEnemy(t *testing.T) {
	em := ecs.NewEntityManager()
	cfg := config.DefaultGameConfig()

	id, err := NewEnemy(em, cfg, 12, 380)
	require.NoError(t, err)

	pos, _ := ecs.GetComponent[*components.PositionComponent](em, id)
	assert.Equal(t, 12.0, pos.X)
	assert.Equal(t, 380.0, pos.Y)

	vel, _ := ecs.GetComponent[*components.VelocityComponent](em, id)
	assert.Equal(t, -1.0, vel.VY)

	sprite, _ := ecs.GetComponent[*components.SpriteComponent](em, id)
	assert.Equal(t, types.SpriteEnemy, sprite.Kind)

	timer, ok := ecs.GetComponent[*components.TimerComponent](em, id)
	require.True(t, ok, "enemy must carry its own fire timer")
	assert.Equal(t, EnemyFireTimerName, timer.Name)
	assert.Equal(t, cfg.Timers.EnemyFire, timer.TargetTime)
}

func TestNewEnemyRejectsBadFirePeriod(t *testing.T) {
	em := ecs.NewEntityManager()
	cfg := config.DefaultGameConfig()
	cfg.Timers.EnemyFire = 0

	id, err := NewEnemy(em, cfg, 0, 0)
	assert.Error(t, err)
	assert.Zero(t, id)
	assert.Zero(t, em.Count(), "no half-built entity is left behind")
}

func TestNewLaser(t *testing.T) {
	cfg := config.DefaultGameConfig()

	tests := []struct {
		name       string
		side       types.ProjectileSide
		wantSprite types.SpriteKind
		wantVY     float64
		wantFactor float64
	}{
		{"玩家镭射向上", types.FromPlayer, types.SpritePlayerLaser, 1, config.PlayerLaserSpeedFactor},
		{"敌机镭射向下", types.FromEnemy, types.SpriteEnemyLaser, -1, config.EnemyLaserSpeedFactor},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			em := ecs.NewEntityManager()
			id, err := NewLaser(em, cfg, tt.side, -36, -300)
			require.NoError(t, err)

			proj, ok := ecs.GetComponent[*components.ProjectileComponent](em, id)
			require.True(t, ok)
			assert.Equal(t, tt.side, proj.Side)

			sprite, _ := ecs.GetComponent[*components.SpriteComponent](em, id)
			assert.Equal(t, tt.wantSprite, sprite.Kind)

			vel, _ := ecs.GetComponent[*components.VelocityComponent](em, id)
			assert.Equal(t, tt.wantVY, vel.VY)
			assert.Zero(t, vel.VX)

			speed, _ := ecs.GetComponent[*components.SpeedFactorComponent](em, id)
			assert.Equal(t, tt.wantFactor, speed.Factor)

			// 镭射不是角色
			assert.False(t, ecs.HasComponent[*components.ActorComponent](em, id))
		})
	}
}

func TestFactoriesRejectNilArguments(t *testing.T) {
	cfg := config.DefaultGameConfig()
	em := ecs.NewEntityManager()

	_, err := NewPlayer(nil, cfg)
	assert.Error(t, err)
	_, err = NewPlayer(em, nil)
	assert.Error(t, err)
	_, err = NewEnemy(nil, cfg, 0, 0)
	assert.Error(t, err)
	_, err = NewLaser(em, nil, types.FromPlayer, 0, 0)
	assert.Error(t, err)
}
