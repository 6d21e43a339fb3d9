package scenes

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gonewx/starlaser/pkg/battle"
	"github.com/gonewx/starlaser/pkg/config"
	"github.com/gonewx/starlaser/pkg/entities"
	"github.com/gonewx/starlaser/pkg/game"
	"github.com/gonewx/starlaser/pkg/systems"
	"github.com/gonewx/starlaser/pkg/types"
)

const tick = 1.0 / 60.0

// newTestScene 创建使用脚本输入的游戏场景
func newTestScene(t *testing.T, store *game.HighScoreStore) (*GameScene, *systems.InputSignals, *bool) {
	t.Helper()

	cfg := config.DefaultGameConfig()
	cfg.Seed = "scene-test"
	scene, err := NewGameScene(GameSceneOptions{
		NewBattle: func() (*battle.Battle, error) {
			return battle.New(battle.Options{Config: cfg, HighScores: store})
		},
		HighScores: store,
	})
	require.NoError(t, err)

	input := &systems.InputSignals{}
	restart := new(bool)
	scene.readInput = func() systems.InputSignals { return *input }
	scene.readRestart = func() bool { return *restart }
	return scene, input, restart
}

// killPlayer 在玩家身上放一道敌机镭射并推进一帧
func killPlayer(t *testing.T, scene *GameScene) {
	t.Helper()
	b := scene.Battle()
	playerID, ok := systems.FindPlayer(b.EntityManager())
	require.True(t, ok)
	pos := b.Sprites()[0]
	require.Equal(t, playerID, pos.ID)

	_, err := entities.NewLaser(b.EntityManager(), b.Config(), types.FromEnemy, pos.X, pos.Y)
	require.NoError(t, err)
	scene.Update(tick)
	require.True(t, b.State().IsGameOver())
}

func TestNewGameScene_Errors(t *testing.T) {
	_, err := NewGameScene(GameSceneOptions{})
	assert.Error(t, err)

	_, err = NewGameScene(GameSceneOptions{
		NewBattle: func() (*battle.Battle, error) { return nil, errors.New("boom") },
	})
	assert.ErrorContains(t, err, "boom")
}

func TestGameScene_InputDrivesBattle(t *testing.T) {
	scene, input, _ := newTestScene(t, nil)

	*input = systems.InputSignals{FireEdge: true}
	scene.Update(tick)
	assert.Len(t, systems.FindLasers(scene.Battle().EntityManager(), types.FromPlayer), 2)

	*input = systems.InputSignals{MoveRight: true}
	scene.Update(tick)
	player := scene.Battle().Sprites()[0]
	assert.Greater(t, player.X, 0.0)
}

func TestGameScene_RestartOnlyAfterGameOver(t *testing.T) {
	store := game.NewHighScoreStore(nil, nil)
	scene, _, restart := newTestScene(t, store)
	first := scene.Battle()

	// 游戏进行中按重新开始键无效
	*restart = true
	scene.Update(tick)
	assert.Same(t, first, scene.Battle())

	*restart = false
	killPlayer(t, scene)
	assert.Len(t, store.Entries(), 1)

	*restart = true
	scene.Update(tick)
	assert.NotSame(t, first, scene.Battle())
	assert.False(t, scene.Battle().State().IsGameOver())
	assert.NotEqual(t, first.State().SessionID, scene.Battle().State().SessionID)
}

func TestGameScene_ExplosionEffects(t *testing.T) {
	scene, _, _ := newTestScene(t, nil)
	first := scene.effects

	killPlayer(t, scene)
	assert.Equal(t, 1, scene.effects.count())

	// 爆炸在持续时间结束后消失
	for i := 0; i < int(ExplosionDuration/tick)+2; i++ {
		scene.Update(tick)
	}
	assert.Zero(t, scene.effects.count())

	// 重新开局使用新的效果层
	scene.readRestart = func() bool { return true }
	scene.Update(tick)
	assert.NotSame(t, first, scene.effects)
}

func TestGameScene_GameOverLines(t *testing.T) {
	t.Setenv("STARLASER_MOBILE_EMULATE", "")
	store := game.NewHighScoreStore(nil, nil)
	scene, _, _ := newTestScene(t, store)
	killPlayer(t, scene)

	lines := scene.gameOverLines()
	assert.Equal(t, "GAME OVER", lines[0])
	assert.Equal(t, "Score: 0", lines[1])
	assert.Contains(t, lines, "High Scores")
	assert.Equal(t, "Press Enter to restart", lines[len(lines)-1])

	marked := 0
	for _, l := range lines {
		if strings.HasSuffix(l, " <") {
			marked++
		}
	}
	assert.Equal(t, 1, marked, "current session is highlighted")
}

func TestSpriteRect(t *testing.T) {
	area := config.PlayArea{Width: 598, Height: 676}

	tests := []struct {
		name       string
		view       battle.SpriteView
		x, y, w, h float32
	}{
		{
			name: "中心处的敌机",
			view: battle.SpriteView{X: 0, Y: 0, HalfW: 23.25, HalfH: 21},
			x:    299 - 23.25, y: 338 - 21, w: 46.5, h: 42,
		},
		{
			name: "底部的玩家",
			view: battle.SpriteView{X: 0, Y: -319.25, HalfW: 36, HalfH: 18.75},
			x:    263, y: 638.5, w: 72, h: 37.5,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			x, y, w, h := spriteRect(tt.view, area)
			assert.InDelta(t, tt.x, x, 1e-4)
			assert.InDelta(t, tt.y, y, 1e-4)
			assert.InDelta(t, tt.w, w, 1e-4)
			assert.InDelta(t, tt.h, h, 1e-4)
		})
	}
}

func TestScoreText(t *testing.T) {
	assert.Equal(t, "Score: 0", scoreText(0))
	assert.Equal(t, "Score: 12", scoreText(12))
}

func TestRestartHint(t *testing.T) {
	t.Setenv("STARLASER_MOBILE_EMULATE", "1")
	assert.Equal(t, "Tap to restart", restartHint())

	t.Setenv("STARLASER_MOBILE_EMULATE", "")
	assert.Equal(t, "Press Enter to restart", restartHint())
}
