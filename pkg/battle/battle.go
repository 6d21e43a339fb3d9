// Package battle 组装一局游戏的核心逻辑
//
// Battle 持有实体管理器、配置、随机数、本局状态和命中事件总线，
// 并以固定顺序驱动各系统。它不依赖任何渲染或输入库，
// Ebiten 场景和终端版都通过它推进游戏。
package battle

import (
	"fmt"
	"math/rand"
	"time"

	"go.uber.org/zap"

	"github.com/gonewx/starlaser/pkg/components"
	"github.com/gonewx/starlaser/pkg/config"
	"github.com/gonewx/starlaser/pkg/ecs"
	"github.com/gonewx/starlaser/pkg/entities"
	"github.com/gonewx/starlaser/pkg/game"
	"github.com/gonewx/starlaser/pkg/logger"
	"github.com/gonewx/starlaser/pkg/systems"
	"github.com/gonewx/starlaser/pkg/types"
)

// Options 创建 Battle 的参数
type Options struct {
	// Config 游戏配置，必填（应已通过 Validate）
	Config *config.GameConfig
	// Rand 随机数来源；为 nil 时使用配置中的种子，种子为空则使用当前时间
	Rand systems.RandomSource
	// Logger 日志记录器，可为 nil
	Logger *zap.Logger
	// HighScores 最高分榜，可为 nil
	HighScores *game.HighScoreStore
}

// Battle 一局游戏
type Battle struct {
	em     *ecs.EntityManager
	config *config.GameConfig
	state  *game.GameState
	hits   *game.HitBus
	logger *zap.Logger

	playerControl *systems.PlayerControlSystem
	enemySpawn    *systems.EnemySpawnSystem
	enemyFire     *systems.EnemyFireSystem
	playerFire    *systems.PlayerFireSystem
	movement      *systems.MovementSystem
	collision     *systems.CollisionSystem
	boundary      *systems.BoundarySystem
	score         *systems.ScoreSystem

	ticks uint64
}

// New 创建一局游戏并生成玩家
//
// 返回:
//   - *Battle: 新的一局
//   - error: 配置无效时返回错误（启动时即失败）
func New(opts Options) (*Battle, error) {
	cfg := opts.Config
	if cfg == nil {
		return nil, fmt.Errorf("battle: config cannot be nil")
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("battle: invalid config: %w", err)
	}

	log := logger.OrNop(opts.Logger)
	rng := opts.Rand
	if rng == nil {
		seed, ok := cfg.RandSeed()
		if !ok {
			seed = time.Now().UnixNano()
		}
		rng = rand.New(rand.NewSource(seed))
		log.Debug("random source seeded", zap.Int64("seed", seed))
	}

	em := ecs.NewEntityManager()
	state := game.NewGameState()
	hits := game.NewHitBus()

	enemySpawn, err := systems.NewEnemySpawnSystem(em, cfg, rng, log)
	if err != nil {
		return nil, fmt.Errorf("battle: %w", err)
	}

	b := &Battle{
		em:     em,
		config: cfg,
		state:  state,
		hits:   hits,
		logger: log.Named("Battle"),

		playerControl: systems.NewPlayerControlSystem(em),
		enemySpawn:    enemySpawn,
		enemyFire:     systems.NewEnemyFireSystem(em, cfg, log),
		playerFire:    systems.NewPlayerFireSystem(em, cfg, log),
		movement:      systems.NewMovementSystem(em, cfg.Speed.Base),
		collision:     systems.NewCollisionSystem(em, cfg, hits, log),
		boundary:      systems.NewBoundarySystem(em, cfg.PlayArea(), log),
		score:         systems.NewScoreSystem(state, hits, opts.HighScores, log),
	}

	playerID, err := entities.NewPlayer(em, cfg)
	if err != nil {
		return nil, fmt.Errorf("battle: failed to spawn player: %w", err)
	}
	state.SetPlayer(playerID)

	b.logger.Info("battle started",
		zap.String("session", state.SessionID),
		zap.Float64("width", cfg.Window.Width),
		zap.Float64("height", cfg.Window.Height))
	return b, nil
}

// Update 推进一帧
//
// 系统顺序固定：
//
//	玩家控制 → 生成（敌机、敌机开火、玩家开火）→ 移动 → 碰撞 → 边界回收 → 计分 → 释放已销毁实体
//
// 销毁在系统之间立即可见；存储在帧末统一释放。
func (b *Battle) Update(deltaTime float64, input systems.InputSignals) {
	b.ticks++

	b.playerControl.Update(deltaTime, input)

	b.enemySpawn.Update(deltaTime)
	b.enemyFire.Update(deltaTime)
	b.playerFire.Update(deltaTime, input)

	b.movement.Update(deltaTime)

	b.collision.Update(deltaTime)
	b.boundary.Update(deltaTime)

	b.score.Update(deltaTime)

	b.em.RemoveMarkedEntities()
}

// EntityManager 返回实体管理器
func (b *Battle) EntityManager() *ecs.EntityManager {
	return b.em
}

// Config 返回游戏配置
func (b *Battle) Config() *config.GameConfig {
	return b.config
}

// State 返回本局状态
func (b *Battle) State() *game.GameState {
	return b.state
}

// Hits 返回命中事件总线，渲染端可订阅（如播放音效）
func (b *Battle) Hits() *game.HitBus {
	return b.hits
}

// Ticks 返回已推进的帧数
func (b *Battle) Ticks() uint64 {
	return b.ticks
}

// SpriteView 渲染端需要的实体视图
type SpriteView struct {
	ID    ecs.EntityID
	Kind  types.SpriteKind
	X, Y  float64 // 中心世界坐标
	HalfW float64
	HalfH float64
}

// Sprites 返回所有可见实体（按ID升序）
func (b *Battle) Sprites() []SpriteView {
	ids := ecs.GetEntitiesWith2[*components.SpriteComponent, *components.PositionComponent](b.em)
	views := make([]SpriteView, 0, len(ids))
	for _, id := range ids {
		sprite, _ := ecs.GetComponent[*components.SpriteComponent](b.em, id)
		pos, _ := ecs.GetComponent[*components.PositionComponent](b.em, id)
		halfW, halfH := b.config.HalfExtents(sprite.Kind)
		views = append(views, SpriteView{
			ID:    id,
			Kind:  sprite.Kind,
			X:     pos.X,
			Y:     pos.Y,
			HalfW: halfW,
			HalfH: halfH,
		})
	}
	return views
}
