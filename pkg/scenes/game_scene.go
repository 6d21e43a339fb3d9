package scenes

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"go.uber.org/zap"

	"github.com/gonewx/starlaser/pkg/battle"
	"github.com/gonewx/starlaser/pkg/config"
	"github.com/gonewx/starlaser/pkg/game"
	"github.com/gonewx/starlaser/pkg/logger"
	"github.com/gonewx/starlaser/pkg/systems"
	"github.com/gonewx/starlaser/pkg/types"
	"github.com/gonewx/starlaser/pkg/utils"
)

// BattleFactory 创建新的一局（开局和重新开始时调用）
type BattleFactory func() (*battle.Battle, error)

// backgroundColor 背景色（深空）
var backgroundColor = color.RGBA{R: 8, G: 10, B: 24, A: 255}

// spriteColors 各视觉类型的填充色
var spriteColors = map[types.SpriteKind]color.RGBA{
	types.SpritePlayer:      {R: 70, G: 160, B: 255, A: 255},
	types.SpritePlayerLaser: {R: 120, G: 255, B: 140, A: 255},
	types.SpriteEnemy:       {R: 230, G: 70, B: 60, A: 255},
	types.SpriteEnemyLaser:  {R: 255, G: 200, B: 60, A: 255},
}

// GameSceneOptions 创建 GameScene 的参数
type GameSceneOptions struct {
	// NewBattle 创建一局，必填
	NewBattle BattleFactory
	// HighScores 最高分榜，用于结束画面显示，可为 nil
	HighScores *game.HighScoreStore
	// Debug 绘制碰撞盒和调试信息
	Debug bool
	// Logger 日志记录器，可为 nil
	Logger *zap.Logger
}

// GameScene represents the main gameplay screen.
// 它把 Ebiten 的键盘和触摸输入转换为 InputSignals 交给 Battle，
// 并把 Battle 中的实体绘制为按视觉类型着色的矩形。
type GameScene struct {
	battle     *battle.Battle
	effects    *effectLayer
	newBattle  BattleFactory
	highScores *game.HighScoreStore
	debug      bool
	logger     *zap.Logger

	// 输入来源，测试中替换
	readInput   func() systems.InputSignals
	readRestart func() bool
}

// NewGameScene 创建游戏场景并开始第一局
//
// 返回:
//   - *GameScene: 游戏场景
//   - error: 创建第一局失败时返回错误
func NewGameScene(opts GameSceneOptions) (*GameScene, error) {
	if opts.NewBattle == nil {
		return nil, fmt.Errorf("game scene: battle factory cannot be nil")
	}

	b, err := opts.NewBattle()
	if err != nil {
		return nil, fmt.Errorf("game scene: %w", err)
	}

	s := &GameScene{
		battle:      b,
		newBattle:   opts.NewBattle,
		highScores:  opts.HighScores,
		debug:       opts.Debug,
		logger:      logger.OrNop(opts.Logger).Named("GameScene"),
		readRestart: ReadRestart,
	}
	s.readInput = func() systems.InputSignals {
		return ReadInput(s.battle.Config().Window.Width)
	}
	s.attach(b)
	return s, nil
}

// attach 切换到新的一局，并为它创建爆炸效果
func (s *GameScene) attach(b *battle.Battle) {
	s.battle = b
	s.effects = newEffectLayer(b.Config())
	b.Hits().Subscribe(s.effects.onHit)
}

// Battle 返回当前这一局
func (s *GameScene) Battle() *battle.Battle {
	return s.battle
}

// Update 推进一帧
// 游戏结束后仍继续推进（敌机照常飞行），按下重新开始键时开新的一局
func (s *GameScene) Update(deltaTime float64) {
	if s.battle.State().IsGameOver() && s.readRestart() {
		s.restart()
		return
	}
	s.battle.Update(deltaTime, s.readInput())
	s.effects.update(deltaTime)
}

// restart 开始新的一局；失败时保留当前这一局
func (s *GameScene) restart() {
	b, err := s.newBattle()
	if err != nil {
		s.logger.Error("failed to restart battle", zap.Error(err))
		return
	}
	s.logger.Info("battle restarted",
		zap.String("previous", s.battle.State().SessionID),
		zap.String("session", b.State().SessionID))
	s.attach(b)
}

// Draw 绘制所有实体、得分和结束画面
func (s *GameScene) Draw(screen *ebiten.Image) {
	screen.Fill(backgroundColor)

	area := s.battle.Config().PlayArea()
	for _, v := range s.battle.Sprites() {
		x, y, w, h := spriteRect(v, area)
		vector.DrawFilledRect(screen, x, y, w, h, spriteColors[v.Kind], false)
	}
	s.effects.draw(screen)

	if s.debug {
		s.drawCollisionDebug(screen)
	}

	s.drawScore(screen)
	if s.battle.State().IsGameOver() {
		s.drawGameOver(screen)
	}
}

// spriteRect 计算实体在屏幕上的矩形（左上角和宽高）
func spriteRect(v battle.SpriteView, area config.PlayArea) (x, y, w, h float32) {
	left, top := utils.WorldToScreen(v.X-v.HalfW, v.Y+v.HalfH, area.Width, area.Height)
	return float32(left), float32(top), float32(v.HalfW * 2), float32(v.HalfH * 2)
}
