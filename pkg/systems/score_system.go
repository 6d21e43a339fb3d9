package systems

import (
	"time"

	"go.uber.org/zap"

	"github.com/gonewx/starlaser/pkg/game"
	"github.com/gonewx/starlaser/pkg/logger"
)

// ScoreSystem 消费命中事件并更新本局状态
//
//   - 击毁敌机：得分 +1
//   - 玩家被击毁：本局结束，最终得分写入最高分榜（只写一次）
type ScoreSystem struct {
	gameState  *game.GameState
	hits       *game.HitBus
	highScores *game.HighScoreStore // 可为 nil（不记录最高分）
	logger     *zap.Logger
	now        func() time.Time
}

// NewScoreSystem 创建计分系统
//
// 参数:
//   - gs: 本局状态
//   - hits: 命中事件总线
//   - highScores: 最高分榜，可为 nil
//   - log: 日志记录器，可为 nil
func NewScoreSystem(gs *game.GameState, hits *game.HitBus, highScores *game.HighScoreStore, log *zap.Logger) *ScoreSystem {
	return &ScoreSystem{
		gameState:  gs,
		hits:       hits,
		highScores: highScores,
		logger:     logger.OrNop(log).Named("ScoreSystem"),
		now:        time.Now,
	}
}

// Update 累计本局时间并处理本帧的命中事件
func (s *ScoreSystem) Update(deltaTime float64) {
	if !s.gameState.IsGameOver() {
		s.gameState.Elapsed += deltaTime
	}

	for _, evt := range s.hits.Drain() {
		switch evt.Kind {
		case game.HitEnemy:
			s.gameState.AddScore(1)
		case game.HitPlayer:
			if s.gameState.MarkPlayerDestroyed() {
				s.gameState.PlayerHits++
				s.onGameOver()
			}
		}
	}
}

// onGameOver 本局结束：记录最高分
func (s *ScoreSystem) onGameOver() {
	s.logger.Info("game over",
		zap.Int("score", s.gameState.Score),
		zap.Float64("elapsed", s.gameState.Elapsed),
		zap.String("session", s.gameState.SessionID))

	if s.highScores == nil {
		return
	}
	rank, err := s.highScores.Record(s.gameState, s.now())
	if err != nil {
		s.logger.Warn("failed to save high score", zap.Error(err))
		return
	}
	if rank > 0 {
		s.logger.Info("score entered high-score table", zap.Int("rank", rank))
	}
}
