package game

import (
	"time"

	"github.com/google/uuid"

	"github.com/gonewx/starlaser/pkg/ecs"
)

// GameState 存储一局游戏的状态
// 由 Battle 创建并显式传给需要它的系统，不使用全局单例
type GameState struct {
	SessionID string    // 本局唯一标识，写入最高分记录
	StartedAt time.Time // 开局时间

	Score      int // 当前得分（每击毁一架敌机 +1）
	PlayerHits int // 玩家被击中次数（玩家被击毁时为 1）

	PlayerID ecs.EntityID // 当前玩家实体，0 表示尚未生成或已被击毁
	GameOver bool         // 玩家被击毁后为 true

	Elapsed float64 // 本局已进行的时间（秒）
}

// NewGameState 创建新一局的状态
func NewGameState() *GameState {
	return &GameState{
		SessionID: uuid.NewString(),
		StartedAt: time.Now(),
	}
}

// AddScore 增加得分
func (gs *GameState) AddScore(amount int) {
	gs.Score += amount
}

// GetScore 返回当前得分
func (gs *GameState) GetScore() int {
	return gs.Score
}

// SetPlayer 记录玩家实体
func (gs *GameState) SetPlayer(id ecs.EntityID) {
	gs.PlayerID = id
}

// MarkPlayerDestroyed 玩家被击毁，进入结束状态
//
// 返回:
//   - bool: 首次进入结束状态时返回 true（同一 tick 多次命中只生效一次）
func (gs *GameState) MarkPlayerDestroyed() bool {
	if gs.GameOver {
		return false
	}
	gs.PlayerID = 0
	gs.GameOver = true
	return true
}

// IsGameOver 返回本局是否已结束
func (gs *GameState) IsGameOver() bool {
	return gs.GameOver
}
