package game

import (
	"fmt"
	"sort"
	"time"

	"github.com/quasilyte/gdata/v2"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

// MaxHighScores 最高分榜保留的记录数
const MaxHighScores = 10

// 存储路径常量
const (
	highScoreObject   = "scores"
	highScoreProperty = "table"
)

// HighScore 一条最高分记录
type HighScore struct {
	Score     int       `yaml:"score"`
	SessionID string    `yaml:"sessionId"`
	Duration  float64   `yaml:"duration"` // 本局时长（秒）
	At        time.Time `yaml:"at"`
}

// highScoreTable 持久化格式
type highScoreTable struct {
	Entries []HighScore `yaml:"entries"`
}

// HighScoreStore 最高分榜
// 负责最高分的加载、插入和保存
type HighScoreStore struct {
	gdataManager *gdata.Manager // gdata 跨平台存储管理器，可为 nil（降级模式，仅内存）
	entries      []HighScore    // 按分数降序
	logger       *zap.Logger
}

// NewHighScoreStore 创建最高分榜
//
// 参数：
//   - gdataManager: gdata 跨平台存储管理器，可为 nil（降级模式，仅内存）
//   - logger: 日志记录器
//
// 返回：
//   - *HighScoreStore: 最高分榜实例（加载失败时为空榜）
func NewHighScoreStore(gdataManager *gdata.Manager, logger *zap.Logger) *HighScoreStore {
	if logger == nil {
		logger = zap.NewNop()
	}
	s := &HighScoreStore{
		gdataManager: gdataManager,
		logger:       logger.Named("HighScoreStore"),
	}

	// 加载失败不是致命错误，使用空榜
	if err := s.Load(); err != nil {
		s.logger.Warn("failed to load high scores, starting empty", zap.Error(err))
	}
	return s
}

// Load 从 gdata 加载最高分榜
//
// 如果 gdataManager 为 nil 或数据不存在，得到空榜
func (s *HighScoreStore) Load() error {
	s.entries = nil

	if s.gdataManager == nil {
		return nil
	}
	if !s.gdataManager.ObjectPropExists(highScoreObject, highScoreProperty) {
		return nil
	}

	data, err := s.gdataManager.LoadObjectProp(highScoreObject, highScoreProperty)
	if err != nil {
		return fmt.Errorf("failed to load high scores: %w", err)
	}

	var table highScoreTable
	if err := yaml.Unmarshal(data, &table); err != nil {
		return fmt.Errorf("failed to unmarshal high scores: %w", err)
	}

	s.entries = table.Entries
	s.normalize()
	return nil
}

// Save 保存最高分榜到 gdata
//
// 如果 gdataManager 为 nil，返回 nil（降级模式，不报错）
func (s *HighScoreStore) Save() error {
	if s.gdataManager == nil {
		return nil
	}

	data, err := yaml.Marshal(highScoreTable{Entries: s.entries})
	if err != nil {
		return fmt.Errorf("failed to marshal high scores: %w", err)
	}

	if err := s.gdataManager.SaveObjectProp(highScoreObject, highScoreProperty, data); err != nil {
		return fmt.Errorf("failed to save high scores: %w", err)
	}
	return nil
}

// Record 记录一局的最终得分并保存
//
// 参数：
//   - gs: 已结束的一局
//   - now: 记录时间
//
// 返回：
//   - rank: 新记录的名次（从 1 开始），未进榜返回 0
//   - error: 保存失败时返回错误（内存中的榜单已更新）
func (s *HighScoreStore) Record(gs *GameState, now time.Time) (int, error) {
	entry := HighScore{
		Score:     gs.Score,
		SessionID: gs.SessionID,
		Duration:  gs.Elapsed,
		At:        now,
	}

	s.entries = append(s.entries, entry)
	s.normalize()

	rank := 0
	for i, e := range s.entries {
		if e.SessionID == entry.SessionID && e.At.Equal(entry.At) {
			rank = i + 1
			break
		}
	}

	if rank == 0 {
		return 0, nil
	}

	s.logger.Info("new high score",
		zap.Int("score", entry.Score),
		zap.Int("rank", rank),
		zap.String("session", entry.SessionID))

	if err := s.Save(); err != nil {
		return rank, err
	}
	return rank, nil
}

// Entries 返回榜单副本（按分数降序）
func (s *HighScoreStore) Entries() []HighScore {
	out := make([]HighScore, len(s.entries))
	copy(out, s.entries)
	return out
}

// Best 返回最高分，空榜返回 0
func (s *HighScoreStore) Best() int {
	if len(s.entries) == 0 {
		return 0
	}
	return s.entries[0].Score
}

// normalize 排序并截断到 MaxHighScores 条
// 同分时先达成的排在前面
func (s *HighScoreStore) normalize() {
	sort.SliceStable(s.entries, func(i, j int) bool {
		if s.entries[i].Score != s.entries[j].Score {
			return s.entries[i].Score > s.entries[j].Score
		}
		return s.entries[i].At.Before(s.entries[j].At)
	})
	if len(s.entries) > MaxHighScores {
		s.entries = s.entries[:MaxHighScores]
	}
}
