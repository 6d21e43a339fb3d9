package game

import (
	"fmt"
	"testing"
	"time"

	"github.com/quasilyte/gdata/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// createTestGdataManager 创建用于测试的 gdata Manager
// 存储目录重定向到临时目录，测试结束自动清理
func createTestGdataManager(t *testing.T) *gdata.Manager {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("HOME", dir)
	t.Setenv("XDG_DATA_HOME", dir)

	manager, err := gdata.Open(gdata.Config{
		AppName: fmt.Sprintf("starlaser_test_%d", time.Now().UnixNano()),
	})
	if err != nil {
		t.Skipf("Cannot create gdata manager for testing: %v", err)
	}
	return manager
}

func finishedGame(score int) *GameState {
	gs := NewGameState()
	gs.Score = score
	gs.Elapsed = float64(score) * 1.5
	gs.MarkPlayerDestroyed()
	return gs
}

// TestHighScoreStoreNilGdata 降级模式：仅内存，不报错
func TestHighScoreStoreNilGdata(t *testing.T) {
	store := NewHighScoreStore(nil, nil)
	assert.Zero(t, store.Best())

	rank, err := store.Record(finishedGame(5), time.Now())
	require.NoError(t, err)
	assert.Equal(t, 1, rank)
	assert.Equal(t, 5, store.Best())
}

func TestHighScoreStoreOrdering(t *testing.T) {
	store := NewHighScoreStore(nil, nil)
	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

	scores := []int{3, 9, 1, 9, 4}
	for i, s := range scores {
		_, err := store.Record(finishedGame(s), base.Add(time.Duration(i)*time.Minute))
		require.NoError(t, err)
	}

	entries := store.Entries()
	require.Len(t, entries, 5)
	got := make([]int, 0, len(entries))
	for _, e := range entries {
		got = append(got, e.Score)
	}
	assert.Equal(t, []int{9, 9, 4, 3, 1}, got)
	// 同分时先达成的在前
	assert.True(t, entries[0].At.Before(entries[1].At))
}

func TestHighScoreStoreTruncates(t *testing.T) {
	store := NewHighScoreStore(nil, nil)
	now := time.Now()

	for i := 0; i < MaxHighScores; i++ {
		_, err := store.Record(finishedGame(10+i), now.Add(time.Duration(i)*time.Second))
		require.NoError(t, err)
	}

	// 低于榜单最低分：不进榜
	rank, err := store.Record(finishedGame(1), now.Add(time.Hour))
	require.NoError(t, err)
	assert.Zero(t, rank)
	assert.Len(t, store.Entries(), MaxHighScores)

	// 新的最高分排第一
	rank, err = store.Record(finishedGame(100), now.Add(2*time.Hour))
	require.NoError(t, err)
	assert.Equal(t, 1, rank)
	assert.Len(t, store.Entries(), MaxHighScores)
}

// TestHighScoreStorePersists 保存后用新实例读取，数据一致
func TestHighScoreStorePersists(t *testing.T) {
	manager := createTestGdataManager(t)

	store := NewHighScoreStore(manager, nil)
	gs := finishedGame(42)
	_, err := store.Record(gs, time.Now())
	require.NoError(t, err)

	reloaded := NewHighScoreStore(manager, nil)
	entries := reloaded.Entries()
	require.Len(t, entries, 1)
	assert.Equal(t, 42, entries[0].Score)
	assert.Equal(t, gs.SessionID, entries[0].SessionID)
	assert.Equal(t, 42, reloaded.Best())
}

// TestHighScoreStoreCorruptData 数据损坏时使用空榜
func TestHighScoreStoreCorruptData(t *testing.T) {
	manager := createTestGdataManager(t)
	require.NoError(t, manager.SaveObjectProp(highScoreObject, highScoreProperty, []byte("entries: [")))

	store := NewHighScoreStore(manager, nil)
	assert.Empty(t, store.Entries())
	assert.Error(t, store.Load())
}
