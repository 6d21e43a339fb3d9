package sound

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/gonewx/starlaser/pkg/game"
)

func TestToneFor(t *testing.T) {
	tests := []struct {
		name     string
		kind     game.HitKind
		wantFreq float64
		wantDur  time.Duration
	}{
		{"击毁敌机", game.HitEnemy, enemyHitFreq, enemyHitDuration},
		{"玩家被击毁", game.HitPlayer, playerHitFreq, playerHitDuration},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			freq, d := toneFor(tt.kind)
			assert.Equal(t, tt.wantFreq, freq)
			assert.Equal(t, tt.wantDur, d)
			// 频率必须低于奈奎斯特频率
			assert.Less(t, freq, float64(sampleRate)/2)
		})
	}
}

// TestHitSound_SilentBeforeInit 未打开音频设备时播放和关闭都是空操作
func TestHitSound_SilentBeforeInit(t *testing.T) {
	h := NewHitSound()

	assert.NotPanics(t, func() {
		h.OnHit(game.HitEvent{Kind: game.HitEnemy})
		h.Play(game.HitPlayer)
		h.Close()
	})
	assert.Zero(t, h.mixer.Len())
}
