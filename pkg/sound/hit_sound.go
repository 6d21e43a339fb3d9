// Package sound 为命中事件播放简短的提示音
//
// 音色由正弦波生成，不依赖音频文件。终端版订阅 HitBus 后调用 Play。
package sound

import (
	"fmt"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"

	"github.com/gonewx/starlaser/pkg/game"
)

const (
	sampleRate = beep.SampleRate(48000)

	// 击毁敌机：短促高音
	enemyHitFreq     = 880.0
	enemyHitDuration = 60 * time.Millisecond

	// 玩家被击毁：较长低音
	playerHitFreq     = 110.0
	playerHitDuration = 400 * time.Millisecond
)

// toneFor 返回命中类型对应的频率和时长
func toneFor(kind game.HitKind) (freq float64, d time.Duration) {
	if kind == game.HitPlayer {
		return playerHitFreq, playerHitDuration
	}
	return enemyHitFreq, enemyHitDuration
}

// HitSound 命中音效播放器
// Init 失败（如没有音频设备）时保持静音，Play 变为空操作
type HitSound struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	initialized bool
}

// NewHitSound 创建命中音效播放器（尚未打开音频设备）
func NewHitSound() *HitSound {
	return &HitSound{mixer: &beep.Mixer{}}
}

// Init 打开音频设备
func (h *HitSound) Init() error {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.initialized {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(100*time.Millisecond)); err != nil {
		return fmt.Errorf("failed to init speaker: %w", err)
	}
	speaker.Play(h.mixer)
	h.initialized = true
	return nil
}

// Play 播放命中提示音
func (h *HitSound) Play(kind game.HitKind) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if !h.initialized {
		return
	}

	freq, d := toneFor(kind)
	tone, err := generators.SineTone(sampleRate, freq)
	if err != nil {
		return
	}

	speaker.Lock()
	h.mixer.Add(beep.Take(sampleRate.N(d), tone))
	speaker.Unlock()
}

// OnHit 作为 HitBus 订阅者使用
func (h *HitSound) OnHit(evt game.HitEvent) {
	h.Play(evt.Kind)
}

// Close 关闭音频设备
func (h *HitSound) Close() {
	h.mu.Lock()
	defer h.mu.Unlock()

	if !h.initialized {
		return
	}
	speaker.Clear()
	speaker.Close()
	h.initialized = false
}
