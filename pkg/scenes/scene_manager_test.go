package scenes

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/stretchr/testify/assert"
)

// mockScene is a mock implementation of the Scene interface for testing.
type mockScene struct {
	updateCalled bool
	drawCalled   bool
	deltaTime    float64
}

func (m *mockScene) Update(deltaTime float64) {
	m.updateCalled = true
	m.deltaTime = deltaTime
}

func (m *mockScene) Draw(screen *ebiten.Image) {
	m.drawCalled = true
}

func TestSceneManager(t *testing.T) {
	sm := NewSceneManager()
	assert.Nil(t, sm.GetCurrentScene())

	// 没有活动场景时 Update/Draw 不做任何事
	assert.NotPanics(t, func() {
		sm.Update(0.016)
		sm.Draw(nil)
	})

	first := &mockScene{}
	sm.SwitchTo(first)
	assert.Same(t, first, sm.GetCurrentScene())

	sm.Update(0.016)
	sm.Draw(nil)
	assert.True(t, first.updateCalled)
	assert.True(t, first.drawCalled)
	assert.Equal(t, 0.016, first.deltaTime)

	// 切换后只调用新场景
	second := &mockScene{}
	sm.SwitchTo(second)
	first.updateCalled = false
	sm.Update(0.02)
	assert.False(t, first.updateCalled)
	assert.True(t, second.updateCalled)
}
