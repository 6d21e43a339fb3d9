package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestWorldToScreen 测试世界坐标到屏幕坐标的转换
func TestWorldToScreen(t *testing.T) {
	const w, h = 598.0, 676.0

	tests := []struct {
		name           string
		worldX, worldY float64
		wantX, wantY   float64
	}{
		{"中心", 0, 0, 299, 338},
		{"左上角", -299, 338, 0, 0},
		{"右下角", 299, -338, 598, 676},
		{"底部玩家", 0, -300, 299, 638},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sx, sy := WorldToScreen(tt.worldX, tt.worldY, w, h)
			assert.Equal(t, tt.wantX, sx)
			assert.Equal(t, tt.wantY, sy)

			// 逆变换回到原坐标
			wx, wy := ScreenToWorld(sx, sy, w, h)
			assert.Equal(t, tt.worldX, wx)
			assert.Equal(t, tt.worldY, wy)
		})
	}
}

func TestWorldToCell(t *testing.T) {
	col, row := WorldToCell(0, 0, 600, 600, 80, 24)
	assert.Equal(t, 40, col)
	assert.Equal(t, 12, row)

	col, row = WorldToCell(-300, 300, 600, 600, 80, 24)
	assert.Equal(t, 0, col)
	assert.Equal(t, 0, row)

	// 区域之外
	col, row = WorldToCell(-301, 301, 600, 600, 80, 24)
	assert.Equal(t, -1, col)
	assert.Equal(t, -1, row)
}
