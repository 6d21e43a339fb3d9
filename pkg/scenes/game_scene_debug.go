package scenes

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

var (
	// 碰撞盒描边色（半透明绿色）
	debugBoxColor = color.RGBA{R: 0, G: 255, B: 0, A: 160}
	// 结束画面遮罩
	overlayColor = color.RGBA{R: 0, G: 0, B: 0, A: 150}
)

// drawCollisionDebug 绘制所有碰撞盒和实体数量（-debug 启用）
func (s *GameScene) drawCollisionDebug(screen *ebiten.Image) {
	area := s.battle.Config().PlayArea()
	views := s.battle.Sprites()
	for _, v := range views {
		x, y, w, h := spriteRect(v, area)
		vector.StrokeRect(screen, x, y, w, h, 1, debugBoxColor, false)
	}

	info := fmt.Sprintf("Entities: %d  Tick: %d  TPS: %.0f",
		len(views), s.battle.Ticks(), ebiten.ActualTPS())
	ebitenutil.DebugPrintAt(screen, info, ScoreTextX, ScoreTextY+16)
}
