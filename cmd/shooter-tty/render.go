package main

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/gonewx/starlaser/pkg/battle"
	"github.com/gonewx/starlaser/pkg/config"
	"github.com/gonewx/starlaser/pkg/types"
	"github.com/gonewx/starlaser/pkg/utils"
)

// statusRows 顶部状态栏占用的行数
const statusRows = 1

var (
	statusStyle = tcell.StyleDefault.Foreground(tcell.ColorWhite).Bold(true)
	borderStyle = tcell.StyleDefault.Foreground(tcell.ColorDarkGray)

	spriteGlyphs = map[types.SpriteKind]rune{
		types.SpritePlayer:      '█',
		types.SpriteEnemy:       '▓',
		types.SpritePlayerLaser: '|',
		types.SpriteEnemyLaser:  '!',
	}
	spriteStyles = map[types.SpriteKind]tcell.Style{
		types.SpritePlayer:      tcell.StyleDefault.Foreground(tcell.ColorDodgerBlue),
		types.SpriteEnemy:       tcell.StyleDefault.Foreground(tcell.ColorRed),
		types.SpritePlayerLaser: tcell.StyleDefault.Foreground(tcell.ColorLime),
		types.SpriteEnemyLaser:  tcell.StyleDefault.Foreground(tcell.ColorYellow),
	}
)

// cellRect 实体在游戏区域格子中的覆盖范围（含两端），至少一格
func cellRect(v battle.SpriteView, area config.PlayArea, cols, rows int) (c0, r0, c1, r1 int) {
	c0, r0 = utils.WorldToCell(v.X-v.HalfW, v.Y+v.HalfH, area.Width, area.Height, cols, rows)
	c1, r1 = utils.WorldToCell(v.X+v.HalfW, v.Y-v.HalfH, area.Width, area.Height, cols, rows)
	if c1 > c0 {
		c1--
	}
	if r1 > r0 {
		r1--
	}
	return c0, r0, c1, r1
}

// draw 绘制一帧
func draw(screen tcell.Screen, b *battle.Battle, best int) {
	screen.Clear()
	width, height := screen.Size()
	cols, rows := width, height-statusRows
	if cols <= 0 || rows <= 0 {
		screen.Show()
		return
	}

	area := b.Config().PlayArea()
	for _, v := range b.Sprites() {
		glyph, style := spriteGlyphs[v.Kind], spriteStyles[v.Kind]
		c0, r0, c1, r1 := cellRect(v, area, cols, rows)
		for r := r0; r <= r1; r++ {
			if r < 0 || r >= rows {
				continue
			}
			for c := c0; c <= c1; c++ {
				if c < 0 || c >= cols {
					continue
				}
				screen.SetContent(c, r+statusRows, glyph, nil, style)
			}
		}
	}

	state := b.State()
	status := fmt.Sprintf("Score: %d  Best: %d  ←/→ move  space fire  q quit", state.GetScore(), best)
	if state.IsGameOver() {
		status = fmt.Sprintf("GAME OVER  Score: %d  Best: %d  Enter/r restart  q quit", state.GetScore(), best)
	}
	drawText(screen, 0, 0, status, statusStyle)
	for c := len([]rune(status)); c < width; c++ {
		screen.SetContent(c, 0, '─', nil, borderStyle)
	}

	screen.Show()
}

func drawText(screen tcell.Screen, x, y int, s string, style tcell.Style) {
	for _, r := range s {
		screen.SetContent(x, y, r, nil, style)
		x++
	}
}
