package scenes

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/gonewx/starlaser/pkg/utils"
)

// UI Layout Constants
const (
	ScoreTextX = 10
	ScoreTextY = 10

	// 结束画面显示的最高分条数
	GameOverTableRows = 5
	gameOverLineStep  = 16
)

// scoreText 返回左上角的得分文字
func scoreText(score int) string {
	return fmt.Sprintf("Score: %d", score)
}

// drawScore 绘制得分
func (s *GameScene) drawScore(screen *ebiten.Image) {
	ebitenutil.DebugPrintAt(screen, scoreText(s.battle.State().GetScore()), ScoreTextX, ScoreTextY)
}

// gameOverLines 结束画面的文字行
func (s *GameScene) gameOverLines() []string {
	lines := []string{
		"GAME OVER",
		scoreText(s.battle.State().GetScore()),
	}

	if s.highScores != nil {
		entries := s.highScores.Entries()
		if len(entries) > 0 {
			lines = append(lines, "", "High Scores")
		}
		for i, e := range entries {
			if i >= GameOverTableRows {
				break
			}
			marker := ""
			if e.SessionID == s.battle.State().SessionID {
				marker = " <"
			}
			lines = append(lines, fmt.Sprintf("%2d. %5d  %5.1fs%s", i+1, e.Score, e.Duration, marker))
		}
	}

	return append(lines, "", restartHint())
}

// restartHint 按平台返回重新开始提示
func restartHint() string {
	if utils.IsMobile() {
		return "Tap to restart"
	}
	return "Press Enter to restart"
}

// drawGameOver 绘制半透明遮罩和结束信息
func (s *GameScene) drawGameOver(screen *ebiten.Image) {
	bounds := screen.Bounds()
	w, h := float32(bounds.Dx()), float32(bounds.Dy())
	vector.DrawFilledRect(screen, 0, 0, w, h, overlayColor, false)

	lines := s.gameOverLines()
	y := int(h)/2 - len(lines)*gameOverLineStep/2
	for _, line := range lines {
		// DebugPrint 字符宽度约 6 像素
		x := int(w)/2 - len(line)*3
		ebitenutil.DebugPrintAt(screen, line, x, y)
		y += gameOverLineStep
	}
}
