package scenes

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/gonewx/starlaser/pkg/systems"
)

// ReadInput 采集本帧的键盘和触摸输入
//
// 键盘：
//   - 左移：← 或 A（按住）
//   - 右移：→ 或 D（按住）
//   - 开火：空格（只在按下的那一帧触发）
//
// 触摸（移动设备）：屏幕左三分之一按住左移，右三分之一按住右移，
// 点击中间三分之一开火。
//
// 参数:
//   - screenWidth: 逻辑屏幕宽度，用于划分触摸区域
func ReadInput(screenWidth float64) systems.InputSignals {
	in := ReadKeyboard()

	var held, tapped []float64
	for _, id := range ebiten.AppendTouchIDs(nil) {
		x, _ := ebiten.TouchPosition(id)
		held = append(held, float64(x))
	}
	for _, id := range inpututil.AppendJustPressedTouchIDs(nil) {
		x, _ := ebiten.TouchPosition(id)
		tapped = append(tapped, float64(x))
	}

	return mergeSignals(in, touchSignals(held, tapped, screenWidth))
}

// ReadKeyboard 采集本帧的键盘输入
func ReadKeyboard() systems.InputSignals {
	return systems.InputSignals{
		MoveLeft:  ebiten.IsKeyPressed(ebiten.KeyArrowLeft) || ebiten.IsKeyPressed(ebiten.KeyA),
		MoveRight: ebiten.IsKeyPressed(ebiten.KeyArrowRight) || ebiten.IsKeyPressed(ebiten.KeyD),
		FireEdge:  inpututil.IsKeyJustPressed(ebiten.KeySpace),
	}
}

// ReadRestart 本帧是否按下了重新开始键（回车或 R）或点击了屏幕
func ReadRestart() bool {
	return inpututil.IsKeyJustPressed(ebiten.KeyEnter) ||
		inpututil.IsKeyJustPressed(ebiten.KeyR) ||
		len(inpututil.AppendJustPressedTouchIDs(nil)) > 0
}

// touchSignals 根据触摸点的 X 坐标计算输入
//
// 参数:
//   - held: 所有按住的触摸点
//   - tapped: 本帧刚按下的触摸点
//   - width: 屏幕宽度
func touchSignals(held, tapped []float64, width float64) systems.InputSignals {
	var in systems.InputSignals
	left, right := width/3, width*2/3

	for _, x := range held {
		switch {
		case x < left:
			in.MoveLeft = true
		case x >= right:
			in.MoveRight = true
		}
	}
	for _, x := range tapped {
		if x >= left && x < right {
			in.FireEdge = true
		}
	}
	return in
}

func mergeSignals(a, b systems.InputSignals) systems.InputSignals {
	return systems.InputSignals{
		MoveLeft:  a.MoveLeft || b.MoveLeft,
		MoveRight: a.MoveRight || b.MoveRight,
		FireEdge:  a.FireEdge || b.FireEdge,
	}
}
