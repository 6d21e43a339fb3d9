package main

import (
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/gonewx/starlaser/pkg/systems"
)

// holdWindow 终端没有按键松开事件：按下后在此时间内视为按住，
// 自动重复产生的按键事件会不断延长
const holdWindow = 150 * time.Millisecond

// keyAction 按键对应的动作
type keyAction int

const (
	actionNone keyAction = iota
	actionLeft
	actionRight
	actionFire
	actionRestart
	actionQuit
)

// actionFor 把 tcell 按键事件映射为动作
func actionFor(ev *tcell.EventKey) keyAction {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return actionQuit
	case tcell.KeyLeft:
		return actionLeft
	case tcell.KeyRight:
		return actionRight
	case tcell.KeyEnter:
		return actionRestart
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'a', 'A':
			return actionLeft
		case 'd', 'D':
			return actionRight
		case ' ':
			return actionFire
		case 'r', 'R':
			return actionRestart
		case 'q', 'Q':
			return actionQuit
		}
	}
	return actionNone
}

// inputLatch 把离散的按键事件转换为每帧的 InputSignals
type inputLatch struct {
	leftUntil   time.Time
	rightUntil  time.Time
	firePending bool
}

// press 记录一次按键
func (l *inputLatch) press(action keyAction, now time.Time) {
	switch action {
	case actionLeft:
		l.leftUntil = now.Add(holdWindow)
		l.rightUntil = time.Time{}
	case actionRight:
		l.rightUntil = now.Add(holdWindow)
		l.leftUntil = time.Time{}
	case actionFire:
		l.firePending = true
	}
}

// signals 返回本帧的输入并消费开火边沿
func (l *inputLatch) signals(now time.Time) systems.InputSignals {
	in := systems.InputSignals{
		MoveLeft:  now.Before(l.leftUntil),
		MoveRight: now.Before(l.rightUntil),
		FireEdge:  l.firePending,
	}
	l.firePending = false
	return in
}

// reset 清除所有按住状态（重新开局时）
func (l *inputLatch) reset() {
	*l = inputLatch{}
}
