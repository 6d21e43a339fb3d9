// shooter-tty 在字符终端中运行游戏
//
// 与桌面版共用同一套核心逻辑（battle 包），只替换输入和渲染：
// tcell 负责键盘和绘制，命中时用 beep 播放提示音。
//
// 用法:
//
//	go run ./cmd/shooter-tty [-config data/game.yaml] [-seed abc] [-log shooter.log] [-mute]
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"
	"go.uber.org/zap"

	"github.com/gonewx/starlaser/pkg/battle"
	"github.com/gonewx/starlaser/pkg/config"
	"github.com/gonewx/starlaser/pkg/game"
	"github.com/gonewx/starlaser/pkg/logger"
	"github.com/gonewx/starlaser/pkg/sound"
)

// frameInterval 约 60 FPS
const frameInterval = 16 * time.Millisecond

// maxFrameDelta 单帧最大时长，避免终端卡顿后实体瞬移
const maxFrameDelta = 0.1

func main() {
	configPath := flag.String("config", "", "游戏配置文件（.yaml 或 .toml），默认使用内置默认值")
	seed := flag.String("seed", "", "随机种子，非空时对局可复现")
	logPath := flag.String("log", "", "日志文件（终端被游戏占用，默认不输出日志）")
	mute := flag.Bool("mute", false, "关闭命中音效")
	flag.Parse()

	if err := run(*configPath, *seed, *logPath, *mute); err != nil {
		startupLog := logger.Startup()
		startupLog.Error("shooter-tty", zap.Error(err))
		_ = startupLog.Sync()
		os.Exit(1)
	}
}

func loadConfig(path, seed string) (*config.GameConfig, error) {
	cfg := config.DefaultGameConfig()
	if path != "" {
		loaded, err := config.LoadGameConfig(path)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}
	if seed != "" {
		cfg.Seed = seed
	}
	return cfg, nil
}

func run(configPath, seed, logPath string, mute bool) error {
	cfg, err := loadConfig(configPath, seed)
	if err != nil {
		return err
	}

	log := zap.NewNop()
	if logPath != "" {
		cfg.Logging.Output = logPath
		if log, err = logger.New(cfg.Logging); err != nil {
			return fmt.Errorf("failed to create logger: %w", err)
		}
	}
	defer func() { _ = log.Sync() }()

	highScores := game.NewHighScoreStore(game.OpenStorage(game.DefaultAppName, log), log)

	hitSound := sound.NewHitSound()
	if !mute {
		if err := hitSound.Init(); err != nil {
			log.Warn("audio unavailable, running silent", zap.Error(err))
		}
	}
	defer hitSound.Close()

	newBattle := func() (*battle.Battle, error) {
		b, err := battle.New(battle.Options{Config: cfg, Logger: log, HighScores: highScores})
		if err != nil {
			return nil, err
		}
		b.Hits().Subscribe(hitSound.OnHit)
		return b, nil
	}

	b, err := newBattle()
	if err != nil {
		return err
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("failed to create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("failed to init screen: %w", err)
	}
	defer screen.Fini()
	screen.HideCursor()

	eventChan := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				// Fini 之后返回 nil
				return
			}
			eventChan <- ev
		}
	}()

	ticker := time.NewTicker(frameInterval)
	defer ticker.Stop()

	var latch inputLatch
	last := time.Now()

	for {
		select {
		case ev := <-eventChan:
			switch ev := ev.(type) {
			case *tcell.EventKey:
				action := actionFor(ev)
				switch action {
				case actionQuit:
					log.Info("quit", zap.Int("score", b.State().GetScore()))
					return nil
				case actionRestart:
					if !b.State().IsGameOver() {
						continue
					}
					next, err := newBattle()
					if err != nil {
						log.Error("failed to restart battle", zap.Error(err))
						continue
					}
					b = next
					latch.reset()
				default:
					latch.press(action, time.Now())
				}
			case *tcell.EventResize:
				screen.Sync()
			}

		case now := <-ticker.C:
			dt := now.Sub(last).Seconds()
			last = now
			if dt > maxFrameDelta {
				dt = maxFrameDelta
			}

			b.Update(dt, latch.signals(now))
			draw(screen, b, highScores.Best())
		}
	}
}
