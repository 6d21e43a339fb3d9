package main

import (
	"flag"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"go.uber.org/zap"

	"github.com/gonewx/starlaser/pkg/app"
	"github.com/gonewx/starlaser/pkg/embedded"
	"github.com/gonewx/starlaser/pkg/logger"
)

func main() {
	verbose := flag.Bool("verbose", false, "启用详细日志输出")
	configPath := flag.String("config", "", "游戏配置文件（.yaml 或 .toml），默认使用内置配置")
	debug := flag.Bool("debug", false, "绘制碰撞盒和调试信息")
	flag.Parse()

	startupLog := logger.Startup()

	// 初始化嵌入资源
	embedded.Init(dataFS)

	game, err := app.NewApp(app.Config{
		Verbose:    *verbose,
		ConfigPath: *configPath,
		Debug:      *debug,
	})
	if err != nil {
		startupLog.Error("启动失败", zap.Error(err))
		_ = startupLog.Sync()
		os.Exit(1)
	}

	w, h := game.WindowSize()
	ebiten.SetWindowSize(w, h)
	ebiten.SetWindowTitle(game.Title())

	// Start the game loop
	// This will call Update() and Draw() repeatedly until the window is closed
	err = ebiten.RunGame(game)
	game.Close()
	if err != nil {
		startupLog.Error("游戏异常退出", zap.Error(err))
		_ = startupLog.Sync()
		os.Exit(1)
	}
}
