// Package app 提供游戏应用的核心包装器
//
// 该包将游戏初始化逻辑从 main 包提取出来：加载配置、创建日志记录器、
// 打开最高分存储并创建游戏场景。桌面端通过 main.go 调用 NewApp()。
package app

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"go.uber.org/zap"

	"github.com/gonewx/starlaser/pkg/battle"
	"github.com/gonewx/starlaser/pkg/config"
	"github.com/gonewx/starlaser/pkg/embedded"
	"github.com/gonewx/starlaser/pkg/game"
	"github.com/gonewx/starlaser/pkg/logger"
	"github.com/gonewx/starlaser/pkg/scenes"
)

// Config 定义应用启动配置
type Config struct {
	// Verbose 启用详细日志输出（debug 级别）
	Verbose bool
	// ConfigPath 游戏配置文件路径（.yaml 或 .toml），为空则使用嵌入的 data/game.yaml
	ConfigPath string
	// Debug 绘制碰撞盒和调试信息
	Debug bool
	// AppName gdata 存储使用的应用名，为空使用 game.DefaultAppName
	AppName string
}

// App 是游戏应用的核心包装器，实现 ebiten.Game 接口
type App struct {
	sceneManager             *scenes.SceneManager
	gameConfig               *config.GameConfig
	logger                   *zap.Logger
	pendingWindowSizeReset   bool // 延迟设置窗口大小标志
	windowSizeResetCountdown int  // 延迟帧数
}

// NewApp 创建并初始化游戏应用
//
// 使用嵌入配置时，调用此函数前必须先调用 embedded.Init()，否则使用默认配置。
func NewApp(cfg Config) (*App, error) {
	gameConfig, err := LoadGameConfig(cfg.ConfigPath)
	if err != nil {
		return nil, err
	}
	if cfg.Verbose {
		gameConfig.Logging.Level = "debug"
	}

	log, err := logger.New(gameConfig.Logging)
	if err != nil {
		return nil, fmt.Errorf("日志初始化失败: %w", err)
	}
	log.Info("config loaded",
		zap.String("source", configSource(cfg.ConfigPath)),
		zap.Float64("width", gameConfig.Window.Width),
		zap.Float64("height", gameConfig.Window.Height),
		zap.Bool("seeded", gameConfig.Seed != ""))

	appName := cfg.AppName
	if appName == "" {
		appName = game.DefaultAppName
	}
	highScores := game.NewHighScoreStore(game.OpenStorage(appName, log), log)
	log.Info("high scores loaded", zap.Int("best", highScores.Best()))

	sceneManager := scenes.NewSceneManager()
	gameScene, err := scenes.NewGameScene(scenes.GameSceneOptions{
		NewBattle: func() (*battle.Battle, error) {
			return battle.New(battle.Options{
				Config:     gameConfig,
				Logger:     log,
				HighScores: highScores,
			})
		},
		HighScores: highScores,
		Debug:      cfg.Debug,
		Logger:     log,
	})
	if err != nil {
		return nil, fmt.Errorf("游戏场景创建失败: %w", err)
	}
	sceneManager.SwitchTo(gameScene)

	return &App{
		sceneManager: sceneManager,
		gameConfig:   gameConfig,
		logger:       log.Named("App"),
	}, nil
}

// LoadGameConfig 加载游戏配置
// path 为空时读取嵌入的 data/game.yaml；没有嵌入资源（移动端）时使用默认配置
func LoadGameConfig(path string) (*config.GameConfig, error) {
	if path == "" && !embedded.IsInitialized() {
		return config.DefaultGameConfig(), nil
	}
	if path != "" {
		gameConfig, err := config.LoadGameConfig(path)
		if err != nil {
			return nil, fmt.Errorf("配置加载失败: %w", err)
		}
		return gameConfig, nil
	}

	data, err := embedded.ReadFile(embedded.GameConfigPath)
	if err != nil {
		return nil, fmt.Errorf("嵌入配置读取失败: %w", err)
	}
	gameConfig, err := config.ParseGameConfig(data, config.FormatYAML)
	if err != nil {
		return nil, fmt.Errorf("嵌入配置加载失败: %w", err)
	}
	return gameConfig, nil
}

func configSource(path string) string {
	switch {
	case path != "":
		return path
	case embedded.IsInitialized():
		return "embedded:" + embedded.GameConfigPath
	default:
		return "defaults"
	}
}

// Update 更新游戏逻辑
// 每个 tick 调用一次（通常每秒 60 次）
func (a *App) Update() error {
	// 延迟设置窗口大小（退出全屏后需要等待几帧才能正确设置）
	if a.pendingWindowSizeReset {
		a.windowSizeResetCountdown--
		if a.windowSizeResetCountdown <= 0 {
			w, h := a.WindowSize()
			ebiten.SetWindowSize(w, h)
			a.logger.Debug("delayed SetWindowSize", zap.Int("width", w), zap.Int("height", h))
			a.pendingWindowSizeReset = false
		}
	}

	// F11 切换全屏
	if inpututil.IsKeyJustPressed(ebiten.KeyF11) {
		if ebiten.IsFullscreen() {
			ebiten.SetFullscreen(false)
			if ebiten.IsWindowMaximized() || ebiten.IsWindowMinimized() {
				ebiten.RestoreWindow()
			}
			// 延迟几帧后设置窗口大小，让窗口管理器有时间处理
			a.pendingWindowSizeReset = true
			a.windowSizeResetCountdown = 3
		} else {
			ebiten.SetFullscreen(true)
		}
	}

	deltaTime := 1.0 / float64(ebiten.TPS())
	a.sceneManager.Update(deltaTime)
	return nil
}

// Draw 绘制游戏画面
// 每帧调用一次
func (a *App) Draw(screen *ebiten.Image) {
	a.sceneManager.Draw(screen)
}

// DrawFinalScreen 实现 FinalScreenDrawer 接口
// 用于控制全屏时的缩放和 letterbox 颜色
func (a *App) DrawFinalScreen(screen ebiten.FinalScreen, offscreen *ebiten.Image, geoM ebiten.GeoM) {
	screen.Fill(color.Black)
	op := &ebiten.DrawImageOptions{}
	op.GeoM = geoM
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(offscreen, op)
}

// Layout 返回游戏的逻辑屏幕尺寸（即游戏区域尺寸）
// 此尺寸独立于实际窗口大小，Ebitengine 会自动处理缩放
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	return a.WindowSize()
}

// WindowSize 返回配置中的窗口尺寸，至少 1 像素（零宽游戏区域也需要可用的窗口）
func (a *App) WindowSize() (int, int) {
	return max(1, int(a.gameConfig.Window.Width)), max(1, int(a.gameConfig.Window.Height))
}

// Title 返回窗口标题
func (a *App) Title() string {
	return a.gameConfig.Window.Title
}

// Close 刷新日志缓冲
func (a *App) Close() {
	_ = a.logger.Sync()
}
