// Package logger 基于 zap 构建游戏日志
//
// 系统通过 Named 子日志记录器输出，如 logger.Named("EnemySpawnSystem")，
// 高频的每帧信息使用 Debug 级别，生命周期事件（玩家被击毁、最高分保存）使用 Info 级别。
package logger

import (
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/gonewx/starlaser/pkg/config"
)

// New 根据日志配置创建 zap 日志记录器
//
// 参数:
//   - cfg: 日志配置；Format 为 "json" 时使用生产配置，否则使用控制台格式
//
// 返回:
//   - *zap.Logger: 日志记录器
//   - error: 构建失败时返回错误
func New(cfg config.LoggingConfig) (*zap.Logger, error) {
	var level zapcore.Level
	if err := level.UnmarshalText([]byte(cfg.Level)); err != nil {
		level = zapcore.InfoLevel
	}

	var zapCfg zap.Config
	if cfg.Format == "json" {
		zapCfg = zap.NewProductionConfig()
	} else {
		zapCfg = zap.NewDevelopmentConfig()
		zapCfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
		zapCfg.EncoderConfig.EncodeTime = zapcore.TimeEncoderOfLayout("15:04:05")
		zapCfg.EncoderConfig.ConsoleSeparator = "  "
		zapCfg.DisableCaller = true
		zapCfg.DisableStacktrace = true
	}
	zapCfg.Level = zap.NewAtomicLevelAt(level)
	if cfg.Output != "" {
		zapCfg.OutputPaths = []string{cfg.Output}
		zapCfg.ErrorOutputPaths = []string{cfg.Output}
	}

	return zapCfg.Build()
}

// OrNop 返回 l，l 为 nil 时返回不输出任何内容的日志记录器
// 让系统构造函数可以接受 nil 日志记录器（测试中常见）
func OrNop(l *zap.Logger) *zap.Logger {
	if l == nil {
		return zap.NewNop()
	}
	return l
}

// Startup 返回输出到 stderr 的控制台日志记录器
// 用于配置加载之前或应用日志已关闭之后的启动、退出错误
func Startup() *zap.Logger {
	return newConsole(zapcore.Lock(os.Stderr))
}

func newConsole(out zapcore.WriteSyncer) *zap.Logger {
	encCfg := zap.NewDevelopmentEncoderConfig()
	encCfg.EncodeTime = zapcore.TimeEncoderOfLayout("15:04:05")
	encCfg.ConsoleSeparator = "  "
	core := zapcore.NewCore(zapcore.NewConsoleEncoder(encCfg), out, zapcore.InfoLevel)
	return zap.New(core)
}
