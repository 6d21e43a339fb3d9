package game

import (
	"github.com/quasilyte/gdata/v2"
	"go.uber.org/zap"

	"github.com/gonewx/starlaser/pkg/utils"
)

// DefaultAppName gdata 存储使用的应用名
const DefaultAppName = "starlaser"

// OpenStorage 打开 gdata 跨平台存储
//
// 初始化失败不影响游戏运行：返回 nil，调用方进入降级模式（仅内存）
//
// 参数：
//   - appName: 应用名，决定存储目录
//   - logger: 日志记录器
func OpenStorage(appName string, logger *zap.Logger) *gdata.Manager {
	if err := utils.EnsureStorageDir(); err != nil && logger != nil {
		logger.Warn("storage directory not ready", zap.Error(err), zap.String("path", utils.GetStoragePath()))
	}

	manager, err := gdata.Open(gdata.Config{
		AppName: appName,
	})
	if err != nil {
		if logger != nil {
			logger.Warn("gdata unavailable, high scores will not persist", zap.Error(err))
		}
		return nil
	}
	return manager
}
