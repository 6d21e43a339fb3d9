// Package utils 提供游戏开发中常用的工具函数
//
// coordinates.go 提供坐标转换工具，用于把核心逻辑的世界坐标映射到渲染端。
//
// # 坐标系统概述
//
//   - **世界坐标**：原点位于游戏区域中心，X 向右，Y 向上
//   - **屏幕坐标**：原点位于窗口左上角，Y 向下（Ebiten、tcell 的默认行为）
//   - **实体锚点**：PositionComponent.X/Y 代表实体的视觉中心
//
// # 核心转换公式
//
//	screenX = worldX + width/2
//	screenY = height/2 - worldY
package utils

import "math"

// WorldToScreen 将世界坐标转换为屏幕坐标
//
// 参数:
//   - worldX, worldY: 世界坐标（中心原点，Y 向上）
//   - width, height: 游戏区域尺寸（像素）
//
// 返回:
//   - screenX, screenY: 屏幕坐标（左上原点，Y 向下）
func WorldToScreen(worldX, worldY, width, height float64) (screenX, screenY float64) {
	return worldX + width/2, height/2 - worldY
}

// ScreenToWorld 将屏幕坐标转换为世界坐标，WorldToScreen 的逆变换
func ScreenToWorld(screenX, screenY, width, height float64) (worldX, worldY float64) {
	return screenX - width/2, height/2 - screenY
}

// WorldToCell 将世界坐标映射到字符终端的格子坐标
//
// 参数:
//   - worldX, worldY: 世界坐标
//   - width, height: 游戏区域尺寸（像素）
//   - cols, rows: 终端可用的列数和行数
//
// 返回:
//   - col, row: 格子坐标；可能落在终端之外，由调用方裁剪
func WorldToCell(worldX, worldY, width, height float64, cols, rows int) (col, row int) {
	sx, sy := WorldToScreen(worldX, worldY, width, height)
	// 向下取整：区域左侧/上方之外的坐标得到负数格子
	col = int(math.Floor(sx / width * float64(cols)))
	row = int(math.Floor(sy / height * float64(rows)))
	return col, row
}
