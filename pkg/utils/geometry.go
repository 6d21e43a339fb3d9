package utils

import "math"

// Vec2 二维向量
type Vec2 struct {
	X, Y float64
}

// Length 返回向量长度
func (v Vec2) Length() float64 {
	return math.Hypot(v.X, v.Y)
}

// Scale 返回缩放后的向量
func (v Vec2) Scale(s float64) Vec2 {
	return Vec2{X: v.X * s, Y: v.Y * s}
}

// NormalizeOrZero 返回与 v 同向的单位向量
// v 长度为 0（或非有限值）时返回零向量，避免除零产生 NaN
func NormalizeOrZero(v Vec2) Vec2 {
	length := v.Length()
	if length == 0 || math.IsNaN(length) || math.IsInf(length, 0) {
		return Vec2{}
	}
	return Vec2{X: v.X / length, Y: v.Y / length}
}

// AABB 轴对齐边界框，以中心点和半尺寸表示
type AABB struct {
	Center Vec2
	Half   Vec2
}

// NewAABB 以中心坐标和半宽、半高创建边界框
func NewAABB(x, y, halfWidth, halfHeight float64) AABB {
	return AABB{
		Center: Vec2{X: x, Y: y},
		Half:   Vec2{X: halfWidth, Y: halfHeight},
	}
}

// Min 返回左下角
func (b AABB) Min() Vec2 {
	return Vec2{X: b.Center.X - b.Half.X, Y: b.Center.Y - b.Half.Y}
}

// Max 返回右上角
func (b AABB) Max() Vec2 {
	return Vec2{X: b.Center.X + b.Half.X, Y: b.Center.Y + b.Half.Y}
}

// Intersects 检查两个边界框是否重叠
// 两个轴上都重叠才算碰撞，边缘相接也算碰撞；结果与参数顺序无关
func (b AABB) Intersects(other AABB) bool {
	bMin, bMax := b.Min(), b.Max()
	oMin, oMax := other.Min(), other.Max()

	return bMin.X <= oMax.X &&
		oMin.X <= bMax.X &&
		bMin.Y <= oMax.Y &&
		oMin.Y <= bMax.Y
}
