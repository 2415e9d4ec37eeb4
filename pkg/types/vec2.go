// Package types 定义共享的基础类型
// 这个包不依赖任何其他业务包，用于解决 curves 与 render 之间的循环引用问题
package types

import "math"

// Vec2f 是二维浮点向量（屏幕坐标或 osu! 像素坐标）
type Vec2f struct {
	X, Y float64
}

// Add 返回 v + o
func (v Vec2f) Add(o Vec2f) Vec2f {
	return Vec2f{v.X + o.X, v.Y + o.Y}
}

// Sub 返回 v - o
func (v Vec2f) Sub(o Vec2f) Vec2f {
	return Vec2f{v.X - o.X, v.Y - o.Y}
}

// Scale 返回 v * s
func (v Vec2f) Scale(s float64) Vec2f {
	return Vec2f{v.X * s, v.Y * s}
}

// Mid 返回 v 与 o 的中点
func (v Vec2f) Mid(o Vec2f) Vec2f {
	return Vec2f{(v.X + o.X) / 2, (v.Y + o.Y) / 2}
}

// Len 返回向量长度
func (v Vec2f) Len() float64 {
	return math.Hypot(v.X, v.Y)
}

// Dist 返回两点之间的距离
func (v Vec2f) Dist(o Vec2f) float64 {
	return math.Hypot(v.X-o.X, v.Y-o.Y)
}

// Cross 返回二维叉积 v.X*o.Y - v.Y*o.X
func (v Vec2f) Cross(o Vec2f) float64 {
	return v.X*o.Y - v.Y*o.X
}

// Equals 判断两点是否完全相同
func (v Vec2f) Equals(o Vec2f) bool {
	return v.X == o.X && v.Y == o.Y
}

// Bounds 返回点序列的包围盒 (minX, minY, maxX, maxY)
// 空序列返回全零
func Bounds(points []Vec2f) (minX, minY, maxX, maxY float64) {
	if len(points) == 0 {
		return 0, 0, 0, 0
	}
	minX, minY = points[0].X, points[0].Y
	maxX, maxY = minX, minY
	for _, p := range points[1:] {
		minX = math.Min(minX, p.X)
		minY = math.Min(minY, p.Y)
		maxX = math.Max(maxX, p.X)
		maxY = math.Max(maxY, p.Y)
	}
	return minX, minY, maxX, maxY
}
