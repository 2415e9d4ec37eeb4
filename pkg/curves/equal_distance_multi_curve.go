package curves

import (
	"math"
	"sort"

	"github.com/decker502/osucurve/pkg/beatmap"
	"github.com/decker502/osucurve/pkg/config"
	"github.com/decker502/osucurve/pkg/render"
	"github.com/decker502/osucurve/pkg/types"
)

// minAngleDistance 计算端点角度时，参考点与端点至少相距的像素数
const minAngleDistance = 1.0

// EqualDistanceMultiCurve 把若干段原始折线按等弧长重新采样
//
// 采样点数为 ncurve+1，ncurve = int(滑条长度 / CurvePointsSeparation)。
// 滑条长度比折线短时截断；比折线长时停在折线终点。
type EqualDistanceMultiCurve struct {
	Curve

	ncurve     int
	startAngle float64
	endAngle   float64
}

// newEqualDistanceMultiCurve 创建未采样的基础结构
func newEqualDistanceMultiCurve(hitObject *beatmap.HitObject, ctx *render.Context) *EqualDistanceMultiCurve {
	return &EqualDistanceMultiCurve{Curve: newCurve(hitObject, ctx)}
}

// init 将各段折线首尾相接，按等弧长生成采样点并计算端点角度
func (c *EqualDistanceMultiCurve) init(segments [][]types.Vec2f) {
	poly := joinSegments(segments)
	if len(poly) == 0 {
		poly = []types.Vec2f{{X: c.x, Y: c.y}}
	}

	pixelLength := c.hitObject.ScaledPixelLength()
	c.ncurve = int(pixelLength / config.CurvePointsSeparation)
	if c.ncurve < 1 {
		c.ncurve = 1
	}

	cum := cumulativeLengths(poly)
	c.curve = make([]types.Vec2f, c.ncurve+1)
	for i := range c.curve {
		d := float64(i) * pixelLength / float64(c.ncurve)
		c.curve[i] = pointAtDistance(poly, cum, d)
	}

	c.startAngle = endpointAngle(c.curve, 0, 1)
	c.endAngle = endpointAngle(c.curve, c.ncurve, -1)
}

// PointAt 在相邻采样点之间插值
// t <= 0 返回第一个采样点，t >= 1 返回最后一个
func (c *EqualDistanceMultiCurve) PointAt(t float64) types.Vec2f {
	indexF := t * float64(c.ncurve)
	if indexF <= 0 {
		return c.curve[0]
	}
	index := int(indexF)
	if index >= c.ncurve {
		return c.curve[c.ncurve]
	}
	return lerpVec(c.curve[index], c.curve[index+1], indexF-float64(index))
}

// StartAngle 返回起点指向曲线内部的方向（角度制）
func (c *EqualDistanceMultiCurve) StartAngle() float64 {
	return c.startAngle
}

// EndAngle 返回终点指回曲线内部的方向（角度制）
func (c *EqualDistanceMultiCurve) EndAngle() float64 {
	return c.endAngle
}

// endpointAngle 从 points[from] 出发沿 step 方向找到第一个距离不小于
// minAngleDistance 的点，返回端点指向该点的角度；找不到时使用最远的点
func endpointAngle(points []types.Vec2f, from, step int) float64 {
	origin := points[from]
	ref := origin
	for i := from + step; i >= 0 && i < len(points); i += step {
		ref = points[i]
		if ref.Dist(origin) >= minAngleDistance {
			break
		}
	}
	return math.Atan2(ref.Y-origin.Y, ref.X-origin.X) * 180 / math.Pi
}

// joinSegments 首尾相接各段折线，去掉连接处重复的点
func joinSegments(segments [][]types.Vec2f) []types.Vec2f {
	var poly []types.Vec2f
	for _, seg := range segments {
		for _, p := range seg {
			if n := len(poly); n > 0 && poly[n-1].Equals(p) {
				continue
			}
			poly = append(poly, p)
		}
	}
	return poly
}

// cumulativeLengths 返回折线每个顶点处的累计弧长
func cumulativeLengths(poly []types.Vec2f) []float64 {
	cum := make([]float64, len(poly))
	for i := 1; i < len(poly); i++ {
		cum[i] = cum[i-1] + poly[i].Dist(poly[i-1])
	}
	return cum
}

// pointAtDistance 返回折线上弧长为 d 的点，超出两端时夹取到端点
func pointAtDistance(poly []types.Vec2f, cum []float64, d float64) types.Vec2f {
	last := len(poly) - 1
	if d <= 0 || last == 0 {
		return poly[0]
	}
	if d >= cum[last] {
		return poly[last]
	}

	// 第一个累计弧长 >= d 的顶点
	i := sort.SearchFloat64s(cum, d)
	segLen := cum[i] - cum[i-1]
	if segLen == 0 {
		return poly[i]
	}
	return lerpVec(poly[i-1], poly[i], (d-cum[i-1])/segLen)
}
