package curves

import (
	"github.com/decker502/osucurve/pkg/beatmap"
	"github.com/decker502/osucurve/pkg/render"
	"github.com/decker502/osucurve/pkg/types"
)

// catmullApproxStep 估算每段 Catmull-Rom 采样数时每个采样点对应的弦长
const catmullApproxStep = 4.0

// CatmullCurve 是经过所有控制点的均匀 Catmull-Rom 样条滑条
//
// 首尾控制点各重复一次作为切线控制点，使样条经过起点和终点：
//
//	aabc abcd bcdd
type CatmullCurve struct {
	*EqualDistanceMultiCurve
}

// NewCatmullCurve 创建 Catmull-Rom 滑条
func NewCatmullCurve(hitObject *beatmap.HitObject, ctx *render.Context) *CatmullCurve {
	c := &CatmullCurve{EqualDistanceMultiCurve: newEqualDistanceMultiCurve(hitObject, ctx)}

	n := c.controlPointCount()
	var window []types.Vec2f
	var segments [][]types.Vec2f

	first, second := c.controlPoint(0), c.controlPoint(1)
	if !first.Equals(second) {
		window = append(window, first)
	}
	for i := 0; i < n; i++ {
		window = append(window, c.controlPoint(i))
		if len(window) >= 4 {
			segments = append(segments, approximateCatmull(window[len(window)-4:]))
		}
	}
	last, beforeLast := c.controlPoint(n-1), c.controlPoint(n-2)
	if !last.Equals(beforeLast) {
		window = append(window, last)
		if len(window) >= 4 {
			segments = append(segments, approximateCatmull(window[len(window)-4:]))
		}
	}

	c.init(segments)
	return c
}

// catmullPoint 求均匀 Catmull-Rom 段 (p1 → p2) 在 t 处的点
func catmullPoint(p0, p1, p2, p3 types.Vec2f, t float64) types.Vec2f {
	t2 := t * t
	t3 := t2 * t
	return types.Vec2f{
		X: 0.5 * ((2 * p1.X) + (-p0.X+p2.X)*t + (2*p0.X-5*p1.X+4*p2.X-p3.X)*t2 + (-p0.X+3*p1.X-3*p2.X+p3.X)*t3),
		Y: 0.5 * ((2 * p1.Y) + (-p0.Y+p2.Y)*t + (2*p0.Y-5*p1.Y+4*p2.Y-p3.Y)*t2 + (-p0.Y+3*p1.Y-3*p2.Y+p3.Y)*t3),
	}
}

// approximateCatmull 把四个控制点定义的一段样条采样成折线（p1 到 p2）
func approximateCatmull(w []types.Vec2f) []types.Vec2f {
	p0, p1, p2, p3 := w[0], w[1], w[2], w[3]
	n := int(p1.Dist(p2)/catmullApproxStep) + 2
	out := make([]types.Vec2f, n)
	for i := 0; i < n; i++ {
		out[i] = catmullPoint(p0, p1, p2, p3, float64(i)/float64(n-1))
	}
	return out
}
