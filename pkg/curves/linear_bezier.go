package curves

import (
	"github.com/decker502/osucurve/pkg/beatmap"
	"github.com/decker502/osucurve/pkg/render"
	"github.com/decker502/osucurve/pkg/types"
)

// LinearBezier 是由多段贝塞尔曲线（或直线）组成的滑条
//
// 贝塞尔模式下，连续两个相同的控制点（红色锚点）把控制点分成多段：
//
//	a b c - c d - d e f g
//
// 直线模式下每对相邻控制点生成一段：
//
//	ab bc cd de ef fg
type LinearBezier struct {
	*EqualDistanceMultiCurve
}

// NewLinearBezier 创建贝塞尔/折线滑条
//
// 参数：
//   - hitObject: 关联的打击物件
//   - ctx: 渲染上下文
//   - line: true 表示折线模式
func NewLinearBezier(hitObject *beatmap.HitObject, ctx *render.Context, line bool) *LinearBezier {
	c := &LinearBezier{EqualDistanceMultiCurve: newEqualDistanceMultiCurve(hitObject, ctx)}

	var segments [][]types.Vec2f
	for _, seg := range c.splitSegments(line) {
		if line {
			segments = append(segments, seg)
		} else {
			segments = append(segments, approximateBezier(seg))
		}
	}

	c.init(segments)
	return c
}

// splitSegments 按模式切分控制点
func (c *LinearBezier) splitSegments(line bool) [][]types.Vec2f {
	var segments [][]types.Vec2f
	var points []types.Vec2f

	for i := 0; i < c.controlPointCount(); i++ {
		p := c.controlPoint(i)
		if n := len(points); n > 0 {
			last := points[n-1]
			if line {
				segments = append(segments, []types.Vec2f{last, p})
				points = points[:0]
			} else if p.Equals(last) {
				if n >= 2 {
					segments = append(segments, points)
				}
				points = nil
			}
		}
		points = append(points, p)
	}

	// 以红色锚点结尾时最后一段只有一个点，忽略
	if !line && len(points) >= 2 {
		segments = append(segments, points)
	}
	return segments
}
