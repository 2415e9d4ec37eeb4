package curves

import (
	"errors"
	"math"

	"github.com/decker502/osucurve/pkg/beatmap"
	"github.com/decker502/osucurve/pkg/config"
	"github.com/decker502/osucurve/pkg/render"
	"github.com/decker502/osucurve/pkg/types"
)

// ErrCollinear 表示三个控制点共线，无法确定外接圆
var ErrCollinear = errors.New("control points are collinear")

// collinearEpsilon 是判定三点共线的行列式阈值
const collinearEpsilon = 1e-6

// CircumscribedCircle 是经过三个控制点的圆弧滑条
//
// 圆弧从起点出发，经过中间点的方向，扫过的弧长等于滑条长度。
type CircumscribedCircle struct {
	Curve

	center   types.Vec2f
	radius   float64
	startAng float64 // 弧度
	endAng   float64 // 弧度

	drawStartAngle float64 // 角度制
	drawEndAngle   float64 // 角度制
}

// NewCircumscribedCircle 创建圆弧滑条
//
// 返回：
//   - *CircumscribedCircle: 圆弧曲线
//   - error: 控制点不是 3 个，或三点共线（ErrCollinear）
func NewCircumscribedCircle(hitObject *beatmap.HitObject, ctx *render.Context) (*CircumscribedCircle, error) {
	c := &CircumscribedCircle{Curve: newCurve(hitObject, ctx)}
	if c.controlPointCount() != 3 {
		return nil, errors.New("circumscribed circle needs exactly 3 control points")
	}

	start, mid, end := c.controlPoint(0), c.controlPoint(1), c.controlPoint(2)
	center, ok := circumcenter(start, mid, end)
	if !ok {
		return nil, ErrCollinear
	}
	c.center = center
	c.radius = start.Dist(center)

	// 经过中间点的方向：叉积为正时角度递增
	dir := 1.0
	if mid.Sub(start).Cross(end.Sub(mid)) < 0 {
		dir = -1.0
	}

	// 弧长 = 角度 * 半径
	arcAng := hitObject.ScaledPixelLength() / c.radius
	c.startAng = math.Atan2(start.Y-center.Y, start.X-center.X)
	c.endAng = c.startAng + dir*arcAng

	// 端点切线方向
	c.drawStartAngle = (c.startAng + dir*math.Pi/2) * 180 / math.Pi
	c.drawEndAngle = (c.endAng - dir*math.Pi/2) * 180 / math.Pi

	step := hitObject.ScaledPixelLength() / config.CurvePointsSeparation
	n := int(step) + 1
	if step <= 0 {
		step, n = 1, 2
	}
	c.curve = make([]types.Vec2f, n)
	for i := range c.curve {
		c.curve[i] = c.PointAt(float64(i) / step)
	}

	return c, nil
}

// PointAt 按角度线性插值求圆弧上的点
func (c *CircumscribedCircle) PointAt(t float64) types.Vec2f {
	ang := Lerp(c.startAng, c.endAng, t)
	return types.Vec2f{
		X: math.Cos(ang)*c.radius + c.center.X,
		Y: math.Sin(ang)*c.radius + c.center.Y,
	}
}

// StartAngle 返回起点切线方向（角度制）
func (c *CircumscribedCircle) StartAngle() float64 {
	return c.drawStartAngle
}

// EndAngle 返回终点指回圆弧的切线方向（角度制）
func (c *CircumscribedCircle) EndAngle() float64 {
	return c.drawEndAngle
}

// Center 返回圆心
func (c *CircumscribedCircle) Center() types.Vec2f {
	return c.center
}

// Radius 返回半径
func (c *CircumscribedCircle) Radius() float64 {
	return c.radius
}

// circumcenter 求三点外接圆圆心，三点共线时返回 false
func circumcenter(a, b, c types.Vec2f) (types.Vec2f, bool) {
	d := 2 * (a.X*(b.Y-c.Y) + b.X*(c.Y-a.Y) + c.X*(a.Y-b.Y))
	if math.Abs(d) < collinearEpsilon {
		return types.Vec2f{}, false
	}
	a2 := a.X*a.X + a.Y*a.Y
	b2 := b.X*b.X + b.Y*b.Y
	c2 := c.X*c.X + c.Y*c.Y
	return types.Vec2f{
		X: (a2*(b.Y-c.Y) + b2*(c.Y-a.Y) + c2*(a.Y-b.Y)) / d,
		Y: (a2*(c.X-b.X) + b2*(a.X-c.X) + c2*(b.X-a.X)) / d,
	}, true
}
