package curves

import (
	"github.com/decker502/osucurve/pkg/types"
)

// bezierApproxStep 估算贝塞尔采样数时每个采样点对应的控制多边形长度
const bezierApproxStep = 4.0

// bezierPoint 用 de Casteljau 算法求贝塞尔曲线在 t 处的点
func bezierPoint(cp []types.Vec2f, t float64) types.Vec2f {
	switch len(cp) {
	case 0:
		return types.Vec2f{}
	case 1:
		return cp[0]
	}

	buf := make([]types.Vec2f, len(cp))
	copy(buf, cp)
	for n := len(buf) - 1; n > 0; n-- {
		for i := 0; i < n; i++ {
			buf[i] = lerpVec(buf[i], buf[i+1], t)
		}
	}
	return buf[0]
}

// approximateBezier 把一段贝塞尔曲线采样成折线
// 采样数随控制多边形长度增长，首尾与控制点重合
func approximateBezier(cp []types.Vec2f) []types.Vec2f {
	if len(cp) < 2 {
		return cp
	}

	approxLength := 0.0
	for i := 1; i < len(cp); i++ {
		approxLength += cp[i].Dist(cp[i-1])
	}

	n := int(approxLength/bezierApproxStep) + 2
	out := make([]types.Vec2f, n)
	for i := 0; i < n; i++ {
		out[i] = bezierPoint(cp, float64(i)/float64(n-1))
	}
	// 避免浮点误差导致终点偏移
	out[0] = cp[0]
	out[n-1] = cp[len(cp)-1]
	return out
}
