package curves

import (
	"errors"
	"fmt"
	"log"

	"github.com/decker502/osucurve/pkg/beatmap"
	"github.com/decker502/osucurve/pkg/render"
)

// New 根据滑条类型创建曲线
//
//   - 'P' 且恰好 3 个控制点：圆弧（共线时退化为贝塞尔）
//   - 'C'：Catmull-Rom
//   - 'L'：折线
//   - 其他：贝塞尔
//
// 返回：
//   - Slider: 已生成采样点的曲线
//   - error: 缺少上下文、打击物件缺少控制点或控制点坐标数量不一致
func New(hitObject *beatmap.HitObject, ctx *render.Context) (Slider, error) {
	if hitObject == nil {
		return nil, errors.New("nil hit object")
	}
	if ctx == nil {
		return nil, errors.New("nil render context")
	}
	if len(hitObject.SliderX) == 0 {
		return nil, fmt.Errorf("slider %v has no control points", hitObject)
	}
	if len(hitObject.SliderX) != len(hitObject.SliderY) {
		return nil, fmt.Errorf("slider %v has %d x and %d y control coordinates",
			hitObject, len(hitObject.SliderX), len(hitObject.SliderY))
	}

	switch {
	case hitObject.Type == beatmap.SliderPerfect && len(hitObject.SliderX) == 2:
		c, err := NewCircumscribedCircle(hitObject, ctx)
		if err == nil {
			return c, nil
		}
		log.Printf("[Curve] Perfect circle fallback to bezier for %v: %v", hitObject, err)
		return NewLinearBezier(hitObject, ctx, false), nil
	case hitObject.Type == beatmap.SliderCatmull:
		return NewCatmullCurve(hitObject, ctx), nil
	case hitObject.Type == beatmap.SliderLinear:
		return NewLinearBezier(hitObject, ctx, true), nil
	default:
		return NewLinearBezier(hitObject, ctx, false), nil
	}
}
