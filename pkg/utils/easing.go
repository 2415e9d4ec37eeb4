package utils

import "math"

// 缓动函数
//
// 接受进度 t ∈ [0, 1]，返回缓动后的值 ∈ [0, 1]。
// 查看器用它们驱动滑条跟随球沿 PointAt 运动。

// EaseFunc 缓动函数类型
type EaseFunc func(t float64) float64

// EaseLinear 匀速
func EaseLinear(t float64) float64 {
	return t
}

// EaseInOutCubic 三次方缓入缓出
//
//	t < 0.5: f(t) = 4t³
//	t >= 0.5: f(t) = 1 - (-2t + 2)³ / 2
func EaseInOutCubic(t float64) float64 {
	if t < 0.5 {
		return 4 * t * t * t
	}
	return 1 - math.Pow(-2*t+2, 3)/2
}

// EaseOutQuad 二次方缓出
func EaseOutQuad(t float64) float64 {
	return 1 - (1-t)*(1-t)
}

// EasingByName 按名称查找缓动函数，未知名称回退为 EaseLinear
//
// 返回：
//   - EaseFunc: 缓动函数
//   - bool: 名称是否已知
func EasingByName(name string) (EaseFunc, bool) {
	switch name {
	case "", "linear":
		return EaseLinear, true
	case "inOutCubic":
		return EaseInOutCubic, true
	case "outQuad":
		return EaseOutQuad, true
	}
	return EaseLinear, false
}

// RepeatProgress 将经过时间映射到往返滑条上的进度 t ∈ [0, 1]
//
// 奇数趟从头到尾，偶数趟从尾到头；duration <= 0 时返回 0。
// repeats 为总趟数，超出后停在最后一趟的终点。
func RepeatProgress(elapsed, duration float64, repeats int) float64 {
	if duration <= 0 || elapsed <= 0 {
		return 0
	}
	if repeats < 1 {
		repeats = 1
	}
	span := elapsed / duration
	if span >= float64(repeats) {
		if repeats%2 == 0 {
			return 0
		}
		return 1
	}
	lap := int(span)
	t := span - float64(lap)
	if lap%2 == 1 {
		return 1 - t
	}
	return t
}
