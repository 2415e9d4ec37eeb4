package beatmap

import (
	"fmt"
)

// SliderType 是滑条曲线类型字母
type SliderType byte

const (
	// SliderBezier 贝塞尔曲线（重复控制点表示红色锚点，分段）
	SliderBezier SliderType = 'B'
	// SliderLinear 折线
	SliderLinear SliderType = 'L'
	// SliderCatmull Catmull-Rom 样条
	SliderCatmull SliderType = 'C'
	// SliderPerfect 经过三点的圆弧
	SliderPerfect SliderType = 'P'
)

// ParseSliderType 解析曲线类型字母
func ParseSliderType(s string) (SliderType, error) {
	if len(s) != 1 {
		return 0, fmt.Errorf("invalid slider type %q", s)
	}
	switch t := SliderType(s[0]); t {
	case SliderBezier, SliderLinear, SliderCatmull, SliderPerfect:
		return t, nil
	}
	return 0, fmt.Errorf("unknown slider type %q", s)
}

// String 返回类型字母
func (t SliderType) String() string {
	return string(rune(t))
}

// HitObject 是一个滑条打击物件
//
// 坐标使用 osu! 像素（游戏区 512x384），缩放访问器根据创建时给定的 Playfield
// 转换为屏幕坐标。HitObject 创建后只读，曲线和渲染状态都不会修改它。
type HitObject struct {
	X, Y        float64    // 起点（osu! 像素）
	Type        SliderType // 曲线类型
	SliderX     []float64  // 其余控制点 X（osu! 像素）
	SliderY     []float64  // 其余控制点 Y（osu! 像素）
	PixelLength float64    // 滑条长度（osu! 像素）
	Time        int        // 出现时间（毫秒）
	ComboIndex  int        // 组合颜色索引

	playfield Playfield
}

// NewSlider 创建滑条物件
//
// 参数：
//   - pf: 游戏区映射
//   - x, y: 起点（osu! 像素）
//   - sliderType: 曲线类型
//   - points: 其余控制点（osu! 像素）
//   - pixelLength: 滑条长度（osu! 像素）
func NewSlider(pf Playfield, x, y float64, sliderType SliderType, points [][2]float64, pixelLength float64) *HitObject {
	sx := make([]float64, len(points))
	sy := make([]float64, len(points))
	for i, p := range points {
		sx[i] = p[0]
		sy[i] = p[1]
	}
	return &HitObject{
		X:           x,
		Y:           y,
		Type:        sliderType,
		SliderX:     sx,
		SliderY:     sy,
		PixelLength: pixelLength,
		playfield:   pf,
	}
}

// Playfield 返回物件使用的游戏区映射
func (h *HitObject) Playfield() Playfield {
	return h.playfield
}

// ScaledX 返回缩放后的起点 X
func (h *HitObject) ScaledX() float64 {
	return h.playfield.ScaleX(h.X)
}

// ScaledY 返回缩放后的起点 Y
func (h *HitObject) ScaledY() float64 {
	return h.playfield.ScaleY(h.Y)
}

// ScaledSliderX 返回缩放后的控制点 X（新切片）
func (h *HitObject) ScaledSliderX() []float64 {
	out := make([]float64, len(h.SliderX))
	for i, x := range h.SliderX {
		out[i] = h.playfield.ScaleX(x)
	}
	return out
}

// ScaledSliderY 返回缩放后的控制点 Y（新切片）
func (h *HitObject) ScaledSliderY() []float64 {
	out := make([]float64, len(h.SliderY))
	for i, y := range h.SliderY {
		out[i] = h.playfield.ScaleY(y)
	}
	return out
}

// ScaledPixelLength 返回屏幕像素下的滑条长度
func (h *HitObject) ScaledPixelLength() float64 {
	return h.PixelLength * h.playfield.XMultiplier
}

// String 用于日志
func (h *HitObject) String() string {
	return fmt.Sprintf("Slider{type=%s time=%d start=(%.0f,%.0f) points=%d length=%.1f}",
		h.Type, h.Time, h.X, h.Y, len(h.SliderX), h.PixelLength)
}
