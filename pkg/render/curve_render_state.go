package render

import (
	"image/color"
	"log"
	"math"

	"github.com/decker502/osucurve/pkg/beatmap"
	"github.com/decker502/osucurve/pkg/config"
	"github.com/decker502/osucurve/pkg/types"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// texturePadding 是纹理四周额外留出的像素，避免抗锯齿边缘被裁掉
const texturePadding = 2

// 主体纹理的底色和高光色，着色时与组合颜色相乘
var (
	bodyBaseColor      = color.NRGBA{R: 190, G: 190, B: 190, A: 255}
	bodyHighlightColor = color.NRGBA{R: 255, G: 255, B: 255, A: 255}
)

// CurveRenderState 缓存一条滑条的主体纹理
//
// 第一次 Draw 时按采样点生成两张离屏纹理（边框层和主体层），之后每帧只提交
// 两次 DrawImage，不再分配新的图片。纹理绑定创建时的缩放系数，缩放改变后
// 需要 DiscardCache 并由曲线重新创建渲染状态。
type CurveRenderState struct {
	scale     float64
	hitObject *beatmap.HitObject
	skin      *config.SliderSkinConfig

	border *ebiten.Image // 边框层：半径 = scale/2
	body   *ebiten.Image // 主体层：半径 = scale/2 * (1 - BorderWidth)

	originX, originY float64 // 纹理左上角在屏幕上的位置
	builds           int     // 纹理生成次数
}

// NewCurveRenderState 创建渲染状态（不立即生成纹理）
//
// 参数：
//   - scale: 打击圈直径（屏幕像素）
//   - hitObject: 关联的打击物件，仅用于日志
//   - skin: 滑条外观，nil 使用默认外观
func NewCurveRenderState(scale float64, hitObject *beatmap.HitObject, skin *config.SliderSkinConfig) *CurveRenderState {
	if skin == nil {
		skin = config.DefaultSliderSkin()
	}
	return &CurveRenderState{
		scale:     scale,
		hitObject: hitObject,
		skin:      skin,
	}
}

// Scale 返回创建时的缩放系数
func (s *CurveRenderState) Scale() float64 {
	return s.scale
}

// Builds 返回纹理生成的次数
func (s *CurveRenderState) Builds() int {
	return s.builds
}

// Cached 返回纹理是否已经生成
func (s *CurveRenderState) Cached() bool {
	return s.body != nil
}

// Draw 绘制滑条主体
//
// 边框层用外观中的边框颜色着色，主体层用 clr 着色并乘以主体不透明度。
func (s *CurveRenderState) Draw(dst *ebiten.Image, clr color.Color, points []types.Vec2f) {
	if dst == nil || len(points) == 0 {
		return
	}
	if s.body == nil {
		s.build(points)
	}

	var op ebiten.DrawImageOptions
	op.GeoM.Translate(s.originX, s.originY)
	op.ColorScale.ScaleWithColor(s.skin.BorderColor.Color())
	dst.DrawImage(s.border, &op)

	op.ColorScale.Reset()
	op.ColorScale.ScaleWithColor(clr)
	op.ColorScale.ScaleAlpha(float32(s.skin.BodyAlpha))
	dst.DrawImage(s.body, &op)
}

// DiscardCache 释放纹理，下一次 Draw 会重新生成
func (s *CurveRenderState) DiscardCache() {
	if s.border != nil {
		s.border.Deallocate()
		s.border = nil
	}
	if s.body != nil {
		s.body.Deallocate()
		s.body = nil
	}
}

// build 按采样点生成边框层和主体层纹理
func (s *CurveRenderState) build(points []types.Vec2f) {
	radius := s.scale / 2
	pad := radius + texturePadding

	minX, minY, maxX, maxY := types.Bounds(points)
	w := int(math.Ceil(maxX-minX+2*pad)) + 1
	h := int(math.Ceil(maxY-minY+2*pad)) + 1

	s.originX = math.Floor(minX - pad)
	s.originY = math.Floor(minY - pad)
	s.border = ebiten.NewImage(w, h)
	s.body = ebiten.NewImage(w, h)

	bodyRadius := radius * (1 - s.skin.BorderWidth)
	highlightRadius := bodyRadius * s.skin.InnerShade

	// 每一层都先画完所有点，层内重叠不会产生接缝
	for _, p := range points {
		x, y := float32(p.X-s.originX), float32(p.Y-s.originY)
		vector.DrawFilledCircle(s.border, x, y, float32(radius), color.White, true)
	}
	for _, p := range points {
		x, y := float32(p.X-s.originX), float32(p.Y-s.originY)
		vector.DrawFilledCircle(s.body, x, y, float32(bodyRadius), bodyBaseColor, true)
	}
	if highlightRadius > 0 {
		for _, p := range points {
			x, y := float32(p.X-s.originX), float32(p.Y-s.originY)
			vector.DrawFilledCircle(s.body, x, y, float32(highlightRadius), bodyHighlightColor, true)
		}
	}

	s.builds++
	log.Printf("[CurveRenderState] Built slider texture %dx%d for %v (scale=%.1f, points=%d)",
		w, h, s.hitObject, s.scale, len(points))
}
