package render

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// spriteTextureSize 是程序生成的打击圈纹理尺寸，绘制时再缩放到目标直径
const spriteTextureSize = 128

// Sprite 是可以居中绘制的精灵
type Sprite interface {
	// DrawCentered 以 (x, y) 为中心绘制精灵，并用 tint 着色
	DrawCentered(dst *ebiten.Image, x, y float64, tint color.Color)
}

// ImageSprite 用一张 ebiten 图片实现 Sprite
//
// Size > 0 时将图片等比缩放到宽度为 Size 的正方形区域，否则按原尺寸绘制。
type ImageSprite struct {
	Image *ebiten.Image
	Size  float64
}

// DrawCentered 以 (x, y) 为中心绘制图片
func (s ImageSprite) DrawCentered(dst *ebiten.Image, x, y float64, tint color.Color) {
	drawImageCentered(dst, s.Image, x, y, s.Size, tint)
}

// contextSprite 按渲染上下文当前的缩放系数绘制
type contextSprite struct {
	ctx   *Context
	image *ebiten.Image
}

func (s *contextSprite) DrawCentered(dst *ebiten.Image, x, y float64, tint color.Color) {
	drawImageCentered(dst, s.image, x, y, s.ctx.Scale(), tint)
}

// drawImageCentered 居中绘制 img，size 为目标宽度（<=0 表示原尺寸）
func drawImageCentered(dst, img *ebiten.Image, x, y, size float64, tint color.Color) {
	if dst == nil || img == nil {
		return
	}

	bounds := img.Bounds()
	w := float64(bounds.Dx())
	h := float64(bounds.Dy())
	if w == 0 || h == 0 {
		return
	}

	var op ebiten.DrawImageOptions
	if size > 0 {
		k := size / w
		op.GeoM.Scale(k, k)
		w *= k
		h *= k
	}
	op.GeoM.Translate(x-w/2, y-h/2)
	op.ColorScale.ScaleWithColor(tint)
	op.Filter = ebiten.FilterLinear
	dst.DrawImage(img, &op)
}

// NewHitCircleImage 程序生成白色打击圈纹理
// 外圈较暗、中心较亮，着色后仍能看出立体感
func NewHitCircleImage() *ebiten.Image {
	img := ebiten.NewImage(spriteTextureSize, spriteTextureSize)
	c := float32(spriteTextureSize) / 2
	vector.DrawFilledCircle(img, c, c, c-1, color.NRGBA{R: 200, G: 200, B: 200, A: 255}, true)
	vector.DrawFilledCircle(img, c, c, c*0.7, color.NRGBA{R: 255, G: 255, B: 255, A: 255}, true)
	return img
}

// NewHitCircleOverlayImage 程序生成打击圈外框纹理（白色圆环）
func NewHitCircleOverlayImage() *ebiten.Image {
	img := ebiten.NewImage(spriteTextureSize, spriteTextureSize)
	c := float32(spriteTextureSize) / 2
	vector.StrokeCircle(img, c, c, c-4, 6, color.White, true)
	return img
}
