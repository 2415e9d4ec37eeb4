package render

import (
	"image/color"
	"log"

	"github.com/decker502/osucurve/pkg/beatmap"
	"github.com/decker502/osucurve/pkg/config"
	"github.com/decker502/osucurve/pkg/types"
	"github.com/hajimehoshi/ebiten/v2"
)

// RenderState 是单条曲线缓存的渲染表示
//
// 渲染状态在创建时绑定缩放系数和打击物件，之后不会随它们变化；
// 缩放系数改变后必须丢弃重建。
type RenderState interface {
	// Draw 用 clr 着色绘制点序列（首次调用时生成缓存）
	Draw(dst *ebiten.Image, clr color.Color, points []types.Vec2f)
	// DiscardCache 释放缓存的纹理
	DiscardCache()
	// Scale 返回创建时的缩放系数
	Scale() float64
}

// RenderStateFactory 创建渲染状态
type RenderStateFactory func(scale float64, hitObject *beatmap.HitObject) RenderState

// Context 是曲线共享的渲染上下文
//
// Context 持有缩放系数（打击圈直径，屏幕像素）、打击圈精灵、滑条外观
// 以及渲染状态工厂。所有曲线在构造时拿到同一个 Context，缩放通过
// SetScale 统一修改。
//
// 与游戏循环一样，Context 不是线程安全的，只能在渲染线程中使用。
type Context struct {
	scale            float64
	skin             *config.SliderSkinConfig
	hitCircle        Sprite
	hitCircleOverlay Sprite
	newRenderState   RenderStateFactory
}

// Option 用于定制 Context
type Option func(*Context)

// WithSkin 设置滑条外观（nil 表示默认外观）
func WithSkin(skin *config.SliderSkinConfig) Option {
	return func(c *Context) {
		if skin != nil {
			c.skin = skin
		}
	}
}

// WithSprites 替换旧式渲染使用的打击圈和 overlay 精灵
func WithSprites(hitCircle, overlay Sprite) Option {
	return func(c *Context) {
		c.hitCircle = hitCircle
		c.hitCircleOverlay = overlay
	}
}

// WithSpriteImages 用图片作为打击圈和 overlay，绘制时缩放到当前直径
// nil 图片使用程序生成的纹理
func WithSpriteImages(hitCircle, overlay *ebiten.Image) Option {
	return func(c *Context) {
		if hitCircle != nil {
			c.hitCircle = &contextSprite{ctx: c, image: hitCircle}
		}
		if overlay != nil {
			c.hitCircleOverlay = &contextSprite{ctx: c, image: overlay}
		}
	}
}

// WithRenderStateFactory 替换渲染状态工厂
func WithRenderStateFactory(f RenderStateFactory) Option {
	return func(c *Context) {
		c.newRenderState = f
	}
}

// NewContext 创建渲染上下文
//
// 参数：
//   - scale: 初始缩放系数（打击圈直径），<=0 时使用 config.DefaultCircleDiameter
//   - opts: 可选定制项
func NewContext(scale float64, opts ...Option) *Context {
	if scale <= 0 {
		scale = config.DefaultCircleDiameter
	}
	c := &Context{
		scale: scale,
		skin:  config.DefaultSliderSkin(),
	}
	c.newRenderState = func(scale float64, hitObject *beatmap.HitObject) RenderState {
		return NewCurveRenderState(scale, hitObject, c.skin)
	}

	for _, opt := range opts {
		opt(c)
	}

	if c.hitCircle == nil {
		c.hitCircle = &contextSprite{ctx: c, image: NewHitCircleImage()}
	}
	if c.hitCircleOverlay == nil {
		c.hitCircleOverlay = &contextSprite{ctx: c, image: NewHitCircleOverlayImage()}
	}
	return c
}

// Scale 返回当前缩放系数
func (c *Context) Scale() float64 {
	return c.scale
}

// SetScale 替换所有共享此上下文的曲线的缩放系数
//
// 已存在的渲染状态不会被立即释放；曲线在下一次缓存式绘制时发现缩放不一致
// 会自行丢弃并重建。
func (c *Context) SetScale(factor float64) {
	if factor <= 0 {
		log.Printf("[RenderContext] Warning: ignoring non-positive scale %v", factor)
		return
	}
	c.scale = factor
}

// Skin 返回滑条外观
func (c *Context) Skin() *config.SliderSkinConfig {
	return c.skin
}

// HitCircle 返回打击圈精灵
func (c *Context) HitCircle() Sprite {
	return c.hitCircle
}

// HitCircleOverlay 返回 overlay 精灵
func (c *Context) HitCircleOverlay() Sprite {
	return c.hitCircleOverlay
}

// NewRenderState 以当前缩放系数为 hitObject 创建渲染状态
func (c *Context) NewRenderState(hitObject *beatmap.HitObject) RenderState {
	return c.newRenderState(c.scale, hitObject)
}
