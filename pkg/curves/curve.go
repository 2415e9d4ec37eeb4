// Package curves 实现滑条曲线：参数化求值、控制点访问和绘制
//
// 所有曲线变体都嵌入 Curve 基础结构，由变体的构造函数生成采样点，
// 并实现 PointAt / StartAngle / EndAngle 三个变体相关的方法。
//
// 坐标均为屏幕坐标（已按 Playfield 缩放）。与游戏循环一致，曲线只在
// 渲染线程中使用，不做任何加锁。
package curves

import (
	"image/color"
	"log"

	"github.com/decker502/osucurve/pkg/beatmap"
	"github.com/decker502/osucurve/pkg/config"
	"github.com/decker502/osucurve/pkg/render"
	"github.com/decker502/osucurve/pkg/types"
	"github.com/hajimehoshi/ebiten/v2"
)

// Slider 是所有滑条曲线变体的公共契约
type Slider interface {
	// PointAt 返回参数 t ∈ [0, 1] 处的点
	PointAt(t float64) types.Vec2f
	// StartAngle 返回起点处的切线方向（角度制）
	StartAngle() float64
	// EndAngle 返回终点处指回曲线的方向（角度制）
	EndAngle() float64
	// Draw 绘制整条曲线
	Draw(dst *ebiten.Image, clr color.Color, style render.Style)
	// X 返回第 i 个控制点的 X（0 为起点）
	X(i int) float64
	// Y 返回第 i 个控制点的 Y（0 为起点）
	Y(i int) float64
	// Points 返回沿曲线的采样点
	Points() []types.Vec2f
	// DiscardCache 释放缓存的渲染状态
	DiscardCache()
}

// Curve 是曲线变体共享的基础结构
type Curve struct {
	hitObject *beatmap.HitObject
	ctx       *render.Context

	// 缩放后的起点，构造时确定
	x, y float64

	// 缩放后的其余控制点，两个切片等长
	sliderX, sliderY []float64

	// 沿曲线约每 config.CurvePointsSeparation 像素一个采样点，由变体生成；
	// 要么为 nil，要么非空
	curve []types.Vec2f

	// 缓存式渲染使用的渲染状态，首次绘制时创建，由本曲线独占
	renderState render.RenderState
}

// newCurve 读取打击物件的缩放坐标，初始化基础结构
func newCurve(hitObject *beatmap.HitObject, ctx *render.Context) Curve {
	return Curve{
		hitObject: hitObject,
		ctx:       ctx,
		x:         hitObject.ScaledX(),
		y:         hitObject.ScaledY(),
		sliderX:   hitObject.ScaledSliderX(),
		sliderY:   hitObject.ScaledSliderY(),
	}
}

// HitObject 返回关联的打击物件
func (c *Curve) HitObject() *beatmap.HitObject {
	return c.hitObject
}

// Points 返回采样点（未生成时为 nil）
func (c *Curve) Points() []types.Vec2f {
	return c.curve
}

// X 返回第 i 个控制点的缩放 X 坐标
// i 必须在 [0, len(sliderX)] 内，越界行为未定义
func (c *Curve) X(i int) float64 {
	if i == 0 {
		return c.x
	}
	return c.sliderX[i-1]
}

// Y 返回第 i 个控制点的缩放 Y 坐标
func (c *Curve) Y(i int) float64 {
	if i == 0 {
		return c.y
	}
	return c.sliderY[i-1]
}

// controlPoint 返回第 i 个控制点
func (c *Curve) controlPoint(i int) types.Vec2f {
	return types.Vec2f{X: c.X(i), Y: c.Y(i)}
}

// controlPointCount 返回控制点总数（含起点）
func (c *Curve) controlPointCount() int {
	return len(c.sliderX) + 1
}

// Draw 绘制整条曲线
//
// 采样点尚未生成时记录错误并直接返回，不产生任何绘制。
//
// 参数：
//   - dst: 绘制目标
//   - clr: 曲线颜色（组合颜色）
//   - style: 渲染风格，由调用方根据设置决定
func (c *Curve) Draw(dst *ebiten.Image, clr color.Color, style render.Style) {
	if len(c.curve) == 0 {
		log.Printf("[Curve] Error: draw called before curve points were generated: %v", c.hitObject)
		return
	}

	if style == render.StyleCached {
		c.drawCached(dst, clr)
		return
	}
	c.drawLegacy(dst, clr)
}

// drawCached 通过渲染状态绘制，渲染状态按需创建
func (c *Curve) drawCached(dst *ebiten.Image, clr color.Color) {
	// 渲染状态绑定创建时的缩放系数，缩放改变后重建
	if c.renderState != nil && c.renderState.Scale() != c.ctx.Scale() {
		log.Printf("[Curve] Scale changed (%.1f -> %.1f), rebuilding render state for %v",
			c.renderState.Scale(), c.ctx.Scale(), c.hitObject)
		c.DiscardCache()
	}
	if c.renderState == nil {
		c.renderState = c.ctx.NewRenderState(c.hitObject)
	}
	c.renderState.Draw(dst, clr, c.curve)
}

// drawLegacy 两遍绘制：先在所有采样点画 overlay，再在所有采样点画打击圈，
// 保证打击圈整体覆盖在 overlay 之上
func (c *Curve) drawLegacy(dst *ebiten.Image, clr color.Color) {
	overlay := c.ctx.HitCircleOverlay()
	circle := c.ctx.HitCircle()
	for _, p := range c.curve {
		overlay.DrawCentered(dst, p.X, p.Y, config.ColorWhiteFade)
	}
	for _, p := range c.curve {
		circle.DrawCentered(dst, p.X, p.Y, clr)
	}
}

// DiscardCache 释放渲染状态；没有渲染状态时为空操作
// 之后的缓存式绘制会创建新的渲染状态
func (c *Curve) DiscardCache() {
	if c.renderState == nil {
		return
	}
	c.renderState.DiscardCache()
	c.renderState = nil
}

// Lerp 线性插值 a*(1-t) + b*t
// t=0 精确返回 a，t=1 精确返回 b
func Lerp(a, b, t float64) float64 {
	return a*(1-t) + b*t
}

// lerpVec 对二维点逐分量插值
func lerpVec(a, b types.Vec2f, t float64) types.Vec2f {
	return types.Vec2f{X: Lerp(a.X, b.X, t), Y: Lerp(a.Y, b.Y, t)}
}
