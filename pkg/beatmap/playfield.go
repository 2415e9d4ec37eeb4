// Package beatmap 提供曲线渲染需要的最小打击物件模型
//
// 本包不解析 .osu 文件，只负责保存原始 osu! 像素坐标并提供缩放到屏幕坐标后的访问器。
package beatmap

import (
	"fmt"

	"github.com/decker502/osucurve/pkg/config"
)

// Playfield 描述 osu! 游戏区到屏幕的映射
//
// 游戏区总是按 4:3 适配到窗口中，然后居中放置：
//
//	screenX = osuX * XMultiplier + XOffset
//	screenY = osuY * YMultiplier + YOffset
type Playfield struct {
	Width, Height int     // 屏幕尺寸
	XMultiplier   float64 // X 方向倍率（相对 640x480 参考分辨率）
	YMultiplier   float64 // Y 方向倍率
	XOffset       float64 // 游戏区左边距
	YOffset       float64 // 游戏区上边距
}

// NewPlayfield 根据屏幕尺寸计算游戏区映射
//
// 参数：
//   - width, height: 屏幕尺寸（像素），必须为正数
//
// 返回：
//   - Playfield: 游戏区映射
//   - error: 尺寸非法时返回错误
func NewPlayfield(width, height int) (Playfield, error) {
	if width <= 0 || height <= 0 {
		return Playfield{}, fmt.Errorf("invalid playfield size %dx%d", width, height)
	}

	// 在窗口内取最大的 4:3 区域
	swidth, sheight := width, height
	if swidth*3 > sheight*4 {
		swidth = sheight * 4 / 3
	} else {
		sheight = swidth * 3 / 4
	}

	xMul := float64(swidth) / config.ReferenceWidth
	yMul := float64(sheight) / config.ReferenceHeight

	// 偏移量截断为整数像素，避免采样点落在半像素上
	xOffset := int(float64(width)-config.PlayfieldWidth*xMul) / 2
	yOffset := int(float64(height)-config.PlayfieldHeight*yMul) / 2

	return Playfield{
		Width:       width,
		Height:      height,
		XMultiplier: xMul,
		YMultiplier: yMul,
		XOffset:     float64(xOffset),
		YOffset:     float64(yOffset),
	}, nil
}

// ScaleX 将 osu! X 坐标转换为屏幕坐标
func (p Playfield) ScaleX(x float64) float64 {
	return x*p.XMultiplier + p.XOffset
}

// ScaleY 将 osu! Y 坐标转换为屏幕坐标
func (p Playfield) ScaleY(y float64) float64 {
	return y*p.YMultiplier + p.YOffset
}
