package config

import "image/color"

// 曲线采样与 osu! 游戏区常量
const (
	// CurvePointsSeparation 是沿曲线生成的采样点之间的间距（屏幕像素）
	CurvePointsSeparation = 5.0

	// PlayfieldWidth 是 osu! 坐标系中游戏区的宽度（osu! 像素）
	PlayfieldWidth = 512.0

	// PlayfieldHeight 是 osu! 坐标系中游戏区的高度（osu! 像素）
	PlayfieldHeight = 384.0

	// ReferenceWidth / ReferenceHeight 是 4:3 参考分辨率，倍率以此为基准计算
	ReferenceWidth  = 640.0
	ReferenceHeight = 480.0

	// DefaultCircleDiameter 是默认的打击圈直径（屏幕像素），即默认缩放系数
	DefaultCircleDiameter = 100.0

	// MinCircleDiameter / MaxCircleDiameter 限制运行时缩放范围
	MinCircleDiameter = 16.0
	MaxCircleDiameter = 256.0
)

// ColorWhiteFade 是旧式滑条渲染中 overlay 精灵使用的固定半透明白色
var ColorWhiteFade = color.NRGBA{R: 255, G: 255, B: 255, A: 204}

// 查看器窗口尺寸（逻辑像素，4:3）
const (
	ViewerWindowWidth  = 1024
	ViewerWindowHeight = 768
)
