// Package render 提供滑条曲线的渲染上下文、渲染风格与缓存的渲染状态
package render

import (
	"fmt"
	"strings"
)

// Style 是滑条的渲染风格
type Style int

const (
	// StyleLegacy 旧式渲染：沿每个采样点绘制 overlay 精灵和打击圈精灵
	StyleLegacy Style = iota
	// StyleCached 新式渲染：首次绘制时生成滑条主体纹理，之后每帧复用
	StyleCached
)

// String 返回风格名称
func (s Style) String() string {
	switch s {
	case StyleLegacy:
		return "legacy"
	case StyleCached:
		return "cached"
	default:
		return fmt.Sprintf("Style(%d)", int(s))
	}
}

// ParseStyle 解析风格名称（不区分大小写），"new" 是 "cached" 的别名
func ParseStyle(name string) (Style, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "legacy", "old":
		return StyleLegacy, nil
	case "cached", "new":
		return StyleCached, nil
	}
	return StyleLegacy, fmt.Errorf("unknown slider style %q", name)
}

// StyleFromNewSlider 将 "新滑条" 开关转换为渲染风格
func StyleFromNewSlider(newSlider bool) Style {
	if newSlider {
		return StyleCached
	}
	return StyleLegacy
}
