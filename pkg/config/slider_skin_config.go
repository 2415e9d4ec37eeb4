package config

import (
	"fmt"
	"image/color"

	"github.com/decker502/osucurve/pkg/embedded"
	"gopkg.in/yaml.v3"
)

// RGBA 是 YAML 中使用的颜色表示
//
// 示例：
//
//	borderColor: {r: 255, g: 255, b: 255, a: 255}
type RGBA struct {
	R uint8 `yaml:"r"`
	G uint8 `yaml:"g"`
	B uint8 `yaml:"b"`
	A uint8 `yaml:"a"`
}

// Color 转换为 image/color 颜色（非预乘 alpha）
func (c RGBA) Color() color.Color {
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: c.A}
}

// SliderSkinConfig 滑条外观配置
type SliderSkinConfig struct {
	BorderColor RGBA    `yaml:"borderColor"` // 滑条边框颜色
	BodyAlpha   float64 `yaml:"bodyAlpha"`   // 滑条主体不透明度 0.0 ~ 1.0
	BorderWidth float64 `yaml:"borderWidth"` // 边框宽度占半径的比例 0.0 ~ 1.0
	InnerShade  float64 `yaml:"innerShade"`  // 主体中心高光半径占主体半径的比例 0.0 ~ 1.0
}

// DefaultSliderSkin 返回内置的滑条外观
func DefaultSliderSkin() *SliderSkinConfig {
	return &SliderSkinConfig{
		BorderColor: RGBA{R: 255, G: 255, B: 255, A: 255},
		BodyAlpha:   0.8,
		BorderWidth: 0.125,
		InnerShade:  0.5,
	}
}

// LoadSliderSkin 从 YAML 文件加载滑条外观配置
// 文件中缺失的字段保留默认值
//
// 参数：
//   - filePath: 配置文件路径（"data/" 开头读取嵌入资源，否则读取磁盘）
//
// 返回：
//   - *SliderSkinConfig: 解析后的配置
//   - error: 如果文件读取、解析或校验失败
func LoadSliderSkin(filePath string) (*SliderSkinConfig, error) {
	data, err := embedded.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read slider skin file %s: %w", filePath, err)
	}

	skin := DefaultSliderSkin()
	if err := yaml.Unmarshal(data, skin); err != nil {
		return nil, fmt.Errorf("failed to parse slider skin YAML from %s: %w", filePath, err)
	}

	if err := validateSliderSkin(skin); err != nil {
		return nil, fmt.Errorf("invalid slider skin in %s: %w", filePath, err)
	}

	return skin, nil
}

// validateSliderSkin 校验比例字段都在 [0, 1] 内
func validateSliderSkin(skin *SliderSkinConfig) error {
	if skin.BodyAlpha < 0 || skin.BodyAlpha > 1 {
		return fmt.Errorf("bodyAlpha must be in [0, 1], got %v", skin.BodyAlpha)
	}
	if skin.BorderWidth < 0 || skin.BorderWidth >= 1 {
		return fmt.Errorf("borderWidth must be in [0, 1), got %v", skin.BorderWidth)
	}
	if skin.InnerShade < 0 || skin.InnerShade > 1 {
		return fmt.Errorf("innerShade must be in [0, 1], got %v", skin.InnerShade)
	}
	return nil
}
