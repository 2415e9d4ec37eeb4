package config

import (
	"fmt"

	"github.com/decker502/osucurve/pkg/embedded"
	"gopkg.in/yaml.v3"
)

// DemoSlider 演示用的单个滑条定义（osu! 像素坐标）
type DemoSlider struct {
	Name        string       `yaml:"name"`
	Type        string       `yaml:"type"`        // 曲线类型字母：B / L / C / P
	X           float64      `yaml:"x"`           // 起点 X
	Y           float64      `yaml:"y"`           // 起点 Y
	Points      [][2]float64 `yaml:"points"`      // 其余控制点
	PixelLength float64      `yaml:"pixelLength"` // 滑条长度（osu! 像素）
	Time        int          `yaml:"time"`        // 出现时间（毫秒），仅用于日志
	Repeats     int          `yaml:"repeats"`     // 往返趟数，0 视为 1
	Color       RGBA         `yaml:"color"`       // 组合颜色
}

// DemoSliderConfig 演示滑条配置文件结构
type DemoSliderConfig struct {
	BallDuration float64      `yaml:"ballDuration"` // 跟随球走完一趟的秒数
	Easing       string       `yaml:"easing"`       // 跟随球缓动函数名
	Sliders      []DemoSlider `yaml:"sliders"`
}

// 默认跟随球单趟时长（秒）
const defaultBallDuration = 1.5

// LoadDemoSliders 从 YAML 文件加载演示滑条列表
// "data/" 路径在嵌入资源初始化后从嵌入资源读取
func LoadDemoSliders(filePath string) (*DemoSliderConfig, error) {
	data, err := embedded.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read demo sliders file %s: %w", filePath, err)
	}
	return ParseDemoSliders(data, filePath)
}

// ParseDemoSliders 解析并验证演示滑条 YAML，source 仅用于错误信息
func ParseDemoSliders(data []byte, source string) (*DemoSliderConfig, error) {
	var cfg DemoSliderConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse demo sliders YAML from %s: %w", source, err)
	}

	if cfg.BallDuration <= 0 {
		cfg.BallDuration = defaultBallDuration
	}

	if err := validateDemoSliders(&cfg); err != nil {
		return nil, fmt.Errorf("invalid demo sliders in %s: %w", source, err)
	}

	return &cfg, nil
}

// validateDemoSliders 验证滑条定义的完整性
func validateDemoSliders(cfg *DemoSliderConfig) error {
	if len(cfg.Sliders) == 0 {
		return fmt.Errorf("at least one slider is required")
	}

	for i, s := range cfg.Sliders {
		switch s.Type {
		case "B", "L", "C", "P":
		default:
			return fmt.Errorf("slider %d (%s): unknown curve type %q", i, s.Name, s.Type)
		}
		if len(s.Points) == 0 {
			return fmt.Errorf("slider %d (%s): at least one control point is required", i, s.Name)
		}
		if s.Repeats < 0 {
			return fmt.Errorf("slider %d (%s): repeats must not be negative, got %d", i, s.Name, s.Repeats)
		}
		if s.PixelLength <= 0 {
			return fmt.Errorf("slider %d (%s): pixelLength must be positive, got %v", i, s.Name, s.PixelLength)
		}
	}

	return nil
}
