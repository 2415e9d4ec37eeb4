package main

import (
	"flag"
	"fmt"
	"image/color"
	"io"
	"log"
	"os"

	"github.com/decker502/osucurve/pkg/beatmap"
	"github.com/decker502/osucurve/pkg/config"
	"github.com/decker502/osucurve/pkg/curves"
	"github.com/decker502/osucurve/pkg/render"
	"github.com/decker502/osucurve/pkg/types"
	"github.com/hajimehoshi/ebiten/v2"
)

var (
	slidersPath = flag.String("sliders", "data/sliders.yaml", "Demo sliders YAML")
	name        = flag.String("name", "", "Only inspect the slider with this name")
	width       = flag.Int("width", config.ViewerWindowWidth, "Screen width")
	height      = flag.Int("height", config.ViewerWindowHeight, "Screen height")
	samples     = flag.Int("samples", 4, "Number of PointAt intervals to print")
	showPoints  = flag.Bool("points", false, "Print every sampled curve point")
	verbose     = flag.Bool("verbose", false, "Enable verbose logging")
)

// nopSprite 不绘制任何内容，检查工具不需要纹理
type nopSprite struct{}

func (nopSprite) DrawCentered(dst *ebiten.Image, x, y float64, tint color.Color) {}

func main() {
	flag.Parse()

	// 曲线构造时的 [Curve] 等日志默认不输出
	if !*verbose {
		log.SetOutput(io.Discard)
	}

	demos, err := config.LoadDemoSliders(*slidersPath)
	if err != nil {
		fail("加载演示滑条失败: %v", err)
	}

	pf, err := beatmap.NewPlayfield(*width, *height)
	if err != nil {
		fail("游戏区初始化失败: %v", err)
	}
	fmt.Printf("屏幕: %dx%d  倍率: (%.3f, %.3f)  偏移: (%.0f, %.0f)\n\n",
		pf.Width, pf.Height, pf.XMultiplier, pf.YMultiplier, pf.XOffset, pf.YOffset)

	ctx := render.NewContext(config.DefaultCircleDiameter, render.WithSprites(nopSprite{}, nopSprite{}))

	found := 0
	for _, d := range demos.Sliders {
		if *name != "" && d.Name != *name {
			continue
		}
		found++

		if err := inspect(pf, ctx, d); err != nil {
			fmt.Printf("滑条 %s: 错误: %v\n\n", d.Name, err)
		}
	}

	if found == 0 {
		fail("没有名为 %q 的滑条", *name)
	}
}

func fail(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}

func inspect(pf beatmap.Playfield, ctx *render.Context, d config.DemoSlider) error {
	sliderType, err := beatmap.ParseSliderType(d.Type)
	if err != nil {
		return err
	}

	ho := beatmap.NewSlider(pf, d.X, d.Y, sliderType, d.Points, d.PixelLength)
	ho.Time = d.Time

	slider, err := curves.New(ho, ctx)
	if err != nil {
		return err
	}

	points := slider.Points()
	fmt.Printf("滑条: %s (%T)\n", d.Name, slider)
	fmt.Printf("  %s\n", ho)
	fmt.Printf("  控制点:")
	for i := 0; i <= len(d.Points); i++ {
		fmt.Printf(" (%.1f, %.1f)", slider.X(i), slider.Y(i))
	}
	fmt.Println()
	fmt.Printf("  采样点数: %d\n", len(points))

	if len(points) > 0 {
		minX, minY, maxX, maxY := types.Bounds(points)
		fmt.Printf("  包围盒: (%.1f, %.1f) - (%.1f, %.1f)\n", minX, minY, maxX, maxY)
	}
	fmt.Printf("  起始角度: %.2f°  结束角度: %.2f°\n", slider.StartAngle(), slider.EndAngle())

	if *samples > 0 {
		for i := 0; i <= *samples; i++ {
			t := float64(i) / float64(*samples)
			p := slider.PointAt(t)
			fmt.Printf("  PointAt(%.3f) = (%.2f, %.2f)\n", t, p.X, p.Y)
		}
	}

	if *showPoints {
		for i, p := range points {
			fmt.Printf("    [%3d] (%.2f, %.2f)\n", i, p.X, p.Y)
		}
	}

	fmt.Println()
	return nil
}
