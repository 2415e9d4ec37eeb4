package main

import (
	"flag"
	"log"

	"github.com/decker502/osucurve/pkg/app"
	"github.com/decker502/osucurve/pkg/config"
	"github.com/decker502/osucurve/pkg/embedded"
	"github.com/hajimehoshi/ebiten/v2"
)

var (
	verbose = flag.Bool("verbose", false, "Enable verbose logging")
	sliders = flag.String("sliders", "data/sliders.yaml", "Demo sliders YAML (data/ paths read from the embedded tree)")
	skin    = flag.String("skin", "", "Skin directory with hitcircle.png and hitcircleoverlay.png")
	style   = flag.String("style", "", "Override slider style: legacy or cached")
	watch   = flag.Bool("watch", false, "Reload the sliders file when it changes on disk")
	font    = flag.String("font", "", "Font file for slider labels (default: Go Regular)")
	noLabel = flag.Bool("nolabels", false, "Do not draw slider name labels")
)

func main() {
	flag.Parse()

	embedded.Init(dataFS)

	cfg := app.DefaultConfig()
	cfg.Verbose = *verbose
	cfg.SlidersPath = *sliders
	cfg.SkinDir = *skin
	cfg.Style = *style
	cfg.Watch = *watch
	cfg.LabelFont = *font
	cfg.NoLabels = *noLabel

	viewer, err := app.NewApp(cfg)
	if err != nil {
		log.Fatalf("查看器初始化失败: %v", err)
	}

	ebiten.SetWindowSize(config.ViewerWindowWidth, config.ViewerWindowHeight)
	ebiten.SetWindowTitle("osu! slider curves")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	runErr := ebiten.RunGame(viewer)
	if !viewer.GetSceneManager().SaveOnExit() {
		log.Printf("[Main] Warning: failed to save settings on exit")
	}
	if err := viewer.Close(); err != nil {
		log.Printf("[Main] Warning: %v", err)
	}
	if runErr != nil {
		log.Fatal(runErr)
	}
}
