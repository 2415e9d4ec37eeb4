package app

import (
	"testing"

	"github.com/decker502/osucurve/pkg/config"
	"github.com/decker502/osucurve/pkg/game"
	"github.com/decker502/osucurve/pkg/render"
	"github.com/decker502/osucurve/pkg/scenes"
	"github.com/quasilyte/gdata/v2"
)

func openTestStorage(t *testing.T) *gdata.Manager {
	t.Helper()

	t.Setenv("HOME", t.TempDir())
	manager, err := gdata.Open(gdata.Config{AppName: "osucurve_app_test"})
	if err != nil {
		t.Fatalf("Failed to create gdata manager: %v", err)
	}
	return manager
}

func testConfig(t *testing.T) Config {
	return Config{
		Verbose:        true,
		SlidersPath:    "../../data/sliders.yaml",
		SkinConfigPath: "../../data/slider_skin.yaml",
		Storage:        openTestStorage(t),
	}
}

func TestNewApp(t *testing.T) {
	a, err := NewApp(testConfig(t))
	if err != nil {
		t.Fatalf("NewApp failed: %v", err)
	}

	scene, ok := a.GetSceneManager().GetCurrentScene().(*scenes.SliderScene)
	if !ok {
		t.Fatalf("current scene = %T, want *scenes.SliderScene", a.GetSceneManager().GetCurrentScene())
	}
	if got := len(scene.Sliders()); got != 5 {
		t.Errorf("len(Sliders()) = %d, want 5", got)
	}

	w, h := a.Layout(0, 0)
	if w != config.ViewerWindowWidth || h != config.ViewerWindowHeight {
		t.Errorf("Layout() = %dx%d", w, h)
	}
}

func TestNewAppStyleOverride(t *testing.T) {
	tests := []struct {
		name    string
		style   string
		want    render.Style
		wantErr bool
	}{
		{name: "旧式", style: "legacy", want: render.StyleLegacy},
		{name: "缓存式", style: "cached", want: render.StyleCached},
		{name: "无效值", style: "fancy", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := testConfig(t)
			cfg.Style = tt.style

			a, err := NewApp(cfg)
			if tt.wantErr {
				if err == nil {
					t.Error("expected error, got nil")
				}
				return
			}
			if err != nil {
				t.Fatalf("NewApp failed: %v", err)
			}
			if got := a.Settings().GetSettings().SliderStyle(); got != tt.want {
				t.Errorf("style = %s, want %s", got, tt.want)
			}
		})
	}
}

func TestNewAppMissingSliders(t *testing.T) {
	cfg := testConfig(t)
	cfg.SlidersPath = "../../data/missing.yaml"
	if _, err := NewApp(cfg); err == nil {
		t.Error("expected error for missing sliders file")
	}
}

func TestNewRenderContextEmptySkinDir(t *testing.T) {
	ctx, err := newRenderContext(game.NewResourceManager(), 64, config.DefaultSliderSkin(), t.TempDir())
	if err != nil {
		t.Fatalf("newRenderContext failed: %v", err)
	}
	if ctx.Scale() != 64 {
		t.Errorf("Scale() = %v, want 64", ctx.Scale())
	}
	if ctx.HitCircle() == nil || ctx.HitCircleOverlay() == nil {
		t.Error("missing skin images should fall back to generated sprites")
	}
}

func TestNewAppLabelsAndWatch(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
		watch   bool
	}{
		{name: "默认字体", mutate: func(c *Config) {}},
		{name: "关闭标签", mutate: func(c *Config) { c.NoLabels = true }},
		{name: "字体文件不存在", mutate: func(c *Config) { c.LabelFont = "missing.ttf" }, wantErr: true},
		{name: "监视磁盘文件", mutate: func(c *Config) { c.Watch = true }, watch: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := testConfig(t)
			tt.mutate(&cfg)

			a, err := NewApp(cfg)
			if tt.wantErr {
				if err == nil {
					t.Error("expected error, got nil")
				}
				return
			}
			if err != nil {
				t.Fatalf("NewApp failed: %v", err)
			}
			defer a.Close()

			if (a.watcher != nil) != tt.watch {
				t.Errorf("watcher started = %v, want %v", a.watcher != nil, tt.watch)
			}
		})
	}
}

func TestStartWatcherMissingFile(t *testing.T) {
	if w := startWatcher("missing/sliders.yaml"); w != nil {
		w.Close()
		t.Error("startWatcher should not watch a file that is not on disk")
	}
}
