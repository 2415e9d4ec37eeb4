// Package app 提供滑条查看器的应用包装器
//
// 该包把初始化逻辑从 main 包中提取出来：读取配置、打开设置存储、
// 创建渲染上下文和场景，并实现 ebiten.Game 接口。
package app

import (
	"fmt"
	"image/color"
	"io"
	"log"
	"os"

	"github.com/decker502/osucurve/pkg/beatmap"
	"github.com/decker502/osucurve/pkg/config"
	"github.com/decker502/osucurve/pkg/game"
	"github.com/decker502/osucurve/pkg/render"
	"github.com/decker502/osucurve/pkg/scenes"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/quasilyte/gdata/v2"
)

// AppName 是设置存储使用的应用名
const AppName = "osucurve"

// Config 定义应用启动配置
type Config struct {
	// Verbose 启用详细日志输出
	Verbose bool
	// SlidersPath 演示滑条 YAML 路径
	SlidersPath string
	// SkinConfigPath 滑条外观 YAML 路径
	SkinConfigPath string
	// SkinDir 可选的皮肤目录（hitcircle.png / hitcircleoverlay.png），为空使用程序生成的纹理
	SkinDir string
	// Style 覆盖设置中的渲染风格（"legacy" / "cached"），为空则使用设置
	Style string
	// Storage 设置存储；为 nil 时 NewApp 自行打开，打开失败则降级为内存设置
	Storage *gdata.Manager
	// Watch 监视磁盘上的 SlidersPath，文件变化后重新加载滑条
	Watch bool
	// LabelFont 滑条名称标签的字体文件，为空使用内置 Go Regular
	LabelFont string
	// NoLabels 不绘制滑条名称标签
	NoLabels bool
}

// 滑条名称标签字号
const labelFontSize = 14

// DefaultConfig 返回使用嵌入数据的默认配置
func DefaultConfig() Config {
	return Config{
		SlidersPath:    "data/sliders.yaml",
		SkinConfigPath: "data/slider_skin.yaml",
	}
}

// App 是查看器的核心包装器，实现 ebiten.Game 接口
type App struct {
	sceneManager             *game.SceneManager
	settings                 *game.SettingsManager
	watcher                  *config.DemoSliderWatcher
	verbose                  bool
	pendingWindowSizeReset   bool // 延迟设置窗口大小标志
	windowSizeResetCountdown int  // 延迟帧数
}

// NewApp 创建并初始化查看器
//
// 调用此函数前，应先调用 embedded.Init() 以便从嵌入的 data/ 读取配置。
func NewApp(cfg Config) (*App, error) {
	if !cfg.Verbose {
		log.SetOutput(io.Discard)
		log.SetFlags(0)
	}

	defaults := DefaultConfig()
	if cfg.SlidersPath == "" {
		cfg.SlidersPath = defaults.SlidersPath
	}
	if cfg.SkinConfigPath == "" {
		cfg.SkinConfigPath = defaults.SkinConfigPath
	}

	storage := cfg.Storage
	if storage == nil {
		var err error
		storage, err = gdata.Open(gdata.Config{AppName: AppName})
		if err != nil {
			log.Printf("[App] Warning: settings storage unavailable: %v (settings will not persist)", err)
			storage = nil
		}
	}

	settings, err := game.NewSettingsManager(storage)
	if err != nil {
		return nil, fmt.Errorf("设置初始化失败: %w", err)
	}

	if cfg.Style != "" {
		style, err := render.ParseStyle(cfg.Style)
		if err != nil {
			return nil, fmt.Errorf("无效的渲染风格: %w", err)
		}
		settings.SetNewSlider(style == render.StyleCached)
		log.Printf("[App] Style override: %s", style)
	}

	skin, err := config.LoadSliderSkin(cfg.SkinConfigPath)
	if err != nil {
		return nil, fmt.Errorf("滑条外观加载失败: %w", err)
	}

	demos, err := config.LoadDemoSliders(cfg.SlidersPath)
	if err != nil {
		return nil, fmt.Errorf("演示滑条加载失败: %w", err)
	}

	resourceManager := game.NewResourceManager()
	ctx, err := newRenderContext(resourceManager, settings.GetSettings().CircleSize, skin, cfg.SkinDir)
	if err != nil {
		return nil, err
	}

	playfield, err := beatmap.NewPlayfield(config.ViewerWindowWidth, config.ViewerWindowHeight)
	if err != nil {
		return nil, fmt.Errorf("游戏区初始化失败: %w", err)
	}

	labelFace, err := loadLabelFace(resourceManager, cfg)
	if err != nil {
		return nil, err
	}

	var watcher *config.DemoSliderWatcher
	if cfg.Watch {
		watcher = startWatcher(cfg.SlidersPath)
	}

	sceneManager := game.NewSceneManager()
	sceneManager.SetSceneFactory(func(name string) (game.Scene, error) {
		switch name {
		case scenes.SceneSliders:
			scene, err := scenes.NewSliderScene(playfield, ctx, settings, demos)
			if err != nil {
				return nil, err
			}
			scene.SetLabelFace(labelFace)
			if watcher != nil {
				scene.SetReloadSource(watcher)
			}
			return scene, nil
		}
		return nil, fmt.Errorf("unknown scene %q", name)
	})
	if !sceneManager.Load(scenes.SceneSliders) {
		if watcher != nil {
			watcher.Close()
		}
		return nil, fmt.Errorf("无法创建滑条场景")
	}

	if settings.GetSettings().Fullscreen {
		ebiten.SetFullscreen(true)
	}

	log.Printf("[App] Viewer ready: %d sliders, playfield %s", len(demos.Sliders), describePlayfield(playfield))

	return &App{
		sceneManager: sceneManager,
		settings:     settings,
		watcher:      watcher,
		verbose:      cfg.Verbose,
	}, nil
}

// loadLabelFace 按配置加载标签字体；NoLabels 时返回 nil
func loadLabelFace(rm *game.ResourceManager, cfg Config) (*text.GoTextFace, error) {
	if cfg.NoLabels {
		return nil, nil
	}
	if cfg.LabelFont != "" {
		face, err := rm.LoadFont(cfg.LabelFont, labelFontSize)
		if err != nil {
			return nil, fmt.Errorf("标签字体加载失败: %w", err)
		}
		return face, nil
	}
	return rm.DefaultFont(labelFontSize)
}

// startWatcher 监视磁盘上的滑条文件；文件不在磁盘上时只记录警告
func startWatcher(path string) *config.DemoSliderWatcher {
	if _, err := os.Stat(path); err != nil {
		log.Printf("[App] Warning: cannot watch %s: %v", path, err)
		return nil
	}
	watcher, err := config.NewDemoSliderWatcher(path)
	if err != nil {
		log.Printf("[App] Warning: %v", err)
		return nil
	}
	return watcher
}

// Close 释放查看器持有的后台资源
func (a *App) Close() error {
	if a.watcher == nil {
		return nil
	}
	err := a.watcher.Close()
	a.watcher = nil
	return err
}

// newRenderContext 创建渲染上下文，skinDir 中存在的图片优先于程序生成的纹理
func newRenderContext(rm *game.ResourceManager, scale float64, skin *config.SliderSkinConfig, skinDir string) (*render.Context, error) {
	opts := []render.Option{render.WithSkin(skin)}

	if skinDir != "" {
		images, err := rm.LoadSkin(skinDir)
		if err != nil {
			return nil, fmt.Errorf("皮肤加载失败: %w", err)
		}
		opts = append(opts, render.WithSpriteImages(images.HitCircle, images.HitCircleOverlay))
		log.Printf("[App] Skin directory: %s", skinDir)
	}

	return render.NewContext(scale, opts...), nil
}

func describePlayfield(pf beatmap.Playfield) string {
	return fmt.Sprintf("%dx%d scale=(%.2f,%.2f) offset=(%.0f,%.0f)",
		pf.Width, pf.Height, pf.XMultiplier, pf.YMultiplier, pf.XOffset, pf.YOffset)
}

// Update 更新查看器逻辑，每个 tick 调用一次
func (a *App) Update() error {
	// 退出全屏后需要等待几帧才能正确设置窗口大小
	if a.pendingWindowSizeReset {
		a.windowSizeResetCountdown--
		if a.windowSizeResetCountdown <= 0 {
			ebiten.SetWindowSize(config.ViewerWindowWidth, config.ViewerWindowHeight)
			log.Printf("[App] Delayed SetWindowSize(%d, %d)", config.ViewerWindowWidth, config.ViewerWindowHeight)
			a.pendingWindowSizeReset = false
		}
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyF11) {
		a.toggleFullscreen()
	}

	deltaTime := 1.0 / float64(ebiten.TPS())
	a.sceneManager.Update(deltaTime)
	return nil
}

// toggleFullscreen 切换全屏并记录到设置
func (a *App) toggleFullscreen() {
	if ebiten.IsFullscreen() {
		ebiten.SetFullscreen(false)
		if ebiten.IsWindowMaximized() || ebiten.IsWindowMinimized() {
			ebiten.RestoreWindow()
		}
		a.pendingWindowSizeReset = true
		a.windowSizeResetCountdown = 3
		a.settings.SetFullscreen(false)
		log.Printf("[App] Exit fullscreen, will reset window size in 3 frames")
	} else {
		ebiten.SetFullscreen(true)
		a.settings.SetFullscreen(true)
	}
	if err := a.settings.Save(); err != nil {
		log.Printf("[App] Warning: failed to save settings: %v", err)
	}
}

// Draw 绘制当前场景
func (a *App) Draw(screen *ebiten.Image) {
	a.sceneManager.Draw(screen)
}

// DrawFinalScreen 控制全屏缩放和 letterbox 颜色
func (a *App) DrawFinalScreen(screen ebiten.FinalScreen, offscreen *ebiten.Image, geoM ebiten.GeoM) {
	screen.Fill(color.Black)
	op := &ebiten.DrawImageOptions{}
	op.GeoM = geoM
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(offscreen, op)
}

// Layout 返回逻辑屏幕尺寸，Ebitengine 负责缩放到实际窗口
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.ViewerWindowWidth, config.ViewerWindowHeight
}

// GetSceneManager 返回场景管理器，用于退出时保存设置
func (a *App) GetSceneManager() *game.SceneManager {
	return a.sceneManager
}

// Settings 返回设置管理器
func (a *App) Settings() *game.SettingsManager {
	return a.settings
}

// IsVerbose 返回是否启用了详细日志
func (a *App) IsVerbose() bool {
	return a.verbose
}
