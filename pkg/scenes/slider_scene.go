package scenes

import (
	"fmt"
	"image/color"
	"log"

	"github.com/decker502/osucurve/pkg/beatmap"
	"github.com/decker502/osucurve/pkg/config"
	"github.com/decker502/osucurve/pkg/curves"
	"github.com/decker502/osucurve/pkg/game"
	"github.com/decker502/osucurve/pkg/render"
	"github.com/decker502/osucurve/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// 调整打击圈直径的步长（屏幕像素）
const circleSizeStep = 8.0

// 所有跟随球走完后停顿的秒数
const ballRestartDelay = 0.5

var (
	backgroundColor = color.NRGBA{R: 24, G: 24, B: 32, A: 255}
	playfieldColor  = color.NRGBA{R: 80, G: 80, B: 96, A: 255}
	ballColor       = color.NRGBA{R: 255, G: 255, B: 255, A: 230}
)

// sliderEntry 场景中的一条滑条及其显示参数
type sliderEntry struct {
	name    string
	slider  curves.Slider
	color   color.Color
	repeats int
}

// SliderScene 滑条查看器场景
//
// 按设置中的风格绘制所有演示滑条，并让跟随球沿 PointAt 往返运动。
// 按键：S 切换渲染风格并保存，+/- 调整直径，D 丢弃所有渲染缓存。
// 设置了 ReloadSource 时，每帧检查一次新的演示配置。
type SliderScene struct {
	playfield    beatmap.Playfield
	ctx          *render.Context
	settings     *game.SettingsManager
	sliders      []sliderEntry
	ease         utils.EaseFunc
	ballDuration float64
	elapsed      float64
	loopLength   float64
	reloads      ReloadSource
	labelFace    *text.GoTextFace
}

// ReloadSource 提供重新加载的演示配置，Poll 必须是非阻塞的
type ReloadSource interface {
	Poll() (*config.DemoSliderConfig, bool)
}

// NewSliderScene 根据演示配置创建查看器场景
//
// 参数：
//   - pf: 屏幕尺寸对应的游戏区映射
//   - ctx: 曲线共享的渲染上下文，缩放系数会同步为设置中的直径
//   - settings: 用户设置，提供渲染风格和直径
//   - demos: 演示滑条配置
//
// 返回：
//   - *SliderScene: 场景实例
//   - error: 任一滑条无法构造时返回错误
func NewSliderScene(pf beatmap.Playfield, ctx *render.Context, settings *game.SettingsManager, demos *config.DemoSliderConfig) (*SliderScene, error) {
	if ctx == nil || settings == nil || demos == nil {
		return nil, fmt.Errorf("slider scene requires a render context, settings and demo sliders")
	}

	ctx.SetScale(settings.GetSettings().CircleSize)

	s := &SliderScene{
		playfield: pf,
		ctx:       ctx,
		settings:  settings,
	}
	if err := s.apply(demos); err != nil {
		return nil, err
	}

	log.Printf("[SliderScene] Loaded %d sliders (style=%s, scale=%.0f)",
		len(s.sliders), s.Style(), ctx.Scale())
	return s, nil
}

// apply 构造 demos 中的全部滑条并替换当前内容；任一滑条失败时保持原状
func (s *SliderScene) apply(demos *config.DemoSliderConfig) error {
	entries := make([]sliderEntry, 0, len(demos.Sliders))
	loopLength := 0.0
	for i, d := range demos.Sliders {
		entry, err := buildSliderEntry(s.playfield, s.ctx, d, i)
		if err != nil {
			return err
		}
		entries = append(entries, entry)

		if span := float64(entry.repeats) * demos.BallDuration; span > loopLength {
			loopLength = span
		}
	}

	ease, ok := utils.EasingByName(demos.Easing)
	if !ok {
		log.Printf("[SliderScene] Warning: unknown easing %q, using linear", demos.Easing)
	}

	for _, e := range s.sliders {
		e.slider.DiscardCache()
	}
	s.sliders = entries
	s.ease = ease
	s.ballDuration = demos.BallDuration
	s.loopLength = loopLength + ballRestartDelay
	s.elapsed = 0
	return nil
}

// Reload 用新的演示配置替换场景中的滑条
//
// 新配置中任一滑条无法构造时返回错误，场景保持原状。
func (s *SliderScene) Reload(demos *config.DemoSliderConfig) error {
	if demos == nil {
		return fmt.Errorf("nil demo slider config")
	}
	if err := s.apply(demos); err != nil {
		log.Printf("[SliderScene] Reload rejected: %v", err)
		return err
	}
	log.Printf("[SliderScene] Reloaded %d sliders", len(s.sliders))
	return nil
}

// SetReloadSource 设置演示配置的重新加载来源（例如文件监视器），nil 表示不监视
func (s *SliderScene) SetReloadSource(source ReloadSource) {
	s.reloads = source
}

// SetLabelFace 设置滑条名称标签的字体，nil 表示不绘制标签
func (s *SliderScene) SetLabelFace(face *text.GoTextFace) {
	s.labelFace = face
}

// buildSliderEntry 由一条演示定义构造滑条
func buildSliderEntry(pf beatmap.Playfield, ctx *render.Context, d config.DemoSlider, index int) (sliderEntry, error) {
	sliderType, err := beatmap.ParseSliderType(d.Type)
	if err != nil {
		return sliderEntry{}, fmt.Errorf("slider %s: %w", d.Name, err)
	}

	ho := beatmap.NewSlider(pf, d.X, d.Y, sliderType, d.Points, d.PixelLength)
	ho.Time = d.Time
	ho.ComboIndex = index

	slider, err := curves.New(ho, ctx)
	if err != nil {
		return sliderEntry{}, fmt.Errorf("slider %s: %w", d.Name, err)
	}

	repeats := d.Repeats
	if repeats < 1 {
		repeats = 1
	}

	clr := d.Color
	if clr.A == 0 {
		clr = config.RGBA{R: 255, G: 255, B: 255, A: 255}
	}

	return sliderEntry{
		name:    d.Name,
		slider:  slider,
		color:   clr.Color(),
		repeats: repeats,
	}, nil
}

// Style 返回当前设置对应的渲染风格
func (s *SliderScene) Style() render.Style {
	return s.settings.GetSettings().SliderStyle()
}

// Sliders 返回场景中的滑条
func (s *SliderScene) Sliders() []curves.Slider {
	out := make([]curves.Slider, len(s.sliders))
	for i, e := range s.sliders {
		out[i] = e.slider
	}
	return out
}

// ToggleStyle 在旧式和缓存式渲染之间切换并保存设置
func (s *SliderScene) ToggleStyle() render.Style {
	settings := s.settings.GetSettings()
	s.settings.SetNewSlider(!settings.NewSlider)
	if err := s.settings.Save(); err != nil {
		log.Printf("[SliderScene] Warning: failed to save settings: %v", err)
	}
	style := s.Style()
	log.Printf("[SliderScene] Slider style: %s", style)
	return style
}

// Rescale 将打击圈直径调整 delta 像素并同步到渲染上下文
//
// 返回调整（并限幅）后的直径。
func (s *SliderScene) Rescale(delta float64) float64 {
	s.settings.SetCircleSize(s.settings.GetSettings().CircleSize + delta)
	size := s.settings.GetSettings().CircleSize
	s.ctx.SetScale(size)
	log.Printf("[SliderScene] Circle size: %.0f", size)
	return size
}

// DiscardCaches 释放所有滑条的渲染状态
func (s *SliderScene) DiscardCaches() {
	for _, e := range s.sliders {
		e.slider.DiscardCache()
	}
	log.Printf("[SliderScene] Discarded %d slider caches", len(s.sliders))
}

// Update 处理按键并推进跟随球
func (s *SliderScene) Update(deltaTime float64) {
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		s.ToggleStyle()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEqual) || inpututil.IsKeyJustPressed(ebiten.KeyNumpadAdd) {
		s.Rescale(circleSizeStep)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyMinus) || inpututil.IsKeyJustPressed(ebiten.KeyNumpadSubtract) {
		s.Rescale(-circleSizeStep)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyD) {
		s.DiscardCaches()
	}
	if s.reloads != nil {
		if demos, ok := s.reloads.Poll(); ok {
			_ = s.Reload(demos)
		}
	}

	s.advance(deltaTime)
}

// advance 推进计时，所有跟随球结束后从头开始
func (s *SliderScene) advance(deltaTime float64) {
	s.elapsed += deltaTime
	if s.loopLength > 0 && s.elapsed >= s.loopLength {
		s.elapsed = 0
	}
}

// ballPosition 返回第 i 条滑条的跟随球位置
func (s *SliderScene) ballPosition(i int) (float64, float64) {
	e := s.sliders[i]
	t := utils.RepeatProgress(s.elapsed, s.ballDuration, e.repeats)
	p := e.slider.PointAt(s.ease(t))
	return p.X, p.Y
}

// Draw 绘制游戏区边框、滑条、跟随球和状态文字
func (s *SliderScene) Draw(screen *ebiten.Image) {
	screen.Fill(backgroundColor)

	pf := s.playfield
	vector.StrokeRect(screen,
		float32(pf.XOffset), float32(pf.YOffset),
		float32(config.PlayfieldWidth*pf.XMultiplier), float32(config.PlayfieldHeight*pf.YMultiplier),
		1, playfieldColor, false)

	style := s.Style()
	for _, e := range s.sliders {
		e.slider.Draw(screen, e.color, style)
	}

	radius := float32(s.ctx.Scale() / 4)
	for i := range s.sliders {
		x, y := s.ballPosition(i)
		vector.DrawFilledCircle(screen, float32(x), float32(y), radius, ballColor, true)
	}

	if s.labelFace != nil {
		for _, e := range s.sliders {
			op := &text.DrawOptions{}
			op.GeoM.Translate(e.slider.X(0)+s.ctx.Scale()/2, e.slider.Y(0)-s.ctx.Scale()/2)
			op.ColorScale.ScaleWithColor(e.color)
			text.Draw(screen, e.name, s.labelFace, op)
		}
	}

	ebitenutil.DebugPrint(screen, fmt.Sprintf(
		"style: %s (S)  circle: %.0f (+/-)  discard caches (D)  fullscreen (F11)",
		style, s.ctx.Scale()))
}

// SaveOnExit 退出时保存设置
func (s *SliderScene) SaveOnExit() bool {
	if err := s.settings.Save(); err != nil {
		log.Printf("[SliderScene] Warning: failed to save settings on exit: %v", err)
		return false
	}
	return true
}
