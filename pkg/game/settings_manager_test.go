package game

import (
	"os"
	"testing"

	"github.com/decker502/osucurve/pkg/config"
	"github.com/decker502/osucurve/pkg/render"
	"github.com/quasilyte/gdata/v2"
)

// openTestGdata 在临时 HOME 下打开 gdata manager
func openTestGdata(t *testing.T, appName string) *gdata.Manager {
	t.Helper()

	tempDir := t.TempDir()
	originalHome := os.Getenv("HOME")
	os.Setenv("HOME", tempDir)
	t.Cleanup(func() { os.Setenv("HOME", originalHome) })

	gdataManager, err := gdata.Open(gdata.Config{
		AppName: appName,
	})
	if err != nil {
		t.Fatalf("Failed to create gdata manager: %v", err)
	}
	return gdataManager
}

// TestDefaultSettings 测试 DefaultSettings() 返回正确的默认值
func TestDefaultSettings(t *testing.T) {
	settings := DefaultSettings()

	if settings == nil {
		t.Fatal("DefaultSettings() returned nil")
	}
	if !settings.NewSlider {
		t.Error("NewSlider: got false, want true")
	}
	if settings.CircleSize != config.DefaultCircleDiameter {
		t.Errorf("CircleSize: got %v, want %v", settings.CircleSize, config.DefaultCircleDiameter)
	}
	if settings.Fullscreen {
		t.Error("Fullscreen: got true, want false")
	}
}

// TestSliderStyle 测试 NewSlider 开关到渲染风格的映射
func TestSliderStyle(t *testing.T) {
	settings := DefaultSettings()
	if settings.SliderStyle() != render.StyleCached {
		t.Errorf("SliderStyle() with NewSlider=true: got %v", settings.SliderStyle())
	}

	settings.NewSlider = false
	if settings.SliderStyle() != render.StyleLegacy {
		t.Errorf("SliderStyle() with NewSlider=false: got %v", settings.SliderStyle())
	}
}

// TestNewSettingsManager 测试正常初始化 SettingsManager
func TestNewSettingsManager(t *testing.T) {
	gdataManager := openTestGdata(t, "test_curve_settings")

	sm, err := NewSettingsManager(gdataManager)
	if err != nil {
		t.Fatalf("NewSettingsManager() error: %v", err)
	}
	if sm == nil {
		t.Fatal("NewSettingsManager() returned nil")
	}

	// 验证初始化后使用默认设置
	if !sm.GetSettings().NewSlider {
		t.Error("Initial NewSlider: got false, want true")
	}
}

// TestNewSettingsManagerNilGdata 测试 gdataManager 为 nil 时的降级场景
func TestNewSettingsManagerNilGdata(t *testing.T) {
	sm, err := NewSettingsManager(nil)
	if err != nil {
		t.Fatalf("NewSettingsManager(nil) error: %v", err)
	}

	if sm.GetSettings().CircleSize != config.DefaultCircleDiameter {
		t.Errorf("Degraded mode CircleSize: got %v", sm.GetSettings().CircleSize)
	}

	// 降级模式下保存不报错
	sm.SetNewSlider(false)
	if err := sm.Save(); err != nil {
		t.Errorf("Save() in degraded mode: %v", err)
	}
}

// TestSettingsLoadSave 测试 Load() 和 Save() 功能
func TestSettingsLoadSave(t *testing.T) {
	gdataManager := openTestGdata(t, "test_curve_settings_load_save")

	sm1, err := NewSettingsManager(gdataManager)
	if err != nil {
		t.Fatalf("NewSettingsManager() error: %v", err)
	}

	sm1.SetNewSlider(false)
	sm1.SetCircleSize(72)
	sm1.SetFullscreen(true)

	if err := sm1.Save(); err != nil {
		t.Fatalf("Save() error: %v", err)
	}

	// 创建新的设置管理器，验证加载
	sm2, err := NewSettingsManager(gdataManager)
	if err != nil {
		t.Fatalf("NewSettingsManager() error on reload: %v", err)
	}

	settings := sm2.GetSettings()
	if settings.NewSlider {
		t.Error("Loaded NewSlider: got true, want false")
	}
	if settings.CircleSize != 72 {
		t.Errorf("Loaded CircleSize: got %v, want 72", settings.CircleSize)
	}
	if !settings.Fullscreen {
		t.Error("Loaded Fullscreen: got false, want true")
	}
}

// TestSettingsLoadPartial 测试缺失字段保留默认值
func TestSettingsLoadPartial(t *testing.T) {
	gdataManager := openTestGdata(t, "test_curve_settings_partial")

	if err := gdataManager.SaveObjectProp(settingsObject, settingsProperty, []byte("fullscreen: true\n")); err != nil {
		t.Fatalf("SaveObjectProp() error: %v", err)
	}

	sm, _ := NewSettingsManager(gdataManager)
	settings := sm.GetSettings()

	if !settings.Fullscreen {
		t.Error("Fullscreen: got false, want true")
	}
	if !settings.NewSlider {
		t.Error("missing NewSlider should default to true")
	}
	if settings.CircleSize != config.DefaultCircleDiameter {
		t.Errorf("missing CircleSize should default, got %v", settings.CircleSize)
	}
}

// TestSettingsLoadCorrupted 测试损坏的设置回退到默认值
func TestSettingsLoadCorrupted(t *testing.T) {
	gdataManager := openTestGdata(t, "test_curve_settings_corrupted")

	if err := gdataManager.SaveObjectProp(settingsObject, settingsProperty, []byte("newSlider: [broken\n")); err != nil {
		t.Fatalf("SaveObjectProp() error: %v", err)
	}

	sm, err := NewSettingsManager(gdataManager)
	if err != nil {
		t.Fatalf("NewSettingsManager() error: %v", err)
	}
	if err := sm.Load(); err == nil {
		t.Error("Load() of corrupted settings should return error")
	}
	if !sm.GetSettings().NewSlider {
		t.Error("corrupted settings should fall back to defaults")
	}
}

// TestSetCircleSizeClamp 测试 SetCircleSize 范围校验
func TestSetCircleSizeClamp(t *testing.T) {
	sm, _ := NewSettingsManager(nil)

	tests := []struct {
		input    float64
		expected float64
	}{
		{64, 64}, // 正常值
		{config.MinCircleDiameter, config.MinCircleDiameter}, // 下限
		{config.MaxCircleDiameter, config.MaxCircleDiameter}, // 上限
		{1, config.MinCircleDiameter},                        // 低于下限
		{1000, config.MaxCircleDiameter},                     // 高于上限
	}

	for _, tt := range tests {
		sm.SetCircleSize(tt.input)
		if sm.GetSettings().CircleSize != tt.expected {
			t.Errorf("SetCircleSize(%v): got %v, want %v",
				tt.input, sm.GetSettings().CircleSize, tt.expected)
		}
	}
}
