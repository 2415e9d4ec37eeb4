package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultSliderSkin(t *testing.T) {
	skin := DefaultSliderSkin()
	if skin.BodyAlpha != 0.8 {
		t.Errorf("BodyAlpha: got %v, want 0.8", skin.BodyAlpha)
	}
	if skin.BorderColor != (RGBA{255, 255, 255, 255}) {
		t.Errorf("BorderColor: got %v, want opaque white", skin.BorderColor)
	}
	if err := validateSliderSkin(skin); err != nil {
		t.Errorf("default skin should be valid: %v", err)
	}
}

func TestLoadSliderSkin(t *testing.T) {
	tempDir := t.TempDir()

	t.Run("加载有效配置文件", func(t *testing.T) {
		content := `
borderColor: {r: 200, g: 100, b: 50, a: 255}
bodyAlpha: 0.5
`
		path := filepath.Join(tempDir, "skin.yaml")
		if err := os.WriteFile(path, []byte(content), 0644); err != nil {
			t.Fatalf("Failed to write test config: %v", err)
		}

		skin, err := LoadSliderSkin(path)
		if err != nil {
			t.Fatalf("LoadSliderSkin failed: %v", err)
		}
		if skin.BorderColor != (RGBA{200, 100, 50, 255}) {
			t.Errorf("BorderColor: got %v", skin.BorderColor)
		}
		if skin.BodyAlpha != 0.5 {
			t.Errorf("BodyAlpha: got %v, want 0.5", skin.BodyAlpha)
		}
		// 未指定的字段保留默认值
		if skin.BorderWidth != 0.125 {
			t.Errorf("BorderWidth: got %v, want default 0.125", skin.BorderWidth)
		}
	})

	t.Run("非法比例", func(t *testing.T) {
		path := filepath.Join(tempDir, "bad_alpha.yaml")
		if err := os.WriteFile(path, []byte("bodyAlpha: 1.5\n"), 0644); err != nil {
			t.Fatalf("Failed to write test config: %v", err)
		}
		if _, err := LoadSliderSkin(path); err == nil {
			t.Error("Expected error for bodyAlpha > 1")
		}
	})

	t.Run("YAML 格式错误", func(t *testing.T) {
		path := filepath.Join(tempDir, "broken.yaml")
		if err := os.WriteFile(path, []byte("bodyAlpha: [oops\n"), 0644); err != nil {
			t.Fatalf("Failed to write test config: %v", err)
		}
		if _, err := LoadSliderSkin(path); err == nil {
			t.Error("Expected error for malformed YAML")
		}
	})

	t.Run("文件不存在", func(t *testing.T) {
		if _, err := LoadSliderSkin(filepath.Join(tempDir, "missing.yaml")); err == nil {
			t.Error("Expected error for missing file")
		}
	})
}
