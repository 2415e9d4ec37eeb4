package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadDemoSliders(t *testing.T) {
	tempDir := t.TempDir()

	tests := []struct {
		name    string
		content string
		wantErr bool
		count   int
	}{
		{
			name: "有效配置",
			content: `
sliders:
  - name: arc
    type: P
    x: 100
    y: 100
    points: [[200, 50], [300, 100]]
    pixelLength: 250
    color: {r: 255, g: 0, b: 0, a: 255}
  - name: line
    type: L
    x: 0
    y: 0
    points: [[100, 0]]
    pixelLength: 100
`,
			count: 2,
		},
		{name: "空列表", content: "sliders: []\n", wantErr: true},
		{
			name: "未知类型",
			content: `
sliders:
  - {name: x, type: Z, x: 0, y: 0, points: [[1, 1]], pixelLength: 10}
`,
			wantErr: true,
		},
		{
			name: "缺少控制点",
			content: `
sliders:
  - {name: x, type: B, x: 0, y: 0, pixelLength: 10}
`,
			wantErr: true,
		},
		{
			name: "趟数为负",
			content: `
sliders:
  - {name: x, type: B, x: 0, y: 0, points: [[1, 1]], pixelLength: 10, repeats: -1}
`,
			wantErr: true,
		},
		{
			name: "长度非正",
			content: `
sliders:
  - {name: x, type: B, x: 0, y: 0, points: [[1, 1]], pixelLength: 0}
`,
			wantErr: true,
		},
	}

	for i, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(tempDir, "sliders_"+string(rune('a'+i))+".yaml")
			if err := os.WriteFile(path, []byte(tt.content), 0644); err != nil {
				t.Fatalf("Failed to write test config: %v", err)
			}

			cfg, err := LoadDemoSliders(path)
			if tt.wantErr {
				if err == nil {
					t.Error("Expected error, got nil")
				}
				return
			}
			if err != nil {
				t.Fatalf("LoadDemoSliders failed: %v", err)
			}
			if len(cfg.Sliders) != tt.count {
				t.Errorf("Expected %d sliders, got %d", tt.count, len(cfg.Sliders))
			}
		})
	}
}

func TestLoadDemoSlidersFields(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sliders.yaml")
	content := `
sliders:
  - name: arc
    type: P
    x: 100
    y: 120
    points: [[200, 50], [300, 100]]
    pixelLength: 250
    time: 1500
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write test config: %v", err)
	}

	cfg, err := LoadDemoSliders(path)
	if err != nil {
		t.Fatalf("LoadDemoSliders failed: %v", err)
	}

	s := cfg.Sliders[0]
	if s.X != 100 || s.Y != 120 {
		t.Errorf("start: got (%v,%v), want (100,120)", s.X, s.Y)
	}
	if len(s.Points) != 2 || s.Points[1] != [2]float64{300, 100} {
		t.Errorf("points: got %v", s.Points)
	}
	if s.Time != 1500 {
		t.Errorf("time: got %d, want 1500", s.Time)
	}
	if cfg.BallDuration != defaultBallDuration {
		t.Errorf("ballDuration: got %v, want default %v", cfg.BallDuration, defaultBallDuration)
	}
}
