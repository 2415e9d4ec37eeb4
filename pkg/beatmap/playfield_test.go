package beatmap

import (
	"math"
	"testing"
)

func TestNewPlayfield(t *testing.T) {
	tests := []struct {
		name             string
		width, height    int
		xMul, yMul       float64
		xOffset, yOffset float64
	}{
		{"640x480 参考分辨率", 640, 480, 1, 1, 64, 48},
		{"1024x768", 1024, 768, 1.6, 1.6, 102, 76},
		// 宽屏：高度决定倍率，水平方向居中
		{"1280x720 宽屏", 1280, 720, 1.5, 1.5, 256, 72},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pf, err := NewPlayfield(tt.width, tt.height)
			if err != nil {
				t.Fatalf("NewPlayfield() error: %v", err)
			}
			if math.Abs(pf.XMultiplier-tt.xMul) > 1e-9 || math.Abs(pf.YMultiplier-tt.yMul) > 1e-9 {
				t.Errorf("multipliers: got (%v,%v), want (%v,%v)", pf.XMultiplier, pf.YMultiplier, tt.xMul, tt.yMul)
			}
			if pf.XOffset != tt.xOffset || pf.YOffset != tt.yOffset {
				t.Errorf("offsets: got (%v,%v), want (%v,%v)", pf.XOffset, pf.YOffset, tt.xOffset, tt.yOffset)
			}
		})
	}
}

func TestNewPlayfieldInvalid(t *testing.T) {
	if _, err := NewPlayfield(0, 480); err == nil {
		t.Error("Expected error for zero width")
	}
	if _, err := NewPlayfield(640, -1); err == nil {
		t.Error("Expected error for negative height")
	}
}

func TestPlayfieldScale(t *testing.T) {
	pf, _ := NewPlayfield(640, 480)
	if got := pf.ScaleX(0); got != 64 {
		t.Errorf("ScaleX(0) = %v, want 64", got)
	}
	if got := pf.ScaleY(384); got != 432 {
		t.Errorf("ScaleY(384) = %v, want 432", got)
	}
}
