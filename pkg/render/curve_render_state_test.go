package render

import (
	"image/color"
	"testing"

	"github.com/decker502/osucurve/pkg/types"
	"github.com/hajimehoshi/ebiten/v2"
)

func testPoints() []types.Vec2f {
	points := make([]types.Vec2f, 0, 21)
	for i := 0; i <= 20; i++ {
		points = append(points, types.Vec2f{X: 100 + float64(i)*5, Y: 200})
	}
	return points
}

func TestCurveRenderStateBuildsOnce(t *testing.T) {
	rs := NewCurveRenderState(64, nil, nil)
	screen := ebiten.NewImage(400, 400)
	points := testPoints()

	if rs.Cached() {
		t.Fatal("texture should not be built before the first draw")
	}

	rs.Draw(screen, color.White, points)
	if rs.Builds() != 1 || !rs.Cached() {
		t.Fatalf("after first draw: builds=%d cached=%v, want 1/true", rs.Builds(), rs.Cached())
	}

	// 后续帧复用纹理
	for i := 0; i < 5; i++ {
		rs.Draw(screen, color.NRGBA{255, 0, 0, 255}, points)
	}
	if rs.Builds() != 1 {
		t.Errorf("texture rebuilt on later frames: builds=%d", rs.Builds())
	}
}

func TestCurveRenderStateDiscardCache(t *testing.T) {
	rs := NewCurveRenderState(64, nil, nil)
	screen := ebiten.NewImage(400, 400)
	points := testPoints()

	// 没有缓存时丢弃是空操作
	rs.DiscardCache()

	rs.Draw(screen, color.White, points)
	rs.DiscardCache()
	if rs.Cached() {
		t.Error("Cached() should be false after DiscardCache")
	}

	rs.Draw(screen, color.White, points)
	if rs.Builds() != 2 {
		t.Errorf("builds after discard + draw: got %d, want 2", rs.Builds())
	}
}

func TestCurveRenderStateTextureBounds(t *testing.T) {
	rs := NewCurveRenderState(40, nil, nil)
	screen := ebiten.NewImage(400, 400)
	rs.Draw(screen, color.White, testPoints())

	// 点序列 x ∈ [100, 200]，y = 200，半径 20，留白 2
	if rs.originX != 78 || rs.originY != 178 {
		t.Errorf("origin: got (%v,%v), want (78,178)", rs.originX, rs.originY)
	}
	b := rs.body.Bounds()
	if b.Dx() != 145 || b.Dy() != 45 {
		t.Errorf("texture size: got %dx%d, want 145x45", b.Dx(), b.Dy())
	}
}

func TestCurveRenderStateEmptyPoints(t *testing.T) {
	rs := NewCurveRenderState(64, nil, nil)
	screen := ebiten.NewImage(100, 100)

	rs.Draw(screen, color.White, nil)
	rs.Draw(nil, color.White, testPoints())

	if rs.Builds() != 0 {
		t.Errorf("nothing should be built without points or target, builds=%d", rs.Builds())
	}
}
