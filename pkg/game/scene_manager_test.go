package game

import (
	"errors"
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
)

// mockScene 记录 Update / Draw 调用
type mockScene struct {
	updateCalled bool
	drawCalled   bool
	deltaTime    float64
}

func (m *mockScene) Update(deltaTime float64) {
	m.updateCalled = true
	m.deltaTime = deltaTime
}

func (m *mockScene) Draw(screen *ebiten.Image) {
	m.drawCalled = true
}

// saveableScene 额外实现 Saveable
type saveableScene struct {
	mockScene
	saves  int
	result bool
}

func (s *saveableScene) SaveOnExit() bool {
	s.saves++
	return s.result
}

func TestSceneManagerUpdateAndDraw(t *testing.T) {
	sm := NewSceneManager()
	if sm.GetCurrentScene() != nil {
		t.Fatal("new manager should have no scene")
	}

	// 无场景时不应 panic
	screen := ebiten.NewImage(64, 48)
	sm.Update(0.016)
	sm.Draw(screen)

	scene := &mockScene{}
	sm.SwitchTo(scene)
	sm.Update(0.016)
	sm.Draw(screen)

	if !scene.updateCalled || !scene.drawCalled {
		t.Errorf("update=%v draw=%v, want both true", scene.updateCalled, scene.drawCalled)
	}
	if scene.deltaTime != 0.016 {
		t.Errorf("deltaTime = %.3f, want 0.016", scene.deltaTime)
	}
}

func TestSceneManagerSwitchBetweenScenes(t *testing.T) {
	sm := NewSceneManager()
	scene1 := &mockScene{}
	scene2 := &mockScene{}

	sm.SwitchTo(scene1)
	sm.Update(0.016)
	sm.SwitchTo(scene2)
	sm.Update(0.016)

	if !scene1.updateCalled || !scene2.updateCalled {
		t.Error("both scenes should have been updated once")
	}
	if sm.GetCurrentScene() != scene2 {
		t.Error("current scene should be scene2")
	}
}

func TestSceneManagerLoad(t *testing.T) {
	tests := []struct {
		name      string
		factory   SceneFactory
		want      bool
		wantScene bool
	}{
		{
			name:    "工厂未设置",
			factory: nil,
			want:    false,
		},
		{
			name: "工厂返回错误",
			factory: func(string) (Scene, error) {
				return nil, errors.New("boom")
			},
			want: false,
		},
		{
			name: "成功创建",
			factory: func(string) (Scene, error) {
				return &mockScene{}, nil
			},
			want:      true,
			wantScene: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sm := NewSceneManager()
			sm.SetSceneFactory(tt.factory)
			if got := sm.Load("sliders"); got != tt.want {
				t.Errorf("Load() = %v, want %v", got, tt.want)
			}
			if (sm.GetCurrentScene() != nil) != tt.wantScene {
				t.Errorf("current scene set = %v, want %v", sm.GetCurrentScene() != nil, tt.wantScene)
			}
		})
	}
}

func TestSceneManagerSaveOnExit(t *testing.T) {
	sm := NewSceneManager()
	if !sm.SaveOnExit() {
		t.Error("SaveOnExit without scene should report success")
	}

	sm.SwitchTo(&mockScene{})
	if !sm.SaveOnExit() {
		t.Error("SaveOnExit on non-saveable scene should report success")
	}

	scene := &saveableScene{result: false}
	sm.SwitchTo(scene)
	if sm.SaveOnExit() {
		t.Error("SaveOnExit should forward the scene's failure")
	}
	if scene.saves != 1 {
		t.Errorf("saves = %d, want 1", scene.saves)
	}
}
