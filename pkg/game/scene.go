package game

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// Scene 表示一个可被 SceneManager 驱动的画面（例如滑条查看器）
type Scene interface {
	// Update 根据经过的时间（秒）推进场景逻辑
	Update(deltaTime float64)

	// Draw 将场景绘制到 screen
	Draw(screen *ebiten.Image)
}

// Saveable 是一个可选接口，场景在程序退出时借此持久化状态
//
// 返回 true 表示保存成功或无需保存；
// 返回 false 表示保存失败（程序仍会正常退出）。
type Saveable interface {
	SaveOnExit() bool
}
