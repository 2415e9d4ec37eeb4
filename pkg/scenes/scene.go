package scenes

import (
	"github.com/decker502/osucurve/pkg/game"
)

// Scene 是 game.Scene 的别名，场景实现只依赖 game 包的接口
type Scene = game.Scene

// 场景名称，供 SceneManager.Load 使用
const (
	SceneSliders = "sliders"
)
