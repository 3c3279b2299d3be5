package game

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// Scene represents a screen of the application with its own update and rendering logic.
type Scene interface {
	// Update updates the scene logic based on the elapsed time.
	// deltaTime is the time elapsed since the last update in seconds.
	Update(deltaTime float64)

	// Draw renders the scene to the provided screen.
	Draw(screen *ebiten.Image)
}

// Disposable 场景切换出去时释放资源（可选接口）
type Disposable interface {
	Dispose()
}
