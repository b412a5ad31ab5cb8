package game

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// Scene represents one screen of the pre-game flow (loading, class select,
// gameplay handoff). Each scene has its own update and rendering logic.
type Scene interface {
	// Update updates the scene logic based on the elapsed time.
	// deltaTime is the time elapsed since the last update in seconds.
	Update(deltaTime float64)

	// Draw renders the scene to the provided screen.
	Draw(screen *ebiten.Image)
}

// Resizable is an optional interface for scenes that react to viewport
// changes. The app forwards every layout change to the active scene.
type Resizable interface {
	// OnResize is called with the new viewport size in pixels. Degenerate
	// sizes (zero width or height) must be tolerated without raising.
	OnResize(width, height int)
}

// Disposable is an optional interface for scenes holding deferred actions or
// subscriptions that must not outlive the scene. The scene manager calls
// Dispose on the outgoing scene during a switch, before the new scene runs.
type Disposable interface {
	// Dispose cancels all pending timers and animations owned by the scene.
	Dispose()
}
