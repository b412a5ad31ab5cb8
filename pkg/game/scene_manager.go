package game

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2"
)

// SceneManager manages the game's high-level state by controlling which scene
// is active. It ensures only one scene's Update and Draw methods are called
// at any given time, and that an outgoing scene is disposed before the next
// one takes over.
type SceneManager struct {
	currentScene Scene
	width        int
	height       int
}

// NewSceneManager creates and returns a new SceneManager instance.
// The manager starts with no active scene; use SwitchTo to set the initial scene.
func NewSceneManager() *SceneManager {
	return &SceneManager{}
}

// SwitchTo changes the active scene to the provided scene. If the outgoing
// scene is Disposable it is disposed first, so none of its pending timers or
// animations can fire after the switch. The incoming scene receives the last
// known viewport size immediately.
func (sm *SceneManager) SwitchTo(scene Scene) {
	if disposable, ok := sm.currentScene.(Disposable); ok {
		disposable.Dispose()
	}

	sm.currentScene = scene

	if resizable, ok := scene.(Resizable); ok && sm.width > 0 {
		resizable.OnResize(sm.width, sm.height)
	}
	log.Printf("[SceneManager] Switched scene to %T", scene)
}

// GetCurrentScene returns the currently active scene, or nil.
func (sm *SceneManager) GetCurrentScene() Scene {
	return sm.currentScene
}

// Update updates the currently active scene.
// If no scene is active, this method does nothing.
// deltaTime is the time elapsed since the last update in seconds.
func (sm *SceneManager) Update(deltaTime float64) {
	if sm.currentScene != nil {
		sm.currentScene.Update(deltaTime)
	}
}

// Draw renders the currently active scene to the provided screen.
// If no scene is active, this method does nothing.
func (sm *SceneManager) Draw(screen *ebiten.Image) {
	if sm.currentScene != nil {
		sm.currentScene.Draw(screen)
	}
}

// OnResize records the viewport size and forwards it to the active scene if
// it cares about layout.
func (sm *SceneManager) OnResize(width, height int) {
	sm.width = width
	sm.height = height
	if resizable, ok := sm.currentScene.(Resizable); ok {
		resizable.OnResize(width, height)
	}
}
