package scenes

import (
	"testing"

	"github.com/gonewx/riftborne/pkg/config"
	"github.com/gonewx/riftborne/pkg/game"
	"github.com/gonewx/riftborne/pkg/modules"
)

func newSelectScene(t *testing.T) (*ClassSelectScene, *game.SceneManager, *game.SettingsManager) {
	t.Helper()
	sm := game.NewSceneManager()
	settings := testSettings(t)
	scene := NewClassSelectScene(game.NewResourceManager(), sm, settings, modules.NewTextureCache(), testRoster())
	return scene, sm, settings
}

// moduleTick advances the scene's selection module directly, bypassing input
// polling.
func moduleTick(s *ClassSelectScene, total float64) {
	const dt = 1.0 / 60.0
	for elapsed := 0.0; elapsed < total; elapsed += dt {
		s.Module().Update(dt)
	}
}

// TestClassSelectSceneOrigin verifies the design-space origin starts at the
// center of the default window.
func TestClassSelectSceneOrigin(t *testing.T) {
	scene, _, _ := newSelectScene(t)

	x, y := scene.Origin()
	if x != float64(config.GameWindowWidth)/2 || y != float64(config.GameWindowHeight)/2 {
		t.Errorf("origin = (%v, %v), want window center", x, y)
	}
}

// TestClassSelectSceneResize verifies resizing recenters the origin and
// tolerates degenerate sizes.
func TestClassSelectSceneResize(t *testing.T) {
	scene, _, _ := newSelectScene(t)

	scene.OnResize(800, 600)
	if x, y := scene.Origin(); x != 400 || y != 300 {
		t.Errorf("origin = (%v, %v) at 800x600, want (400, 300)", x, y)
	}

	scene.OnResize(1920, 1080)
	if x, y := scene.Origin(); x != 960 || y != 540 {
		t.Errorf("origin = (%v, %v) at 1920x1080, want (960, 540)", x, y)
	}

	// Selection state survives the resize.
	scene.Module().OnPointerDown("mage")
	scene.OnResize(1024, 768)
	if scene.Module().CommittedID() != "mage" {
		t.Error("committed class lost on resize")
	}

	// A zero or negative size is clamped and applied, never refused.
	scene.OnResize(0, -200)
	if x, y := scene.Origin(); x != 0 || y != 0 {
		t.Errorf("origin = (%v, %v) after degenerate resize, want (0, 0)", x, y)
	}
	for _, l := range scene.Starfield().Layers() {
		if l.Width != 0 || l.Height != 0 {
			t.Errorf("starfield layer %s extent = %vx%v, want 0x0", l.Spec.Key, l.Width, l.Height)
		}
	}
}

// TestClassSelectSceneLastPlayed verifies the previously chosen class gets
// the visual marker but no hover or commit state.
func TestClassSelectSceneLastPlayed(t *testing.T) {
	settings := testSettings(t)
	settings.SetLastClass("mage")

	scene := NewClassSelectScene(game.NewResourceManager(), game.NewSceneManager(), settings, modules.NewTextureCache(), testRoster())

	if !scene.Module().Card("mage").LastPlayed {
		t.Error("last played card not marked")
	}
	if scene.Module().Card("knight").LastPlayed {
		t.Error("unrelated card marked as last played")
	}
	if scene.Module().HoveredID() != "" || scene.Module().CommittedID() != "" {
		t.Error("last played marker seeded selection state")
	}
}

// TestClassSelectSceneChosenFlow verifies a commit rides the delayed
// delivery into the gameplay scene and persists the choice.
func TestClassSelectSceneChosenFlow(t *testing.T) {
	scene, sm, settings := newSelectScene(t)

	scene.Module().OnPointerDown("knight")
	moduleTick(scene, config.SelectCommitDelay*2)

	gameplay, ok := sm.GetCurrentScene().(*GameplayScene)
	if !ok {
		t.Fatalf("current scene = %T after commit delivery, want *GameplayScene", sm.GetCurrentScene())
	}
	if gameplay.Class().ID != "knight" {
		t.Errorf("gameplay class = %q, want knight", gameplay.Class().ID)
	}
	if settings.LastClass() != "knight" {
		t.Errorf("persisted last class = %q, want knight", settings.LastClass())
	}
}

// TestClassSelectSceneDispose verifies teardown cancels the pending commit
// delivery entirely.
func TestClassSelectSceneDispose(t *testing.T) {
	scene, sm, settings := newSelectScene(t)

	scene.Module().OnPointerDown("rogue")
	scene.Dispose()
	moduleTick(scene, config.SelectCommitDelay*2)

	if sm.GetCurrentScene() != nil {
		t.Errorf("scene switched after Dispose: %T", sm.GetCurrentScene())
	}
	if settings.LastClass() != "" {
		t.Errorf("last class = %q after Dispose, want empty", settings.LastClass())
	}
}
