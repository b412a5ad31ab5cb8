package game

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
)

// stubScene records the calls the manager forwards to it.
type stubScene struct {
	updates   int
	lastDelta float64
	resizes   [][2]int
	disposed  int
}

func (s *stubScene) Update(deltaTime float64) {
	s.updates++
	s.lastDelta = deltaTime
}

func (s *stubScene) Draw(screen *ebiten.Image) {}

func (s *stubScene) OnResize(width, height int) {
	s.resizes = append(s.resizes, [2]int{width, height})
}

func (s *stubScene) Dispose() {
	s.disposed++
}

// plainScene implements only the core Scene interface.
type plainScene struct{ updates int }

func (s *plainScene) Update(deltaTime float64) { s.updates++ }
func (s *plainScene) Draw(screen *ebiten.Image) {}

// TestSceneManagerSwitchTo verifies switching forwards updates only to the
// active scene.
func TestSceneManagerSwitchTo(t *testing.T) {
	sm := NewSceneManager()
	if sm.GetCurrentScene() != nil {
		t.Fatal("new manager has an active scene")
	}

	// No scene active: Update must be a no-op.
	sm.Update(1.0 / 60.0)

	first := &stubScene{}
	sm.SwitchTo(first)
	if sm.GetCurrentScene() != Scene(first) {
		t.Fatal("GetCurrentScene does not return the switched-to scene")
	}

	sm.Update(1.0 / 60.0)
	if first.updates != 1 || first.lastDelta != 1.0/60.0 {
		t.Errorf("first scene updates = %d (delta %v), want 1 update at 1/60", first.updates, first.lastDelta)
	}

	second := &stubScene{}
	sm.SwitchTo(second)
	sm.Update(1.0 / 60.0)
	if first.updates != 1 {
		t.Error("outgoing scene still receives updates")
	}
	if second.updates != 1 {
		t.Error("incoming scene receives no updates")
	}
}

// TestSceneManagerDisposesOutgoing verifies the outgoing scene is disposed
// exactly once, before the incoming scene takes over.
func TestSceneManagerDisposesOutgoing(t *testing.T) {
	sm := NewSceneManager()

	first := &stubScene{}
	sm.SwitchTo(first)
	if first.disposed != 0 {
		t.Fatal("scene disposed on arrival")
	}

	sm.SwitchTo(&stubScene{})
	if first.disposed != 1 {
		t.Fatalf("outgoing scene disposed %d times, want 1", first.disposed)
	}

	// Scenes without Dispose are fine to switch away from.
	sm.SwitchTo(&plainScene{})
	sm.SwitchTo(&stubScene{})
}

// TestSceneManagerResize verifies resize events reach the active scene and
// that a late-arriving scene receives the last known size immediately.
func TestSceneManagerResize(t *testing.T) {
	sm := NewSceneManager()

	// Resizing with no scene must not crash and must be remembered.
	sm.OnResize(1920, 1080)

	scene := &stubScene{}
	sm.SwitchTo(scene)
	if len(scene.resizes) != 1 || scene.resizes[0] != [2]int{1920, 1080} {
		t.Fatalf("incoming scene resizes = %v, want the remembered [1920 1080]", scene.resizes)
	}

	sm.OnResize(800, 600)
	if len(scene.resizes) != 2 || scene.resizes[1] != [2]int{800, 600} {
		t.Errorf("resizes = %v, want live forwarding of [800 600]", scene.resizes)
	}

	// A plain scene simply does not receive resize events.
	sm.SwitchTo(&plainScene{})
	sm.OnResize(640, 480)
}

// TestSceneManagerNoSizeYet verifies a scene switched to before any resize
// gets no synthetic zero-size event.
func TestSceneManagerNoSizeYet(t *testing.T) {
	sm := NewSceneManager()
	scene := &stubScene{}
	sm.SwitchTo(scene)

	if len(scene.resizes) != 0 {
		t.Errorf("resizes = %v before any OnResize, want none", scene.resizes)
	}
}
