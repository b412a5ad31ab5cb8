package modules

import (
	"math"
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
)

// TestStarfieldLayerCount verifies the fixed far/mid/near structure: nearer
// layers drift faster and draw fewer, larger dots.
func TestStarfieldLayerCount(t *testing.T) {
	m := NewStarfieldModule(NewTextureCache(), 1280, 720)

	layers := m.Layers()
	if len(layers) != 3 {
		t.Fatalf("got %d layers, want 3", len(layers))
	}

	for i := 1; i < len(layers); i++ {
		prev, cur := layers[i-1].Spec, layers[i].Spec
		if math.Abs(cur.SpeedX) <= math.Abs(prev.SpeedX) {
			t.Errorf("layer %d (%s) not faster than layer %d (%s)", i, cur.Key, i-1, prev.Key)
		}
		if cur.DotCount >= prev.DotCount {
			t.Errorf("layer %d (%s) not sparser than layer %d (%s)", i, cur.Key, i-1, prev.Key)
		}
		if cur.MaxRadius <= prev.MaxRadius {
			t.Errorf("layer %d (%s) dots not larger than layer %d (%s)", i, cur.Key, i-1, prev.Key)
		}
	}

	for _, l := range layers {
		if l.Width != 1280 || l.Height != 720 {
			t.Errorf("layer %s extent = %vx%v, want 1280x720", l.Spec.Key, l.Width, l.Height)
		}
		if l.OffsetX != 0 || l.OffsetY != 0 {
			t.Errorf("layer %s offsets start at (%v, %v), want (0, 0)", l.Spec.Key, l.OffsetX, l.OffsetY)
		}
	}
}

// TestStarfieldFrameRateIndependence verifies the same elapsed time produces
// the same scroll offsets regardless of how it is sliced into frames.
func TestStarfieldFrameRateIndependence(t *testing.T) {
	at60 := NewStarfieldModule(NewTextureCache(), 800, 600)
	at30 := NewStarfieldModule(NewTextureCache(), 800, 600)

	// One second of updates at two frame rates.
	for i := 0; i < 60; i++ {
		at60.Update(1.0 / 60.0)
	}
	for i := 0; i < 30; i++ {
		at30.Update(1.0 / 30.0)
	}

	for i := range at60.Layers() {
		a, b := at60.Layers()[i], at30.Layers()[i]
		if math.Abs(a.OffsetX-b.OffsetX) > 1e-9 || math.Abs(a.OffsetY-b.OffsetY) > 1e-9 {
			t.Errorf("layer %s diverged: 60fps (%v, %v) vs 30fps (%v, %v)",
				a.Spec.Key, a.OffsetX, a.OffsetY, b.OffsetX, b.OffsetY)
		}
	}
}

// TestStarfieldAdvance verifies one reference frame of time moves a layer by
// exactly its per-frame speed.
func TestStarfieldAdvance(t *testing.T) {
	layer := &StarfieldLayer{Spec: LayerSpec{SpeedX: -0.35, SpeedY: 0.10}}
	layer.Advance(1.0 / 60.0)

	if math.Abs(layer.OffsetX-(-0.35)) > 1e-9 {
		t.Errorf("OffsetX = %v after one reference frame, want -0.35", layer.OffsetX)
	}
	if math.Abs(layer.OffsetY-0.10) > 1e-9 {
		t.Errorf("OffsetY = %v after one reference frame, want 0.10", layer.OffsetY)
	}
}

// TestStarfieldResize verifies resize updates extents, clamps degenerate
// sizes to zero, and leaves the scroll state alone.
func TestStarfieldResize(t *testing.T) {
	m := NewStarfieldModule(NewTextureCache(), 800, 600)
	m.Update(0.5)

	offsets := make([][2]float64, 0, 3)
	for _, l := range m.Layers() {
		offsets = append(offsets, [2]float64{l.OffsetX, l.OffsetY})
	}

	m.Resize(1920, 1080)
	for i, l := range m.Layers() {
		if l.Width != 1920 || l.Height != 1080 {
			t.Errorf("layer %s extent = %vx%v, want 1920x1080", l.Spec.Key, l.Width, l.Height)
		}
		if l.OffsetX != offsets[i][0] || l.OffsetY != offsets[i][1] {
			t.Errorf("layer %s offsets changed on resize", l.Spec.Key)
		}
	}

	// A zero or negative extent is clamped, never refused.
	m.Resize(0, -50)
	for _, l := range m.Layers() {
		if l.Width != 0 || l.Height != 0 {
			t.Errorf("layer %s extent = %vx%v after degenerate resize, want 0x0", l.Spec.Key, l.Width, l.Height)
		}
	}

	// And the layer keeps animating while collapsed.
	m.Update(0.5)
	for i, l := range m.Layers() {
		if l.OffsetX == offsets[i][0] && l.Spec.SpeedX != 0 {
			t.Errorf("layer %s stopped advancing while collapsed", l.Spec.Key)
		}
	}
}

// TestTextureCacheGeneratesOnce verifies generation runs once per key and
// Reset forgets everything.
func TestTextureCacheGeneratesOnce(t *testing.T) {
	cache := NewTextureCache()
	calls := 0

	for i := 0; i < 3; i++ {
		cache.Get("starfield_far", func() *ebiten.Image {
			calls++
			return nil
		})
	}
	if calls != 1 {
		t.Fatalf("generate ran %d times for one key, want 1", calls)
	}

	cache.Get("starfield_mid", func() *ebiten.Image {
		calls++
		return nil
	})
	if calls != 2 {
		t.Fatalf("generate ran %d times for two keys, want 2", calls)
	}

	cache.Reset()
	cache.Get("starfield_far", func() *ebiten.Image {
		calls++
		return nil
	})
	if calls != 3 {
		t.Fatalf("generate did not rerun after Reset, calls = %d", calls)
	}
}
