package modules

import (
	"image/color"
	"math"
	"math/rand"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// referenceFrameInterval normalizes drift speed to a 60 FPS reference frame,
// so layer motion is identical at any actual frame rate.
const referenceFrameInterval = 1.0 / 60.0

// starTextureSize is the edge of the square speckle texture each layer tiles.
const starTextureSize = 512

// TextureCache is a keyed cache for generated textures. Generation happens
// once per key for the cache's lifetime; the cached images are read-only
// afterwards and safe to share across screen instances. The app owns one
// cache for its whole lifetime; tests create and reset their own.
type TextureCache struct {
	textures map[string]*ebiten.Image
}

// NewTextureCache creates an empty texture cache.
func NewTextureCache() *TextureCache {
	return &TextureCache{textures: make(map[string]*ebiten.Image)}
}

// Get returns the texture for key, generating and storing it on first use.
func (tc *TextureCache) Get(key string, generate func() *ebiten.Image) *ebiten.Image {
	if img, ok := tc.textures[key]; ok {
		return img
	}
	img := generate()
	tc.textures[key] = img
	return img
}

// Reset drops every cached texture.
func (tc *TextureCache) Reset() {
	tc.textures = make(map[string]*ebiten.Image)
}

// LayerSpec describes one starfield depth layer: how its speckle texture is
// generated and how fast it drifts.
type LayerSpec struct {
	Key       string  // texture cache key
	DotCount  int     // dots scattered on the texture
	MinRadius float64 // dot radius range
	MaxRadius float64
	MinAlpha  float64 // dot opacity range
	MaxAlpha  float64
	SpeedX    float64 // drift in pixels per reference frame
	SpeedY    float64
}

// starfieldLayers defines the fixed far/mid/near ordering. Depth is cued by
// nearer layers having fewer, larger, more opaque dots and drifting faster.
var starfieldLayers = []LayerSpec{
	{Key: "starfield_far", DotCount: 170, MinRadius: 0.6, MaxRadius: 1.3, MinAlpha: 0.15, MaxAlpha: 0.40, SpeedX: -0.12, SpeedY: 0.04},
	{Key: "starfield_mid", DotCount: 90, MinRadius: 1.1, MaxRadius: 2.2, MinAlpha: 0.35, MaxAlpha: 0.65, SpeedX: -0.35, SpeedY: 0.10},
	{Key: "starfield_near", DotCount: 40, MinRadius: 1.8, MaxRadius: 3.4, MinAlpha: 0.55, MaxAlpha: 0.95, SpeedX: -0.85, SpeedY: 0.22},
}

// StarfieldLayer is one scrolling layer: a cached texture plus the mutable
// scroll offsets and visible extent. Offsets accumulate without bound; the
// tiled draw wraps them.
type StarfieldLayer struct {
	Spec             LayerSpec
	OffsetX, OffsetY float64
	Width, Height    float64

	texture *ebiten.Image
}

// Advance moves the scroll offsets for deltaTime seconds of elapsed time.
func (l *StarfieldLayer) Advance(deltaTime float64) {
	frames := deltaTime / referenceFrameInterval
	l.OffsetX += l.Spec.SpeedX * frames
	l.OffsetY += l.Spec.SpeedY * frames
}

// Resize sets the layer's visible extent. Degenerate dimensions are clamped
// to zero; offsets and speeds are unaffected.
func (l *StarfieldLayer) Resize(width, height float64) {
	l.Width = math.Max(width, 0)
	l.Height = math.Max(height, 0)
}

// StarfieldModule generates and animates the three-layer parallax backdrop.
// Textures come from the injected cache, so repeated screen instances reuse
// the same generated images.
type StarfieldModule struct {
	cache  *TextureCache
	layers []*StarfieldLayer
}

// NewStarfieldModule creates the backdrop sized to the given viewport.
// Texture generation is deferred to the first Draw so the module can be
// constructed before the game loop starts.
func NewStarfieldModule(cache *TextureCache, width, height float64) *StarfieldModule {
	m := &StarfieldModule{cache: cache}
	for _, spec := range starfieldLayers {
		layer := &StarfieldLayer{Spec: spec}
		layer.Resize(width, height)
		m.layers = append(m.layers, layer)
	}
	return m
}

// Update advances every layer's scroll offsets.
func (m *StarfieldModule) Update(deltaTime float64) {
	for _, layer := range m.layers {
		layer.Advance(deltaTime)
	}
}

// Resize propagates the new viewport extent to every layer.
func (m *StarfieldModule) Resize(width, height float64) {
	for _, layer := range m.layers {
		layer.Resize(width, height)
	}
}

// Draw tiles each layer's texture across its extent, far to near.
func (m *StarfieldModule) Draw(screen *ebiten.Image) {
	for _, layer := range m.layers {
		if layer.texture == nil {
			spec := layer.Spec
			layer.texture = m.cache.Get(spec.Key, func() *ebiten.Image {
				return generateSpeckleTexture(spec)
			})
		}
		drawTiled(screen, layer)
	}
}

// Layers returns the layers in far-to-near order.
func (m *StarfieldModule) Layers() []*StarfieldLayer {
	return m.layers
}

// drawTiled covers the layer's extent with its texture, wrapping the
// accumulated offsets into the texture's period.
func drawTiled(screen *ebiten.Image, layer *StarfieldLayer) {
	if layer.Width <= 0 || layer.Height <= 0 {
		return
	}

	const size = float64(starTextureSize)
	startX := math.Mod(layer.OffsetX, size)
	if startX > 0 {
		startX -= size
	}
	startY := math.Mod(layer.OffsetY, size)
	if startY > 0 {
		startY -= size
	}

	for y := startY; y < layer.Height; y += size {
		for x := startX; x < layer.Width; x += size {
			op := &ebiten.DrawImageOptions{}
			op.GeoM.Translate(x, y)
			screen.DrawImage(layer.texture, op)
		}
	}
}

// generateSpeckleTexture scatters the spec's dots across a square texture.
// The scatter is random on purpose; visual variety across runs is expected.
func generateSpeckleTexture(spec LayerSpec) *ebiten.Image {
	img := ebiten.NewImage(starTextureSize, starTextureSize)
	for i := 0; i < spec.DotCount; i++ {
		x := float32(rand.Float64() * starTextureSize)
		y := float32(rand.Float64() * starTextureSize)
		radius := float32(spec.MinRadius + rand.Float64()*(spec.MaxRadius-spec.MinRadius))
		alpha := spec.MinAlpha + rand.Float64()*(spec.MaxAlpha-spec.MinAlpha)
		a := uint8(alpha * 255)
		vector.DrawFilledCircle(img, x, y, radius, color.RGBA{R: a, G: a, B: a, A: a}, true)
	}
	return img
}
