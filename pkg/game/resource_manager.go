package game

import (
	"bytes"
	"fmt"
	"image"
	_ "image/jpeg" // Register JPEG decoder
	_ "image/png"  // Register PNG decoder
	"os"

	"github.com/gonewx/riftborne/pkg/embedded"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"gopkg.in/yaml.v3"
)

// ResourceManager is responsible for centralized management of game
// resources. It provides loading and caching for images and fonts, ensuring
// each resource is loaded once and reused for the life of the process.
//
// Resources resolve against the embedded filesystem first and fall back to
// the working directory, so a development checkout can override embedded
// assets without rebuilding.
//
// Thread safety: the caches are plain maps and all loading happens inside
// the single-threaded game loop. No synchronization is needed, and none is
// provided.
type ResourceManager struct {
	imageCache      map[string]*ebiten.Image          // path -> decoded image
	fontSourceCache map[string]*text.GoTextFaceSource // path -> parsed font source
	fontFaceCache   map[string]*text.GoTextFace       // "path:size" -> face

	config      *ResourceConfig   // Parsed YAML manifest
	resourceMap map[string]string // Resource ID -> file path for quick lookup
}

// NewResourceManager creates a ResourceManager with empty caches.
func NewResourceManager() *ResourceManager {
	return &ResourceManager{
		imageCache:      make(map[string]*ebiten.Image),
		fontSourceCache: make(map[string]*text.GoTextFaceSource),
		fontFaceCache:   make(map[string]*text.GoTextFace),
		resourceMap:     make(map[string]string),
	}
}

// readFile resolves a resource path: embedded filesystem first, then disk.
func readFile(path string) ([]byte, error) {
	if embedded.Exists(path) {
		return embedded.ReadFile(path)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("resource %s not embedded and not on disk: %w", path, err)
	}
	return data, nil
}

// LoadResourceConfig parses the YAML resource manifest and builds the
// resource ID lookup table. It must be called before any ByID loading or
// group loading.
func (rm *ResourceManager) LoadResourceConfig(configPath string) error {
	data, err := readFile(configPath)
	if err != nil {
		return fmt.Errorf("failed to read resource config %s: %w", configPath, err)
	}

	var config ResourceConfig
	if err := yaml.Unmarshal(data, &config); err != nil {
		return fmt.Errorf("failed to parse resource config %s: %w", configPath, err)
	}

	rm.config = &config
	rm.buildResourceMap()
	return nil
}

// buildResourceMap constructs the resource ID -> full file path mapping.
func (rm *ResourceManager) buildResourceMap() {
	rm.resourceMap = make(map[string]string)
	if rm.config == nil {
		return
	}

	for _, group := range rm.config.Groups {
		for _, img := range group.Images {
			rm.resourceMap[img.ID] = buildFullPath(rm.config.BasePath, img.Path)
		}
		for _, font := range group.Fonts {
			rm.resourceMap[font.ID] = buildFullPath(rm.config.BasePath, font.Path)
		}
	}
}

// Config returns the parsed manifest, or nil before LoadResourceConfig.
func (rm *ResourceManager) Config() *ResourceConfig {
	return rm.config
}

// LoadImage loads an image from the given path and caches it.
// Supported formats: PNG, JPEG.
func (rm *ResourceManager) LoadImage(path string) (*ebiten.Image, error) {
	if cached, exists := rm.imageCache[path]; exists {
		return cached, nil
	}

	data, err := readFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open image file %s: %w", path, err)
	}

	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to decode image %s: %w", path, err)
	}

	ebitenImg := ebiten.NewImageFromImage(img)
	rm.imageCache[path] = ebitenImg
	return ebitenImg, nil
}

// GetImage returns a previously loaded image, or nil if it has not been
// loaded. Callers must tolerate nil and render a generated fallback.
func (rm *ResourceManager) GetImage(path string) *ebiten.Image {
	return rm.imageCache[path]
}

// LoadImageByID loads an image by its manifest resource ID.
func (rm *ResourceManager) LoadImageByID(resourceID string) (*ebiten.Image, error) {
	path, ok := rm.resourceMap[resourceID]
	if !ok {
		return nil, fmt.Errorf("unknown resource ID: %s", resourceID)
	}
	return rm.LoadImage(path)
}

// GetImageByID returns a previously loaded image by manifest resource ID,
// or nil if the ID is unknown or the image has not been loaded.
func (rm *ResourceManager) GetImageByID(resourceID string) *ebiten.Image {
	path, ok := rm.resourceMap[resourceID]
	if !ok {
		return nil
	}
	return rm.imageCache[path]
}

// loadFontSource parses and caches a font file.
func (rm *ResourceManager) loadFontSource(path string) (*text.GoTextFaceSource, error) {
	if cached, exists := rm.fontSourceCache[path]; exists {
		return cached, nil
	}

	data, err := readFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read font file %s: %w", path, err)
	}

	source, err := text.NewGoTextFaceSource(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to create font source for %s: %w", path, err)
	}

	rm.fontSourceCache[path] = source
	return source, nil
}

// LoadFont loads a TrueType/OpenType font and creates a text face with the
// given size. Faces are cached per path and size; the underlying font source
// is parsed once per path.
func (rm *ResourceManager) LoadFont(path string, size float64) (*text.GoTextFace, error) {
	cacheKey := fmt.Sprintf("%s:%.1f", path, size)
	if cached, exists := rm.fontFaceCache[cacheKey]; exists {
		return cached, nil
	}

	source, err := rm.loadFontSource(path)
	if err != nil {
		return nil, err
	}

	face := &text.GoTextFace{
		Source:    source,
		Size:      size,
		Direction: text.DirectionLeftToRight,
	}
	rm.fontFaceCache[cacheKey] = face
	return face, nil
}

// LoadFontByID loads a font face by manifest resource ID and size.
func (rm *ResourceManager) LoadFontByID(resourceID string, size float64) (*text.GoTextFace, error) {
	path, ok := rm.resourceMap[resourceID]
	if !ok {
		return nil, fmt.Errorf("unknown resource ID: %s", resourceID)
	}
	return rm.LoadFont(path, size)
}
